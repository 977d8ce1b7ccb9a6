package schemas

import (
	"golang.org/x/net/html"

	"github.com/erraggy/kcoas/internal/htmlquery"
	"github.com/erraggy/kcoas/oaserrors"
)

// Selectors for the layout emitted by the Keycloak documentation generator.
var (
	sectionSelector  = htmlquery.MustCompile("#_definitions + .sectionbody > .sect2")
	titleSelector    = htmlquery.MustCompile("h3")
	rowSelector      = htmlquery.MustCompile("table > tbody > tr")
	propertySelector = htmlquery.MustCompile("td:first-child strong")
	typeSelector     = htmlquery.MustCompile("td:first-child + td")
)

// Row is the raw content of one property table row.
type Row struct {
	Name    string
	RawType string
}

// Section is one schema definition as found in the document, before any type
// resolution.
type Section struct {
	Name string
	Rows []Row
}

// Schema resolves every row of the section and folds them into a Schema.
func (s Section) Schema() *Schema {
	schema := NewSchema(s.Name)
	for _, row := range s.Rows {
		schema.Set(row.Name, Resolve(row.RawType))
	}
	return schema
}

// Sections returns every schema definition section of doc in document order.
//
// It panics with an *oaserrors.StructureError if a section has no heading or a
// row lacks its name or type cell.
func Sections(doc *html.Node) []Section {
	nodes := sectionSelector.All(doc)
	sections := make([]Section, 0, len(nodes))
	for _, node := range nodes {
		sections = append(sections, readSection(node))
	}
	return sections
}

// Extract returns the schemas defined in doc, keyed by name.
//
// It panics with an *oaserrors.StructureError on layout mismatches, see Sections.
func Extract(doc *html.Node) *Map {
	m := NewMap()
	for _, section := range Sections(doc) {
		m.Set(section.Schema())
	}
	return m
}

func readSection(node *html.Node) Section {
	title := titleSelector.First(node)
	if title == nil {
		panic(&oaserrors.StructureError{
			Selector: titleSelector.String(),
			Message:  "schema section has no title",
		})
	}

	section := Section{Name: htmlquery.Text(title)}
	for i, tr := range rowSelector.All(node) {
		section.Rows = append(section.Rows, Row{
			Name:    mustText(tr, propertySelector, section.Name, i+1),
			RawType: mustText(tr, typeSelector, section.Name, i+1),
		})
	}
	return section
}

func mustText(row *html.Node, sel *htmlquery.Selector, section string, rowNum int) string {
	cell := sel.First(row)
	if cell == nil {
		panic(&oaserrors.StructureError{
			Section:  section,
			Selector: sel.String(),
			Row:      rowNum,
		})
	}
	return htmlquery.Text(cell)
}
