package schemas_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/erraggy/kcoas/internal/testutil"
	"github.com/erraggy/kcoas/oaserrors"
	"github.com/erraggy/kcoas/schemas"
)

// expectStructureError runs f and returns the *oaserrors.StructureError it panics with.
func expectStructureError(t *testing.T, f func()) (structErr *oaserrors.StructureError) {
	t.Helper()
	defer func() {
		r := recover()
		require.NotNil(t, r, "expected a panic")
		err, ok := r.(error)
		require.True(t, ok, "panic value should be an error, got %T", r)
		require.ErrorAs(t, err, &structErr)
		require.ErrorIs(t, err, oaserrors.ErrStructure)
	}()
	f()
	return nil
}

func TestSectionsDocumentOrder(t *testing.T) {
	doc := testutil.ParseHTML(t, testutil.DefinitionsPage(
		testutil.Section("Zeta", [2]string{"b", "string"}, [2]string{"a", "boolean"}),
		testutil.Section("Alpha", [2]string{"id", "integer(int64)"}),
	))

	sections := schemas.Sections(doc)
	require.Len(t, sections, 2)
	assert.Equal(t, "Zeta", sections[0].Name)
	assert.Equal(t, []schemas.Row{{Name: "b", RawType: "string"}, {Name: "a", RawType: "boolean"}}, sections[0].Rows)
	assert.Equal(t, "Alpha", sections[1].Name)
	assert.Equal(t, []schemas.Row{{Name: "id", RawType: "integer(int64)"}}, sections[1].Rows)
}

func TestSectionsDecodesEntitiesAndFlattensLinks(t *testing.T) {
	doc := testutil.ParseHTML(t, testutil.DefinitionsPage(
		testutil.Section("User",
			[2]string{"groups", "&lt; string &gt; array"},
			[2]string{"consents", `&lt; <a href="#_userconsentrepresentation">UserConsentRepresentation</a> &gt; array`},
		),
	))

	sections := schemas.Sections(doc)
	require.Len(t, sections, 1)
	assert.Equal(t, "< string > array", sections[0].Rows[0].RawType)
	assert.Equal(t, "< UserConsentRepresentation > array", sections[0].Rows[1].RawType)
}

func TestSectionsIgnoresOtherParts(t *testing.T) {
	page := `<html><body>
<div class="sect1"><h2 id="_resources">Resources</h2><div class="sectionbody">
` + testutil.Section("NotASchema", [2]string{"realm", "string"}) + `</div></div>
</body></html>`

	assert.Empty(t, schemas.Sections(testutil.ParseHTML(t, page)))
	assert.Equal(t, 0, schemas.Extract(testutil.ParseHTML(t, page)).Len())
}

func TestExtractEndToEndEnum(t *testing.T) {
	doc := testutil.ParseHTML(t, testutil.DefinitionsPage(
		testutil.Section("PolicyRepresentation",
			[2]string{"logic", "enum (POSITIVE, NEGATIVE)"},
			[2]string{"name", "string"},
		),
	))

	m := schemas.Extract(doc)
	policy, ok := m.Get("PolicyRepresentation")
	require.True(t, ok)

	logic, ok := policy.Get("logic")
	require.True(t, ok)
	assert.Equal(t, schemas.KindString, logic.Kind)
	assert.Equal(t, []string{"POSITIVE", "NEGATIVE"}, logic.Enum)
}

func TestExtractEmptySection(t *testing.T) {
	m := schemas.Extract(testutil.ParseHTML(t, testutil.DefinitionsPage(testutil.Section("ServerInfoRepresentation"))))
	s, ok := m.Get("ServerInfoRepresentation")
	require.True(t, ok)
	assert.Equal(t, 0, s.Len())
}

func TestExtractDuplicates(t *testing.T) {
	doc := testutil.ParseHTML(t, testutil.DefinitionsPage(
		testutil.Section("A", [2]string{"x", "string"}, [2]string{"y", "boolean"}, [2]string{"x", "Map"}),
		testutil.Section("B"),
		testutil.Section("A", [2]string{"z", "number(float)"}),
	))

	m := schemas.Extract(doc)
	assert.Equal(t, []string{"A", "B"}, m.Names())

	a, _ := m.Get("A")
	require.Equal(t, 1, a.Len(), "the later section replaces the earlier one")
	z, ok := a.Get("z")
	require.True(t, ok)
	assert.Equal(t, schemas.Number(schemas.FormatFloat), z)

	first := schemas.Sections(doc)[0].Schema()
	x, _ := first.Get("x")
	assert.Equal(t, schemas.Object(), x)
	assert.Equal(t, 2, first.Len())
}

func TestExtractMissingTitlePanics(t *testing.T) {
	page := testutil.DefinitionsPage(
		testutil.Section("Fine", [2]string{"id", "string"}),
		`<div class="sect2"><table><tbody><tr><td><strong>id</strong></td><td>string</td></tr></tbody></table></div>`,
	)
	doc := testutil.ParseHTML(t, page)

	structErr := expectStructureError(t, func() { schemas.Extract(doc) })
	assert.Equal(t, "h3", structErr.Selector)
	assert.Empty(t, structErr.Section)
}

func TestExtractMissingNameCellPanics(t *testing.T) {
	doc := testutil.ParseHTML(t, testutil.DefinitionsPage(
		`<div class="sect2"><h3>Broken</h3><table><tbody>
<tr><td><strong>ok</strong></td><td>string</td></tr>
<tr><td>plain</td><td>string</td></tr>
</tbody></table></div>`,
	))

	structErr := expectStructureError(t, func() { schemas.Extract(doc) })
	assert.Equal(t, "Broken", structErr.Section)
	assert.Equal(t, "td:first-child strong", structErr.Selector)
	assert.Equal(t, 2, structErr.Row)
}

func TestExtractMissingTypeCellPanics(t *testing.T) {
	doc := testutil.ParseHTML(t, testutil.DefinitionsPage(
		`<div class="sect2"><h3>Broken</h3><table><tbody><tr><td><strong>id</strong></td></tr></tbody></table></div>`,
	))

	structErr := expectStructureError(t, func() { schemas.Sections(doc) })
	assert.Equal(t, "td:first-child + td", structErr.Selector)
	assert.Equal(t, 1, structErr.Row)
}
