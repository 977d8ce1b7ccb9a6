package transformer

import (
	"strings"

	"golang.org/x/net/html"

	"github.com/erraggy/kcoas/internal/htmlquery"
)

// Defaults used when the page carries no usable header or version paragraph.
const (
	DefaultTitle      = "Keycloak Admin REST API"
	DefaultAPIVersion = "unknown"
)

var (
	headerTitleSelector = htmlquery.MustCompile("#header > h1")
	versionSelector     = htmlquery.MustCompile("#_version_information ~ .paragraph p")
)

// pageInfo reads the document title and the "Version : X" line of the overview.
// Both are optional; missing values come back empty.
func pageInfo(doc *html.Node) (title, version string) {
	if h1 := headerTitleSelector.First(doc); h1 != nil {
		title = strings.TrimSpace(htmlquery.Text(h1))
	}
	if p := versionSelector.First(doc); p != nil {
		if label, value, ok := strings.Cut(htmlquery.Text(p), ":"); ok && strings.TrimSpace(label) == "Version" {
			version = strings.TrimSpace(value)
		}
	}
	return title, version
}
