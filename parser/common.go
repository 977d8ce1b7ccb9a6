package parser

// Info is the document's info object. kcoas fills Title and Version from the
// reference page; contact, license and extensions are kept in Extra when a
// document is decoded.
type Info struct {
	Title       string `yaml:"title" json:"title"`
	Description string `yaml:"description,omitempty" json:"description,omitempty"`
	Version     string `yaml:"version" json:"version"`

	Extra map[string]any `yaml:",inline" json:"-"`
}

// Server is an entry of the document's servers list, e.g. the Keycloak base
// URL "https://{host}/auth".
type Server struct {
	URL         string `yaml:"url" json:"url"`
	Description string `yaml:"description,omitempty" json:"description,omitempty"`

	Extra map[string]any `yaml:",inline" json:"-"`
}
