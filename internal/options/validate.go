// Package options holds validation shared by the option-driven entry points.
package options

import (
	"fmt"
	"strings"

	"github.com/erraggy/kcoas/oaserrors"
)

// Source is one way of supplying input. Name is what the caller would type
// to set it, e.g. "WithFilePath" or "url".
type Source struct {
	Name string
	Set  bool
}

// RequireOne returns a *oaserrors.ConfigError for the "input" option unless
// exactly one of sources is set. The message lists the candidate names when
// none is set and the offending names when several are.
func RequireOne(sources ...Source) error {
	var set, all []string
	for _, s := range sources {
		all = append(all, s.Name)
		if s.Set {
			set = append(set, s.Name)
		}
	}

	switch len(set) {
	case 1:
		return nil
	case 0:
		return &oaserrors.ConfigError{
			Option:  "input",
			Message: fmt.Sprintf("exactly one input source is required, none given (use %s)", orList(all)),
		}
	default:
		return &oaserrors.ConfigError{
			Option:  "input",
			Value:   len(set),
			Message: fmt.Sprintf("exactly one input source is required, got %s", strings.Join(set, " and ")),
		}
	}
}

func orList(names []string) string {
	switch len(names) {
	case 0:
		return "an input option"
	case 1:
		return names[0]
	}
	return strings.Join(names[:len(names)-1], ", ") + " or " + names[len(names)-1]
}
