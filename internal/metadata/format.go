package metadata

import (
	"fmt"
	"strings"
)

// Format selects the markup convention used to render author metadata.
type Format int

const (
	// FormatLNCS renders inline-indexed authors (Springer llncs class).
	FormatLNCS Format = iota
	// FormatACM renders one block per author with structured affiliations (acmart class).
	FormatACM
	// FormatBlog renders a plain comma-separated author list.
	FormatBlog
)

// Formats lists every supported format in display order.
var Formats = []Format{FormatLNCS, FormatACM, FormatBlog}

// String returns the identifier used in configs and template manifests.
func (f Format) String() string {
	switch f {
	case FormatLNCS:
		return "lncs"
	case FormatACM:
		return "acm"
	case FormatBlog:
		return "blog"
	default:
		return fmt.Sprintf("Format(%d)", int(f))
	}
}

// ParseFormat maps an identifier such as "acm" to its Format.
func ParseFormat(s string) (Format, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for _, f := range Formats {
		if f.String() == name {
			return f, nil
		}
	}
	return 0, fmt.Errorf("unknown format %q: must be one of lncs, acm, blog", s)
}
