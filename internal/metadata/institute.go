package metadata

import (
	"errors"
	"fmt"
	"strings"
)

// ErrMissingCountry is returned when an institute without a country is
// rendered as an ACM affiliation block.
var ErrMissingCountry = errors.New("country not provided for acm")

// Institute is an affiliation. Empty optional fields are treated as absent.
// Two institutes with the same four fields are the same institute.
type Institute struct {
	Name    string
	City    string
	State   string
	Country string
}

// NewInstitute returns an institute carrying only a name.
func NewInstitute(name string) Institute {
	return Institute{Name: name}
}

// Dump renders the institute in the given format.
func (i Institute) Dump(f Format) (string, error) {
	switch f {
	case FormatLNCS:
		return i.dumpLNCS(), nil
	case FormatACM:
		return i.dumpACM()
	case FormatBlog:
		return i.dumpBlog(), nil
	default:
		return "", fmt.Errorf("rendering institute %q: unsupported format %s", i.Name, f)
	}
}

func (i Institute) dumpLNCS() string { return i.Name }

func (i Institute) dumpBlog() string { return i.Name }

func (i Institute) dumpACM() (string, error) {
	lines := []string{fmt.Sprintf(`\institution{%s}`, i.Name)}
	if i.City != "" {
		lines = append(lines, fmt.Sprintf(`\city{%s}`, i.City))
	}
	if i.State != "" {
		lines = append(lines, fmt.Sprintf(`\state{%s}`, i.State))
	}
	if i.Country == "" {
		return "", fmt.Errorf("institute %q: %w", i.Name, ErrMissingCountry)
	}
	lines = append(lines, fmt.Sprintf(`\country{%s}`, i.Country))
	return "\\affiliation{\n  " + strings.Join(lines, "\n  ") + "\n}", nil
}
