package project

import (
	"fmt"

	"github.com/mytex-labs/mytex/internal/metadata"
)

// Context keys understood by the templates.
const (
	KeyMeta     = "meta"
	KeyAuthor   = "author"
	KeyTitle    = "title"
	KeyDate     = "date"
	KeyKeywords = "keywords"
)

// ContextKeys lists every key produced by Context.
var ContextKeys = []string{KeyMeta, KeyAuthor, KeyTitle, KeyDate, KeyKeywords}

// Manager registers the configured authors, in order, with a new metadata.Manager.
func (c *Config) Manager() *metadata.Manager {
	m := metadata.NewManager()
	for _, entry := range c.Authors {
		a := metadata.NewAuthor(entry.Name, entry.Email)
		for _, inst := range entry.Institutes {
			a.AddInstitute(metadata.Institute{
				Name:    inst.Name,
				City:    inst.City,
				State:   inst.State,
				Country: inst.Country,
			})
		}
		if entry.Comment != "" {
			a.SetComment(entry.Comment)
		}
		m.AddAuthor(a)
	}
	return m
}

// Context builds the placeholder values for rendering the project in format
// f. Absent config values become empty strings. In anonymous mode the
// author block is replaced by empty placeholders.
func (c *Config) Context(f metadata.Format) (map[string]string, error) {
	m := c.Manager()

	var author string
	if c.Anonymous {
		author = m.DumpAnonymous(f)
	} else {
		var err error
		author, err = m.Dump(f)
		if err != nil {
			return nil, fmt.Errorf("rendering authors: %w", err)
		}
	}

	var kw metadata.Keywords
	for _, k := range c.Keywords {
		kw.Add(k)
	}

	return map[string]string{
		KeyMeta:     c.Meta,
		KeyAuthor:   author,
		KeyTitle:    c.Title,
		KeyDate:     c.Date,
		KeyKeywords: kw.Dump(),
	}, nil
}
