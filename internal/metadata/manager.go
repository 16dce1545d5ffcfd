package metadata

import (
	"fmt"
	"strings"
)

const samethanksMacro = `\newcommand*\samethanks[1][\value{footnote}]{\footnotemark[#1]}`

// Manager aggregates authors in paper order. It assigns each distinct
// institute a stable index and tracks footnote texts so that repeated notes
// are rendered as references to their first occurrence.
type Manager struct {
	authors    []Registered
	institutes []Institute
	footnotes  []string
}

// NewManager returns an empty Manager.
func NewManager() *Manager {
	return &Manager{}
}

// AddAuthor registers an author after all previously added ones and returns
// the registered record. The given Author is not modified. Each author
// should be added exactly once, in final paper order.
func (m *Manager) AddAuthor(a *Author) Registered {
	reg := Registered{
		author: Author{
			name:       a.name,
			email:      a.email,
			institutes: a.Institutes(),
		},
		commentRef: -1,
	}

	for _, inst := range reg.author.institutes {
		reg.indices = append(reg.indices, m.instituteIndex(inst))
	}

	if text, ok := a.Comment(); ok {
		reg.author.comment = &text
		if idx, found := m.footnoteIndex(text); found {
			reg.commentRef = idx
		} else {
			m.footnotes = append(m.footnotes, text)
		}
	}

	m.authors = append(m.authors, reg)
	return reg
}

// instituteIndex returns the global index of inst, appending it when unseen.
func (m *Manager) instituteIndex(inst Institute) int {
	for i, known := range m.institutes {
		if known == inst {
			return i
		}
	}
	m.institutes = append(m.institutes, inst)
	return len(m.institutes) - 1
}

func (m *Manager) footnoteIndex(text string) (int, bool) {
	for i, known := range m.footnotes {
		if known == text {
			return i, true
		}
	}
	return 0, false
}

// Authors returns the registered authors in insertion order.
func (m *Manager) Authors() []Registered {
	return append([]Registered(nil), m.authors...)
}

// Institutes returns the deduplicated institutes in first-seen order.
func (m *Manager) Institutes() []Institute {
	return append([]Institute(nil), m.institutes...)
}

// Footnotes returns the distinct footnote texts in first-seen order.
func (m *Manager) Footnotes() []string {
	return append([]string(nil), m.footnotes...)
}

// Emails returns, in author order, the email of every author whose first
// institute has the given index. Only the first institute counts: an author
// affiliated with [2, 0] is listed under institute 2 and never under 0.
func (m *Manager) Emails(institute int) []string {
	var emails []string
	for _, a := range m.authors {
		if first, ok := a.firstIndex(); ok && first == institute {
			emails = append(emails, a.author.email)
		}
	}
	return emails
}

// MergeEmails groups addresses sharing a domain into the compact
// \{a,b\}@domain notation. Domains keep the order in which they first
// appear. Addresses without an @ are emitted unchanged and never grouped.
func MergeEmails(emails []string) string {
	type group struct {
		domain    string
		locals    []string
		originals []string
	}

	var groups []*group
	byDomain := make(map[string]*group)
	for _, email := range emails {
		local, domain, found := strings.Cut(email, "@")
		if !found {
			groups = append(groups, &group{originals: []string{email}})
			continue
		}
		g, ok := byDomain[domain]
		if !ok {
			g = &group{domain: domain}
			byDomain[domain] = g
			groups = append(groups, g)
		}
		g.locals = append(g.locals, local)
		g.originals = append(g.originals, email)
	}

	out := make([]string, 0, len(groups))
	for _, g := range groups {
		if len(g.originals) == 1 {
			out = append(out, g.originals[0])
			continue
		}
		out = append(out, fmt.Sprintf(`\{%s\}@%s`, strings.Join(g.locals, ","), g.domain))
	}
	return strings.Join(out, ",")
}

// Dump renders every registered author in the given format.
func (m *Manager) Dump(f Format) (string, error) {
	switch f {
	case FormatLNCS:
		return m.dumpLNCS(), nil
	case FormatACM:
		return m.dumpACM()
	case FormatBlog:
		return m.dumpBlog(), nil
	default:
		return "", fmt.Errorf("rendering authors: unsupported format %s", f)
	}
}

// DumpAnonymous renders empty author placeholders for blind review,
// ignoring every registered author.
func (m *Manager) DumpAnonymous(f Format) string {
	if f == FormatLNCS {
		return `\author{}\institute{}`
	}
	return `\author{}`
}

func (m *Manager) dumpLNCS() string {
	if len(m.authors) == 0 {
		return `\author{}\institute{}`
	}

	showInstitutes := len(m.institutes) > 1
	authors := make([]string, len(m.authors))
	for i, a := range m.authors {
		authors[i] = a.dumpLNCS(showInstitutes)
	}

	institutes := make([]string, len(m.institutes))
	for i, inst := range m.institutes {
		entry := inst.dumpLNCS()
		if emails := m.Emails(i); len(emails) > 0 {
			entry += ",\\\\\n  \\email{" + MergeEmails(emails) + "}"
		}
		institutes[i] = entry
	}

	return samethanksMacro + "\n" +
		"\\author{\n  " + strings.Join(authors, ` \and `) + "\n}\n" +
		"\\institute{\n  " + strings.Join(institutes, " \\and\n  ") + "\n}"
}

func (m *Manager) dumpACM() (string, error) {
	if len(m.authors) == 0 {
		return `\author{}`, nil
	}
	blocks := make([]string, len(m.authors))
	for i, a := range m.authors {
		lines, err := a.dumpACM()
		if err != nil {
			return "", err
		}
		blocks[i] = strings.Join(lines, "\n")
	}
	return strings.Join(blocks, "\n"), nil
}

func (m *Manager) dumpBlog() string {
	names := make([]string, len(m.authors))
	for i, a := range m.authors {
		names[i] = a.dumpBlog()
	}
	return `\author{` + strings.Join(names, ", ") + `}`
}
