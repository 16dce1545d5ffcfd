package metadata

import (
	"fmt"
	"strconv"
	"strings"
)

// Author is a paper author as supplied by the caller. Institutes are kept in
// the order they were added; deduplication happens when the author is
// registered with a Manager.
type Author struct {
	name       string
	email      string
	institutes []Institute
	comment    *string
}

// NewAuthor creates an author with no institutes and no comment.
func NewAuthor(name, email string) *Author {
	return &Author{name: name, email: email}
}

// Name returns the author's display name.
func (a *Author) Name() string { return a.name }

// Email returns the author's email address.
func (a *Author) Email() string { return a.email }

// AddInstitute appends a fully described institute.
func (a *Author) AddInstitute(inst Institute) {
	a.institutes = append(a.institutes, inst)
}

// AddInstituteName appends an institute known only by name.
func (a *Author) AddInstituteName(name string) {
	a.AddInstitute(NewInstitute(name))
}

// Institutes returns a copy of the author's institutes in insertion order.
func (a *Author) Institutes() []Institute {
	return append([]Institute(nil), a.institutes...)
}

// Institute returns the i-th institute added to the author.
func (a *Author) Institute(i int) Institute {
	return a.institutes[i]
}

// SetComment sets the footnote attached to the author, replacing any previous one.
func (a *Author) SetComment(text string) {
	a.comment = &text
}

// Comment returns the author's footnote and whether one was set.
func (a *Author) Comment() (string, bool) {
	if a.comment == nil {
		return "", false
	}
	return *a.comment, true
}

// Registered is an author as seen by a Manager: the author's data plus the
// indices the manager assigned. It is never modified after registration.
type Registered struct {
	author     Author
	indices    []int
	commentRef int // index into the manager's footnotes, -1 when this author owns the text
}

// Name returns the registered author's name.
func (r Registered) Name() string { return r.author.name }

// Email returns the registered author's email.
func (r Registered) Email() string { return r.author.email }

// Indices returns the 0-based global institute index of each of the
// author's institutes, in the order they were added to the author.
func (r Registered) Indices() []int {
	return append([]int(nil), r.indices...)
}

// Comment returns the author's footnote text and whether one was set.
func (r Registered) Comment() (string, bool) {
	return r.author.Comment()
}

// CommentRef reports the 0-based index of an earlier identical footnote.
// ok is false when the author has no comment or is its first occurrence.
func (r Registered) CommentRef() (index int, ok bool) {
	if r.commentRef < 0 {
		return 0, false
	}
	return r.commentRef, true
}

// firstIndex returns the global index of the author's first institute.
func (r Registered) firstIndex() (int, bool) {
	if len(r.indices) == 0 {
		return 0, false
	}
	return r.indices[0], true
}

func (r Registered) dumpLNCS(showInstitutes bool) string {
	var b strings.Builder
	b.WriteString(r.author.name)
	if showInstitutes {
		numbers := make([]string, len(r.indices))
		for i, idx := range r.indices {
			numbers[i] = strconv.Itoa(idx + 1)
		}
		fmt.Fprintf(&b, `\inst{%s}`, strings.Join(numbers, ","))
	}
	if text, ok := r.Comment(); ok {
		if ref, dup := r.CommentRef(); dup {
			fmt.Fprintf(&b, `\samethanks[%d]`, ref+1)
		} else {
			fmt.Fprintf(&b, `\thanks{%s}`, text)
		}
	}
	return b.String()
}

func (r Registered) dumpACM() ([]string, error) {
	lines := []string{fmt.Sprintf(`\author{%s}`, r.author.name)}
	if text, ok := r.Comment(); ok {
		if ref, dup := r.CommentRef(); dup {
			lines = append(lines, fmt.Sprintf(`\authornotemark[%d]`, ref+1))
		} else {
			lines = append(lines, fmt.Sprintf(`\authornote{%s}`, text))
		}
	}
	for _, inst := range r.author.institutes {
		block, err := inst.dumpACM()
		if err != nil {
			return nil, fmt.Errorf("author %q: %w", r.author.name, err)
		}
		lines = append(lines, block)
	}
	lines = append(lines, fmt.Sprintf(`\email{%s}`, r.author.email))
	return lines, nil
}

func (r Registered) dumpBlog() string { return r.author.name }
