package metadata

import (
	"errors"
	"reflect"
	"strings"
	"testing"
)

func newAuthor(name, email string, institutes ...string) *Author {
	a := NewAuthor(name, email)
	for _, inst := range institutes {
		a.AddInstituteName(inst)
	}
	return a
}

func TestAddAuthor_InstituteIndices(t *testing.T) {
	m := NewManager()
	alice := m.AddAuthor(newAuthor("Alice", "alice@mit.edu", "MIT", "CMU"))
	bob := m.AddAuthor(newAuthor("Bob", "bob@mit.edu", "MIT"))
	carol := m.AddAuthor(newAuthor("Carol", "carol@eth.ch", "ETH", "CMU"))

	tests := []struct {
		name string
		got  []int
		want []int
	}{
		{"Alice", alice.Indices(), []int{0, 1}},
		{"Bob", bob.Indices(), []int{0}},
		{"Carol", carol.Indices(), []int{2, 1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !reflect.DeepEqual(tt.got, tt.want) {
				t.Errorf("Indices() = %v, want %v", tt.got, tt.want)
			}
		})
	}

	wantInst := []Institute{NewInstitute("MIT"), NewInstitute("CMU"), NewInstitute("ETH")}
	if got := m.Institutes(); !reflect.DeepEqual(got, wantInst) {
		t.Errorf("Institutes() = %v, want %v", got, wantInst)
	}
}

func TestAddAuthor_StructuralEquality(t *testing.T) {
	m := NewManager()

	a := NewAuthor("Alice", "a@x.org")
	a.AddInstitute(Institute{Name: "MIT", City: "Cambridge", Country: "USA"})
	b := NewAuthor("Bob", "b@x.org")
	b.AddInstitute(Institute{Name: "MIT", City: "Cambridge", Country: "USA"})
	c := NewAuthor("Carol", "c@x.org")
	c.AddInstitute(Institute{Name: "MIT", Country: "USA"})

	m.AddAuthor(a)
	rb := m.AddAuthor(b)
	rc := m.AddAuthor(c)

	if got := rb.Indices(); !reflect.DeepEqual(got, []int{0}) {
		t.Errorf("Bob indices = %v, want [0]", got)
	}
	if got := rc.Indices(); !reflect.DeepEqual(got, []int{1}) {
		t.Errorf("Carol indices = %v, want [1] (different city is a different institute)", got)
	}
}

func TestAddAuthor_DoesNotMutateAuthor(t *testing.T) {
	m := NewManager()
	a := newAuthor("Alice", "a@x.org", "MIT")
	a.SetComment("Equal contribution")
	m.AddAuthor(a)

	a.AddInstituteName("CMU")
	a.SetComment("changed")

	got := m.Authors()[0]
	if text, _ := got.Comment(); text != "Equal contribution" {
		t.Errorf("registered comment = %q, want %q", text, "Equal contribution")
	}
	if len(got.Indices()) != 1 {
		t.Errorf("registered indices = %v, want one entry", got.Indices())
	}
	if len(m.Institutes()) != 1 {
		t.Errorf("manager institutes = %v, want only MIT", m.Institutes())
	}
}

func TestAddAuthor_FootnoteReferences(t *testing.T) {
	m := NewManager()

	a := newAuthor("Alice", "a@x.org", "MIT")
	a.SetComment("Equal contribution")
	b := newAuthor("Bob", "b@x.org", "MIT")
	c := newAuthor("Carol", "c@x.org", "MIT")
	c.SetComment("Work done at Google")
	d := newAuthor("Dan", "d@x.org", "MIT")
	d.SetComment("Equal contribution")

	ra := m.AddAuthor(a)
	rb := m.AddAuthor(b)
	rc := m.AddAuthor(c)
	rd := m.AddAuthor(d)

	if _, ok := ra.CommentRef(); ok {
		t.Error("first occurrence should not carry a reference")
	}
	if _, ok := rb.CommentRef(); ok {
		t.Error("author without comment should not carry a reference")
	}
	if _, ok := rc.CommentRef(); ok {
		t.Error("distinct comment should not carry a reference")
	}
	ref, ok := rd.CommentRef()
	if !ok || ref != 0 {
		t.Errorf("CommentRef() = (%d, %v), want (0, true)", ref, ok)
	}

	want := []string{"Equal contribution", "Work done at Google"}
	if got := m.Footnotes(); !reflect.DeepEqual(got, want) {
		t.Errorf("Footnotes() = %v, want %v", got, want)
	}
}

func TestEmails_FirstInstituteOnly(t *testing.T) {
	m := NewManager()
	m.AddAuthor(newAuthor("Alice", "alice@mit.edu", "MIT"))
	m.AddAuthor(newAuthor("Bob", "bob@cmu.edu", "CMU", "MIT"))
	m.AddAuthor(newAuthor("Nobody", "nobody@void.org"))

	if got := m.Emails(1); !reflect.DeepEqual(got, []string{"bob@cmu.edu"}) {
		t.Errorf("Emails(1) = %v, want [bob@cmu.edu]", got)
	}
	if got := m.Emails(0); !reflect.DeepEqual(got, []string{"alice@mit.edu"}) {
		t.Errorf("Emails(0) = %v, want [alice@mit.edu]", got)
	}
	if got := m.Emails(5); len(got) != 0 {
		t.Errorf("Emails(5) = %v, want empty", got)
	}
}

func TestMergeEmails(t *testing.T) {
	tests := []struct {
		name   string
		emails []string
		want   string
	}{
		{"empty", nil, ""},
		{"single", []string{"a@x.com"}, "a@x.com"},
		{"grouped and single", []string{"a@x.com", "b@x.com", "c@y.com"}, `\{a,b\}@x.com,c@y.com`},
		{"first appearance order", []string{"c@y.com", "a@x.com", "b@x.com"}, `c@y.com,\{a,b\}@x.com`},
		{"interleaved domains", []string{"a@x.com", "c@y.com", "b@x.com", "d@y.com"}, `\{a,b\}@x.com,\{c,d\}@y.com`},
		{"domain after first at", []string{"a@b@x.com", "c@b@x.com"}, `\{a,c\}@b@x.com`},
		{"no at sign", []string{"local", "a@x.com"}, "local,a@x.com"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := MergeEmails(tt.emails); got != tt.want {
				t.Errorf("MergeEmails(%v) = %q, want %q", tt.emails, got, tt.want)
			}
		})
	}
}

func TestDump_NoAuthors(t *testing.T) {
	tests := []struct {
		format Format
		want   string
	}{
		{FormatLNCS, `\author{}\institute{}`},
		{FormatACM, `\author{}`},
		{FormatBlog, `\author{}`},
	}
	for _, tt := range tests {
		t.Run(tt.format.String(), func(t *testing.T) {
			got, err := NewManager().Dump(tt.format)
			if err != nil {
				t.Fatalf("Dump() error: %v", err)
			}
			if got != tt.want {
				t.Errorf("Dump() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestDumpLNCS(t *testing.T) {
	m := NewManager()
	a := newAuthor("Alice", "alice@mit.edu", "MIT")
	a.SetComment("Equal contribution")
	b := newAuthor("Bob", "bob@mit.edu", "MIT", "CMU")
	b.SetComment("Equal contribution")
	c := newAuthor("Carol", "carol@cmu.edu", "CMU")
	m.AddAuthor(a)
	m.AddAuthor(b)
	m.AddAuthor(c)

	got, err := m.Dump(FormatLNCS)
	if err != nil {
		t.Fatalf("Dump() error: %v", err)
	}

	want := `\newcommand*\samethanks[1][\value{footnote}]{\footnotemark[#1]}
\author{
  Alice\inst{1}\thanks{Equal contribution} \and Bob\inst{1,2}\samethanks[1] \and Carol\inst{2}
}
\institute{
  MIT,\\
  \email{\{alice,bob\}@mit.edu} \and
  CMU,\\
  \email{carol@cmu.edu}
}`
	if got != want {
		t.Errorf("Dump(lncs) mismatch\n--- got ---\n%s\n--- want ---\n%s", got, want)
	}
}

func TestDumpLNCS_SingleInstituteHidesMarkers(t *testing.T) {
	m := NewManager()
	m.AddAuthor(newAuthor("Alice", "alice@mit.edu", "MIT"))
	m.AddAuthor(newAuthor("Bob", "bob@mit.edu", "MIT"))

	got, err := m.Dump(FormatLNCS)
	if err != nil {
		t.Fatalf("Dump() error: %v", err)
	}
	if strings.Contains(got, `\inst{`) {
		t.Errorf("single institute should not render \\inst markers:\n%s", got)
	}
	if !strings.Contains(got, `Alice \and Bob`) {
		t.Errorf("authors not joined by \\and:\n%s", got)
	}
}

func TestDumpLNCS_InstituteWithoutFirstAuthors(t *testing.T) {
	m := NewManager()
	m.AddAuthor(newAuthor("Alice", "alice@mit.edu", "MIT", "CMU"))

	got, err := m.Dump(FormatLNCS)
	if err != nil {
		t.Fatalf("Dump() error: %v", err)
	}
	if !strings.Contains(got, "MIT,\\\\\n  \\email{alice@mit.edu} \\and\n  CMU\n}") {
		t.Errorf("CMU should have no email suffix:\n%s", got)
	}
}

func TestDumpACM(t *testing.T) {
	m := NewManager()
	a := NewAuthor("Alice", "alice@mit.edu")
	a.AddInstitute(Institute{Name: "MIT", City: "Cambridge", State: "MA", Country: "USA"})
	a.SetComment("Equal contribution")
	b := NewAuthor("Bob", "bob@eth.ch")
	b.AddInstitute(Institute{Name: "ETH", Country: "Switzerland"})
	b.SetComment("Equal contribution")
	m.AddAuthor(a)
	m.AddAuthor(b)

	got, err := m.Dump(FormatACM)
	if err != nil {
		t.Fatalf("Dump() error: %v", err)
	}

	want := `\author{Alice}
\authornote{Equal contribution}
\affiliation{
  \institution{MIT}
  \city{Cambridge}
  \state{MA}
  \country{USA}
}
\email{alice@mit.edu}
\author{Bob}
\authornotemark[1]
\affiliation{
  \institution{ETH}
  \country{Switzerland}
}
\email{bob@eth.ch}`
	if got != want {
		t.Errorf("Dump(acm) mismatch\n--- got ---\n%s\n--- want ---\n%s", got, want)
	}
}

func TestDumpACM_MissingCountry(t *testing.T) {
	m := NewManager()
	m.AddAuthor(newAuthor("Alice", "alice@mit.edu", "MIT"))

	_, err := m.Dump(FormatACM)
	if err == nil {
		t.Fatal("expected error for institute without country")
	}
	if !errors.Is(err, ErrMissingCountry) {
		t.Errorf("error = %v, want ErrMissingCountry", err)
	}
	if !strings.Contains(err.Error(), "MIT") {
		t.Errorf("error should name the institute, got: %v", err)
	}
}

func TestDumpBlog(t *testing.T) {
	m := NewManager()
	m.AddAuthor(newAuthor("Alice", "alice@mit.edu", "MIT"))
	m.AddAuthor(newAuthor("Bob", "bob@cmu.edu"))

	got, err := m.Dump(FormatBlog)
	if err != nil {
		t.Fatalf("Dump() error: %v", err)
	}
	if got != `\author{Alice, Bob}` {
		t.Errorf("Dump(blog) = %q, want %q", got, `\author{Alice, Bob}`)
	}
}

func TestDumpAnonymous(t *testing.T) {
	m := NewManager()
	m.AddAuthor(newAuthor("Alice", "alice@mit.edu", "MIT"))

	tests := []struct {
		format Format
		want   string
	}{
		{FormatLNCS, `\author{}\institute{}`},
		{FormatACM, `\author{}`},
		{FormatBlog, `\author{}`},
	}
	for _, tt := range tests {
		if got := m.DumpAnonymous(tt.format); got != tt.want {
			t.Errorf("DumpAnonymous(%s) = %q, want %q", tt.format, got, tt.want)
		}
	}
}

func TestDump_UnknownFormat(t *testing.T) {
	if _, err := NewManager().Dump(Format(42)); err == nil {
		t.Fatal("expected error for unknown format")
	}
}
