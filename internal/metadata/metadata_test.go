package metadata

import (
	"errors"
	"testing"
)

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in      string
		want    Format
		wantErr bool
	}{
		{"lncs", FormatLNCS, false},
		{"ACM", FormatACM, false},
		{" blog ", FormatBlog, false},
		{"ieee", 0, true},
		{"", 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseFormat(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseFormat(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("ParseFormat(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestFormatString_RoundTrip(t *testing.T) {
	for _, f := range Formats {
		got, err := ParseFormat(f.String())
		if err != nil || got != f {
			t.Errorf("ParseFormat(%q) = (%v, %v), want %v", f.String(), got, err, f)
		}
	}
}

func TestInstituteDump(t *testing.T) {
	full := Institute{Name: "MIT", City: "Cambridge", State: "MA", Country: "USA"}

	tests := []struct {
		name   string
		inst   Institute
		format Format
		want   string
	}{
		{"lncs shows name only", full, FormatLNCS, "MIT"},
		{"blog shows name only", full, FormatBlog, "MIT"},
		{"acm full", full, FormatACM, "\\affiliation{\n  \\institution{MIT}\n  \\city{Cambridge}\n  \\state{MA}\n  \\country{USA}\n}"},
		{"acm country only", Institute{Name: "ETH", Country: "Switzerland"}, FormatACM, "\\affiliation{\n  \\institution{ETH}\n  \\country{Switzerland}\n}"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.inst.Dump(tt.format)
			if err != nil {
				t.Fatalf("Dump() error: %v", err)
			}
			if got != tt.want {
				t.Errorf("Dump() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestInstituteDump_MissingCountry(t *testing.T) {
	_, err := NewInstitute("MIT").Dump(FormatACM)
	if !errors.Is(err, ErrMissingCountry) {
		t.Fatalf("Dump(acm) error = %v, want ErrMissingCountry", err)
	}
}

func TestAuthorComment(t *testing.T) {
	a := NewAuthor("Alice", "a@x.org")
	if _, ok := a.Comment(); ok {
		t.Fatal("new author should have no comment")
	}
	a.SetComment("first")
	a.SetComment("second")
	if text, ok := a.Comment(); !ok || text != "second" {
		t.Errorf("Comment() = (%q, %v), want (%q, true)", text, ok, "second")
	}
}

func TestAuthorInstitutes_NoDedup(t *testing.T) {
	a := NewAuthor("Alice", "a@x.org")
	a.AddInstituteName("MIT")
	a.AddInstitute(NewInstitute("MIT"))
	if got := len(a.Institutes()); got != 2 {
		t.Errorf("len(Institutes()) = %d, want 2", got)
	}
	if a.Institute(1).Name != "MIT" {
		t.Errorf("Institute(1) = %v, want MIT", a.Institute(1))
	}
}

func TestKeywords(t *testing.T) {
	var k Keywords
	if got := k.Dump(); got != "" {
		t.Errorf("empty Dump() = %q, want empty", got)
	}
	k.Add("a")
	k.Add("b")
	if got := k.Dump(); got != `\keywords{a, b}` {
		t.Errorf("Dump() = %q, want %q", got, `\keywords{a, b}`)
	}
	if k.Len() != 2 {
		t.Errorf("Len() = %d, want 2", k.Len())
	}
}
