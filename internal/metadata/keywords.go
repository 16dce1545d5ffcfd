package metadata

import "strings"

// Keywords is the ordered keyword list of a paper.
type Keywords struct {
	items []string
}

// Add appends a keyword.
func (k *Keywords) Add(keyword string) {
	k.items = append(k.items, keyword)
}

// Len returns the number of keywords.
func (k *Keywords) Len() int { return len(k.items) }

// Dump renders \keywords{a, b}, or an empty string when there are none.
func (k *Keywords) Dump() string {
	if len(k.items) == 0 {
		return ""
	}
	return `\keywords{` + strings.Join(k.items, ", ") + `}`
}
