package collector

import "strings"

// Collector holds the draft being typed and the entries submitted so far.
// Entries are append-only: nothing removes or reorders them.
type Collector struct {
	draft   string
	entries []string
}

// New creates an empty collector.
func New() *Collector {
	return &Collector{}
}

// UpdateDraft replaces the draft text.
func (c *Collector) UpdateDraft(text string) {
	c.draft = text
}

// Submit appends the draft to the entries and clears it. A draft that is
// blank after trimming is left untouched and nothing is appended.
// The untrimmed draft is what gets stored.
func (c *Collector) Submit() bool {
	if strings.TrimSpace(c.draft) == "" {
		return false
	}
	c.entries = append(c.entries, c.draft)
	c.draft = ""
	return true
}

// Draft returns the current draft text.
func (c *Collector) Draft() string {
	return c.draft
}

// Entries returns a copy of the submitted entries in submission order.
func (c *Collector) Entries() []string {
	out := make([]string, len(c.entries))
	copy(out, c.entries)
	return out
}

// Len returns the number of submitted entries.
func (c *Collector) Len() int {
	return len(c.entries)
}
