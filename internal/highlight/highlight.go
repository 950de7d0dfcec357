// Package highlight splits entry text into plain and matched fragments for a
// search query.
//
// The query is used as a case-insensitive regular expression, not as an
// escaped literal: characters such as '.', '*' or '|' keep their pattern
// meaning. A fragment is only reported as matched when it equals the query
// text (ignoring case), so a pattern like "a.c" splits "abc" out of the
// content but leaves it unemphasized. First-match detection, in contrast,
// is a literal substring test.
package highlight

import (
	"regexp"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Fragment is a run of entry text, either plain or matching the query.
type Fragment struct {
	Text    string
	Matched bool
}

// Matcher is a compiled search query. The zero query matches nothing.
type Matcher struct {
	query string
	lower string
	re    *regexp.Regexp
	err   error
}

// Compile prepares query for repeated use across entries. It never fails:
// a query that is not a valid pattern produces a Matcher whose Split returns
// content unchanged. Use Err to find out why.
func Compile(query string) *Matcher {
	m := &Matcher{query: query, lower: strings.ToLower(query)}
	if query == "" {
		return m
	}
	m.re, m.err = regexp.Compile("(?i)(" + query + ")")
	return m
}

// Query returns the query the matcher was compiled from.
func (m *Matcher) Query() string { return m.query }

// Valid reports whether the query compiled as a pattern.
func (m *Matcher) Valid() bool { return m.err == nil }

// Err returns the pattern compile error, if any.
func (m *Matcher) Err() error { return m.err }

// Split breaks content into fragments, left to right, on non-overlapping
// matches of the query. Empty fragments are dropped. Each match becomes one
// fragment even when the query has capture groups of its own.
func (m *Matcher) Split(content string) []Fragment {
	if m.re == nil {
		return []Fragment{{Text: content}}
	}

	var frags []Fragment
	add := func(s string) {
		if s == "" {
			return
		}
		frags = append(frags, Fragment{Text: s, Matched: strings.ToLower(s) == m.lower})
	}

	start := 0
	for _, loc := range m.re.FindAllStringIndex(content, -1) {
		add(content[start:loc[0]])
		add(content[loc[0]:loc[1]])
		start = loc[1]
	}
	add(content[start:])

	if frags == nil {
		// content was empty
		return []Fragment{{Text: content}}
	}
	return frags
}

// Contains reports whether content holds the query as a literal substring,
// ignoring case. The empty query is contained nowhere.
func (m *Matcher) Contains(content string) bool {
	if m.query == "" {
		return false
	}
	return strings.Contains(strings.ToLower(content), m.lower)
}

// FirstMatch returns the index of the first item containing the query, or
// -1 when there is none.
func (m *Matcher) FirstMatch(items []string) int {
	for i, item := range items {
		if m.Contains(item) {
			return i
		}
	}
	return -1
}

// Highlight is a one-shot Compile(query).Split(content).
func Highlight(content, query string) []Fragment {
	return Compile(query).Split(content)
}

// FirstMatch is a one-shot Compile(query).FirstMatch(items).
func FirstMatch(items []string, query string) int {
	return Compile(query).FirstMatch(items)
}

// Render joins fragments, styling matched ones with matched and the rest
// with plain. Styles are applied line by line so lipgloss does not pad
// multi-line fragments into a block.
func Render(frags []Fragment, plain, matched lipgloss.Style) string {
	var b strings.Builder
	for _, f := range frags {
		style := plain
		if f.Matched {
			style = matched
		}
		for i, line := range strings.Split(f.Text, "\n") {
			if i > 0 {
				b.WriteByte('\n')
			}
			if line != "" {
				b.WriteString(style.Render(line))
			}
		}
	}
	return b.String()
}
