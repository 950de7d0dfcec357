package tui

import (
	"strings"

	"github.com/charmbracelet/glamour"
)

const helpMarkdown = `# jotfind

Type into the box and press **enter** to add it to the list. Blank input is
ignored.

Once the list has entries a search box appears. Every entry is shown with the
parts that match the search emphasized, and the list scrolls to the first
entry that contains the search text.

## Keys

| Key | Action |
| --- | --- |
| enter, ctrl+s | submit the text |
| alt+enter | new line in the text |
| tab | switch between text and search |
| esc | clear the search |
| pgup, pgdn, mouse wheel | scroll the list |
| f1 | toggle this help |
| ctrl+c | quit |

## Search syntax

The search is a case-insensitive regular expression: ` + "`.`" + `, ` + "`*`" + ` and
` + "`|`" + ` keep their pattern meaning. Only text equal to the search itself is
emphasized. A search that is not a valid pattern highlights nothing.
`

// newRenderer builds the markdown renderer for the given theme.
func newRenderer(theme string, wrap int) (*glamour.TermRenderer, error) {
	style := glamour.WithAutoStyle()
	switch theme {
	case "dark", "light":
		style = glamour.WithStandardStyle(theme)
	}
	return glamour.NewTermRenderer(style, glamour.WithWordWrap(wrap))
}

// HelpText returns the rendered help page, or the raw markdown if rendering
// is unavailable.
func HelpText(r *glamour.TermRenderer) string {
	if r == nil {
		return helpMarkdown
	}
	rendered, err := r.Render(helpMarkdown)
	if err != nil {
		return helpMarkdown
	}
	return strings.TrimSpace(rendered)
}
