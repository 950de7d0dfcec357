package tui

import "fmt"

// StatusBar renders the bottom status bar.
func StatusBar(entries int, query string, firstMatch int, validPattern bool, width int) string {
	text := fmt.Sprintf("jotfind - %d %s", entries, plural(entries, "entry", "entries"))
	switch {
	case query == "":
	case !validPattern:
		text += " · invalid pattern"
	case firstMatch < 0:
		text += " · no matches"
	default:
		text += fmt.Sprintf(" · first match #%d", firstMatch+1)
	}
	return statusBarStyle.Width(width).Render(text)
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}
