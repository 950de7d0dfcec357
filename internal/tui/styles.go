package tui

import "github.com/charmbracelet/lipgloss"

var (
	// Colors
	primaryColor   = lipgloss.Color("#3B82F6")
	secondaryColor = lipgloss.Color("#6B7280")
	matchFgColor   = lipgloss.Color("#111827")

	// Header and status bar
	titleStyle = lipgloss.NewStyle().
			Foreground(primaryColor).
			Bold(true)

	statusBarStyle = lipgloss.NewStyle().
			Background(primaryColor).
			Foreground(lipgloss.Color("#FFFFFF")).
			Padding(0, 1)

	// Submit button
	buttonStyle = lipgloss.NewStyle().
			Background(primaryColor).
			Foreground(lipgloss.Color("#FFFFFF")).
			Padding(0, 2)

	hintStyle = lipgloss.NewStyle().
			Foreground(secondaryColor).
			Italic(true)

	// Entry list
	listBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(secondaryColor)

	entryStyle = lipgloss.NewStyle().
			Border(lipgloss.HiddenBorder(), false, false, false, true).
			PaddingLeft(1)

	firstMatchEntryStyle = entryStyle.
				Border(lipgloss.ThickBorder(), false, false, false, true).
				BorderForeground(primaryColor)

	separatorStyle = lipgloss.NewStyle().
			Foreground(secondaryColor)

	plainTextStyle = lipgloss.NewStyle()

	// Input area
	inputPromptStyle = lipgloss.NewStyle().
				Foreground(primaryColor)
)

func submitButton() string {
	return buttonStyle.Render("Submit")
}

// matchStyle renders matched fragments on the configured highlight colour.
func matchStyle(bg string) lipgloss.Style {
	return lipgloss.NewStyle().
		Background(lipgloss.Color(bg)).
		Foreground(matchFgColor).
		Bold(true)
}
