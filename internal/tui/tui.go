package tui

import (
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"

	"github.com/jotfind/jotfind/internal/collector"
	"github.com/jotfind/jotfind/internal/config"
	"github.com/jotfind/jotfind/internal/highlight"
	"github.com/jotfind/jotfind/internal/logging"
	"github.com/jotfind/jotfind/internal/scroll"
)

// Options configures the TUI.
type Options struct {
	Config  config.Config
	Logger  *logging.Logger
	Version string
}

// scrollRequestMsg asks for the list to be brought to target. It is issued
// after the render that placed target, once per query change.
type scrollRequestMsg struct {
	Query  string
	Target scroll.Target
}

// scrollFrameMsg advances the scroll animation by one frame.
type scrollFrameMsg struct{}

type focusArea int

const (
	focusDraft focusArea = iota
	focusSearch
)

// Model is the Bubble Tea model for the collect-and-search screen.
type Model struct {
	options Options
	keys    KeyMap
	help    help.Model

	draft  textarea.Model
	search textinput.Model
	list   viewport.Model

	entries     *collector.Collector
	matcher     *highlight.Matcher
	coordinator *scroll.Coordinator
	animator    *scroll.Animator

	// set by refreshList for the current render
	firstMatch int
	target     scroll.Target
	totalLines int

	match      lipgloss.Style
	mdRenderer *glamour.TermRenderer
	log        *logging.Logger

	focus    focusArea
	showHelp bool
	width    int
	height   int
	ready    bool
	quitting bool
}

// New creates a new TUI model.
func New(opts Options) Model {
	cfg := opts.Config
	cfg.Validate()
	opts.Config = cfg

	ta := textarea.New()
	ta.Placeholder = cfg.TUI.DraftPlaceholder
	ta.Focus()
	ta.CharLimit = cfg.TUI.CharLimit
	ta.MaxHeight = 0 // no cap on the number of lines
	ta.SetHeight(cfg.TUI.InputHeight)
	ta.ShowLineNumbers = false
	ta.Prompt = inputPromptStyle.Render("┃ ")

	ti := textinput.New()
	ti.Placeholder = cfg.TUI.SearchPlaceholder
	ti.Prompt = inputPromptStyle.Render("Search: ")
	ti.CharLimit = 0

	vp := viewport.New(80, 10)

	renderer, _ := newRenderer(cfg.TUI.Theme, 76)

	log := opts.Logger
	if log == nil {
		log = logging.NopLogger()
	}

	return Model{
		options: opts,
		keys:    DefaultKeyMap(),
		help:    help.New(),
		draft:   ta,
		search:  ti,
		list:    vp,
		entries: collector.New(),
		matcher: highlight.Compile(""),

		coordinator: scroll.NewCoordinator(),
		animator: scroll.NewAnimator(scroll.AnimatorOptions{
			Smooth:    cfg.Scroll.Smooth,
			FPS:       cfg.Scroll.FPS,
			Frequency: cfg.Scroll.Frequency,
			Damping:   cfg.Scroll.Damping,
		}),

		firstMatch: -1,
		target:     scroll.None,
		match:      matchStyle(cfg.TUI.HighlightColor),
		mdRenderer: renderer,
		log:        log.With("component", "tui"),
	}
}

func (m Model) Init() tea.Cmd {
	return textarea.Blink
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		cmd := m.handleKey(msg)
		return m, cmd

	case tea.MouseMsg:
		if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft && m.onSubmitButton(msg.X, msg.Y) {
			cmd := m.handleSubmit()
			return m, cmd
		}
		if m.entries.Len() == 0 {
			return m, nil
		}
		m.animator.Stop()
		var cmd tea.Cmd
		m.list, cmd = m.list.Update(msg)
		return m, cmd

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		m.layout()
		return m, nil

	case scrollRequestMsg:
		if msg.Query != m.search.Value() {
			// a newer query has already issued its own request
			return m, nil
		}
		offset := scroll.CenterOffset(msg.Target, m.list.Height, m.totalLines)
		m.log.Debug("scroll requested", "line", msg.Target.Line, "offset", offset)
		m.animator.Start(m.list.YOffset, offset)
		cmd := m.stepScroll()
		return m, cmd

	case scrollFrameMsg:
		if !m.animator.Active() {
			return m, nil
		}
		cmd := m.stepScroll()
		return m, cmd
	}

	// Cursor blink and other internal messages go to the focused input.
	cmd := m.updateFocused(msg)
	return m, cmd
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.showHelp = !m.showHelp
		return nil
	}

	if m.showHelp {
		if msg.Type == tea.KeyEsc {
			m.showHelp = false
		}
		return nil
	}

	switch {
	case key.Matches(msg, m.keys.SwitchFocus):
		return m.toggleFocus()

	case key.Matches(msg, m.keys.PageUp):
		m.animator.Stop()
		m.list.SetYOffset(m.list.YOffset - m.list.Height)
		return nil

	case key.Matches(msg, m.keys.PageDown):
		m.animator.Stop()
		m.list.SetYOffset(m.list.YOffset + m.list.Height)
		return nil
	}

	if m.focus == focusSearch {
		if key.Matches(msg, m.keys.ClearSearch) {
			m.search.SetValue("")
			return m.applyQuery()
		}
		return m.updateFocused(msg)
	}

	switch {
	case key.Matches(msg, m.keys.Newline):
		m.draft.InsertString("\n")
		m.entries.UpdateDraft(m.draft.Value())
		return nil

	case key.Matches(msg, m.keys.Submit):
		return m.handleSubmit()
	}
	return m.updateFocused(msg)
}

// updateFocused forwards msg to whichever input has focus and syncs the
// collector or the query with its new value.
func (m *Model) updateFocused(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	if m.focus == focusSearch {
		before := m.search.Value()
		m.search, cmd = m.search.Update(msg)
		if m.search.Value() != before {
			return tea.Batch(cmd, m.applyQuery())
		}
		return cmd
	}

	m.draft, cmd = m.draft.Update(msg)
	m.entries.UpdateDraft(m.draft.Value())
	return cmd
}

func (m *Model) handleSubmit() tea.Cmd {
	m.entries.UpdateDraft(m.draft.Value())
	if !m.entries.Submit() {
		m.log.Debug("blank submit ignored", "length", len(m.draft.Value()))
		return nil
	}
	m.draft.Reset()
	m.log.Info("entry submitted", "entries", m.entries.Len())

	// the search box and list appear with the first entry
	if m.entries.Len() == 1 {
		m.layout()
	} else {
		m.refreshList()
	}
	if m.search.Value() == "" {
		m.list.GotoBottom()
	}
	return nil
}

// onSubmitButton reports whether the cell at x, y is on the Submit button,
// which sits on the line below the draft.
func (m *Model) onSubmitButton(x, y int) bool {
	row := 1 + m.draft.Height()
	return y == row && x >= 0 && x < lipgloss.Width(submitButton())
}

func (m *Model) toggleFocus() tea.Cmd {
	if m.focus == focusSearch {
		m.focus = focusDraft
		m.search.Blur()
		return m.draft.Focus()
	}
	if m.entries.Len() == 0 {
		return nil
	}
	m.focus = focusSearch
	m.draft.Blur()
	return m.search.Focus()
}

// applyQuery re-renders the list for the current search value and, if the
// query changed, returns the command that scrolls to the first match. The
// command runs after this render, so it always sees the new target.
func (m *Model) applyQuery() tea.Cmd {
	query := m.search.Value()
	m.matcher = highlight.Compile(query)
	if !m.matcher.Valid() {
		m.log.Debug("query is not a valid pattern", "error", m.matcher.Err())
	}

	m.refreshList()
	m.log.Debug("query changed", "query_len", len(query), "first_match", m.firstMatch)

	target, ok := m.coordinator.Observe(query, m.target)
	if !ok {
		return nil
	}
	return func() tea.Msg {
		return scrollRequestMsg{Query: query, Target: target}
	}
}

// stepScroll applies one animation frame and schedules the next.
func (m *Model) stepScroll() tea.Cmd {
	offset, done := m.animator.Step()
	m.list.SetYOffset(offset)
	if done {
		return nil
	}
	return tea.Tick(m.animator.Frame(), func(time.Time) tea.Msg {
		return scrollFrameMsg{}
	})
}

// layout sizes the widgets for the current window and re-renders the list.
func (m *Model) layout() {
	m.draft.SetWidth(m.width)
	m.search.Width = m.width - lipgloss.Width(m.search.Prompt) - 1

	// title + draft + button line + status + help
	fixed := 1 + m.draft.Height() + 1 + 1 + 1
	if m.entries.Len() > 0 {
		// search line + list border
		fixed += 1 + 2
	}
	listH := m.height - fixed
	if listH < 1 {
		listH = 1
	}
	m.list.Width = m.width - 2
	if m.list.Width < 1 {
		m.list.Width = 1
	}
	m.list.Height = listH
	m.refreshList()
}

// refreshList renders every entry with its highlight fragments and records
// where the first match landed.
func (m *Model) refreshList() {
	items := m.entries.Entries()
	m.firstMatch = m.matcher.FirstMatch(items)
	m.target = scroll.None

	itemWidth := m.list.Width - 1 // left border
	separator := separatorStyle.Render(strings.Repeat("─", max(m.list.Width, 1)))

	var blocks []string
	line := 0
	for i, item := range items {
		body := highlight.Render(m.matcher.Split(item), plainTextStyle, m.match)

		style := entryStyle
		if i == m.firstMatch {
			style = firstMatchEntryStyle
		}
		if itemWidth > 1 {
			style = style.Width(itemWidth)
		}
		block := style.Render(body)

		if i > 0 {
			blocks = append(blocks, separator)
			line++
		}
		h := lipgloss.Height(block)
		if i == m.firstMatch {
			m.target = scroll.Target{Line: line, Height: h}
		}
		blocks = append(blocks, block)
		line += h
	}

	m.totalLines = line
	m.list.SetContent(strings.Join(blocks, "\n"))
}

func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if !m.ready {
		return "Initializing..."
	}
	if m.showHelp {
		footer := "esc or f1 to close"
		if v := m.options.Version; v != "" {
			footer = "jotfind " + v + " · " + footer
		}
		return HelpText(m.mdRenderer) + "\n\n" + hintStyle.Render(footer)
	}

	button := submitButton() + " " + hintStyle.Render("enter to submit · alt+enter for a new line")

	sections := []string{
		titleStyle.Render("Text Submission and Search"),
		m.draft.View(),
		button,
	}
	if m.entries.Len() > 0 {
		sections = append(sections,
			m.search.View(),
			listBoxStyle.Render(m.list.View()),
		)
	}
	sections = append(sections,
		StatusBar(m.entries.Len(), m.search.Value(), m.firstMatch, m.matcher.Valid(), m.width),
		m.help.View(m.keys),
	)
	return strings.Join(sections, "\n")
}
