package tui

import (
	"fmt"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jotfind/jotfind/internal/config"
	"github.com/jotfind/jotfind/internal/scroll"
)

func newReadyModel(t *testing.T, cfg config.Config) Model {
	t.Helper()
	m := New(Options{Config: cfg, Version: "test"})
	newM, _ := m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	return newM.(Model)
}

func typeText(m Model, s string) Model {
	newM, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)})
	return newM.(Model)
}

func press(m Model, msg tea.KeyMsg) (Model, tea.Cmd) {
	newM, cmd := m.Update(msg)
	return newM.(Model), cmd
}

var (
	enterKey    = tea.KeyMsg{Type: tea.KeyEnter}
	altEnterKey = tea.KeyMsg{Type: tea.KeyEnter, Alt: true}
	tabKey      = tea.KeyMsg{Type: tea.KeyTab}
	escKey      = tea.KeyMsg{Type: tea.KeyEsc}
)

func submit(t *testing.T, m Model, texts ...string) Model {
	t.Helper()
	for _, s := range texts {
		m = typeText(m, s)
		m, _ = press(m, enterKey)
	}
	return m
}

// focusOnSearch switches focus to the search input.
func focusOnSearch(t *testing.T, m Model) Model {
	t.Helper()
	m, _ = press(m, tabKey)
	require.Equal(t, focusSearch, m.focus, "search should be focused after tab")
	return m
}

func TestInitialView(t *testing.T) {
	m := New(Options{Config: config.Defaults()})
	assert.Equal(t, "Initializing...", m.View())
}

func TestSubmitAppendsEntry(t *testing.T) {
	m := newReadyModel(t, config.Defaults())
	m = submit(t, m, "Hi there")

	assert.Equal(t, []string{"Hi there"}, m.entries.Entries())
	assert.Empty(t, m.draft.Value())
	assert.Empty(t, m.entries.Draft())
}

func TestBlankSubmitIgnored(t *testing.T) {
	m := newReadyModel(t, config.Defaults())
	m = submit(t, m, "   ")

	assert.Zero(t, m.entries.Len())
	assert.Equal(t, "   ", m.draft.Value(), "whitespace draft should be kept")
}

func TestAltEnterInsertsNewline(t *testing.T) {
	m := newReadyModel(t, config.Defaults())
	m = typeText(m, "first")
	m, _ = press(m, altEnterKey)
	m = typeText(m, "second")
	m, _ = press(m, enterKey)

	assert.Equal(t, []string{"first\nsecond"}, m.entries.Entries())
}

func TestLongInputNotTruncated(t *testing.T) {
	m := newReadyModel(t, config.Defaults())

	long := strings.Repeat("x", 5000)
	m = submit(t, m, long)
	entries := m.entries.Entries()
	require.Len(t, entries, 1)
	assert.Len(t, entries[0], 5000)

	m = focusOnSearch(t, m)
	query := strings.Repeat("x", 300)
	m = typeText(m, query)
	assert.Equal(t, query, m.search.Value())
	assert.Equal(t, 0, m.firstMatch)
}

func TestManyLinesNotTruncated(t *testing.T) {
	m := newReadyModel(t, config.Defaults())
	for i := 0; i < 150; i++ {
		m = typeText(m, "l")
		m, _ = press(m, altEnterKey)
	}
	m = typeText(m, "end")
	m, _ = press(m, enterKey)

	entries := m.entries.Entries()
	require.Len(t, entries, 1)
	assert.Equal(t, 151, strings.Count(entries[0], "\n")+1)
}

func TestSearchHiddenUntilFirstEntry(t *testing.T) {
	m := newReadyModel(t, config.Defaults())

	assert.NotContains(t, m.View(), "Search: ", "search input should be hidden with no entries")
	m, _ = press(m, tabKey)
	assert.Equal(t, focusDraft, m.focus, "tab should not focus a hidden search input")

	m = submit(t, m, "something")
	view := m.View()
	assert.Contains(t, view, "Search: ")
	assert.Contains(t, view, "something")
}

func TestTypingInSearchLeavesDraft(t *testing.T) {
	m := newReadyModel(t, config.Defaults())
	m = submit(t, m, "alpha")
	m = typeText(m, "draft text")
	m = focusOnSearch(t, m)
	m = typeText(m, "alp")

	assert.Equal(t, "alp", m.search.Value())
	assert.Equal(t, "draft text", m.draft.Value())

	// enter in the search box does not submit
	m, _ = press(m, enterKey)
	assert.Equal(t, 1, m.entries.Len())

	m, _ = press(m, tabKey)
	assert.Equal(t, focusDraft, m.focus, "tab should return focus to the draft")
}

func TestFirstMatchIsEarliestEntry(t *testing.T) {
	m := newReadyModel(t, config.Defaults())
	m = submit(t, m, "hello world", "goodbye", "HELLO again")
	m = focusOnSearch(t, m)
	m = typeText(m, "hello")

	assert.Equal(t, 0, m.firstMatch)
	assert.Equal(t, 0, m.target.Line)
}

func TestQueryChangeRequestsScroll(t *testing.T) {
	m := newReadyModel(t, config.Defaults())
	m = submit(t, m, "hello world", "goodbye", "HELLO again")
	m = focusOnSearch(t, m)

	m.search.SetValue("again")
	cmd := m.applyQuery()
	require.NotNil(t, cmd, "expected a scroll command for a matching query")

	req, ok := cmd().(scrollRequestMsg)
	require.True(t, ok, "cmd should produce a scrollRequestMsg")
	assert.Equal(t, "again", req.Query)
	// two single-line entries and two separators come first
	assert.Equal(t, 4, req.Target.Line)

	// same query again is not a change
	assert.Nil(t, m.applyQuery(), "re-applying the same query should not scroll")
}

func TestClearingQueryDoesNotScroll(t *testing.T) {
	m := newReadyModel(t, config.Defaults())
	m = submit(t, m, "hello world")
	m = focusOnSearch(t, m)

	m.search.SetValue("hello")
	require.NotNil(t, m.applyQuery())

	m.search.SetValue("")
	assert.Nil(t, m.applyQuery(), "clearing the query should not scroll")
	assert.Equal(t, -1, m.firstMatch)
}

func TestNoMatchDoesNotScroll(t *testing.T) {
	m := newReadyModel(t, config.Defaults())
	m = submit(t, m, "hello world")
	m = focusOnSearch(t, m)

	m.search.SetValue("absent")
	assert.Nil(t, m.applyQuery(), "a query without matches should not scroll")
	assert.Contains(t, m.View(), "no matches")
}

func TestInvalidPatternQuery(t *testing.T) {
	m := newReadyModel(t, config.Defaults())
	m = submit(t, m, "call(x)")
	m = focusOnSearch(t, m)
	m = typeText(m, "(")

	require.False(t, m.matcher.Valid(), "( should not compile as a pattern")
	// first-match detection is literal, so the entry is still found
	assert.Equal(t, 0, m.firstMatch)
	assert.Contains(t, m.View(), "invalid pattern")
}

func manyEntries(n int, needle int) []string {
	var out []string
	for i := 0; i < n; i++ {
		if i == needle {
			out = append(out, "the needle is here")
			continue
		}
		out = append(out, fmt.Sprintf("entry number %d", i))
	}
	return out
}

func TestScrollRequestCentersFirstMatch(t *testing.T) {
	cfg := config.Defaults()
	cfg.Scroll.Smooth = false
	m := newReadyModel(t, cfg)
	m = submit(t, m, manyEntries(30, 24)...)
	m = focusOnSearch(t, m)
	m.list.GotoTop()

	m.search.SetValue("needle")
	cmd := m.applyQuery()
	require.NotNil(t, cmd)

	newM, next := m.Update(cmd())
	m = newM.(Model)
	assert.Nil(t, next, "without smoothing the scroll should complete at once")

	want := scroll.CenterOffset(m.target, m.list.Height, m.totalLines)
	require.NotZero(t, want, "test layout should need scrolling")
	assert.Equal(t, want, m.list.YOffset)
}

func TestSmoothScrollAnimates(t *testing.T) {
	m := newReadyModel(t, config.Defaults())
	m = submit(t, m, manyEntries(30, 24)...)
	m = focusOnSearch(t, m)
	m.list.GotoTop()

	m.search.SetValue("needle")
	cmd := m.applyQuery()
	require.NotNil(t, cmd)

	newM, next := m.Update(cmd())
	m = newM.(Model)
	require.NotNil(t, next, "smooth scrolling should schedule frames")
	require.True(t, m.animator.Active())

	want := scroll.CenterOffset(m.target, m.list.Height, m.totalLines)
	for i := 0; next != nil; i++ {
		require.LessOrEqual(t, i, 500, "animation did not finish")
		newM, next = m.Update(scrollFrameMsg{})
		m = newM.(Model)
	}
	assert.Equal(t, want, m.list.YOffset)
}

func TestStaleScrollRequestIgnored(t *testing.T) {
	m := newReadyModel(t, config.Defaults())
	m = submit(t, m, manyEntries(30, 24)...)
	m.list.GotoTop()

	newM, cmd := m.Update(scrollRequestMsg{Query: "old", Target: scroll.Target{Line: 40, Height: 1}})
	m = newM.(Model)
	assert.Nil(t, cmd, "stale request should not schedule frames")
	assert.Zero(t, m.list.YOffset)
}

func TestEscClearsSearch(t *testing.T) {
	m := newReadyModel(t, config.Defaults())
	m = submit(t, m, "hello")
	m = focusOnSearch(t, m)
	m = typeText(m, "hel")
	require.Equal(t, 0, m.firstMatch)

	m, _ = press(m, escKey)
	assert.Empty(t, m.search.Value())
	assert.Equal(t, -1, m.firstMatch)
}

func TestSubmitButtonClick(t *testing.T) {
	m := newReadyModel(t, config.Defaults())
	m = typeText(m, "clicked")

	row := 1 + m.draft.Height()
	newM, _ := m.Update(tea.MouseMsg{
		X:      1,
		Y:      row,
		Action: tea.MouseActionPress,
		Button: tea.MouseButtonLeft,
	})
	m = newM.(Model)

	assert.Equal(t, []string{"clicked"}, m.entries.Entries())
}

func TestHelpToggle(t *testing.T) {
	m := newReadyModel(t, config.Defaults())

	m, _ = press(m, tea.KeyMsg{Type: tea.KeyF1})
	require.True(t, m.showHelp, "f1 should open help")
	assert.Contains(t, m.View(), "jotfind")

	// typing is swallowed while help is open
	m = typeText(m, "ignored")
	assert.Empty(t, m.draft.Value())

	m, _ = press(m, escKey)
	assert.False(t, m.showHelp, "esc should close help")
}

func TestQuit(t *testing.T) {
	m := newReadyModel(t, config.Defaults())

	m, cmd := press(m, tea.KeyMsg{Type: tea.KeyCtrlC})
	assert.True(t, m.quitting)
	assert.NotNil(t, cmd, "expected tea.Quit")
}

func TestStatusBar(t *testing.T) {
	tests := []struct {
		entries int
		query   string
		first   int
		valid   bool
		want    string
	}{
		{1, "", -1, true, "1 entry"},
		{3, "", -1, true, "3 entries"},
		{3, "x", -1, true, "no matches"},
		{3, "(", -1, false, "invalid pattern"},
		{3, "x", 1, true, "first match #2"},
	}
	for _, tt := range tests {
		got := StatusBar(tt.entries, tt.query, tt.first, tt.valid, 80)
		assert.Contains(t, got, tt.want, "StatusBar(%d, %q, %d, %v)", tt.entries, tt.query, tt.first, tt.valid)
	}
}
