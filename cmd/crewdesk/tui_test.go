package main

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"crewdesk/cmd/crewdesk/ui"
	"crewdesk/internal/config"
	"crewdesk/internal/gang"
	"crewdesk/internal/store"
)

func newTestConsole(t *testing.T) (consoleModel, *gang.State, store.Store) {
	t.Helper()
	mem := store.NewMemory()
	state, err := gang.Open(mem, zap.NewNop())
	require.NoError(t, err)

	m := newConsoleModel(config.Default(), state, zap.NewNop())
	sized, _ := m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	return sized.(consoleModel), state, mem
}

func press(m consoleModel, k tea.KeyMsg) consoleModel {
	next, _ := m.Update(k)
	return next.(consoleModel)
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestPageTitleFallsBackToRawID(t *testing.T) {
	assert.Equal(t, "Membres", pageTitle("members"))
	assert.Equal(t, "inconnu", pageTitle("inconnu"))
}

func TestPageOrderHasTitles(t *testing.T) {
	for _, id := range pageOrder {
		assert.Contains(t, pageTitles, id)
	}
}

func TestDigitNavigation(t *testing.T) {
	m, _, _ := newTestConsole(t)
	assert.Equal(t, "dashboard", m.page)

	m = press(m, runes("2"))
	assert.Equal(t, "members", m.page)

	m = press(m, runes("9"))
	assert.Equal(t, "settings", m.page)

	// Out-of-range digits stay put.
	m = press(m, runes("0"))
	assert.Equal(t, "settings", m.page)
}

func TestTabNavigationWraps(t *testing.T) {
	m, _, _ := newTestConsole(t)

	m = press(m, tea.KeyMsg{Type: tea.KeyShiftTab})
	assert.Equal(t, "settings", m.page)

	m = press(m, tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, "dashboard", m.page)
}

func TestFormCapturesNavigationKeys(t *testing.T) {
	m, state, _ := newTestConsole(t)

	m = press(m, runes("2"))
	m = press(m, runes("a"))
	assert.True(t, m.capturing())

	// While a form is focused, digits and tab are text input and focus
	// movement, never navigation.
	m = press(m, runes("1"))
	assert.Equal(t, "members", m.page)
	m = press(m, tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, "members", m.page)

	// Complete the add to prove the typed digit landed in the field.
	m = press(m, runes("er du nom"))
	m = press(m, tea.KeyMsg{Type: tea.KeyEnter})
	require.Len(t, state.Members, 1)
	assert.Equal(t, "1", state.Members[0].Name)
	assert.Equal(t, "er du nom", state.Members[0].Role)
}

func TestNavigationResetsOutgoingForm(t *testing.T) {
	m, state, _ := newTestConsole(t)

	m = press(m, runes("2"))
	m = press(m, runes("a"))
	m = press(m, runes("Tony"))
	m = press(m, tea.KeyMsg{Type: tea.KeyEsc})
	m = press(m, runes("1"))
	assert.Equal(t, "dashboard", m.page)

	m = press(m, runes("2"))
	m = press(m, runes("a"))
	m = press(m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.Empty(t, state.Members, "stale form input must not survive a page switch")
}

func TestHelpOverlayToggles(t *testing.T) {
	m, _, _ := newTestConsole(t)

	m = press(m, runes("?"))
	assert.True(t, m.showHelp)
	assert.Contains(t, m.View(), "appuyez sur une touche pour revenir")

	m = press(m, runes("x"))
	assert.False(t, m.showHelp)
}

func TestToastLifecycle(t *testing.T) {
	m, _, _ := newTestConsole(t)

	next, cmd := m.Update(ui.ToastMsg{Text: "Membre ajouté"})
	m = next.(consoleModel)
	assert.False(t, m.toasts.Empty())
	assert.NotNil(t, cmd, "a prune tick must be scheduled")
	assert.Contains(t, m.View(), "Membre ajouté")
}

func TestStoreChangedReloadsState(t *testing.T) {
	m, state, mem := newTestConsole(t)

	require.NoError(t, store.SaveCollection(mem, store.KeyMembers, []gang.Member{
		{ID: "m1", Name: "Rico", Role: "Soldat"},
	}))
	assert.Empty(t, state.Members)

	next, _ := m.Update(storeChangedMsg{key: store.KeyMembers})
	m = next.(consoleModel)
	require.Len(t, state.Members, 1)
	assert.Equal(t, "Rico", state.Members[0].Name)
}

func TestViewRendersHeaderAndTabs(t *testing.T) {
	m, _, _ := newTestConsole(t)

	view := m.View()
	assert.Contains(t, view, "CrewDesk")
	assert.Contains(t, view, "Tableau de bord")
	assert.Contains(t, view, "quitter")
}

func TestExplicitThemeWinsOverDetection(t *testing.T) {
	// A dark terminal background must not override an explicit light theme.
	t.Setenv("COLORFGBG", "15;0")

	mem := store.NewMemory()
	state, err := gang.Open(mem, zap.NewNop())
	require.NoError(t, err)

	cfg := config.Default()
	cfg.Theme = "light"
	m := newConsoleModel(cfg, state, zap.NewNop())
	assert.False(t, m.styles.Theme.IsDark)

	cfg.Theme = "dark"
	m = newConsoleModel(cfg, state, zap.NewNop())
	assert.True(t, m.styles.Theme.IsDark)
}

func TestHelpRenderIsCached(t *testing.T) {
	m, _, _ := newTestConsole(t)

	m = press(m, runes("?"))
	assert.NotEmpty(t, m.helpView)
	cached := m.helpView

	m = press(m, runes("x"))
	m = press(m, runes("?"))
	assert.Equal(t, cached, m.helpView)

	// A resize invalidates the cache so help re-renders at the new width.
	next, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	m = next.(consoleModel)
	assert.Empty(t, m.helpView)
}

func TestTooSmallTerminalNotice(t *testing.T) {
	m, _, _ := newTestConsole(t)

	next, _ := m.Update(tea.WindowSizeMsg{Width: 40, Height: 10})
	m = next.(consoleModel)
	assert.Contains(t, m.View(), "Terminal trop petit")

	next, _ = m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	m = next.(consoleModel)
	assert.NotContains(t, m.View(), "Terminal trop petit")
}
