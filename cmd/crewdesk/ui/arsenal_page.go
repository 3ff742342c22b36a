package ui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"crewdesk/internal/gang"
)

// ArsenalPageModel lists weapon stock. Stock has no creation path in the
// console (items arrive through imports or external store edits), so the page
// only browses and deletes.
type ArsenalPageModel struct {
	state  *gang.State
	styles Styles
	width  int
	height int

	mode    pageMode
	cursor  int
	confirm confirmState
}

// NewArsenalPageModel creates the arsenal page.
func NewArsenalPageModel(state *gang.State, styles Styles) ArsenalPageModel {
	return ArsenalPageModel{
		state:  state,
		styles: styles,
		width:  80,
		height: 20,
	}
}

func (m ArsenalPageModel) Init() tea.Cmd {
	return nil
}

func (m ArsenalPageModel) Update(msg tea.Msg) (ArsenalPageModel, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	if m.mode == modeConfirm {
		if keyMsg.String() == "y" {
			removed, err := m.state.DeleteArsenalItem(m.confirm.id)
			m.mode = modeBrowse
			m.cursor = clampCursor(m.cursor, len(m.state.Arsenal))
			if err != nil {
				return m, NotifyError(errText(err))
			}
			if removed {
				return m, Notify("Item supprimé")
			}
			return m, nil
		}
		m.mode = modeBrowse
		return m, nil
	}

	m.cursor = clampCursor(m.cursor, len(m.state.Arsenal))
	switch keyMsg.String() {
	case "up", "k":
		m.cursor = clampCursor(m.cursor-1, len(m.state.Arsenal))
	case "down", "j":
		m.cursor = clampCursor(m.cursor+1, len(m.state.Arsenal))
	case "d":
		if len(m.state.Arsenal) > 0 {
			item := m.state.Arsenal[m.cursor]
			m.mode = modeConfirm
			m.confirm = confirmState{id: item.ID, prompt: "Supprimer cet item ?"}
		}
	}
	return m, nil
}

func (m ArsenalPageModel) View() string {
	var sb strings.Builder
	sb.WriteString(m.styles.Title.Render("Arsenal"))
	sb.WriteString("\n")
	sb.WriteString(m.styles.Subtitle.Render("Gestion des armes et munitions"))
	sb.WriteString("\n\n")

	cards := make([]Card, len(m.state.Arsenal))
	for i, item := range m.state.Arsenal {
		cards[i] = Card{
			Title: gang.SanitizeText(item.Name),
			Meta:  fmt.Sprintf("%d unités", item.Qty),
		}
	}
	sb.WriteString(RenderCards(m.styles, cards, m.cursor, "Arsenal vide"))

	switch m.mode {
	case modeConfirm:
		sb.WriteString("\n")
		sb.WriteString(m.styles.Warning.Render(m.confirm.prompt + " (y/n)"))
	default:
		sb.WriteString("\n")
		sb.WriteString(m.styles.Muted.Render("d: supprimer · ↑/↓: naviguer"))
	}
	return sb.String()
}

func (m *ArsenalPageModel) SetSize(w, h int) {
	m.width = w
	m.height = h
}

func (m *ArsenalPageModel) Reset() {
	m.mode = modeBrowse
}

func (m ArsenalPageModel) Capturing() bool {
	return m.mode != modeBrowse
}
