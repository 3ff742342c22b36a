package ui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"crewdesk/internal/gang"
)

// TerritoriesPageModel lists controlled zones as cards.
type TerritoriesPageModel struct {
	state  *gang.State
	styles Styles
	width  int
	height int

	mode    pageMode
	form    Form
	cursor  int
	confirm confirmState
}

// NewTerritoriesPageModel creates the territories page.
func NewTerritoriesPageModel(state *gang.State, styles Styles) TerritoriesPageModel {
	return TerritoriesPageModel{
		state:  state,
		styles: styles,
		form: NewForm(
			FormField{Label: "Nom", Placeholder: "Nom du territoire"},
		),
		width:  80,
		height: 20,
	}
}

func (m TerritoriesPageModel) Init() tea.Cmd {
	return nil
}

func (m TerritoriesPageModel) Update(msg tea.Msg) (TerritoriesPageModel, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch m.mode {
	case modeForm:
		switch keyMsg.String() {
		case "esc":
			m.mode = modeBrowse
			m.form.Reset()
			return m, nil
		case "enter":
			name := m.form.Value(0)
			if name == "" {
				m.form.Err = "Remplis tous les champs"
				return m, nil
			}
			if _, err := m.state.AddTerritory(name); err != nil {
				m.form.Err = err.Error()
				return m, nil
			}
			m.form.Reset()
			m.mode = modeBrowse
			m.cursor = 0
			return m, Notify("Territoire ajouté")
		default:
			return m, m.form.Update(msg)
		}

	case modeConfirm:
		if keyMsg.String() == "y" {
			removed, err := m.state.DeleteTerritory(m.confirm.id)
			m.mode = modeBrowse
			m.cursor = clampCursor(m.cursor, len(m.state.Territories))
			if err != nil {
				return m, NotifyError(errText(err))
			}
			if removed {
				return m, Notify("Territoire supprimé")
			}
			return m, nil
		}
		m.mode = modeBrowse
		return m, nil

	default:
		m.cursor = clampCursor(m.cursor, len(m.state.Territories))
		switch keyMsg.String() {
		case "a":
			m.mode = modeForm
			return m, m.form.Focus()
		case "up", "k":
			m.cursor = clampCursor(m.cursor-1, len(m.state.Territories))
		case "down", "j":
			m.cursor = clampCursor(m.cursor+1, len(m.state.Territories))
		case "d":
			if len(m.state.Territories) > 0 {
				z := m.state.Territories[m.cursor]
				m.mode = modeConfirm
				m.confirm = confirmState{id: z.ID, prompt: "Supprimer ce territoire ?"}
			}
		}
	}
	return m, nil
}

func (m TerritoriesPageModel) View() string {
	var sb strings.Builder
	sb.WriteString(m.styles.Title.Render("Territoires"))
	sb.WriteString("\n")

	if m.mode == modeForm {
		sb.WriteString(m.form.View(m.styles))
		sb.WriteString("\n")
	}

	cards := make([]Card, len(m.state.Territories))
	for i, z := range m.state.Territories {
		cards[i] = Card{
			Title: gang.SanitizeText(z.Name),
			Meta:  gang.SanitizeText(z.Status),
		}
	}
	cursor := m.cursor
	if m.mode == modeForm {
		cursor = -1
	}
	sb.WriteString(RenderCards(m.styles, cards, cursor, "Aucun territoire"))

	switch m.mode {
	case modeConfirm:
		sb.WriteString("\n")
		sb.WriteString(m.styles.Warning.Render(m.confirm.prompt + " (y/n)"))
	case modeBrowse:
		sb.WriteString("\n")
		sb.WriteString(m.styles.Muted.Render("a: ajouter · d: supprimer · ↑/↓: naviguer"))
	}
	return sb.String()
}

func (m *TerritoriesPageModel) SetSize(w, h int) {
	m.width = w
	m.height = h
}

func (m *TerritoriesPageModel) Reset() {
	m.mode = modeBrowse
	m.form.Reset()
}

func (m TerritoriesPageModel) Capturing() bool {
	return m.mode != modeBrowse
}
