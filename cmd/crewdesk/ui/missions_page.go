package ui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"crewdesk/internal/gang"
)

// MissionsPageModel lists planned operations as cards.
type MissionsPageModel struct {
	state  *gang.State
	styles Styles
	width  int
	height int

	mode    pageMode
	form    Form
	cursor  int
	confirm confirmState
}

// NewMissionsPageModel creates the missions page.
func NewMissionsPageModel(state *gang.State, styles Styles) MissionsPageModel {
	return MissionsPageModel{
		state:  state,
		styles: styles,
		form: NewForm(
			FormField{Label: "Titre", Placeholder: "Titre de la mission"},
		),
		width:  80,
		height: 20,
	}
}

func (m MissionsPageModel) Init() tea.Cmd {
	return nil
}

func (m MissionsPageModel) Update(msg tea.Msg) (MissionsPageModel, tea.Cmd) {
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
			title := m.form.Value(0)
			if title == "" {
				m.form.Err = "Remplis tous les champs"
				return m, nil
			}
			if _, err := m.state.AddMission(title); err != nil {
				m.form.Err = err.Error()
				return m, nil
			}
			m.form.Reset()
			m.mode = modeBrowse
			m.cursor = 0
			return m, Notify("Mission créée")
		default:
			return m, m.form.Update(msg)
		}

	case modeConfirm:
		if keyMsg.String() == "y" {
			removed, err := m.state.DeleteMission(m.confirm.id)
			m.mode = modeBrowse
			m.cursor = clampCursor(m.cursor, len(m.state.Missions))
			if err != nil {
				return m, NotifyError(errText(err))
			}
			if removed {
				return m, Notify("Mission supprimée")
			}
			return m, nil
		}
		m.mode = modeBrowse
		return m, nil

	default:
		m.cursor = clampCursor(m.cursor, len(m.state.Missions))
		switch keyMsg.String() {
		case "a":
			m.mode = modeForm
			return m, m.form.Focus()
		case "up", "k":
			m.cursor = clampCursor(m.cursor-1, len(m.state.Missions))
		case "down", "j":
			m.cursor = clampCursor(m.cursor+1, len(m.state.Missions))
		case "d":
			if len(m.state.Missions) > 0 {
				mission := m.state.Missions[m.cursor]
				m.mode = modeConfirm
				m.confirm = confirmState{id: mission.ID, prompt: "Supprimer cette mission ?"}
			}
		}
	}
	return m, nil
}

func (m MissionsPageModel) View() string {
	var sb strings.Builder
	sb.WriteString(m.styles.Title.Render("Missions"))
	sb.WriteString("\n")

	if m.mode == modeForm {
		sb.WriteString(m.form.View(m.styles))
		sb.WriteString("\n")
	}

	cards := make([]Card, len(m.state.Missions))
	for i, mission := range m.state.Missions {
		cards[i] = Card{
			Title: gang.SanitizeText(mission.Title),
			Meta:  gang.SanitizeText(mission.Status),
		}
	}
	cursor := m.cursor
	if m.mode == modeForm {
		cursor = -1
	}
	sb.WriteString(RenderCards(m.styles, cards, cursor, "Aucune mission"))

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

func (m *MissionsPageModel) SetSize(w, h int) {
	m.width = w
	m.height = h
}

func (m *MissionsPageModel) Reset() {
	m.mode = modeBrowse
	m.form.Reset()
}

func (m MissionsPageModel) Capturing() bool {
	return m.mode != modeBrowse
}
