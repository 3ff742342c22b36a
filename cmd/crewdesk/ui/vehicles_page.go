package ui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"crewdesk/internal/gang"
)

// VehiclesPageModel lists the crew fleet as cards.
type VehiclesPageModel struct {
	state  *gang.State
	styles Styles
	width  int
	height int

	mode    pageMode
	form    Form
	cursor  int
	confirm confirmState
}

// NewVehiclesPageModel creates the vehicles page.
func NewVehiclesPageModel(state *gang.State, styles Styles) VehiclesPageModel {
	return VehiclesPageModel{
		state:  state,
		styles: styles,
		form: NewForm(
			FormField{Label: "Modèle", Placeholder: "Modèle du véhicule"},
		),
		width:  80,
		height: 20,
	}
}

func (m VehiclesPageModel) Init() tea.Cmd {
	return nil
}

func (m VehiclesPageModel) Update(msg tea.Msg) (VehiclesPageModel, tea.Cmd) {
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
			model := m.form.Value(0)
			if model == "" {
				m.form.Err = "Remplis tous les champs"
				return m, nil
			}
			if _, err := m.state.AddVehicle(model); err != nil {
				m.form.Err = err.Error()
				return m, nil
			}
			m.form.Reset()
			m.mode = modeBrowse
			m.cursor = 0
			return m, Notify("Véhicule ajouté")
		default:
			return m, m.form.Update(msg)
		}

	case modeConfirm:
		if keyMsg.String() == "y" {
			removed, err := m.state.DeleteVehicle(m.confirm.id)
			m.mode = modeBrowse
			m.cursor = clampCursor(m.cursor, len(m.state.Vehicles))
			if err != nil {
				return m, NotifyError(errText(err))
			}
			if removed {
				return m, Notify("Véhicule supprimé")
			}
			return m, nil
		}
		m.mode = modeBrowse
		return m, nil

	default:
		m.cursor = clampCursor(m.cursor, len(m.state.Vehicles))
		switch keyMsg.String() {
		case "a":
			m.mode = modeForm
			return m, m.form.Focus()
		case "up", "k":
			m.cursor = clampCursor(m.cursor-1, len(m.state.Vehicles))
		case "down", "j":
			m.cursor = clampCursor(m.cursor+1, len(m.state.Vehicles))
		case "d":
			if len(m.state.Vehicles) > 0 {
				v := m.state.Vehicles[m.cursor]
				m.mode = modeConfirm
				m.confirm = confirmState{id: v.ID, prompt: "Supprimer ce véhicule ?"}
			}
		}
	}
	return m, nil
}

func (m VehiclesPageModel) View() string {
	var sb strings.Builder
	sb.WriteString(m.styles.Title.Render("Véhicules"))
	sb.WriteString("\n")

	if m.mode == modeForm {
		sb.WriteString(m.form.View(m.styles))
		sb.WriteString("\n")
	}

	cards := make([]Card, len(m.state.Vehicles))
	for i, v := range m.state.Vehicles {
		cards[i] = Card{
			Title: gang.SanitizeText(v.Model),
			Meta:  "Etat: " + gang.SanitizeText(v.State),
		}
	}
	cursor := m.cursor
	if m.mode == modeForm {
		cursor = -1
	}
	sb.WriteString(RenderCards(m.styles, cards, cursor, "Aucun véhicule"))

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

func (m *VehiclesPageModel) SetSize(w, h int) {
	m.width = w
	m.height = h
}

func (m *VehiclesPageModel) Reset() {
	m.mode = modeBrowse
	m.form.Reset()
}

func (m VehiclesPageModel) Capturing() bool {
	return m.mode != modeBrowse
}
