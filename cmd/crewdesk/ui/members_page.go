package ui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"crewdesk/internal/gang"
)

// MembersPageModel lists crew members and owns their add/delete cycle.
type MembersPageModel struct {
	state  *gang.State
	styles Styles
	width  int
	height int

	mode    pageMode
	form    Form
	cursor  int
	confirm confirmState
}

// NewMembersPageModel creates the members page.
func NewMembersPageModel(state *gang.State, styles Styles) MembersPageModel {
	return MembersPageModel{
		state:  state,
		styles: styles,
		form: NewForm(
			FormField{Label: "Nom", Placeholder: "Nom du membre"},
			FormField{Label: "Rôle", Placeholder: "Rôle dans l'équipe"},
		),
		width:  80,
		height: 20,
	}
}

func (m MembersPageModel) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m MembersPageModel) Update(msg tea.Msg) (MembersPageModel, tea.Cmd) {
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
			return m.submit()
		case "tab", "down":
			return m, m.form.Next()
		case "shift+tab", "up":
			return m, m.form.Prev()
		default:
			return m, m.form.Update(msg)
		}

	case modeConfirm:
		if keyMsg.String() == "y" {
			removed, err := m.state.DeleteMember(m.confirm.id)
			m.mode = modeBrowse
			m.cursor = clampCursor(m.cursor, len(m.state.Members))
			if err != nil {
				return m, NotifyError(errText(err))
			}
			if removed {
				return m, Notify("Membre supprimé")
			}
			return m, nil
		}
		m.mode = modeBrowse
		return m, nil

	default:
		// The collection may have shrunk under us (external store edit
		// followed by a reload), so never trust the stored cursor.
		m.cursor = clampCursor(m.cursor, len(m.state.Members))
		switch keyMsg.String() {
		case "a":
			m.mode = modeForm
			return m, m.form.Focus()
		case "up", "k":
			m.cursor = clampCursor(m.cursor-1, len(m.state.Members))
		case "down", "j":
			m.cursor = clampCursor(m.cursor+1, len(m.state.Members))
		case "d":
			if len(m.state.Members) > 0 {
				member := m.state.Members[m.cursor]
				m.mode = modeConfirm
				m.confirm = confirmState{id: member.ID, prompt: "Supprimer ce membre ?"}
			}
		}
	}
	return m, nil
}

func (m MembersPageModel) submit() (MembersPageModel, tea.Cmd) {
	name, role := m.form.Value(0), m.form.Value(1)
	if name == "" || role == "" {
		m.form.Err = "Remplis tous les champs"
		return m, nil
	}
	_, err := m.state.AddMember(name, role)
	if err != nil {
		m.form.Err = err.Error()
		return m, nil
	}
	m.form.Reset()
	m.mode = modeBrowse
	m.cursor = 0
	return m, Notify("Membre ajouté")
}

// View renders the page.
func (m MembersPageModel) View() string {
	var sb strings.Builder

	if m.mode == modeForm {
		sb.WriteString(m.styles.Title.Render("Ajouter un membre"))
		sb.WriteString("\n")
		sb.WriteString(m.form.View(m.styles))
		sb.WriteString("\n")
	}

	table := NewSimpleTable("Membres", []string{"ID", "Nom", "Rôle"})
	table.Empty = "Aucun membre"
	for _, member := range m.state.Members {
		table.AddRow(member.ID.Short(), gang.SanitizeText(member.Name), gang.SanitizeText(member.Role))
	}
	if m.mode != modeForm {
		table.Cursor = m.cursor
	}
	sb.WriteString(table.View(m.styles))

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

// SetSize updates the page dimensions.
func (m *MembersPageModel) SetSize(w, h int) {
	m.width = w
	m.height = h
}

// Reset discards transient form and confirmation state, for page switches.
func (m *MembersPageModel) Reset() {
	m.mode = modeBrowse
	m.form.Reset()
}

// Capturing reports whether the page consumes raw key input.
func (m MembersPageModel) Capturing() bool {
	return m.mode != modeBrowse
}
