package ui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"crewdesk/internal/config"
	"crewdesk/internal/gang"
)

// SettingsPageModel shows storage facts and exposes the one destructive
// action: wiping all persisted collections.
type SettingsPageModel struct {
	state  *gang.State
	styles Styles
	cfg    config.Config
	width  int
	height int

	confirming bool
}

// NewSettingsPageModel creates the settings page.
func NewSettingsPageModel(state *gang.State, styles Styles, cfg config.Config) SettingsPageModel {
	return SettingsPageModel{
		state:  state,
		styles: styles,
		cfg:    cfg,
		width:  80,
		height: 20,
	}
}

func (m SettingsPageModel) Init() tea.Cmd {
	return nil
}

func (m SettingsPageModel) Update(msg tea.Msg) (SettingsPageModel, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	if m.confirming {
		m.confirming = false
		if keyMsg.String() == "y" {
			if err := m.state.ClearAll(); err != nil {
				return m, NotifyError(errText(err))
			}
			return m, Notify("Toutes les données ont été supprimées")
		}
		return m, nil
	}

	switch keyMsg.String() {
	case "x":
		m.confirming = true
	case "t":
		if m.cfg.Theme == "dark" {
			m.cfg.Theme = "light"
		} else {
			m.cfg.Theme = "dark"
		}
		if err := config.Save(m.cfg); err != nil {
			return m, NotifyError(errText(err))
		}
		return m, Notify("Thème enregistré: " + m.cfg.Theme + " (au prochain démarrage)")
	}
	return m, nil
}

func (m SettingsPageModel) View() string {
	var sb strings.Builder
	sb.WriteString(m.styles.Title.Render("Paramètres"))
	sb.WriteString("\n")

	path, err := m.cfg.StorePath()
	if err != nil {
		path = "(inconnu)"
	}
	fact := func(label, value string) {
		sb.WriteString(m.styles.StatLabel.Render(label + ": "))
		sb.WriteString(m.styles.Body.Render(value))
		sb.WriteString("\n")
	}
	fact("Thème", m.cfg.Theme)
	fact("Stockage", m.cfg.Storage.Backend)
	fact("Emplacement", path)
	sb.WriteString("\n")

	if m.confirming {
		sb.WriteString(m.styles.Warning.Render("Tout supprimer ? (y/n)"))
	} else {
		sb.WriteString(m.styles.Muted.Render("t: changer de thème"))
		sb.WriteString("\n")
		sb.WriteString(m.styles.Error.Render("x: supprimer toutes les données locales"))
	}
	sb.WriteString("\n")
	return sb.String()
}

func (m *SettingsPageModel) SetSize(w, h int) {
	m.width = w
	m.height = h
}

func (m *SettingsPageModel) Reset() {
	m.confirming = false
}

func (m SettingsPageModel) Capturing() bool {
	return m.confirming
}
