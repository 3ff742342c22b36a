// This file implements the interactive console using bubbletea: one active
// page at a time, a tab bar, transient toasts.
package main

import (
	"fmt"
	"strconv"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"crewdesk/cmd/crewdesk/ui"
	"crewdesk/internal/config"
	"crewdesk/internal/gang"
)

// pageOrder fixes the tab bar layout; digits 1-9 jump straight to a page.
var pageOrder = []string{
	"dashboard",
	"members",
	"transactions",
	"vehicles",
	"arsenal",
	"territories",
	"missions",
	"finances",
	"settings",
}

var pageTitles = map[string]string{
	"dashboard":    "Tableau de bord",
	"members":      "Membres",
	"transactions": "Transactions",
	"vehicles":     "Véhicules",
	"arsenal":      "Arsenal",
	"territories":  "Territoires",
	"missions":     "Missions",
	"finances":     "Finances",
	"settings":     "Paramètres",
}

// pageTitle resolves a display title, falling back to the raw identifier.
func pageTitle(id string) string {
	if title, ok := pageTitles[id]; ok {
		return title
	}
	return id
}

// storeChangedMsg reports an external change to the persisted collections.
type storeChangedMsg struct{ key string }

// toastTickMsg drives toast expiry.
type toastTickMsg time.Time

const helpText = `# CrewDesk

Console de gestion pour équipe role-play.

## Navigation

- **1-9** : aller à une page (tableau de bord, membres, transactions,
  véhicules, arsenal, territoires, missions, finances, paramètres)
- **tab / shift+tab** : page suivante / précédente
- **?** : afficher ou masquer cette aide
- **ctrl+c** : quitter

## Pages

- **a** : ouvrir le formulaire d'ajout
- **d** : supprimer l'élément sélectionné (confirmation demandée)
- **↑/↓** : déplacer la sélection
`

// consoleModel is the root model: it owns navigation and the toast stack and
// dispatches everything else to the single active page.
type consoleModel struct {
	styles ui.Styles
	cfg    config.Config
	state  *gang.State
	logger *zap.Logger

	page   string
	width  int
	height int
	ready  bool

	showHelp bool
	helpView string

	toasts ui.ToastStack

	dashboard    ui.DashboardPageModel
	members      ui.MembersPageModel
	transactions ui.TransactionsPageModel
	vehicles     ui.VehiclesPageModel
	arsenal      ui.ArsenalPageModel
	territories  ui.TerritoriesPageModel
	missions     ui.MissionsPageModel
	finances     ui.FinancesPageModel
	settings     ui.SettingsPageModel
}

func newConsoleModel(cfg config.Config, state *gang.State, logger *zap.Logger) consoleModel {
	// An explicit theme in the config wins over terminal detection.
	var styles ui.Styles
	switch cfg.Theme {
	case "dark":
		styles = ui.NewStyles(ui.DarkTheme())
	case "light":
		styles = ui.NewStyles(ui.LightTheme())
	default:
		styles = ui.DefaultStyles()
	}

	gang.SetAmountFormat(
		cfg.Currency.Fraction,
		cfg.Currency.Decimal,
		cfg.Currency.Thousand,
		cfg.Currency.Grapheme,
	)

	return consoleModel{
		styles: styles,
		cfg:    cfg,
		state:  state,
		logger: logger,
		page:   "dashboard",
		toasts: ui.ToastStack{TTL: time.Duration(cfg.Toast.DurationMs) * time.Millisecond},

		dashboard:    ui.NewDashboardPageModel(state, styles),
		members:      ui.NewMembersPageModel(state, styles),
		transactions: ui.NewTransactionsPageModel(state, styles),
		vehicles:     ui.NewVehiclesPageModel(state, styles),
		arsenal:      ui.NewArsenalPageModel(state, styles),
		territories:  ui.NewTerritoriesPageModel(state, styles),
		missions:     ui.NewMissionsPageModel(state, styles),
		finances:     ui.NewFinancesPageModel(state, styles),
		settings:     ui.NewSettingsPageModel(state, styles, cfg),
	}
}

func (m consoleModel) Init() tea.Cmd {
	return nil
}

func (m consoleModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		m.helpView = "" // re-render the help at the new width
		w, h := ui.ContentWidth(msg.Width), ui.ContentHeight(msg.Height)
		m.dashboard.SetSize(w, h)
		m.members.SetSize(w, h)
		m.transactions.SetSize(w, h)
		m.vehicles.SetSize(w, h)
		m.arsenal.SetSize(w, h)
		m.territories.SetSize(w, h)
		m.missions.SetSize(w, h)
		m.finances.SetSize(w, h)
		m.settings.SetSize(w, h)
		return m, nil

	case ui.ToastMsg:
		m.toasts.Push(msg, time.Now())
		return m, tea.Tick(100*time.Millisecond, func(t time.Time) tea.Msg {
			return toastTickMsg(t)
		})

	case toastTickMsg:
		m.toasts.Prune(time.Time(msg))
		if m.toasts.Empty() {
			return m, nil
		}
		return m, tea.Tick(100*time.Millisecond, func(t time.Time) tea.Msg {
			return toastTickMsg(t)
		})

	case storeChangedMsg:
		// Another process touched the persisted collections; re-hydrate.
		if err := m.state.Reload(); err != nil {
			m.logger.Error("reload after external change failed", zap.Error(err))
			return m, ui.NotifyError("Erreur de rechargement")
		}
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		}

		if m.showHelp {
			m.showHelp = false
			return m, nil
		}

		// Navigation keys apply only while the active page is browsing;
		// a focused form owns the keyboard.
		if !m.capturing() {
			switch key := msg.String(); key {
			case "?":
				m.showHelp = true
				if m.helpView == "" {
					if rendered, err := renderHelp(m.styles.Theme.IsDark, m.width); err == nil {
						m.helpView = rendered
					}
				}
				return m, nil
			case "tab":
				m.navigate(m.adjacentPage(1))
				return m, nil
			case "shift+tab":
				m.navigate(m.adjacentPage(-1))
				return m, nil
			default:
				if n, err := strconv.Atoi(key); err == nil && n >= 1 && n <= len(pageOrder) {
					m.navigate(pageOrder[n-1])
					return m, nil
				}
			}
		}
	}

	return m.updateActivePage(msg)
}

func (m consoleModel) updateActivePage(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch m.page {
	case "dashboard":
		m.dashboard, cmd = m.dashboard.Update(msg)
	case "members":
		m.members, cmd = m.members.Update(msg)
	case "transactions":
		m.transactions, cmd = m.transactions.Update(msg)
	case "vehicles":
		m.vehicles, cmd = m.vehicles.Update(msg)
	case "arsenal":
		m.arsenal, cmd = m.arsenal.Update(msg)
	case "territories":
		m.territories, cmd = m.territories.Update(msg)
	case "missions":
		m.missions, cmd = m.missions.Update(msg)
	case "finances":
		m.finances, cmd = m.finances.Update(msg)
	case "settings":
		m.settings, cmd = m.settings.Update(msg)
	}
	return m, cmd
}

func (m consoleModel) capturing() bool {
	switch m.page {
	case "members":
		return m.members.Capturing()
	case "transactions":
		return m.transactions.Capturing()
	case "vehicles":
		return m.vehicles.Capturing()
	case "arsenal":
		return m.arsenal.Capturing()
	case "territories":
		return m.territories.Capturing()
	case "missions":
		return m.missions.Capturing()
	case "settings":
		return m.settings.Capturing()
	}
	return false
}

// navigate makes pageID the single active page. The outgoing page's
// transient form input is discarded.
func (m *consoleModel) navigate(pageID string) {
	m.resetPage(m.page)
	m.page = pageID
	m.logger.Debug("navigate", zap.String("page", pageID))
}

func (m *consoleModel) resetPage(pageID string) {
	switch pageID {
	case "dashboard":
		m.dashboard.Reset()
	case "members":
		m.members.Reset()
	case "transactions":
		m.transactions.Reset()
	case "vehicles":
		m.vehicles.Reset()
	case "arsenal":
		m.arsenal.Reset()
	case "territories":
		m.territories.Reset()
	case "missions":
		m.missions.Reset()
	case "finances":
		m.finances.Reset()
	case "settings":
		m.settings.Reset()
	}
}

func (m consoleModel) adjacentPage(delta int) string {
	idx := 0
	for i, id := range pageOrder {
		if id == m.page {
			idx = i
			break
		}
	}
	idx = (idx + delta + len(pageOrder)) % len(pageOrder)
	return pageOrder[idx]
}

func (m consoleModel) activeView() string {
	switch m.page {
	case "dashboard":
		return m.dashboard.View()
	case "members":
		return m.members.View()
	case "transactions":
		return m.transactions.View()
	case "vehicles":
		return m.vehicles.View()
	case "arsenal":
		return m.arsenal.View()
	case "territories":
		return m.territories.View()
	case "missions":
		return m.missions.View()
	case "finances":
		return m.finances.View()
	case "settings":
		return m.settings.View()
	}
	return ""
}

func (m consoleModel) View() string {
	if !m.ready {
		return "Initialisation..."
	}

	if m.width < ui.MinimumTerminalWidth || m.height < ui.MinimumTerminalHeight {
		return m.styles.Warning.Render(fmt.Sprintf(
			"Terminal trop petit (%dx%d) : %dx%d minimum",
			m.width, m.height, ui.MinimumTerminalWidth, ui.MinimumTerminalHeight,
		))
	}

	if m.showHelp {
		return m.helpOverlay()
	}

	header := m.styles.Header.Width(m.width).Render("CrewDesk — " + pageTitle(m.page))

	tabs := make([]string, 0, len(pageOrder))
	for i, id := range pageOrder {
		label := strconv.Itoa(i+1) + " " + pageTitle(id)
		if id == m.page {
			tabs = append(tabs, m.styles.TabActive.Render(label))
		} else {
			tabs = append(tabs, m.styles.TabInactive.Render(label))
		}
	}
	tabBar := lipgloss.JoinHorizontal(lipgloss.Top, tabs...)

	content := m.styles.Content.Render(m.activeView())

	footer := m.styles.Footer.Render("?: aide · tab: page suivante · ctrl+c: quitter")
	if !m.toasts.Empty() {
		footer = lipgloss.JoinVertical(lipgloss.Left, m.toasts.View(m.styles), footer)
	}

	return lipgloss.JoinVertical(lipgloss.Left, header, tabBar, content, footer)
}

func (m consoleModel) helpOverlay() string {
	text := m.helpView
	if text == "" {
		// Rendering failed when help was opened; plain markdown still reads.
		text = helpText
	}
	return text + "\n" + m.styles.Muted.Render("appuyez sur une touche pour revenir")
}

func renderHelp(dark bool, width int) (string, error) {
	if width <= 0 {
		width = 80
	}
	opts := []glamour.TermRendererOption{glamour.WithWordWrap(min(width, 100))}
	if dark {
		opts = append(opts, glamour.WithAutoStyle())
	} else {
		opts = append(opts, glamour.WithStylePath("light"))
	}
	renderer, err := glamour.NewTermRenderer(opts...)
	if err != nil {
		return "", err
	}
	return renderer.Render(helpText)
}
