package ui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"crewdesk/internal/gang"
)

// DashboardPageModel is the read-only landing page: recent activity, the
// treasury balance and the territory count.
type DashboardPageModel struct {
	state  *gang.State
	styles Styles
	width  int
	height int
}

// NewDashboardPageModel creates the dashboard page.
func NewDashboardPageModel(state *gang.State, styles Styles) DashboardPageModel {
	return DashboardPageModel{
		state:  state,
		styles: styles,
		width:  80,
		height: 20,
	}
}

func (m DashboardPageModel) Init() tea.Cmd {
	return nil
}

func (m DashboardPageModel) Update(msg tea.Msg) (DashboardPageModel, tea.Cmd) {
	return m, nil
}

func (m DashboardPageModel) View() string {
	var sb strings.Builder

	sb.WriteString(m.styles.Title.Render("Activités récentes"))
	sb.WriteString("\n")
	sb.WriteString(m.styles.Subtitle.Render("Journal des actions, saisies et opérations du gang."))
	sb.WriteString("\n")
	sb.WriteString(m.styles.RenderDivider(40))
	sb.WriteString("\n")

	// Recent = latest transactions by stored order, not by date.
	recent := m.state.Transactions
	if len(recent) > RecentActivityCount {
		recent = recent[:RecentActivityCount]
	}
	if len(recent) == 0 {
		sb.WriteString(m.styles.Muted.Render("Aucune activité récente"))
		sb.WriteString("\n")
	} else {
		for _, t := range recent {
			line := fmt.Sprintf("%s — %s (%s)",
				gang.SanitizeText(t.Date),
				gang.SanitizeText(t.Desc),
				gang.FormatAmount(t.Amount),
			)
			sb.WriteString(m.styles.Body.Render(line))
			sb.WriteString("\n")
		}
	}

	panelWidth := 40
	if panelWidth > m.width {
		panelWidth = m.width
	}
	stats := lipgloss.JoinVertical(lipgloss.Left,
		m.styles.StatLabel.Render("Coffre"),
		m.styles.StatValue.Render(gang.FormatAmount(m.state.Balance())),
		"",
		m.styles.StatLabel.Render("Territoires contrôlés"),
		m.styles.StatValue.Render(fmt.Sprintf("%d / 6", len(m.state.Territories))),
	)
	stats = lipgloss.NewStyle().Width(PanelContentWidth(panelWidth)).Render(stats)
	sb.WriteString("\n")
	sb.WriteString(m.styles.Panel.Render(stats))
	sb.WriteString("\n")

	return sb.String()
}

func (m *DashboardPageModel) SetSize(w, h int) {
	m.width = w
	m.height = h
}

func (m *DashboardPageModel) Reset() {}

func (m DashboardPageModel) Capturing() bool { return false }
