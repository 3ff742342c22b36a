package ui

import (
	"math"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"crewdesk/internal/gang"
)

// FinancesPageModel is the read-only treasury summary.
type FinancesPageModel struct {
	state  *gang.State
	styles Styles
	width  int
	height int
}

// NewFinancesPageModel creates the finances page.
func NewFinancesPageModel(state *gang.State, styles Styles) FinancesPageModel {
	return FinancesPageModel{
		state:  state,
		styles: styles,
		width:  80,
		height: 20,
	}
}

func (m FinancesPageModel) Init() tea.Cmd {
	return nil
}

func (m FinancesPageModel) Update(msg tea.Msg) (FinancesPageModel, tea.Cmd) {
	return m, nil
}

func (m FinancesPageModel) View() string {
	totals := m.state.TransactionTotals()

	var sb strings.Builder
	sb.WriteString(m.styles.Title.Render("Finances"))
	sb.WriteString("\n")

	stat := func(label, value string) {
		sb.WriteString(m.styles.StatLabel.Render(label))
		sb.WriteString("\n")
		sb.WriteString(m.styles.StatValue.Render(value))
		sb.WriteString("\n\n")
	}
	stat("Solde actuel", gang.FormatAmount(m.state.Balance()))
	stat("Revenus totaux", gang.FormatAmount(totals.Income))
	stat("Dépenses totales", "-"+gang.FormatAmount(math.Abs(totals.Expense)))

	sb.WriteString(m.styles.RenderDivider(40))
	sb.WriteString("\n")
	sb.WriteString(m.styles.Muted.Render("Les transactions se gèrent dans l'onglet Transactions."))
	sb.WriteString("\n")
	return sb.String()
}

func (m *FinancesPageModel) SetSize(w, h int) {
	m.width = w
	m.height = h
}

func (m *FinancesPageModel) Reset() {}

func (m FinancesPageModel) Capturing() bool { return false }
