package ui

import (
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"crewdesk/internal/gang"
)

// TransactionsPageModel lists the treasury history and owns the add/delete
// cycle for transactions.
type TransactionsPageModel struct {
	state  *gang.State
	styles Styles
	width  int
	height int

	mode    pageMode
	form    Form
	cursor  int
	confirm confirmState
}

// NewTransactionsPageModel creates the transactions page.
func NewTransactionsPageModel(state *gang.State, styles Styles) TransactionsPageModel {
	return TransactionsPageModel{
		state:  state,
		styles: styles,
		form: NewForm(
			FormField{Label: "Date", Placeholder: "AAAA-MM-JJ"},
			FormField{Label: "Description", Placeholder: "Description"},
			FormField{Label: "Montant", Placeholder: "ex: 1200 ou -250"},
		),
		width:  80,
		height: 20,
	}
}

func (m TransactionsPageModel) Init() tea.Cmd {
	return nil
}

func (m TransactionsPageModel) Update(msg tea.Msg) (TransactionsPageModel, tea.Cmd) {
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
			removed, err := m.state.DeleteTransaction(m.confirm.id)
			m.mode = modeBrowse
			m.cursor = clampCursor(m.cursor, len(m.state.Transactions))
			if err != nil {
				return m, NotifyError(errText(err))
			}
			if removed {
				return m, Notify("Transaction supprimée")
			}
			return m, nil
		}
		m.mode = modeBrowse
		return m, nil

	default:
		m.cursor = clampCursor(m.cursor, len(m.state.Transactions))
		switch keyMsg.String() {
		case "a":
			m.mode = modeForm
			return m, m.form.Focus()
		case "up", "k":
			m.cursor = clampCursor(m.cursor-1, len(m.state.Transactions))
		case "down", "j":
			m.cursor = clampCursor(m.cursor+1, len(m.state.Transactions))
		case "d":
			if len(m.state.Transactions) > 0 {
				tx := m.state.Transactions[m.cursor]
				m.mode = modeConfirm
				m.confirm = confirmState{id: tx.ID, prompt: "Supprimer cette transaction ?"}
			}
		}
	}
	return m, nil
}

func (m TransactionsPageModel) submit() (TransactionsPageModel, tea.Cmd) {
	date, desc, rawAmount := m.form.Value(0), m.form.Value(1), m.form.Value(2)
	if date == "" || desc == "" || rawAmount == "" {
		m.form.Err = "Remplis correctement les champs"
		return m, nil
	}
	// Accept the French comma decimal as well.
	amount, err := strconv.ParseFloat(strings.ReplaceAll(rawAmount, ",", "."), 64)
	if err != nil {
		m.form.Err = "Montant invalide"
		return m, nil
	}
	if _, err := m.state.AddTransaction(date, desc, amount); err != nil {
		m.form.Err = err.Error()
		return m, nil
	}
	m.form.Reset()
	m.mode = modeBrowse
	m.cursor = 0
	return m, Notify("Transaction ajoutée")
}

func (m TransactionsPageModel) View() string {
	var sb strings.Builder

	if m.mode == modeForm {
		sb.WriteString(m.styles.Title.Render("Ajouter transaction"))
		sb.WriteString("\n")
		sb.WriteString(m.form.View(m.styles))
		sb.WriteString("\n")
	}

	table := NewSimpleTable("Historique", []string{"Date", "Description", "Montant"})
	table.Empty = "Aucune transaction"
	for _, tx := range m.state.Transactions {
		table.AddRow(gang.SanitizeText(tx.Date), gang.SanitizeText(tx.Desc), gang.FormatAmount(tx.Amount))
	}
	if m.mode != modeForm {
		table.Cursor = m.cursor
	}
	sb.WriteString(table.View(m.styles))

	sb.WriteString("\n")
	sb.WriteString(m.styles.StatLabel.Render("Coffre: "))
	sb.WriteString(m.styles.StatValue.Render(gang.FormatAmount(m.state.Balance())))
	sb.WriteString("\n")

	switch m.mode {
	case modeConfirm:
		sb.WriteString(m.styles.Warning.Render(m.confirm.prompt + " (y/n)"))
	case modeBrowse:
		sb.WriteString(m.styles.Muted.Render("a: ajouter · d: supprimer · ↑/↓: naviguer"))
	}
	return sb.String()
}

func (m *TransactionsPageModel) SetSize(w, h int) {
	m.width = w
	m.height = h
}

func (m *TransactionsPageModel) Reset() {
	m.mode = modeBrowse
	m.form.Reset()
}

func (m TransactionsPageModel) Capturing() bool {
	return m.mode != modeBrowse
}
