package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// FormField describes one labelled input of an add form.
type FormField struct {
	Label       string
	Placeholder string
}

// Form is a group of textinputs with focus cycling and an inline error line.
// Validation failures set Err and leave every value in place.
type Form struct {
	labels []string
	inputs []textinput.Model
	focus  int
	Err    string
}

// NewForm builds a form from the given fields; the first field gets focus.
func NewForm(fields ...FormField) Form {
	f := Form{
		labels: make([]string, len(fields)),
		inputs: make([]textinput.Model, len(fields)),
	}
	for i, field := range fields {
		ti := textinput.New()
		ti.Placeholder = field.Placeholder
		ti.CharLimit = 128
		ti.Width = 40
		ti.Prompt = "│ "
		f.labels[i] = field.Label
		f.inputs[i] = ti
	}
	return f
}

// Focus gives focus to the first field.
func (f *Form) Focus() tea.Cmd {
	f.focus = 0
	for i := range f.inputs {
		f.inputs[i].Blur()
	}
	return f.inputs[0].Focus()
}

// Reset clears every value, the error and the focus.
func (f *Form) Reset() {
	for i := range f.inputs {
		f.inputs[i].Reset()
		f.inputs[i].Blur()
	}
	f.focus = 0
	f.Err = ""
}

// Next moves focus to the following field, wrapping around.
func (f *Form) Next() tea.Cmd {
	return f.setFocus((f.focus + 1) % len(f.inputs))
}

// Prev moves focus to the preceding field, wrapping around.
func (f *Form) Prev() tea.Cmd {
	return f.setFocus((f.focus - 1 + len(f.inputs)) % len(f.inputs))
}

func (f *Form) setFocus(i int) tea.Cmd {
	f.inputs[f.focus].Blur()
	f.focus = i
	return f.inputs[i].Focus()
}

// Update forwards msg to the focused input.
func (f *Form) Update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	f.inputs[f.focus], cmd = f.inputs[f.focus].Update(msg)
	return cmd
}

// Value returns the trimmed value of field i.
func (f *Form) Value(i int) string {
	return strings.TrimSpace(f.inputs[i].Value())
}

// View renders the labelled inputs and the error line, if any.
func (f *Form) View(styles Styles) string {
	var sb strings.Builder
	for i := range f.inputs {
		sb.WriteString(styles.FormLabel.Render(f.labels[i]))
		sb.WriteString("\n")
		sb.WriteString(f.inputs[i].View())
		sb.WriteString("\n")
	}
	if f.Err != "" {
		sb.WriteString(styles.FormError.Render(f.Err))
		sb.WriteString("\n")
	}
	sb.WriteString(styles.Muted.Render("entrée: valider · tab: champ suivant · échap: annuler"))
	sb.WriteString("\n")
	return sb.String()
}
