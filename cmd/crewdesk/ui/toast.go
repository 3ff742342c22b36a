package ui

import (
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// ToastKind selects the toast styling.
type ToastKind int

const (
	ToastInfo ToastKind = iota
	ToastError
)

// ToastMsg asks the root model to display a transient notification.
type ToastMsg struct {
	Text string
	Kind ToastKind
}

// Notify returns a command emitting an informational toast.
func Notify(text string) tea.Cmd {
	return func() tea.Msg { return ToastMsg{Text: text} }
}

// NotifyError returns a command emitting an error toast.
func NotifyError(text string) tea.Cmd {
	return func() tea.Msg { return ToastMsg{Text: text, Kind: ToastError} }
}

// Toast is one on-screen notification with its own deadline.
type Toast struct {
	Text     string
	Kind     ToastKind
	Deadline time.Time
}

// ToastStack holds the currently visible toasts. There is no queueing:
// concurrent toasts coexist, each expiring independently.
type ToastStack struct {
	TTL    time.Duration
	toasts []Toast
}

// DefaultToastTTL matches the original console's notification duration.
const DefaultToastTTL = 1600 * time.Millisecond

// Push adds a toast expiring TTL from now.
func (ts *ToastStack) Push(msg ToastMsg, now time.Time) {
	ttl := ts.TTL
	if ttl <= 0 {
		ttl = DefaultToastTTL
	}
	ts.toasts = append(ts.toasts, Toast{Text: msg.Text, Kind: msg.Kind, Deadline: now.Add(ttl)})
}

// Prune drops expired toasts.
func (ts *ToastStack) Prune(now time.Time) {
	kept := ts.toasts[:0]
	for _, t := range ts.toasts {
		if t.Deadline.After(now) {
			kept = append(kept, t)
		}
	}
	ts.toasts = kept
}

// Empty reports whether no toast is visible.
func (ts *ToastStack) Empty() bool {
	return len(ts.toasts) == 0
}

// View renders the visible toasts, newest last.
func (ts *ToastStack) View(styles Styles) string {
	if len(ts.toasts) == 0 {
		return ""
	}
	var sb strings.Builder
	for i, t := range ts.toasts {
		style := styles.ToastInfo
		if t.Kind == ToastError {
			style = styles.ToastError
		}
		sb.WriteString(style.Render(" " + t.Text + " "))
		if i < len(ts.toasts)-1 {
			sb.WriteString("\n")
		}
	}
	return sb.String()
}
