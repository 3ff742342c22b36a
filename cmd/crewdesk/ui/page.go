package ui

import "crewdesk/internal/gang"

// pageMode is the per-page interaction state: browsing the list, filling the
// add form, or answering a delete confirmation.
type pageMode int

const (
	modeBrowse pageMode = iota
	modeForm
	modeConfirm
)

// confirmState is a pending destructive action keyed by record id.
type confirmState struct {
	id     gang.RecordID
	prompt string
}

func clampCursor(cursor, length int) int {
	if length == 0 {
		return 0
	}
	if cursor < 0 {
		return 0
	}
	if cursor >= length {
		return length - 1
	}
	return cursor
}

// errText renders a mutation error for a toast.
func errText(err error) string {
	return "Erreur: " + err.Error()
}
