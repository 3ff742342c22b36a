// Package ui layout constants for consistent spacing and dimensions.
package ui

// Layout constants for page and panel sizing.
const (
	HeaderHeight  = 1
	TabBarHeight  = 2
	FooterHeight  = 2
	ContentMargin = 2

	PanelBorderWidth = 2
	PanelPaddingH    = 1

	MinimumTerminalWidth  = 80
	MinimumTerminalHeight = 24

	// Dashboard shows at most this many recent transactions.
	RecentActivityCount = 6
)

// ContentHeight returns the rows available to a page for the given terminal
// height.
func ContentHeight(terminalHeight int) int {
	h := terminalHeight - HeaderHeight - TabBarHeight - FooterHeight - ContentMargin
	if h < 1 {
		h = 1
	}
	return h
}

// ContentWidth returns the columns available to a page for the given terminal
// width.
func ContentWidth(terminalWidth int) int {
	w := terminalWidth - ContentMargin*2
	if w < 1 {
		w = 1
	}
	return w
}

// PanelContentWidth returns the usable width inside a bordered panel.
func PanelContentWidth(panelWidth int) int {
	return panelWidth - PanelBorderWidth - PanelPaddingH*2
}
