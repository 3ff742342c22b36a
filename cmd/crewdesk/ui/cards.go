package ui

import "strings"

// Card is one record rendered as a bordered block in a list page.
type Card struct {
	Title string
	Meta  string
}

// RenderCards renders a vertical card list, highlighting the cursor row.
func RenderCards(styles Styles, cards []Card, cursor int, empty string) string {
	if len(cards) == 0 {
		return styles.Muted.Render(empty) + "\n"
	}

	var sb strings.Builder
	for i, c := range cards {
		title := styles.Bold.Render(c.Title)
		if i == cursor {
			title = styles.SelectedRow.Render(c.Title)
		}
		line := title
		if c.Meta != "" {
			line += " — " + styles.Muted.Render(c.Meta)
		}
		marker := "  "
		if i == cursor {
			marker = styles.Title.Render("» ")
		}
		sb.WriteString(marker + line + "\n")
	}
	return sb.String()
}
