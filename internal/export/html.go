package export

import (
	"fmt"
	"io"
	"strconv"

	"crewdesk/internal/gang"
)

// WriteHTML writes the snapshot as a standalone HTML report. Record fields
// are user-supplied free text and go through EscapeHTML before
// interpolation.
func (s *Snapshot) WriteHTML(w io.Writer) error {
	balance := gang.BalanceOf(s.Transactions)
	totals := gang.TotalsOf(s.Transactions)

	write := func(format string, args ...any) error {
		_, err := fmt.Fprintf(w, format, args...)
		return err
	}

	if err := write(`<!DOCTYPE html>
<html lang="fr">
<head><meta charset="utf-8"><title>CrewDesk — Rapport</title></head>
<body>
<h1>CrewDesk — Rapport</h1>
<p>Exporté le %s</p>
<h2>Finances</h2>
<ul>
<li>Solde actuel : %s</li>
<li>Revenus totaux : %s</li>
<li>Dépenses totales : %s</li>
</ul>
`,
		s.ExportedAt.Format("2006-01-02 15:04"),
		gang.EscapeHTML(gang.FormatAmount(balance)),
		gang.EscapeHTML(gang.FormatAmount(totals.Income)),
		gang.EscapeHTML(gang.FormatAmount(totals.Expense)),
	); err != nil {
		return err
	}

	if err := htmlTable(w, "Membres", []string{"ID", "Nom", "Rôle"}, len(s.Members), func(i int) []string {
		m := s.Members[i]
		return []string{string(m.ID), m.Name, m.Role}
	}); err != nil {
		return err
	}
	if err := htmlTable(w, "Transactions", []string{"Date", "Description", "Montant"}, len(s.Transactions), func(i int) []string {
		t := s.Transactions[i]
		return []string{t.Date, t.Desc, gang.FormatAmount(t.Amount)}
	}); err != nil {
		return err
	}
	if err := htmlTable(w, "Véhicules", []string{"Modèle", "État"}, len(s.Vehicles), func(i int) []string {
		v := s.Vehicles[i]
		return []string{v.Model, v.State}
	}); err != nil {
		return err
	}
	if err := htmlTable(w, "Arsenal", []string{"Nom", "Quantité"}, len(s.Arsenal), func(i int) []string {
		a := s.Arsenal[i]
		return []string{a.Name, strconv.Itoa(a.Qty)}
	}); err != nil {
		return err
	}
	if err := htmlTable(w, "Territoires", []string{"Nom", "Statut"}, len(s.Territories), func(i int) []string {
		z := s.Territories[i]
		return []string{z.Name, z.Status}
	}); err != nil {
		return err
	}
	if err := htmlTable(w, "Missions", []string{"Titre", "Statut"}, len(s.Missions), func(i int) []string {
		m := s.Missions[i]
		return []string{m.Title, m.Status}
	}); err != nil {
		return err
	}

	return write("</body>\n</html>\n")
}

func htmlTable(w io.Writer, title string, headers []string, n int, row func(int) []string) error {
	if _, err := fmt.Fprintf(w, "<h2>%s</h2>\n", gang.EscapeHTML(title)); err != nil {
		return err
	}
	if n == 0 {
		_, err := fmt.Fprint(w, "<p>Aucune donnée</p>\n")
		return err
	}
	if _, err := fmt.Fprint(w, "<table>\n<tr>"); err != nil {
		return err
	}
	for _, h := range headers {
		if _, err := fmt.Fprintf(w, "<th>%s</th>", gang.EscapeHTML(h)); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprint(w, "</tr>\n"); err != nil {
		return err
	}
	for i := 0; i < n; i++ {
		if _, err := fmt.Fprint(w, "<tr>"); err != nil {
			return err
		}
		for _, cell := range row(i) {
			if _, err := fmt.Fprintf(w, "<td>%s</td>", gang.EscapeHTML(cell)); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprint(w, "</tr>\n"); err != nil {
			return err
		}
	}
	_, err := fmt.Fprint(w, "</table>\n")
	return err
}
