// Package export dumps the persisted collections as JSON, HTML or a markdown
// finance report, without going through the interactive console.
package export

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"crewdesk/internal/gang"
	"crewdesk/internal/store"
)

// Snapshot is a point-in-time copy of all six collections.
type Snapshot struct {
	ExportedAt   time.Time          `json:"exported_at"`
	Members      []gang.Member      `json:"members"`
	Transactions []gang.Transaction `json:"transactions"`
	Vehicles     []gang.Vehicle     `json:"vehicles"`
	Arsenal      []gang.ArsenalItem `json:"arsenal"`
	Territories  []gang.Territory   `json:"territories"`
	Missions     []gang.Mission     `json:"missions"`
}

// Collect loads every collection from s. Loads run concurrently; each one
// targets a distinct field, so no coordination beyond the errgroup is needed.
func Collect(s store.Store) (*Snapshot, error) {
	snap := &Snapshot{ExportedAt: time.Now().UTC()}

	var g errgroup.Group
	g.Go(func() (err error) {
		snap.Members, err = store.LoadCollection[gang.Member](s, store.KeyMembers)
		return err
	})
	g.Go(func() (err error) {
		snap.Transactions, err = store.LoadCollection[gang.Transaction](s, store.KeyTransactions)
		return err
	})
	g.Go(func() (err error) {
		snap.Vehicles, err = store.LoadCollection[gang.Vehicle](s, store.KeyVehicles)
		return err
	})
	g.Go(func() (err error) {
		snap.Arsenal, err = store.LoadCollection[gang.ArsenalItem](s, store.KeyArsenal)
		return err
	})
	g.Go(func() (err error) {
		snap.Territories, err = store.LoadCollection[gang.Territory](s, store.KeyTerritories)
		return err
	})
	g.Go(func() (err error) {
		snap.Missions, err = store.LoadCollection[gang.Mission](s, store.KeyMissions)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("failed to collect snapshot: %w", err)
	}
	return snap, nil
}

// WriteJSON writes the snapshot as an indented JSON document.
func (s *Snapshot) WriteJSON(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(s)
}

// Markdown renders a finance summary suitable for terminal display.
func (s *Snapshot) Markdown() string {
	balance := gang.BalanceOf(s.Transactions)
	totals := gang.TotalsOf(s.Transactions)

	var sb strings.Builder
	sb.WriteString("# CrewDesk — Rapport\n\n")
	fmt.Fprintf(&sb, "Exporté le %s\n\n", s.ExportedAt.Format("2006-01-02 15:04"))
	sb.WriteString("## Finances\n\n")
	fmt.Fprintf(&sb, "- **Solde actuel**: %s\n", gang.FormatAmount(balance))
	fmt.Fprintf(&sb, "- **Revenus totaux**: %s\n", gang.FormatAmount(totals.Income))
	fmt.Fprintf(&sb, "- **Dépenses totales**: %s\n\n", gang.FormatAmount(totals.Expense))

	sb.WriteString("## Effectifs\n\n")
	fmt.Fprintf(&sb, "- Membres: %d\n", len(s.Members))
	fmt.Fprintf(&sb, "- Véhicules: %d\n", len(s.Vehicles))
	fmt.Fprintf(&sb, "- Arsenal: %d\n", len(s.Arsenal))
	fmt.Fprintf(&sb, "- Territoires: %d\n", len(s.Territories))
	fmt.Fprintf(&sb, "- Missions: %d\n\n", len(s.Missions))

	if len(s.Transactions) > 0 {
		sb.WriteString("## Transactions récentes\n\n")
		sb.WriteString("| Date | Description | Montant |\n")
		sb.WriteString("|------|-------------|--------:|\n")
		recent := s.Transactions
		if len(recent) > 6 {
			recent = recent[:6]
		}
		for _, t := range recent {
			fmt.Fprintf(&sb, "| %s | %s | %s |\n", t.Date, t.Desc, gang.FormatAmount(t.Amount))
		}
	}
	return sb.String()
}
