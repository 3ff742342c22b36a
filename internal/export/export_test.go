package export

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"crewdesk/internal/gang"
	"crewdesk/internal/store"
)

func seededStore(t *testing.T) store.Store {
	t.Helper()
	s := store.NewMemory()
	require.NoError(t, store.SaveCollection(s, store.KeyMembers, []gang.Member{
		{ID: "m1", Name: "Tony", Role: "Lieutenant"},
	}))
	require.NoError(t, store.SaveCollection(s, store.KeyTransactions, []gang.Transaction{
		{ID: "t2", Date: "2024-01-02", Desc: "Frais", Amount: -200},
		{ID: "t1", Date: "2024-01-01", Desc: "Vente", Amount: 1000},
	}))
	require.NoError(t, store.SaveCollection(s, store.KeyArsenal, []gang.ArsenalItem{
		{ID: "a1", Name: `<script>alert("x")</script>`, Qty: 3},
	}))
	return s
}

func TestCollect(t *testing.T) {
	snap, err := Collect(seededStore(t))
	require.NoError(t, err)

	assert.False(t, snap.ExportedAt.IsZero())
	require.Len(t, snap.Members, 1)
	require.Len(t, snap.Transactions, 2)
	assert.Equal(t, "Frais", snap.Transactions[0].Desc)
	require.Len(t, snap.Arsenal, 1)
	assert.Empty(t, snap.Vehicles)
	assert.Empty(t, snap.Territories)
	assert.Empty(t, snap.Missions)
}

func TestWriteJSONRoundTrip(t *testing.T) {
	snap, err := Collect(seededStore(t))
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, snap.WriteJSON(&buf))

	var decoded Snapshot
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	if diff := cmp.Diff(snap.Members, decoded.Members); diff != "" {
		t.Errorf("members mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(snap.Transactions, decoded.Transactions); diff != "" {
		t.Errorf("transactions mismatch (-want +got):\n%s", diff)
	}
}

func TestMarkdownReport(t *testing.T) {
	snap, err := Collect(seededStore(t))
	require.NoError(t, err)

	md := snap.Markdown()
	assert.Contains(t, md, "Solde actuel")
	assert.Contains(t, md, "800,00 €")
	assert.Contains(t, md, "1 000,00 €")
	assert.Contains(t, md, "-200,00 €")
	assert.Contains(t, md, "Membres: 1")
	assert.Contains(t, md, "| 2024-01-02 | Frais |")
}

func TestMarkdownCapsRecentTransactions(t *testing.T) {
	s := store.NewMemory()
	var txs []gang.Transaction
	for i := 0; i < 10; i++ {
		txs = append(txs, gang.Transaction{ID: gang.NewRecordID(), Date: "2024-01-01", Desc: "x", Amount: 1})
	}
	require.NoError(t, store.SaveCollection(s, store.KeyTransactions, txs))

	snap, err := Collect(s)
	require.NoError(t, err)

	rows := strings.Count(snap.Markdown(), "| 2024-01-01 |")
	assert.Equal(t, 6, rows)
}

func TestWriteHTMLEscapesRecordFields(t *testing.T) {
	snap, err := Collect(seededStore(t))
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, snap.WriteHTML(&buf))

	html := buf.String()
	assert.NotContains(t, html, "<script>")
	assert.Contains(t, html, "&lt;script&gt;alert(&quot;x&quot;)&lt;/script&gt;")
	assert.Contains(t, html, "<h2>Transactions</h2>")
	assert.Contains(t, html, "<p>Aucune donnée</p>")
}
