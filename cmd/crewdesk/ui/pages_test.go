package ui

import (
	"os"
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"crewdesk/internal/config"
	"crewdesk/internal/gang"
	"crewdesk/internal/store"
)

func newPageState(t *testing.T) *gang.State {
	t.Helper()
	st, err := gang.Open(store.NewMemory(), zap.NewNop())
	require.NoError(t, err)
	return st
}

func key(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
}

// runToast executes the returned command and extracts the toast, if any.
func runToast(t *testing.T, cmd tea.Cmd) *ToastMsg {
	t.Helper()
	if cmd == nil {
		return nil
	}
	if toast, ok := cmd().(ToastMsg); ok {
		return &toast
	}
	return nil
}

func TestMembersPageAddFlow(t *testing.T) {
	st := newPageState(t)
	m := NewMembersPageModel(st, DefaultStyles())

	m, _ = m.Update(key("a"))
	assert.True(t, m.Capturing(), "form mode must capture nav keys")

	m, _ = m.Update(key("Tony"))
	m, _ = m.Update(key("tab"))
	m, _ = m.Update(key("Lieutenant"))
	m, cmd := m.Update(key("enter"))

	require.Len(t, st.Members, 1)
	assert.Equal(t, "Tony", st.Members[0].Name)
	assert.Equal(t, "Lieutenant", st.Members[0].Role)
	assert.False(t, m.Capturing())

	toast := runToast(t, cmd)
	require.NotNil(t, toast)
	assert.Equal(t, "Membre ajouté", toast.Text)
}

func TestMembersPageRejectsIncompleteForm(t *testing.T) {
	st := newPageState(t)
	m := NewMembersPageModel(st, DefaultStyles())

	m, _ = m.Update(key("a"))
	m, _ = m.Update(key("enter"))

	assert.Empty(t, st.Members)
	assert.True(t, m.Capturing(), "form stays open on validation failure")
	assert.Contains(t, m.View(), "Remplis tous les champs")
}

func TestMembersPageEscCancelsForm(t *testing.T) {
	st := newPageState(t)
	m := NewMembersPageModel(st, DefaultStyles())

	m, _ = m.Update(key("a"))
	m, _ = m.Update(key("Tony"))
	m, _ = m.Update(key("esc"))

	assert.Empty(t, st.Members)
	assert.False(t, m.Capturing())

	// Re-opening the form starts from a blank slate.
	m, _ = m.Update(key("a"))
	assert.NotContains(t, m.View(), "Tony")
}

func TestMembersPageDeleteConfirm(t *testing.T) {
	st := newPageState(t)
	_, err := st.AddMember("Tony", "Lieutenant")
	require.NoError(t, err)
	m := NewMembersPageModel(st, DefaultStyles())

	m, _ = m.Update(key("d"))
	assert.True(t, m.Capturing())
	assert.Contains(t, m.View(), "Supprimer ce membre ?")

	m, cmd := m.Update(key("y"))
	assert.Empty(t, st.Members)
	toast := runToast(t, cmd)
	require.NotNil(t, toast)
	assert.Equal(t, "Membre supprimé", toast.Text)
}

func TestMembersPageDeleteDeclined(t *testing.T) {
	st := newPageState(t)
	_, err := st.AddMember("Tony", "Lieutenant")
	require.NoError(t, err)
	m := NewMembersPageModel(st, DefaultStyles())

	m, _ = m.Update(key("d"))
	m, _ = m.Update(key("n"))

	assert.Len(t, st.Members, 1)
	assert.False(t, m.Capturing())
}

func TestTransactionsPageAddWithCommaDecimal(t *testing.T) {
	st := newPageState(t)
	m := NewTransactionsPageModel(st, DefaultStyles())

	m, _ = m.Update(key("a"))
	m, _ = m.Update(key("2024-01-01"))
	m, _ = m.Update(key("tab"))
	m, _ = m.Update(key("Vente"))
	m, _ = m.Update(key("tab"))
	m, _ = m.Update(key("1200,50"))
	m, cmd := m.Update(key("enter"))

	require.Len(t, st.Transactions, 1)
	assert.Equal(t, 1200.50, st.Transactions[0].Amount)
	toast := runToast(t, cmd)
	require.NotNil(t, toast)
	assert.Equal(t, "Transaction ajoutée", toast.Text)
}

func TestTransactionsPageRejectsBadAmount(t *testing.T) {
	st := newPageState(t)
	m := NewTransactionsPageModel(st, DefaultStyles())

	m, _ = m.Update(key("a"))
	m, _ = m.Update(key("2024-01-01"))
	m, _ = m.Update(key("tab"))
	m, _ = m.Update(key("Vente"))
	m, _ = m.Update(key("tab"))
	m, _ = m.Update(key("beaucoup"))
	m, _ = m.Update(key("enter"))

	assert.Empty(t, st.Transactions)
	assert.Contains(t, m.View(), "Montant invalide")
}

func TestTransactionsPageShowsBalance(t *testing.T) {
	st := newPageState(t)
	_, err := st.AddTransaction("2024-01-01", "Vente", 1000)
	require.NoError(t, err)
	_, err = st.AddTransaction("2024-01-02", "Frais", -200)
	require.NoError(t, err)
	m := NewTransactionsPageModel(st, DefaultStyles())

	view := m.View()
	assert.Contains(t, view, "Coffre")
	assert.Contains(t, view, "800,00 €")
}

func TestVehiclesPageAddFlow(t *testing.T) {
	st := newPageState(t)
	m := NewVehiclesPageModel(st, DefaultStyles())

	m, _ = m.Update(key("a"))
	m, _ = m.Update(key("Sultan RS"))
	m, cmd := m.Update(key("enter"))

	require.Len(t, st.Vehicles, 1)
	assert.Equal(t, "Sultan RS", st.Vehicles[0].Model)
	assert.Equal(t, gang.VehicleStateAdded, st.Vehicles[0].State)
	toast := runToast(t, cmd)
	require.NotNil(t, toast)
	assert.Equal(t, "Véhicule ajouté", toast.Text)
}

func TestArsenalPageHasNoAddForm(t *testing.T) {
	st := newPageState(t)
	m := NewArsenalPageModel(st, DefaultStyles())

	m, _ = m.Update(key("a"))
	assert.False(t, m.Capturing(), "arsenal has no creation path")
	assert.Contains(t, m.View(), "Arsenal vide")
}

func TestArsenalPageDelete(t *testing.T) {
	mem := store.NewMemory()
	require.NoError(t, store.SaveCollection(mem, store.KeyArsenal, []gang.ArsenalItem{
		{ID: "a1", Name: "AK-47", Qty: 12},
	}))
	st, err := gang.Open(mem, zap.NewNop())
	require.NoError(t, err)
	m := NewArsenalPageModel(st, DefaultStyles())

	assert.Contains(t, m.View(), "12 unités")

	m, _ = m.Update(key("d"))
	m, cmd := m.Update(key("y"))
	assert.Empty(t, st.Arsenal)
	toast := runToast(t, cmd)
	require.NotNil(t, toast)
	assert.Equal(t, "Item supprimé", toast.Text)
}

func TestDashboardView(t *testing.T) {
	st := newPageState(t)
	m := NewDashboardPageModel(st, DefaultStyles())
	assert.Contains(t, m.View(), "Aucune activité récente")

	_, err := st.AddTransaction("2024-01-01", "Vente", 1000)
	require.NoError(t, err)
	_, err = st.AddTerritory("Docks")
	require.NoError(t, err)

	view := m.View()
	assert.Contains(t, view, "Vente")
	assert.Contains(t, view, "1 000,00 €")
	assert.Contains(t, view, "1 / 6")
}

func TestFinancesView(t *testing.T) {
	st := newPageState(t)
	_, err := st.AddTransaction("2024-01-01", "Vente", 1000)
	require.NoError(t, err)
	_, err = st.AddTransaction("2024-01-02", "Frais", -200)
	require.NoError(t, err)
	m := NewFinancesPageModel(st, DefaultStyles())

	view := m.View()
	assert.Contains(t, view, "Solde actuel")
	assert.Contains(t, view, "800,00 €")
	assert.Contains(t, view, "1 000,00 €")
	assert.Contains(t, view, "-200,00 €")
}

func TestSettingsClearAll(t *testing.T) {
	st := newPageState(t)
	_, err := st.AddMember("Tony", "Lieutenant")
	require.NoError(t, err)
	m := NewSettingsPageModel(st, DefaultStyles(), config.Default())

	m, _ = m.Update(key("x"))
	assert.True(t, m.Capturing())
	assert.Contains(t, m.View(), "Tout supprimer ? (y/n)")

	m, cmd := m.Update(key("y"))
	assert.Empty(t, st.Members)
	toast := runToast(t, cmd)
	require.NotNil(t, toast)
	assert.Equal(t, "Toutes les données ont été supprimées", toast.Text)
}

func TestSettingsClearDeclined(t *testing.T) {
	st := newPageState(t)
	_, err := st.AddMember("Tony", "Lieutenant")
	require.NoError(t, err)
	m := NewSettingsPageModel(st, DefaultStyles(), config.Default())

	m, _ = m.Update(key("x"))
	m, _ = m.Update(key("n"))
	assert.Len(t, st.Members, 1)
	assert.False(t, m.Capturing())
}

func TestPagesSanitizeRecordText(t *testing.T) {
	st := newPageState(t)
	_, err := st.AddMember("Tony\x1b]0;pwn\x07", "Lieutenant")
	require.NoError(t, err)
	m := NewMembersPageModel(st, DefaultStyles())

	assert.NotContains(t, m.View(), "\x1b]0;pwn\x07")
}

func TestMembersPageDeleteAfterExternalShrink(t *testing.T) {
	mem := store.NewMemory()
	st, err := gang.Open(mem, zap.NewNop())
	require.NoError(t, err)
	for _, name := range []string{"Tony", "Rico", "Sacha"} {
		_, err := st.AddMember(name, "Soldat")
		require.NoError(t, err)
	}
	m := NewMembersPageModel(st, DefaultStyles())

	m, _ = m.Update(key("j"))
	m, _ = m.Update(key("j"))

	// Another process rewrites the collection down to one record and the
	// console re-hydrates; the page's cursor now points past the end.
	require.NoError(t, store.SaveCollection(mem, store.KeyMembers, []gang.Member{
		{ID: "m1", Name: "Seul", Role: "Soldat"},
	}))
	require.NoError(t, st.Reload())

	m, _ = m.Update(key("d"))
	assert.True(t, m.Capturing())
	assert.Contains(t, m.View(), "Supprimer ce membre ?")

	m, cmd := m.Update(key("y"))
	assert.Empty(t, st.Members)
	toast := runToast(t, cmd)
	require.NotNil(t, toast)
	assert.Equal(t, "Membre supprimé", toast.Text)
}

func TestArsenalPageDeleteAfterExternalShrink(t *testing.T) {
	mem := store.NewMemory()
	require.NoError(t, store.SaveCollection(mem, store.KeyArsenal, []gang.ArsenalItem{
		{ID: "a1", Name: "AK-47", Qty: 12},
		{ID: "a2", Name: "Gilet", Qty: 3},
		{ID: "a3", Name: "Munitions", Qty: 40},
	}))
	st, err := gang.Open(mem, zap.NewNop())
	require.NoError(t, err)
	m := NewArsenalPageModel(st, DefaultStyles())

	m, _ = m.Update(key("j"))
	m, _ = m.Update(key("j"))

	require.NoError(t, store.SaveCollection(mem, store.KeyArsenal, []gang.ArsenalItem{
		{ID: "a1", Name: "AK-47", Qty: 12},
	}))
	require.NoError(t, st.Reload())

	m, _ = m.Update(key("d"))
	m, _ = m.Update(key("y"))
	assert.Empty(t, st.Arsenal)
}

func TestSettingsThemeToggleSaves(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	require.NoError(t, os.Mkdir(filepath.Join(dir, ".crewdesk"), 0755))

	st := newPageState(t)
	m := NewSettingsPageModel(st, DefaultStyles(), config.Default())

	m, cmd := m.Update(key("t"))
	toast := runToast(t, cmd)
	require.NotNil(t, toast)
	assert.Equal(t, "Thème enregistré: dark (au prochain démarrage)", toast.Text)
	assert.Contains(t, m.View(), "dark")

	saved, err := config.Load()
	require.NoError(t, err)
	assert.Equal(t, "dark", saved.Theme)

	// Toggling again flips back.
	m, _ = m.Update(key("t"))
	saved, err = config.Load()
	require.NoError(t, err)
	assert.Equal(t, "light", saved.Theme)
}
