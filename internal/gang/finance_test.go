package gang

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBalanceOfEmpty(t *testing.T) {
	assert.Equal(t, 0.0, BalanceOf(nil))
	assert.Equal(t, 0.0, BalanceOf([]Transaction{}))
}

func TestTotalsOf(t *testing.T) {
	txs := []Transaction{
		{Desc: "Vente", Amount: 1000},
		{Desc: "Frais", Amount: -200},
		{Desc: "Ristourne", Amount: 0},
		{Desc: "Racket", Amount: 350.5},
	}

	totals := TotalsOf(txs)
	assert.Equal(t, 1350.5, totals.Income, "zero counts as income")
	assert.Equal(t, -200.0, totals.Expense, "expense keeps its sign")
	assert.Equal(t, BalanceOf(txs), totals.Income+totals.Expense)
}

func TestStateBalanceMatchesTotals(t *testing.T) {
	st := newTestState(t)

	for _, amount := range []float64{1200, -450.25, 0, 89.99, -12} {
		_, err := st.AddTransaction("2024-03-01", "x", amount)
		assert.NoError(t, err)
	}

	totals := st.TransactionTotals()
	assert.InDelta(t, st.Balance(), totals.Income+totals.Expense, 1e-9)
}
