package gang

// Totals partitions transaction amounts by sign. Expense stays signed
// (negative), so Income + Expense == the balance.
type Totals struct {
	Income  float64
	Expense float64
}

// BalanceOf returns the signed sum of all transaction amounts.
func BalanceOf(txs []Transaction) float64 {
	var sum float64
	for _, t := range txs {
		sum += t.Amount
	}
	return sum
}

// TotalsOf sums income (amount >= 0, zero counts as income) and expense
// (amount < 0) separately.
func TotalsOf(txs []Transaction) Totals {
	var totals Totals
	for _, t := range txs {
		if t.Amount >= 0 {
			totals.Income += t.Amount
		} else {
			totals.Expense += t.Amount
		}
	}
	return totals
}

// Balance is the displayed treasury balance.
func (st *State) Balance() float64 {
	return BalanceOf(st.Transactions)
}

func (st *State) TransactionTotals() Totals {
	return TotalsOf(st.Transactions)
}
