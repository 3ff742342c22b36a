package gang

import (
	"math"
	"sync"

	"github.com/Rhymond/go-money"
)

// Amounts render French style: space-grouped thousands, comma decimals, euro
// suffix ("1 234,56 €").
var (
	formatterMu sync.RWMutex
	// go-money templates: "1" is the number, "$" the grapheme.
	formatter = money.NewFormatter(2, ",", " ", "€", "1 $")
	fraction  = 2
)

// SetAmountFormat replaces the display format, typically from configuration.
func SetAmountFormat(frac int, decimal, thousand, grapheme string) {
	formatterMu.Lock()
	defer formatterMu.Unlock()
	formatter = money.NewFormatter(frac, decimal, thousand, grapheme, "1 $")
	fraction = frac
}

// FormatAmount renders a signed amount with grouping and the currency suffix.
func FormatAmount(amount float64) string {
	formatterMu.RLock()
	defer formatterMu.RUnlock()
	minor := int64(math.Round(amount * math.Pow10(fraction)))
	return formatter.Format(minor)
}
