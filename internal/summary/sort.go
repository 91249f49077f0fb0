package summary

import (
	"slices"

	"github.com/shopspring/decimal"

	"github.com/bankist-dev/bankist/internal/model"
)

// SortedMovements returns acct's movements for display, ascending by value
// when ascending is set. The sorted view drops date alignment: callers show
// only position and value in that mode.
func SortedMovements(acct *model.Account, ascending bool) []decimal.Decimal {
	return Sorted(acct.Movements, ascending)
}

// Sorted returns a new slice; movements is never modified.
func Sorted(movements []decimal.Decimal, ascending bool) []decimal.Decimal {
	out := slices.Clone(movements)
	if ascending {
		slices.SortStableFunc(out, func(a, b decimal.Decimal) int {
			return a.Cmp(b)
		})
	}
	return out
}
