// Package summary derives balance, income, expense and interest from an
// account's movements. Nothing is cached: every call recomputes from the
// current history.
package summary

import (
	"github.com/shopspring/decimal"

	"github.com/bankist-dev/bankist/internal/model"
)

var (
	hundred = decimal.NewFromInt(100)

	// minInterest is the smallest per-deposit interest that is credited.
	minInterest = decimal.NewFromInt(1)
)

// Summary holds the derived figures for one account.
type Summary struct {
	Balance  decimal.Decimal
	Income   decimal.Decimal
	Expense  decimal.Decimal // <= 0
	Interest decimal.Decimal
}

// Summarize computes all figures for acct.
func Summarize(acct *model.Account) Summary {
	return Summary{
		Balance:  Balance(acct.Movements),
		Income:   Income(acct.Movements),
		Expense:  Expense(acct.Movements),
		Interest: Interest(acct.Movements, acct.InterestRate),
	}
}

// Rounded returns the summary rounded to 2 decimal places, as displayed.
func (s Summary) Rounded() Summary {
	return Summary{
		Balance:  s.Balance.Round(2),
		Income:   s.Income.Round(2),
		Expense:  s.Expense.Round(2),
		Interest: s.Interest.Round(2),
	}
}

// Balance is the sum of all movements; zero for an empty history.
func Balance(movements []decimal.Decimal) decimal.Decimal {
	total := decimal.Zero
	for _, m := range movements {
		total = total.Add(m)
	}
	return total
}

// Income is the sum of deposits.
func Income(movements []decimal.Decimal) decimal.Decimal {
	total := decimal.Zero
	for _, m := range movements {
		if m.IsPositive() {
			total = total.Add(m)
		}
	}
	return total
}

// Expense is the sum of withdrawals.
func Expense(movements []decimal.Decimal) decimal.Decimal {
	total := decimal.Zero
	for _, m := range movements {
		if m.IsNegative() {
			total = total.Add(m)
		}
	}
	return total
}

// Interest sums rate% of each deposit, skipping deposits whose interest
// would be under one unit.
func Interest(movements []decimal.Decimal, rate decimal.Decimal) decimal.Decimal {
	total := decimal.Zero
	for _, m := range movements {
		if !m.IsPositive() {
			continue
		}
		i := m.Mul(rate).Div(hundred)
		if i.GreaterThanOrEqual(minInterest) {
			total = total.Add(i)
		}
	}
	return total
}
