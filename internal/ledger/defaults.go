package ledger

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/bankist-dev/bankist/internal/model"
)

// DefaultAccounts returns the built-in seed accounts. Each call returns fresh
// copies, so callers may mutate them freely.
func DefaultAccounts() []*model.Account {
	return []*model.Account{
		seed("Jonas Schmedtmann", 1111, "1.2", "EUR", "pt-PT",
			[]string{"200", "455.23", "-306.5", "25000", "-642.21", "-133.9", "79.97", "1300"},
			[]string{
				"2019-11-18T21:31:17.178Z",
				"2019-12-23T07:42:02.383Z",
				"2020-01-28T09:15:04.904Z",
				"2020-04-01T10:17:24.185Z",
				"2020-05-08T14:11:59.604Z",
				"2020-05-27T17:01:17.194Z",
				"2020-07-11T23:36:17.929Z",
				"2020-07-12T10:51:36.790Z",
			}),
		seed("Jessica Davis", 2222, "1.5", "USD", "en-US",
			[]string{"5000", "3400", "-150", "-790", "-3210", "-1000", "8500", "-30"},
			[]string{
				"2019-11-01T13:15:33.035Z",
				"2019-11-30T09:48:16.867Z",
				"2019-12-25T06:04:23.907Z",
				"2020-01-25T14:18:46.235Z",
				"2020-02-05T16:33:06.386Z",
				"2020-04-10T14:43:26.374Z",
				"2020-06-25T18:49:59.371Z",
				"2020-07-26T12:01:20.894Z",
			}),
	}
}

// seed builds an account from literals known to be valid.
func seed(owner string, pin int, rate, currency, locale string, amounts, dates []string) *model.Account {
	a := &model.Account{
		Owner:        owner,
		PIN:          pin,
		InterestRate: decimal.RequireFromString(rate),
		Currency:     currency,
		Locale:       locale,
	}
	for i, amt := range amounts {
		at, err := time.Parse(time.RFC3339, dates[i])
		if err != nil {
			panic("ledger: bad seed date " + dates[i])
		}
		a.Record(decimal.RequireFromString(amt), at)
	}
	return a
}
