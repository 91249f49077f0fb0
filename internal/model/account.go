package model

import (
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"github.com/shopspring/decimal"
)

// Account is a customer account with its full movement history.
type Account struct {
	Owner    string
	UserName string // derived from Owner once, see DeriveUserName
	PIN      int

	// Movements and MovementDates are index-aligned: MovementDates[i] is when
	// Movements[i] was booked. Positive = deposit, negative = withdrawal.
	Movements     []decimal.Decimal
	MovementDates []time.Time

	InterestRate decimal.Decimal // percent, 1.2 means 1.2%
	Currency     string
	Locale       string
}

// Record appends a movement and its timestamp.
func (a *Account) Record(amount decimal.Decimal, at time.Time) {
	a.Movements = append(a.Movements, amount)
	a.MovementDates = append(a.MovementDates, at)
}

// FirstName returns the first token of Owner.
func (a *Account) FirstName() string {
	fields := strings.Fields(a.Owner)
	if len(fields) == 0 {
		return ""
	}
	return fields[0]
}

// Clone returns a deep copy of the account.
func (a *Account) Clone() *Account {
	cp := *a
	cp.Movements = append([]decimal.Decimal(nil), a.Movements...)
	cp.MovementDates = append([]time.Time(nil), a.MovementDates...)
	return &cp
}

// DeriveUserName returns the lowercase initials of each whitespace-separated
// token of owner, in order.
// "Jonas Schmedtmann" -> "js"
func DeriveUserName(owner string) string {
	var b strings.Builder
	for _, tok := range strings.Fields(owner) {
		r, _ := utf8.DecodeRuneInString(tok)
		b.WriteRune(unicode.ToLower(r))
	}
	return b.String()
}
