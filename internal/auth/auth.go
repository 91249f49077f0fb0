package auth

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/bankist-dev/bankist/internal/model"
)

// maxPINExponent bounds the exponent of pin input so that "1e9999999"
// is rejected without expanding it.
const maxPINExponent = 10

var maxPIN = decimal.NewFromInt(math.MaxInt32)

// ErrInvalidCredentials is returned for any failed login. It never says
// whether the user or the pin was wrong.
var ErrInvalidCredentials = errors.New("wrong user name or pin")

// Finder resolves a userName to an account.
type Finder interface {
	FindByUserName(name string) (*model.Account, bool)
}

// Login checks a raw userName/pin pair and returns the matching account.
func Login(accounts Finder, userName, pin string) (*model.Account, error) {
	acct, ok := accounts.FindByUserName(userName)
	if !ok {
		return nil, ErrInvalidCredentials
	}
	n, err := ParsePIN(pin)
	if err != nil || n != acct.PIN {
		return nil, ErrInvalidCredentials
	}
	return acct, nil
}

// ParsePIN converts raw pin input to its numeric value, so "1111", "1111.0"
// and "1.111e3" are the same pin. Empty, non-numeric and fractional input
// are rejected.
func ParsePIN(raw string) (int, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return 0, errors.New("pin is empty")
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return 0, fmt.Errorf("parsing pin: %w", err)
	}
	if exp := d.Exponent(); exp > maxPINExponent || exp < -maxPINExponent {
		return 0, fmt.Errorf("pin %q out of range", s)
	}
	if !d.IsInteger() {
		return 0, fmt.Errorf("pin %q is not a whole number", s)
	}
	if d.Abs().GreaterThan(maxPIN) {
		return 0, fmt.Errorf("pin %q out of range", s)
	}
	return int(d.IntPart()), nil
}
