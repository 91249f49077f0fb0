package bank

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/bankist-dev/bankist/internal/ledger"
	"github.com/bankist-dev/bankist/internal/model"
	"github.com/bankist-dev/bankist/internal/summary"
)

var (
	ErrInvalidTransfer = errors.New("invalid transfer")
	ErrInvalidLoan     = errors.New("loan not granted")
	ErrInvalidClosure  = errors.New("account can not be closed")
)

// loanCoverRatio: a loan needs one past movement of at least this share of
// the requested amount.
var loanCoverRatio = decimal.New(1, -1)

// Accepted amounts have at most maxAmountDigits integer digits and at most
// maxAmountScale decimal places.
const (
	maxAmountDigits = 15
	maxAmountScale  = 8
)

// Accounts is the repository view the engine needs.
type Accounts interface {
	FindByUserName(name string) (*model.Account, bool)
	Remove(userName string) error
}

// Service applies transfers, loans and closures. All operations run under
// one lock, and every check happens before the first mutation.
type Service struct {
	mu       sync.Mutex
	accounts Accounts
	now      func() time.Time
}

// Option configures a Service.
type Option func(*Service)

// WithClock overrides the timestamp source for new movements.
func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

// NewService creates a transaction Service over accounts.
func NewService(accounts Accounts, opts ...Option) *Service {
	s := &Service{accounts: accounts, now: time.Now}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Transfer moves amount from acting to the account named toUserName.
func (s *Service) Transfer(acting *model.Account, toUserName string, amount decimal.Decimal) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.checkActing(acting); err != nil {
		return err
	}

	to, ok := s.accounts.FindByUserName(toUserName)
	switch {
	case !ok:
		return fmt.Errorf("%w: unknown recipient %q", ErrInvalidTransfer, toUserName)
	case !inRange(amount):
		return fmt.Errorf("%w: amount out of range", ErrInvalidTransfer)
	case !amount.IsPositive():
		return fmt.Errorf("%w: amount must be greater than zero", ErrInvalidTransfer)
	case to == acting || to.UserName == acting.UserName:
		return fmt.Errorf("%w: cannot transfer to own account", ErrInvalidTransfer)
	case summary.Balance(acting.Movements).LessThan(amount):
		return fmt.Errorf("%w: insufficient balance", ErrInvalidTransfer)
	}

	now := s.now()
	acting.Record(amount.Neg(), now)
	to.Record(amount, now)
	return nil
}

// RequestLoan credits amount to acting if any single past movement is at
// least 10% of it. Current balance is not considered.
func (s *Service) RequestLoan(acting *model.Account, amount decimal.Decimal) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.checkActing(acting); err != nil {
		return err
	}

	if !inRange(amount) {
		return fmt.Errorf("%w: amount out of range", ErrInvalidLoan)
	}
	if !amount.IsPositive() {
		return fmt.Errorf("%w: amount must be greater than zero", ErrInvalidLoan)
	}
	if !eligibleForLoan(acting.Movements, amount) {
		return fmt.Errorf("%w: no movement covers %s of the amount", ErrInvalidLoan, loanCoverRatio)
	}

	acting.Record(amount, s.now())
	return nil
}

// CloseAccount removes acting after re-checking its userName and pin.
func (s *Service) CloseAccount(acting *model.Account, confirmUserName string, confirmPin int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.checkActing(acting); err != nil {
		return err
	}

	if confirmUserName != acting.UserName || confirmPin != acting.PIN {
		return ErrInvalidClosure
	}
	if err := s.accounts.Remove(acting.UserName); err != nil {
		return fmt.Errorf("closing %s: %w", acting.UserName, err)
	}
	return nil
}

// checkActing rejects a nil acting account or one that no longer resolves
// (for example after it was closed).
func (s *Service) checkActing(acting *model.Account) error {
	if acting == nil {
		return fmt.Errorf("%w: no acting account", ledger.ErrNotFound)
	}
	if cur, ok := s.accounts.FindByUserName(acting.UserName); !ok || cur != acting {
		return fmt.Errorf("%w: %q", ledger.ErrNotFound, acting.UserName)
	}
	return nil
}

// inRange looks only at the exponent and coefficient, so it never rescales.
func inRange(amount decimal.Decimal) bool {
	exp := int64(amount.Exponent())
	if exp < -maxAmountScale || exp > maxAmountDigits {
		return false
	}
	return int64(amount.NumDigits())+exp <= maxAmountDigits
}

func eligibleForLoan(movements []decimal.Decimal, amount decimal.Decimal) bool {
	need := amount.Mul(loanCoverRatio)
	for _, m := range movements {
		if m.GreaterThanOrEqual(need) {
			return true
		}
	}
	return false
}
