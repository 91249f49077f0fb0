package ledger

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/bankist-dev/bankist/internal/model"
)

// ErrNotFound is returned when no account matches a userName.
var ErrNotFound = errors.New("account not found")

// Repository holds the ordered set of accounts, unique by userName.
type Repository struct {
	accounts   []*model.Account
	byUserName map[string]*model.Account
}

// NewRepository derives missing userNames, validates, and indexes accounts.
// Construction fails if any invariant is violated. The slice is copied; the
// accounts themselves are shared.
func NewRepository(accounts []*model.Account) (*Repository, error) {
	accounts = slices.Clone(accounts)
	for _, a := range accounts {
		if a.UserName == "" {
			a.UserName = model.DeriveUserName(a.Owner)
		}
	}

	if err := joinErrors(ValidateAccounts(accounts)); err != nil {
		return nil, err
	}

	byUserName := make(map[string]*model.Account, len(accounts))
	for _, a := range accounts {
		byUserName[a.UserName] = a
	}
	return &Repository{accounts: accounts, byUserName: byUserName}, nil
}

// FindByUserName returns the account with exactly this userName.
func (r *Repository) FindByUserName(name string) (*model.Account, bool) {
	a, ok := r.byUserName[name]
	return a, ok
}

// All returns a snapshot of the accounts in their original order. Changes
// to the returned accounts do not reach the ledger.
func (r *Repository) All() []*model.Account {
	out := make([]*model.Account, len(r.accounts))
	for i, a := range r.accounts {
		out[i] = a.Clone()
	}
	return out
}

// Len returns the number of accounts.
func (r *Repository) Len() int {
	return len(r.accounts)
}

// Remove deletes the account permanently.
func (r *Repository) Remove(userName string) error {
	if err := joinErrors(ValidateAccounts(r.accounts)); err != nil {
		return err
	}

	if _, ok := r.byUserName[userName]; !ok {
		return fmt.Errorf("%w: %q", ErrNotFound, userName)
	}

	for i, a := range r.accounts {
		if a.UserName == userName {
			r.accounts = append(r.accounts[:i], r.accounts[i+1:]...)
			break
		}
	}
	delete(r.byUserName, userName)
	return nil
}

func joinErrors(verrs []ValidationError) error {
	if len(verrs) == 0 {
		return nil
	}
	msgs := make([]string, len(verrs))
	for i, ve := range verrs {
		msgs[i] = ve.Error()
	}
	return fmt.Errorf("validation failed: %s", strings.Join(msgs, "; "))
}
