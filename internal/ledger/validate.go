package ledger

import (
	"fmt"

	"github.com/bankist-dev/bankist/internal/model"
)

// ValidationError describes a single invariant violation.
type ValidationError struct {
	Invariant   int
	UserName    string
	Description string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("invariant %d [%s]: %s", e.Invariant, e.UserName, e.Description)
}

// ValidateAccounts enforces 3 invariants on an account set.
func ValidateAccounts(accounts []*model.Account) []ValidationError {
	var errs []ValidationError

	seen := make(map[string]string, len(accounts))
	for _, a := range accounts {
		// Invariant 1: userName unique within the set.
		if prev, dup := seen[a.UserName]; dup && a.UserName != "" {
			errs = append(errs, ValidationError{
				Invariant:   1,
				UserName:    a.UserName,
				Description: fmt.Sprintf("owners %q and %q share a userName", prev, a.Owner),
			})
		}
		seen[a.UserName] = a.Owner

		// Invariant 2: one date per movement.
		if len(a.Movements) != len(a.MovementDates) {
			errs = append(errs, ValidationError{
				Invariant:   2,
				UserName:    a.UserName,
				Description: fmt.Sprintf("%d movements but %d dates", len(a.Movements), len(a.MovementDates)),
			})
		}

		// Invariant 3: userName present.
		if a.UserName == "" {
			errs = append(errs, ValidationError{
				Invariant:   3,
				UserName:    a.UserName,
				Description: fmt.Sprintf("owner %q has no userName", a.Owner),
			})
		}
	}

	return errs
}
