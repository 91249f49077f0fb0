package auth

import (
	"time"

	"github.com/google/uuid"

	"github.com/bankist-dev/bankist/internal/model"
)

// Session is the currently logged-in account as held by the caller.
// The core never stores it; operations take Session.Account as the
// acting account.
type Session struct {
	ID        uuid.UUID
	Account   *model.Account
	StartedAt time.Time
}

// NewSession starts a session for acct.
func NewSession(acct *model.Account, now time.Time) *Session {
	return &Session{ID: uuid.New(), Account: acct, StartedAt: now}
}

// Active reports whether the session still has an account.
func (s *Session) Active() bool {
	return s != nil && s.Account != nil
}

// End drops the account reference. Must be called after the account is
// closed, since the reference no longer resolves.
func (s *Session) End() {
	if s != nil {
		s.Account = nil
	}
}

// UserName returns the acting userName, or "" when inactive.
func (s *Session) UserName() string {
	if !s.Active() {
		return ""
	}
	return s.Account.UserName
}
