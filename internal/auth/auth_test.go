package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bankist-dev/bankist/internal/ledger"
)

func newRepo(t *testing.T) *ledger.Repository {
	t.Helper()
	repo, err := ledger.NewRepository(ledger.DefaultAccounts())
	require.NoError(t, err)
	return repo
}

func TestLogin_Success(t *testing.T) {
	repo := newRepo(t)

	acct, err := Login(repo, "js", "1111")
	require.NoError(t, err)
	assert.Equal(t, "Jonas Schmedtmann", acct.Owner)

	acct, err = Login(repo, "jd", " 2222 ")
	require.NoError(t, err)
	assert.Equal(t, "Jessica Davis", acct.Owner)
}

func TestLogin_Failures(t *testing.T) {
	repo := newRepo(t)

	tests := []struct {
		name     string
		userName string
		pin      string
	}{
		{"unknown user", "zz", "1111"},
		{"unknown user any pin", "zz", "0"},
		{"wrong pin", "js", "2222"},
		{"empty pin", "js", ""},
		{"non-numeric pin", "js", "abcd"},
		{"decimal pin", "js", "1111.5"},
		{"huge exponent pin", "js", "1e9999999"},
		{"tiny exponent pin", "js", "1e-9999999"},
		{"user case differs", "JS", "1111"},
		{"empty user", "", "1111"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			acct, err := Login(repo, tt.userName, tt.pin)
			assert.Nil(t, acct)
			assert.Equal(t, ErrInvalidCredentials, err, "failure must not reveal its cause")
		})
	}
}

func TestLogin_ClosedAccount(t *testing.T) {
	repo := newRepo(t)
	require.NoError(t, repo.Remove("jd"))

	_, err := Login(repo, "jd", "2222")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestParsePIN(t *testing.T) {
	n, err := ParsePIN("1111")
	require.NoError(t, err)
	assert.Equal(t, 1111, n)

	n, err = ParsePIN("\t42\n")
	require.NoError(t, err)
	assert.Equal(t, 42, n)

	_, err = ParsePIN("")
	assert.Error(t, err)
	_, err = ParsePIN("12a")
	assert.Error(t, err)
}

func TestParsePIN_NumericValue(t *testing.T) {
	for _, raw := range []string{"1111.0", "1111.000", "01111", "1.111e3"} {
		n, err := ParsePIN(raw)
		require.NoError(t, err, raw)
		assert.Equal(t, 1111, n, raw)
	}

	for _, raw := range []string{"1111.5", "1e9999999", "1e-9999999", "99999999999"} {
		_, err := ParsePIN(raw)
		assert.Error(t, err, raw)
	}
}

func TestLogin_NumericPin(t *testing.T) {
	acct, err := Login(newRepo(t), "js", "1111.0")
	require.NoError(t, err)
	assert.Equal(t, "js", acct.UserName)
}

func TestSession(t *testing.T) {
	repo := newRepo(t)
	acct, err := Login(repo, "js", "1111")
	require.NoError(t, err)

	now := time.Date(2020, 7, 12, 10, 0, 0, 0, time.UTC)
	s := NewSession(acct, now)
	assert.True(t, s.Active())
	assert.Equal(t, "js", s.UserName())
	assert.Equal(t, now, s.StartedAt)
	assert.NotEqual(t, s.ID, NewSession(acct, now).ID)

	s.End()
	assert.False(t, s.Active())
	assert.Equal(t, "", s.UserName())

	var none *Session
	assert.False(t, none.Active())
	none.End()
}
