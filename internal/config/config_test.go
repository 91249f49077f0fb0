package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bankist-dev/bankist/internal/ledger"
)

func TestRoundTrip(t *testing.T) {
	cfg := Default("Bankist", ledger.DefaultAccounts())

	path := filepath.Join(t.TempDir(), FileName)
	err := Save(path, cfg)
	require.NoError(t, err)

	got, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, cfg.Bank.Name, got.Bank.Name)
	assert.Equal(t, cfg.Activity, got.Activity)
	require.Len(t, got.Accounts, 2)
	assert.Equal(t, "Jonas Schmedtmann", got.Accounts[0].Owner)
	assert.Equal(t, 1111, got.Accounts[0].PIN)
	assert.Equal(t, "1.2", got.Accounts[0].InterestRate)
	require.Len(t, got.Accounts[0].Movements, 8)
	assert.Equal(t, "455.23", got.Accounts[0].Movements[1].Amount)
	assert.True(t, cfg.Accounts[0].Movements[1].Date.Equal(got.Accounts[0].Movements[1].Date))
}

func TestDefaults(t *testing.T) {
	cfg := Default("Bankist", nil)

	assert.Equal(t, "Bankist", cfg.Bank.Name)
	assert.True(t, cfg.Activity.Enabled)
	assert.Equal(t, "logs/activity.csv", cfg.Activity.Path)
	assert.Empty(t, cfg.Accounts)
}

func TestLoadNotFound(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nonexistent.yaml"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestYAMLFormat(t *testing.T) {
	cfg := Default("Bankist", ledger.DefaultAccounts())
	path := filepath.Join(t.TempDir(), FileName)
	require.NoError(t, Save(path, cfg))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	contents := string(data)

	assert.Contains(t, contents, "name: Bankist")
	assert.Contains(t, contents, "owner: Jonas Schmedtmann")
	assert.Contains(t, contents, "interest_rate: \"1.2\"")
	assert.Contains(t, contents, "locale: pt-PT")
	assert.Contains(t, contents, "path: logs/activity.csv")
}

func TestBuildAccounts_Testdata(t *testing.T) {
	cfg, err := Load("../../testdata/bankist.yaml")
	require.NoError(t, err)

	accts, err := cfg.BuildAccounts()
	require.NoError(t, err)
	require.Len(t, accts, 3)

	repo, err := ledger.NewRepository(accts)
	require.NoError(t, err)

	stw, ok := repo.FindByUserName("stw")
	require.True(t, ok)
	assert.Equal(t, 3333, stw.PIN)
	assert.Equal(t, "0.7", stw.InterestRate.String())
	assert.Len(t, stw.MovementDates, len(stw.Movements))
	assert.Equal(t, "-200", stw.Movements[1].String())
}

func TestBuildAccounts_MatchesSeed(t *testing.T) {
	seed := ledger.DefaultAccounts()
	accts, err := Default("Bankist", seed).BuildAccounts()
	require.NoError(t, err)
	require.Len(t, accts, len(seed))

	for i := range seed {
		assert.Equal(t, seed[i].Owner, accts[i].Owner)
		assert.True(t, seed[i].InterestRate.Equal(accts[i].InterestRate))
		require.Len(t, accts[i].Movements, len(seed[i].Movements))
		for j := range seed[i].Movements {
			assert.True(t, seed[i].Movements[j].Equal(accts[i].Movements[j]))
			assert.True(t, seed[i].MovementDates[j].Equal(accts[i].MovementDates[j]))
		}
	}
}

func TestBuildAccounts_BadAmount(t *testing.T) {
	cfg := &Config{Accounts: []AccountConfig{{
		Owner:     "Jonas Schmedtmann",
		Movements: []MovementConfig{{Amount: "lots"}},
	}}}
	_, err := cfg.BuildAccounts()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing amount")
}

func TestBuildAccounts_BadRate(t *testing.T) {
	cfg := &Config{Accounts: []AccountConfig{{Owner: "Jonas Schmedtmann", InterestRate: "1,2"}}}
	_, err := cfg.BuildAccounts()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "interest_rate")
}
