package commands

import (
	"fmt"
	"path/filepath"

	"github.com/bankist-dev/bankist/internal/config"
	"github.com/bankist-dev/bankist/internal/ledger"
)

// environment is everything a command needs from bankist.yaml.
type environment struct {
	cfg          *config.Config
	repo         *ledger.Repository
	activityPath string // empty when the activity log is off
}

// loadEnvironment reads the config at path, or falls back to the built-in
// seed accounts with no activity log when path is empty.
func loadEnvironment(path string) (*environment, error) {
	if path == "" {
		repo, err := ledger.NewRepository(ledger.DefaultAccounts())
		if err != nil {
			return nil, fmt.Errorf("building seed ledger: %w", err)
		}
		return &environment{cfg: config.Default(defaultBankName, nil), repo: repo}, nil
	}

	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}

	accts, err := cfg.BuildAccounts()
	if err != nil {
		return nil, fmt.Errorf("loading accounts from %s: %w", path, err)
	}

	repo, err := ledger.NewRepository(accts)
	if err != nil {
		return nil, fmt.Errorf("building ledger from %s: %w", path, err)
	}

	env := &environment{cfg: cfg, repo: repo}
	if cfg.Activity.Enabled && cfg.Activity.Path != "" {
		env.activityPath = cfg.Activity.Path
		if !filepath.IsAbs(env.activityPath) {
			env.activityPath = filepath.Join(filepath.Dir(path), env.activityPath)
		}
	}
	return env, nil
}
