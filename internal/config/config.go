package config

import (
	"fmt"
	"os"
	"time"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"github.com/bankist-dev/bankist/internal/model"
)

// FileName is the default config file name.
const FileName = "bankist.yaml"

// Config represents the top-level bankist.yaml configuration.
type Config struct {
	Bank     BankConfig      `yaml:"bank"`
	Accounts []AccountConfig `yaml:"accounts"`
	Activity ActivityConfig  `yaml:"activity"`
}

// BankConfig names the simulation.
type BankConfig struct {
	Name string `yaml:"name"`
}

// AccountConfig is one seed account.
type AccountConfig struct {
	Owner        string           `yaml:"owner"`
	PIN          int              `yaml:"pin"`
	InterestRate string           `yaml:"interest_rate"` // percent, e.g. "1.2"
	Currency     string           `yaml:"currency"`
	Locale       string           `yaml:"locale"`
	Movements    []MovementConfig `yaml:"movements"`
}

// MovementConfig is one seeded movement. Amount is kept as a string so
// decimal values survive the YAML round trip exactly.
type MovementConfig struct {
	Amount string    `yaml:"amount"`
	Date   time.Time `yaml:"date"`
}

// ActivityConfig controls the session activity log.
type ActivityConfig struct {
	Enabled bool   `yaml:"enabled"`
	Path    string `yaml:"path"` // relative to the config file's directory
}

// Load reads a bankist.yaml file from disk.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return &cfg, nil
}

// Save writes a Config to a YAML file.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// Default returns a Config seeded with the given accounts.
func Default(bankName string, seed []*model.Account) *Config {
	cfg := &Config{
		Bank: BankConfig{Name: bankName},
		Activity: ActivityConfig{
			Enabled: true,
			Path:    "logs/activity.csv",
		},
	}
	for _, a := range seed {
		ac := AccountConfig{
			Owner:        a.Owner,
			PIN:          a.PIN,
			InterestRate: a.InterestRate.String(),
			Currency:     a.Currency,
			Locale:       a.Locale,
		}
		for i, m := range a.Movements {
			ac.Movements = append(ac.Movements, MovementConfig{Amount: m.String(), Date: a.MovementDates[i]})
		}
		cfg.Accounts = append(cfg.Accounts, ac)
	}
	return cfg
}

// BuildAccounts converts the seed section into accounts. UserNames are left
// empty; the ledger derives them.
func (c *Config) BuildAccounts() ([]*model.Account, error) {
	accounts := make([]*model.Account, 0, len(c.Accounts))
	for i, ac := range c.Accounts {
		rate := decimal.Zero
		if ac.InterestRate != "" {
			var err error
			rate, err = decimal.NewFromString(ac.InterestRate)
			if err != nil {
				return nil, fmt.Errorf("account %d (%s): parsing interest_rate %q: %w", i, ac.Owner, ac.InterestRate, err)
			}
		}

		a := &model.Account{
			Owner:        ac.Owner,
			PIN:          ac.PIN,
			InterestRate: rate,
			Currency:     ac.Currency,
			Locale:       ac.Locale,
		}
		for j, mc := range ac.Movements {
			amt, err := decimal.NewFromString(mc.Amount)
			if err != nil {
				return nil, fmt.Errorf("account %d (%s) movement %d: parsing amount %q: %w", i, ac.Owner, j, mc.Amount, err)
			}
			a.Record(amt, mc.Date)
		}
		accounts = append(accounts, a)
	}
	return accounts, nil
}
