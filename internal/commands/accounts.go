package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bankist-dev/bankist/internal/summary"
)

func newAccountsCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "accounts",
		Short: "List the seeded accounts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := loadEnvironment(opts.configPath)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%-6s %-28s %-8s %14s\n", "USER", "OWNER", "CURRENCY", "BALANCE")
			for _, a := range env.repo.All() {
				bal := summary.Balance(a.Movements)
				fmt.Fprintf(out, "%-6s %-28s %-8s %14s\n", a.UserName, a.Owner, a.Currency, bal.StringFixed(2))
			}
			return nil
		},
	}
}
