package commands

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bankist-dev/bankist/internal/activity"
)

func newActivityCommand(opts *rootOptions) *cobra.Command {
	var user string

	cmd := &cobra.Command{
		Use:   "activity",
		Short: "Show the session activity log",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := loadEnvironment(opts.configPath)
			if err != nil {
				return err
			}
			if env.activityPath == "" {
				return errors.New("activity log is disabled (needs --config with activity.enabled)")
			}

			entries, err := activity.Read(env.activityPath)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, e := range entries {
				if user != "" && e.UserName != user {
					continue
				}
				fmt.Fprintf(out, "%s %-4s %-10s %-8s %s\n",
					e.Timestamp.Format(sessionTimeFormat), e.UserName, e.Action, e.Outcome, e.Details)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&user, "user", "", "only show entries for this userName")

	return cmd
}
