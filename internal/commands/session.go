package commands

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/bankist-dev/bankist/internal/activity"
	"github.com/bankist-dev/bankist/internal/auth"
	"github.com/bankist-dev/bankist/internal/bank"
	"github.com/bankist-dev/bankist/internal/ledger"
	"github.com/bankist-dev/bankist/internal/statement"
	"github.com/bankist-dev/bankist/internal/summary"
)

// Messages shown to the user. Failures never say which check failed.
const (
	msgLoginFailed    = "Wrong user name or pin."
	msgTransferFailed = "Transfer not possible. Check recipient, amount and balance."
	msgLoanFailed     = "Loan not granted."
	msgCloseFailed    = "Account can not be closed. Check user name and pin."
	msgNotLoggedIn    = "Not logged in. Use: login <user> <pin>"
	msgUnknown        = "Unknown command. Type help for the list of commands."
)

const sessionTimeFormat = "2006-01-02 15:04"

const helpText = `Commands:
  login <user> <pin>       start a session
  transfer <to> <amount>   send money to another account
  loan <amount>            request a loan
  close <user> <pin>       close the logged-in account
  summary                  balance, in, out and interest
  movements                list movements, newest first
  sort                     toggle sorted movements view
  statement                export movements as CSV
  logout                   end the session
  help                     show this help
  quit                     leave the shell
`

func newSessionCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "session",
		Short: "Start an interactive banking session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := loadEnvironment(opts.configPath)
			if err != nil {
				return err
			}

			sh := newShell(cmd.InOrStdin(), cmd.OutOrStdout(), env.repo,
				newLogger(cmd.ErrOrStderr(), opts.verbose))
			sh.bankName = env.cfg.Bank.Name
			sh.activityPath = env.activityPath
			return sh.Run()
		},
	}
}

// shell is a line-oriented front end over bank.Service. It holds the only
// Session; the core packages never see it.
type shell struct {
	in     io.Reader
	out    io.Writer
	logger *slog.Logger
	repo   *ledger.Repository
	bank   *bank.Service
	now    func() time.Time

	bankName     string
	activityPath string

	session *auth.Session
	sorted  bool
	pending []activity.Entry
}

func newShell(in io.Reader, out io.Writer, repo *ledger.Repository, logger *slog.Logger) *shell {
	return &shell{
		in:       in,
		out:      out,
		logger:   logger,
		repo:     repo,
		bank:     bank.NewService(repo),
		now:      time.Now,
		bankName: defaultBankName,
	}
}

// Run reads commands until quit or end of input. The activity log is
// written once on exit, including when reading fails.
func (sh *shell) Run() error {
	defer sh.flushActivity()

	fmt.Fprintf(sh.out, "%s. Type help for commands.\n", sh.bankName)

	scanner := bufio.NewScanner(sh.in)
	sh.prompt()
	for scanner.Scan() {
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			sh.prompt()
			continue
		}
		if fields[0] == "quit" || fields[0] == "exit" {
			break
		}
		sh.dispatch(fields[0], fields[1:])
		sh.prompt()
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("reading input: %w", err)
	}
	return nil
}

func (sh *shell) prompt() {
	if sh.session.Active() {
		fmt.Fprintf(sh.out, "%s> ", sh.session.UserName())
		return
	}
	fmt.Fprint(sh.out, "> ")
}

func (sh *shell) dispatch(name string, args []string) {
	switch name {
	case "help":
		fmt.Fprint(sh.out, helpText)
	case "login":
		sh.login(args)
	case "logout":
		sh.logout()
	case "transfer", "loan", "close", "summary", "movements", "sort", "statement":
		if !sh.session.Active() {
			fmt.Fprintln(sh.out, msgNotLoggedIn)
			return
		}
		sh.dispatchSession(name, args)
	default:
		fmt.Fprintln(sh.out, msgUnknown)
	}
}

func (sh *shell) dispatchSession(name string, args []string) {
	switch name {
	case "transfer":
		sh.transfer(args)
	case "loan":
		sh.loan(args)
	case "close":
		sh.closeAccount(args)
	case "summary":
		sh.printSummary()
	case "movements":
		sh.printMovements()
	case "sort":
		sh.sorted = !sh.sorted
		sh.printMovements()
	case "statement":
		sh.exportStatement()
	}
}

func (sh *shell) login(args []string) {
	if len(args) != 2 {
		fmt.Fprintln(sh.out, "Usage: login <user> <pin>")
		return
	}

	acct, err := auth.Login(sh.repo, args[0], args[1])
	if err != nil {
		sh.logger.Info("login rejected", "user", args[0])
		sh.record(args[0], "login", activity.OutcomeRejected, err.Error())
		fmt.Fprintln(sh.out, msgLoginFailed)
		return
	}

	// A new login replaces any existing session.
	sh.session = auth.NewSession(acct, sh.now())
	sh.sorted = false
	sh.logger.Info("login", "user", acct.UserName, "session", sh.session.ID)
	sh.record(acct.UserName, "login", activity.OutcomeOK, "")

	fmt.Fprintf(sh.out, "Welcome back, %s (session started %s)\n",
		acct.FirstName(), sh.session.StartedAt.Format(sessionTimeFormat))
	sh.refresh()
}

func (sh *shell) logout() {
	if !sh.session.Active() {
		fmt.Fprintln(sh.out, msgNotLoggedIn)
		return
	}
	user := sh.session.UserName()
	sh.record(user, "logout", activity.OutcomeOK, "")
	sh.logger.Info("logout", "user", user)
	sh.session.End()
	sh.session = nil
	fmt.Fprintln(sh.out, "Logged out.")
}

func (sh *shell) transfer(args []string) {
	if len(args) != 2 {
		fmt.Fprintln(sh.out, "Usage: transfer <to> <amount>")
		return
	}
	user := sh.session.UserName()
	details := fmt.Sprintf("to=%s amount=%s", args[0], args[1])

	amount, err := decimal.NewFromString(args[1])
	if err == nil {
		err = sh.bank.Transfer(sh.session.Account, args[0], amount)
	}
	if err != nil {
		sh.logger.Info("transfer rejected", "user", user, "to", args[0], "amount", args[1], "err", err)
		sh.record(user, "transfer", activity.OutcomeRejected, details+": "+err.Error())
		fmt.Fprintln(sh.out, msgTransferFailed)
		return
	}

	sh.logger.Info("transfer", "user", user, "to", args[0], "amount", amount)
	sh.record(user, "transfer", activity.OutcomeOK, details)
	sh.refresh()
}

func (sh *shell) loan(args []string) {
	if len(args) != 1 {
		fmt.Fprintln(sh.out, "Usage: loan <amount>")
		return
	}
	user := sh.session.UserName()
	details := "amount=" + args[0]

	amount, err := decimal.NewFromString(args[0])
	if err == nil {
		err = sh.bank.RequestLoan(sh.session.Account, amount)
	}
	if err != nil {
		sh.logger.Info("loan rejected", "user", user, "amount", args[0], "err", err)
		sh.record(user, "loan", activity.OutcomeRejected, details+": "+err.Error())
		fmt.Fprintln(sh.out, msgLoanFailed)
		return
	}

	sh.logger.Info("loan", "user", user, "amount", amount)
	sh.record(user, "loan", activity.OutcomeOK, details)
	sh.refresh()
}

func (sh *shell) closeAccount(args []string) {
	if len(args) != 2 {
		fmt.Fprintln(sh.out, "Usage: close <user> <pin>")
		return
	}
	user := sh.session.UserName()

	pin, err := auth.ParsePIN(args[1])
	if err == nil {
		err = sh.bank.CloseAccount(sh.session.Account, args[0], pin)
	}
	if err != nil {
		sh.logger.Info("close rejected", "user", user, "err", err)
		sh.record(user, "close", activity.OutcomeRejected, err.Error())
		fmt.Fprintln(sh.out, msgCloseFailed)
		return
	}

	sh.logger.Info("account closed", "user", user)
	sh.record(user, "close", activity.OutcomeOK, "")
	sh.session.End()
	sh.session = nil
	fmt.Fprintln(sh.out, "Account closed. Goodbye.")
}

// refresh redraws movements and summary after any change.
func (sh *shell) refresh() {
	sh.printMovements()
	sh.printSummary()
}

func (sh *shell) printSummary() {
	acct := sh.session.Account
	s := summary.Summarize(acct).Rounded()
	cur := acct.Currency
	fmt.Fprintf(sh.out, "Balance: %s %s\n", s.Balance.StringFixed(2), cur)
	fmt.Fprintf(sh.out, "In: %s %s  Out: %s %s  Interest: %s %s\n",
		s.Income.StringFixed(2), cur, s.Expense.StringFixed(2), cur, s.Interest.StringFixed(2), cur)
}

func (sh *shell) printMovements() {
	acct := sh.session.Account
	if err := statement.Render(sh.out, statement.Rows(acct, sh.sorted), acct.Currency); err != nil {
		sh.logger.Warn("rendering movements", "err", err)
	}
}

func (sh *shell) exportStatement() {
	if err := statement.Write(sh.out, statement.Rows(sh.session.Account, false)); err != nil {
		sh.logger.Warn("writing statement", "err", err)
	}
}

func (sh *shell) record(user, action, outcome, details string) {
	e := activity.Entry{
		Timestamp: sh.now().UTC(),
		UserName:  user,
		Action:    action,
		Outcome:   outcome,
		Details:   details,
	}
	// Only the session's own user is stamped with its ID.
	if sh.session.Active() && sh.session.UserName() == user {
		e.SessionID = sh.session.ID.String()
	}
	sh.pending = append(sh.pending, e)
}

func (sh *shell) flushActivity() {
	if sh.activityPath == "" || len(sh.pending) == 0 {
		return
	}
	if err := activity.Append(sh.activityPath, sh.pending); err != nil {
		// Non-fatal: the session itself already completed.
		sh.logger.Warn("writing activity log", "path", sh.activityPath, "err", err)
		return
	}
	sh.pending = nil
}
