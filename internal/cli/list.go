package cli

import (
	"context"
	"flag"

	"github.com/google/subcommands"

	"github.com/emmy649/budget/internal/renderer"
)

type listCmd struct {
	month string
}

func (*listCmd) Name() string     { return "list" }
func (*listCmd) Synopsis() string { return "show the records of a month" }
func (*listCmd) Usage() string {
	return `budget list [-m YYYY-MM]

  Shows the selected month's transactions, income first, then
  chronologically. Defaults to the current month.
`
}

func (c *listCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.month, "m", "", "Month to show as YYYY-MM (defaults to the current month).")
}

func (c *listCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	m, err := parseMonthFlag(c.month)
	if err != nil {
		return fail(err)
	}

	svc, _, cleanup, err := OpenService(ctx)
	if err != nil {
		return fail(err)
	}
	defer cleanup()

	printMarkdown(renderer.TransactionsMarkdown(m, svc.MonthTransactions(m), svc.WastefulIDs()))
	return subcommands.ExitSuccess
}
