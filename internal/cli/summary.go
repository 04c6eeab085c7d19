package cli

import (
	"context"
	"flag"

	"github.com/google/subcommands"

	"github.com/emmy649/budget/internal/renderer"
)

type summaryCmd struct {
	month string
}

func (*summaryCmd) Name() string     { return "summary" }
func (*summaryCmd) Synopsis() string { return "show the monthly analysis" }
func (*summaryCmd) Usage() string {
	return `budget summary [-m YYYY-MM]

  Shows the derived view for the selected month: income, expense and
  balance totals, the daily spend calendar, expenses by category and the
  wasteful-spending total. Defaults to the current month.
`
}

func (c *summaryCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.month, "m", "", "Month to analyse as YYYY-MM (defaults to the current month).")
}

func (c *summaryCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	m, err := parseMonthFlag(c.month)
	if err != nil {
		return fail(err)
	}

	svc, _, cleanup, err := OpenService(ctx)
	if err != nil {
		return fail(err)
	}
	defer cleanup()

	printMarkdown(renderer.SummaryMarkdown(svc.Summary(m)))
	return subcommands.ExitSuccess
}
