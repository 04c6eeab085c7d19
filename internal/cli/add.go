package cli

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"

	"github.com/emmy649/budget/internal/core"
	"github.com/emmy649/budget/internal/renderer"
)

type addCmd struct {
	txType   string
	amount   string
	category string
	date     string
	note     string
}

func (*addCmd) Name() string     { return "add" }
func (*addCmd) Synopsis() string { return "record a new income or expense transaction" }
func (*addCmd) Usage() string {
	return `budget add -a <amount> -c <category> [-t expense|income] [-d YYYY-MM-DD] [-n note]

  Records a transaction. Expense categories come from the registry
  (see "budget categories"); income categories are the fixed set.
  The date defaults to today.
`
}

func (c *addCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.txType, "t", "expense", "Transaction type: expense or income.")
	f.StringVar(&c.amount, "a", "", "Amount, e.g. 25.50 (comma separator also accepted).")
	f.StringVar(&c.category, "c", "", "Category name.")
	f.StringVar(&c.date, "d", "", "Transaction date as YYYY-MM-DD (defaults to today).")
	f.StringVar(&c.note, "n", "", "Optional note, up to 140 characters.")
}

func (c *addCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	svc, _, cleanup, err := OpenService(ctx)
	if err != nil {
		return fail(err)
	}
	defer cleanup()

	date := core.Today()
	if c.date != "" {
		date, err = core.ParseDate(c.date)
		if err != nil {
			return fail(err)
		}
	}

	t, err := svc.AddTransaction(ctx, core.TxType(c.txType), c.amount, c.category, date, c.note)
	if err != nil {
		return storageFail(err)
	}

	fmt.Printf("Записано: %s %s (%s) %s\n",
		t.Date, renderer.FormatMoney(t.Amount.Cents), t.Category, t.ID)
	return subcommands.ExitSuccess
}
