package cli

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"
)

type wasteCmd struct {
	prune bool
}

func (*wasteCmd) Name() string     { return "waste" }
func (*wasteCmd) Synopsis() string { return "toggle the wasteful flag on a transaction" }
func (*wasteCmd) Usage() string {
	return `budget waste <id> | budget waste -prune

  Toggles the "wasteful spending" flag on the given transaction id.
  Toggling twice restores the original state. -prune drops flags whose
  transaction no longer exists.
`
}

func (c *wasteCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.prune, "prune", false, "Remove flags pointing at deleted transactions.")
}

func (c *wasteCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	svc, _, cleanup, err := OpenService(ctx)
	if err != nil {
		return fail(err)
	}
	defer cleanup()

	if c.prune {
		dropped, err := svc.PruneWasteful(ctx)
		if err != nil {
			return storageFail(err)
		}
		fmt.Printf("Премахнати флагове: %d\n", dropped)
		return subcommands.ExitSuccess
	}

	if f.NArg() != 1 {
		fmt.Print(c.Usage())
		return subcommands.ExitUsageError
	}
	id := f.Arg(0)
	if err := svc.ToggleWasteful(ctx, id); err != nil {
		return storageFail(err)
	}
	if svc.IsWasteful(id) {
		fmt.Println("Маркиран като излишен.")
	} else {
		fmt.Println("Флагът е премахнат.")
	}
	return subcommands.ExitSuccess
}
