package cli

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"
)

type rmCmd struct{}

func (*rmCmd) Name() string     { return "rm" }
func (*rmCmd) Synopsis() string { return "delete a transaction by id" }
func (*rmCmd) Usage() string {
	return `budget rm <id>

  Deletes the transaction with the given id. Removing an unknown id is a
  no-op. Ids are shown in the last column of "budget list".
`
}

func (*rmCmd) SetFlags(*flag.FlagSet) {}

func (c *rmCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Print(c.Usage())
		return subcommands.ExitUsageError
	}

	svc, _, cleanup, err := OpenService(ctx)
	if err != nil {
		return fail(err)
	}
	defer cleanup()

	if err := svc.RemoveTransaction(ctx, f.Arg(0)); err != nil {
		return storageFail(err)
	}
	return subcommands.ExitSuccess
}
