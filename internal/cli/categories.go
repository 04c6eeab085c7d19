package cli

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"
)

type categoriesCmd struct {
	add string
	rm  string
}

func (*categoriesCmd) Name() string     { return "categories" }
func (*categoriesCmd) Synopsis() string { return "list or edit the expense categories" }
func (*categoriesCmd) Usage() string {
	return `budget categories [-add <name>] [-rm <name>]

  Without flags, lists the expense categories in order. -add appends a
  new category (duplicates and empty names are ignored); -rm removes one,
  except the last remaining category, which always stays.
`
}

func (c *categoriesCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.add, "add", "", "Category name to add.")
	f.StringVar(&c.rm, "rm", "", "Category name to remove.")
}

func (c *categoriesCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	svc, _, cleanup, err := OpenService(ctx)
	if err != nil {
		return fail(err)
	}
	defer cleanup()

	if c.add != "" {
		if err := svc.AddCategory(ctx, c.add); err != nil {
			return storageFail(err)
		}
	}
	if c.rm != "" {
		fallback, err := svc.RemoveCategory(ctx, c.rm)
		if err != nil {
			return storageFail(err)
		}
		fmt.Printf("Избрана категория: %s\n", fallback)
	}

	for _, name := range svc.Categories() {
		fmt.Println(name)
	}
	return subcommands.ExitSuccess
}
