package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/google/subcommands"

	"github.com/emmy649/budget/internal/core"
	"github.com/emmy649/budget/internal/store"
)

// Commands is the full subcommand registry, in help order.
var Commands = []subcommands.Command{
	&addCmd{},
	&rmCmd{},
	&listCmd{},
	&summaryCmd{},
	&categoriesCmd{},
	&wasteCmd{},
	&exportCmd{},
}

// parseMonthFlag resolves the -m value, defaulting to the current calendar
// month. The cursor deliberately resets every invocation.
func parseMonthFlag(value string) (core.Month, error) {
	if value == "" {
		return core.CurrentMonth(), nil
	}
	return core.ParseMonth(value)
}

// printMarkdown renders markdown for the terminal, falling back to the raw
// text when the renderer is unavailable (dumb terminals, pipes).
func printMarkdown(md string) {
	r, err := glamour.NewTermRenderer(glamour.WithAutoStyle(), glamour.WithWordWrap(110))
	if err != nil {
		fmt.Print(md)
		return
	}
	out, err := r.Render(md)
	if err != nil {
		fmt.Print(md)
		return
	}
	fmt.Print(out)
}

func fail(err error) subcommands.ExitStatus {
	fmt.Fprintln(os.Stderr, err)
	return subcommands.ExitFailure
}

// storageFail maps a full-storage persist failure onto the user-facing
// message; anything else falls through to the generic handler.
func storageFail(err error) subcommands.ExitStatus {
	if errors.Is(err, store.ErrStorageFull) {
		fmt.Fprintln(os.Stderr, "Паметта е запълнена. Експортирай или изтрий стари записи.")
		return subcommands.ExitFailure
	}
	return fail(err)
}
