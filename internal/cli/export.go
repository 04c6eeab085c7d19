package cli

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/subcommands"

	"github.com/emmy649/budget/internal/core"
	"github.com/emmy649/budget/internal/export"
)

type exportCmd struct {
	month  string
	outDir string
}

func (*exportCmd) Name() string     { return "export" }
func (*exportCmd) Synopsis() string { return "export a month to an XLSX workbook" }
func (*exportCmd) Usage() string {
	return `budget export [-m YYYY-MM] [-o <dir>]

  Writes the selected month's records to Razhodi_YYYY-MM.xlsx: one row
  per transaction sorted by date, with the wasteful marker on flagged
  expenses. Defaults to the current month and the configured export
  directory.
`
}

func (c *exportCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.month, "m", "", "Month to export as YYYY-MM (defaults to the current month).")
	f.StringVar(&c.outDir, "o", "", "Output directory (defaults to BUDGET_EXPORT_DIR).")
}

func (c *exportCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	m, err := parseMonthFlag(c.month)
	if err != nil {
		return fail(err)
	}

	svc, cfg, cleanup, err := OpenService(ctx)
	if err != nil {
		return fail(err)
	}
	defer cleanup()

	dir := c.outDir
	if dir == "" {
		dir = cfg.ExportDir
	}

	rows := export.BuildRows(core.MonthWindow(svc.Transactions(), m), svc.WastefulIDs())

	path := filepath.Join(dir, export.FileName(m))
	out, err := os.Create(path)
	if err != nil {
		return fail(fmt.Errorf("create export file: %w", err))
	}
	defer out.Close()

	if err := export.WriteWorkbook(rows, out); err != nil {
		return fail(err)
	}

	fmt.Printf("Експортирано: %s (%d записа)\n", path, len(rows))
	return subcommands.ExitSuccess
}
