package cli

import (
	"context"
	"fmt"

	"github.com/alecthomas/kong"

	"github.com/kgalang/ledgerbook/book"
	"github.com/kgalang/ledgerbook/output"
)

type JournalCmd struct {
	Term string `arg:"" optional:"" help:"Substring to search for in dates, descriptions and accounts."`
	From string `help:"Only entries on or after this date (YYYY-MM-DD)." optional:""`
	To   string `help:"Only entries on or before this date (YYYY-MM-DD)." optional:""`
}

func (cmd *JournalCmd) Run(ctx *kong.Context, globals *Globals) error {
	return globals.run(ctx, "journal", func(runCtx context.Context) error {
		result, err := globals.openStore().ReadAll(runCtx)
		if err != nil {
			return err
		}

		journal := book.BuildJournal(result.Records)
		entries := journal.Search(cmd.Term)

		if cmd.From != "" || cmd.To != "" {
			start, end, err := cmd.dateRange(entries)
			if err != nil {
				return err
			}
			entries = book.Between(entries, start, end)
		}

		styles := output.NewStyles(ctx.Stdout)

		if len(entries) == 0 {
			printInfof(ctx.Stdout, "No journal entries match")
			return nil
		}

		t := newTable(
			[]string{"Date", "Description", "Account", "Debit", "Credit"},
			alignLeft, alignLeft, alignLeft, alignRight, alignRight,
		)
		for _, line := range book.Lines(entries) {
			t.addRow(line.Date, line.Description, line.Account, line.Debit, line.Credit)
		}
		t.writeTo(ctx.Stdout, styles)

		debits, credits := book.JournalTotals(entries)
		_, _ = fmt.Fprintf(ctx.Stdout, "%s %s  %s %s\n",
			styles.Dim("Total debits:"),
			styles.Amount(globals.formatAmount(debits)),
			styles.Dim("Total credits:"),
			styles.Amount(globals.formatAmount(credits)),
		)

		if result.Skipped > 0 {
			printWarning(ctx.Stderr, fmt.Sprintf("skipped %d malformed row(s)", result.Skipped))
		}

		return nil
	})
}

// dateRange resolves the --from/--to flags, defaulting the open end to the
// first or last entry date.
func (cmd *JournalCmd) dateRange(entries []book.JournalEntry) (start, end book.Date, err error) {
	if cmd.From != "" {
		start, err = book.ParseDate(cmd.From)
		if err != nil {
			return start, end, err
		}
	} else if len(entries) > 0 {
		start = entries[0].Date
	}

	if cmd.To != "" {
		end, err = book.ParseDate(cmd.To)
		if err != nil {
			return start, end, err
		}
	} else if len(entries) > 0 {
		end = entries[len(entries)-1].Date
	}

	return start, end, nil
}
