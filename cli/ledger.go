package cli

import (
	"context"
	"fmt"

	"github.com/alecthomas/kong"

	"github.com/kgalang/ledgerbook/book"
	"github.com/kgalang/ledgerbook/output"
)

type LedgerCmd struct {
	Term string `arg:"" optional:"" help:"Substring to search for in dates, descriptions and accounts."`
}

func (cmd *LedgerCmd) Run(ctx *kong.Context, globals *Globals) error {
	return globals.run(ctx, "ledger", func(runCtx context.Context) error {
		result, err := globals.openStore().ReadAll(runCtx)
		if err != nil {
			return err
		}

		entries := book.SearchLedger(book.BuildGeneralLedger(result.Records), cmd.Term)

		styles := output.NewStyles(ctx.Stdout)

		if len(entries) == 0 {
			printInfof(ctx.Stdout, "No ledger entries match")
			return nil
		}

		t := newTable(
			[]string{"Date", "Description", "Debit", "Credit", "Amount", "Balance"},
			alignLeft, alignLeft, alignLeft, alignLeft, alignRight, alignRight,
		)
		for _, e := range entries {
			t.addRow(
				e.Date.String(),
				e.Description,
				e.Debit,
				e.Credit,
				globals.formatAmount(e.Amount),
				globals.formatAmount(e.Balance),
			)
		}
		t.writeTo(ctx.Stdout, styles)

		total, lastBalance := book.LedgerTotals(entries)
		_, _ = fmt.Fprintf(ctx.Stdout, "%s %s  %s %s\n",
			styles.Dim("Total:"),
			styles.Amount(globals.formatAmount(total)),
			styles.Dim("Balance:"),
			styles.Amount(globals.formatAmount(lastBalance)),
		)

		if result.Skipped > 0 {
			printWarning(ctx.Stderr, fmt.Sprintf("skipped %d malformed row(s)", result.Skipped))
		}

		return nil
	})
}
