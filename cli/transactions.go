package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/alecthomas/kong"

	"github.com/kgalang/ledgerbook/output"
)

type TransactionsCmd struct{}

func (cmd *TransactionsCmd) Run(ctx *kong.Context, globals *Globals) error {
	return globals.run(ctx, "transactions", func(runCtx context.Context) error {
		result, err := globals.openStore().ReadAll(runCtx)
		if err != nil {
			return err
		}

		styles := output.NewStyles(ctx.Stdout)

		if len(result.Records) == 0 {
			printInfof(ctx.Stdout, "No transactions recorded in %s", styles.FilePath(globals.File))
		} else {
			t := newTable(
				[]string{"ID", "Date", "Description", "Debit", "Credit", "Amount"},
				alignRight, alignLeft, alignLeft, alignLeft, alignLeft, alignRight,
			)
			for _, r := range result.Records {
				t.addRow(
					strconv.Itoa(r.ID),
					r.Date.String(),
					r.Description,
					r.Debit,
					r.Credit,
					globals.formatAmount(r.Amount),
				)
			}
			t.writeTo(ctx.Stdout, styles)
		}

		if result.Skipped > 0 {
			printWarning(ctx.Stderr, fmt.Sprintf("skipped %d malformed row(s)", result.Skipped))
		}

		return nil
	})
}
