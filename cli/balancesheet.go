package cli

import (
	"context"
	"fmt"

	"github.com/alecthomas/kong"

	"github.com/kgalang/ledgerbook/book"
	"github.com/kgalang/ledgerbook/output"
	"github.com/kgalang/ledgerbook/telemetry"
)

type BalanceSheetCmd struct{}

func (cmd *BalanceSheetCmd) Run(ctx *kong.Context, globals *Globals) error {
	chart, err := globals.loadChart()
	if err != nil {
		return err
	}

	return globals.run(ctx, "balance-sheet", func(runCtx context.Context) error {
		result, err := globals.openStore().ReadAll(runCtx)
		if err != nil {
			return err
		}

		balanceTimer := telemetry.StartTimer(runCtx, "book.balances")
		tb := book.ComputeBalances(chart, book.Transactions(result.Records))
		sheet := book.BuildBalanceSheet(tb.Summary())
		balanceTimer.End()

		styles := output.NewStyles(ctx.Stdout)

		_, _ = fmt.Fprintln(ctx.Stdout, styles.Header("Assets"))
		assets := newTable([]string{"Account", "Amount"}, alignLeft, alignRight)
		for _, b := range sheet.Assets.Accounts {
			assets.addRow(b.Account, globals.formatAmount(b.Display))
		}
		assets.writeTo(ctx.Stdout, styles)
		_, _ = fmt.Fprintf(ctx.Stdout, "%s %s\n\n",
			styles.Dim("Total Assets:"),
			styles.Amount(globals.formatAmount(sheet.TotalAssets)),
		)

		_, _ = fmt.Fprintln(ctx.Stdout, styles.Header("Liabilities & Equity"))
		other := newTable([]string{"Account", "Amount"}, alignLeft, alignRight)
		for _, b := range sheet.Liabilities.Accounts {
			other.addRow(b.Account, globals.formatAmount(b.Display))
		}
		for _, b := range sheet.Equities.Accounts {
			other.addRow(b.Account, globals.formatAmount(b.Display))
		}
		other.writeTo(ctx.Stdout, styles)
		_, _ = fmt.Fprintf(ctx.Stdout, "%s %s\n",
			styles.Dim("Total Liabilities & Equity:"),
			styles.Amount(globals.formatAmount(sheet.TotalLiabilitiesAndEquity)),
		)

		if !sheet.Balanced {
			_, _ = fmt.Fprintln(ctx.Stdout)
			printWarning(ctx.Stdout, fmt.Sprintf(
				"balance sheet does not balance: assets %s vs liabilities & equity %s",
				globals.formatAmount(sheet.TotalAssets),
				globals.formatAmount(sheet.TotalLiabilitiesAndEquity),
			))
		}

		if result.Skipped > 0 {
			printWarning(ctx.Stderr, fmt.Sprintf("skipped %d malformed row(s)", result.Skipped))
		}

		return nil
	})
}
