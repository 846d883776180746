package cli

import (
	"context"
	"fmt"

	"github.com/alecthomas/kong"

	"github.com/kgalang/ledgerbook/book"
	"github.com/kgalang/ledgerbook/output"
	"github.com/kgalang/ledgerbook/telemetry"
)

type AccountsCmd struct {
	Type string `help:"Only show accounts of this type (Assets, Liabilities, Equities, Income, Expenses)." optional:""`
}

func (cmd *AccountsCmd) Run(ctx *kong.Context, globals *Globals) error {
	var only book.AccountType
	if cmd.Type != "" {
		only = book.ParseAccountType(cmd.Type)
		if only == book.AccountTypeUnknown {
			return fmt.Errorf("unknown account type %q", cmd.Type)
		}
	}

	chart, err := globals.loadChart()
	if err != nil {
		return err
	}

	return globals.run(ctx, "accounts", func(runCtx context.Context) error {
		result, err := globals.openStore().ReadAll(runCtx)
		if err != nil {
			return err
		}

		balanceTimer := telemetry.StartTimer(runCtx, "book.balances")
		tb := book.ComputeBalances(chart, book.Transactions(result.Records))
		summaries := tb.Summary()
		balanceTimer.End()

		styles := output.NewStyles(ctx.Stdout)

		for _, summary := range summaries {
			if only != book.AccountTypeUnknown && summary.Type != only {
				continue
			}

			_, _ = fmt.Fprintln(ctx.Stdout, styles.Header(summary.Type.String()))

			t := newTable(
				[]string{"Account", "Side", "Balance"},
				alignLeft, alignLeft, alignRight,
			)
			for _, b := range summary.Accounts {
				t.addRow(b.Account, b.Side.String(), globals.formatAmount(b.Display))
			}
			t.writeTo(ctx.Stdout, styles)

			_, _ = fmt.Fprintf(ctx.Stdout, "%s %s\n\n",
				styles.Dim("Total:"),
				styles.Amount(globals.formatAmount(summary.Total)),
			)
		}

		if result.Skipped > 0 {
			printWarning(ctx.Stderr, fmt.Sprintf("skipped %d malformed row(s)", result.Skipped))
		}

		return nil
	})
}
