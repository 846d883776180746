package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/huh"

	"github.com/kgalang/ledgerbook/book"
)

type AddCmd struct {
	Date        string `help:"Transaction date (YYYY-MM-DD, today when omitted)." short:"d" optional:""`
	Description string `help:"Transaction description." short:"m" optional:""`
	Debit       string `help:"Account to debit." optional:""`
	Credit      string `help:"Account to credit." optional:""`
	Amount      string `help:"Transaction amount." short:"a" optional:""`
}

func (cmd *AddCmd) Run(ctx *kong.Context, globals *Globals) error {
	chart, err := globals.loadChart()
	if err != nil {
		return err
	}

	// With no flags on a terminal, collect the transaction interactively.
	if cmd.isEmpty() && isTerminal() {
		if err := cmd.promptForm(chart); err != nil {
			return err
		}
	}
	if cmd.Date == "" {
		cmd.Date = time.Now().Format("2006-01-02")
	}

	return globals.run(ctx, "add", func(runCtx context.Context) error {
		tx, err := cmd.transaction()
		if err != nil {
			if reportValidation(ctx.Stderr, err) {
				return NewCommandError(1)
			}
			return err
		}

		if !chart.Contains(tx.Debit) {
			printWarning(ctx.Stderr, fmt.Sprintf("debit account %q is not in the chart of accounts", tx.Debit))
		}
		if !chart.Contains(tx.Credit) {
			printWarning(ctx.Stderr, fmt.Sprintf("credit account %q is not in the chart of accounts", tx.Credit))
		}

		if err := globals.openStore().Append(runCtx, tx); err != nil {
			if reportValidation(ctx.Stderr, err) {
				return NewCommandError(1)
			}
			return err
		}

		printSuccess(ctx.Stdout, fmt.Sprintf("Recorded %s → %s for %s", tx.Debit, tx.Credit, globals.formatAmount(tx.Amount)))
		return nil
	})
}

func (cmd *AddCmd) isEmpty() bool {
	return cmd.Date == "" && cmd.Description == "" && cmd.Debit == "" && cmd.Credit == "" && cmd.Amount == ""
}

// transaction builds the transaction from the collected fields. Parse
// problems come back as validation errors so they render like the other
// entry-time failures.
func (cmd *AddCmd) transaction() (book.Transaction, error) {
	date, err := book.ParseDate(cmd.Date)
	if err != nil {
		return book.Transaction{}, &book.ValidationError{Field: "date", Message: err.Error()}
	}

	amount, err := book.ParseAmount(cmd.Amount)
	if err != nil {
		return book.Transaction{}, err
	}

	return book.Transaction{
		Date:        date,
		Description: cmd.Description,
		Debit:       cmd.Debit,
		Credit:      cmd.Credit,
		Amount:      amount,
	}, nil
}

// promptForm collects the transaction fields with an interactive form.
// Accounts are picked from the chart; date and amount validate as typed.
func (cmd *AddCmd) promptForm(chart *book.Chart) error {
	cmd.Date = time.Now().Format("2006-01-02")
	accounts := chart.Accounts()

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Date").
				Description("YYYY-MM-DD").
				Validate(func(s string) error {
					_, err := book.ParseDate(s)
					return err
				}).
				Value(&cmd.Date),
			huh.NewInput().
				Title("Description").
				Validate(func(s string) error {
					if s == "" {
						return fmt.Errorf("description is required")
					}
					return nil
				}).
				Value(&cmd.Description),
			huh.NewSelect[string]().
				Title("Debit account").
				Options(huh.NewOptions(accounts...)...).
				Value(&cmd.Debit),
			huh.NewSelect[string]().
				Title("Credit account").
				Options(huh.NewOptions(accounts...)...).
				Value(&cmd.Credit),
			huh.NewInput().
				Title("Amount").
				Validate(func(s string) error {
					amount, err := book.ParseAmount(s)
					if err != nil {
						return fmt.Errorf("not a valid number")
					}
					if !amount.IsPositive() {
						return fmt.Errorf("amount must be positive")
					}
					return nil
				}).
				Value(&cmd.Amount),
		),
	)

	if err := form.Run(); err != nil {
		return fmt.Errorf("failed to read transaction: %w", err)
	}
	return nil
}
