package cli

import (
	"context"
	"fmt"

	"github.com/alecthomas/kong"

	"github.com/kgalang/ledgerbook/book"
	"github.com/kgalang/ledgerbook/store"
	"github.com/kgalang/ledgerbook/telemetry"
)

var (
	Version   = ""
	CommitSHA = ""
)

// Globals defines global flags available to all commands.
type Globals struct {
	File      string `help:"Ledger CSV file." env:"LEDGERBOOK_FILE" default:"transactions.csv"`
	Chart     string `help:"Chart of accounts YAML file (uses the built-in chart when omitted)." env:"LEDGERBOOK_CHART" optional:""`
	Currency  string `help:"Currency code used to format amounts." env:"LEDGERBOOK_CURRENCY" default:"PHP"`
	Telemetry bool   `help:"Show timing telemetry for operations."`
}

type Commands struct {
	Globals

	Add          AddCmd          `cmd:"" help:"Record a double-entry transaction."`
	Remove       RemoveCmd       `cmd:"" help:"Delete a transaction by its id."`
	Transactions TransactionsCmd `cmd:"" help:"List all recorded transactions."`
	Accounts     AccountsCmd     `cmd:"" help:"Show the chart of accounts with balances."`
	Journal      JournalCmd      `cmd:"" help:"Show the general journal."`
	Ledger       LedgerCmd       `cmd:"" help:"Show the general ledger with running balance."`
	BalanceSheet BalanceSheetCmd `cmd:"" name:"balance-sheet" help:"Show the balance sheet."`
	Web          WebCmd          `cmd:"" help:"Start the local web server."`
}

// openStore returns the store for the configured ledger file.
func (g *Globals) openStore() *store.Store {
	return store.New(g.File)
}

// loadChart returns the configured chart of accounts: the YAML file named by
// --chart when set, otherwise the built-in chart.
func (g *Globals) loadChart() (*book.Chart, error) {
	if g.Chart == "" {
		return book.DefaultChart(), nil
	}
	return book.LoadChart(g.Chart)
}

// run wraps a command body with telemetry collection. When --telemetry is
// set, a collector is attached to the context and its report is printed to
// stderr after the command finishes.
func (g *Globals) run(ctx *kong.Context, name string, fn func(runCtx context.Context) error) error {
	runCtx := context.Background()

	if g.Telemetry {
		collector := telemetry.NewTimingCollector()
		runCtx = telemetry.WithCollector(runCtx, collector)

		timer := collector.Start(name)
		runCtx = telemetry.WithRootTimer(runCtx, timer)

		defer func() {
			timer.End()
			_, _ = fmt.Fprintln(ctx.Stderr)
			collector.Report(ctx.Stderr)
		}()
	}

	return fn(runCtx)
}
