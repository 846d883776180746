// Package book implements the double-entry bookkeeping derivation engine.
// It folds a flat list of transactions into per-account raw nets, converts
// those nets into display balances that follow each account's normal balance
// side, and builds the general journal, general ledger and balance sheet
// views from the same stream.
//
// All computations are pure: they take the transaction list (as read from
// the store) and a chart of accounts, and return plain data structures.
// Nothing in this package performs I/O or caches state between calls; every
// view is rebuilt from scratch on demand.
//
// Example usage:
//
//	chart := book.DefaultChart()
//	tb := book.ComputeBalances(chart, txns)
//	for _, summary := range tb.Summary() {
//	    fmt.Println(summary.Type, summary.Total)
//	}
package book

import (
	"github.com/shopspring/decimal"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// AccountBalance is the derived balance of a single account.
type AccountBalance struct {
	// Account is the account name as it appears in the chart.
	Account string `json:"account"`

	// Type is the account's category in the chart.
	Type AccountType `json:"type"`

	// Net is the raw net: the sum of amounts where the account was debited
	// minus the sum where it was credited, across all transactions.
	Net decimal.Decimal `json:"net"`

	// Side is the side the balance is displayed on, derived from the
	// account's normal balance and the sign of Net.
	Side Side `json:"side"`

	// Display is the non-negative magnitude shown next to Side.
	Display decimal.Decimal `json:"display"`
}

// Abnormal reports whether the display side disagrees with the sign of the
// raw net, e.g. a credit-normal equity account that has gone net positive.
// The displayed balance is unchanged in that case; this only makes the
// condition observable to callers that want to flag it.
func (b AccountBalance) Abnormal() bool {
	switch b.Side {
	case Credit:
		return b.Net.IsPositive()
	case Debit:
		return b.Net.IsNegative()
	default:
		return false
	}
}

// TypeSummary groups the balances of one account type with its total.
type TypeSummary struct {
	Type     AccountType      `json:"type"`
	Accounts []AccountBalance `json:"accounts"`
	Total    decimal.Decimal  `json:"total"`
}

// TrialBalance holds the per-account raw nets derived from a transaction
// stream, together with the chart used to classify them.
type TrialBalance struct {
	chart *Chart
	nets  map[string]decimal.Decimal
}

// ComputeBalances folds the transaction stream into per-account raw nets.
// For each transaction the amount is added to the debited account's net and
// subtracted from the credited account's net, regardless of account type.
// Accounts outside the chart accumulate nets too; they are reported by Net
// but excluded from the grouped views.
func ComputeBalances(chart *Chart, txns []Transaction) *TrialBalance {
	nets := make(map[string]decimal.Decimal)
	for _, t := range txns {
		nets[t.Debit] = nets[t.Debit].Add(t.Amount)
		nets[t.Credit] = nets[t.Credit].Sub(t.Amount)
	}
	return &TrialBalance{chart: chart, nets: nets}
}

// Net returns the raw net for an account, zero for accounts with no activity.
func (tb *TrialBalance) Net(account string) decimal.Decimal {
	return tb.nets[account]
}

// ActiveAccounts returns all accounts touched by at least one transaction,
// sorted, whether or not they appear in the chart.
func (tb *TrialBalance) ActiveAccounts() []string {
	names := maps.Keys(tb.nets)
	slices.Sort(names)
	return names
}

// Balance returns the display balance for an account. The display side and
// magnitude convert the raw net into the sign convention matching the
// account's normal balance:
//
//   - credit-normal, net < 0: shown as Credit with magnitude |net|
//   - debit-normal, net > 0: shown as Debit with magnitude net
//   - credit-normal, net > 0: still shown as Credit, magnitude net
//   - everything else (zero nets, debit-normal negatives): Debit, |net|
func (tb *TrialBalance) Balance(account string) AccountBalance {
	net := tb.nets[account]
	normal := tb.chart.NormalBalanceOf(account)

	var side Side
	display := net
	switch {
	case normal == Credit && net.IsNegative():
		side = Credit
		display = net.Abs()
	case normal == Debit && net.IsPositive():
		side = Debit
	case normal == Credit && net.IsPositive():
		side = Credit
	default:
		side = Debit
		display = net.Abs()
	}

	return AccountBalance{
		Account: account,
		Type:    tb.chart.TypeOf(account),
		Net:     net,
		Side:    side,
		Display: display,
	}
}

// ByType groups the display balances of every chart account by account type.
// Accounts with zero activity are included; accounts not in the chart are
// not. Each group is sorted by account name ascending.
func (tb *TrialBalance) ByType() map[AccountType][]AccountBalance {
	grouped := make(map[AccountType][]AccountBalance, len(AccountTypes))
	for _, t := range AccountTypes {
		grouped[t] = []AccountBalance{}
	}
	for _, name := range tb.chart.Accounts() {
		t := tb.chart.TypeOf(name)
		grouped[t] = append(grouped[t], tb.Balance(name))
	}
	return grouped
}

// TotalFor sums the display balances of all chart accounts of the given
// type, counting debit-displayed balances as positive and credit-displayed
// balances as negative, and returns the magnitude of the result. The sign
// of the net is discarded.
func (tb *TrialBalance) TotalFor(t AccountType) decimal.Decimal {
	var total decimal.Decimal
	for _, name := range tb.chart.AccountsOfType(t) {
		b := tb.Balance(name)
		if b.Side == Debit {
			total = total.Add(b.Display)
		} else {
			total = total.Sub(b.Display)
		}
	}
	return total.Abs()
}

// Summary returns, per account type in presentation order, the grouped
// account balances and the type total.
func (tb *TrialBalance) Summary() []TypeSummary {
	grouped := tb.ByType()
	summaries := make([]TypeSummary, 0, len(AccountTypes))
	for _, t := range AccountTypes {
		summaries = append(summaries, TypeSummary{
			Type:     t,
			Accounts: grouped[t],
			Total:    tb.TotalFor(t),
		})
	}
	return summaries
}
