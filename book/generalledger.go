package book

import (
	"strings"

	"github.com/shopspring/decimal"
)

// LedgerEntry is one line of the general ledger: a transaction augmented
// with the running balance at that point. The balance is the cumulative sum
// of every amount up to and including this entry, across all accounts
// combined; it is not tracked per account.
type LedgerEntry struct {
	ID          int             `json:"id"`
	Date        Date            `json:"date"`
	Description string          `json:"description"`
	Debit       string          `json:"debit"`
	Credit      string          `json:"credit"`
	Amount      decimal.Decimal `json:"amount"`
	Balance     decimal.Decimal `json:"balance"`
}

// BuildGeneralLedger produces one ledger entry per record, in record order,
// with the running balance computed over the full sequence.
func BuildGeneralLedger(records []Record) []LedgerEntry {
	entries := make([]LedgerEntry, 0, len(records))
	var balance decimal.Decimal
	for _, r := range records {
		balance = balance.Add(r.Amount)
		entries = append(entries, LedgerEntry{
			ID:          r.ID,
			Date:        r.Date,
			Description: r.Description,
			Debit:       r.Debit,
			Credit:      r.Credit,
			Amount:      r.Amount,
			Balance:     balance,
		})
	}
	return entries
}

// SearchLedger filters entries by a case-insensitive substring match on the
// date, description, debit account or credit account. Running balances are
// not recomputed; filtering happens after balance computation on the full
// ordered sequence. An empty term returns every entry.
func SearchLedger(entries []LedgerEntry, term string) []LedgerEntry {
	if term == "" {
		return entries
	}

	needle := strings.ToLower(term)
	var matched []LedgerEntry
	for _, e := range entries {
		if strings.Contains(strings.ToLower(e.Date.String()), needle) ||
			strings.Contains(strings.ToLower(e.Description), needle) ||
			strings.Contains(strings.ToLower(e.Debit), needle) ||
			strings.Contains(strings.ToLower(e.Credit), needle) {
			matched = append(matched, e)
		}
	}
	return matched
}

// LedgerTotals returns the sum of amounts over the given entries and the
// running balance of the last entry in the subset, zero for an empty one.
func LedgerTotals(entries []LedgerEntry) (total, lastBalance decimal.Decimal) {
	for _, e := range entries {
		total = total.Add(e.Amount)
		lastBalance = e.Balance
	}
	return total, lastBalance
}
