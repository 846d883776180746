package book

import (
	"strings"

	"github.com/shopspring/decimal"
)

// JournalLine is one printable line of the general journal. Cells are plain
// strings so the rendered shape matches the classic journal layout: the
// debit line carries the date and description, the credit line leaves them
// blank, and exactly one of Debit/Credit is filled per line.
type JournalLine struct {
	Date        string `json:"date"`
	Description string `json:"description"`
	Account     string `json:"account"`
	Debit       string `json:"debit"`
	Credit      string `json:"credit"`
}

// JournalEntry is the journal projection of one transaction: its debit line
// and its credit line, kept together as an explicit pair keyed by the record
// identifier. The pair is the unit of search and display; lines are never
// filtered or reordered independently of each other.
type JournalEntry struct {
	ID     int         `json:"id"`
	Date   Date        `json:"-"`
	Debit  JournalLine `json:"debit"`
	Credit JournalLine `json:"credit"`
}

// Journal is the general journal view over a transaction stream.
type Journal struct {
	entries []JournalEntry
}

// BuildJournal expands each record into its journal entry pair, in record
// order.
func BuildJournal(records []Record) *Journal {
	entries := make([]JournalEntry, 0, len(records))
	for _, r := range records {
		amount := r.Amount.String()
		entries = append(entries, JournalEntry{
			ID:   r.ID,
			Date: r.Date,
			Debit: JournalLine{
				Date:        r.Date.String(),
				Description: r.Description,
				Account:     r.Debit,
				Debit:       amount,
			},
			Credit: JournalLine{
				Account: r.Credit,
				Credit:  amount,
			},
		})
	}
	return &Journal{entries: entries}
}

// Entries returns all journal entries in record order.
func (j *Journal) Entries() []JournalEntry {
	return j.entries
}

// Search returns the entries matching a case-insensitive substring search
// over the date, description, debit account and credit account. A match on
// either side of the pair includes the whole pair. An empty term returns
// every entry.
func (j *Journal) Search(term string) []JournalEntry {
	if term == "" {
		return j.entries
	}

	needle := strings.ToLower(term)
	var matched []JournalEntry
	for _, e := range j.entries {
		if strings.Contains(strings.ToLower(e.Debit.Date), needle) ||
			strings.Contains(strings.ToLower(e.Debit.Description), needle) ||
			strings.Contains(strings.ToLower(e.Debit.Account), needle) ||
			strings.Contains(strings.ToLower(e.Credit.Account), needle) {
			matched = append(matched, e)
		}
	}
	return matched
}

// Between returns the entries dated within [start, end], inclusive. Entries
// filter as whole pairs, preserving the pairing invariant.
func Between(entries []JournalEntry, start, end Date) []JournalEntry {
	var matched []JournalEntry
	for _, e := range entries {
		if e.Date.Before(start) || e.Date.After(end) {
			continue
		}
		matched = append(matched, e)
	}
	return matched
}

// Lines flattens entry pairs into printable lines, debit line first,
// preserving the two-lines-per-transaction shape.
func Lines(entries []JournalEntry) []JournalLine {
	lines := make([]JournalLine, 0, 2*len(entries))
	for _, e := range entries {
		lines = append(lines, e.Debit, e.Credit)
	}
	return lines
}

// JournalTotals sums the parseable debit and credit cells of the given
// entries independently. Empty or non-numeric cells contribute zero.
func JournalTotals(entries []JournalEntry) (debits, credits decimal.Decimal) {
	for _, e := range entries {
		for _, line := range [2]JournalLine{e.Debit, e.Credit} {
			if d, err := decimal.NewFromString(line.Debit); err == nil {
				debits = debits.Add(d)
			}
			if c, err := decimal.NewFromString(line.Credit); err == nil {
				credits = credits.Add(c)
			}
		}
	}
	return debits, credits
}
