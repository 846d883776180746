package book_test

import (
	"testing"

	"github.com/shopspring/decimal"

	"github.com/kgalang/ledgerbook/book"
)

// tx builds a transaction for tests; the date must be valid.
func tx(t *testing.T, date, desc, debit, credit, amount string) book.Transaction {
	t.Helper()

	d, err := book.ParseDate(date)
	if err != nil {
		t.Fatalf("bad test date %q: %v", date, err)
	}
	a, err := decimal.NewFromString(amount)
	if err != nil {
		t.Fatalf("bad test amount %q: %v", amount, err)
	}

	return book.Transaction{
		Date:        d,
		Description: desc,
		Debit:       debit,
		Credit:      credit,
		Amount:      a,
	}
}

// records wraps transactions with sequential identifiers, the way the store
// hands them out.
func records(txns ...book.Transaction) []book.Record {
	rs := make([]book.Record, len(txns))
	for i, t := range txns {
		rs[i] = book.Record{ID: i + 1, Transaction: t}
	}
	return rs
}
