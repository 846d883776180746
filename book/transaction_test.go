package book_test

import (
	"testing"

	"github.com/alecthomas/assert/v2"
	"github.com/shopspring/decimal"

	"github.com/kgalang/ledgerbook/book"
)

func TestTransactionValidate(t *testing.T) {
	valid := tx(t, "2024-01-01", "desc", "Cash [ASSET]", "Owner's Capital [EQUITY]", "100")

	tests := []struct {
		name   string
		mutate func(*book.Transaction)
		field  string
	}{
		{"valid", func(tx *book.Transaction) {}, ""},
		{"zero date", func(tx *book.Transaction) { tx.Date = book.Date{} }, "date"},
		{"empty description", func(tx *book.Transaction) { tx.Description = "" }, "description"},
		{"empty debit", func(tx *book.Transaction) { tx.Debit = "" }, "debit"},
		{"empty credit", func(tx *book.Transaction) { tx.Credit = "" }, "credit"},
		{"debit equals credit", func(tx *book.Transaction) { tx.Credit = tx.Debit }, "credit"},
		{"negative amount", func(tx *book.Transaction) { tx.Amount = decimal.NewFromInt(-5) }, "amount"},
		{"zero amount", func(tx *book.Transaction) { tx.Amount = decimal.Zero }, "amount"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tx := valid
			tt.mutate(&tx)

			err := tx.Validate()
			if tt.field == "" {
				assert.NoError(t, err)
				return
			}

			verr, ok := book.IsValidation(err)
			assert.True(t, ok, "expected a validation error, got %v", err)
			assert.Equal(t, tt.field, verr.Field)
		})
	}
}

func TestTransactionValidate_ReportsAllProblems(t *testing.T) {
	err := book.Transaction{}.Validate()
	assert.Error(t, err)

	joined, ok := err.(interface{ Unwrap() []error })
	assert.True(t, ok)
	// date, description, debit, credit, amount
	assert.Equal(t, 5, len(joined.Unwrap()))
}

func TestParseAmount(t *testing.T) {
	amount, err := book.ParseAmount("123.45")
	assert.NoError(t, err)
	assert.True(t, amount.Equal(decimal.NewFromFloat(123.45)))

	// Negative values parse; positivity is Validate's concern.
	amount, err = book.ParseAmount("-5")
	assert.NoError(t, err)
	assert.True(t, amount.IsNegative())

	_, err = book.ParseAmount("abc")
	verr, ok := book.IsValidation(err)
	assert.True(t, ok)
	assert.Equal(t, "amount", verr.Field)
}

func TestTransactions(t *testing.T) {
	rs := records(
		tx(t, "2024-01-01", "a", "Cash [ASSET]", "Owner's Capital [EQUITY]", "1"),
		tx(t, "2024-01-02", "b", "Cash [ASSET]", "Sales Revenue [INCOME]", "2"),
	)

	txns := book.Transactions(rs)
	assert.Equal(t, 2, len(txns))
	assert.Equal(t, "a", txns[0].Description)
	assert.Equal(t, "b", txns[1].Description)
}
