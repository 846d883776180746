package book

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// Transaction is a single double-entry bookkeeping record. Every transaction
// debits exactly one account and credits exactly one other account for the
// same positive amount. Transactions are immutable once stored.
type Transaction struct {
	Date        Date            `json:"date"`
	Description string          `json:"description"`
	Debit       string          `json:"debit"`
	Credit      string          `json:"credit"`
	Amount      decimal.Decimal `json:"amount"`
}

// Record is a transaction with its stable identifier: the 1-based position
// of the row in the persisted ledger, oldest first. Identifiers are assigned
// at read time and are the only way to address a record for deletion.
type Record struct {
	ID int `json:"id"`
	Transaction
}

// ValidationError describes a single invalid transaction field.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ParseAmount parses a decimal amount from its string form. It accepts any
// numeric value; positivity is enforced by Transaction.Validate so that
// hand-edited ledgers with negative rows still read back.
func ParseAmount(s string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Decimal{}, &ValidationError{Field: "amount", Message: fmt.Sprintf("%q is not a valid number", s)}
	}
	return d, nil
}

// Validate checks the transaction against the entry-time rules: all fields
// present, a valid date, a strictly positive amount, and distinct debit and
// credit accounts. All problems are reported, joined into one error.
func (t Transaction) Validate() error {
	var errs []error

	if t.Date.IsZero() {
		errs = append(errs, &ValidationError{Field: "date", Message: "date is required (YYYY-MM-DD)"})
	}
	if t.Description == "" {
		errs = append(errs, &ValidationError{Field: "description", Message: "description is required"})
	}
	if t.Debit == "" {
		errs = append(errs, &ValidationError{Field: "debit", Message: "debit account is required"})
	}
	if t.Credit == "" {
		errs = append(errs, &ValidationError{Field: "credit", Message: "credit account is required"})
	}
	if t.Debit != "" && t.Debit == t.Credit {
		errs = append(errs, &ValidationError{Field: "credit", Message: "debit and credit accounts must differ"})
	}
	if !t.Amount.IsPositive() {
		errs = append(errs, &ValidationError{Field: "amount", Message: "amount must be a positive number"})
	}

	return errors.Join(errs...)
}

// IsValidation reports whether err is (or wraps) a transaction validation
// error, returning the first one found.
func IsValidation(err error) (*ValidationError, bool) {
	var verr *ValidationError
	if errors.As(err, &verr) {
		return verr, true
	}
	return nil, false
}

// Transactions extracts the transactions from a list of records,
// preserving order.
func Transactions(records []Record) []Transaction {
	txns := make([]Transaction, len(records))
	for i, r := range records {
		txns[i] = r.Transaction
	}
	return txns
}
