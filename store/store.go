// Package store persists the transaction ledger as a flat CSV file.
//
// The on-disk format is a single table with the header
// Date,Description,Debit,Credit,Amount; one row per transaction, oldest
// first. The store validates fully before any write, tolerates malformed
// rows on read by skipping and counting them, and treats a missing file as
// an empty ledger. There is no concurrent-writer protection; single-process,
// single-user usage is assumed.
package store

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/kgalang/ledgerbook/book"
	"github.com/kgalang/ledgerbook/telemetry"
)

// Header is the column layout of the persisted ledger.
var Header = []string{"Date", "Description", "Debit", "Credit", "Amount"}

// ErrNotFound is returned by Delete when no record has the given identifier.
var ErrNotFound = errors.New("record not found")

// ReadResult is the outcome of reading the full ledger. Skipped counts the
// malformed rows that were tolerated rather than failing the read, so
// callers can surface the data loss instead of learning about it from logs.
type ReadResult struct {
	Records []book.Record `json:"records"`
	Skipped int           `json:"skipped"`
}

// Store reads and writes the ledger file.
type Store struct {
	path string
	logf func(format string, args ...any)
}

// Option configures a Store.
type Option func(*Store)

// WithLogf attaches a diagnostic logger called once per skipped row.
func WithLogf(logf func(format string, args ...any)) Option {
	return func(s *Store) {
		s.logf = logf
	}
}

// New creates a store backed by the CSV file at path. The file is created
// lazily on the first append.
func New(path string, opts ...Option) *Store {
	s := &Store{
		path: path,
		logf: func(format string, args ...any) {},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Path returns the ledger file path.
func (s *Store) Path() string {
	return s.path
}

// Append validates the transaction and appends it to the ledger, creating
// the file with a header row when it does not exist yet. Validation runs
// fully before anything is written; a rejected transaction leaves the file
// untouched. Appending is never idempotent: the same transaction appended
// twice produces two rows.
func (s *Store) Append(ctx context.Context, tx book.Transaction) error {
	timer := telemetry.StartTimer(ctx, "store.append")
	defer timer.End()

	if err := tx.Validate(); err != nil {
		return err
	}

	f, err := os.OpenFile(s.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("failed to open ledger file: %w", err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return fmt.Errorf("failed to stat ledger file: %w", err)
	}

	w := csv.NewWriter(f)
	if info.Size() == 0 {
		if err := w.Write(Header); err != nil {
			return fmt.Errorf("failed to write ledger header: %w", err)
		}
	}

	row := []string{
		tx.Date.String(),
		tx.Description,
		tx.Debit,
		tx.Credit,
		tx.Amount.String(),
	}
	if err := w.Write(row); err != nil {
		return fmt.Errorf("failed to write transaction: %w", err)
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("failed to flush transaction: %w", err)
	}

	return f.Close()
}

// ReadAll returns every persisted record in file order, oldest first. Each
// record's ID is its 1-based row position below the header; a malformed row
// still consumes a position so that identifiers stay stable across reads.
// Rows with the wrong column count or an unparseable date or amount are
// skipped and counted, never fatal. Negative amounts read back fine;
// positivity is an append-time rule only. A missing file yields an empty
// result.
func (s *Store) ReadAll(ctx context.Context) (ReadResult, error) {
	timer := telemetry.StartTimer(ctx, "store.read")
	defer timer.End()

	f, err := os.Open(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return ReadResult{}, nil
	}
	if err != nil {
		return ReadResult{}, fmt.Errorf("failed to open ledger file: %w", err)
	}
	defer f.Close()

	rows, err := readRows(f)
	if err != nil {
		return ReadResult{}, err
	}

	var result ReadResult
	for i, row := range rows {
		if err := ctx.Err(); err != nil {
			return ReadResult{}, err
		}

		id := i + 1
		tx, err := parseRow(row)
		if err != nil {
			s.logf("skipping malformed row %d in %s: %v", id, s.path, err)
			result.Skipped++
			continue
		}

		result.Records = append(result.Records, book.Record{ID: id, Transaction: tx})
	}

	return result, nil
}

// Delete removes the record with the given identifier and rewrites the
// ledger file. The rewrite goes through a temporary file in the same
// directory followed by a rename. Malformed rows are preserved verbatim.
// Returns ErrNotFound when the identifier addresses no row.
func (s *Store) Delete(ctx context.Context, id int) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	f, err := os.Open(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("failed to open ledger file: %w", err)
	}

	rows, err := readRows(f)
	f.Close()
	if err != nil {
		return err
	}

	if id < 1 || id > len(rows) {
		return ErrNotFound
	}

	tmp, err := os.CreateTemp(filepath.Dir(s.path), ".ledgerbook-*")
	if err != nil {
		return fmt.Errorf("failed to create temporary file: %w", err)
	}
	defer os.Remove(tmp.Name())

	w := csv.NewWriter(tmp)
	if err := w.Write(Header); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write ledger header: %w", err)
	}
	for i, row := range rows {
		if i+1 == id {
			continue
		}
		if err := w.Write(row); err != nil {
			tmp.Close()
			return fmt.Errorf("failed to rewrite ledger: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to rewrite ledger: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to close temporary file: %w", err)
	}

	if err := os.Rename(tmp.Name(), s.path); err != nil {
		return fmt.Errorf("failed to replace ledger file: %w", err)
	}

	return nil
}

// readRows reads the raw data rows of the ledger, header excluded. Rows are
// read with a variable field count so malformed rows surface as data, not
// as csv errors.
func readRows(r io.Reader) ([][]string, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	var rows [][]string
	first := true
	for {
		row, err := reader.Read()
		if errors.Is(err, io.EOF) {
			return rows, nil
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read ledger file: %w", err)
		}
		if first {
			first = false
			continue // header
		}
		rows = append(rows, row)
	}
}

// parseRow converts one CSV row into a transaction.
func parseRow(row []string) (book.Transaction, error) {
	if len(row) != len(Header) {
		return book.Transaction{}, fmt.Errorf("expected %d columns, got %d", len(Header), len(row))
	}

	date, err := book.ParseDate(row[0])
	if err != nil {
		return book.Transaction{}, err
	}

	amount, err := book.ParseAmount(row[4])
	if err != nil {
		return book.Transaction{}, err
	}

	return book.Transaction{
		Date:        date,
		Description: row[1],
		Debit:       row[2],
		Credit:      row[3],
		Amount:      amount,
	}, nil
}
