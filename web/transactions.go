package web

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/shopspring/decimal"

	"github.com/kgalang/ledgerbook/book"
	"github.com/kgalang/ledgerbook/store"
)

// TransactionsResponse is the JSON response structure for the transactions
// endpoint. Skipped counts malformed rows tolerated during the last read.
type TransactionsResponse struct {
	Transactions []book.Record `json:"transactions"`
	Skipped      int           `json:"skipped"`
}

// TransactionRequest is the JSON request body for creating a transaction.
type TransactionRequest struct {
	Date        string          `json:"date"`
	Description string          `json:"description"`
	Debit       string          `json:"debit"`
	Credit      string          `json:"credit"`
	Amount      decimal.Decimal `json:"amount"`
}

// ValidationResponse reports the fields that failed entry validation.
type ValidationResponse struct {
	Error  string            `json:"error"`
	Fields map[string]string `json:"fields,omitempty"`
}

// handleGetTransactions handles GET requests to /api/transactions.
func (s *Server) handleGetTransactions(w http.ResponseWriter, r *http.Request) {
	records, skipped := s.snapshot()
	if records == nil {
		records = []book.Record{}
	}
	writeJSONResponse(w, &TransactionsResponse{Transactions: records, Skipped: skipped})
}

// handlePostTransaction handles POST requests to /api/transactions. The
// transaction is validated fully before the ledger file is touched;
// validation failures come back as 400 with per-field messages.
func (s *Server) handlePostTransaction(w http.ResponseWriter, r *http.Request) {
	var req TransactionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body: "+err.Error(), http.StatusBadRequest)
		return
	}

	tx := book.Transaction{
		Description: req.Description,
		Debit:       req.Debit,
		Credit:      req.Credit,
		Amount:      req.Amount,
	}
	if req.Date != "" {
		date, err := book.ParseDate(req.Date)
		if err != nil {
			writeValidationResponse(w, map[string]string{"date": err.Error()})
			return
		}
		tx.Date = date
	}

	if err := s.store.Append(r.Context(), tx); err != nil {
		if fields := validationFields(err); len(fields) > 0 {
			writeValidationResponse(w, fields)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	if err := s.reload(r.Context()); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	s.broadcast("reload")

	w.WriteHeader(http.StatusCreated)
	writeJSONResponse(w, tx)
}

// handleDeleteTransaction handles DELETE requests to /api/transactions/{id}.
func (s *Server) handleDeleteTransaction(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		http.Error(w, "invalid transaction id", http.StatusBadRequest)
		return
	}

	if err := s.store.Delete(r.Context(), id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			http.Error(w, "transaction not found", http.StatusNotFound)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	if err := s.reload(r.Context()); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	s.broadcast("reload")

	w.WriteHeader(http.StatusNoContent)
}

// validationFields flattens a validation error into field → message.
func validationFields(err error) map[string]string {
	if err == nil {
		return nil
	}

	fields := make(map[string]string)
	var walk func(error)
	walk = func(err error) {
		if joined, ok := err.(interface{ Unwrap() []error }); ok {
			for _, part := range joined.Unwrap() {
				walk(part)
			}
			return
		}
		var verr *book.ValidationError
		if errors.As(err, &verr) {
			fields[verr.Field] = verr.Message
		}
	}
	walk(err)

	if len(fields) == 0 {
		return nil
	}
	return fields
}

func writeValidationResponse(w http.ResponseWriter, fields map[string]string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusBadRequest)
	_ = json.NewEncoder(w).Encode(&ValidationResponse{
		Error:  "invalid transaction",
		Fields: fields,
	})
}
