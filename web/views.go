package web

import (
	"net/http"

	"github.com/shopspring/decimal"

	"github.com/kgalang/ledgerbook/book"
)

// AccountInfo represents one chart account.
type AccountInfo struct {
	Name          string `json:"name"`
	Type          string `json:"type"`
	NormalBalance string `json:"normalBalance"`
}

// AccountsResponse is the JSON response structure for the accounts endpoint.
type AccountsResponse struct {
	Accounts []AccountInfo `json:"accounts"`
}

// handleGetAccounts handles GET requests to /api/accounts.
// Returns the chart of accounts, sorted alphabetically by name.
func (s *Server) handleGetAccounts(w http.ResponseWriter, r *http.Request) {
	names := s.chart.Accounts()
	accounts := make([]AccountInfo, 0, len(names))
	for _, name := range names {
		accounts = append(accounts, AccountInfo{
			Name:          name,
			Type:          s.chart.TypeOf(name).String(),
			NormalBalance: s.chart.NormalBalanceOf(name).String(),
		})
	}

	writeJSONResponse(w, &AccountsResponse{Accounts: accounts})
}

// BalancesResponse is the JSON response structure for the balances endpoint.
type BalancesResponse struct {
	Summary []TypeSummaryResponse `json:"summary"`
}

// TypeSummaryResponse is one account type group with its total.
type TypeSummaryResponse struct {
	Type     string                `json:"type"`
	Accounts []book.AccountBalance `json:"accounts"`
	Total    decimal.Decimal       `json:"total"`
}

// handleGetBalances handles GET requests to /api/balances. Balances are
// derived from the snapshot on every request; nothing is cached.
func (s *Server) handleGetBalances(w http.ResponseWriter, r *http.Request) {
	records, _ := s.snapshot()
	tb := book.ComputeBalances(s.chart, book.Transactions(records))

	summaries := tb.Summary()
	response := &BalancesResponse{Summary: make([]TypeSummaryResponse, 0, len(summaries))}
	for _, summary := range summaries {
		response.Summary = append(response.Summary, TypeSummaryResponse{
			Type:     summary.Type.String(),
			Accounts: summary.Accounts,
			Total:    summary.Total,
		})
	}

	writeJSONResponse(w, response)
}

// JournalResponse is the JSON response structure for the journal endpoint.
type JournalResponse struct {
	Entries      []book.JournalEntry `json:"entries"`
	TotalDebits  decimal.Decimal     `json:"totalDebits"`
	TotalCredits decimal.Decimal     `json:"totalCredits"`
}

// handleGetJournal handles GET requests to /api/journal.
//
// Query parameters:
//   - q: substring search over dates, descriptions and accounts; a match on
//     either side of a pair includes the whole pair.
//   - from, to: date range bounds in YYYY-MM-DD form, both optional.
func (s *Server) handleGetJournal(w http.ResponseWriter, r *http.Request) {
	records, _ := s.snapshot()
	journal := book.BuildJournal(records)
	entries := journal.Search(r.URL.Query().Get("q"))

	fromParam := r.URL.Query().Get("from")
	toParam := r.URL.Query().Get("to")
	if fromParam != "" || toParam != "" {
		start, end, ok := parseRange(w, fromParam, toParam, entries)
		if !ok {
			return
		}
		entries = book.Between(entries, start, end)
	}

	if entries == nil {
		entries = []book.JournalEntry{}
	}

	debits, credits := book.JournalTotals(entries)
	writeJSONResponse(w, &JournalResponse{
		Entries:      entries,
		TotalDebits:  debits,
		TotalCredits: credits,
	})
}

// parseRange resolves from/to query parameters, defaulting open ends to the
// first and last entry dates. Writes a 400 and returns ok=false on bad input.
func parseRange(w http.ResponseWriter, fromParam, toParam string, entries []book.JournalEntry) (start, end book.Date, ok bool) {
	var err error
	if fromParam != "" {
		if start, err = book.ParseDate(fromParam); err != nil {
			http.Error(w, "invalid from date (expected YYYY-MM-DD): "+fromParam, http.StatusBadRequest)
			return start, end, false
		}
	} else if len(entries) > 0 {
		start = entries[0].Date
	}

	if toParam != "" {
		if end, err = book.ParseDate(toParam); err != nil {
			http.Error(w, "invalid to date (expected YYYY-MM-DD): "+toParam, http.StatusBadRequest)
			return start, end, false
		}
	} else if len(entries) > 0 {
		end = entries[len(entries)-1].Date
	}

	return start, end, true
}

// LedgerResponse is the JSON response structure for the ledger endpoint.
type LedgerResponse struct {
	Entries     []book.LedgerEntry `json:"entries"`
	Total       decimal.Decimal    `json:"total"`
	LastBalance decimal.Decimal    `json:"lastBalance"`
}

// handleGetLedger handles GET requests to /api/ledger. Running balances are
// computed over the full sequence before the q filter applies.
func (s *Server) handleGetLedger(w http.ResponseWriter, r *http.Request) {
	records, _ := s.snapshot()
	entries := book.SearchLedger(book.BuildGeneralLedger(records), r.URL.Query().Get("q"))
	if entries == nil {
		entries = []book.LedgerEntry{}
	}

	total, lastBalance := book.LedgerTotals(entries)
	writeJSONResponse(w, &LedgerResponse{
		Entries:     entries,
		Total:       total,
		LastBalance: lastBalance,
	})
}

// handleGetBalanceSheet handles GET requests to /api/balance-sheet.
func (s *Server) handleGetBalanceSheet(w http.ResponseWriter, r *http.Request) {
	records, _ := s.snapshot()
	tb := book.ComputeBalances(s.chart, book.Transactions(records))
	writeJSONResponse(w, book.BuildBalanceSheet(tb.Summary()))
}
