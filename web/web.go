// Package web provides a local HTTP JSON API over the ledger.
//
// The server keeps an in-memory snapshot of the ledger records, rebuilt from
// the store whenever a write goes through the API or the file changes on
// disk. Derived views (balances, journal, general ledger, balance sheet) are
// computed per request from that snapshot.
//
// SECURITY WARNING: This server has no authentication and should only be
// bound to localhost (127.0.0.1). Do not expose it to untrusted networks.
package web

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/kgalang/ledgerbook/book"
	"github.com/kgalang/ledgerbook/store"
	"github.com/kgalang/ledgerbook/telemetry"
)

type Server struct {
	Port         int
	Host         string
	Version      string
	ReadOnly     bool
	WatchEnabled bool

	store *store.Store
	chart *book.Chart

	mu      sync.RWMutex
	records []book.Record
	skipped int

	// SSE clients for broadcasting reload events
	sseClients map[chan string]struct{}
	sseMu      sync.Mutex
}

// New creates a server over the given store and chart of accounts.
func New(st *store.Store, chart *book.Chart) *Server {
	return &Server{
		Host:       "127.0.0.1",
		Port:       8179,
		store:      st,
		chart:      chart,
		sseClients: make(map[chan string]struct{}),
	}
}

func (s *Server) Start(ctx context.Context) error {
	collector := telemetry.FromContext(ctx)
	timer := collector.Start(fmt.Sprintf("web.start %s:%d", s.Host, s.Port))
	defer timer.End()

	if err := s.reload(ctx); err != nil {
		return fmt.Errorf("failed to load ledger: %w", err)
	}

	if s.WatchEnabled {
		if err := s.startWatcher(ctx); err != nil {
			return fmt.Errorf("failed to start file watcher: %w", err)
		}
	}

	addr := fmt.Sprintf("%s:%d", s.Host, s.Port)
	return http.ListenAndServe(addr, s.router())
}

func (s *Server) router() *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /api/transactions", s.handleGetTransactions)
	mux.HandleFunc("POST /api/transactions", s.requireWritable(s.handlePostTransaction))
	mux.HandleFunc("DELETE /api/transactions/{id}", s.requireWritable(s.handleDeleteTransaction))
	mux.HandleFunc("GET /api/accounts", s.handleGetAccounts)
	mux.HandleFunc("GET /api/balances", s.handleGetBalances)
	mux.HandleFunc("GET /api/journal", s.handleGetJournal)
	mux.HandleFunc("GET /api/ledger", s.handleGetLedger)
	mux.HandleFunc("GET /api/balance-sheet", s.handleGetBalanceSheet)
	mux.HandleFunc("GET /api/events", s.handleSSE)

	return mux
}

// requireWritable is middleware that rejects write requests in read-only mode.
func (s *Server) requireWritable(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if s.ReadOnly {
			http.Error(w, "Server is in read-only mode", http.StatusForbidden)
			return
		}
		next(w, r)
	}
}

// reload re-reads the full ledger from disk into the snapshot.
// Caller must NOT hold the mutex.
func (s *Server) reload(ctx context.Context) error {
	timer := telemetry.StartTimer(ctx, "web.reload")
	defer timer.End()

	result, err := s.store.ReadAll(ctx)
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.records = result.Records
	s.skipped = result.Skipped
	s.mu.Unlock()

	return nil
}

// snapshot returns the current records and skipped count.
func (s *Server) snapshot() ([]book.Record, int) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.records, s.skipped
}

// startWatcher watches the ledger file's directory, so that atomic rewrites
// and the initial creation of the file are both observed.
func (s *Server) startWatcher(ctx context.Context) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create file watcher: %w", err)
	}

	dir := filepath.Dir(s.store.Path())
	if err := watcher.Add(dir); err != nil {
		_ = watcher.Close()
		return fmt.Errorf("failed to watch %s: %w", dir, err)
	}

	go s.runWatcher(ctx, watcher)

	return nil
}

// runWatcher processes file system events with debouncing.
func (s *Server) runWatcher(ctx context.Context, watcher *fsnotify.Watcher) {
	var debounceTimer *time.Timer
	defer func() {
		if debounceTimer != nil {
			debounceTimer.Stop()
		}
		_ = watcher.Close()
	}()

	// Debounce timer - rewrites touch the file in multiple steps
	const debounceDelay = 100 * time.Millisecond

	ledgerFile := filepath.Clean(s.store.Path())

	for {
		select {
		case <-ctx.Done():
			return

		case event, ok := <-watcher.Events:
			if !ok {
				return
			}

			if filepath.Clean(event.Name) != ledgerFile {
				continue
			}

			// React to write/create/remove/rename events
			// (Remove/Rename are common in atomic saves)
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Remove|fsnotify.Rename) == 0 {
				continue
			}

			if debounceTimer != nil {
				debounceTimer.Stop()
			}

			debounceTimer = time.AfterFunc(debounceDelay, func() {
				if err := s.reload(ctx); err != nil {
					log.Printf("Failed to reload ledger: %v", err)
					return
				}
				s.broadcast("reload")
			})

		case err, ok := <-watcher.Errors:
			if !ok {
				return
			}
			log.Printf("File watcher error: %v", err)
		}
	}
}

// handleSSE handles Server-Sent Events connections for real-time updates.
func (s *Server) handleSSE(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")

	clientChan := make(chan string, 10)

	s.sseMu.Lock()
	s.sseClients[clientChan] = struct{}{}
	s.sseMu.Unlock()

	defer func() {
		s.sseMu.Lock()
		delete(s.sseClients, clientChan)
		s.sseMu.Unlock()
		close(clientChan)
	}()

	flusher, ok := w.(http.Flusher)
	if !ok {
		http.Error(w, "Streaming not supported", http.StatusInternalServerError)
		return
	}

	_, _ = fmt.Fprintf(w, "data: connected\n\n")
	flusher.Flush()

	for {
		select {
		case <-r.Context().Done():
			return
		case event := <-clientChan:
			_, _ = fmt.Fprintf(w, "data: %s\n\n", event)
			flusher.Flush()
		}
	}
}

// broadcast sends an event to all connected SSE clients.
func (s *Server) broadcast(event string) {
	s.sseMu.Lock()
	defer s.sseMu.Unlock()

	for clientChan := range s.sseClients {
		select {
		case clientChan <- event:
		default:
			// Client buffer full, skip
		}
	}
}

func writeJSONResponse(w http.ResponseWriter, data any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(data); err != nil {
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
	}
}
