package leaderboard

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/pixil98/go-hacknet/internal/storage"
)

// Service exposes the scoreboard over HTTP. GET returns the top runs
// sorted by completion time ascending; POST records a new run and
// echoes it back with the server-assigned id and timestamp.
type Service struct {
	addr  string
	store storage.Storer[*Entry]
	clock func() time.Time
}

func NewService(addr string, store storage.Storer[*Entry]) *Service {
	return &Service{
		addr:  addr,
		store: store,
		clock: time.Now,
	}
}

// Start runs the HTTP server until ctx is cancelled.
func (s *Service) Start(ctx context.Context) error {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/leaderboard", s.serve)

	srv := &http.Server{
		Addr:    s.addr,
		Handler: mux,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	slog.Info("leaderboard service listening", "addr", s.addr)

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	case err := <-errCh:
		return fmt.Errorf("leaderboard service: %w", err)
	}
}

func (s *Service) serve(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		s.handleGet(w, r)
	case http.MethodPost:
		s.handlePost(w, r)
	default:
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
	}
}

func (s *Service) handleGet(w http.ResponseWriter, _ *http.Request) {
	all := s.store.GetAll()

	entries := make([]Entry, 0, len(all))
	for _, e := range all {
		entries = append(entries, *e)
	}

	// Ties break on completion timestamp so the order is stable
	sort.Slice(entries, func(a, b int) bool {
		if entries[a].CompletionTime != entries[b].CompletionTime {
			return entries[a].CompletionTime < entries[b].CompletionTime
		}
		return entries[a].CompletedAt < entries[b].CompletedAt
	})

	if len(entries) > topLimit {
		entries = entries[:topLimit]
	}

	writeJSON(w, http.StatusOK, entries)
}

func (s *Service) handlePost(w http.ResponseWriter, r *http.Request) {
	var entry Entry
	if err := json.NewDecoder(r.Body).Decode(&entry); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}

	entry.Id = uuid.NewString()
	entry.CompletedAt = s.clock().UnixMilli()

	if err := entry.Validate(); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}

	if err := s.store.Save(storage.Identifier(entry.Id), &entry); err != nil {
		slog.Error("saving leaderboard entry", "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "Failed to save leaderboard entry"})
		return
	}

	writeJSON(w, http.StatusOK, entry)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("encoding response", "error", err)
	}
}
