package onboarding

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/calmtree/profilewizard-backend/internal/logger"
	"github.com/calmtree/profilewizard-backend/internal/types"
)

func newTestLogger(t *testing.T) *logger.Logger {
	t.Helper()
	log, err := logger.New("development")
	if err != nil {
		t.Fatalf("logger: %v", err)
	}
	return log
}

func TestLoadDegradesTo401AsEmpty(t *testing.T) {
	var gets int64
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt64(&gets, 1)
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	client := New(srv.URL, "", newTestLogger(t))
	rows, err := client.Load(context.Background())
	if err != nil {
		t.Fatalf("Load on 401 should not error, got %v", err)
	}
	if len(rows) != 0 {
		t.Fatalf("Load on 401 should be empty, got %d rows", len(rows))
	}

	// The 401 result is cached like any other; no re-fetch.
	if _, err := client.Load(context.Background()); err != nil {
		t.Fatalf("second Load: %v", err)
	}
	if atomic.LoadInt64(&gets) != 1 {
		t.Fatalf("expected one fetch, saw %d", gets)
	}
}

func TestLoadCachesUntilInvalidate(t *testing.T) {
	userID := uuid.New()
	var gets int64
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt64(&gets, 1)
		_ = json.NewEncoder(w).Encode([]*types.StepProgress{
			{ID: uuid.New(), UserID: userID, StepID: 1, Status: types.StatusCompleted},
		})
	}))
	defer srv.Close()

	client := New(srv.URL, "tok", newTestLogger(t))
	ctx := context.Background()

	rows, err := client.Load(ctx)
	if err != nil {
		t.Fatalf("first Load: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("first Load rows: %d", len(rows))
	}
	if _, err := client.Load(ctx); err != nil {
		t.Fatalf("second Load: %v", err)
	}
	if atomic.LoadInt64(&gets) != 1 {
		t.Fatalf("cached Load re-fetched: %d fetches", gets)
	}

	client.Invalidate()
	if _, err := client.Load(ctx); err != nil {
		t.Fatalf("Load after Invalidate: %v", err)
	}
	if atomic.LoadInt64(&gets) != 2 {
		t.Fatalf("Invalidate should force a re-fetch, saw %d fetches", gets)
	}
}

func TestUpdateMergesIntoCache(t *testing.T) {
	userID := uuid.New()
	existingID := uuid.New()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			_ = json.NewEncoder(w).Encode([]*types.StepProgress{
				{ID: existingID, UserID: userID, StepID: 2, Status: types.StatusPending, UpdatedAt: time.Now()},
			})
		case http.MethodPost:
			var req struct {
				StepID int    `json:"step_id"`
				Status string `json:"status"`
			}
			_ = json.NewDecoder(r.Body).Decode(&req)
			id := existingID
			if req.StepID != 2 {
				id = uuid.New()
			}
			_ = json.NewEncoder(w).Encode(&types.StepProgress{
				ID: id, UserID: userID, StepID: req.StepID, Status: req.Status, UpdatedAt: time.Now(),
			})
		}
	}))
	defer srv.Close()

	client := New(srv.URL, "tok", newTestLogger(t))
	ctx := context.Background()

	if _, err := client.Load(ctx); err != nil {
		t.Fatalf("Load: %v", err)
	}

	// Replaces the cached entry for the same step.
	if _, err := client.Update(ctx, 2, types.StatusCompleted); err != nil {
		t.Fatalf("Update step 2: %v", err)
	}
	rows, err := client.Load(ctx)
	if err != nil {
		t.Fatalf("Load after update: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("replace should keep one row, got %d", len(rows))
	}
	if rows[0].Status != types.StatusCompleted {
		t.Fatalf("cached row status %q, want completed", rows[0].Status)
	}

	// Appends an entry for a step not yet in the cache.
	if _, err := client.Update(ctx, 5, types.StatusSkipped); err != nil {
		t.Fatalf("Update step 5: %v", err)
	}
	rows, err = client.Load(ctx)
	if err != nil {
		t.Fatalf("Load after append: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("append should grow the cache to 2 rows, got %d", len(rows))
	}
}

func TestUpdate401IsAHardFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	client := New(srv.URL, "", newTestLogger(t))
	_, err := client.Update(context.Background(), 1, types.StatusCompleted)
	if !errors.Is(err, ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized, got %v", err)
	}
}
