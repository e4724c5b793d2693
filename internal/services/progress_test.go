package services

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/calmtree/profilewizard-backend/internal/catalog"
	"github.com/calmtree/profilewizard-backend/internal/logger"
	"github.com/calmtree/profilewizard-backend/internal/repos"
	"github.com/calmtree/profilewizard-backend/internal/types"
)

func newTestProgressService(t *testing.T) (ProgressService, repos.UserEventRepo) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		DisableForeignKeyConstraintWhenMigrating: true,
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(&types.User{}, &types.StepProgress{}, &types.UserEvent{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	log, err := logger.New("development")
	if err != nil {
		t.Fatalf("logger: %v", err)
	}
	progressRepo := repos.NewStepProgressRepo(db, log)
	eventRepo := repos.NewUserEventRepo(db, log)
	return NewProgressService(db, log, progressRepo, eventRepo, nil), eventRepo
}

func TestUpdateProgressRoundTrip(t *testing.T) {
	svc, _ := newTestProgressService(t)
	ctx := context.Background()
	userID := uuid.New()

	for _, status := range []string{types.StatusPending, types.StatusCompleted, types.StatusSkipped} {
		row, err := svc.UpdateProgress(ctx, userID, 4, status)
		if err != nil {
			t.Fatalf("update with status %q: %v", status, err)
		}
		if row.Status != status {
			t.Fatalf("returned status %q, want %q", row.Status, status)
		}

		rows, err := svc.GetProgress(ctx, userID)
		if err != nil {
			t.Fatalf("get progress: %v", err)
		}
		found := false
		for _, r := range rows {
			if r.StepID == 4 && r.Status == status {
				found = true
			}
		}
		if !found {
			t.Fatalf("progress for step 4 with status %q not found after write", status)
		}
	}
}

func TestUpdateProgressIsIdempotentPerStep(t *testing.T) {
	svc, _ := newTestProgressService(t)
	ctx := context.Background()
	userID := uuid.New()

	first, err := svc.UpdateProgress(ctx, userID, 3, types.StatusCompleted)
	if err != nil {
		t.Fatalf("first update: %v", err)
	}
	second, err := svc.UpdateProgress(ctx, userID, 3, types.StatusCompleted)
	if err != nil {
		t.Fatalf("second update: %v", err)
	}
	if second.ID != first.ID {
		t.Fatalf("repeat update created a second row: %s vs %s", second.ID, first.ID)
	}
	if second.UpdatedAt.Before(first.UpdatedAt) {
		t.Fatal("updated_at went backwards on the repeat update")
	}

	rows, err := svc.GetProgress(ctx, userID)
	if err != nil {
		t.Fatalf("get progress: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("expected one row, got %d", len(rows))
	}
}

func TestUpdateProgressRejectsInvalidStatus(t *testing.T) {
	svc, _ := newTestProgressService(t)

	_, err := svc.UpdateProgress(context.Background(), uuid.New(), 1, "finished")
	if !errors.Is(err, ErrInvalidStatus) {
		t.Fatalf("expected ErrInvalidStatus, got %v", err)
	}
}

func TestUpdateProgressRejectsUnknownStep(t *testing.T) {
	svc, _ := newTestProgressService(t)

	for _, stepID := range []int{0, -3, catalog.Count() + 1} {
		_, err := svc.UpdateProgress(context.Background(), uuid.New(), stepID, types.StatusCompleted)
		if !errors.Is(err, ErrUnknownStep) {
			t.Fatalf("step %d: expected ErrUnknownStep, got %v", stepID, err)
		}
	}
}

func TestUpdateProgressAppendsAuditEvent(t *testing.T) {
	svc, eventRepo := newTestProgressService(t)
	ctx := context.Background()
	userID := uuid.New()

	if _, err := svc.UpdateProgress(ctx, userID, 2, types.StatusCompleted); err != nil {
		t.Fatalf("update: %v", err)
	}
	if _, err := svc.UpdateProgress(ctx, userID, 2, types.StatusSkipped); err != nil {
		t.Fatalf("update: %v", err)
	}

	events, err := eventRepo.GetByUserID(ctx, nil, userID)
	if err != nil {
		t.Fatalf("get events: %v", err)
	}
	if len(events) != 2 {
		t.Fatalf("expected 2 audit events, got %d", len(events))
	}
	for _, ev := range events {
		if ev.Type != "progress_update" {
			t.Fatalf("event type %q", ev.Type)
		}
		if ev.StepID == nil || *ev.StepID != 2 {
			t.Fatalf("event step id %v", ev.StepID)
		}
	}
}

func TestGetSummary(t *testing.T) {
	svc, _ := newTestProgressService(t)
	ctx := context.Background()
	userID := uuid.New()

	if _, err := svc.UpdateProgress(ctx, userID, 1, types.StatusCompleted); err != nil {
		t.Fatalf("update: %v", err)
	}
	if _, err := svc.UpdateProgress(ctx, userID, 2, types.StatusCompleted); err != nil {
		t.Fatalf("update: %v", err)
	}
	if _, err := svc.UpdateProgress(ctx, userID, 3, types.StatusSkipped); err != nil {
		t.Fatalf("update: %v", err)
	}

	summary, err := svc.GetSummary(ctx, userID)
	if err != nil {
		t.Fatalf("get summary: %v", err)
	}
	if summary.TotalSteps != catalog.Count() {
		t.Fatalf("total steps %d, want %d", summary.TotalSteps, catalog.Count())
	}
	if summary.Completed != 2 || summary.Skipped != 1 {
		t.Fatalf("summary counts wrong: %+v", summary)
	}
	want := float64(2) / float64(catalog.Count()) * 100
	if summary.PercentComplete != want {
		t.Fatalf("percent complete %f, want %f", summary.PercentComplete, want)
	}
}
