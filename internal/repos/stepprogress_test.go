package repos

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/calmtree/profilewizard-backend/internal/logger"
	"github.com/calmtree/profilewizard-backend/internal/types"
)

func newTestDB(t *testing.T) *gorm.DB {
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
	return db
}

func newTestLogger(t *testing.T) *logger.Logger {
	t.Helper()
	log, err := logger.New("development")
	if err != nil {
		t.Fatalf("logger: %v", err)
	}
	return log
}

func TestUpsertInsertsThenUpdates(t *testing.T) {
	db := newTestDB(t)
	repo := NewStepProgressRepo(db, newTestLogger(t))
	ctx := context.Background()
	userID := uuid.New()

	first, err := repo.Upsert(ctx, nil, &types.StepProgress{
		UserID: userID,
		StepID: 3,
		Status: types.StatusCompleted,
	})
	if err != nil {
		t.Fatalf("first upsert: %v", err)
	}
	if first.ID == uuid.Nil {
		t.Fatal("first upsert returned a nil id")
	}
	if first.Status != types.StatusCompleted {
		t.Fatalf("first upsert status %q", first.Status)
	}

	second, err := repo.Upsert(ctx, nil, &types.StepProgress{
		UserID: userID,
		StepID: 3,
		Status: types.StatusSkipped,
	})
	if err != nil {
		t.Fatalf("second upsert: %v", err)
	}
	if second.ID != first.ID {
		t.Fatalf("second upsert created a new row: %s vs %s", second.ID, first.ID)
	}
	if second.Status != types.StatusSkipped {
		t.Fatalf("second upsert status %q, want skipped", second.Status)
	}
	if second.UpdatedAt.Before(first.UpdatedAt) {
		t.Fatalf("updated_at went backwards: %v before %v", second.UpdatedAt, first.UpdatedAt)
	}

	rows, err := repo.GetByUserID(ctx, nil, userID)
	if err != nil {
		t.Fatalf("get by user: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("expected exactly one row for the (user, step) pair, got %d", len(rows))
	}
}

func TestUpsertKeepsDistinctStepsApart(t *testing.T) {
	db := newTestDB(t)
	repo := NewStepProgressRepo(db, newTestLogger(t))
	ctx := context.Background()
	userID := uuid.New()

	for _, stepID := range []int{1, 2, 5} {
		if _, err := repo.Upsert(ctx, nil, &types.StepProgress{
			UserID: userID,
			StepID: stepID,
			Status: types.StatusCompleted,
		}); err != nil {
			t.Fatalf("upsert step %d: %v", stepID, err)
		}
	}

	rows, err := repo.GetByUserID(ctx, nil, userID)
	if err != nil {
		t.Fatalf("get by user: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("expected 3 rows, got %d", len(rows))
	}

	subset, err := repo.GetByUserAndStepIDs(ctx, nil, userID, []int{2, 5})
	if err != nil {
		t.Fatalf("get by user and steps: %v", err)
	}
	if len(subset) != 2 {
		t.Fatalf("expected 2 rows for the subset, got %d", len(subset))
	}
}

func TestUpsertIsolatesUsers(t *testing.T) {
	db := newTestDB(t)
	repo := NewStepProgressRepo(db, newTestLogger(t))
	ctx := context.Background()
	alice := uuid.New()
	bob := uuid.New()

	if _, err := repo.Upsert(ctx, nil, &types.StepProgress{UserID: alice, StepID: 1, Status: types.StatusCompleted}); err != nil {
		t.Fatalf("upsert alice: %v", err)
	}
	if _, err := repo.Upsert(ctx, nil, &types.StepProgress{UserID: bob, StepID: 1, Status: types.StatusSkipped}); err != nil {
		t.Fatalf("upsert bob: %v", err)
	}

	aliceRows, err := repo.GetByUserID(ctx, nil, alice)
	if err != nil {
		t.Fatalf("get alice: %v", err)
	}
	if len(aliceRows) != 1 || aliceRows[0].Status != types.StatusCompleted {
		t.Fatalf("alice rows wrong: %+v", aliceRows)
	}
}

func TestGetByUserIDWithNilUser(t *testing.T) {
	db := newTestDB(t)
	repo := NewStepProgressRepo(db, newTestLogger(t))

	rows, err := repo.GetByUserID(context.Background(), nil, uuid.Nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(rows) != 0 {
		t.Fatalf("expected no rows for the nil user, got %d", len(rows))
	}
}
