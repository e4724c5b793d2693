package repos

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/calmtree/profilewizard-backend/internal/logger"
	"github.com/calmtree/profilewizard-backend/internal/types"
)

type StepProgressRepo interface {
	GetByUserID(ctx context.Context, tx *gorm.DB, userID uuid.UUID) ([]*types.StepProgress, error)
	GetByUserAndStepIDs(ctx context.Context, tx *gorm.DB, userID uuid.UUID, stepIDs []int) ([]*types.StepProgress, error)
	Upsert(ctx context.Context, tx *gorm.DB, row *types.StepProgress) (*types.StepProgress, error)
}

type stepProgressRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewStepProgressRepo(db *gorm.DB, baseLog *logger.Logger) StepProgressRepo {
	repoLog := baseLog.With("repo", "StepProgressRepo")
	return &stepProgressRepo{db: db, log: repoLog}
}

func (r *stepProgressRepo) GetByUserID(ctx context.Context, tx *gorm.DB, userID uuid.UUID) ([]*types.StepProgress, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	var results []*types.StepProgress
	if userID == uuid.Nil {
		return results, nil
	}

	if err := transaction.WithContext(ctx).
		Where("user_id = ?", userID).
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (r *stepProgressRepo) GetByUserAndStepIDs(ctx context.Context, tx *gorm.DB, userID uuid.UUID, stepIDs []int) ([]*types.StepProgress, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	var results []*types.StepProgress
	if userID == uuid.Nil || len(stepIDs) == 0 {
		return results, nil
	}

	if err := transaction.WithContext(ctx).
		Where("user_id = ? AND step_id IN ?", userID, stepIDs).
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

// Upsert inserts or updates the row for (user_id, step_id) in a single
// statement, relying on the unique composite index. Concurrent writes for
// the same pair cannot produce duplicate rows.
func (r *stepProgressRepo) Upsert(ctx context.Context, tx *gorm.DB, row *types.StepProgress) (*types.StepProgress, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	if row == nil {
		return nil, nil
	}
	if row.ID == uuid.Nil {
		row.ID = uuid.New()
	}

	if err := transaction.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}, {Name: "step_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"status", "updated_at"}),
		}).
		Create(row).Error; err != nil {
		return nil, err
	}

	// Re-read so the caller sees the surviving row's id and timestamps when
	// the insert hit the conflict path.
	var saved types.StepProgress
	if err := transaction.WithContext(ctx).
		Where("user_id = ? AND step_id = ?", row.UserID, row.StepID).
		Take(&saved).Error; err != nil {
		return nil, err
	}
	return &saved, nil
}
