package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/calmtree/profilewizard-backend/internal/catalog"
	redisclient "github.com/calmtree/profilewizard-backend/internal/clients/redis"
	"github.com/calmtree/profilewizard-backend/internal/logger"
	"github.com/calmtree/profilewizard-backend/internal/repos"
	"github.com/calmtree/profilewizard-backend/internal/types"
)

var (
	ErrInvalidStatus = errors.New("invalid progress status")
	ErrUnknownStep   = errors.New("unknown step id")
)

type ProgressSummary struct {
	TotalSteps      int     `json:"total_steps"`
	Completed       int     `json:"completed"`
	Skipped         int     `json:"skipped"`
	PercentComplete float64 `json:"percent_complete"`
}

type ProgressService interface {
	GetProgress(ctx context.Context, userID uuid.UUID) ([]*types.StepProgress, error)
	UpdateProgress(ctx context.Context, userID uuid.UUID, stepID int, status string) (*types.StepProgress, error)
	GetSummary(ctx context.Context, userID uuid.UUID) (*ProgressSummary, error)
}

type progressService struct {
	db            *gorm.DB
	log           *logger.Logger
	progressRepo  repos.StepProgressRepo
	userEventRepo repos.UserEventRepo
	cache         redisclient.ProgressCache
}

// NewProgressService builds the progress store. cache may be nil; every
// cache failure degrades to the database.
func NewProgressService(
	db *gorm.DB,
	log *logger.Logger,
	progressRepo repos.StepProgressRepo,
	userEventRepo repos.UserEventRepo,
	cache redisclient.ProgressCache,
) ProgressService {
	serviceLog := log.With("service", "ProgressService")
	return &progressService{
		db:            db,
		log:           serviceLog,
		progressRepo:  progressRepo,
		userEventRepo: userEventRepo,
		cache:         cache,
	}
}

func (ps *progressService) GetProgress(ctx context.Context, userID uuid.UUID) ([]*types.StepProgress, error) {
	if userID == uuid.Nil {
		return nil, fmt.Errorf("user id required")
	}
	if ps.cache != nil {
		rows, hit, err := ps.cache.Get(ctx, userID)
		if err != nil {
			ps.log.Warn("Progress cache read failed, falling back to postgres", "error", err)
		} else if hit {
			return rows, nil
		}
	}
	rows, err := ps.progressRepo.GetByUserID(ctx, nil, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load progress: %w", err)
	}
	if ps.cache != nil {
		if cErr := ps.cache.Set(ctx, userID, rows); cErr != nil {
			ps.log.Warn("Progress cache write failed", "error", cErr)
		}
	}
	return rows, nil
}

func (ps *progressService) UpdateProgress(ctx context.Context, userID uuid.UUID, stepID int, status string) (*types.StepProgress, error) {
	if userID == uuid.Nil {
		return nil, fmt.Errorf("user id required")
	}
	if !types.ValidStatus(status) {
		return nil, fmt.Errorf("status %q: %w", status, ErrInvalidStatus)
	}
	if _, err := catalog.ByID(stepID); err != nil {
		return nil, fmt.Errorf("step %d: %w", stepID, ErrUnknownStep)
	}

	var saved *types.StepProgress
	err := ps.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		row := &types.StepProgress{
			UserID: userID,
			StepID: stepID,
			Status: status,
		}
		upserted, upErr := ps.progressRepo.Upsert(ctx, tx, row)
		if upErr != nil {
			return fmt.Errorf("failed to upsert progress: %w", upErr)
		}
		saved = upserted

		payload, mErr := json.Marshal(map[string]interface{}{
			"step_id": stepID,
			"status":  status,
		})
		if mErr != nil {
			return fmt.Errorf("failed to encode progress event: %w", mErr)
		}
		event := &types.UserEvent{
			UserID: userID,
			StepID: &stepID,
			Type:   "progress_update",
			Data:   datatypes.JSON(payload),
		}
		if _, evErr := ps.userEventRepo.Create(ctx, tx, []*types.UserEvent{event}); evErr != nil {
			return fmt.Errorf("failed to record progress event: %w", evErr)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if ps.cache != nil {
		if cErr := ps.cache.Invalidate(ctx, userID); cErr != nil {
			ps.log.Warn("Progress cache invalidation failed", "error", cErr)
		}
	}
	return saved, nil
}

func (ps *progressService) GetSummary(ctx context.Context, userID uuid.UUID) (*ProgressSummary, error) {
	rows, err := ps.GetProgress(ctx, userID)
	if err != nil {
		return nil, err
	}
	summary := &ProgressSummary{TotalSteps: catalog.Count()}
	for _, row := range rows {
		switch row.Status {
		case types.StatusCompleted:
			summary.Completed++
		case types.StatusSkipped:
			summary.Skipped++
		}
	}
	if summary.TotalSteps > 0 {
		summary.PercentComplete = float64(summary.Completed) / float64(summary.TotalSteps) * 100
	}
	return summary, nil
}
