package types

import (
	"time"

	"github.com/google/uuid"
)

const (
	StatusPending   = "pending"
	StatusCompleted = "completed"
	StatusSkipped   = "skipped"
)

func ValidStatus(status string) bool {
	switch status {
	case StatusPending, StatusCompleted, StatusSkipped:
		return true
	}
	return false
}

// StepProgress is the durable status of one wizard step for one user. The
// unique composite index over (user_id, step_id) is what makes the repo
// upsert atomic.
type StepProgress struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index:idx_user_step,unique" json:"user_id"`
	User      *User     `gorm:"constraint:OnDelete:CASCADE;foreignKey:UserID;references:ID" json:"user,omitempty"`
	StepID    int       `gorm:"column:step_id;not null;index:idx_user_step,unique" json:"step_id"`
	Status    string    `gorm:"column:status;not null;default:'pending'" json:"status"`
	CreatedAt time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null" json:"updated_at"`
}

func (StepProgress) TableName() string { return "step_progress" }
