package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/calmtree/profilewizard-backend/internal/requestdata"
	"github.com/calmtree/profilewizard-backend/internal/services"
	"github.com/calmtree/profilewizard-backend/internal/types"
)

type ProgressHandler struct {
	progressService services.ProgressService
}

func NewProgressHandler(progressService services.ProgressService) *ProgressHandler {
	return &ProgressHandler{progressService: progressService}
}

func (ph *ProgressHandler) GetProgress(c *gin.Context) {
	rd := requestdata.GetRequestData(c.Request.Context())
	if rd == nil || rd.UserID == uuid.Nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "not authenticated"})
		return
	}
	rows, err := ph.progressService.GetProgress(c.Request.Context(), rd.UserID)
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "internal", err)
		return
	}
	if rows == nil {
		rows = []*types.StepProgress{}
	}
	c.JSON(http.StatusOK, rows)
}

func (ph *ProgressHandler) UpdateProgress(c *gin.Context) {
	rd := requestdata.GetRequestData(c.Request.Context())
	if rd == nil || rd.UserID == uuid.Nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "not authenticated"})
		return
	}
	var req struct {
		StepID int    `json:"step_id" binding:"required"`
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "validation_failed", errors.New("step_id and status are required"))
		return
	}
	row, err := ph.progressService.UpdateProgress(c.Request.Context(), rd.UserID, req.StepID, req.Status)
	if err != nil {
		if errors.Is(err, services.ErrInvalidStatus) || errors.Is(err, services.ErrUnknownStep) {
			RespondError(c, http.StatusBadRequest, "validation_failed", err)
			return
		}
		RespondError(c, http.StatusInternalServerError, "internal", err)
		return
	}
	c.JSON(http.StatusOK, row)
}

func (ph *ProgressHandler) GetSummary(c *gin.Context) {
	rd := requestdata.GetRequestData(c.Request.Context())
	if rd == nil || rd.UserID == uuid.Nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "not authenticated"})
		return
	}
	summary, err := ph.progressService.GetSummary(c.Request.Context(), rd.UserID)
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "internal", err)
		return
	}
	c.JSON(http.StatusOK, summary)
}
