package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/calmtree/profilewizard-backend/internal/catalog"
)

type StepsHandler struct{}

func NewStepsHandler() *StepsHandler {
	return &StepsHandler{}
}

type stepDTO struct {
	ID          int              `json:"id"`
	Title       string           `json:"title"`
	Description string           `json:"description"`
	Type        catalog.StepType `json:"type"`
	ContentKind string           `json:"content_kind"`
	Content     catalog.Content  `json:"content"`
}

func toStepDTO(s catalog.StepDefinition) stepDTO {
	return stepDTO{
		ID:          s.ID,
		Title:       s.Title,
		Description: s.Description,
		Type:        s.Type,
		ContentKind: s.Content.Kind(),
		Content:     s.Content,
	}
}

func (sh *StepsHandler) List(c *gin.Context) {
	defs := catalog.All()
	out := make([]stepDTO, 0, len(defs))
	for _, s := range defs {
		out = append(out, toStepDTO(s))
	}
	c.JSON(http.StatusOK, gin.H{"steps": out, "total": len(out)})
}

func (sh *StepsHandler) GetByID(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "validation_failed", errors.New("step id must be an integer"))
		return
	}
	step, err := catalog.ByID(id)
	if err != nil {
		if errors.Is(err, catalog.ErrStepNotFound) {
			RespondError(c, http.StatusNotFound, "not_found", err)
			return
		}
		RespondError(c, http.StatusInternalServerError, "internal", err)
		return
	}
	c.JSON(http.StatusOK, toStepDTO(step))
}
