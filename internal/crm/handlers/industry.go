package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/kolab/crm/internal/crm/models"
)

// IndustryController is the business logic the industry endpoints invoke.
type IndustryController interface {
	Create(ctx context.Context, candidate *models.IndustryCandidate) (*models.Industry, error)
	Update(ctx context.Context, id uuid.UUID, candidate *models.IndustryCandidate) (*models.Industry, error)
	Delete(ctx context.Context, id uuid.UUID) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Industry, error)
	List(ctx context.Context) ([]models.Industry, error)
}

type IndustryHandler struct {
	service IndustryController
	logger  *zap.Logger
}

func NewIndustryHandler(service IndustryController, logger *zap.Logger) *IndustryHandler {
	return &IndustryHandler{service: service, logger: logger.Named("industry_handler")}
}

func (h *IndustryHandler) Register(r gin.IRoutes) {
	r.GET("/industries", h.list)
	r.GET("/industries/:id", h.get)
	r.POST("/industries", h.create)
	r.PUT("/industries/:id", h.update)
	r.DELETE("/industries/:id", h.delete)
}

func (h *IndustryHandler) list(c *gin.Context) {
	industries, err := h.service.List(c.Request.Context())
	if err != nil {
		writeServiceError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, industries)
}

func (h *IndustryHandler) get(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	industry, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		writeServiceError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, industry)
}

func (h *IndustryHandler) create(c *gin.Context) {
	var candidate models.IndustryCandidate
	if err := c.ShouldBindJSON(&candidate); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	created, err := h.service.Create(c.Request.Context(), &candidate)
	if err != nil {
		writeServiceError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (h *IndustryHandler) update(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var candidate models.IndustryCandidate
	if err := c.ShouldBindJSON(&candidate); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	updated, err := h.service.Update(c.Request.Context(), id, &candidate)
	if err != nil {
		writeServiceError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

func (h *IndustryHandler) delete(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		writeServiceError(c, h.logger, err)
		return
	}
	c.Status(http.StatusOK)
}
