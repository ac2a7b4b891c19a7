package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/kolab/crm/internal/crm/models"
)

type CategoryController interface {
	Create(ctx context.Context, candidate *models.CategoryCandidate) (*models.Category, error)
	Update(ctx context.Context, id uuid.UUID, candidate *models.CategoryCandidate) (*models.Category, error)
	Delete(ctx context.Context, id uuid.UUID) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Category, error)
	List(ctx context.Context) ([]models.Category, error)
}

type CategoryHandler struct {
	service CategoryController
	logger  *zap.Logger
}

func NewCategoryHandler(service CategoryController, logger *zap.Logger) *CategoryHandler {
	return &CategoryHandler{service: service, logger: logger.Named("category_handler")}
}

func (h *CategoryHandler) Register(r gin.IRoutes) {
	r.GET("/categories", h.list)
	r.GET("/categories/:id", h.get)
	r.POST("/categories", h.create)
	r.PUT("/categories/:id", h.update)
	r.DELETE("/categories/:id", h.delete)
}

func (h *CategoryHandler) list(c *gin.Context) {
	categories, err := h.service.List(c.Request.Context())
	if err != nil {
		writeServiceError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, categories)
}

func (h *CategoryHandler) get(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	category, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		writeServiceError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, category)
}

func (h *CategoryHandler) create(c *gin.Context) {
	var candidate models.CategoryCandidate
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

func (h *CategoryHandler) update(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var candidate models.CategoryCandidate
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

func (h *CategoryHandler) delete(c *gin.Context) {
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
