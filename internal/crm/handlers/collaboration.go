package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/kolab/crm/internal/crm/models"
)

type CollaborationController interface {
	Create(ctx context.Context, candidate *models.CollaborationCandidate) (*models.Collaboration, error)
	Update(ctx context.Context, id uuid.UUID, candidate *models.CollaborationCandidate) (*models.Collaboration, error)
	Delete(ctx context.Context, id uuid.UUID) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Collaboration, error)
	List(ctx context.Context) ([]models.Collaboration, error)
	ListByCompany(ctx context.Context, companyID uuid.UUID) ([]models.Collaboration, error)
	ListByProject(ctx context.Context, projectID uuid.UUID) ([]models.Collaboration, error)
	ListByResponsible(ctx context.Context, userID uuid.UUID) ([]models.Collaboration, error)
}

type CollaborationHandler struct {
	service CollaborationController
	logger  *zap.Logger
}

func NewCollaborationHandler(service CollaborationController, logger *zap.Logger) *CollaborationHandler {
	return &CollaborationHandler{service: service, logger: logger.Named("collaboration_handler")}
}

func (h *CollaborationHandler) Register(r gin.IRoutes) {
	r.GET("/collaborations", h.list)
	r.GET("/collaborations/:id", h.get)
	r.POST("/collaborations", h.create)
	r.PUT("/collaborations/:id", h.update)
	r.DELETE("/collaborations/:id", h.delete)
	r.GET("/companies/:id/collaborations", h.listByCompany)
	r.GET("/projects/:id/collaborations", h.listByProject)
	r.GET("/users/:id/collaborations", h.listByResponsible)
}

func (h *CollaborationHandler) list(c *gin.Context) {
	collaborations, err := h.service.List(c.Request.Context())
	if err != nil {
		writeServiceError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, collaborations)
}

func (h *CollaborationHandler) listByCompany(c *gin.Context) {
	companyID, ok := parseID(c, "id")
	if !ok {
		return
	}
	collaborations, err := h.service.ListByCompany(c.Request.Context(), companyID)
	if err != nil {
		writeServiceError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, collaborations)
}

func (h *CollaborationHandler) listByProject(c *gin.Context) {
	projectID, ok := parseID(c, "id")
	if !ok {
		return
	}
	collaborations, err := h.service.ListByProject(c.Request.Context(), projectID)
	if err != nil {
		writeServiceError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, collaborations)
}

func (h *CollaborationHandler) listByResponsible(c *gin.Context) {
	userID, ok := parseID(c, "id")
	if !ok {
		return
	}
	collaborations, err := h.service.ListByResponsible(c.Request.Context(), userID)
	if err != nil {
		writeServiceError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, collaborations)
}

func (h *CollaborationHandler) get(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	collaboration, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		writeServiceError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, collaboration)
}

func (h *CollaborationHandler) create(c *gin.Context) {
	var candidate models.CollaborationCandidate
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

func (h *CollaborationHandler) update(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var candidate models.CollaborationCandidate
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

func (h *CollaborationHandler) delete(c *gin.Context) {
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
