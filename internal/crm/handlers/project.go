package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/kolab/crm/internal/crm/models"
)

type ProjectController interface {
	Create(ctx context.Context, candidate *models.ProjectCandidate) (*models.Project, error)
	Update(ctx context.Context, id uuid.UUID, candidate *models.ProjectCandidate) (*models.Project, error)
	Delete(ctx context.Context, id uuid.UUID) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Project, error)
	List(ctx context.Context) ([]models.Project, error)
	ListByResponsible(ctx context.Context, userID uuid.UUID) ([]models.Project, error)
}

type ProjectHandler struct {
	service ProjectController
	logger  *zap.Logger
}

func NewProjectHandler(service ProjectController, logger *zap.Logger) *ProjectHandler {
	return &ProjectHandler{service: service, logger: logger.Named("project_handler")}
}

func (h *ProjectHandler) Register(r gin.IRoutes) {
	r.GET("/projects", h.list)
	r.GET("/projects/:id", h.get)
	r.POST("/projects", h.create)
	r.PUT("/projects/:id", h.update)
	r.DELETE("/projects/:id", h.delete)
	r.GET("/users/:id/projects", h.listByResponsible)
}

func (h *ProjectHandler) list(c *gin.Context) {
	projects, err := h.service.List(c.Request.Context())
	if err != nil {
		writeServiceError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, projects)
}

func (h *ProjectHandler) listByResponsible(c *gin.Context) {
	userID, ok := parseID(c, "id")
	if !ok {
		return
	}
	projects, err := h.service.ListByResponsible(c.Request.Context(), userID)
	if err != nil {
		writeServiceError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, projects)
}

func (h *ProjectHandler) get(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	project, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		writeServiceError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, project)
}

func (h *ProjectHandler) create(c *gin.Context) {
	var candidate models.ProjectCandidate
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

func (h *ProjectHandler) update(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var candidate models.ProjectCandidate
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

func (h *ProjectHandler) delete(c *gin.Context) {
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
