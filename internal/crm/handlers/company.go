package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/kolab/crm/internal/crm/models"
)

type CompanyController interface {
	Create(ctx context.Context, candidate *models.CompanyCandidate) (*models.Company, error)
	Update(ctx context.Context, id uuid.UUID, candidate *models.CompanyCandidate) (*models.Company, error)
	Delete(ctx context.Context, id uuid.UUID) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Company, error)
	List(ctx context.Context) ([]models.Company, error)
}

type CompanyHandler struct {
	service CompanyController
	logger  *zap.Logger
}

func NewCompanyHandler(service CompanyController, logger *zap.Logger) *CompanyHandler {
	return &CompanyHandler{service: service, logger: logger.Named("company_handler")}
}

func (h *CompanyHandler) Register(r gin.IRoutes) {
	r.GET("/companies", h.list)
	r.GET("/companies/:id", h.get)
	r.POST("/companies", h.create)
	r.PUT("/companies/:id", h.update)
	r.DELETE("/companies/:id", h.delete)
}

func (h *CompanyHandler) list(c *gin.Context) {
	companies, err := h.service.List(c.Request.Context())
	if err != nil {
		writeServiceError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, companies)
}

func (h *CompanyHandler) get(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	company, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		writeServiceError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, company)
}

func (h *CompanyHandler) create(c *gin.Context) {
	var candidate models.CompanyCandidate
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

func (h *CompanyHandler) update(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var candidate models.CompanyCandidate
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

func (h *CompanyHandler) delete(c *gin.Context) {
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
