package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/kolab/crm/internal/crm/models"
)

type ContactController interface {
	Create(ctx context.Context, candidate *models.ContactCandidate) (*models.Contact, error)
	Update(ctx context.Context, id uuid.UUID, candidate *models.ContactCandidate) (*models.Contact, error)
	Delete(ctx context.Context, id uuid.UUID) error
	ListByCompany(ctx context.Context, companyID uuid.UUID) ([]models.Contact, error)
}

// ContactHandler serves contacts nested under the company that employs them.
// The company reference always comes from the path, never from the body.
type ContactHandler struct {
	service ContactController
	logger  *zap.Logger
}

func NewContactHandler(service ContactController, logger *zap.Logger) *ContactHandler {
	return &ContactHandler{service: service, logger: logger.Named("contact_handler")}
}

func (h *ContactHandler) Register(r gin.IRoutes) {
	r.GET("/companies/:id/contacts", h.listByCompany)
	r.POST("/companies/:id/contacts", h.create)
	r.PUT("/companies/:id/contacts/:contactId", h.update)
	r.DELETE("/companies/:id/contacts/:contactId", h.delete)
}

func (h *ContactHandler) listByCompany(c *gin.Context) {
	companyID, ok := parseID(c, "id")
	if !ok {
		return
	}
	contacts, err := h.service.ListByCompany(c.Request.Context(), companyID)
	if err != nil {
		writeServiceError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, contacts)
}

func (h *ContactHandler) create(c *gin.Context) {
	companyID, ok := parseID(c, "id")
	if !ok {
		return
	}
	var candidate models.ContactCandidate
	if err := c.ShouldBindJSON(&candidate); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	candidate.CompanyID = &companyID

	created, err := h.service.Create(c.Request.Context(), &candidate)
	if err != nil {
		writeServiceError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (h *ContactHandler) update(c *gin.Context) {
	companyID, ok := parseID(c, "id")
	if !ok {
		return
	}
	contactID, ok := parseID(c, "contactId")
	if !ok {
		return
	}
	var candidate models.ContactCandidate
	if err := c.ShouldBindJSON(&candidate); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	candidate.CompanyID = &companyID

	updated, err := h.service.Update(c.Request.Context(), contactID, &candidate)
	if err != nil {
		writeServiceError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

func (h *ContactHandler) delete(c *gin.Context) {
	if _, ok := parseID(c, "id"); !ok {
		return
	}
	contactID, ok := parseID(c, "contactId")
	if !ok {
		return
	}
	if err := h.service.Delete(c.Request.Context(), contactID); err != nil {
		writeServiceError(c, h.logger, err)
		return
	}
	c.Status(http.StatusOK)
}
