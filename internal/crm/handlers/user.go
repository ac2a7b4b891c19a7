package handlers

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/kolab/crm/internal/crm/auth"
	"github.com/kolab/crm/internal/crm/models"
)

// UserController covers user management plus the email lookup the login
// flow resolves identities with.
type UserController interface {
	Create(ctx context.Context, candidate *models.UserCandidate) (*models.User, error)
	Update(ctx context.Context, id uuid.UUID, candidate *models.UserCandidate) (*models.User, error)
	Delete(ctx context.Context, id uuid.UUID) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.User, error)
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	List(ctx context.Context) ([]models.User, error)
}

type UserHandler struct {
	service   UserController
	jwtSecret string
	logger    *zap.Logger
}

func NewUserHandler(service UserController, jwtSecret string, logger *zap.Logger) *UserHandler {
	return &UserHandler{
		service:   service,
		jwtSecret: jwtSecret,
		logger:    logger.Named("user_handler"),
	}
}

func (h *UserHandler) Register(r gin.IRoutes) {
	r.GET("/users", h.list)
	r.GET("/users/:id", h.get)
	r.POST("/users", h.create)
	r.PUT("/users/:id", h.update)
	r.DELETE("/users/:id", h.delete)
	r.POST("/login", h.login)
	r.POST("/login-email", h.loginByEmail)
}

// login resolves the caller's identity from the bearer token's email claim
// and returns the matching user record.
func (h *UserHandler) login(c *gin.Context) {
	token := strings.TrimPrefix(c.GetHeader("Authorization"), "Bearer ")
	if token == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing authorization header"})
		return
	}

	email, err := auth.ExtractEmail(token, h.jwtSecret)
	if err != nil {
		h.logger.Warn("login with invalid token", zap.Error(err))
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid token format"})
		return
	}
	h.lookupByEmail(c, email)
}

// loginByEmail is the unauthenticated fallback used while the frontend is
// not yet issuing tokens. The identity comes straight from the Email header.
func (h *UserHandler) loginByEmail(c *gin.Context) {
	email := c.GetHeader("Email")
	if email == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing email header"})
		return
	}
	h.lookupByEmail(c, email)
}

func (h *UserHandler) lookupByEmail(c *gin.Context, email string) {
	user, err := h.service.FindByEmail(c.Request.Context(), email)
	if err != nil {
		writeServiceError(c, h.logger, err)
		return
	}
	if user == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
		return
	}
	c.JSON(http.StatusOK, user)
}

func (h *UserHandler) list(c *gin.Context) {
	users, err := h.service.List(c.Request.Context())
	if err != nil {
		writeServiceError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, users)
}

func (h *UserHandler) get(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	user, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		writeServiceError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

func (h *UserHandler) create(c *gin.Context) {
	var candidate models.UserCandidate
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

func (h *UserHandler) update(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var candidate models.UserCandidate
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

func (h *UserHandler) delete(c *gin.Context) {
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
