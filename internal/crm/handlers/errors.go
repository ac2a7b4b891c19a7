// Package handlers is the HTTP inbound adapter: it binds JSON requests into
// candidate records, hands them to the entity services and maps service
// errors onto status codes. No business rule lives here.
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	e "github.com/kolab/crm/internal/crm/errors"
)

// writeServiceError maps domain errors to HTTP status codes. Caller errors
// identify the offending field; anything unrecognized is an internal error.
func writeServiceError(c *gin.Context, logger *zap.Logger, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, e.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, e.ErrDuplicateValue):
		status = http.StatusConflict
	case errors.Is(err, e.ErrMissingReference),
		errors.Is(err, e.ErrInvalidReference),
		errors.Is(err, e.ErrValidation):
		status = http.StatusBadRequest
	default:
		logger.Error("Internal server error", zap.Error(err))
		c.JSON(status, gin.H{"error": "internal server error"})
		return
	}

	body := gin.H{"error": err.Error()}
	if fe, ok := e.AsFieldError(err); ok {
		body["field"] = fe.Field
	}
	c.JSON(status, body)
}

func parseID(c *gin.Context, param string) (uuid.UUID, bool) {
	raw := c.Param(param)
	id, err := uuid.Parse(raw)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id: " + raw})
		return uuid.Nil, false
	}
	return id, true
}
