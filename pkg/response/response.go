// Package response centralizes HTTP response shapes and helpers.
// Handlers rely on it to keep controllers thin and uniform. The shapes
// mirror what existing dashboard clients already parse: errors carry an
// "error" string, mutations carry a {"success":true} envelope.
package response

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/maxviazov/football-stats-service/internal/repository"
	"github.com/maxviazov/football-stats-service/internal/service"
)

// ErrorPayload is the canonical error envelope returned by the API.
type ErrorPayload struct {
	Error       string               `json:"error"`
	FieldErrors []service.FieldError `json:"field_errors,omitempty"`
}

// Mutation is the envelope returned by successful writes.
type Mutation struct {
	Success bool   `json:"success"`
	ID      int64  `json:"id,omitempty"`
	Message string `json:"message,omitempty"`
}

// MapError converts a domain / infrastructure error into an HTTP status and payload.
// Extend here as new domain error categories emerge.
func MapError(err error) (int, ErrorPayload) {
	if err == nil {
		return http.StatusOK, ErrorPayload{Error: "ok"}
	}

	if errors.Is(err, service.ErrInvalidInput) {
		return http.StatusBadRequest, ErrorPayload{
			Error:       "Invalid input",
			FieldErrors: service.FieldErrors(err),
		}
	}

	switch {
	case errors.Is(err, repository.ErrNotFound):
		return http.StatusNotFound, ErrorPayload{Error: "Record not found or no changes made"}
	case errors.Is(err, repository.ErrAlreadyExists):
		return http.StatusConflict, ErrorPayload{Error: "Record already exists"}
	case errors.Is(err, repository.ErrConflict):
		return http.StatusConflict, ErrorPayload{Error: "Operation conflicts with existing records"}
	case errors.Is(err, service.ErrUpstream):
		return http.StatusBadGateway, ErrorPayload{Error: err.Error()}
	default:
		return http.StatusInternalServerError, ErrorPayload{Error: "Internal server error"}
	}
}

// WriteError writes an error response and aborts the context.
func WriteError(c *gin.Context, err error) {
	status, payload := MapError(err)
	c.AbortWithStatusJSON(status, payload)
}

// WriteData writes a successful JSON response.
func WriteData(c *gin.Context, status int, data any) {
	c.JSON(status, data)
}

// WriteCreated writes the envelope for a successful insert.
func WriteCreated(c *gin.Context, id int64, message string) {
	c.JSON(http.StatusCreated, Mutation{Success: true, ID: id, Message: message})
}

// WriteMutation writes the envelope for a successful update or delete.
func WriteMutation(c *gin.Context, message string) {
	c.JSON(http.StatusOK, Mutation{Success: true, Message: message})
}
