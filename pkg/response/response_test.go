package response_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/maxviazov/football-stats-service/internal/repository"
	"github.com/maxviazov/football-stats-service/internal/service"
	"github.com/maxviazov/football-stats-service/pkg/response"
)

func TestMapError(t *testing.T) {
	cases := []struct {
		name   string
		err    error
		status int
	}{
		{"nil", nil, http.StatusOK},
		{"invalid input", service.ErrInvalidInput, http.StatusBadRequest},
		{"not found", repository.ErrNotFound, http.StatusNotFound},
		{"already exists", repository.ErrAlreadyExists, http.StatusConflict},
		{"conflict", repository.ErrConflict, http.StatusConflict},
		{"upstream", fmt.Errorf("%w: refused", service.ErrUpstream), http.StatusBadGateway},
		{"unknown", errors.New("boom"), http.StatusInternalServerError},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			status, payload := response.MapError(tc.err)
			if status != tc.status {
				t.Fatalf("expected %d, got %d", tc.status, status)
			}
			if payload.Error == "" {
				t.Fatal("payload must always carry an error string")
			}
		})
	}
}

func TestMapError_WrappedNotFound(t *testing.T) {
	err := fmt.Errorf("loading game: %w", repository.ErrNotFound)
	status, _ := response.MapError(err)
	if status != http.StatusNotFound {
		t.Fatalf("expected wrapped ErrNotFound to map to 404, got %d", status)
	}
}
