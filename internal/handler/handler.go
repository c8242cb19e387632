// Package handler exposes the HTTP surface of the service: the
// table-dispatched compatibility API consumed by existing dashboards,
// plus health probes.
package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/maxviazov/football-stats-service/internal/service"
)

// Register mounts all public routes on the given engine.
// Accepts service layer dependencies for API endpoints.
func Register(r *gin.Engine, repo Pinger, gameSvc service.GameService, playerSvc service.PlayerService, seedSvc service.SeedService) {
	r.Use(CORS())

	h := NewHealthHandler(repo)
	r.GET("/live", h.Liveness)
	r.GET("/ready", h.Readiness)

	// The dashboard API is a single path dispatched on the "table" query
	// parameter; that contract predates this service and stays as is.
	api := NewAPIHandler(gameSvc, playerSvc, seedSvc)
	r.GET(APIPath, api.Get)
	r.POST(APIPath, api.Post)
	r.PUT(APIPath, api.Put)
	r.DELETE(APIPath, api.Delete)
}
