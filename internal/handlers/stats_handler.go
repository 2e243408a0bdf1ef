package handlers

import (
	"log"

	"katalog/internal/services"

	"github.com/gofiber/fiber/v2"
)

// StatsHandler handles HTTP requests for the admin dashboard aggregates.
type StatsHandler struct {
	service *services.StatsService
}

// NewStatsHandler creates a new StatsHandler.
func NewStatsHandler(service *services.StatsService) *StatsHandler {
	return &StatsHandler{
		service: service,
	}
}

// RegisterAdminRoutes registers the stats route.
func (h *StatsHandler) RegisterAdminRoutes(router fiber.Router) {
	router.Get("/stats", h.HandleGetStats)
}

// HandleGetStats returns catalog counts and the recent login mix.
func (h *StatsHandler) HandleGetStats(c *fiber.Ctx) error {
	stats, err := h.service.GetStats(callerID(c))
	if err != nil {
		log.Printf("Error computing stats: %v", err)
		return serviceError(c, err)
	}
	return c.JSON(stats)
}
