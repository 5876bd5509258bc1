package handlers

import (
	"github.com/gofiber/fiber/v2"

	"reelkit/creator-api/internal/catalog"
	"reelkit/creator-api/utils"
)

// ListIdeas returns the starter idea deck. Each call generates fresh
// identifiers; titles, prompts and categories are fixed.
// GET /api/v1/ideas
func (h *ApplicationHandler) ListIdeas(c *fiber.Ctx) error {
	return utils.RespondWithJSON(c, fiber.StatusOK, catalog.StarterIdeas(h.Idents))
}
