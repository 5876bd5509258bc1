package handlers

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"

	"reelkit/creator-api/internal/store"
	"reelkit/creator-api/models"
	"reelkit/creator-api/utils"
)

// CreateClipRequest defines the expected request body for adding a clip. The
// URI is whatever the device media picker produced; it is stored opaquely.
// CreatedAt is optional epoch milliseconds, defaulting to the server clock.
type CreateClipRequest struct {
	URI       string `json:"uri" validate:"required"`
	CreatedAt *int64 `json:"created_at,omitempty"`
}

// CreateClip appends a new clip to the active project.
// POST /api/v1/project/clips
func (h *ApplicationHandler) CreateClip(c *fiber.Ctx) error {
	req := new(CreateClipRequest)
	if err := c.BodyParser(req); err != nil {
		return utils.RespondWithError(c, fiber.StatusBadRequest, fmt.Sprintf("Cannot parse request JSON: %v", err))
	}
	if err := h.validate.Struct(req); err != nil {
		return utils.RespondWithError(c, fiber.StatusBadRequest, h.payloadError(err))
	}

	clip := models.ClipAsset{
		ID:        h.Idents.Next("clip"),
		URI:       req.URI,
		CreatedAt: time.Now().UnixMilli(),
	}
	if req.CreatedAt != nil {
		clip.CreatedAt = *req.CreatedAt
	}

	snap := h.Store.Dispatch(store.AddClip{Clip: clip})
	h.Logger.WithFields(map[string]interface{}{
		"clip_id":    clip.ID,
		"clip_count": len(snap.ActiveProject.Clips),
	}).Info("Clip added to project")

	return utils.RespondWithJSON(c, fiber.StatusCreated, clip)
}

// ListClips returns the active project's clips in insertion order.
// GET /api/v1/project/clips
func (h *ApplicationHandler) ListClips(c *fiber.Ctx) error {
	snap := h.Store.Snapshot()
	return utils.RespondWithJSON(c, fiber.StatusOK, snap.ActiveProject.Clips)
}
