package handlers

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"

	"reelkit/creator-api/internal/store"
	"reelkit/creator-api/models"
	"reelkit/creator-api/utils"
)

// brollFallbackLabel is shown when a placement references an asset that is no
// longer in the library.
const brollFallbackLabel = "B-roll"

// AddBrollRequest defines the expected request body for adding an asset to
// the b-roll library.
type AddBrollRequest struct {
	URI       string  `json:"uri" validate:"required"`
	Label     *string `json:"label,omitempty"`
	CreatedAt *int64  `json:"created_at,omitempty"`
}

// CreatePlacementRequest defines the expected request body for placing a
// b-roll asset on the project timeline. The time range is clamped by the
// state container, so out-of-order input is corrected rather than rejected.
type CreatePlacementRequest struct {
	BrollID      string  `json:"broll_id" validate:"required"`
	StartSeconds float64 `json:"start_seconds"`
	EndSeconds   float64 `json:"end_seconds"`
	ClipID       *string `json:"clip_id,omitempty"`
}

// PlacementView is a placement enriched with the display label of its asset.
// A dangling reference degrades to the fallback label.
type PlacementView struct {
	models.BrollPlacement
	Label string `json:"label"`
}

// AddBrollAsset prepends a new asset to the library. The library is
// process-wide: it is not scoped to the active project and survives resets.
// POST /api/v1/broll
func (h *ApplicationHandler) AddBrollAsset(c *fiber.Ctx) error {
	req := new(AddBrollRequest)
	if err := c.BodyParser(req); err != nil {
		return utils.RespondWithError(c, fiber.StatusBadRequest, fmt.Sprintf("Cannot parse request JSON: %v", err))
	}
	if err := h.validate.Struct(req); err != nil {
		return utils.RespondWithError(c, fiber.StatusBadRequest, h.payloadError(err))
	}

	asset := models.BrollAsset{
		ID:        h.Idents.Next("broll"),
		URI:       req.URI,
		Label:     req.Label,
		CreatedAt: time.Now().UnixMilli(),
	}
	if req.CreatedAt != nil {
		asset.CreatedAt = *req.CreatedAt
	}

	h.Store.Dispatch(store.AddBrollToLibrary{Asset: asset})
	h.Logger.WithField("broll_id", asset.ID).Info("Asset added to b-roll library")

	return utils.RespondWithJSON(c, fiber.StatusCreated, asset)
}

// ListBrollLibrary returns the library, newest first.
// GET /api/v1/broll
func (h *ApplicationHandler) ListBrollLibrary(c *fiber.Ctx) error {
	snap := h.Store.Snapshot()
	return utils.RespondWithJSON(c, fiber.StatusOK, snap.BrollLibrary)
}

// CreateBrollPlacement places a library asset on the active project's
// timeline. The asset id is not checked against the library: placements hold
// weak references by design, and readers resolve them with a fallback.
// POST /api/v1/project/broll-placements
func (h *ApplicationHandler) CreateBrollPlacement(c *fiber.Ctx) error {
	req := new(CreatePlacementRequest)
	if err := c.BodyParser(req); err != nil {
		return utils.RespondWithError(c, fiber.StatusBadRequest, fmt.Sprintf("Cannot parse request JSON: %v", err))
	}
	if err := h.validate.Struct(req); err != nil {
		return utils.RespondWithError(c, fiber.StatusBadRequest, h.payloadError(err))
	}

	snap := h.Store.Dispatch(store.AddBrollPlacement{
		BrollID:      req.BrollID,
		StartSeconds: req.StartSeconds,
		EndSeconds:   req.EndSeconds,
		ClipID:       req.ClipID,
	})

	// The new placement is prepended, so it is the head of the list.
	placement := snap.ActiveProject.BrollPlacements[0]
	h.Logger.WithFields(map[string]interface{}{
		"placement_id": placement.ID,
		"broll_id":     placement.BrollID,
	}).Info("B-roll placement added")

	return utils.RespondWithJSON(c, fiber.StatusCreated, placement)
}

// ListBrollPlacements returns the active project's placements, newest first,
// each with its resolved display label.
// GET /api/v1/project/broll-placements
func (h *ApplicationHandler) ListBrollPlacements(c *fiber.Ctx) error {
	snap := h.Store.Snapshot()

	labels := make(map[string]string, len(snap.BrollLibrary))
	for _, asset := range snap.BrollLibrary {
		if asset.Label != nil {
			labels[asset.ID] = *asset.Label
		} else {
			labels[asset.ID] = brollFallbackLabel
		}
	}

	views := make([]PlacementView, 0, len(snap.ActiveProject.BrollPlacements))
	for _, pl := range snap.ActiveProject.BrollPlacements {
		label, ok := labels[pl.BrollID]
		if !ok {
			label = brollFallbackLabel
		}
		views = append(views, PlacementView{BrollPlacement: pl, Label: label})
	}

	return utils.RespondWithJSON(c, fiber.StatusOK, views)
}
