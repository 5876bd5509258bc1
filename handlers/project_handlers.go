package handlers

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"reelkit/creator-api/internal/store"
	"reelkit/creator-api/models"
	"reelkit/creator-api/utils"
)

// SetRecordingModeRequest defines the expected request body for choosing a
// recording mode.
type SetRecordingModeRequest struct {
	Mode string `json:"mode" validate:"required,oneof=single multi"`
}

// SetSourceModeRequest defines the expected request body for choosing a
// source mode.
type SetSourceModeRequest struct {
	Mode string `json:"mode" validate:"required,oneof=inspiration freestyle"`
}

// SetIdeaRequest defines the expected request body for selecting an idea.
// The id is optional: ideas picked from the catalog carry one, ad-hoc ideas
// get a fresh identifier.
type SetIdeaRequest struct {
	ID       string  `json:"id"`
	Title    string  `json:"title" validate:"required"`
	Prompt   string  `json:"prompt"`
	Category *string `json:"category,omitempty"`
}

// SetRecordingMode godoc
// @Summary Set the recording mode
// @Description Sets the active project's recording mode to single or multi. Re-applying the same mode is idempotent.
// @Tags project
// @Accept  json
// @Produce  json
// @Param   mode body SetRecordingModeRequest true "Recording mode"
// @Success 200 {object} models.Project
// @Failure 400 "Bad request if the mode is missing or not in the closed set"
// @Router /project/recording-mode [patch]
func (h *ApplicationHandler) SetRecordingMode(c *fiber.Ctx) error {
	req := new(SetRecordingModeRequest)
	if err := c.BodyParser(req); err != nil {
		return utils.RespondWithError(c, fiber.StatusBadRequest, fmt.Sprintf("Cannot parse request JSON: %v", err))
	}
	if err := h.validate.Struct(req); err != nil {
		return utils.RespondWithError(c, fiber.StatusBadRequest, h.payloadError(err))
	}

	snap := h.Store.Dispatch(store.SetRecordingMode{Mode: models.RecordingMode(req.Mode)})
	return utils.RespondWithJSON(c, fiber.StatusOK, snap.ActiveProject)
}

// SetSourceMode sets the active project's source mode.
// PATCH /api/v1/project/source-mode
func (h *ApplicationHandler) SetSourceMode(c *fiber.Ctx) error {
	req := new(SetSourceModeRequest)
	if err := c.BodyParser(req); err != nil {
		return utils.RespondWithError(c, fiber.StatusBadRequest, fmt.Sprintf("Cannot parse request JSON: %v", err))
	}
	if err := h.validate.Struct(req); err != nil {
		return utils.RespondWithError(c, fiber.StatusBadRequest, h.payloadError(err))
	}

	snap := h.Store.Dispatch(store.SetSourceMode{Mode: models.SourceMode(req.Mode)})
	return utils.RespondWithJSON(c, fiber.StatusOK, snap.ActiveProject)
}

// SetIdea sets the selected idea on the active project, overwriting any
// prior selection.
// PUT /api/v1/project/idea
func (h *ApplicationHandler) SetIdea(c *fiber.Ctx) error {
	req := new(SetIdeaRequest)
	if err := c.BodyParser(req); err != nil {
		return utils.RespondWithError(c, fiber.StatusBadRequest, fmt.Sprintf("Cannot parse request JSON: %v", err))
	}
	if err := h.validate.Struct(req); err != nil {
		return utils.RespondWithError(c, fiber.StatusBadRequest, h.payloadError(err))
	}

	idea := models.Idea{
		ID:       req.ID,
		Title:    req.Title,
		Prompt:   req.Prompt,
		Category: req.Category,
	}
	if idea.ID == "" {
		idea.ID = h.Idents.Next("idea")
	}

	snap := h.Store.Dispatch(store.SetIdea{Idea: idea})
	return utils.RespondWithJSON(c, fiber.StatusOK, snap.ActiveProject)
}

// SetBrainDump merges the provided fields into the project's brain dump.
// Fields absent from the body keep their current value.
// PATCH /api/v1/project/brain-dump
func (h *ApplicationHandler) SetBrainDump(c *fiber.Ctx) error {
	patch := new(models.BrainDumpPatch)
	if err := c.BodyParser(patch); err != nil {
		return utils.RespondWithError(c, fiber.StatusBadRequest, fmt.Sprintf("Cannot parse request JSON: %v", err))
	}

	snap := h.Store.Dispatch(store.SetBrainDump{Patch: *patch})
	return utils.RespondWithJSON(c, fiber.StatusOK, snap.ActiveProject.BrainDump)
}
