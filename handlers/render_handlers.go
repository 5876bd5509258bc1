package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"reelkit/creator-api/internal/render"
	"reelkit/creator-api/utils"
)

// StartRender kicks off a simulated render of the current project state and
// returns the job handle immediately. Poll GET /renders/:jobId for progress.
// POST /api/v1/renders
func (h *ApplicationHandler) StartRender(c *fiber.Ctx) error {
	job := h.Renderer.Start(h.Store.Snapshot())
	return utils.RespondWithJSON(c, fiber.StatusAccepted, job)
}

// GetRender retrieves the status of a specific render job.
// GET /api/v1/renders/:jobId
func (h *ApplicationHandler) GetRender(c *fiber.Ctx) error {
	jobID := c.Params("jobId")

	job, err := h.Renderer.Get(jobID)
	if err != nil {
		if errors.Is(err, render.ErrJobNotFound) {
			return utils.RespondWithError(c, fiber.StatusNotFound, "Render job not found")
		}
		return utils.RespondWithError(c, fiber.StatusInternalServerError, err.Error())
	}
	return utils.RespondWithJSON(c, fiber.StatusOK, job)
}

// CancelRender cancels an in-flight render job. Cancelling a finished job is
// a no-op and returns the job in its terminal state.
// DELETE /api/v1/renders/:jobId
func (h *ApplicationHandler) CancelRender(c *fiber.Ctx) error {
	jobID := c.Params("jobId")

	job, err := h.Renderer.Cancel(jobID)
	if err != nil {
		if errors.Is(err, render.ErrJobNotFound) {
			return utils.RespondWithError(c, fiber.StatusNotFound, "Render job not found")
		}
		return utils.RespondWithError(c, fiber.StatusInternalServerError, err.Error())
	}
	return utils.RespondWithJSON(c, fiber.StatusOK, job)
}
