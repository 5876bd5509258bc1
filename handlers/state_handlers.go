package handlers

import (
	"strings"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"

	"reelkit/creator-api/internal/store"
	"reelkit/creator-api/models"
	"reelkit/creator-api/utils"
)

// GetState returns the full current state snapshot.
// GET /api/v1/state
func (h *ApplicationHandler) GetState(c *fiber.Ctx) error {
	return utils.RespondWithJSON(c, fiber.StatusOK, h.Store.Snapshot())
}

// ResetProject discards the active project and starts a fresh one. The b-roll
// library is left untouched.
// POST /api/v1/project/reset
func (h *ApplicationHandler) ResetProject(c *fiber.Ctx) error {
	snap := h.Store.Dispatch(store.Reset{})
	h.Logger.WithField("project_id", snap.ActiveProject.ID).Info("Project reset")
	return utils.RespondWithJSON(c, fiber.StatusOK, snap.ActiveProject)
}

// WatchState pushes a state snapshot over the WebSocket connection after
// every applied action, starting with the current one. The connection is a
// one-way feed; inbound messages are read only to detect the client closing.
func (h *ApplicationHandler) WatchState(c *websocket.Conn) {
	updates := make(chan models.ProjectState, 8)
	unsubscribe := h.Store.Subscribe(func(st models.ProjectState) {
		select {
		case updates <- st:
		default:
			// Slow consumer: drop this update, the next one carries the
			// full state anyway.
		}
	})
	defer unsubscribe()

	if err := c.WriteJSON(h.Store.Snapshot()); err != nil {
		return
	}

	done := make(chan struct{})
	go func() {
		defer close(done)
		for {
			if _, _, err := c.ReadMessage(); err != nil {
				return
			}
		}
	}()

	for {
		select {
		case st := <-updates:
			if err := c.WriteJSON(st); err != nil {
				return
			}
		case <-done:
			return
		}
	}
}

// payloadError formats a validation failure into one message string.
func (h *ApplicationHandler) payloadError(err error) string {
	return strings.Join(utils.FormatValidationErrors(err), "; ")
}
