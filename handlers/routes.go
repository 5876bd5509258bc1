package handlers

import (
	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
)

// Register mounts all API routes on the app. Kept separate from main so
// tests can run requests against the exact production routing.
func (h *ApplicationHandler) Register(app *fiber.App) {
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"status":  "ok",
			"message": "Creator API is healthy",
		})
	})

	apiV1 := app.Group("/api/v1")

	// State snapshot and change feed
	apiV1.Get("/state", h.GetState)
	apiV1.Use("/state/watch", func(c *fiber.Ctx) error {
		if websocket.IsWebSocketUpgrade(c) {
			return c.Next()
		}
		return fiber.ErrUpgradeRequired
	})
	apiV1.Get("/state/watch", websocket.New(h.WatchState))

	// Active project
	apiV1.Post("/project/reset", h.ResetProject)
	apiV1.Patch("/project/recording-mode", h.SetRecordingMode)
	apiV1.Patch("/project/source-mode", h.SetSourceMode)
	apiV1.Put("/project/idea", h.SetIdea)
	apiV1.Patch("/project/brain-dump", h.SetBrainDump)
	apiV1.Post("/project/clips", h.CreateClip)
	apiV1.Get("/project/clips", h.ListClips)
	apiV1.Post("/project/broll-placements", h.CreateBrollPlacement)
	apiV1.Get("/project/broll-placements", h.ListBrollPlacements)

	// B-roll library (process-wide)
	apiV1.Post("/broll", h.AddBrollAsset)
	apiV1.Get("/broll", h.ListBrollLibrary)

	// Starter idea deck
	apiV1.Get("/ideas", h.ListIdeas)

	// Simulated renders
	apiV1.Post("/renders", h.StartRender)
	apiV1.Get("/renders/:jobId", h.GetRender)
	apiV1.Delete("/renders/:jobId", h.CancelRender)
}
