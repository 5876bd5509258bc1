package handlers

import (
	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"

	"reelkit/creator-api/internal/ident"
	"reelkit/creator-api/internal/render"
	"reelkit/creator-api/internal/store"
	"reelkit/creator-api/models"
)

// RenderService defines the operations handlers expect from the render
// subsystem. This allows for decoupling and easier testing; the concrete
// implementation lives in internal/render.
type RenderService interface {
	Start(state models.ProjectState) *render.Job
	Get(id string) (*render.Job, error)
	Cancel(id string) (*render.Job, error)
}

// ApplicationHandler holds shared dependencies for handlers.
type ApplicationHandler struct {
	Store    *store.Store
	Renderer RenderService
	Idents   *ident.Generator
	Logger   *logrus.Logger

	validate *validator.Validate
}

// NewApplicationHandler creates a new ApplicationHandler with the given
// dependencies.
func NewApplicationHandler(st *store.Store, renderer RenderService, ids *ident.Generator, logger *logrus.Logger) *ApplicationHandler {
	return &ApplicationHandler{
		Store:    st,
		Renderer: renderer,
		Idents:   ids,
		Logger:   logger,
		validate: validator.New(),
	}
}
