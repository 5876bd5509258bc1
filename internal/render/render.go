// Package render simulates the AI-assisted render step. A render job captures
// a snapshot of the project when it starts, runs for a configurable delay in
// place of the real pipeline (transcription, subtitles, punch-ins, b-roll
// overlay, export), and then completes. Jobs are cancellable: cancelling an
// in-flight job makes its completion path a no-op.
package render

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"reelkit/creator-api/internal/ident"
	"reelkit/creator-api/models"
)

// JobStatus is the lifecycle state of a render job.
type JobStatus string

const (
	StatusGenerating JobStatus = "generating"
	StatusDone       JobStatus = "done"
	StatusCancelled  JobStatus = "cancelled"
)

// ErrJobNotFound is returned when a job id is unknown to the service.
var ErrJobNotFound = errors.New("render: job not found")

// fallbackLabel is shown for a placement whose b-roll asset is missing from
// the library. Placements hold weak references, so a dangling id must degrade
// to this rather than fail.
const fallbackLabel = "B-roll"

// PlacementSummary is one b-roll overlay as it will appear in the rendered
// video.
type PlacementSummary struct {
	PlacementID string `json:"placement_id"`
	Label       string `json:"label"`
	Range       string `json:"range"`
}

// Summary describes what the simulated render would apply.
type Summary struct {
	ClipCount      int                `json:"clip_count"`
	IdeaTitle      string             `json:"idea_title,omitempty"`
	PlacementCount int                `json:"placement_count"`
	Effects        []string           `json:"effects"`
	Broll          []PlacementSummary `json:"broll"`
}

// Job is the handle returned when a render starts. Timestamps are epoch
// milliseconds; CompletedAt is set when the job finishes or is cancelled.
type Job struct {
	ID          string    `json:"id"`
	Status      JobStatus `json:"status"`
	StartedAt   int64     `json:"started_at"`
	CompletedAt *int64    `json:"completed_at,omitempty"`
	Summary     Summary   `json:"summary"`
}

type jobEntry struct {
	job    Job
	cancel context.CancelFunc
}

// Service runs simulated render jobs and tracks their status for later
// lookup. Safe for concurrent use.
type Service struct {
	mu   sync.Mutex
	jobs map[string]*jobEntry

	ids    *ident.Generator
	delay  time.Duration
	now    func() int64
	logger *logrus.Logger
}

// NewService creates a render service whose jobs complete after delay.
func NewService(ids *ident.Generator, delay time.Duration, logger *logrus.Logger) *Service {
	return &Service{
		jobs:   make(map[string]*jobEntry),
		ids:    ids,
		delay:  delay,
		now:    func() int64 { return time.Now().UnixMilli() },
		logger: logger,
	}
}

// Start begins a simulated render of the given state snapshot and returns the
// job handle immediately. The summary is fixed at start time; later state
// changes do not affect a running job.
func (s *Service) Start(state models.ProjectState) *Job {
	ctx, cancel := context.WithCancel(context.Background())
	entry := &jobEntry{
		job: Job{
			ID:        s.ids.Next("render"),
			Status:    StatusGenerating,
			StartedAt: s.now(),
			Summary:   buildSummary(state),
		},
		cancel: cancel,
	}

	s.mu.Lock()
	s.jobs[entry.job.ID] = entry
	s.mu.Unlock()

	s.logger.WithFields(logrus.Fields{
		"job_id":     entry.job.ID,
		"clips":      entry.job.Summary.ClipCount,
		"placements": entry.job.Summary.PlacementCount,
	}).Info("Render job started")

	go s.run(ctx, entry.job.ID)

	out := entry.job
	return &out
}

func (s *Service) run(ctx context.Context, id string) {
	timer := time.NewTimer(s.delay)
	defer timer.Stop()

	select {
	case <-timer.C:
		s.complete(id)
	case <-ctx.Done():
		// Cancel already recorded the terminal status.
	}
}

func (s *Service) complete(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.jobs[id]
	if !ok || entry.job.Status != StatusGenerating {
		return
	}
	ts := s.now()
	entry.job.Status = StatusDone
	entry.job.CompletedAt = &ts
	s.logger.WithField("job_id", id).Info("Render job completed")
}

// Get returns a copy of the job with the given id.
func (s *Service) Get(id string) (*Job, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.jobs[id]
	if !ok {
		return nil, ErrJobNotFound
	}
	out := entry.job
	return &out, nil
}

// Cancel stops an in-flight job. Cancelling a job that already finished is a
// no-op; the job is returned in its terminal state either way.
func (s *Service) Cancel(id string) (*Job, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.jobs[id]
	if !ok {
		return nil, ErrJobNotFound
	}
	if entry.job.Status == StatusGenerating {
		ts := s.now()
		entry.job.Status = StatusCancelled
		entry.job.CompletedAt = &ts
		entry.cancel()
		s.logger.WithField("job_id", id).Info("Render job cancelled")
	}
	out := entry.job
	return &out, nil
}

func buildSummary(state models.ProjectState) Summary {
	labels := make(map[string]string, len(state.BrollLibrary))
	for _, asset := range state.BrollLibrary {
		if asset.Label != nil {
			labels[asset.ID] = *asset.Label
		} else {
			labels[asset.ID] = fallbackLabel
		}
	}

	p := state.ActiveProject
	broll := make([]PlacementSummary, 0, len(p.BrollPlacements))
	for _, pl := range p.BrollPlacements {
		label, ok := labels[pl.BrollID]
		if !ok {
			label = fallbackLabel
		}
		broll = append(broll, PlacementSummary{
			PlacementID: pl.ID,
			Label:       label,
			Range:       fmt.Sprintf("%gs-%gs", pl.StartSeconds, pl.EndSeconds),
		})
	}

	summary := Summary{
		ClipCount:      len(p.Clips),
		PlacementCount: len(p.BrollPlacements),
		Effects: []string{
			"Subtitles (auto-generated)",
			"Zoom in/out punch-ins (auto)",
			"B-roll overlays (from your library)",
		},
		Broll: broll,
	}
	if p.SelectedIdea != nil {
		summary.IdeaTitle = p.SelectedIdea.Title
	}
	return summary
}
