package render

import (
	"errors"
	"io"
	"testing"
	"time"

	"github.com/sirupsen/logrus"

	"reelkit/creator-api/internal/ident"
	"reelkit/creator-api/models"
)

func testLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func strptr(s string) *string { return &s }

func sampleState() models.ProjectState {
	return models.ProjectState{
		ActiveProject: models.Project{
			ID:           "project_1",
			SelectedIdea: &models.Idea{ID: "idea_1", Title: "Quick myth-bust", Prompt: "p"},
			Clips: []models.ClipAsset{
				{ID: "clip_1", URI: "file:///1.mp4"},
				{ID: "clip_2", URI: "file:///2.mp4"},
			},
			BrollPlacements: []models.BrollPlacement{
				{ID: "place_1", BrollID: "broll_1", StartSeconds: 3, EndSeconds: 7},
				{ID: "place_2", BrollID: "gone", StartSeconds: 0, EndSeconds: 1},
			},
		},
		BrollLibrary: []models.BrollAsset{
			{ID: "broll_1", URI: "file:///b.mp4", Label: strptr("City timelapse")},
			{ID: "broll_2", URI: "file:///c.mp4"},
		},
	}
}

func waitForStatus(t *testing.T, s *Service, id string, want JobStatus) *Job {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		job, err := s.Get(id)
		if err != nil {
			t.Fatalf("Get(%q) error: %v", id, err)
		}
		if job.Status == want {
			return job
		}
		time.Sleep(2 * time.Millisecond)
	}
	t.Fatalf("job %q never reached status %q", id, want)
	return nil
}

func TestStartReturnsGeneratingJob(t *testing.T) {
	s := NewService(ident.New(), time.Second, testLogger())

	job := s.Start(sampleState())
	if job.ID == "" {
		t.Error("job has no id")
	}
	if job.Status != StatusGenerating {
		t.Errorf("status = %q, want %q", job.Status, StatusGenerating)
	}
	if job.CompletedAt != nil {
		t.Error("fresh job already has CompletedAt")
	}
}

func TestJobCompletesAfterDelay(t *testing.T) {
	s := NewService(ident.New(), 5*time.Millisecond, testLogger())

	job := s.Start(sampleState())
	done := waitForStatus(t, s, job.ID, StatusDone)

	if done.CompletedAt == nil {
		t.Error("completed job has no CompletedAt")
	}
}

func TestCancelInFlight(t *testing.T) {
	s := NewService(ident.New(), time.Second, testLogger())

	job := s.Start(sampleState())
	cancelled, err := s.Cancel(job.ID)
	if err != nil {
		t.Fatalf("Cancel error: %v", err)
	}
	if cancelled.Status != StatusCancelled {
		t.Errorf("status = %q, want %q", cancelled.Status, StatusCancelled)
	}
	if cancelled.CompletedAt == nil {
		t.Error("cancelled job has no CompletedAt")
	}

	// The completion path must be a no-op for a cancelled job.
	time.Sleep(10 * time.Millisecond)
	got, err := s.Get(job.ID)
	if err != nil {
		t.Fatalf("Get error: %v", err)
	}
	if got.Status != StatusCancelled {
		t.Errorf("status after delay = %q, want %q", got.Status, StatusCancelled)
	}
}

func TestCancelAfterDoneIsNoOp(t *testing.T) {
	s := NewService(ident.New(), time.Millisecond, testLogger())

	job := s.Start(sampleState())
	waitForStatus(t, s, job.ID, StatusDone)

	got, err := s.Cancel(job.ID)
	if err != nil {
		t.Fatalf("Cancel error: %v", err)
	}
	if got.Status != StatusDone {
		t.Errorf("cancel after completion changed status to %q", got.Status)
	}
}

func TestGetUnknownJob(t *testing.T) {
	s := NewService(ident.New(), time.Second, testLogger())

	if _, err := s.Get("render_missing"); !errors.Is(err, ErrJobNotFound) {
		t.Errorf("Get unknown = %v, want ErrJobNotFound", err)
	}
	if _, err := s.Cancel("render_missing"); !errors.Is(err, ErrJobNotFound) {
		t.Errorf("Cancel unknown = %v, want ErrJobNotFound", err)
	}
}

func TestSummaryResolvesLabelsWithFallback(t *testing.T) {
	s := NewService(ident.New(), time.Second, testLogger())

	job := s.Start(sampleState())
	sum := job.Summary

	if sum.ClipCount != 2 {
		t.Errorf("ClipCount = %d, want 2", sum.ClipCount)
	}
	if sum.IdeaTitle != "Quick myth-bust" {
		t.Errorf("IdeaTitle = %q", sum.IdeaTitle)
	}
	if sum.PlacementCount != 2 {
		t.Errorf("PlacementCount = %d, want 2", sum.PlacementCount)
	}
	if len(sum.Effects) != 3 {
		t.Errorf("Effects = %v, want 3 entries", sum.Effects)
	}

	if len(sum.Broll) != 2 {
		t.Fatalf("Broll = %d entries, want 2", len(sum.Broll))
	}
	if sum.Broll[0].Label != "City timelapse" {
		t.Errorf("Broll[0].Label = %q, want resolved label", sum.Broll[0].Label)
	}
	if sum.Broll[0].Range != "3s-7s" {
		t.Errorf("Broll[0].Range = %q, want 3s-7s", sum.Broll[0].Range)
	}
	// Dangling reference degrades to the fallback label.
	if sum.Broll[1].Label != "B-roll" {
		t.Errorf("Broll[1].Label = %q, want fallback", sum.Broll[1].Label)
	}
}

func TestSummaryFixedAtStart(t *testing.T) {
	s := NewService(ident.New(), time.Second, testLogger())

	state := sampleState()
	job := s.Start(state)

	// Mutating the caller's state after Start must not change the job.
	state.ActiveProject.Clips = append(state.ActiveProject.Clips, models.ClipAsset{ID: "clip_3"})

	got, err := s.Get(job.ID)
	if err != nil {
		t.Fatalf("Get error: %v", err)
	}
	if got.Summary.ClipCount != 2 {
		t.Errorf("ClipCount = %d, want 2", got.Summary.ClipCount)
	}
}
