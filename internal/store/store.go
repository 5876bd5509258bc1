// Package store owns the single source of truth for the creation workflow:
// one active project plus the b-roll library. All mutation goes through
// Dispatch, which applies a pure reducer under a single-writer lock, so every
// observer sees a state strictly before or after an action, never a
// partially-applied one.
package store

import (
	"math"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"reelkit/creator-api/internal/ident"
	"reelkit/creator-api/models"
)

// Store holds the ProjectState and notifies subscribers after every applied
// action. Construct it with New and pass it by handle; there is no package
// level instance.
type Store struct {
	mu    sync.RWMutex
	state models.ProjectState

	ids    *ident.Generator
	now    func() int64
	logger *logrus.Logger

	subMu   sync.Mutex
	subs    map[int]func(models.ProjectState)
	nextSub int
}

// New creates a Store with a freshly initialized project and an empty b-roll
// library. Both dependencies are required; constructing handlers around a nil
// Store is a programmer error and fails immediately rather than at first use.
func New(ids *ident.Generator, logger *logrus.Logger) *Store {
	if ids == nil {
		panic("store: nil ident.Generator")
	}
	if logger == nil {
		panic("store: nil logger")
	}
	s := &Store{
		ids:    ids,
		now:    func() int64 { return time.Now().UnixMilli() },
		logger: logger,
		subs:   make(map[int]func(models.ProjectState)),
	}
	s.state = models.ProjectState{
		ActiveProject: s.newProject(),
		BrollLibrary:  []models.BrollAsset{},
	}
	return s
}

func (s *Store) newProject() models.Project {
	ts := s.now()
	return models.Project{
		ID:              s.ids.Next("project"),
		BrainDump:       models.BrainDump{},
		Clips:           []models.ClipAsset{},
		BrollPlacements: []models.BrollPlacement{},
		CreatedAt:       ts,
		UpdatedAt:       ts,
	}
}

// Dispatch applies one action and returns the resulting snapshot. Actions are
// serialized by the write lock; subscribers are notified outside it, each
// with its own copy of the new state.
func (s *Store) Dispatch(a Action) models.ProjectState {
	s.mu.Lock()
	s.state = s.reduce(s.state, a)
	snap := cloneState(s.state)
	s.mu.Unlock()

	s.notify(snap)
	return snap
}

// Snapshot returns a deep copy of the current state. Mutating the returned
// value has no effect on the store.
func (s *Store) Snapshot() models.ProjectState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneState(s.state)
}

// Subscribe registers fn to be called with a snapshot after every applied
// action. The returned function cancels the subscription.
func (s *Store) Subscribe(fn func(models.ProjectState)) func() {
	s.subMu.Lock()
	id := s.nextSub
	s.nextSub++
	s.subs[id] = fn
	s.subMu.Unlock()

	return func() {
		s.subMu.Lock()
		delete(s.subs, id)
		s.subMu.Unlock()
	}
}

func (s *Store) notify(snap models.ProjectState) {
	s.subMu.Lock()
	fns := make([]func(models.ProjectState), 0, len(s.subs))
	for _, fn := range s.subs {
		fns = append(fns, fn)
	}
	s.subMu.Unlock()

	for _, fn := range fns {
		fn(cloneState(snap))
	}
}

// reduce is a pure function from (state, action) to the next state. It never
// mutates its input in place and never fails: invalid numeric input is
// clamped and unrecognized actions return the state unchanged.
func (s *Store) reduce(st models.ProjectState, a Action) models.ProjectState {
	switch act := a.(type) {
	case Reset:
		st.ActiveProject = s.newProject()
		return st

	case SetRecordingMode:
		st.ActiveProject.RecordingMode = act.Mode
		st.ActiveProject.UpdatedAt = s.now()
		return st

	case SetSourceMode:
		st.ActiveProject.SourceMode = act.Mode
		st.ActiveProject.UpdatedAt = s.now()
		return st

	case SetIdea:
		idea := act.Idea
		st.ActiveProject.SelectedIdea = &idea
		st.ActiveProject.UpdatedAt = s.now()
		return st

	case SetBrainDump:
		st.ActiveProject.BrainDump = st.ActiveProject.BrainDump.Merge(act.Patch)
		st.ActiveProject.UpdatedAt = s.now()
		return st

	case AddClip:
		clips := make([]models.ClipAsset, 0, len(st.ActiveProject.Clips)+1)
		clips = append(clips, st.ActiveProject.Clips...)
		clips = append(clips, act.Clip)
		st.ActiveProject.Clips = clips
		st.ActiveProject.UpdatedAt = s.now()
		return st

	case AddBrollToLibrary:
		lib := make([]models.BrollAsset, 0, len(st.BrollLibrary)+1)
		lib = append(lib, act.Asset)
		lib = append(lib, st.BrollLibrary...)
		st.BrollLibrary = lib
		return st

	case AddBrollPlacement:
		start, end := clampRange(act.StartSeconds, act.EndSeconds)
		placement := models.BrollPlacement{
			ID:           s.ids.Next("place"),
			BrollID:      act.BrollID,
			StartSeconds: start,
			EndSeconds:   end,
			ClipID:       act.ClipID,
		}
		placements := make([]models.BrollPlacement, 0, len(st.ActiveProject.BrollPlacements)+1)
		placements = append(placements, placement)
		placements = append(placements, st.ActiveProject.BrollPlacements...)
		st.ActiveProject.BrollPlacements = placements
		st.ActiveProject.UpdatedAt = s.now()
		return st

	default:
		s.logger.WithField("action", a).Warn("Unknown action ignored")
		return st
	}
}

// clampRange normalizes a placement time range so EndSeconds >= StartSeconds
// always holds: non-finite or negative starts become 0, and an end before the
// start becomes start+1. The policy lives here, centrally, so no call site
// can produce an inverted range.
func clampRange(start, end float64) (float64, float64) {
	if math.IsNaN(start) || math.IsInf(start, 0) || start < 0 {
		start = 0
	}
	if math.IsNaN(end) || math.IsInf(end, 0) || end < start {
		end = start + 1
	}
	return start, end
}

func cloneState(st models.ProjectState) models.ProjectState {
	out := st
	out.ActiveProject = cloneProject(st.ActiveProject)
	out.BrollLibrary = make([]models.BrollAsset, len(st.BrollLibrary))
	for i, b := range st.BrollLibrary {
		out.BrollLibrary[i] = cloneBrollAsset(b)
	}
	return out
}

func cloneProject(p models.Project) models.Project {
	out := p
	if p.SelectedIdea != nil {
		idea := *p.SelectedIdea
		idea.Category = cloneStringPtr(p.SelectedIdea.Category)
		out.SelectedIdea = &idea
	}
	out.Clips = make([]models.ClipAsset, len(p.Clips))
	copy(out.Clips, p.Clips)
	out.BrollPlacements = make([]models.BrollPlacement, len(p.BrollPlacements))
	for i, pl := range p.BrollPlacements {
		pl.ClipID = cloneStringPtr(pl.ClipID)
		out.BrollPlacements[i] = pl
	}
	return out
}

func cloneBrollAsset(b models.BrollAsset) models.BrollAsset {
	b.Label = cloneStringPtr(b.Label)
	return b
}

func cloneStringPtr(p *string) *string {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}
