package store

import "reelkit/creator-api/models"

// Action is the closed set of state transitions the container accepts. Each
// variant carries its own payload; Dispatch applies exactly one of them. An
// Action value the reducer does not recognize is a no-op, so clients built
// against a newer action set degrade to identity transitions instead of
// corrupting state.
type Action interface {
	isAction()
}

// Reset discards the active project and replaces it with a freshly
// initialized one. The b-roll library is untouched.
type Reset struct{}

// SetRecordingMode sets the active project's recording mode.
type SetRecordingMode struct {
	Mode models.RecordingMode
}

// SetSourceMode sets the active project's source mode.
type SetSourceMode struct {
	Mode models.SourceMode
}

// SetIdea sets the selected idea, overwriting any prior selection. The
// project keeps its own copy of the idea.
type SetIdea struct {
	Idea models.Idea
}

// SetBrainDump merges the provided fields into the existing brain dump,
// leaving unspecified fields untouched.
type SetBrainDump struct {
	Patch models.BrainDumpPatch
}

// AddClip appends a fully-formed clip to the active project.
type AddClip struct {
	Clip models.ClipAsset
}

// AddBrollToLibrary prepends a fully-formed asset to the process-wide
// library. This is a library mutation, not a project mutation.
type AddBrollToLibrary struct {
	Asset models.BrollAsset
}

// AddBrollPlacement constructs a new placement with a fresh identifier and
// prepends it to the active project's placements. Out-of-order or negative
// ranges are clamped by the reducer, never trusted from the caller.
type AddBrollPlacement struct {
	BrollID      string
	StartSeconds float64
	EndSeconds   float64
	ClipID       *string
}

func (Reset) isAction()             {}
func (SetRecordingMode) isAction()  {}
func (SetSourceMode) isAction()     {}
func (SetIdea) isAction()           {}
func (SetBrainDump) isAction()      {}
func (AddClip) isAction()           {}
func (AddBrollToLibrary) isAction() {}
func (AddBrollPlacement) isAction() {}
