package models

// RecordingMode says whether the creator intends to shoot one continuous
// take or assemble the video from multiple clips. The zero value means the
// choice has not been made yet.
type RecordingMode string

const (
	RecordingModeUnset  RecordingMode = ""
	RecordingModeSingle RecordingMode = "single"
	RecordingModeMulti  RecordingMode = "multi"
)

// Valid reports whether the mode is one of the settable values. Unset is not
// settable; it only exists as the pre-choice state.
func (m RecordingMode) Valid() bool {
	return m == RecordingModeSingle || m == RecordingModeMulti
}

// SourceMode says whether the creator wants an idea prompt or plans to
// freestyle the script. The zero value means the choice has not been made yet.
type SourceMode string

const (
	SourceModeUnset       SourceMode = ""
	SourceModeInspiration SourceMode = "inspiration"
	SourceModeFreestyle   SourceMode = "freestyle"
)

// Valid reports whether the mode is one of the settable values.
func (m SourceMode) Valid() bool {
	return m == SourceModeInspiration || m == SourceModeFreestyle
}

// Project is the unit of work for one video being assembled. All timestamps
// are epoch milliseconds.
type Project struct {
	ID              string           `json:"id"`
	RecordingMode   RecordingMode    `json:"recording_mode,omitempty"`
	SourceMode      SourceMode       `json:"source_mode,omitempty"`
	SelectedIdea    *Idea            `json:"selected_idea,omitempty"`
	BrainDump       BrainDump        `json:"brain_dump"`
	Clips           []ClipAsset      `json:"clips"`
	BrollPlacements []BrollPlacement `json:"broll_placements"`
	CreatedAt       int64            `json:"created_at"`
	UpdatedAt       int64            `json:"updated_at"`
}

// ProjectState is the application-level aggregate: exactly one active project
// plus the process-wide b-roll library. The library outlives project resets.
type ProjectState struct {
	ActiveProject Project      `json:"active_project"`
	BrollLibrary  []BrollAsset `json:"broll_library"`
}
