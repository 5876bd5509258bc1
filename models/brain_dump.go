package models

// BrainDump holds the free-text script drafting fields for a project. It has
// no identity of its own; it is a value embedded in Project.
type BrainDump struct {
	Hook      string `json:"hook"`
	KeyPoints string `json:"key_points"`
	CTA       string `json:"cta"`
	Notes     string `json:"notes"`
}

// BrainDumpPatch is a partial BrainDump. We use pointers so that a field that
// was not provided can be told apart from a field explicitly set to "".
type BrainDumpPatch struct {
	Hook      *string `json:"hook,omitempty"`
	KeyPoints *string `json:"key_points,omitempty"`
	CTA       *string `json:"cta,omitempty"`
	Notes     *string `json:"notes,omitempty"`
}

// Merge returns a copy of d with the patch's provided fields applied.
// Unspecified fields keep their current value.
func (d BrainDump) Merge(p BrainDumpPatch) BrainDump {
	if p.Hook != nil {
		d.Hook = *p.Hook
	}
	if p.KeyPoints != nil {
		d.KeyPoints = *p.KeyPoints
	}
	if p.CTA != nil {
		d.CTA = *p.CTA
	}
	if p.Notes != nil {
		d.Notes = *p.Notes
	}
	return d
}
