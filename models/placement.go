package models

// BrollPlacement binds a library asset to a time range on the active
// project's timeline. BrollID is a weak reference: the placement does not own
// the asset, and readers must tolerate a lookup miss if the asset is ever
// deleted from the library. EndSeconds >= StartSeconds always holds; the
// state container clamps invalid ranges on construction.
type BrollPlacement struct {
	ID           string  `json:"id"`
	BrollID      string  `json:"broll_id"`
	StartSeconds float64 `json:"start_seconds"`
	EndSeconds   float64 `json:"end_seconds"`
	ClipID       *string `json:"clip_id,omitempty"` // Nullable foreign key
}
