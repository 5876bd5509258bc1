package models

// BrollAsset is a reusable video reference in the process-wide b-roll
// library. It is independent of any single project and survives project
// resets. CreatedAt is epoch milliseconds.
type BrollAsset struct {
	ID        string  `json:"id"`
	URI       string  `json:"uri"`
	Label     *string `json:"label,omitempty"` // Nullable TEXT
	CreatedAt int64   `json:"created_at"`
}
