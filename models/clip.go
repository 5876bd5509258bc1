package models

// ClipAsset is a recorded or imported video reference inside a project.
// The URI is an opaque string handed over by the device media picker; the
// service never validates its format or reachability. CreatedAt is epoch
// milliseconds. Clips are append-only and never mutated once added.
type ClipAsset struct {
	ID        string `json:"id"`
	URI       string `json:"uri"`
	CreatedAt int64  `json:"created_at"`
}
