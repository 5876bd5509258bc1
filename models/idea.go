package models

// Idea is a content prompt from the starter catalog. Ideas are immutable once
// created; a project holds its own copy of the one it selected.
type Idea struct {
	ID       string  `json:"id"`
	Title    string  `json:"title"`
	Prompt   string  `json:"prompt"`
	Category *string `json:"category,omitempty"` // Nullable TEXT
}
