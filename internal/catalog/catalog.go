// Package catalog provides the fixed starter idea deck shown during the
// idea-selection flow. It is static content, not a recommendation engine.
package catalog

import (
	"reelkit/creator-api/internal/ident"
	"reelkit/creator-api/models"
)

// StarterIdeas returns the idea deck in its fixed order. Titles, prompts and
// categories are identical across calls; identifiers are freshly generated
// each time, so a deck is never shared between two presentations.
func StarterIdeas(ids *ident.Generator) []models.Idea {
	return []models.Idea{
		{
			ID:       ids.Next("idea"),
			Title:    "3 mistakes beginners make",
			Prompt:   "Explain the top 3 mistakes beginners make and how to fix them.",
			Category: category("Education"),
		},
		{
			ID:       ids.Next("idea"),
			Title:    "My honest workflow",
			Prompt:   "Show your real workflow step-by-step and why you do it that way.",
			Category: category("Behind the scenes"),
		},
		{
			ID:       ids.Next("idea"),
			Title:    "If I started over…",
			Prompt:   "Tell the audience what you would do differently if you started today.",
			Category: category("Advice"),
		},
		{
			ID:       ids.Next("idea"),
			Title:    "Quick myth-bust",
			Prompt:   "Pick a common myth in your niche and debunk it in 20 seconds.",
			Category: category("Education"),
		},
	}
}

func category(s string) *string {
	return &s
}
