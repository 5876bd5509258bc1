package catalog

import (
	"testing"

	"reelkit/creator-api/internal/ident"
)

func TestStarterIdeasContent(t *testing.T) {
	ideas := StarterIdeas(ident.New())

	if len(ideas) != 4 {
		t.Fatalf("StarterIdeas() returned %d ideas, want 4", len(ideas))
	}

	wantTitles := []string{
		"3 mistakes beginners make",
		"My honest workflow",
		"If I started over…",
		"Quick myth-bust",
	}
	for i, want := range wantTitles {
		if ideas[i].Title != want {
			t.Errorf("ideas[%d].Title = %q, want %q", i, ideas[i].Title, want)
		}
		if ideas[i].Prompt == "" {
			t.Errorf("ideas[%d].Prompt is empty", i)
		}
		if ideas[i].Category == nil {
			t.Errorf("ideas[%d].Category is nil", i)
		}
	}
}

func TestStarterIdeasFreshIdentifiers(t *testing.T) {
	ids := ident.New()
	first := StarterIdeas(ids)
	second := StarterIdeas(ids)

	seen := make(map[string]struct{})
	for _, idea := range append(first, second...) {
		if _, dup := seen[idea.ID]; dup {
			t.Fatalf("duplicate idea id %q across catalog calls", idea.ID)
		}
		seen[idea.ID] = struct{}{}
	}

	for i := range first {
		if first[i].Title != second[i].Title || first[i].Prompt != second[i].Prompt {
			t.Errorf("catalog content differs between calls at index %d", i)
		}
	}
}
