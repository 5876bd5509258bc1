package ident

import (
	"strings"
	"sync"
	"testing"
)

func TestNextContainsPrefix(t *testing.T) {
	g := New()

	for _, prefix := range []string{"project", "clip", "broll", "idea", "place"} {
		id := g.Next(prefix)
		if !strings.HasPrefix(id, prefix+"_") {
			t.Errorf("Next(%q) = %q, want prefix %q", prefix, id, prefix+"_")
		}
	}
}

func TestNextUniqueAtScale(t *testing.T) {
	g := New()

	seen := make(map[string]struct{}, 10000)
	for i := 0; i < 10000; i++ {
		id := g.Next("clip")
		if _, dup := seen[id]; dup {
			t.Fatalf("Next() returned duplicate id %q after %d calls", id, i+1)
		}
		seen[id] = struct{}{}
	}
}

func TestNextUniqueConcurrent(t *testing.T) {
	g := New()

	const workers = 50
	const perWorker = 200

	var mu sync.Mutex
	seen := make(map[string]struct{}, workers*perWorker)

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			local := make([]string, 0, perWorker)
			for i := 0; i < perWorker; i++ {
				local = append(local, g.Next("clip"))
			}
			mu.Lock()
			for _, id := range local {
				seen[id] = struct{}{}
			}
			mu.Unlock()
		}()
	}
	wg.Wait()

	if len(seen) != workers*perWorker {
		t.Errorf("got %d distinct ids, want %d", len(seen), workers*perWorker)
	}
}
