// Package ident issues process-unique string identifiers tagged with a short
// entity-kind prefix ("project", "clip", "broll", "idea", "place") so that
// ids stay readable in logs and API responses.
package ident

import (
	"fmt"
	"strings"
	"sync/atomic"

	"github.com/google/uuid"
)

// Generator combines a monotonically increasing counter with a random
// component. The counter alone guarantees uniqueness within the process; the
// random tail keeps ids from colliding across restarts of a client that
// cached earlier ones. Safe for concurrent use. Next never fails.
type Generator struct {
	counter atomic.Uint64
}

// New returns a Generator starting from zero.
func New() *Generator {
	return &Generator{}
}

// Next returns a fresh identifier of the form "<prefix>_<n>_<rand>".
func (g *Generator) Next(prefix string) string {
	n := g.counter.Add(1)
	tail := strings.ReplaceAll(uuid.NewString(), "-", "")[:8]
	return fmt.Sprintf("%s_%d_%s", prefix, n, tail)
}
