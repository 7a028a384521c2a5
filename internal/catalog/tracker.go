package catalog

import (
	"github.com/JaimeStill/ern-portal/pkg/routing"
	"go.uber.org/atomic"
)

// Tracker counts page hits per route. The counter set is fixed when the
// tracker is created, so reads and increments need no lock.
type Tracker struct {
	hits map[string]*atomic.Int64
}

// NewTracker creates a zeroed counter for every route in table.
func NewTracker(table *routing.Table) *Tracker {
	hits := make(map[string]*atomic.Int64, table.Len())
	for _, route := range table.Routes() {
		hits[route.Name] = atomic.NewInt64(0)
	}
	return &Tracker{hits: hits}
}

// Record increments the counter for name. Unknown names are ignored.
func (t *Tracker) Record(name string) {
	if c, ok := t.hits[name]; ok {
		c.Inc()
	}
}

// Hits returns the current count for name.
func (t *Tracker) Hits(name string) int64 {
	if c, ok := t.hits[name]; ok {
		return c.Load()
	}
	return 0
}

// Snapshot returns a point-in-time copy of every counter.
func (t *Tracker) Snapshot() map[string]int64 {
	out := make(map[string]int64, len(t.hits))
	for name, c := range t.hits {
		out[name] = c.Load()
	}
	return out
}
