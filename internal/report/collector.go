package report

import "sync"

// Collector is an append-only, concurrency-safe accumulator of validation
// errors. One Collector is shared by all per-file validation steps of a run
// and read once the run completes. Clear resets it for reuse.
type Collector struct {
	mu     sync.Mutex
	errors []ValidationError
}

// NewCollector returns an empty Collector.
func NewCollector() *Collector {
	return &Collector{}
}

// Add appends one error record. File, Kind, and Message are mandatory;
// omitting any of them is a programmer error and panics rather than
// producing a silent half-empty record.
func (c *Collector) Add(err ValidationError) {
	if err.File == "" {
		panic("report: Add called without a file")
	}
	if err.Kind == "" {
		panic("report: Add called without an error kind")
	}
	if err.Message == "" {
		panic("report: Add called without a message")
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.errors = append(c.errors, err)
}

// Count returns the number of collected errors.
func (c *Collector) Count() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.errors)
}

// Any reports whether at least one error has been collected.
func (c *Collector) Any() bool {
	return c.Count() > 0
}

// Errors returns a snapshot of the collected errors in insertion order.
// Each call returns a fresh slice; mutating it never affects the collector.
func (c *Collector) Errors() []ValidationError {
	c.mu.Lock()
	defer c.mu.Unlock()
	snapshot := make([]ValidationError, len(c.errors))
	copy(snapshot, c.errors)
	return snapshot
}

// Clear empties the collector. Safe to call on an empty collector; the
// collector remains usable afterwards.
func (c *Collector) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.errors = nil
}
