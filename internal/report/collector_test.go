package report

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testError(file string) ValidationError {
	return ValidationError{
		File:    file,
		Kind:    KindMissingField,
		Message: "missing required key: id",
	}
}

func TestCollector_AddAndCount(t *testing.T) {
	t.Parallel()

	c := NewCollector()
	assert.Zero(t, c.Count())
	assert.False(t, c.Any())

	c.Add(testError("a.md"))
	c.Add(testError("b.md"))

	assert.Equal(t, 2, c.Count())
	assert.True(t, c.Any())
}

func TestCollector_SnapshotIndependence(t *testing.T) {
	t.Parallel()

	c := NewCollector()
	c.Add(testError("a.md"))

	first := c.Errors()
	second := c.Errors()

	assert.Equal(t, first, second, "snapshots have equal content")

	// Mutating a snapshot never affects the collector.
	first[0].File = "mutated.md"
	assert.Equal(t, "a.md", c.Errors()[0].File)
	assert.Equal(t, 1, c.Count())

	// Appending to a snapshot does not either.
	_ = append(second, testError("c.md"))
	assert.Equal(t, 1, c.Count())
}

func TestCollector_ClearAndReuse(t *testing.T) {
	t.Parallel()

	c := NewCollector()
	c.Clear() // safe on an empty collector

	c.Add(testError("a.md"))
	c.Clear()
	assert.Zero(t, c.Count())
	assert.False(t, c.Any())

	c.Add(testError("b.md"))
	assert.Equal(t, 1, c.Count())
	assert.True(t, c.Any())
}

func TestCollector_PanicsOnProgrammerMisuse(t *testing.T) {
	t.Parallel()

	tests := map[string]ValidationError{
		"missing file":    {Kind: KindMissingField, Message: "m"},
		"missing kind":    {File: "a.md", Message: "m"},
		"missing message": {File: "a.md", Kind: KindMissingField},
	}

	for name, err := range tests {
		err := err
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			c := NewCollector()
			assert.Panics(t, func() { c.Add(err) })
		})
	}
}

func TestCollector_ConcurrentAdds(t *testing.T) {
	t.Parallel()

	c := NewCollector()

	const workers = 8
	const perWorker = 100

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			for i := 0; i < perWorker; i++ {
				c.Add(testError(fmt.Sprintf("w%d-%d.md", w, i)))
			}
		}(w)
	}
	wg.Wait()

	require.Equal(t, workers*perWorker, c.Count(), "no record lost or duplicated")

	seen := make(map[string]bool)
	for _, e := range c.Errors() {
		assert.False(t, seen[e.File], "duplicate record for %s", e.File)
		seen[e.File] = true
	}
}
