package rules

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIDRegistry_FirstWriterWins(t *testing.T) {
	t.Parallel()

	r := NewIDRegistry()

	owner, claimed := r.Claim("simplicity", "tenets/a.md")
	assert.True(t, claimed)
	assert.Equal(t, "tenets/a.md", owner)

	owner, claimed = r.Claim("simplicity", "tenets/b.md")
	assert.False(t, claimed)
	assert.Equal(t, "tenets/a.md", owner, "registry must keep the original owner")

	got, ok := r.Owner("simplicity")
	assert.True(t, ok)
	assert.Equal(t, "tenets/a.md", got)
}

func TestIDRegistry_ReclaimBySameFile(t *testing.T) {
	t.Parallel()

	r := NewIDRegistry()
	r.Claim("x", "tenets/a.md")

	_, claimed := r.Claim("x", "tenets/a.md")
	assert.True(t, claimed, "the owning file re-claiming its own id is not a duplicate")
}

func TestIDRegistry_ConcurrentClaims(t *testing.T) {
	t.Parallel()

	r := NewIDRegistry()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			r.Claim(fmt.Sprintf("id-%d", i%10), fmt.Sprintf("file-%d.md", i))
		}(i)
	}
	wg.Wait()

	assert.Equal(t, 10, r.Len())
}
