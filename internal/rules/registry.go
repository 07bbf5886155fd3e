package rules

import "sync"

// IDRegistry maps document ids to the file that owns them. It is shared by
// every file-validation step of a run; the first file to claim an id owns it
// for the rest of the run.
type IDRegistry struct {
	mu     sync.Mutex
	owners map[string]string
}

// NewIDRegistry returns an empty registry.
func NewIDRegistry() *IDRegistry {
	return &IDRegistry{owners: make(map[string]string)}
}

// Claim registers id as owned by file. When the id is already claimed, Claim
// returns the existing owner's path and false, and the registry is unchanged.
func (r *IDRegistry) Claim(id, file string) (owner string, claimed bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if existing, ok := r.owners[id]; ok {
		return existing, existing == file
	}
	r.owners[id] = file
	return file, true
}

// Owner returns the file owning id, if any.
func (r *IDRegistry) Owner(id string) (string, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	owner, ok := r.owners[id]
	return owner, ok
}

// Len returns the number of claimed ids.
func (r *IDRegistry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.owners)
}
