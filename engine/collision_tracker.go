package engine

// CollisionTracker remembers which obstacles the ball overlapped on the previous tick,
// so a response fires once per contact instead of every tick the overlap persists
type CollisionTracker struct {
	active map[string]bool
}

// NewCollisionTracker creates an empty tracker
func NewCollisionTracker() *CollisionTracker {
	return &CollisionTracker{active: make(map[string]bool)}
}

// Observe records the overlap state for id and reports whether this is a new contact
func (ct *CollisionTracker) Observe(id string, overlapping bool) bool {
	if !overlapping {
		delete(ct.active, id)
		return false
	}
	if ct.active[id] {
		return false
	}
	ct.active[id] = true
	return true
}

// IsActive reports whether id is currently in contact
func (ct *CollisionTracker) IsActive(id string) bool {
	return ct.active[id]
}

// Reset forgets all contacts
func (ct *CollisionTracker) Reset() {
	clear(ct.active)
}
