package sets

// Changes is a bitmask of the fields of an entity that changed since the
// owner last consumed them.
type Changes uint32

// Set changes.
const (
	ChangeNew Changes = 1 << iota
	ChangeName
	ChangeCover
	ChangeRemoved
)

// Element changes.
const (
	ChangeElementNew Changes = 1 << iota
	ChangeElementName
	ChangeElementOrder
	ChangeElementRemoved
)

// Has reports whether every bit of flag is set in c.
func (c Changes) Has(flag Changes) bool {
	return c&flag == flag
}

type changeTracker struct {
	changes Changes
}

// Changes returns the pending change flags.
func (t *changeTracker) Changes() Changes {
	return t.changes
}

// HasChanges reports whether any change flag is pending.
func (t *changeTracker) HasChanges() bool {
	return t.changes != 0
}

// HasChanged reports whether flag is pending.
func (t *changeTracker) HasChanged(flag Changes) bool {
	return t.changes.Has(flag)
}

// SetChanged marks flag as pending.
func (t *changeTracker) SetChanged(flag Changes) {
	t.changes |= flag
}

// ResetChanges clears all pending flags. The owner calls it after delivering
// the notification.
func (t *changeTracker) ResetChanges() {
	t.changes = 0
}
