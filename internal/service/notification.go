package service

import (
	"github.com/MKhiriev/go-cloud-keeper/internal/sets"
	"github.com/MKhiriev/go-cloud-keeper/models"
)

// Notification reports pending changes of one Set or Element. For a Set
// ElementID is UndefHandle.
type Notification struct {
	SetID     models.Handle
	ElementID models.Handle
	Changes   sets.Changes
}

// IsElement reports whether n is about an Element.
func (n Notification) IsElement() bool {
	return !n.ElementID.IsUndef()
}

// Removed reports whether the entity is gone.
func (n Notification) Removed() bool {
	if n.IsElement() {
		return n.Changes.Has(sets.ChangeElementRemoved)
	}
	return n.Changes.Has(sets.ChangeRemoved)
}
