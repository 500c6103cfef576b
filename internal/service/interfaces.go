package service

import (
	"context"

	"github.com/MKhiriev/go-cloud-keeper/internal/sets"
	"github.com/MKhiriev/go-cloud-keeper/models"
)

// SetService owns the Sets and Elements of the local account and keeps the
// local cache in step with them.
type SetService interface {
	// LoadCache restores every cached Set and Element. Records that cannot be
	// opened or decoded are deleted and skipped.
	LoadCache(ctx context.Context) error

	// ApplySet merges a snapshot received from the remote authority. The
	// snapshot is consumed: its attribute map may be swapped into the owned
	// Set.
	ApplySet(ctx context.Context, remote *sets.Set) error

	// ApplyElement merges an element snapshot. The owning Set must be known.
	ApplyElement(ctx context.Context, remote *sets.Element) error

	// RemoveSet drops a Set and all of its Elements.
	RemoveSet(ctx context.Context, id models.Handle) error
	RemoveElement(ctx context.Context, setID, id models.Handle) error

	Set(id models.Handle) (*sets.Set, error)
	Sets() []*sets.Set

	// Elements returns the Elements of a Set by ascending order, then id.
	Elements(setID models.Handle) ([]*sets.Element, error)

	// EncryptSetAttrs and EncryptElementAttrs produce the outbound attribute
	// blobs.
	EncryptSetAttrs(id models.Handle) ([]byte, error)
	EncryptElementAttrs(setID, id models.Handle) ([]byte, error)

	// ConsumeChanges returns the pending notifications and resets the change
	// flags.
	ConsumeChanges() []Notification
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}
