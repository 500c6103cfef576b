package localsync

import (
	"context"

	"github.com/MKhiriev/go-cloud-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/localsync_mock.go -package=mock

// StateStore persists the state cache of syncs.
type StateStore interface {
	SaveLocalNodes(ctx context.Context, states []models.LocalNodeState) error
	DeleteLocalNodes(ctx context.Context, syncID models.Handle, dbids []uint32) error
	GetLocalNodes(ctx context.Context, syncID models.Handle) ([]models.LocalNodeState, error)
}
