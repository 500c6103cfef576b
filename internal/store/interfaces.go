package store

import (
	"context"

	"github.com/MKhiriev/go-cloud-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// CacheRecordRepository persists sealed Set and Element records for fast
// restart. Records are keyed by (kind, parent, id).
type CacheRecordRepository interface {
	PutRecord(ctx context.Context, record models.CacheRecord) error
	DeleteRecord(ctx context.Context, kind models.RecordKind, id, parent models.Handle) error
	DeleteElementsOfSet(ctx context.Context, setID models.Handle) error
	GetAllRecords(ctx context.Context) ([]models.CacheRecord, error)
}

// LocalNodeStateRepository is the state cache of local syncs.
type LocalNodeStateRepository interface {
	SaveLocalNodes(ctx context.Context, states []models.LocalNodeState) error
	DeleteLocalNodes(ctx context.Context, syncID models.Handle, dbids []uint32) error
	GetLocalNodes(ctx context.Context, syncID models.Handle) ([]models.LocalNodeState, error)
}
