package store

import (
	"context"
	"fmt"

	"github.com/spf13/afero"

	"github.com/MKhiriev/go-cloud-keeper/internal/config"
	"github.com/MKhiriev/go-cloud-keeper/internal/logger"
)

// Storages groups the repositories backed by the local SQLite database.
type Storages struct {
	CacheRecords    CacheRecordRepository
	LocalNodeStates LocalNodeStateRepository

	db *DB
}

// NewStorages opens (creating if needed) the SQLite file named by
// cfg.DB.DSN, runs pending migrations and wires the repositories.
func NewStorages(ctx context.Context, fs afero.Fs, cfg config.Storage, logger *logger.Logger) (*Storages, error) {
	logger.Info().Msg("creating new storages...")

	db, err := NewConnectSQLite(ctx, fs, cfg.DB, logger)
	if err != nil {
		return nil, fmt.Errorf("sqlite connection error: %w", err)
	}

	if err = db.Migrate(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return &Storages{
		CacheRecords:    NewCacheRecordRepository(db, logger),
		LocalNodeStates: NewLocalNodeStateRepository(db, logger),
		db:              db,
	}, nil
}

// Close releases the underlying database connection.
func (s *Storages) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}
