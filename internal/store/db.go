package store

import (
	"context"
	"database/sql"

	"github.com/MKhiriev/go-cloud-keeper/internal/logger"
	"github.com/MKhiriev/go-cloud-keeper/migrations"
)

type DB struct {
	*sql.DB
	logger *logger.Logger
}

func (db *DB) Migrate(ctx context.Context) error {
	applied, err := migrations.Migrate(ctx, db.DB)
	if err != nil {
		db.logger.Err(err).Str("func", "DB.Migrate").Msg("failed to migrate local db")
		return err
	}

	if len(applied) > 0 {
		db.logger.Info().Str("func", "DB.Migrate").Ints64("versions", applied).Msg("migrations applied")
	}
	return nil
}
