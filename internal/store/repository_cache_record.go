// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-cloud-keeper/internal/logger"
	"github.com/MKhiriev/go-cloud-keeper/models"
)

// cacheRecordRepository is the SQLite-backed implementation of
// [CacheRecordRepository] over the "cache_records" table.
type cacheRecordRepository struct {
	*DB
	logger *logger.Logger
}

func NewCacheRecordRepository(db *DB, logger *logger.Logger) CacheRecordRepository {
	return &cacheRecordRepository{
		DB:     db,
		logger: logger,
	}
}

// PutRecord inserts the record or replaces the data of the existing row with
// the same (kind, parent, id).
func (c *cacheRecordRepository) PutRecord(ctx context.Context, record models.CacheRecord) error {
	log := logger.FromContext(ctx)

	result, err := c.DB.ExecContext(ctx, putCacheRecord,
		int(record.Kind),
		toDBHandle(record.ID),
		toDBHandle(record.Parent),
		record.Data,
	)
	if err != nil {
		log.Err(err).
			Str("func", "cacheRecordRepository.PutRecord").
			Stringer("kind", record.Kind).
			Stringer("id", record.ID).
			Msg("failed to execute upsert for cache record")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		log.Err(err).
			Str("func", "cacheRecordRepository.PutRecord").
			Msg("failed to get affected rows")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		log.Error().
			Str("func", "cacheRecordRepository.PutRecord").
			Stringer("kind", record.Kind).
			Stringer("id", record.ID).
			Msg("no rows were affected")
		return ErrRecordNotSaved
	}

	return nil
}

// DeleteRecord removes a single record. Deleting a missing record is not an
// error.
func (c *cacheRecordRepository) DeleteRecord(ctx context.Context, kind models.RecordKind, id, parent models.Handle) error {
	log := logger.FromContext(ctx)

	_, err := c.DB.ExecContext(ctx, deleteCacheRecord, int(kind), toDBHandle(id), toDBHandle(parent))
	if err != nil {
		log.Err(err).
			Str("func", "cacheRecordRepository.DeleteRecord").
			Stringer("kind", kind).
			Stringer("id", id).
			Stringer("parent", parent).
			Msg("failed to delete cache record")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

// DeleteElementsOfSet removes every element record owned by setID.
func (c *cacheRecordRepository) DeleteElementsOfSet(ctx context.Context, setID models.Handle) error {
	log := logger.FromContext(ctx)

	_, err := c.DB.ExecContext(ctx, deleteElementsOfSet, int(models.ElementRecord), toDBHandle(setID))
	if err != nil {
		log.Err(err).
			Str("func", "cacheRecordRepository.DeleteElementsOfSet").
			Stringer("set_id", setID).
			Msg("failed to delete element records")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

// GetAllRecords returns all cached records, sets before elements.
func (c *cacheRecordRepository) GetAllRecords(ctx context.Context) ([]models.CacheRecord, error) {
	log := logger.FromContext(ctx)

	rows, err := c.DB.QueryContext(ctx, getAllCacheRecords)
	if err != nil {
		log.Err(err).
			Str("func", "cacheRecordRepository.GetAllRecords").
			Msg("failed to execute query for getting all cache records")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	var records []models.CacheRecord

	for rows.Next() {
		var (
			kind       int
			id, parent int64
			record     models.CacheRecord
		)

		if scanErr := rows.Scan(&kind, &id, &parent, &record.Data); scanErr != nil {
			log.Err(scanErr).
				Str("func", "cacheRecordRepository.GetAllRecords").
				Msg("failed to scan cache record row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, scanErr)
		}

		record.Kind = models.RecordKind(kind)
		record.ID = fromDBHandle(id)
		record.Parent = fromDBHandle(parent)
		records = append(records, record)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", "cacheRecordRepository.GetAllRecords").
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return records, nil
}
