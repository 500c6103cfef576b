package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-cloud-keeper/internal/logger"
	"github.com/MKhiriev/go-cloud-keeper/models"
)

type localNodeStateRepository struct {
	*DB
	logger *logger.Logger
}

func NewLocalNodeStateRepository(db *DB, logger *logger.Logger) LocalNodeStateRepository {
	return &localNodeStateRepository{
		DB:     db,
		logger: logger,
	}
}

// SaveLocalNodes upserts the whole batch in one transaction: either every
// state is stored or none is.
func (l *localNodeStateRepository) SaveLocalNodes(ctx context.Context, states []models.LocalNodeState) (err error) {
	log := logger.FromContext(ctx)

	if len(states) == 0 {
		return nil
	}

	tx, err := l.DB.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).
			Str("func", "localNodeStateRepository.SaveLocalNodes").
			Msg("failed to begin transaction")
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer func() {
		if err != nil {
			if rbErr := tx.Rollback(); rbErr != nil {
				err = errors.Join(err, rbErr)
			}
		}
	}()

	for i, state := range states {
		query, args, buildErr := buildUpsertLocalNodeQuery(ctx, state)
		if buildErr != nil {
			log.Err(buildErr).
				Str("func", "localNodeStateRepository.SaveLocalNodes").
				Int("iteration", i).
				Msg("failed to build upsert query")
			return buildErr
		}

		if _, execErr := tx.ExecContext(ctx, query, args...); execErr != nil {
			log.Err(execErr).
				Str("func", "localNodeStateRepository.SaveLocalNodes").
				Stringer("sync_id", state.SyncID).
				Uint32("dbid", state.DBID).
				Msg("failed to upsert local node state")
			return fmt.Errorf("%w: %w: %w", ErrLocalNodeStateNotSaved, ErrExecutingStatement, execErr)
		}
	}

	if err = tx.Commit(); err != nil {
		log.Err(err).
			Str("func", "localNodeStateRepository.SaveLocalNodes").
			Msg("failed to commit transaction")
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	return nil
}

func (l *localNodeStateRepository) DeleteLocalNodes(ctx context.Context, syncID models.Handle, dbids []uint32) error {
	log := logger.FromContext(ctx)

	if len(dbids) == 0 {
		return nil
	}

	query, args, err := buildDeleteLocalNodesQuery(ctx, syncID, dbids)
	if err != nil {
		log.Err(err).
			Str("func", "localNodeStateRepository.DeleteLocalNodes").
			Msg("failed to build delete query")
		return err
	}

	if _, err = l.DB.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).
			Str("func", "localNodeStateRepository.DeleteLocalNodes").
			Stringer("sync_id", syncID).
			Int("count", len(dbids)).
			Msg("failed to delete local node states")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

func (l *localNodeStateRepository) GetLocalNodes(ctx context.Context, syncID models.Handle) ([]models.LocalNodeState, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildGetLocalNodesQuery(ctx, syncID)
	if err != nil {
		log.Err(err).
			Str("func", "localNodeStateRepository.GetLocalNodes").
			Msg("failed to build select query")
		return nil, err
	}

	rows, err := l.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "localNodeStateRepository.GetLocalNodes").
			Stringer("sync_id", syncID).
			Msg("failed to execute query for getting local node states")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	states := make([]models.LocalNodeState, 0, 64)

	for rows.Next() {
		var (
			state             models.LocalNodeState
			dbSyncID, nodeHdl int64
			nodeType          int
		)

		scanErr := rows.Scan(
			&dbSyncID,
			&state.DBID,
			&state.ParentDBID,
			&state.Name,
			&nodeHdl,
			&nodeType,
		)
		if scanErr != nil {
			log.Err(scanErr).
				Str("func", "localNodeStateRepository.GetLocalNodes").
				Msg("failed to scan local node state row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, scanErr)
		}

		state.SyncID = fromDBHandle(dbSyncID)
		state.NodeHandle = models.NodeHandle(nodeHdl)
		state.Type = models.NodeType(nodeType)
		states = append(states, state)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", "localNodeStateRepository.GetLocalNodes").
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return states, nil
}
