package store

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-cloud-keeper/models"
)

const (
	putCacheRecord = `INSERT INTO cache_records (kind, id, parent, data)
		VALUES (?, ?, ?, ?)
		ON CONFLICT (kind, parent, id) DO UPDATE SET data = excluded.data;`

	deleteCacheRecord = `DELETE FROM cache_records
		WHERE kind = ? AND id = ? AND parent = ?;`

	deleteElementsOfSet = `DELETE FROM cache_records
		WHERE kind = ? AND parent = ?;`

	getAllCacheRecords = `SELECT kind, id, parent, data
		FROM cache_records
		ORDER BY kind, parent, id;`
)

const localNodeStatesTable = "local_node_states"

var sqlite = sq.StatementBuilder.PlaceholderFormat(sq.Question)

// handles are stored as signed integers; sqlite has no unsigned 64-bit type
func toDBHandle(h models.Handle) int64 { return int64(h) }

func fromDBHandle(v int64) models.Handle { return models.Handle(v) }

func buildUpsertLocalNodeQuery(_ context.Context, state models.LocalNodeState) (string, []any, error) {
	query, args, err := sqlite.
		Insert(localNodeStatesTable).
		Columns("sync_id", "dbid", "parent_dbid", "name", "node_handle", "type").
		Values(
			toDBHandle(state.SyncID),
			state.DBID,
			state.ParentDBID,
			state.Name,
			int64(state.NodeHandle),
			int(state.Type),
		).
		Suffix("ON CONFLICT (sync_id, dbid) DO UPDATE SET " +
			"parent_dbid = excluded.parent_dbid, name = excluded.name, " +
			"node_handle = excluded.node_handle, type = excluded.type").
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildDeleteLocalNodesQuery(_ context.Context, syncID models.Handle, dbids []uint32) (string, []any, error) {
	query, args, err := sqlite.
		Delete(localNodeStatesTable).
		Where(sq.Eq{"sync_id": toDBHandle(syncID)}).
		Where(sq.Eq{"dbid": dbids}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildGetLocalNodesQuery(_ context.Context, syncID models.Handle) (string, []any, error) {
	query, args, err := sqlite.
		Select("sync_id", "dbid", "parent_dbid", "name", "node_handle", "type").
		From(localNodeStatesTable).
		Where(sq.Eq{"sync_id": toDBHandle(syncID)}).
		OrderBy("dbid").
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}
