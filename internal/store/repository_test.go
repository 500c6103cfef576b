package store

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-cloud-keeper/internal/logger"
	"github.com/MKhiriev/go-cloud-keeper/models"
)

func newTestDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db, mock
}

func newDBFromSQL(db *sql.DB) *DB {
	return &DB{
		DB:     db,
		logger: logger.Nop(),
	}
}

func testContext() context.Context {
	l := zerolog.Nop()
	return l.WithContext(context.Background())
}

var errDB = errors.New("db is gone")

// ── CacheRecordRepository ─────────────────────────────────────────────────────

func TestCacheRecordRepository_PutRecord(t *testing.T) {
	record := models.CacheRecord{
		Kind:   models.ElementRecord,
		ID:     0x10,
		Parent: 0x20,
		Data:   []byte{0xde, 0xad},
	}

	tests := []struct {
		name    string
		setup   func(mock sqlmock.Sqlmock)
		wantErr error
	}{
		{
			name: "success",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(regexp.QuoteMeta("INSERT INTO cache_records")).
					WithArgs(int64(models.ElementRecord), int64(0x10), int64(0x20), []byte{0xde, 0xad}).
					WillReturnResult(sqlmock.NewResult(0, 1))
			},
		},
		{
			name: "exec error",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(regexp.QuoteMeta("INSERT INTO cache_records")).
					WillReturnError(errDB)
			},
			wantErr: ErrExecutingStatement,
		},
		{
			name: "no rows affected",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(regexp.QuoteMeta("INSERT INTO cache_records")).
					WillReturnResult(sqlmock.NewResult(0, 0))
			},
			wantErr: ErrRecordNotSaved,
		},
		{
			name: "rows affected error",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(regexp.QuoteMeta("INSERT INTO cache_records")).
					WillReturnResult(sqlmock.NewErrorResult(errDB))
			},
			wantErr: ErrExecutingStatement,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock := newTestDB(t)
			tt.setup(mock)
			repo := NewCacheRecordRepository(newDBFromSQL(db), logger.Nop())

			err := repo.PutRecord(testContext(), record)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestCacheRecordRepository_PutRecord_UndefParent(t *testing.T) {
	db, mock := newTestDB(t)
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO cache_records")).
		WithArgs(int64(models.SetRecord), int64(7), int64(-1), []byte{1}).
		WillReturnResult(sqlmock.NewResult(0, 1))

	repo := NewCacheRecordRepository(newDBFromSQL(db), logger.Nop())
	err := repo.PutRecord(testContext(), models.CacheRecord{
		Kind: models.SetRecord, ID: 7, Parent: models.UndefHandle, Data: []byte{1},
	})

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCacheRecordRepository_DeleteRecord(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		db, mock := newTestDB(t)
		mock.ExpectExec(regexp.QuoteMeta("DELETE FROM cache_records")).
			WithArgs(int64(models.SetRecord), int64(5), int64(-1)).
			WillReturnResult(sqlmock.NewResult(0, 1))

		repo := NewCacheRecordRepository(newDBFromSQL(db), logger.Nop())
		require.NoError(t, repo.DeleteRecord(testContext(), models.SetRecord, 5, models.UndefHandle))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("missing row is fine", func(t *testing.T) {
		db, mock := newTestDB(t)
		mock.ExpectExec(regexp.QuoteMeta("DELETE FROM cache_records")).
			WillReturnResult(sqlmock.NewResult(0, 0))

		repo := NewCacheRecordRepository(newDBFromSQL(db), logger.Nop())
		require.NoError(t, repo.DeleteRecord(testContext(), models.ElementRecord, 5, 6))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("exec error", func(t *testing.T) {
		db, mock := newTestDB(t)
		mock.ExpectExec(regexp.QuoteMeta("DELETE FROM cache_records")).
			WillReturnError(errDB)

		repo := NewCacheRecordRepository(newDBFromSQL(db), logger.Nop())
		err := repo.DeleteRecord(testContext(), models.ElementRecord, 5, 6)
		assert.ErrorIs(t, err, ErrExecutingStatement)
		assert.ErrorIs(t, err, errDB)
	})
}

func TestCacheRecordRepository_DeleteElementsOfSet(t *testing.T) {
	db, mock := newTestDB(t)
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM cache_records")).
		WithArgs(int64(models.ElementRecord), int64(9)).
		WillReturnResult(sqlmock.NewResult(0, 3))

	repo := NewCacheRecordRepository(newDBFromSQL(db), logger.Nop())
	require.NoError(t, repo.DeleteElementsOfSet(testContext(), 9))
	assert.NoError(t, mock.ExpectationsWereMet())

	db2, mock2 := newTestDB(t)
	mock2.ExpectExec(regexp.QuoteMeta("DELETE FROM cache_records")).WillReturnError(errDB)
	repo = NewCacheRecordRepository(newDBFromSQL(db2), logger.Nop())
	assert.ErrorIs(t, repo.DeleteElementsOfSet(testContext(), 9), ErrExecutingStatement)
}

func TestCacheRecordRepository_GetAllRecords(t *testing.T) {
	columns := []string{"kind", "id", "parent", "data"}

	t.Run("success", func(t *testing.T) {
		db, mock := newTestDB(t)
		rows := sqlmock.NewRows(columns).
			AddRow(int64(models.SetRecord), int64(1), int64(-1), []byte{1}).
			AddRow(int64(models.ElementRecord), int64(2), int64(1), []byte{2, 3})
		mock.ExpectQuery(regexp.QuoteMeta(getAllCacheRecords)).WillReturnRows(rows)

		repo := NewCacheRecordRepository(newDBFromSQL(db), logger.Nop())
		got, err := repo.GetAllRecords(testContext())

		require.NoError(t, err)
		assert.Equal(t, []models.CacheRecord{
			{Kind: models.SetRecord, ID: 1, Parent: models.UndefHandle, Data: []byte{1}},
			{Kind: models.ElementRecord, ID: 2, Parent: 1, Data: []byte{2, 3}},
		}, got)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("empty", func(t *testing.T) {
		db, mock := newTestDB(t)
		mock.ExpectQuery(regexp.QuoteMeta(getAllCacheRecords)).WillReturnRows(sqlmock.NewRows(columns))

		repo := NewCacheRecordRepository(newDBFromSQL(db), logger.Nop())
		got, err := repo.GetAllRecords(testContext())

		require.NoError(t, err)
		assert.Empty(t, got)
	})

	t.Run("query error", func(t *testing.T) {
		db, mock := newTestDB(t)
		mock.ExpectQuery(regexp.QuoteMeta(getAllCacheRecords)).WillReturnError(errDB)

		repo := NewCacheRecordRepository(newDBFromSQL(db), logger.Nop())
		_, err := repo.GetAllRecords(testContext())

		assert.ErrorIs(t, err, ErrExecutingQuery)
	})

	t.Run("scan error", func(t *testing.T) {
		db, mock := newTestDB(t)
		rows := sqlmock.NewRows(columns).AddRow("not-a-number", int64(1), int64(-1), []byte{1})
		mock.ExpectQuery(regexp.QuoteMeta(getAllCacheRecords)).WillReturnRows(rows)

		repo := NewCacheRecordRepository(newDBFromSQL(db), logger.Nop())
		_, err := repo.GetAllRecords(testContext())

		assert.ErrorIs(t, err, ErrScanningRows)
	})

	t.Run("row error", func(t *testing.T) {
		db, mock := newTestDB(t)
		rows := sqlmock.NewRows(columns).
			AddRow(int64(models.SetRecord), int64(1), int64(-1), []byte{1}).
			RowError(0, errDB)
		mock.ExpectQuery(regexp.QuoteMeta(getAllCacheRecords)).WillReturnRows(rows)

		repo := NewCacheRecordRepository(newDBFromSQL(db), logger.Nop())
		_, err := repo.GetAllRecords(testContext())

		assert.ErrorIs(t, err, ErrScanningRows)
	})
}

// ── LocalNodeStateRepository ──────────────────────────────────────────────────

func testStates() []models.LocalNodeState {
	return []models.LocalNodeState{
		{SyncID: 3, DBID: 1, ParentDBID: 0, Name: "docs", NodeHandle: 0x0a, Type: models.FolderNode},
		{SyncID: 3, DBID: 2, ParentDBID: 1, Name: "a.txt", NodeHandle: 0x0b, Type: models.FileNode},
	}
}

func TestLocalNodeStateRepository_SaveLocalNodes(t *testing.T) {
	t.Run("empty batch does nothing", func(t *testing.T) {
		db, mock := newTestDB(t)
		repo := NewLocalNodeStateRepository(newDBFromSQL(db), logger.Nop())

		require.NoError(t, repo.SaveLocalNodes(testContext(), nil))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("success", func(t *testing.T) {
		db, mock := newTestDB(t)
		mock.ExpectBegin()
		for _, s := range testStates() {
			mock.ExpectExec(regexp.QuoteMeta("INSERT INTO local_node_states")).
				WithArgs(int64(s.SyncID), int64(s.DBID), int64(s.ParentDBID), s.Name, int64(s.NodeHandle), int64(s.Type)).
				WillReturnResult(sqlmock.NewResult(0, 1))
		}
		mock.ExpectCommit()

		repo := NewLocalNodeStateRepository(newDBFromSQL(db), logger.Nop())
		require.NoError(t, repo.SaveLocalNodes(testContext(), testStates()))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("begin error", func(t *testing.T) {
		db, mock := newTestDB(t)
		mock.ExpectBegin().WillReturnError(errDB)

		repo := NewLocalNodeStateRepository(newDBFromSQL(db), logger.Nop())
		err := repo.SaveLocalNodes(testContext(), testStates())
		assert.ErrorIs(t, err, ErrBeginningTransaction)
	})

	t.Run("exec error rolls back", func(t *testing.T) {
		db, mock := newTestDB(t)
		mock.ExpectBegin()
		mock.ExpectExec(regexp.QuoteMeta("INSERT INTO local_node_states")).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectExec(regexp.QuoteMeta("INSERT INTO local_node_states")).
			WillReturnError(errDB)
		mock.ExpectRollback()

		repo := NewLocalNodeStateRepository(newDBFromSQL(db), logger.Nop())
		err := repo.SaveLocalNodes(testContext(), testStates())

		assert.ErrorIs(t, err, ErrLocalNodeStateNotSaved)
		assert.ErrorIs(t, err, errDB)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("commit error", func(t *testing.T) {
		db, mock := newTestDB(t)
		mock.ExpectBegin()
		mock.ExpectExec(regexp.QuoteMeta("INSERT INTO local_node_states")).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectExec(regexp.QuoteMeta("INSERT INTO local_node_states")).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit().WillReturnError(errDB)

		repo := NewLocalNodeStateRepository(newDBFromSQL(db), logger.Nop())
		err := repo.SaveLocalNodes(testContext(), testStates())

		assert.ErrorIs(t, err, ErrCommitingTransaction)
	})
}

func TestLocalNodeStateRepository_DeleteLocalNodes(t *testing.T) {
	t.Run("no ids", func(t *testing.T) {
		db, mock := newTestDB(t)
		repo := NewLocalNodeStateRepository(newDBFromSQL(db), logger.Nop())

		require.NoError(t, repo.DeleteLocalNodes(testContext(), 3, nil))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("success", func(t *testing.T) {
		db, mock := newTestDB(t)
		mock.ExpectExec(regexp.QuoteMeta("DELETE FROM local_node_states WHERE sync_id = ? AND dbid IN (?,?)")).
			WithArgs(int64(3), int64(4), int64(7)).
			WillReturnResult(sqlmock.NewResult(0, 2))

		repo := NewLocalNodeStateRepository(newDBFromSQL(db), logger.Nop())
		require.NoError(t, repo.DeleteLocalNodes(testContext(), 3, []uint32{4, 7}))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("exec error", func(t *testing.T) {
		db, mock := newTestDB(t)
		mock.ExpectExec(regexp.QuoteMeta("DELETE FROM local_node_states")).WillReturnError(errDB)

		repo := NewLocalNodeStateRepository(newDBFromSQL(db), logger.Nop())
		err := repo.DeleteLocalNodes(testContext(), 3, []uint32{4})
		assert.ErrorIs(t, err, ErrExecutingStatement)
	})
}

func TestLocalNodeStateRepository_GetLocalNodes(t *testing.T) {
	columns := []string{"sync_id", "dbid", "parent_dbid", "name", "node_handle", "type"}

	t.Run("success", func(t *testing.T) {
		db, mock := newTestDB(t)
		rows := sqlmock.NewRows(columns)
		for _, s := range testStates() {
			rows.AddRow(int64(s.SyncID), int64(s.DBID), int64(s.ParentDBID), s.Name, int64(s.NodeHandle), int64(s.Type))
		}
		mock.ExpectQuery(regexp.QuoteMeta("FROM local_node_states WHERE sync_id = ?")).
			WithArgs(int64(3)).
			WillReturnRows(rows)

		repo := NewLocalNodeStateRepository(newDBFromSQL(db), logger.Nop())
		got, err := repo.GetLocalNodes(testContext(), 3)

		require.NoError(t, err)
		assert.Equal(t, testStates(), got)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("query error", func(t *testing.T) {
		db, mock := newTestDB(t)
		mock.ExpectQuery(regexp.QuoteMeta("FROM local_node_states")).WillReturnError(errDB)

		repo := NewLocalNodeStateRepository(newDBFromSQL(db), logger.Nop())
		_, err := repo.GetLocalNodes(testContext(), 3)
		assert.ErrorIs(t, err, ErrExecutingQuery)
	})

	t.Run("scan error", func(t *testing.T) {
		db, mock := newTestDB(t)
		rows := sqlmock.NewRows(columns).AddRow(int64(3), "x", int64(0), "n", int64(1), int64(0))
		mock.ExpectQuery(regexp.QuoteMeta("FROM local_node_states")).WillReturnRows(rows)

		repo := NewLocalNodeStateRepository(newDBFromSQL(db), logger.Nop())
		_, err := repo.GetLocalNodes(testContext(), 3)
		assert.ErrorIs(t, err, ErrScanningRows)
	})
}
