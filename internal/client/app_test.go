package client

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-cloud-keeper/internal/config"
	"github.com/MKhiriev/go-cloud-keeper/internal/crypto"
	"github.com/MKhiriev/go-cloud-keeper/internal/localsync"
	"github.com/MKhiriev/go-cloud-keeper/internal/logger"
	"github.com/MKhiriev/go-cloud-keeper/internal/mock"
	"github.com/MKhiriev/go-cloud-keeper/internal/service"
	"github.com/MKhiriev/go-cloud-keeper/internal/sets"
	"github.com/MKhiriev/go-cloud-keeper/models"
)

var testKey = bytes.Repeat([]byte{7}, 32)

func testConfig(localRoot string) *config.StructuredConfig {
	return &config.StructuredConfig{
		App:     config.App{AccountHandle: "AQIDBAUGBwg", CacheSecret: "s3cret"},
		Storage: config.Storage{DB: config.DB{DSN: ":memory:"}},
		Sync:    config.Sync{LocalRoot: localRoot},
		Workers: config.Workers{FlushInterval: time.Hour},
	}
}

type fixture struct {
	app    *App
	engine *localsync.Engine
	out    *bytes.Buffer
	repo   *mock.MockCacheRecordRepository
	state  *mock.MockStateStore
	svc    service.SetService
	fs     afero.Fs
}

func newFixture(t *testing.T, localRoot string) *fixture {
	t.Helper()
	return newFixtureWithConfig(t, testConfig(localRoot))
}

func newFixtureWithConfig(t *testing.T, cfg *config.StructuredConfig) *fixture {
	t.Helper()
	ctrl := gomock.NewController(t)

	f := &fixture{
		out:   &bytes.Buffer{},
		repo:  mock.NewMockCacheRecordRepository(ctrl),
		state: mock.NewMockStateStore(ctrl),
		fs:    afero.NewMemMapFs(),
	}
	f.svc = service.NewSetService(f.repo, crypto.NewCipher(), testKey, logger.Nop())
	f.engine = localsync.NewEngine(f.fs, f.state, logger.Nop())

	appInfo, err := service.NewAppInfoService(config.App{Version: "1.0.0"}, "", logger.Nop())
	require.NoError(t, err)

	app, err := NewApp(&service.Services{SetService: f.svc, AppInfoService: appInfo}, f.engine, cfg, f.out, logger.Nop())
	require.NoError(t, err)
	f.app = app
	return f
}

func TestNewApp_MissingParts(t *testing.T) {
	_, err := NewApp(nil, nil, nil, &bytes.Buffer{}, logger.Nop())
	assert.ErrorIs(t, err, ErrAppNotConfigured)
}

func TestApp_Run_PrintsSets(t *testing.T) {
	f := newFixture(t, "")
	f.repo.EXPECT().PutRecord(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	f.repo.EXPECT().GetAllRecords(gomock.Any()).Return(nil, nil)

	ctx := context.Background()
	set := sets.NewSet(0x1, testKey, 0x2, map[string]string{sets.NameTag: "Holidays"})
	set.SetCover(0x5)
	require.NoError(t, f.svc.ApplySet(ctx, set))
	el := sets.NewElement(0x1, 0x0a, 0x5, testKey, map[string]string{sets.NameTag: "beach.jpg"})
	el.SetOrder(4)
	require.NoError(t, f.svc.ApplyElement(ctx, el))

	require.NoError(t, f.app.Run(ctx))

	out := f.out.String()
	assert.Contains(t, out, `set `+models.Handle(0x1).String()+` "Holidays"`)
	assert.Contains(t, out, "elements=1")
	assert.Contains(t, out, "cover="+models.Handle(0x5).String())
	assert.Contains(t, out, `"beach.jpg" node=`+models.NodeHandle(0x0a).String())
	assert.NotContains(t, out, "sync ")
}

func TestApp_Run_LoadCacheError(t *testing.T) {
	f := newFixture(t, "")
	f.repo.EXPECT().GetAllRecords(gomock.Any()).Return(nil, errors.New("disk gone"))

	err := f.app.Run(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "load set cache")
}

func TestApp_Run_ScansAndFlushesSyncRoot(t *testing.T) {
	f := newFixture(t, "/sync")
	require.NoError(t, afero.WriteFile(f.fs, "/sync/a.txt", []byte("a"), 0o644))
	require.NoError(t, afero.WriteFile(f.fs, "/sync/photos/b.jpg", []byte("b"), 0o644))

	f.repo.EXPECT().GetAllRecords(gomock.Any()).Return(nil, nil)
	account := models.HandleFromBase64("AQIDBAUGBwg")
	f.state.EXPECT().GetLocalNodes(gomock.Any(), account).Return(nil, nil)

	var saved []models.LocalNodeState
	f.state.EXPECT().SaveLocalNodes(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, states []models.LocalNodeState) error {
			saved = append(saved, states...)
			return nil
		})

	require.NoError(t, f.app.Run(context.Background()))

	require.Len(t, saved, 3)
	names := make([]string, 0, len(saved))
	for _, st := range saved {
		assert.Equal(t, account, st.SyncID)
		names = append(names, st.Name)
	}
	assert.ElementsMatch(t, []string{"a.txt", "photos", "b.jpg"}, names)
	assert.Contains(t, f.out.String(), "sync /sync: 3 added, 0 removed, 0 pending")
	assert.Empty(t, f.engine.Syncs())
}

func TestApp_Run_MissingSyncRoot(t *testing.T) {
	f := newFixture(t, "/nowhere")
	f.repo.EXPECT().GetAllRecords(gomock.Any()).Return(nil, nil)
	f.state.EXPECT().GetLocalNodes(gomock.Any(), gomock.Any()).Return(nil, nil)

	err := f.app.Run(context.Background())
	require.Error(t, err)
	assert.True(t, strings.Contains(err.Error(), "scan sync root"))
	assert.Empty(t, f.engine.Syncs())
}

func TestApp_Run_WatchUntilCanceled(t *testing.T) {
	cfg := testConfig("/sync")
	cfg.Sync.Watch = true
	f := newFixtureWithConfig(t, cfg)
	require.NoError(t, afero.WriteFile(f.fs, "/sync/a.txt", []byte("a"), 0o644))

	f.repo.EXPECT().GetAllRecords(gomock.Any()).Return(nil, nil)
	f.state.EXPECT().GetLocalNodes(gomock.Any(), gomock.Any()).Return(nil, nil)
	f.state.EXPECT().SaveLocalNodes(gomock.Any(), gomock.Len(1)).Return(nil)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	require.NoError(t, f.app.Run(ctx))

	out := f.out.String()
	assert.Contains(t, out, "watching /sync")
	assert.Contains(t, out, "sync /sync: 1 added, 0 removed, 0 pending")
}
