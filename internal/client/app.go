package client

import (
	"context"
	"fmt"
	"io"

	"github.com/MKhiriev/go-cloud-keeper/internal/config"
	"github.com/MKhiriev/go-cloud-keeper/internal/localsync"
	"github.com/MKhiriev/go-cloud-keeper/internal/logger"
	"github.com/MKhiriev/go-cloud-keeper/internal/service"
	"github.com/MKhiriev/go-cloud-keeper/internal/workers"
)

type App struct {
	services *service.Services
	engine   *localsync.Engine
	cfg      *config.StructuredConfig

	out    io.Writer
	logger *logger.Logger
}

var _ Client = (*App)(nil)

func NewApp(services *service.Services, engine *localsync.Engine, cfg *config.StructuredConfig, out io.Writer, logger *logger.Logger) (*App, error) {
	if services == nil || engine == nil || cfg == nil {
		return nil, ErrAppNotConfigured
	}

	return &App{
		services: services,
		engine:   engine,
		cfg:      cfg,
		out:      out,
		logger:   logger,
	}, nil
}

// Run restores the set cache and prints it. With a configured sync root it
// then scans the local folder and flushes the state cache. In watch mode it
// keeps rescanning on changes until ctx is done.
func (a *App) Run(ctx context.Context) error {
	ctx = a.logger.WithContext(ctx)
	if info := a.services.AppInfoService; info != nil {
		a.logger.Info().Str("version", info.GetAppVersion(ctx)).Msg("starting")
	}

	if err := a.services.SetService.LoadCache(ctx); err != nil {
		return fmt.Errorf("load set cache: %w", err)
	}
	if err := a.printSets(); err != nil {
		return err
	}

	if a.cfg.Sync.LocalRoot == "" {
		return nil
	}
	return a.syncLocalRoot(ctx)
}

func (a *App) printSets() error {
	svc := a.services.SetService

	for _, set := range svc.Sets() {
		elems, err := svc.Elements(set.ID())
		if err != nil {
			return fmt.Errorf("list elements of %s: %w", set.ID(), err)
		}

		fmt.Fprintf(a.out, "set %s %q owner=%s elements=%d", set.ID(), set.Name(), set.User(), len(elems))
		if cover := set.Cover(); !cover.IsUndef() {
			fmt.Fprintf(a.out, " cover=%s", cover)
		}
		fmt.Fprintln(a.out)

		for _, el := range elems {
			fmt.Fprintf(a.out, "  %6d %s %q node=%s\n", el.Order(), el.ID(), el.Name(), el.NodeHandle())
		}
	}
	return nil
}

func (a *App) syncLocalRoot(ctx context.Context) error {
	log := logger.FromContext(ctx)

	s := a.engine.AddSync(a.cfg.AccountHandle(), a.cfg.Sync.LocalRoot)
	defer a.engine.RemoveSync(s)
	if err := a.engine.Load(ctx); err != nil {
		return fmt.Errorf("load state cache: %w", err)
	}
	if err := a.engine.Scan(s); err != nil {
		return fmt.Errorf("scan sync root: %w", err)
	}
	inserts, deletes := s.Pending()

	// the flusher writes the queued changes at the latest when stopped
	jobs := []workers.Worker{workers.NewStateCacheFlusher(a.engine, a.cfg.Workers.FlushInterval, a.logger)}
	if a.cfg.Sync.Watch {
		jobs = append(jobs, workers.NewRootWatcher(a.engine.Fs(), s.LocalRoot, a.engine, a.logger))
	}

	ws := workers.NewWorkers(jobs...)
	ws.Run(ctx)
	if a.cfg.Sync.Watch {
		fmt.Fprintf(a.out, "watching %s\n", s.LocalRoot)
		<-ctx.Done()
	}
	ws.Stop()

	leftInserts, leftDeletes := s.Pending()
	if leftInserts+leftDeletes > 0 {
		log.Warn().
			Str("func", "App.syncLocalRoot").
			Int("inserts", leftInserts).
			Int("deletes", leftDeletes).
			Msg("state cache changes left unflushed")
	}

	fmt.Fprintf(a.out, "sync %s: %d added, %d removed, %d pending\n",
		s.LocalRoot, inserts, deletes, leftInserts+leftDeletes)
	return nil
}
