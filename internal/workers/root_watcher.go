package workers

import (
	"context"
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/afero"

	"github.com/MKhiriev/go-cloud-keeper/internal/logger"
)

const defaultSettleDelay = 200 * time.Millisecond

// RootWatcher rescans the sync root whenever something below it changes.
// Bursts of events are folded into one rescan once the tree has been quiet
// for the settle delay.
type RootWatcher struct {
	fs        afero.Fs
	root      string
	rescanner Rescanner
	settle    time.Duration
	logger    *logger.Logger

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

func NewRootWatcher(fs afero.Fs, root string, rescanner Rescanner, logger *logger.Logger) *RootWatcher {
	return &RootWatcher{
		fs:        fs,
		root:      root,
		rescanner: rescanner,
		settle:    defaultSettleDelay,
		logger:    logger,
	}
}

// Run stops any previous run and starts watching root and every folder
// below it. fsnotify does not recurse, so folders created later are added
// as they appear.
func (w *RootWatcher) Run(ctx context.Context) {
	w.Stop()

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		w.logger.Err(err).Str("func", "RootWatcher.Run").Msg("failed to create file watcher")
		return
	}
	if err = w.addTree(watcher, w.root); err != nil {
		w.logger.Err(err).Str("func", "RootWatcher.Run").Str("root", w.root).Msg("failed to watch sync root")
		if closeErr := watcher.Close(); closeErr != nil {
			w.logger.Err(closeErr).Str("func", "RootWatcher.Run").Msg("failed to close file watcher")
		}
		return
	}

	w.mu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	w.cancel = cancel
	w.wg.Add(1)
	w.mu.Unlock()

	go func() {
		defer w.wg.Done()
		defer watcher.Close()
		w.loop(jobCtx, watcher)
	}()
}

// Stop ends the running job and waits for it. Safe to call when the job is
// not running.
func (w *RootWatcher) Stop() {
	w.mu.Lock()
	cancel := w.cancel
	w.cancel = nil
	w.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	w.wg.Wait()
}

func (w *RootWatcher) loop(ctx context.Context, watcher *fsnotify.Watcher) {
	settle := time.NewTimer(w.settle)
	settle.Stop()
	defer settle.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case ev, ok := <-watcher.Events:
			if !ok {
				return
			}
			if ev.Op&fsnotify.Create != 0 {
				if fi, err := w.fs.Stat(ev.Name); err == nil && fi.IsDir() {
					if err = w.addTree(watcher, ev.Name); err != nil {
						w.logger.Warn().Err(err).Str("func", "RootWatcher.loop").Str("path", ev.Name).Msg("failed to watch new folder")
					}
				}
			}
			settle.Reset(w.settle)
		case err, ok := <-watcher.Errors:
			if !ok {
				return
			}
			w.logger.Warn().Err(err).Str("func", "RootWatcher.loop").Msg("file watcher error")
		case <-settle.C:
			if err := w.rescanner.Rescan(ctx); err != nil {
				w.logger.Err(err).Str("func", "RootWatcher.loop").Msg("failed to rescan sync root")
			}
		}
	}
}

func (w *RootWatcher) addTree(watcher *fsnotify.Watcher, dir string) error {
	return afero.Walk(w.fs, dir, func(path string, fi os.FileInfo, err error) error {
		if err != nil {
			return fmt.Errorf("walk %s: %w", path, err)
		}
		if !fi.IsDir() {
			return nil
		}
		if err = watcher.Add(path); err != nil {
			return fmt.Errorf("watch %s: %w", path, err)
		}
		return nil
	})
}
