package localsync

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"slices"
	"sync"

	"github.com/MKhiriev/go-cloud-keeper/internal/logger"
	"github.com/MKhiriev/go-cloud-keeper/models"
	"github.com/spf13/afero"
)

// Engine owns the syncs and serializes every access to their local trees.
type Engine struct {
	mu    sync.Mutex
	syncs []*Sync

	fs     afero.Fs
	store  StateStore
	logger *logger.Logger
}

func NewEngine(fs afero.Fs, store StateStore, logger *logger.Logger) *Engine {
	return &Engine{
		fs:     fs,
		store:  store,
		logger: logger,
	}
}

// Fs returns the filesystem the syncs are scanned on.
func (e *Engine) Fs() afero.Fs {
	return e.fs
}

// AddSync registers a new sync of localRoot.
func (e *Engine) AddSync(id models.Handle, localRoot string) *Sync {
	e.mu.Lock()
	defer e.mu.Unlock()

	s := NewSync(id, filepath.Clean(localRoot), e.store, e.logger)
	e.syncs = append(e.syncs, s)
	return s
}

// RemoveSync cancels s and unregisters it. Changes not flushed yet are
// dropped.
func (e *Engine) RemoveSync(s *Sync) {
	e.mu.Lock()
	defer e.mu.Unlock()

	s.Cancel()
	e.syncs = slices.DeleteFunc(e.syncs, func(other *Sync) bool { return other == s })
}

// Syncs returns the registered syncs.
func (e *Engine) Syncs() []*Sync {
	e.mu.Lock()
	defer e.mu.Unlock()

	return append([]*Sync(nil), e.syncs...)
}

// Proc runs tp over the subtree of n.
func (e *Engine) Proc(n *LocalNode, tp LocalTreeProcessor) {
	e.mu.Lock()
	defer e.mu.Unlock()

	ProcLocalTree(e.fs, n, tp)
}

// MoveTo reparents n below newParent, which may belong to another sync, and
// returns the number of nodes moved. A child of newParent with the same name
// is replaced and its state cache rows are deleted.
func (e *Engine) MoveTo(n, newParent *LocalNode) (int, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	for p := newParent; p != nil; p = p.Parent {
		if p == n {
			return 0, fmt.Errorf("%w: %s", ErrMoveIntoSubtree, n.LocalPath())
		}
	}

	sameSync := n.Sync == newParent.Sync

	n.detach()
	if displaced, ok := newParent.Children[n.Name]; ok {
		displaced.Sync.forget(displaced)
	}
	n.Parent = newParent
	if newParent.Children == nil {
		newParent.Children = make(map[string]*LocalNode)
	}
	newParent.Children[n.Name] = n

	move := NewMove(newParent.Sync)
	ProcLocalTree(e.fs, n, move)
	if sameSync {
		// only the parent id of n changed
		n.Sync.StateCacheAdd(n)
	}
	ProcLocalTree(e.fs, n, UpdateTransfers{})
	return move.Count(), nil
}

// Load restores the trees of all syncs from their state caches.
func (e *Engine) Load(ctx context.Context) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	for _, s := range e.syncs {
		if err := s.LoadStateCache(ctx); err != nil {
			return err
		}
	}
	return nil
}

// Flush writes the pending state cache changes of all syncs. A failing sync
// does not keep the others from being flushed.
func (e *Engine) Flush(ctx context.Context) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	var errs []error
	for _, s := range e.syncs {
		if err := s.FlushStateCache(ctx); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// Scan brings the tree of s in line with its local folder: new entries are
// added, vanished ones and ones that changed between file and folder are
// forgotten.
func (e *Engine) Scan(s *Sync) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.scanDir(s, s.Root, s.LocalRoot)
}

// Rescan scans every registered sync. A failing sync does not keep the
// others from being scanned.
func (e *Engine) Rescan(ctx context.Context) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	var errs []error
	for _, s := range e.syncs {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := e.scanDir(s, s.Root, s.LocalRoot); err != nil {
			e.logger.Err(err).Str("func", "Engine.Rescan").Stringer("sync_id", s.ID).Msg("failed to scan sync root")
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func (e *Engine) scanDir(s *Sync, dir *LocalNode, path string) error {
	infos, err := afero.ReadDir(e.fs, path)
	if err != nil {
		return fmt.Errorf("scan %s: %w", path, err)
	}

	present := make(map[string]struct{}, len(infos))
	for _, fi := range infos {
		present[fi.Name()] = struct{}{}

		t := models.FileNode
		if fi.IsDir() {
			t = models.FolderNode
		}

		child, ok := dir.Children[fi.Name()]
		if ok && child.Type != t {
			s.forget(child)
			ok = false
		}
		if !ok {
			child = dir.addChild(fi.Name(), t)
			s.StateCacheAdd(child)
		}

		if fi.IsDir() {
			if err = e.scanDir(s, child, filepath.Join(path, fi.Name())); err != nil {
				return err
			}
		}
	}

	for name, child := range dir.Children {
		if _, ok := present[name]; !ok {
			s.forget(child)
		}
	}
	return nil
}
