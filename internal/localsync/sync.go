// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package localsync

import (
	"context"
	"fmt"
	"maps"
	"slices"

	"github.com/MKhiriev/go-cloud-keeper/internal/logger"
	"github.com/MKhiriev/go-cloud-keeper/models"
)

// Sync pairs a local folder with a remote one. Its state cache remembers the
// local tree between runs; changes are queued and written by
// FlushStateCache.
type Sync struct {
	ID        models.Handle
	LocalRoot string

	// Root stands for LocalRoot itself and is never persisted. Its children
	// are stored with parent id 0.
	Root *LocalNode

	insertQ  []*LocalNode
	inserted map[*LocalNode]struct{}
	deleteQ  map[uint32]struct{}
	nextDBID uint32
	canceled bool

	store  StateStore
	logger *logger.Logger
}

// NewSync returns a sync of localRoot with an empty tree.
func NewSync(id models.Handle, localRoot string, store StateStore, logger *logger.Logger) *Sync {
	s := &Sync{
		ID:        id,
		LocalRoot: localRoot,
		inserted:  make(map[*LocalNode]struct{}),
		deleteQ:   make(map[uint32]struct{}),
		store:     store,
		logger:    logger.ForSync(id),
	}
	s.Root = &LocalNode{Sync: s, NodeHandle: models.UndefNodeHandle, Type: models.FolderNode}
	return s
}

// Cancel stops all further state cache bookkeeping.
func (s *Sync) Cancel() {
	s.canceled = true
	s.insertQ = nil
	clear(s.inserted)
	clear(s.deleteQ)
}

// StateCacheAdd queues l for writing. A pending deletion of its id is
// withdrawn.
func (s *Sync) StateCacheAdd(l *LocalNode) {
	if s.canceled || l == s.Root {
		return
	}
	if l.DBID != 0 {
		delete(s.deleteQ, l.DBID)
	}
	if _, ok := s.inserted[l]; ok {
		return
	}
	s.inserted[l] = struct{}{}
	s.insertQ = append(s.insertQ, l)
}

// StateCacheDel withdraws a pending write of l and, if l was persisted,
// queues the deletion of its row.
func (s *Sync) StateCacheDel(l *LocalNode) {
	if s.canceled || l == s.Root {
		return
	}
	delete(s.inserted, l)
	if l.DBID != 0 {
		s.deleteQ[l.DBID] = struct{}{}
	}
}

// Pending returns the number of queued writes and deletions.
func (s *Sync) Pending() (inserts, deletes int) {
	return len(s.inserted), len(s.deleteQ)
}

// FlushStateCache writes the queued changes. Rows are deleted first, then
// nodes are written parents first so that every written node refers to a
// persisted parent. Nodes whose parent never got an id stay queued. On a
// store error the queues are kept for the next flush.
func (s *Sync) FlushStateCache(ctx context.Context) error {
	if s.canceled {
		return nil
	}

	if len(s.deleteQ) > 0 {
		dbids := slices.Sorted(maps.Keys(s.deleteQ))
		if err := s.store.DeleteLocalNodes(ctx, s.ID, dbids); err != nil {
			s.logger.Err(err).Str("func", "Sync.FlushStateCache").Msg("failed to delete local nodes")
			return fmt.Errorf("delete %d local nodes: %w", len(dbids), err)
		}
		clear(s.deleteQ)
	}

	pending := make([]*LocalNode, 0, len(s.inserted))
	for _, l := range s.insertQ {
		if _, ok := s.inserted[l]; ok {
			pending = append(pending, l)
		}
	}
	if len(pending) == 0 {
		s.insertQ = nil
		return nil
	}

	var (
		batch   []models.LocalNodeState
		written []*LocalNode
	)
	nextDBID := s.nextDBID
	assigned := make(map[*LocalNode]uint32)
	for progress := true; progress; {
		progress = false
		rest := pending[:0]
		for _, l := range pending {
			if l.Parent == nil {
				delete(s.inserted, l)
				continue
			}
			if l.Parent != s.Root && l.Parent.DBID == 0 && assigned[l.Parent] == 0 {
				rest = append(rest, l)
				continue
			}
			if l.DBID == 0 && assigned[l] == 0 {
				nextDBID++
				assigned[l] = nextDBID
			}
			written = append(written, l)
			progress = true
		}
		pending = rest
	}

	for _, l := range written {
		st := l.state()
		if id, ok := assigned[l]; ok {
			st.DBID = id
		}
		if id, ok := assigned[l.Parent]; ok {
			st.ParentDBID = id
		}
		batch = append(batch, st)
	}

	if len(batch) > 0 {
		if err := s.store.SaveLocalNodes(ctx, batch); err != nil {
			s.logger.Err(err).Str("func", "Sync.FlushStateCache").Msg("failed to save local nodes")
			return fmt.Errorf("save %d local nodes: %w", len(batch), err)
		}
	}

	for l, id := range assigned {
		l.DBID = id
	}
	s.nextDBID = nextDBID
	for _, l := range written {
		delete(s.inserted, l)
	}
	s.insertQ = pending
	if len(pending) > 0 {
		s.logger.Warn().Str("func", "Sync.FlushStateCache").Int("orphans", len(pending)).Msg("local nodes without persisted parent")
	}

	s.logger.Debug().Str("func", "Sync.FlushStateCache").Int("saved", len(batch)).Msg("state cache flushed")
	return nil
}

// LoadStateCache rebuilds the tree below Root from the state cache. Rows
// whose parent is missing are queued for deletion.
func (s *Sync) LoadStateCache(ctx context.Context) error {
	states, err := s.store.GetLocalNodes(ctx, s.ID)
	if err != nil {
		return fmt.Errorf("load state cache of sync %s: %w", s.ID, err)
	}

	byDBID := map[uint32]*LocalNode{0: s.Root}
	for progress := true; progress && len(states) > 0; {
		progress = false
		rest := states[:0]
		for _, st := range states {
			parent, ok := byDBID[st.ParentDBID]
			if !ok {
				rest = append(rest, st)
				continue
			}
			l := parent.addChild(st.Name, st.Type)
			l.NodeHandle = st.NodeHandle
			l.DBID = st.DBID
			byDBID[st.DBID] = l
			s.nextDBID = max(s.nextDBID, st.DBID)
			progress = true
		}
		states = rest
	}

	for _, st := range states {
		s.deleteQ[st.DBID] = struct{}{}
		s.nextDBID = max(s.nextDBID, st.DBID)
	}
	if len(states) > 0 {
		s.logger.Warn().Str("func", "Sync.LoadStateCache").Int("orphans", len(states)).Msg("dropping orphaned local nodes")
	}
	return nil
}

// forget removes the subtree of l from the tree and the state cache.
func (s *Sync) forget(l *LocalNode) {
	for _, child := range l.Children {
		s.forget(child)
	}
	s.StateCacheDel(l)
	l.detach()
}
