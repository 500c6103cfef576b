// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"maps"
	"slices"
	"sync"

	"github.com/MKhiriev/go-cloud-keeper/internal/crypto"
	"github.com/MKhiriev/go-cloud-keeper/internal/logger"
	"github.com/MKhiriev/go-cloud-keeper/internal/sets"
	"github.com/MKhiriev/go-cloud-keeper/internal/store"
	"github.com/MKhiriev/go-cloud-keeper/internal/validators"
	"github.com/MKhiriev/go-cloud-keeper/models"
)

type setService struct {
	mu       sync.RWMutex
	sets     map[models.Handle]*sets.Set
	elements map[models.Handle]map[models.Handle]*sets.Element

	// removed holds notifications of entities that are no longer owned.
	removed []Notification

	records  store.CacheRecordRepository
	cipher   crypto.Cipher
	cacheKey []byte

	validator validators.Validator
	logger    *logger.Logger
}

// NewSetService returns an empty SetService. cacheKey seals every record
// written through records.
func NewSetService(records store.CacheRecordRepository, cipher crypto.Cipher, cacheKey []byte, logger *logger.Logger) SetService {
	return &setService{
		sets:      make(map[models.Handle]*sets.Set),
		elements:  make(map[models.Handle]map[models.Handle]*sets.Element),
		records:   records,
		cipher:    cipher,
		cacheKey:  cacheKey,
		validator: validators.NewSetValidator(),
		logger:    logger,
	}
}

func (s *setService) LoadCache(ctx context.Context) error {
	log := logger.FromContext(ctx)

	records, err := s.records.GetAllRecords(ctx)
	if err != nil {
		log.Err(err).
			Str("func", "setService.LoadCache").
			Msg("failed to read cache records")
		return fmt.Errorf("load cache records: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	var elementRecords []models.CacheRecord
	for _, rec := range records {
		switch rec.Kind {
		case models.SetRecord:
			set, openErr := s.openSet(rec)
			if openErr != nil {
				s.dropRecord(ctx, rec, openErr)
				continue
			}
			s.sets[set.ID()] = set
			if s.elements[set.ID()] == nil {
				s.elements[set.ID()] = make(map[models.Handle]*sets.Element)
			}
		case models.ElementRecord:
			elementRecords = append(elementRecords, rec)
		default:
			s.dropRecord(ctx, rec, fmt.Errorf("unknown record kind %d", rec.Kind))
		}
	}

	restored := 0
	for _, rec := range elementRecords {
		el, openErr := s.openElement(rec)
		if openErr != nil {
			s.dropRecord(ctx, rec, openErr)
			continue
		}
		elems, ok := s.elements[el.SetID()]
		if !ok {
			s.dropRecord(ctx, rec, fmt.Errorf("%w: %s", ErrSetNotFound, el.SetID()))
			continue
		}
		elems[el.ID()] = el
		restored++
	}

	log.Info().
		Str("func", "setService.LoadCache").
		Int("sets", len(s.sets)).
		Int("elements", restored).
		Msg("set cache loaded")

	return nil
}

func (s *setService) ApplySet(ctx context.Context, remote *sets.Set) error {
	log := logger.FromContext(ctx)

	if err := s.validator.Validate(ctx, remote); err != nil {
		log.Err(err).
			Str("func", "setService.ApplySet").
			Stringer("set_id", remote.ID()).
			Msg("rejected set delta")
		return fmt.Errorf("%w: %w", ErrInvalidDelta, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	set, known := s.sets[remote.ID()]
	if known && remote.Key() == nil {
		remote.SetKey(set.Key())
	}

	if err := remote.DecryptAttributes(s.cipher.DecryptAttrs); err != nil {
		log.Err(err).
			Str("func", "setService.ApplySet").
			Stringer("set_id", remote.ID()).
			Msg("failed to decrypt set attributes")
		return err
	}

	if known {
		set.UpdateWith(remote)
	} else {
		set = remote
		set.SetChanged(sets.ChangeNew)
		s.sets[set.ID()] = set
		s.elements[set.ID()] = make(map[models.Handle]*sets.Element)
	}

	return s.persistSet(ctx, set)
}

func (s *setService) ApplyElement(ctx context.Context, remote *sets.Element) error {
	log := logger.FromContext(ctx)

	if err := s.validator.Validate(ctx, remote); err != nil {
		log.Err(err).
			Str("func", "setService.ApplyElement").
			Stringer("set_id", remote.SetID()).
			Stringer("element_id", remote.ID()).
			Msg("rejected element delta")
		return fmt.Errorf("%w: %w", ErrInvalidDelta, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	elems, ok := s.elements[remote.SetID()]
	if !ok {
		log.Warn().
			Str("func", "setService.ApplyElement").
			Stringer("set_id", remote.SetID()).
			Stringer("element_id", remote.ID()).
			Msg("element of unknown set")
		return fmt.Errorf("%w: %s", ErrSetNotFound, remote.SetID())
	}

	el, known := elems[remote.ID()]
	if known && remote.Key() == nil {
		remote.SetKey(el.Key())
	}

	if err := remote.DecryptAttributes(s.cipher.DecryptAttrs); err != nil {
		log.Err(err).
			Str("func", "setService.ApplyElement").
			Stringer("set_id", remote.SetID()).
			Stringer("element_id", remote.ID()).
			Msg("failed to decrypt element attributes")
		return err
	}

	if known {
		el.UpdateWith(remote)
	} else {
		el = remote
		if !el.HasOrder() {
			el.SetOrder(0)
		}
		el.SetChanged(sets.ChangeElementNew)
		elems[el.ID()] = el
	}

	return s.persistElement(ctx, el)
}

func (s *setService) RemoveSet(ctx context.Context, id models.Handle) error {
	log := logger.FromContext(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()

	set, ok := s.sets[id]
	if !ok {
		return fmt.Errorf("%w: %s", ErrSetNotFound, id)
	}

	delete(s.sets, id)
	delete(s.elements, id)
	s.removed = append(s.removed, Notification{
		SetID:     id,
		ElementID: models.UndefHandle,
		Changes:   set.Changes() | sets.ChangeRemoved,
	})

	err := errors.Join(
		s.records.DeleteElementsOfSet(ctx, id),
		s.records.DeleteRecord(ctx, models.SetRecord, id, models.UndefHandle),
	)
	if err != nil {
		log.Err(err).
			Str("func", "setService.RemoveSet").
			Stringer("set_id", id).
			Msg("failed to remove set from cache")
		return fmt.Errorf("%w: %w", ErrCachePersist, err)
	}

	return nil
}

func (s *setService) RemoveElement(ctx context.Context, setID, id models.Handle) error {
	log := logger.FromContext(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()

	elems, ok := s.elements[setID]
	if !ok {
		return fmt.Errorf("%w: %s", ErrSetNotFound, setID)
	}
	el, ok := elems[id]
	if !ok {
		return fmt.Errorf("%w: %s", ErrElementNotFound, id)
	}

	delete(elems, id)
	s.removed = append(s.removed, Notification{
		SetID:     setID,
		ElementID: id,
		Changes:   el.Changes() | sets.ChangeElementRemoved,
	})

	if err := s.records.DeleteRecord(ctx, models.ElementRecord, id, setID); err != nil {
		log.Err(err).
			Str("func", "setService.RemoveElement").
			Stringer("set_id", setID).
			Stringer("element_id", id).
			Msg("failed to remove element from cache")
		return fmt.Errorf("%w: %w", ErrCachePersist, err)
	}

	return nil
}

func (s *setService) Set(id models.Handle) (*sets.Set, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	set, ok := s.sets[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrSetNotFound, id)
	}
	return set, nil
}

func (s *setService) Sets() []*sets.Set {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*sets.Set, 0, len(s.sets))
	for _, id := range slices.Sorted(maps.Keys(s.sets)) {
		out = append(out, s.sets[id])
	}
	return out
}

func (s *setService) Elements(setID models.Handle) ([]*sets.Element, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	elems, ok := s.elements[setID]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrSetNotFound, setID)
	}

	out := slices.Collect(maps.Values(elems))
	slices.SortFunc(out, func(a, b *sets.Element) int {
		return cmp.Or(cmp.Compare(a.Order(), b.Order()), cmp.Compare(a.ID(), b.ID()))
	})
	return out, nil
}

func (s *setService) EncryptSetAttrs(id models.Handle) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	set, ok := s.sets[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrSetNotFound, id)
	}

	blob, err := set.EncryptAttributes(s.cipher.EncryptAttrs)
	if err != nil {
		s.logger.Err(err).
			Str("func", "setService.EncryptSetAttrs").
			Stringer("set_id", id).
			Msg("failed to encrypt set attributes")
		return nil, fmt.Errorf("encrypt set attributes: %w", err)
	}
	return blob, nil
}

func (s *setService) EncryptElementAttrs(setID, id models.Handle) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	elems, ok := s.elements[setID]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrSetNotFound, setID)
	}
	el, ok := elems[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrElementNotFound, id)
	}

	blob, err := el.EncryptAttributes(s.cipher.EncryptAttrs)
	if err != nil {
		s.logger.Err(err).
			Str("func", "setService.EncryptElementAttrs").
			Stringer("set_id", setID).
			Stringer("element_id", id).
			Msg("failed to encrypt element attributes")
		return nil, fmt.Errorf("encrypt element attributes: %w", err)
	}
	return blob, nil
}

// ConsumeChanges lists removals first, then Sets by id each followed by its
// changed Elements by id.
func (s *setService) ConsumeChanges() []Notification {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := s.removed
	s.removed = nil

	for _, setID := range slices.Sorted(maps.Keys(s.sets)) {
		set := s.sets[setID]
		if set.HasChanges() {
			out = append(out, Notification{SetID: setID, ElementID: models.UndefHandle, Changes: set.Changes()})
			set.ResetChanges()
		}

		elems := s.elements[setID]
		for _, id := range slices.Sorted(maps.Keys(elems)) {
			el := elems[id]
			if !el.HasChanges() {
				continue
			}
			out = append(out, Notification{SetID: setID, ElementID: id, Changes: el.Changes()})
			el.ResetChanges()
		}
	}

	return out
}

func (s *setService) openSet(rec models.CacheRecord) (*sets.Set, error) {
	plain, err := s.cipher.Open(rec.Data, s.cacheKey)
	if err != nil {
		return nil, fmt.Errorf("open set record: %w", err)
	}
	set, err := sets.UnserializeSet(plain)
	if err != nil {
		return nil, err
	}
	if set.ID() != rec.ID {
		return nil, fmt.Errorf("%w: set id %s stored under %s", sets.ErrCorruptRecord, set.ID(), rec.ID)
	}
	return set, nil
}

func (s *setService) openElement(rec models.CacheRecord) (*sets.Element, error) {
	plain, err := s.cipher.Open(rec.Data, s.cacheKey)
	if err != nil {
		return nil, fmt.Errorf("open element record: %w", err)
	}
	el, err := sets.UnserializeElement(plain)
	if err != nil {
		return nil, err
	}
	if el.ID() != rec.ID || el.SetID() != rec.Parent {
		return nil, fmt.Errorf("%w: element %s/%s stored under %s/%s",
			sets.ErrCorruptRecord, el.SetID(), el.ID(), rec.Parent, rec.ID)
	}
	return el, nil
}

func (s *setService) dropRecord(ctx context.Context, rec models.CacheRecord, cause error) {
	log := logger.FromContext(ctx)

	log.Warn().
		Err(cause).
		Str("func", "setService.LoadCache").
		Stringer("kind", rec.Kind).
		Stringer("id", rec.ID).
		Stringer("parent", rec.Parent).
		Msg("dropping unreadable cache record")

	if err := s.records.DeleteRecord(ctx, rec.Kind, rec.ID, rec.Parent); err != nil {
		log.Err(err).
			Str("func", "setService.LoadCache").
			Stringer("id", rec.ID).
			Msg("failed to delete unreadable cache record")
	}
}

func (s *setService) persistSet(ctx context.Context, set *sets.Set) error {
	return s.persist(ctx, models.CacheRecord{
		Kind:   models.SetRecord,
		ID:     set.ID(),
		Parent: models.UndefHandle,
	}, set.Serialize(nil))
}

func (s *setService) persistElement(ctx context.Context, el *sets.Element) error {
	return s.persist(ctx, models.CacheRecord{
		Kind:   models.ElementRecord,
		ID:     el.ID(),
		Parent: el.SetID(),
	}, el.Serialize(nil))
}

func (s *setService) persist(ctx context.Context, rec models.CacheRecord, plain []byte) error {
	log := logger.FromContext(ctx)

	sealed, err := s.cipher.Seal(plain, s.cacheKey)
	if err != nil {
		log.Err(err).
			Str("func", "setService.persist").
			Stringer("kind", rec.Kind).
			Stringer("id", rec.ID).
			Msg("failed to seal cache record")
		return fmt.Errorf("%w: %w", ErrCachePersist, err)
	}
	rec.Data = sealed

	if err = s.records.PutRecord(ctx, rec); err != nil {
		return fmt.Errorf("%w: %w", ErrCachePersist, err)
	}
	return nil
}
