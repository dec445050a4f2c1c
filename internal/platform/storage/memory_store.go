package storage

import (
	"context"
	"sync"
	"time"

	"portfolio_api/internal/common"
	"portfolio_api/internal/domain/model"
)

// MemoryStore is the in-memory counterpart of FileStore, with identical
// semantics: shallow merge on update, identifier preservation, time-derived
// ids. Records are normalized on every mutation and copied on every read,
// so callers never observe shared or non-JSON values.
type MemoryStore struct {
	name    string
	mu      sync.Mutex
	records []model.Record

	// Now is the identifier clock. Tests override it to control ids and
	// avoid same-millisecond collisions.
	Now func() time.Time
}

func NewMemoryStore(name string) *MemoryStore {
	return &MemoryStore{
		name:    name,
		records: []model.Record{},
		Now:     time.Now,
	}
}

func (s *MemoryStore) List(ctx context.Context) ([]model.Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]model.Record, 0, len(s.records))
	for _, rec := range s.records {
		cp, err := model.Normalize(rec)
		if err != nil {
			return nil, &common.StoreError{Op: "read", Collection: s.name, Err: err}
		}
		out = append(out, cp)
	}
	return out, nil
}

func (s *MemoryStore) Get(ctx context.Context, id int64) (model.Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, rec := range s.records {
		if recID, ok := rec.ID(); ok && recID == id {
			cp, err := model.Normalize(rec)
			if err != nil {
				return nil, &common.StoreError{Op: "read", Collection: s.name, Err: err}
			}
			return cp, nil
		}
	}
	return nil, common.ErrNotFound
}

func (s *MemoryStore) Insert(ctx context.Context, fields model.Record) (model.Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec := model.Record{}
	for k, v := range fields {
		rec[k] = v
	}
	rec["id"] = s.Now().UnixMilli()

	rec, err := model.Normalize(rec)
	if err != nil {
		return nil, &common.StoreError{Op: "insert", Collection: s.name, Err: err}
	}
	s.records = append(s.records, rec)
	return rec, nil
}

func (s *MemoryStore) Update(ctx context.Context, id int64, partial model.Record) (model.Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, rec := range s.records {
		recID, ok := rec.ID()
		if !ok || recID != id {
			continue
		}
		merged, err := mergeRecord(rec, partial)
		if err != nil {
			return nil, &common.StoreError{Op: "update", Collection: s.name, Err: err}
		}
		s.records[i] = merged
		return merged, nil
	}
	return nil, common.ErrNotFound
}

func (s *MemoryStore) Delete(ctx context.Context, id int64) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, rec := range s.records {
		if recID, ok := rec.ID(); ok && recID == id {
			s.records = append(s.records[:i], s.records[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}
