// Package storage provides the record store implementations backing the
// resource services: a flat-JSON-file store for production and an in-memory
// twin for tests and ephemeral runs.
package storage

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"sync"
	"time"

	"portfolio_api/internal/common"
	"portfolio_api/internal/domain/model"
)

// FileStore persists one collection as a single JSON array file. Every
// mutation reads the whole file, applies the change and rewrites the whole
// file. A per-store mutex serializes operations so two concurrent mutations
// cannot interleave their read and write phases.
type FileStore struct {
	path string
	name string
	mu   sync.Mutex

	// Now is the identifier clock. Tests override it to control ids and
	// avoid same-millisecond collisions.
	Now func() time.Time
}

// NewFileStore creates a store backed by the JSON array file at path. The
// file is lazily initialized to an empty collection on first read.
func NewFileStore(path string) *FileStore {
	return &FileStore{
		path: path,
		name: collectionName(path),
		Now:  time.Now,
	}
}

func collectionName(path string) string {
	base := filepath.Base(path)
	if ext := filepath.Ext(base); ext != "" {
		base = base[:len(base)-len(ext)]
	}
	return base
}

func (s *FileStore) List(ctx context.Context) ([]model.Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.readAll()
}

func (s *FileStore) Get(ctx context.Context, id int64) (model.Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	records, err := s.readAll()
	if err != nil {
		return nil, err
	}
	for _, rec := range records {
		if recID, ok := rec.ID(); ok && recID == id {
			return rec, nil
		}
	}
	return nil, common.ErrNotFound
}

func (s *FileStore) Insert(ctx context.Context, fields model.Record) (model.Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	records, err := s.readAll()
	if err != nil {
		return nil, err
	}

	rec := model.Record{}
	for k, v := range fields {
		rec[k] = v
	}
	rec["id"] = s.Now().UnixMilli()

	rec, err = model.Normalize(rec)
	if err != nil {
		return nil, &common.StoreError{Op: "insert", Collection: s.name, Err: err}
	}

	records = append(records, rec)
	if err := s.writeAll(records); err != nil {
		return nil, err
	}
	return rec, nil
}

func (s *FileStore) Update(ctx context.Context, id int64, partial model.Record) (model.Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	records, err := s.readAll()
	if err != nil {
		return nil, err
	}

	for i, rec := range records {
		recID, ok := rec.ID()
		if !ok || recID != id {
			continue
		}

		merged, err := mergeRecord(rec, partial)
		if err != nil {
			return nil, &common.StoreError{Op: "update", Collection: s.name, Err: err}
		}
		records[i] = merged
		if err := s.writeAll(records); err != nil {
			return nil, err
		}
		return merged, nil
	}
	return nil, common.ErrNotFound
}

func (s *FileStore) Delete(ctx context.Context, id int64) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	records, err := s.readAll()
	if err != nil {
		return false, err
	}

	kept := records[:0]
	for _, rec := range records {
		if recID, ok := rec.ID(); ok && recID == id {
			continue
		}
		kept = append(kept, rec)
	}
	if len(kept) == len(records) {
		return false, nil
	}
	if err := s.writeAll(kept); err != nil {
		return false, err
	}
	return true, nil
}

func (s *FileStore) readAll() ([]model.Record, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			if err := os.WriteFile(s.path, []byte("[]"), 0o644); err != nil {
				return nil, &common.StoreError{Op: "init", Collection: s.name, Err: err}
			}
			return []model.Record{}, nil
		}
		return nil, &common.StoreError{Op: "read", Collection: s.name, Err: err}
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var records []model.Record
	if err := dec.Decode(&records); err != nil {
		return nil, &common.StoreError{Op: "parse", Collection: s.name, Err: err}
	}
	if records == nil {
		records = []model.Record{}
	}
	return records, nil
}

func (s *FileStore) writeAll(records []model.Record) error {
	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return &common.StoreError{Op: "encode", Collection: s.name, Err: err}
	}
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return &common.StoreError{Op: "write", Collection: s.name, Err: err}
	}
	return nil
}

// mergeRecord shallow-merges partial onto rec. The stored identifier always
// wins over anything the caller put in partial.
func mergeRecord(rec model.Record, partial model.Record) (model.Record, error) {
	merged := model.Record{}
	for k, v := range rec {
		merged[k] = v
	}
	for k, v := range partial {
		if k == "id" {
			continue
		}
		merged[k] = v
	}
	return model.Normalize(merged)
}
