package repository

import (
	"context"

	"portfolio_api/internal/domain/model"
)

// RecordStore is a durable collection of records keyed by an integer
// identifier. Implementations persist the whole collection on every
// mutation (read all, apply, write all) and return common.ErrNotFound when
// an identifier does not resolve. Records returned by a store carry plain
// JSON value types only.
type RecordStore interface {
	// List returns every record in the collection.
	List(ctx context.Context) ([]model.Record, error)

	// Get returns the record with the given identifier.
	Get(ctx context.Context, id int64) (model.Record, error)

	// Insert assigns a time-derived identifier to fields and persists the
	// record. Identifiers are the current time in milliseconds; uniqueness
	// under same-millisecond creation is deliberately not guaranteed.
	Insert(ctx context.Context, fields model.Record) (model.Record, error)

	// Update shallow-merges partial onto the stored record, preserving the
	// identifier and every unspecified field.
	Update(ctx context.Context, id int64, partial model.Record) (model.Record, error)

	// Delete removes the record and reports whether it existed.
	Delete(ctx context.Context, id int64) (bool, error)
}
