// Package storage provides the persistence backends for the dashboard
// state. A store is a key-value blob store: one JSON document per
// dashboard namespace, saved as a single whole-state overwrite.
package storage

import (
	"context"
	"encoding/json"
)

// EmptyBlob is what a load returns when nothing was saved yet.
var EmptyBlob = json.RawMessage("{}")

// Store loads and saves one JSON blob per namespace. No transactions,
// no partial writes; last write wins.
type Store interface {
	// Load returns the blob saved for the namespace, or an empty object
	// when nothing was saved (or the saved data is unreadable).
	Load(ctx context.Context, namespace string) (json.RawMessage, error)
	// Save overwrites the blob for the namespace.
	Save(ctx context.Context, namespace string, data json.RawMessage) error
	// Healthy reports whether the backend is reachable.
	Healthy(ctx context.Context) error
}
