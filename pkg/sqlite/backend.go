// Package sqlite provides the public API for the SQLite settings store.
// It exposes the factory function and the store type while keeping the
// implementation internal.
package sqlite

import (
	"github.com/mesh-intelligence/larder/internal/sqlite"
)

// Store is the SQLite-backed settings store.
type Store = sqlite.Store

// Revision is one historical write of a setting.
type Revision = sqlite.Revision

// Open creates or opens the settings database under dataDir.
//
// Example:
//
//	store, err := sqlite.Open(".larder-db")
//	if err != nil { ... }
//	defer store.Close()
//	registry.SetDefaultReader(store.Reader())
//	registry.SetDefaultWriter(store.Writer())
func Open(dataDir string) (*Store, error) {
	return sqlite.Open(dataDir)
}
