// Package testing allows for spinning up a real bolt-db instance for unit
// tests throughout the beacond repo.
package testing

import (
	"testing"

	"github.com/seaham/beacond/beacon-chain/db"
	"github.com/seaham/beacond/beacon-chain/db/kv"
)

// SetupDB instantiates and returns database backed by key value store.
func SetupDB(t testing.TB) db.Database {
	s, err := kv.NewKVStore(t.TempDir())
	if err != nil {
		t.Fatalf("Failed to instantiate DB: %v", err)
	}
	t.Cleanup(func() {
		if err := s.Close(); err != nil {
			t.Fatalf("Failed to close database: %v", err)
		}
	})
	return s
}
