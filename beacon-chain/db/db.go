// Package db defines the persistent storage interfaces for the beacon node
// and re-exports the bolt-backed implementation.
package db

import (
	"github.com/seaham/beacond/beacon-chain/db/iface"
	"github.com/seaham/beacond/beacon-chain/db/kv"
)

// Database defines the necessary methods for the beacond backend which may be
// implemented by any key-value or relational database in practice.
type Database = iface.Database

// ReadOnlyDatabase is the read contract consumed by the accounting core.
type ReadOnlyDatabase = iface.ReadOnlyDatabase

// ErrNotFound is returned when a lookup does not yield a stored value.
var ErrNotFound = kv.ErrNotFound

// NewDB initializes a new DB.
func NewDB(dirPath string) (Database, error) {
	return kv.NewKVStore(dirPath)
}
