// Package kv defines a bolt-db, key-value store implementation of the
// Database interface.
package kv

import (
	"os"
	"path"
	"time"

	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	prombbolt "github.com/prysmaticlabs/prombbolt"
	bolt "go.etcd.io/bbolt"
)

const (
	// DatabaseFileName is the name of the beacon database file.
	DatabaseFileName = "beaconchain.db"
	boltAllocSize    = 8 * 1024 * 1024
)

// ErrNotFound is returned when a database lookup does not yield a value for
// the requested key.
var ErrNotFound = errors.New("not found in db")

// Store defines an implementation of the beacond Database interface using
// BoltDB as the underlying persistent kv-store.
type Store struct {
	db           *bolt.DB
	databasePath string
}

// NewKVStore initializes a new boltDB key-value store at the directory path
// specified and creates the kv-buckets based on the schema.
func NewKVStore(dirPath string) (*Store, error) {
	if err := os.MkdirAll(dirPath, 0700); err != nil {
		return nil, err
	}
	datafile := path.Join(dirPath, DatabaseFileName)
	boltDB, err := bolt.Open(datafile, 0600, &bolt.Options{Timeout: 1 * time.Second, InitialMmapSize: 10e6})
	if err != nil {
		if errors.Is(err, bolt.ErrTimeout) {
			return nil, errors.New("cannot obtain database lock, database may be in use by another process")
		}
		return nil, err
	}
	boltDB.AllocSize = boltAllocSize

	kv := &Store{
		db:           boltDB,
		databasePath: dirPath,
	}

	if err := kv.db.Update(func(tx *bolt.Tx) error {
		return createBuckets(
			tx,
			blocksBucket,
			stateBucket,
			checkpointBucket,
			blockSlotIndicesBucket,
			blockParentRootIndicesBucket,
		)
	}); err != nil {
		return nil, err
	}

	if err := prometheus.Register(prombbolt.New("beacondb", boltDB)); err != nil {
		log.WithError(err).Debug("Could not register bolt metrics collector")
	}

	return kv, nil
}

// Close closes the underlying BoltDB database.
func (s *Store) Close() error {
	return s.db.Close()
}

// DatabasePath at which this database writes files.
func (s *Store) DatabasePath() string {
	return s.databasePath
}

// ClearDB removes the previously stored database in the data directory.
func (s *Store) ClearDB() error {
	if _, err := os.Stat(path.Join(s.databasePath, DatabaseFileName)); os.IsNotExist(err) {
		return nil
	}
	return os.Remove(path.Join(s.databasePath, DatabaseFileName))
}

func createBuckets(tx *bolt.Tx, buckets ...[]byte) error {
	for _, bucket := range buckets {
		if _, err := tx.CreateBucketIfNotExists(bucket); err != nil {
			return err
		}
	}
	return nil
}
