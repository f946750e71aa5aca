package database

import (
	"fmt"

	"go.etcd.io/bbolt"
)

// BoltDB wraps a single bolt database file shared by all kv stores.
type BoltDB struct {
	db *bbolt.DB
}

// NewBoltDB opens (or creates) bolt database file at given path.
func NewBoltDB(dbPath string) (*BoltDB, error) {
	db, err := bbolt.Open(dbPath, 0666, nil)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	return &BoltDB{db: db}, nil
}

// KVStore returns kv store backed by a bucket with given name.
// The bucket is created if it doesn't exist.
func (d *BoltDB) KVStore(bucketName string) (*BoltKVStore, error) {
	if err := d.db.Update(func(tx *bbolt.Tx) error {
		if _, err := tx.CreateBucketIfNotExists([]byte(bucketName)); err != nil {
			return err
		}
		return nil
	}); err != nil {
		return nil, fmt.Errorf("creating database bucket: %w", err)
	}

	return &BoltKVStore{
		db:         d.db,
		bucketName: []byte(bucketName),
	}, nil
}

// Close closes database.
func (d *BoltDB) Close() error {
	return d.db.Close()
}

// BoltKVStore provides simple kv store interface based on boltdb.
type BoltKVStore struct {
	db         *bbolt.DB
	bucketName []byte
}

// ReadKey returns data saved for given key. Returns nil if there's no data stored.
func (s *BoltKVStore) ReadKey(key []byte) ([]byte, error) {
	var data []byte
	if err := s.db.View(func(tx *bbolt.Tx) error {
		b := tx.Bucket(s.bucketName)
		if v := b.Get(key); v != nil {
			data = make([]byte, len(v))
			copy(data, v)
		}
		return nil
	}); err != nil {
		return nil, fmt.Errorf("reading from db: %w", err)
	}

	return data, nil
}

// UpdateKey stores given data under given key.
func (s *BoltKVStore) UpdateKey(key []byte, data []byte) error {
	if err := s.db.Update(func(tx *bbolt.Tx) error {
		b := tx.Bucket(s.bucketName)
		return b.Put(key, data)
	}); err != nil {
		return fmt.Errorf("writing to db: %w", err)
	}

	return nil
}

// ForEach calls fn for every key/value pair in the bucket.
func (s *BoltKVStore) ForEach(fn func(key, data []byte) error) error {
	if err := s.db.View(func(tx *bbolt.Tx) error {
		b := tx.Bucket(s.bucketName)
		return b.ForEach(fn)
	}); err != nil {
		return fmt.Errorf("iterating over db: %w", err)
	}

	return nil
}
