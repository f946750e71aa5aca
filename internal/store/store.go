// Package store persists normalized profiles and the recently viewed
// accounts ledger on top of a simple kv document store.
package store

// KVStore provides simple kv data storage
type KVStore interface {
	ReadKey(key []byte) ([]byte, error)
	UpdateKey(key []byte, data []byte) error
}

// ScannableKVStore is a KVStore that can iterate over all stored entries.
type ScannableKVStore interface {
	KVStore
	ForEach(fn func(key, data []byte) error) error
}
