package ports

import "context"

// KeyValueStore is the persistence boundary of the whole system: a
// synchronous, string-keyed store of opaque byte values. Collections
// are persisted as whole JSON blobs under fixed keys; writes are
// unconditional last-write-wins with no cross-key transactions.
type KeyValueStore interface {
	// Get returns the raw value stored under key. ok is false when the
	// key has never been written.
	Get(ctx context.Context, key string) (raw []byte, ok bool, err error)
	// Set writes raw under key, overwriting any previous value.
	Set(ctx context.Context, key string, raw []byte) error
}
