// Package storage provides the durable key/value capability the session
// manager persists the credential through. Implementations: an in-memory
// store for tests and ephemeral sessions, and a SQLite-backed store for
// real use.
package storage

import "context"

// Keys under which the session credential is persisted. Both must be present
// together for a restore to succeed and both are cleared together on logout.
const (
	KeyToken = "token"
	KeyUser  = "user"
)

// Store is the persistence capability injected into the session manager.
// Get returns (nil, nil) when the key is absent.
//
// Update runs fn against a view of the store whose writes are applied
// all-or-nothing: if fn returns an error, none of its writes survive. The
// credential's token and user records are only ever written through Update,
// so a partially written credential can never be observed.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Remove(ctx context.Context, key string) error
	Update(ctx context.Context, fn func(s Store) error) error
}
