package interview

import "context"

// Store persists interview sessions keyed by identity. Get returns
// ErrNoActiveSession when no session exists (or the backing store expired
// it). Mutual exclusion is the Service's job, not the Store's.
type Store interface {
	Get(ctx context.Context, identity string) (Session, error)
	Put(ctx context.Context, session Session) error
	Delete(ctx context.Context, identity string) error
}
