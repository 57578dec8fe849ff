// Package storage archives uploaded images for the duration of a pipeline
// run. The archive is best-effort bookkeeping: runs succeed or fail on the
// provider calls, not on the archive.
package storage

import "context"

type PutParams struct {
	Key         string
	Data        []byte
	ContentType string
}

// Store persists and removes upload snapshots. A nil Store is valid and
// means archiving is disabled.
type Store interface {
	Put(ctx context.Context, params PutParams) error
	Delete(ctx context.Context, key string) error
}
