package credentials

import (
	"context"
)

// Repository is raw key/value access to the credential table. Errors are
// reported to the caller; the never-throws guarantee lives in Store, one
// layer up.
type Repository interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	Clear(ctx context.Context) error
}
