package storage

import (
	"context"
	"time"
)

// Storage is the opaque blob store photos live in. The application only
// holds keys and hands out URLs; it never streams bytes itself.
type Storage interface {
	PresignUpload(ctx context.Context, key, contentType string, expires time.Duration) (string, error)
	PublicURL(key string) string
	Delete(ctx context.Context, key string) error
}
