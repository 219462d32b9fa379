// Package artifact persists generated blog text to durable blob storage
// under timestamp-derived keys.
package artifact

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// ErrSaveFailed is returned when the blob store write fails
var ErrSaveFailed = errors.New("failed to save blog artifact")

// Store persists generated blog artifacts
type Store interface {
	// Save writes content under a timestamp-derived key and returns the
	// fully-qualified location (e.g. "s3://bucket/blog_output/2025_01_02_150405.txt").
	// Same-second writes overwrite each other; keys have second resolution only.
	Save(ctx context.Context, content string) (string, error)
}

// Timestamp layout for artifact keys, second resolution
const keyTimeLayout = "2006_01_02_150405"

// Key derives the artifact key for a write at time t within the given prefix
func Key(prefix string, t time.Time) string {
	return fmt.Sprintf("%s/%s.txt", prefix, t.Format(keyTimeLayout))
}
