package id

import (
	"strings"

	"github.com/google/uuid"
)

// NewQID creates a short opaque question identifier.
// Ten hex characters of a v4 UUID is plenty for a single-profile bank
// and keeps exported files readable.
func NewQID() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")[:10]
}

// NewStoredName prefixes a sanitized file name with eight hex characters
// so repeated uploads of the same file never collide on disk.
func NewStoredName(name string) string {
	safe := strings.ReplaceAll(name, "/", "_")
	return strings.ReplaceAll(uuid.NewString(), "-", "")[:8] + "__" + safe
}
