package store

import "github.com/google/uuid"

// RevisionGenerator produces revision ids for synced enumerations.
type RevisionGenerator interface {
	Generate() string
}

// UUIDv7Generator generates time-sortable UUIDv7 revisions.
//
// UUIDv7 embeds a timestamp in the most significant bits, so a later sync
// always has a larger revision.
//
// Thread-safety: UUIDv7Generator is stateless and safe for concurrent use.
type UUIDv7Generator struct{}

// Generate creates a new UUIDv7 and returns it as a hyphenated string.
//
// Panics if UUID generation fails (should never happen in practice).
func (g UUIDv7Generator) Generate() string {
	return uuid.Must(uuid.NewV7()).String()
}
