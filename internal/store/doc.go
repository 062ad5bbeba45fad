// Package store mirrors an enumeration catalog into SQLite.
//
// Each enumeration is stored with its kind and a revision id. A sync
// compares the registry against the stored rows and only stamps a new
// revision on enumerations whose kind or members changed, so the revision
// of an untouched enumeration is stable across syncs.
//
// Member values are stored as JSON token text and read back through
// token.JSONReader, so a stored catalog is rebuilt with the same coercion
// rules as a declaration file.
//
// # Database Configuration
//
//   - WAL mode: Concurrent reads during writes
//   - synchronous=NORMAL: Balance durability/performance
//   - busy_timeout=5000: Wait for locks up to 5 seconds
//   - foreign_keys=ON: Members are deleted with their enumeration
package store
