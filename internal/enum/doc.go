// Package enum provides the smart enum registry: closed sets of named
// singleton members, each carrying a unique primitive value.
//
// A Type is built once, usually into a package-level variable, and is
// never mutated afterwards. Every lookup for the same value or name
// returns the same *Member pointer, so callers may compare members by
// identity.
//
// Key design constraints:
//   - Lookups are exact and type-checked. A numeric 1 never matches true.
//   - Values within a Type are unique. NaN and infinite doubles are rejected.
//   - This package imports nothing internal. token, convert, catalog and
//     store all build on it.
package enum
