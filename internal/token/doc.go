// Package token is the reader/writer abstraction the smart enum converters
// work against: a single token with a kind, plus typed coercions.
//
// Readers exist for raw JSON values, yaml.v3 nodes and mapping keys.
// Coercion failures are reported as *TypeError (wrong token kind) or
// *FormatError (right kind, value not representable).
package token
