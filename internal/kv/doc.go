// Package kv provides the persistent key-value slot that animeshelf keeps its
// user record and preferences in.
//
// # Backends
//
//   - file: one file per key under a directory (default,
//     ~/.local/share/animeshelf). Writes go through a temp file and rename.
//   - sqlite: a single kv table in a SQLite database, via the pure Go
//     modernc.org/sqlite driver.
//   - memory: process-local map, used in tests and for throwaway sessions.
//
// # Semantics
//
// Every Set replaces the entire value of a key; there are no partial updates
// and no versioning. Get returns ErrNotFound for an absent key. Delete on an
// absent key succeeds. Keys must be non-empty and free of path separators.
package kv
