// Package store implements the dot-path document store: the public
// operation set (Get, Has, Set, Delete, Add, Subtract, Push, Pull, GetAll,
// DeleteAll) on top of a record-granular storage backend.
//
// Two backends implement the Backend boundary with identical observable
// semantics:
//
//   - FileBackend: the whole document lives in one JSON file; every record
//     access is a whole-file read or rewrite.
//   - SQLiteBackend: one row per top-level record, shape (id, key, value),
//     accessed and upserted per key.
//
// Every operation reads fresh state from the backend, resolves or mutates
// the path in memory, and writes back. No state is cached across calls, so
// each call observes the latest persisted state. The store provides no
// internal locking: the read-modify-write cycle is not atomic across
// concurrent callers and the last writer wins. Callers needing concurrent
// mutation safety must serialize access externally.
//
// Failures surface as typed *OpError values with stable codes, and are
// additionally logged (validation and type mismatches at warn, medium
// failures at error, absent results at debug).
package store
