// Package value provides the semantic value model for dotdb documents.
//
// This package contains type definitions and the structural comparison
// rules only. All other internal packages import value; value imports
// nothing internal. This keeps the value model the foundational layer
// with no circular dependencies.
//
// Key design constraints:
//   - A Value is always one of Null, String, Number, Bool, Array, Object.
//   - "Absent" is represented by a nil Value and is never stored; a stored
//     Null is a real value and survives round-trips.
//   - JSON text is the only place untyped data enters or leaves the model.
//   - Object marshaling sorts keys so persisted output is deterministic.
package value
