// Package favorites owns the locally persisted user record: who the visitor
// is and which catalog item ids they marked as favorites.
//
// The record lives in the "user" slot of a kv.Store as
//
//	{"id":"u1","favorites":[5,9]}
//
// with no schema version. An absent slot means nobody is logged in. A slot
// whose contents cannot be decoded is treated the same way and logged, so a
// damaged record never blocks the view.
//
// Toggle is pure; the caller persists its result with Store.Persist, which
// always replaces the whole record.
package favorites
