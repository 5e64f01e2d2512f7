// Package catalog loads the anime catalog the list view renders.
//
// # Overview
//
// Client issues one unauthenticated GET against the catalog endpoint
// (https://api.jikan.moe/v4/anime by default) and decodes the body with
// go-faster/jx, one field at a time:
//
//	{ "data": [ { "mal_id": 1, "title": "...", "images": { "jpg": { "image_url": "..." } } } ] }
//
// Loader wraps the client and produces a LoadState, the tagged union the view
// switches on:
//
//   - PhaseLoading: before the fetch returns
//   - PhaseLoaded: Items holds the decoded list
//   - PhaseFailed: Message holds FailureMessage
//
// # Error Handling
//
// Non-2xx statuses, transport errors, and malformed bodies (including a body
// without a data array) all end in PhaseFailed. The technical cause goes to
// the zap logger only; the view never sees it.
//
// # Retries
//
// There are none. The load is fire-once and the client sets no timeout, so a
// catalog that never answers keeps the view in PhaseLoading until the context
// passed to Load is cancelled.
package catalog
