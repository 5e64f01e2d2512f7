// Package ui implements the animeshelf terminal view with Bubble Tea.
//
// # Model
//
// Model holds two pieces of remote and persisted data: the catalog
// LoadState (Loading, Loaded or Failed) and the signed-in user, which is nil
// for a guest. Init starts both reads as commands; each reports back once
// as a catalogMsg or userMsg. The catalog result is applied only while the
// model is still Loading, so the phase changes at most once and a failure
// is never retried.
//
// # Cards
//
// Loaded items render as a responsive grid of cards (grid.go). A card shows
// the title, the image URL when there is one, and a "[ Like ]" or
// "[ Unlike ]" button. The button is computed from user.Has(item.ID) on
// every render; cards keep no liked flag of their own.
//
// # Favorites
//
// Activating the button (enter, space or f) on the selected card:
//
//   - as a guest opens the "Please login to add to favorites." notice and
//     leaves storage untouched
//   - as a user computes favorites.Toggle, persists the whole record, and
//     only then replaces the model's copy
//
// A failed write keeps the previous copy and opens a "Could not save
// favorites." notice. Notices are modal: until dismissed with enter, space
// or esc every other key is ignored (ctrl+c still quits).
//
// # Overlays
//
//   - ?: keyboard help
//   - L: diagnostics, the tail of the zap log file parsed by logtail
//   - T: cycle theme, saved through prefs
//
// # Styling
//
// Themes (theme.go) are palettes ported from Nightfox, Kanagawa and
// Tailwind Slate. BgStyle keeps header segments on a continuous background.
package ui
