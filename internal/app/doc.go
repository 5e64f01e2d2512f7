// Package app is the composition root for animeshelf.
//
// Open loads config.toml, builds the zap logger and opens the configured
// key-value backend, returning an Env that the CLI subcommands share. Run
// additionally creates the catalog client and loader, restores the saved
// theme and hands everything to the Bubble Tea program:
//
//	config.Load ─▶ logging.New ─▶ kv.Open ─▶ favorites.NewStore
//	                                    │
//	catalog.NewClient ─▶ catalog.NewLoader ─▶ ui.Run
//
// There is no background poller. The catalog is fetched once when the view
// mounts; the context passed to Run is cancelled when the program exits so
// a slow request never outlives the UI.
package app
