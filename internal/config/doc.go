// Package config loads animeshelf's TOML configuration.
//
// # Configuration Discovery
//
//  1. If a path is explicitly provided, use it
//  2. Otherwise, use ~/.config/animeshelf/config.toml
//  3. If the file doesn't exist, fall back to defaults
//  4. If the file exists but fields are blank, use defaults for those fields
//
// A file that exists but fails to parse is an error; a half-read config
// should never silently point storage somewhere else.
//
// # TOML Format
//
//	[catalog]
//	endpoint = "https://api.jikan.moe/v4/anime"
//
//	[storage]
//	backend = "file"                  # file | sqlite | memory
//	path = "~/.local/share/animeshelf" # directory (file) or db file (sqlite)
//
//	[log]
//	path = "~/.local/state/animeshelf/animeshelf.log"  # "off" disables
//	level = "info"
//
// # Path Expansion
//
// Paths beginning with ~ are expanded to the user's home directory and all
// paths are made absolute.
package config
