// Package config loads dsaviz settings from a TOML file.
//
// The file lives at $XDG_CONFIG_HOME/dsaviz/config.toml (falling back to
// ~/.config/dsaviz/config.toml) unless a path is given explicitly. Every
// key is optional; [Default] is the single source of default values and
// a loaded file only overrides the keys it defines.
//
// # Example
//
//	[playback]
//	speed = "400ms"
//
//	[cache]
//	backend = "redis"
//	addr = "localhost:6379"
//	ttl = "24h"
//
//	[server]
//	addr = ":8080"
//
//	[inputs.binary-search]
//	values = [1, 4, 9, 16, 25]
//	target = 16
//
// Command-line flags override file values.
package config
