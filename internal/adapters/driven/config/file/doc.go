// Package file provides the file-based configuration loader.
//
// Settings are layered: built-in defaults, then the TOML config file, then
// environment variables (optionally seeded from a .env file). CLI flags are
// applied on top by the caller.
package file
