// Package config loads, normalizes, and validates kord configuration data.
//
// It supplies defaults, reads TOML files from the usual locations, and
// honours environment overrides such as KORD_LOG_LEVEL and KORD_API_TOKEN.
// The CLI and the HTTP server obtain resolver, chroma, MIDI and API settings
// from a single Config so both surfaces behave the same.
package config
