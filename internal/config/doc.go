// Package config loads, normalizes, and validates sdrthumb configuration.
//
// It supplies defaults, expands user paths (including tilde shortcuts),
// reads TOML files, and honours SDRTHUMB_* environment overrides for the
// logging section. The renderer binary is not configurable.
package config
