// Package config loads, normalizes, and validates emisora configuration data.
//
// It supplies repository defaults, expands user paths (including tilde
// shortcuts), reads TOML files, and honours environment fallbacks such as
// EMISORA_CATALOG. The Config type centralizes every knob the matcher and CLI
// need: where the station catalog lives, the scoring weights, the provider
// attribution stamped on results, and log output.
//
// Always obtain settings through this package so downstream code receives
// sanitized paths, canonical names, and clear validation errors.
package config
