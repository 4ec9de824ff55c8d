// Package config loads, normalizes, and validates chapsplit configuration.
//
// It supplies repository defaults, expands user paths (including tilde
// shortcuts), reads TOML files, and honours environment fallbacks such as
// CHAPSPLIT_FFMPEG. Always obtain settings through this package so downstream
// code receives sanitized paths, canonical codec names, and clear validation
// errors.
package config
