// Package logging wires log/slog with the handlers and attribute helpers the
// rest of the repository uses: a console handler for human-readable output, a
// JSON handler for machine consumption, and standardized field keys so runs
// stay greppable.
package logging
