// Package chapters parses plain-text chapter annotation files and resolves
// them into non-overlapping time intervals.
//
// The boundary rule is deliberate and easy to get wrong: a chapter whose
// title starts with "--" is excluded from the output, but its timestamp still
// terminates the chapter before it. Exclusion affects which intervals are
// emitted, never the boundary timeline itself.
package chapters
