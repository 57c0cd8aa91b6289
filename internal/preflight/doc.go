// Package preflight provides readiness checks for the renderer binary and
// the input paths handed to sdrthumb.
//
// These checks run in two contexts:
//   - The thumbnail command logs a warning when sox is missing, then carries
//     on, since per-file render failures are never fatal.
//   - The "sdrthumb doctor" command prints every result as a table.
package preflight
