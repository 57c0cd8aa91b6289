// Package logging assembles structured slog loggers used across sdrthumb.
//
// It owns the console and JSON handlers, level parsing, and the shared
// attribute keys so every component emits records with the same shape. A
// no-op logger is provided for tests and wiring code that cannot fail.
package logging
