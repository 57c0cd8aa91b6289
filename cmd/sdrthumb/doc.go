// Package main hosts the sdrthumb CLI entrypoint and command graph.
//
// The root command walks the given capture files and directories and asks
// sox for a spectrogram thumbnail of every recognised file. Subcommands list
// the supported formats, check the environment, and scaffold configuration.
// Keep decision logic in the internal packages; this package only wires
// configuration, logging, and flags together.
package main
