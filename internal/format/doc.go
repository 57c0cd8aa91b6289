// Package format maps raw SDR capture file extensions to the decode
// parameters sox needs to read them.
//
// The table is fixed: every supported extension carries its sample width,
// channel count, sample encoding, and the dynamic range used when rendering
// the spectrogram. Resolve additionally applies the naming policy for the
// ambiguous .data extension, which is only accepted for gfile captures.
package format
