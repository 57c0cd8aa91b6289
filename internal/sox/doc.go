// Package sox renders spectrogram thumbnails by invoking the sox CLI.
//
// Key types:
//   - Job: one capture file plus the decode and image parameters for it
//   - Renderer: builds the sox argument vector and runs it
//   - Executor: command execution seam, replaced in tests
//
// The decode rate passed to sox is always DecodeRateHz. The rate detected
// from the file name only scales the frequency axis (the "-c @rate" option
// of the spectrogram effect), and the peak level is pinned to PeakDB.
package sox
