// Package thumbnail discovers SDR capture files and renders a spectrogram
// thumbnail for each one.
//
// The Dispatcher walks every input path (recursing into directories),
// resolves decode parameters with the format package, infers the display
// rate with the rate package, and hands one sox.Job per eligible file to a
// Renderer. Ineligible files are skipped quietly and render failures are
// logged and counted; neither stops the batch.
//
// With Options.Jobs set to 1 files are rendered strictly one after another.
// Larger values bound a worker pool; every job writes its own <input>.png so
// workers never contend for an output path.
package thumbnail
