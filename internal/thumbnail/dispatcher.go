package thumbnail

import (
	"context"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sync/atomic"

	"github.com/dustin/go-humanize"
	"golang.org/x/sync/errgroup"

	"sdrthumb/internal/format"
	"sdrthumb/internal/logging"
	"sdrthumb/internal/rate"
	"sdrthumb/internal/sox"
)

const (
	// DefaultWidth is the thumbnail width in pixels when Options leaves it unset.
	DefaultWidth = 1024
	// DefaultHeight is the thumbnail height in pixels when Options leaves it unset.
	DefaultHeight = 257
)

// Renderer produces the image for a single job.
type Renderer interface {
	Render(ctx context.Context, job sox.Job) error
}

// Options controls thumbnail geometry and parallelism. Zero values fall
// back to the defaults.
type Options struct {
	Width  int
	Height int
	Jobs   int
}

func (o Options) withDefaults() Options {
	if o.Width <= 0 {
		o.Width = DefaultWidth
	}
	if o.Height <= 0 {
		o.Height = DefaultHeight
	}
	if o.Jobs <= 0 {
		o.Jobs = 1
	}
	return o
}

// Summary counts per-file outcomes for a run.
type Summary struct {
	Rendered int
	Skipped  int
	Failed   int
}

// Dispatcher fans input paths out to the renderer.
type Dispatcher struct {
	renderer Renderer
	opts     Options
	logger   *slog.Logger
}

// NewDispatcher constructs a dispatcher.
func NewDispatcher(renderer Renderer, opts Options, logger *slog.Logger) *Dispatcher {
	return &Dispatcher{
		renderer: renderer,
		opts:     opts.withDefaults(),
		logger:   logging.NewComponentLogger(logger, "dispatcher"),
	}
}

// Options reports the effective options after defaults were applied.
func (d *Dispatcher) Options() Options {
	return d.opts
}

type counters struct {
	rendered atomic.Int64
	skipped  atomic.Int64
	failed   atomic.Int64
}

func (c *counters) summary() Summary {
	return Summary{
		Rendered: int(c.rendered.Load()),
		Skipped:  int(c.skipped.Load()),
		Failed:   int(c.failed.Load()),
	}
}

// Run processes every path. Directories are walked recursively; anything
// else is treated as a single capture file. The only error returned is the
// context's, when the run is cancelled before every file was scheduled.
func (d *Dispatcher) Run(ctx context.Context, paths []string) (Summary, error) {
	var c counters
	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(d.opts.Jobs)

	schedule := func(path string, size int64) {
		group.Go(func() error {
			d.process(groupCtx, path, size, &c)
			return nil
		})
	}

	var runErr error
	for _, root := range paths {
		if err := ctx.Err(); err != nil {
			runErr = err
			break
		}
		info, err := os.Stat(root)
		if err != nil || !info.IsDir() {
			size := int64(-1)
			if info != nil {
				size = info.Size()
			}
			schedule(root, size)
			continue
		}
		if err := d.walk(ctx, root, schedule); err != nil {
			runErr = err
			break
		}
	}

	_ = group.Wait()
	summary := c.summary()
	d.logger.Info("thumbnail run complete",
		logging.Int("rendered", summary.Rendered),
		logging.Int("skipped", summary.Skipped),
		logging.Int("failed", summary.Failed),
	)
	return summary, runErr
}

// walk visits every file under root. A symlinked root is resolved before
// walking, and visited paths are reported under root as given so outputs
// land beside the path the user named. Links below the root are not
// followed.
func (d *Dispatcher) walk(ctx context.Context, root string, schedule func(string, int64)) error {
	target, err := filepath.EvalSymlinks(root)
	if err != nil {
		d.logger.Debug("walk root unresolvable", logging.String(logging.FieldPath, root), logging.Error(err))
		return nil
	}
	return filepath.WalkDir(target, func(path string, entry fs.DirEntry, err error) error {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		path = underRoot(root, target, path)
		if err != nil {
			d.logger.Debug("walk entry unreadable", logging.String(logging.FieldPath, path), logging.Error(err))
			return nil
		}
		if entry.IsDir() {
			return nil
		}
		size := int64(-1)
		if info, infoErr := entry.Info(); infoErr == nil {
			size = info.Size()
		}
		schedule(path, size)
		return nil
	})
}

func underRoot(root, target, path string) string {
	if root == target {
		return path
	}
	rel, err := filepath.Rel(target, path)
	if err != nil {
		return path
	}
	return filepath.Join(root, rel)
}

func (d *Dispatcher) process(ctx context.Context, path string, size int64, c *counters) {
	spec, ok := format.Resolve(path)
	if !ok {
		c.skipped.Add(1)
		d.logger.Debug("skipping file",
			logging.String(logging.FieldPath, path),
			logging.String(logging.FieldReason, "unsupported extension"),
		)
		return
	}

	job := sox.NewJob(path, spec, rate.Detect(filepath.Base(path)), d.opts.Width, d.opts.Height)
	if d.logger.Enabled(ctx, slog.LevelDebug) {
		attrs := []any{
			logging.String(logging.FieldPath, path),
			logging.String("encoding", spec.Encoding.String()),
			logging.Int("sample_rate", job.SampleRate),
		}
		if size >= 0 {
			attrs = append(attrs, logging.String("size", humanize.Bytes(uint64(size))))
		}
		d.logger.Debug("rendering thumbnail", attrs...)
	}

	if err := d.renderer.Render(ctx, job); err != nil {
		c.failed.Add(1)
		d.logger.Warn("thumbnail render failed",
			logging.String(logging.FieldPath, path),
			logging.Error(err),
		)
		return
	}
	c.rendered.Add(1)
}
