package sox

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strconv"
	"strings"

	"sdrthumb/internal/format"
)

const (
	// DefaultBinary is the sox executable name.
	DefaultBinary = "sox"
	// DecodeRateHz is the rate sox assumes when reading raw samples.
	DecodeRateHz = 250000
	// PeakDB is the spectrogram peak level. Not derived from the data yet.
	PeakDB = 0
	// OutputSuffix is appended to the source path to name the image.
	OutputSuffix = ".png"
)

// ErrEmptyPath is returned when a job has no source path.
var ErrEmptyPath = errors.New("sox: empty source path")

// Job describes a single thumbnail render.
type Job struct {
	SourcePath string
	OutputPath string
	Format     format.Spec
	SampleRate int
	Width      int
	Height     int
}

// NewJob builds a job writing next to path with the .png suffix appended.
func NewJob(path string, spec format.Spec, sampleRate, width, height int) Job {
	return Job{
		SourcePath: path,
		OutputPath: path + OutputSuffix,
		Format:     spec,
		SampleRate: sampleRate,
		Width:      width,
		Height:     height,
	}
}

// Args returns the sox argument vector for job.
func Args(job Job) []string {
	return []string{
		"-t", "raw",
		"-b", strconv.Itoa(job.Format.BitDepth),
		"-c", strconv.Itoa(job.Format.Channels),
		"-e", job.Format.Encoding.String(),
		"-r", strconv.Itoa(DecodeRateHz),
		job.SourcePath,
		"-n", "spectrogram",
		"-c", "@" + strconv.Itoa(job.SampleRate),
		"-z", strconv.Itoa(job.Format.DynamicRangeDB),
		"-Z", strconv.Itoa(PeakDB),
		"-x", strconv.Itoa(job.Width),
		"-y", strconv.Itoa(job.Height),
		"-o", job.OutputPath,
	}
}

// Executor abstracts command execution for testability.
type Executor interface {
	Run(ctx context.Context, binary string, args []string) error
}

// Option configures the renderer.
type Option func(*Renderer)

// WithExecutor injects a custom executor (primarily for tests).
func WithExecutor(exec Executor) Option {
	return func(r *Renderer) {
		if exec != nil {
			r.exec = exec
		}
	}
}

// WithBinary overrides the sox executable.
func WithBinary(binary string) Option {
	return func(r *Renderer) {
		if b := strings.TrimSpace(binary); b != "" {
			r.binary = b
		}
	}
}

// Renderer wraps sox spectrogram invocations.
type Renderer struct {
	binary string
	exec   Executor
}

// New constructs a renderer using the sox binary on PATH.
func New(opts ...Option) *Renderer {
	r := &Renderer{
		binary: DefaultBinary,
		exec:   commandExecutor{},
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Binary reports the executable the renderer invokes.
func (r *Renderer) Binary() string {
	return r.binary
}

// Render runs sox for job and blocks until it exits.
func (r *Renderer) Render(ctx context.Context, job Job) error {
	if strings.TrimSpace(job.SourcePath) == "" {
		return ErrEmptyPath
	}
	if err := r.exec.Run(ctx, r.binary, Args(job)); err != nil {
		return fmt.Errorf("sox render %s: %w", job.SourcePath, err)
	}
	return nil
}

type commandExecutor struct{}

func (commandExecutor) Run(ctx context.Context, binary string, args []string) error {
	cmd := exec.CommandContext(ctx, binary, args...) //nolint:gosec
	output, err := cmd.CombinedOutput()
	if err != nil {
		if msg := strings.TrimSpace(string(output)); msg != "" {
			return fmt.Errorf("%w: %s", err, msg)
		}
		return err
	}
	return nil
}
