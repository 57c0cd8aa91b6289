package testsupport

import (
	"context"
	"errors"
	"sort"
	"sync"

	"sdrthumb/internal/sox"
)

// ErrRenderFailed is returned by Renderer for paths listed in Fail.
var ErrRenderFailed = errors.New("stub render failed")

// Renderer records every job it receives. It is safe for concurrent use.
type Renderer struct {
	// Fail lists source paths whose render returns ErrRenderFailed.
	Fail map[string]bool

	mu   sync.Mutex
	jobs []sox.Job
}

// Render implements thumbnail.Renderer.
func (r *Renderer) Render(_ context.Context, job sox.Job) error {
	r.mu.Lock()
	r.jobs = append(r.jobs, job)
	r.mu.Unlock()
	if r.Fail[job.SourcePath] {
		return ErrRenderFailed
	}
	return nil
}

// Jobs returns the recorded jobs sorted by source path.
func (r *Renderer) Jobs() []sox.Job {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := append([]sox.Job(nil), r.jobs...)
	sort.Slice(out, func(i, j int) bool { return out[i].SourcePath < out[j].SourcePath })
	return out
}
