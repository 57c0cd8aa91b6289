package preflight

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/dustin/go-humanize"
	"golang.org/x/sys/unix"

	"sdrthumb/internal/deps"
)

// Result reports the outcome of a single preflight check.
type Result struct {
	Name   string
	Passed bool
	Detail string
}

// RunAll checks the sox binary followed by every input path.
func RunAll(soxBinary string, paths []string) []Result {
	results := make([]Result, 0, len(paths)+1)
	results = append(results, CheckRenderer(soxBinary))
	for _, path := range paths {
		results = append(results, CheckPathAccess(path))
	}
	return results
}

// CheckRenderer reports whether the sox binary can be found.
func CheckRenderer(soxBinary string) Result {
	status := deps.CheckBinaries([]deps.Requirement{deps.Sox(soxBinary)})[0]
	if !status.Available {
		return Result{Name: status.Name, Detail: status.Detail}
	}
	return Result{Name: status.Name, Passed: true, Detail: status.Path}
}

// CheckPathAccess verifies an input path can be read and that thumbnails
// can be written beside it. Files need read access on themselves and write
// access on their parent directory; directories need read, write and search.
func CheckPathAccess(path string) Result {
	name := "Input " + path
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Result{Name: name, Detail: "error: does not exist"}
		}
		return Result{Name: name, Detail: fmt.Sprintf("error: stat: %v", err)}
	}
	if info.IsDir() {
		if err := unix.Access(path, unix.R_OK|unix.W_OK|unix.X_OK); err != nil {
			return Result{Name: name, Detail: fmt.Sprintf("error: insufficient permissions: %v", err)}
		}
		return Result{Name: name, Passed: true, Detail: "directory (read/write ok)"}
	}
	if err := unix.Access(path, unix.R_OK); err != nil {
		return Result{Name: name, Detail: fmt.Sprintf("error: not readable: %v", err)}
	}
	if err := unix.Access(filepath.Dir(path), unix.W_OK|unix.X_OK); err != nil {
		return Result{Name: name, Detail: fmt.Sprintf("error: parent not writable: %v", err)}
	}
	return Result{Name: name, Passed: true, Detail: fmt.Sprintf("file, %s (read ok)", humanize.Bytes(uint64(info.Size())))}
}
