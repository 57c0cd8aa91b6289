package thumbnail_test

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"sdrthumb/internal/format"
	"sdrthumb/internal/logging"
	"sdrthumb/internal/testsupport"
	"sdrthumb/internal/thumbnail"
)

func TestRunDirectoryRendersOnlyEligibleFiles(t *testing.T) {
	root := t.TempDir()
	testsupport.WriteTree(t, root, "gfile1.data", "readme.txt")

	renderer := &testsupport.Renderer{}
	d := thumbnail.NewDispatcher(renderer, thumbnail.Options{}, logging.NewNop())
	summary, err := d.Run(context.Background(), []string{root})
	if err != nil {
		t.Fatalf("Run returned error: %v", err)
	}

	jobs := renderer.Jobs()
	if len(jobs) != 1 {
		t.Fatalf("expected exactly one render, got %d", len(jobs))
	}
	want := filepath.Join(root, "gfile1.data")
	if jobs[0].SourcePath != want {
		t.Fatalf("unexpected source %q", jobs[0].SourcePath)
	}
	if jobs[0].OutputPath != want+".png" {
		t.Fatalf("unexpected output %q", jobs[0].OutputPath)
	}
	if summary != (thumbnail.Summary{Rendered: 1, Skipped: 1}) {
		t.Fatalf("unexpected summary %+v", summary)
	}
}

func TestRunRecursesAndDerivesParameters(t *testing.T) {
	root := t.TempDir()
	testsupport.WriteTree(t, root,
		"a/capture_2048k.cs16",
		"a/b/plain.f32",
		"a/b/c/other.data",
		"top.cu8",
	)

	renderer := &testsupport.Renderer{}
	d := thumbnail.NewDispatcher(renderer, thumbnail.Options{}, nil)
	if _, err := d.Run(context.Background(), []string{root}); err != nil {
		t.Fatalf("Run returned error: %v", err)
	}

	jobs := renderer.Jobs()
	if len(jobs) != 3 {
		t.Fatalf("expected 3 renders, got %d: %+v", len(jobs), jobs)
	}
	byName := map[string]int{}
	for i, job := range jobs {
		byName[filepath.Base(job.SourcePath)] = i
		if job.Width != 1024 || job.Height != 257 {
			t.Fatalf("expected default geometry, got %dx%d", job.Width, job.Height)
		}
	}

	cs16 := jobs[byName["capture_2048k.cs16"]]
	if cs16.SampleRate != 2048000 {
		t.Fatalf("expected detected rate, got %d", cs16.SampleRate)
	}
	if want, _ := format.Lookup(".cs16"); cs16.Format != want {
		t.Fatalf("unexpected format %+v", cs16.Format)
	}
	if got := jobs[byName["plain.f32"]].SampleRate; got != 250000 {
		t.Fatalf("expected default rate, got %d", got)
	}
	if _, ok := byName["other.data"]; ok {
		t.Fatal("non-gfile .data should be skipped")
	}
}

func TestRunSingleFileAndGeometry(t *testing.T) {
	root := t.TempDir()
	paths := testsupport.WriteTree(t, root, "one.cu8")

	renderer := &testsupport.Renderer{}
	d := thumbnail.NewDispatcher(renderer, thumbnail.Options{Width: 640, Height: 100}, nil)
	if _, err := d.Run(context.Background(), paths); err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
	jobs := renderer.Jobs()
	if len(jobs) != 1 {
		t.Fatalf("expected one render, got %d", len(jobs))
	}
	if jobs[0].Width != 640 || jobs[0].Height != 100 {
		t.Fatalf("geometry not propagated: %dx%d", jobs[0].Width, jobs[0].Height)
	}
}

func TestRunMissingPathIsHandedToRenderer(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "gone.cs8")
	renderer := &testsupport.Renderer{Fail: map[string]bool{missing: true}}
	d := thumbnail.NewDispatcher(renderer, thumbnail.Options{}, nil)
	summary, err := d.Run(context.Background(), []string{missing})
	if err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
	if summary.Failed != 1 {
		t.Fatalf("expected the render failure to be counted, got %+v", summary)
	}
}

func TestRunContinuesAfterRenderFailure(t *testing.T) {
	root := t.TempDir()
	paths := testsupport.WriteTree(t, root, "a.cu8", "b.cu8", "c.cu8")

	renderer := &testsupport.Renderer{Fail: map[string]bool{paths[0]: true}}
	d := thumbnail.NewDispatcher(renderer, thumbnail.Options{}, nil)
	summary, err := d.Run(context.Background(), paths)
	if err != nil {
		t.Fatalf("render failure must not surface, got %v", err)
	}
	if len(renderer.Jobs()) != 3 {
		t.Fatalf("expected all files attempted, got %d", len(renderer.Jobs()))
	}
	if summary != (thumbnail.Summary{Rendered: 2, Failed: 1}) {
		t.Fatalf("unexpected summary %+v", summary)
	}
}

func TestRunParallelRendersEveryFileOnce(t *testing.T) {
	root := t.TempDir()
	var names []string
	for i := 0; i < 25; i++ {
		names = append(names, fmt.Sprintf("dir%d/cap_%02d.cs8", i%4, i))
	}
	testsupport.WriteTree(t, root, names...)

	renderer := &testsupport.Renderer{}
	d := thumbnail.NewDispatcher(renderer, thumbnail.Options{Jobs: 4}, nil)
	summary, err := d.Run(context.Background(), []string{root})
	if err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
	jobs := renderer.Jobs()
	if len(jobs) != len(names) || summary.Rendered != len(names) {
		t.Fatalf("expected %d renders, got %d (summary %+v)", len(names), len(jobs), summary)
	}
	seen := map[string]bool{}
	for _, job := range jobs {
		if seen[job.OutputPath] {
			t.Fatalf("duplicate output %s", job.OutputPath)
		}
		seen[job.OutputPath] = true
	}
}

func TestRunCancelledContext(t *testing.T) {
	root := t.TempDir()
	testsupport.WriteTree(t, root, "a.cu8")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	renderer := &testsupport.Renderer{}
	d := thumbnail.NewDispatcher(renderer, thumbnail.Options{}, nil)
	if _, err := d.Run(ctx, []string{root}); err == nil {
		t.Fatal("expected cancellation error")
	}
	if len(renderer.Jobs()) != 0 {
		t.Fatalf("expected no renders after cancellation, got %d", len(renderer.Jobs()))
	}
}

func TestOptionsDefaults(t *testing.T) {
	d := thumbnail.NewDispatcher(&testsupport.Renderer{}, thumbnail.Options{Width: -1}, nil)
	if got := d.Options(); got != (thumbnail.Options{Width: 1024, Height: 257, Jobs: 1}) {
		t.Fatalf("unexpected defaults %+v", got)
	}
}

func TestRunFollowsSymlinkedRootDirectory(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("symlinks require privileges on windows")
	}
	target := t.TempDir()
	testsupport.WriteTree(t, target, "a.cu8", "sub/b_2048k.cs16")
	link := filepath.Join(t.TempDir(), "captures")
	if err := os.Symlink(target, link); err != nil {
		t.Fatalf("symlink: %v", err)
	}

	renderer := &testsupport.Renderer{}
	d := thumbnail.NewDispatcher(renderer, thumbnail.Options{}, nil)
	summary, err := d.Run(context.Background(), []string{link})
	if err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
	if summary != (thumbnail.Summary{Rendered: 2}) {
		t.Fatalf("unexpected summary %+v", summary)
	}

	jobs := renderer.Jobs()
	want := []string{
		filepath.Join(link, "a.cu8"),
		filepath.Join(link, "sub", "b_2048k.cs16"),
	}
	if len(jobs) != len(want) {
		t.Fatalf("expected %d renders, got %d", len(want), len(jobs))
	}
	for i, job := range jobs {
		if job.SourcePath != want[i] {
			t.Fatalf("render %d: got source %q want %q", i, job.SourcePath, want[i])
		}
		if job.OutputPath != want[i]+".png" {
			t.Fatalf("render %d: unexpected output %q", i, job.OutputPath)
		}
	}
	if jobs[1].SampleRate != 2048000 {
		t.Fatalf("expected rate from name, got %d", jobs[1].SampleRate)
	}
}
