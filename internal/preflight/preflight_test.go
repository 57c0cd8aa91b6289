package preflight

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestCheckPathAccessDirectory(t *testing.T) {
	result := CheckPathAccess(t.TempDir())
	if !result.Passed {
		t.Fatalf("expected pass for temp dir, got: %s", result.Detail)
	}
}

func TestCheckPathAccessFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "capture.cu8")
	if err := os.WriteFile(path, make([]byte, 2048), 0o644); err != nil {
		t.Fatal(err)
	}
	result := CheckPathAccess(path)
	if !result.Passed {
		t.Fatalf("expected pass for readable file, got: %s", result.Detail)
	}
	if !strings.Contains(result.Detail, "2.0 kB") {
		t.Fatalf("expected humanized size in detail, got %q", result.Detail)
	}
}

func TestCheckPathAccessMissing(t *testing.T) {
	result := CheckPathAccess(filepath.Join(t.TempDir(), "nope"))
	if result.Passed {
		t.Fatal("expected failure for missing path")
	}
	if !strings.Contains(result.Detail, "does not exist") {
		t.Fatalf("unexpected detail %q", result.Detail)
	}
}

func TestCheckRenderer(t *testing.T) {
	dir := t.TempDir()
	stub := filepath.Join(dir, "sox")
	if err := os.WriteFile(stub, []byte("#!/bin/sh\nexit 0\n"), 0o755); err != nil {
		t.Fatal(err)
	}
	if result := CheckRenderer(stub); !result.Passed || result.Detail != stub {
		t.Fatalf("expected stub sox to pass, got %+v", result)
	}
	if result := CheckRenderer(filepath.Join(dir, "missing-sox")); result.Passed {
		t.Fatal("expected missing sox to fail")
	}
}

func TestRunAllOrder(t *testing.T) {
	dir := t.TempDir()
	results := RunAll("clearly-not-present-sox", []string{dir, filepath.Join(dir, "absent")})
	if len(results) != 3 {
		t.Fatalf("expected 3 results, got %d", len(results))
	}
	if results[0].Name != "SoX" || results[0].Passed {
		t.Fatalf("unexpected renderer result %+v", results[0])
	}
	if !results[1].Passed || results[2].Passed {
		t.Fatalf("unexpected path results %+v", results[1:])
	}
}
