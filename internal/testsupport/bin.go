package testsupport

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

// InstallStubSox writes a fake sox onto the front of PATH. Each invocation
// appends its arguments as one line to the returned log file and touches
// the file named by its final argument. Invocations whose input path
// contains "broken" exit non-zero without writing anything.
func InstallStubSox(t testing.TB) string {
	t.Helper()

	if runtime.GOOS == "windows" {
		t.Skip("stub sox requires a POSIX shell")
	}
	binDir := t.TempDir()
	logPath := filepath.Join(binDir, "sox-calls.log")
	script := `#!/bin/sh
for arg in "$@"; do
	case "$arg" in
	*broken*) echo "sox FAIL formats: can't open input file" >&2; exit 2 ;;
	esac
done
echo "$@" >> "` + logPath + `"
for last in "$@"; do :; done
: > "$last"
`
	if err := os.WriteFile(filepath.Join(binDir, "sox"), []byte(script), 0o755); err != nil {
		t.Fatalf("write stub sox: %v", err)
	}

	path := binDir
	if old := os.Getenv("PATH"); old != "" {
		path = binDir + string(os.PathListSeparator) + old
	}
	t.Setenv("PATH", path)
	return logPath
}
