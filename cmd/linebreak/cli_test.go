package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/memfs"
	"github.com/go-git/go-billy/v5/util"
)

// testEnv swaps the process state the commands read for in-memory
// stand-ins: an empty filesystem, a config path inside it, the given
// standard input, and a standard output that is not a terminal.
type testEnv struct {
	t      *testing.T
	fs     billy.Filesystem
	stderr bytes.Buffer
	config string
}

func newTestEnv(t *testing.T, input string) *testEnv {
	t.Helper()
	e := &testEnv{t: t, fs: memfs.New(), config: "/etc/linebreak/config.yaml"}

	out, err := os.CreateTemp(t.TempDir(), "stdout")
	if err != nil {
		t.Fatalf("CreateTemp: %v", err)
	}
	t.Cleanup(func() { out.Close() })

	origFS, origIn, origErr, origOut, origVerbose := rootFS, stdin, stderr, stdout, verbose
	rootFS, stdin, stderr, stdout, verbose = e.fs, strings.NewReader(input), &e.stderr, out, false
	t.Cleanup(func() {
		rootFS, stdin, stderr, stdout, verbose = origFS, origIn, origErr, origOut, origVerbose
	})

	t.Setenv("LINEBREAK_CONFIG", e.config)
	t.Setenv("LINEBREAK_WIDTH", "")
	t.Setenv("COLUMNS", "")
	t.Setenv("LC_ALL", "C")
	return e
}

// run executes the CLI with args and returns what it printed.
func (e *testEnv) run(args ...string) (string, error) {
	e.t.Helper()
	var buf bytes.Buffer
	err := run(args, PlainWriter(&buf, 0))
	return buf.String(), err
}

func (e *testEnv) mustRun(args ...string) string {
	e.t.Helper()
	out, err := e.run(args...)
	if err != nil {
		e.t.Fatalf("linebreak %s: %v", strings.Join(args, " "), err)
	}
	return out
}

// writeFile stores content at path, made absolute the way the CLI does.
func (e *testEnv) writeFile(path, content string) {
	e.t.Helper()
	abs, err := filepath.Abs(path)
	if err != nil {
		e.t.Fatal(err)
	}
	if err := util.WriteFile(e.fs, abs, []byte(content), 0o644); err != nil {
		e.t.Fatalf("WriteFile: %v", err)
	}
}
