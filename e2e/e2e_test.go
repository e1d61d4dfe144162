//go:build e2e

package e2e_test

import (
	"errors"
	"io/fs"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/rogpeppe/go-internal/testscript"
)

const (
	waitTimeout  = 15 * time.Second
	waitInterval = 50 * time.Millisecond
)

var tallyBinary string

func TestMain(m *testing.M) {
	tmpDir, err := os.MkdirTemp("", "tally-e2e-*")
	if err != nil {
		panic(err)
	}

	tallyBinary = filepath.Join(tmpDir, "tally")

	//nolint:gosec // Building binary with static arguments, not user input
	cmd := exec.Command("go", "build", "-o", tallyBinary, "./cmd/tally")
	cmd.Dir = ".."
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	if err := cmd.Run(); err != nil {
		panic("failed to build tally binary: " + err.Error())
	}

	exitCode := m.Run()

	_ = os.RemoveAll(tmpDir)

	os.Exit(exitCode)
}

func TestScripts(t *testing.T) {
	testscript.Run(t, testscript.Params{
		Dir:   "testdata",
		Setup: setupE2E,
		Cmds: map[string]func(ts *testscript.TestScript, neg bool, args []string){
			"wait-file": cmdWaitFile,
			"wait-gone": cmdWaitGone,
		},
	})
}

func setupE2E(env *testscript.Env) error {
	env.Setenv("NO_COLOR", "1")
	env.Setenv("CI", "true")

	binDir := filepath.Dir(tallyBinary)
	currentPath := env.Getenv("PATH")
	env.Setenv("PATH", binDir+string(os.PathListSeparator)+currentPath)

	homeDir := filepath.Join(env.WorkDir, ".home")
	if err := os.MkdirAll(homeDir, 0o750); err != nil {
		return err
	}
	env.Setenv("HOME", homeDir)
	env.Setenv("XDG_CONFIG_HOME", filepath.Join(homeDir, ".config"))

	return nil
}

// cmdWaitFile polls until a file exists and contains the given text.
// The refresh job runs detached, so scripts cannot simply exec and check.
//
//	wait-file path text
func cmdWaitFile(ts *testscript.TestScript, neg bool, args []string) {
	if neg {
		ts.Fatalf("unsupported: ! wait-file")
	}
	if len(args) != 2 {
		ts.Fatalf("usage: wait-file path text")
	}

	path := ts.MkAbs(args[0])
	var last string
	if poll(func() bool {
		//nolint:gosec // path is inside the script's work dir
		data, err := os.ReadFile(path)
		if err != nil {
			return false
		}
		last = string(data)
		return strings.Contains(last, args[1])
	}) {
		return
	}
	ts.Fatalf("%s never contained %q; last content: %q", args[0], args[1], last)
}

// cmdWaitGone polls until a path no longer exists.
//
//	wait-gone path
func cmdWaitGone(ts *testscript.TestScript, neg bool, args []string) {
	if neg {
		ts.Fatalf("unsupported: ! wait-gone")
	}
	if len(args) != 1 {
		ts.Fatalf("usage: wait-gone path")
	}

	path := ts.MkAbs(args[0])
	if poll(func() bool {
		_, err := os.Stat(path)
		return errors.Is(err, fs.ErrNotExist)
	}) {
		return
	}
	ts.Fatalf("%s still exists after %s", args[0], waitTimeout)
}

func poll(done func() bool) bool {
	deadline := time.Now().Add(waitTimeout)
	for time.Now().Before(deadline) {
		if done() {
			return true
		}
		time.Sleep(waitInterval)
	}
	return done()
}
