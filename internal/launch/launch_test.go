package launch

import (
	"context"
	"os"
	"os/exec"
	"reflect"
	"strings"
	"testing"

	"github.com/krlabs/devserve/internal/config"
)

func testConfig() config.Config {
	return config.Config{
		Interpreter:   "python3",
		Host:          "0.0.0.0",
		Port:          8000,
		Reload:        true,
		AppTarget:     "fastapi_file:app",
		FallbackEntry: "start_api.py",
		LogLevel:      "info",
	}
}

func TestChildEnvPrependsWorkDir(t *testing.T) {
	l := &Launcher{Config: testConfig(), WorkDir: "/srv/pipeline"}
	sep := string(os.PathListSeparator)

	env := l.childEnv([]string{"HOME=/root", "PYTHONPATH=/old/path"})

	var pythonPaths []string
	for _, kv := range env {
		if v, ok := strings.CutPrefix(kv, "PYTHONPATH="); ok {
			pythonPaths = append(pythonPaths, v)
		}
	}
	if len(pythonPaths) != 1 {
		t.Fatalf("expected exactly one PYTHONPATH entry, got %v", pythonPaths)
	}
	if want := "/srv/pipeline" + sep + "/old/path"; pythonPaths[0] != want {
		t.Fatalf("PYTHONPATH = %q, want %q", pythonPaths[0], want)
	}
}

func TestChildEnvWithoutExistingPythonPath(t *testing.T) {
	l := &Launcher{Config: testConfig(), WorkDir: "/srv/pipeline"}

	for _, base := range [][]string{
		{"HOME=/root"},
		{"HOME=/root", "PYTHONPATH="},
	} {
		env := l.childEnv(base)
		found := false
		for _, kv := range env {
			if kv == "PYTHONPATH=/srv/pipeline" {
				found = true
			}
		}
		if !found {
			t.Fatalf("PYTHONPATH missing or wrong in %v", env)
		}
	}
}

func TestChildEnvDoesNotMutateBase(t *testing.T) {
	l := &Launcher{Config: testConfig(), WorkDir: "/srv/pipeline"}
	base := []string{"HOME=/root", "PYTHONPATH=/old"}

	l.childEnv(base)

	want := []string{"HOME=/root", "PYTHONPATH=/old"}
	if !reflect.DeepEqual(base, want) {
		t.Fatalf("base environment mutated: %v", base)
	}
}

func TestUvicornArgs(t *testing.T) {
	l := &Launcher{Config: testConfig(), WorkDir: "/srv/pipeline"}

	want := []string{
		"-m", "uvicorn", "fastapi_file:app",
		"--host", "0.0.0.0",
		"--port", "8000",
		"--log-level", "info",
		"--reload", "--reload-dir", "/srv/pipeline",
	}
	if got := l.uvicornArgs(); !reflect.DeepEqual(got, want) {
		t.Fatalf("args = %v, want %v", got, want)
	}
}

func TestUvicornArgsWithoutReload(t *testing.T) {
	cfg := testConfig()
	cfg.Reload = false
	l := &Launcher{Config: cfg, WorkDir: "/srv/pipeline"}

	for _, arg := range l.uvicornArgs() {
		if arg == "--reload" {
			t.Fatal("--reload present with reload disabled")
		}
	}
}

func TestServeReportsLaunchFailure(t *testing.T) {
	l := &Launcher{
		Config:  testConfig(),
		WorkDir: t.TempDir(),
		newCommand: func(ctx context.Context, name string, args ...string) *exec.Cmd {
			return exec.CommandContext(ctx, "false")
		},
	}

	if err := l.Serve(context.Background()); err == nil {
		t.Fatal("expected an error from a failed launch")
	}
}

func TestServeTreatsInterruptAsCleanStop(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel() // operator already hit Ctrl+C

	l := &Launcher{
		Config:  testConfig(),
		WorkDir: t.TempDir(),
		newCommand: func(ctx context.Context, name string, args ...string) *exec.Cmd {
			return exec.Command("false")
		},
	}

	if err := l.Serve(ctx); err != nil {
		t.Fatalf("interrupted stop should be clean, got %v", err)
	}
}

func TestHintNamesFallbackEntryAndPort(t *testing.T) {
	l := &Launcher{Config: testConfig(), WorkDir: "/srv/pipeline"}

	hint := l.Hint()
	for _, want := range []string{"8000", "python3 start_api.py"} {
		if !strings.Contains(hint, want) {
			t.Fatalf("hint %q missing %q", hint, want)
		}
	}
}
