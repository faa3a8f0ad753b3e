// Package launch hands control to uvicorn, the host runtime that actually
// serves the application. devserve's job ends at building the child
// process: arguments, environment, and the verdict on how it exited.
package launch

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strconv"
	"strings"

	"github.com/krlabs/devserve/internal/config"
)

// Launcher starts uvicorn against the configured application target and
// blocks for the lifetime of the server.
type Launcher struct {
	Config  config.Config
	WorkDir string
	Stdout  io.Writer
	Stderr  io.Writer

	// newCommand is a test seam; production code uses exec.CommandContext.
	newCommand func(ctx context.Context, name string, args ...string) *exec.Cmd
}

// New creates a Launcher wired to the process stdio.
func New(cfg config.Config, workDir string) *Launcher {
	return &Launcher{
		Config:     cfg,
		WorkDir:    workDir,
		Stdout:     os.Stdout,
		Stderr:     os.Stderr,
		newCommand: exec.CommandContext,
	}
}

// childEnv builds the environment for the uvicorn child. The working
// directory is prepended to PYTHONPATH so the application target resolves.
// The mutation lives only in the returned slice; the parent environment is
// never touched.
func (l *Launcher) childEnv(base []string) []string {
	env := make([]string, 0, len(base)+1)
	pythonPath := l.WorkDir
	for _, kv := range base {
		if v, ok := strings.CutPrefix(kv, "PYTHONPATH="); ok {
			if v != "" {
				pythonPath = l.WorkDir + string(os.PathListSeparator) + v
			}
			continue
		}
		env = append(env, kv)
	}
	return append(env, "PYTHONPATH="+pythonPath)
}

// uvicornArgs builds the launch arguments for `python -m uvicorn`.
func (l *Launcher) uvicornArgs() []string {
	args := []string{
		"-m", "uvicorn", l.Config.AppTarget,
		"--host", l.Config.Host,
		"--port", strconv.Itoa(l.Config.Port),
		"--log-level", l.Config.LogLevel,
	}
	if l.Config.Reload {
		args = append(args, "--reload", "--reload-dir", l.WorkDir)
	}
	return args
}

// Serve runs uvicorn and blocks until it exits. An exit caused by the
// operator's interrupt (the context being canceled) is a clean stop, not
// an error.
func (l *Launcher) Serve(ctx context.Context) error {
	cmd := l.newCommand(ctx, l.Config.Interpreter, l.uvicornArgs()...)
	cmd.Dir = l.WorkDir
	cmd.Env = l.childEnv(os.Environ())
	cmd.Stdout = l.Stdout
	cmd.Stderr = l.Stderr

	err := cmd.Run()
	if err == nil {
		return nil
	}
	if ctx.Err() != nil {
		// uvicorn exits non-zero after a signal; that is the operator
		// stopping the server, not a launch failure.
		return nil
	}
	return fmt.Errorf("server exited: %w", err)
}

// Hint is the remediation line printed after a launch failure.
func (l *Launcher) Hint() string {
	return fmt.Sprintf("check that port %d is free, or start the server directly with: %s %s",
		l.Config.Port, l.Config.Interpreter, l.Config.FallbackEntry)
}
