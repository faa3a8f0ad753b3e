package python

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"time"
)

// Interpreter wraps the Python toolchain found on the developer's PATH.
type Interpreter struct {
	Binary string

	lookPath func(string) (string, error)
	run      func(*exec.Cmd) error
}

// New returns an Interpreter for the given binary name (usually "python3").
func New(binary string) *Interpreter {
	return &Interpreter{
		Binary:   binary,
		lookPath: exec.LookPath,
		run:      (*exec.Cmd).Run,
	}
}

// Available checks for the interpreter binary.
func (i *Interpreter) Available() bool {
	_, err := i.lookPath(i.Binary)
	return err == nil
}

// Path resolves the interpreter binary for display. Falls back to the bare
// name when resolution fails.
func (i *Interpreter) Path() string {
	p, err := i.lookPath(i.Binary)
	if err != nil {
		return i.Binary
	}
	return p
}

// CheckImport probes whether a package is importable. Output is discarded;
// the exit code is the only signal.
func (i *Interpreter) CheckImport(ctx context.Context, pkg string) error {
	ctx, cancel := context.WithTimeout(ctx, 15*time.Second)
	defer cancel()

	cmd := exec.CommandContext(ctx, i.Binary, "-c", fmt.Sprintf("import %s", pkg))
	if err := i.run(cmd); err != nil {
		return fmt.Errorf("package %s is not importable: %w", pkg, err)
	}
	return nil
}

// Install runs a single pip install for one package, streaming pip's output
// to the terminal. It is best-effort: callers proceed regardless of the
// outcome, and a failed install surfaces later when the server launch fails.
func (i *Interpreter) Install(ctx context.Context, pkg string) error {
	cmd := exec.CommandContext(ctx, i.Binary, "-m", "pip", "install", pkg)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := i.run(cmd); err != nil {
		return fmt.Errorf("pip install %s failed: %w", pkg, err)
	}
	return nil
}
