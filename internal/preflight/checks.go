package preflight

import (
	"context"
	"fmt"
	"os"

	"github.com/krlabs/devserve/internal/config"
)

// Toolchain is the slice of the Python interpreter the gates need.
type Toolchain interface {
	Available() bool
	Path() string
	CheckImport(ctx context.Context, pkg string) error
	Install(ctx context.Context, pkg string) error
}

// Gates assembles the launch gate sequence in its fixed order:
// working directory, env file, interpreter, then one gate per package.
// With repair disabled the package gates only probe (doctor mode).
func Gates(cfg config.Config, py Toolchain, repair bool) []Check {
	checks := []Check{
		MarkerCheck(cfg.MarkerFile),
		DotenvCheck(cfg.EnvFile),
		InterpreterCheck(py),
	}
	for _, pkg := range cfg.Packages {
		checks = append(checks, PackageCheck(py, pkg, repair))
	}
	return checks
}

// MarkerCheck verifies the application entry file exists. Its absence means
// devserve was started from the wrong directory, and nothing else is worth
// checking.
func MarkerCheck(marker string) Check {
	return Check{
		Name:     "working directory",
		Severity: Fatal,
		Run: func(ctx context.Context) Result {
			if _, err := os.Stat(marker); err != nil {
				return Result{
					Status: Failed,
					Detail: fmt.Sprintf("%s not found, run devserve from the pipeline directory", marker),
				}
			}
			return Result{Status: Passed, Detail: marker + " present"}
		},
	}
}

// DotenvCheck looks for the application's .env file. Missing is only a
// warning: the app falls back to ambient environment variables.
func DotenvCheck(path string) Check {
	return Check{
		Name:     "environment file",
		Severity: Advisory,
		Run: func(ctx context.Context) Result {
			if _, err := os.Stat(path); err != nil {
				return Result{
					Status: Warned,
					Detail: path + " not found, the app will use ambient environment variables",
				}
			}
			return Result{Status: Passed, Detail: path + " present"}
		},
	}
}

// InterpreterCheck verifies the Python binary is on PATH.
func InterpreterCheck(py Toolchain) Check {
	return Check{
		Name:     "python interpreter",
		Severity: Fatal,
		Run: func(ctx context.Context) Result {
			if !py.Available() {
				return Result{
					Status: Failed,
					Detail: py.Path() + " is not on PATH",
				}
			}
			return Result{Status: Passed, Detail: py.Path()}
		},
	}
}

// PackageCheck probes one Python package and, when repair is allowed,
// issues exactly one pip install for it on a failed probe. The install is
// optimistic: success is not re-verified, a broken install fails loudly at
// launch instead.
func PackageCheck(py Toolchain, pkg string, repair bool) Check {
	return Check{
		Name:     "package " + pkg,
		Severity: Advisory,
		Run: func(ctx context.Context) Result {
			if err := py.CheckImport(ctx, pkg); err == nil {
				return Result{Status: Passed, Detail: pkg + " importable"}
			}
			if !repair {
				return Result{Status: Warned, Detail: pkg + " is not importable"}
			}
			if err := py.Install(ctx, pkg); err != nil {
				return Result{
					Status: Fixed,
					Detail: fmt.Sprintf("install attempted for %s (%v)", pkg, err),
				}
			}
			return Result{Status: Fixed, Detail: "installed " + pkg}
		},
	}
}
