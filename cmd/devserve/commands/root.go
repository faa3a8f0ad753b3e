package commands

import (
	"context"
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/krlabs/devserve/internal/config"
	"github.com/krlabs/devserve/internal/launch"
	"github.com/krlabs/devserve/internal/preflight"
	"github.com/krlabs/devserve/internal/python"
	"github.com/krlabs/devserve/internal/ui"
	"github.com/krlabs/devserve/internal/version"
)

var rootCmd = &cobra.Command{
	Use:   "devserve",
	Short: "Development launcher for the Enterprise Search Pipeline",
	Long: `devserve - Pre-flight checks and auto-reload launcher

Validate. Repair. Serve.`,
	Version: version.Current,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServe(cmd.Context())
	},
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the CLI. Exit codes: 0 on clean server termination or
// operator interrupt, 1 on any fatal precondition or launch failure.
func Execute(ctx context.Context) {
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, ui.Failf("Error: %v", err))
		os.Exit(1)
	}
}

func init() {
	rootCmd.SetHelpFunc(func(cmd *cobra.Command, args []string) {
		renderHelp(cmd)
	})

	rootCmd.AddCommand(doctorCmd)
}

func runServe(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	workDir, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("failed to resolve working directory: %w", err)
	}

	py := python.New(cfg.Interpreter)

	// 1. Gate sequence. Fatal gates short-circuit; missing packages get
	// one optimistic pip install each.
	runner := &preflight.Runner{Checks: preflight.Gates(cfg, py, true)}
	report := runner.Run(ctx)
	fmt.Print(ui.RenderReport(report))
	if res, ok := report.FirstFailure(); ok {
		return fmt.Errorf("pre-flight failed at %s: %s", res.Name, res.Detail)
	}

	// 2. Hand off to uvicorn. Blocks for the lifetime of the server.
	launcher := launch.New(cfg, workDir)
	fmt.Print(ui.Banner(cfg, workDir, py.Path()))
	if err := launcher.Serve(ctx); err != nil {
		fmt.Fprintln(os.Stderr, ui.Warnf("Hint: %s", launcher.Hint()))
		return err
	}

	fmt.Println("Server stopped.")
	return nil
}

func renderHelp(cmd *cobra.Command) {
	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#00FF99")).
		MarginBottom(1)

	flagStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("#AAAAAA"))

	fmt.Println(titleStyle.Render(fmt.Sprintf("DEVSERVE %s", version.Current)))
	fmt.Println("Pre-flight checks and auto-reload launcher for the Enterprise Search Pipeline.")

	fmt.Println(titleStyle.Render("USAGE"))
	fmt.Printf("  %s\n\n", cmd.UseLine())

	fmt.Println(titleStyle.Render("COMMANDS"))
	for _, c := range cmd.Commands() {
		if c.IsAvailableCommand() {
			fmt.Printf("  %-12s %s\n", c.Name(), c.Short)
		}
	}
	fmt.Println("")

	fmt.Println(titleStyle.Render("EXAMPLES"))
	fmt.Println("  devserve            # Check the environment, then serve with auto-reload")
	fmt.Println("  devserve doctor     # Check the environment only (CI friendly)")
	fmt.Println("")

	fmt.Println(titleStyle.Render("FLAGS"))
	cmd.Flags().VisitAll(func(f *pflag.Flag) {
		if f.Hidden {
			return
		}
		output := fmt.Sprintf("  --%-15s %s", f.Name, f.Usage)
		if f.DefValue != "" && f.DefValue != "false" && f.DefValue != "0" {
			output += fmt.Sprintf(" (default %s)", f.DefValue)
		}
		fmt.Println(flagStyle.Render(output))
	})
	fmt.Println("")
}
