package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/krlabs/devserve/internal/config"
	"github.com/krlabs/devserve/internal/preflight"
	"github.com/krlabs/devserve/internal/python"
	"github.com/krlabs/devserve/internal/ui"
)

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Run the pre-flight checks without launching the server",
	Long: `Run the same gate sequence as the default command, but never install
anything and never start the server. Useful in CI to validate a checkout.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}

		py := python.New(cfg.Interpreter)
		runner := &preflight.Runner{Checks: preflight.Gates(cfg, py, false)}
		report := runner.Run(cmd.Context())
		fmt.Print(ui.RenderReport(report))

		if res, ok := report.FirstFailure(); ok {
			return fmt.Errorf("environment is not ready: %s", res.Detail)
		}
		if n := report.Warnings(); n > 0 {
			fmt.Println(ui.Warnf("Environment is usable with %d warning(s).", n))
			return nil
		}
		fmt.Println("Environment looks good.")
		return nil
	},
}
