package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/neon-runner/internal/config"
)

var flagEffective bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the runner configuration",
	Long: `Print the default runner configuration as YAML.

Save the output to ~/.neonrun/configs/runner.yaml, or to any file passed
with --config, and edit it to tune physics, world size and entity sizes.
Keys left out of a custom file keep their default values.

With --effective the command prints the configuration 'neonrun play'
would use after applying --config and the search order.

Examples:
  neonrun config > runner.yaml
  neonrun config --effective --config ./runner.yaml`,
	Args: cobra.NoArgs,
	Run:  runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&flagEffective, "effective", false, "Print the loaded configuration instead of the defaults")
}

func runConfig(cmd *cobra.Command, args []string) {
	if err := writeConfig(os.Stdout, flagEffective, flagConfig); err != nil {
		fail("%v", err)
	}
}

// writeConfig writes the embedded default YAML, or the loaded config when
// effective is set.
func writeConfig(w io.Writer, effective bool, customPath string) error {
	if !effective {
		_, err := w.Write(config.DefaultYAML())
		return err
	}

	cfg, err := config.LoadRunner(customPath)
	if err != nil {
		return err
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("cannot encode config: %w", err)
	}
	_, err = w.Write(data)
	return err
}
