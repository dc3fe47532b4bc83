package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-gorillas/internal/config"
	"github.com/vovakirdan/tui-gorillas/internal/games/gorillas"
)

var flagConfigDefaults bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print or check the game config",
	Long: `Print the configuration the next match would use, after the search
order, --config and --difficulty have been applied. Exits non-zero if the
result is invalid.

With --defaults, prints the built-in gorillas.yaml, a good starting point
for ~/.gorillas/configs/gorillas.yaml.

Examples:
  gorillas config
  gorillas config --difficulty hard
  gorillas config --defaults > ~/.gorillas/configs/gorillas.yaml`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&flagConfigDefaults, "defaults", false, "Print the built-in defaults")
}

func runConfig(_ *cobra.Command, _ []string) error {
	if flagConfigDefaults {
		_, err := os.Stdout.Write(config.DefaultYAML())
		return err
	}

	cfg, err := gorillas.LoadConfig()
	if err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	enc := yaml.NewEncoder(os.Stdout)
	enc.SetIndent(2)
	defer enc.Close()
	return enc.Encode(cfg)
}
