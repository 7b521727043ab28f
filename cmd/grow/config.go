package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-grow/internal/config"
)

var flagCheck string

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the default game config",
	Long: `Prints the built-in game config as YAML. Save it to
~/.grow/configs/grow.yaml or ./configs/grow.yaml to override values,
or pass it to 'grow play --config <file>'.

Examples:
  grow config > my-grow.yaml
  grow config --check my-grow.yaml`,
	Args: cobra.NoArgs,
	Run:  runConfig,
}

func init() {
	configCmd.Flags().StringVar(&flagCheck, "check", "", "Validate a config file instead of printing the default")
}

func runConfig(cmd *cobra.Command, args []string) {
	if flagCheck != "" {
		if _, err := config.LoadGrow(flagCheck); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("%s: ok\n", flagCheck)
		return
	}

	data := config.GetDefaultYAML(defaultGame)
	if data == nil {
		fmt.Fprintf(os.Stderr, "Error: no default config for %q\n", defaultGame)
		os.Exit(1)
	}
	fmt.Print(string(data))
}
