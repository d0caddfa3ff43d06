package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	lflog "github.com/msto63/lazyfactory/core/log"
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "factoryctl",
	Short: "Inspect and validate lazyfactory manifests",
	Long: `factoryctl works with factory manifests: declarative TOML or YAML
files naming the items a factory is expected to carry.

Commands:
  lint  - validate manifest files standalone
  show  - print the contents of a manifest`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if verbose {
			lflog.GetDefault().SetLevel(lflog.LevelDebug)
		}
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}

func printError(msg string, err error) {
	fmt.Fprintf(os.Stderr, "error: %s: %v\n", msg, err)
}
