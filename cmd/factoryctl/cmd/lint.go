package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/msto63/lazyfactory/manifest"
)

var lintCmd = &cobra.Command{
	Use:   "lint <manifest>...",
	Short: "Validate manifest files",
	Long: `Validates one or more manifest files: readable, well-formed TOML or
YAML, non-blank names, and no item collisions under the declared case
policy. Exits non-zero on the first invalid manifest.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runLint,
}

func init() {
	rootCmd.AddCommand(lintCmd)
}

func runLint(cmd *cobra.Command, args []string) error {
	for _, path := range args {
		if _, err := manifest.Load(path); err != nil {
			printError(path, err)
			return err
		}
		fmt.Printf("%s: ok\n", path)
	}
	return nil
}
