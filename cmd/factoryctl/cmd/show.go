package cmd

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/msto63/lazyfactory/manifest"
)

var showCmd = &cobra.Command{
	Use:   "show <manifest>",
	Short: "Print the contents of a manifest",
	Args:  cobra.ExactArgs(1),
	RunE:  runShow,
}

func init() {
	rootCmd.AddCommand(showCmd)
}

func runShow(cmd *cobra.Command, args []string) error {
	m, err := manifest.Load(args[0])
	if err != nil {
		printError(args[0], err)
		return err
	}

	fmt.Printf("Manifest: %s\n", m.Name)
	fmt.Printf("Case-insensitive: %v\n", m.CaseInsensitive)
	fmt.Printf("Items (%d):\n", len(m.Items))

	names := append([]string(nil), m.Items...)
	sort.Strings(names)
	for _, name := range names {
		fmt.Printf("  - %s\n", name)
	}

	return nil
}
