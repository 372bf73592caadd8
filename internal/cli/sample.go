package cli

import (
	_ "embed"
	"fmt"

	"github.com/spf13/cobra"
)

//go:embed sample.txt
var sampleScript string

var sampleCmd = &cobra.Command{
	Use:   "sample",
	Short: "Print an example dialogue script",
	Long: `Print an example dialogue script in the format generate reads.

Example:
  scriptsrt sample > episode.txt
  scriptsrt generate episode.txt -d 0:40`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprint(cmd.OutOrStdout(), sampleScript)
	},
}

func init() {
	rootCmd.AddCommand(sampleCmd)
}
