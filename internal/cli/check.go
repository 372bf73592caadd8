package cli

import (
	"fmt"
	"io"

	"github.com/mgpai22/scriptsrt/internal/subtitle"
	"github.com/spf13/cobra"
)

var checkCmd = &cobra.Command{
	Use:   "check [srt_file]",
	Short: "Report timing problems in an SRT file",
	Long: `Read an SRT file and report cues with negative times, cues that end
before they start, and cues that overlap the next one.

Scripts with out-of-order timestamps produce such cues, and so does a
video duration shorter than the last timestamp. The command exits with
an error when anything is found.

Example:
  scriptsrt check output.srt`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return checkFile(args[0], cmd.OutOrStdout())
	},
}

func init() {
	rootCmd.AddCommand(checkCmd)
}

func checkFile(path string, out io.Writer) error {
	cues, err := subtitle.ReadFile(path)
	if err != nil {
		return err
	}

	findings := subtitle.Check(cues)
	logger.Debugw("Checked subtitle file",
		"file", path,
		"cues", len(cues),
		"findings", len(findings),
	)

	if len(findings) == 0 {
		fmt.Fprintf(out, "%s: %d cues, no problems found\n", path, len(cues))
		return nil
	}

	for _, f := range findings {
		fmt.Fprintln(out, f.String())
	}
	return fmt.Errorf("%s: %d problem(s) in %d cues", path, len(findings), len(cues))
}
