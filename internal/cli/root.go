package cli

import (
	"github.com/mgpai22/scriptsrt/internal/logging"
	"github.com/spf13/cobra"
)

var (
	verbose bool
	logger  = logging.Nop()
)

var rootCmd = &cobra.Command{
	Use:   "scriptsrt",
	Short: "Turn timestamped dialogue scripts into SRT subtitles",
	Long: `scriptsrt converts loosely formatted dialogue scripts such as

  (0:06) Subaru: "Hello there."

  (0:12) Beako: "Indeed."

into SubRip (.srt) subtitle files. Each line is shown from its own
timestamp until just before the next one; the last line runs until the
end of the video.`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logger = logging.NewLogger(verbose)
	},
}

func Execute() error {
	defer func() { _ = logger.Sync() }()
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().
		BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().StringP("output", "o", "", "Output file path")
	rootCmd.PersistentFlags().
		StringP("language", "l", "", "Language of the dialogue (e.g., en, ja)")
}
