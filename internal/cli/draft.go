package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/mgpai22/scriptsrt/internal/transcribe"
	"github.com/mgpai22/scriptsrt/internal/video"
	"github.com/spf13/cobra"
)

var draftCmd = &cobra.Command{
	Use:   "draft [media_file]",
	Short: "Draft a dialogue script from a video or audio file",
	Long: `Draft a timestamped dialogue script by transcribing a media file with
Gemini. The draft is written next to the media file as <name>.txt, or to
--output, and can be edited before running generate.

Examples:
  scriptsrt draft episode.mp4
  scriptsrt draft episode.mp4 --speakers Subaru,Beako -o episode.txt
  scriptsrt draft episode.mp4 -l japanese --transcript-language english`,
	Args: cobra.ExactArgs(1),
	RunE: runDraft,
}

func init() {
	rootCmd.AddCommand(draftCmd)

	draftCmd.Flags().
		StringP("api-key", "k", "", "Gemini API key (or set GEMINI_API_KEY env var)")
	draftCmd.Flags().
		String("model", "", "Model to use (default gemini-2.5-flash)")
	draftCmd.Flags().
		StringSlice("speakers", nil, "Known speaker names, comma separated")
	draftCmd.Flags().
		String("transcript-language", "native", "Language to write the dialogue in")
}

func runDraft(cmd *cobra.Command, args []string) error {
	mediaPath := args[0]

	apiKey, _ := cmd.Flags().GetString("api-key")
	model, _ := cmd.Flags().GetString("model")
	speakers, _ := cmd.Flags().GetStringSlice("speakers")
	transcriptLang, _ := cmd.Flags().GetString("transcript-language")
	language, _ := cmd.Flags().GetString("language")
	outputPath, _ := cmd.Flags().GetString("output")

	if !video.IsMediaFile(mediaPath) {
		return fmt.Errorf("unsupported media file: %s", mediaPath)
	}

	if apiKey == "" {
		apiKey = os.Getenv("GEMINI_API_KEY")
	}
	if apiKey == "" {
		return fmt.Errorf(
			"API key is required: use --api-key flag or set GEMINI_API_KEY environment variable",
		)
	}

	if outputPath == "" {
		outputPath = draftOutputPath(mediaPath)
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	drafter, err := transcribe.Factory(
		ctx,
		transcribe.ProviderGemini,
		apiKey,
		transcribe.Options{
			Language:           language,
			TranscriptLanguage: transcriptLang,
			Speakers:           speakers,
			Model:              model,
		},
	)
	if err != nil {
		return fmt.Errorf("failed to create drafter: %w", err)
	}

	logger.Infow("Drafting script",
		"media", mediaPath,
		"output", outputPath,
		"speakers", len(speakers),
	)

	result, err := drafter.Draft(ctx, mediaPath)
	if err != nil {
		return fmt.Errorf("draft failed: %w", err)
	}
	for _, w := range result.Warnings {
		logger.Warnw("Draft contains a malformed block", "warning", w)
	}

	if err := os.MkdirAll(filepath.Dir(outputPath), 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}
	if err := os.WriteFile(outputPath, []byte(result.Script+"\n"), 0644); err != nil {
		return fmt.Errorf("failed to write draft: %w", err)
	}

	absOutput, _ := filepath.Abs(outputPath)
	fmt.Fprintf(cmd.OutOrStdout(), "Script drafted successfully: %s\n", absOutput)
	fmt.Fprintf(cmd.OutOrStdout(), "  Entries: %d\n", len(result.Entries))

	return nil
}

// episode.mp4 -> episode.txt
func draftOutputPath(mediaPath string) string {
	ext := filepath.Ext(mediaPath)
	return strings.TrimSuffix(mediaPath, ext) + ".txt"
}
