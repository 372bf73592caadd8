package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/mgpai22/scriptsrt/internal/script"
	"github.com/mgpai22/scriptsrt/internal/subtitle"
	"github.com/mgpai22/scriptsrt/internal/translate"
	"github.com/mgpai22/scriptsrt/internal/video"
	"github.com/spf13/cobra"
)

const defaultInteractiveDuration = "2:30"

var generateCmd = &cobra.Command{
	Use:   "generate [script_file]",
	Short: "Generate an SRT file from a dialogue script",
	Long: `Generate a SubRip subtitle file from a timestamped dialogue script.

The script is read from the given file, from standard input when the file
is "-", or interactively when no file is given. Blocks look like

  (1:05) Speaker: "Dialogue, possibly
  spanning lines."

and are separated by blank lines. Blocks that do not have this shape are
skipped with a warning.

The video duration bounds the last subtitle. Pass it with --duration
(m:ss or seconds) or let ffprobe read it from --video.

Examples:
  scriptsrt generate
  scriptsrt generate episode.txt -d 2:30 -o episode
  cat episode.txt | scriptsrt generate - --video episode.mp4 --burn
  scriptsrt generate episode.txt -d 2:30 --translate-to spanish --provider openai`,
	Args: cobra.MaximumNArgs(1),
	RunE: runGenerate,
}

func init() {
	rootCmd.AddCommand(generateCmd)

	generateCmd.Flags().
		StringP("duration", "d", "", "Video duration as m:ss or seconds")
	generateCmd.Flags().
		String("video", "", "Media file to read the duration from with ffprobe")
	generateCmd.Flags().
		Bool("burn", false, "Also write a copy of --video with the subtitles burned in")
	generateCmd.Flags().
		Bool("strict", false, "Fail instead of skipping malformed blocks")
	generateCmd.Flags().
		StringP("translate-to", "t", "", "Translate dialogue to this language before writing")
	generateCmd.Flags().
		String("provider", "gemini", "Translation provider (gemini, openai, anthropic)")
	generateCmd.Flags().
		StringP("api-key", "k", "", "API key (or set GEMINI_API_KEY/OPENAI_API_KEY/ANTHROPIC_API_KEY)")
	generateCmd.Flags().
		String("model", "", "Model to use for translation (provider-specific default)")
	generateCmd.Flags().
		Int("concurrency", 3, "Number of parallel translation workers")
	generateCmd.Flags().
		Int("batch-size", translate.DefaultBatchSize, "Number of dialogue lines per API request")
}

// everything runGenerate reads from flags and arguments
type generateOptions struct {
	ScriptPath  string
	Duration    string
	VideoPath   string
	Burn        bool
	Strict      bool
	OutputPath  string
	Language    string
	TranslateTo string
	Provider    string
	APIKey      string
	Model       string
	Concurrency int
	BatchSize   int
}

func runGenerate(cmd *cobra.Command, args []string) error {
	var opts generateOptions
	if len(args) == 1 {
		opts.ScriptPath = args[0]
	}

	opts.Duration, _ = cmd.Flags().GetString("duration")
	opts.VideoPath, _ = cmd.Flags().GetString("video")
	opts.Burn, _ = cmd.Flags().GetBool("burn")
	opts.Strict, _ = cmd.Flags().GetBool("strict")
	opts.OutputPath, _ = cmd.Flags().GetString("output")
	opts.Language, _ = cmd.Flags().GetString("language")
	opts.TranslateTo, _ = cmd.Flags().GetString("translate-to")
	opts.Provider, _ = cmd.Flags().GetString("provider")
	opts.APIKey, _ = cmd.Flags().GetString("api-key")
	opts.Model, _ = cmd.Flags().GetString("model")
	opts.Concurrency, _ = cmd.Flags().GetInt("concurrency")
	opts.BatchSize, _ = cmd.Flags().GetInt("batch-size")

	return generate(
		cmd.Context(),
		opts,
		video.NewProcessor(),
		cmd.InOrStdin(),
		cmd.OutOrStdout(),
	)
}

// probes media files; satisfied by *video.DefaultProcessor
type mediaProber interface {
	GetDuration(ctx context.Context, path string) (time.Duration, error)
	BurnSubtitles(ctx context.Context, videoPath, subtitlePath, outputPath string) error
}

func generate(
	ctx context.Context,
	opts generateOptions,
	media mediaProber,
	in io.Reader,
	out io.Writer,
) error {
	if ctx == nil {
		ctx = context.Background()
	}

	if opts.Burn && opts.VideoPath == "" {
		return fmt.Errorf("--burn requires --video")
	}
	if opts.TranslateTo != "" {
		if err := validateTranslateOptions(&opts); err != nil {
			return err
		}
	}

	var (
		raw      string
		duration time.Duration
		err      error
	)

	if opts.Duration != "" {
		duration = parseDuration(opts.Duration)
	} else if opts.VideoPath != "" {
		logger.Infow("Reading duration from media file", "video", opts.VideoPath)
		duration, err = media.GetDuration(ctx, opts.VideoPath)
		if err != nil {
			return fmt.Errorf("failed to read video duration: %w", err)
		}
	}

	switch opts.ScriptPath {
	case "":
		raw, duration, err = runInteractive(&opts, duration, in, out)
		if err != nil {
			return err
		}
	case "-":
		data, err := io.ReadAll(in)
		if err != nil {
			return fmt.Errorf("failed to read script from stdin: %w", err)
		}
		raw = string(data)
	default:
		data, err := os.ReadFile(opts.ScriptPath)
		if err != nil {
			return fmt.Errorf("failed to read script: %w", err)
		}
		raw = string(data)
	}

	if opts.ScriptPath != "" && opts.Duration == "" && opts.VideoPath == "" {
		return fmt.Errorf("video duration is required: use --duration or --video")
	}
	if err := subtitle.ValidateDuration(duration); err != nil {
		return err
	}

	raw = strings.ReplaceAll(raw, "\r\n", "\n")
	entries, warnings := script.ParseEntries(raw)
	for _, w := range warnings {
		logger.Warnw("Skipping malformed block", "warning", w)
	}
	if opts.Strict && len(warnings) > 0 {
		return fmt.Errorf("%d malformed block(s) in script", len(warnings))
	}
	if len(entries) == 0 {
		return fmt.Errorf("script contains no dialogue entries")
	}

	logger.Infow("Parsed script",
		"entries", len(entries),
		"skipped", len(warnings),
		"duration", duration.String(),
	)

	if opts.TranslateTo != "" {
		entries, err = translateEntries(ctx, opts, entries)
		if err != nil {
			return err
		}
	}

	outputPath := subtitle.OutputPath(opts.OutputPath)
	document := subtitle.RenderDocument(entries, duration)

	logger.Debugw("Writing subtitle file", "output", outputPath, "bytes", len(document))
	if err := subtitle.WriteDocument(outputPath, document); err != nil {
		return fmt.Errorf("failed to write subtitles: %w", err)
	}

	absOutput, _ := filepath.Abs(outputPath)
	fmt.Fprintf(out, "Subtitles generated successfully: %s\n", absOutput)
	fmt.Fprintf(out, "  Entries: %d\n", len(entries))
	if len(warnings) > 0 {
		fmt.Fprintf(out, "  Skipped blocks: %d\n", len(warnings))
	}
	fmt.Fprintf(out, "  Duration: %s\n", duration.String())

	if opts.Burn {
		burned := video.BurnedOutputPath(opts.VideoPath)
		logger.Infow("Burning subtitles into video",
			"video", opts.VideoPath,
			"output", burned,
		)
		if err := media.BurnSubtitles(ctx, opts.VideoPath, outputPath, burned); err != nil {
			return fmt.Errorf("failed to burn subtitles: %w", err)
		}
		absBurned, _ := filepath.Abs(burned)
		fmt.Fprintf(out, "  Video: %s\n", absBurned)
	}

	return nil
}

// runs the question/answer flow for whatever flags did not provide
func runInteractive(
	opts *generateOptions,
	duration time.Duration,
	in io.Reader,
	out io.Writer,
) (string, time.Duration, error) {
	s := newSession(in, out)
	fmt.Fprintln(out, "Welcome to the .srt generator!")

	if duration == 0 && opts.Duration == "" && opts.VideoPath == "" {
		answer, err := s.ask(
			fmt.Sprintf("Enter the video length in m:ss (default %s): ", defaultInteractiveDuration),
			defaultInteractiveDuration,
		)
		if err != nil {
			return "", 0, fmt.Errorf("failed to read video length: %w", err)
		}
		duration = parseDuration(answer)
		if err := subtitle.ValidateDuration(duration); err != nil {
			return "", 0, err
		}
	}

	fmt.Fprintln(out, "\nEnter the subtitle text (press Enter on two empty lines when finished):")
	raw, err := s.readScript()
	if err != nil {
		return "", 0, fmt.Errorf("failed to read subtitle text: %w", err)
	}

	if opts.OutputPath == "" {
		name, err := s.ask(
			"\nEnter the name for the output SRT file (e.g., output.srt): ",
			subtitle.DefaultOutputName,
		)
		if err != nil {
			return "", 0, fmt.Errorf("failed to read output name: %w", err)
		}
		opts.OutputPath = name
	}

	return raw, duration, nil
}

// parseDuration accepts m:ss like script timestamps, or plain seconds.
// Anything else is zero and fails validation.
func parseDuration(value string) time.Duration {
	value = strings.TrimSpace(value)
	if strings.Contains(value, ":") {
		return script.ParseTimestamp(value)
	}

	seconds, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0
	}
	return time.Duration(seconds * float64(time.Second))
}

func validateTranslateOptions(opts *generateOptions) error {
	provider := translate.Provider(strings.ToLower(opts.Provider))
	switch provider {
	case translate.ProviderGemini, translate.ProviderOpenAI, translate.ProviderAnthropic:
	default:
		return fmt.Errorf(
			"unsupported provider %q: use gemini, openai, or anthropic",
			opts.Provider,
		)
	}
	opts.Provider = string(provider)

	if opts.Language != "" &&
		strings.EqualFold(
			strings.TrimSpace(opts.Language),
			strings.TrimSpace(opts.TranslateTo),
		) {
		return fmt.Errorf(
			"input language %q and target language %q cannot be the same",
			opts.Language,
			opts.TranslateTo,
		)
	}

	if opts.APIKey == "" {
		opts.APIKey = os.Getenv(provider.APIKeyEnv())
	}
	if opts.APIKey == "" {
		return fmt.Errorf(
			"API key is required: use --api-key flag or set %s environment variable",
			provider.APIKeyEnv(),
		)
	}

	if opts.Concurrency <= 0 {
		return fmt.Errorf("concurrency must be positive, got %d", opts.Concurrency)
	}
	if opts.BatchSize <= 0 {
		return fmt.Errorf("batch-size must be positive, got %d", opts.BatchSize)
	}

	return nil
}

func translateEntries(
	ctx context.Context,
	opts generateOptions,
	entries []script.Entry,
) ([]script.Entry, error) {
	translator, err := translate.Factory(
		ctx,
		translate.Provider(opts.Provider),
		opts.APIKey,
		translate.Options{
			InputLanguage:  opts.Language,
			TargetLanguage: opts.TranslateTo,
			Model:          opts.Model,
			BatchSize:      opts.BatchSize,
		},
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create translator: %w", err)
	}

	logger.Infow("Translating dialogue",
		"provider", opts.Provider,
		"target_language", opts.TranslateTo,
		"lines", len(entries),
		"concurrency", opts.Concurrency,
	)

	translated, err := translate.TranslateEntries(ctx, translator, entries, opts.Concurrency)
	if err != nil {
		return nil, fmt.Errorf("translation failed: %w", err)
	}

	logger.Infow("Translation complete", "lines", len(translated))
	return translated, nil
}
