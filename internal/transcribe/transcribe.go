package transcribe

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/mgpai22/scriptsrt/internal/script"
)

// drafted dialogue script
type Result struct {
	Script   string
	Entries  []script.Entry
	Warnings []string
}

// interface for turning a media file into a dialogue script
type Drafter interface {
	Draft(ctx context.Context, mediaPath string) (*Result, error)
}

// transcription service provider
type Provider string

const (
	ProviderGemini Provider = "gemini"
)

// transcription options
type Options struct {
	Language           string // Source language of audio
	TranscriptLanguage string // Output language for the script (default: "native")
	Speakers           []string
	Model              string
	Prompt             string
}

// creates drafter based on provider
func Factory(
	ctx context.Context,
	provider Provider,
	apiKey string,
	opts Options,
) (Drafter, error) {
	switch provider {
	case ProviderGemini:
		return NewGeminiDrafter(ctx, apiKey, opts)
	default:
		return nil, fmt.Errorf("unsupported provider: %s", provider)
	}
}

// creates the prompt asking for the script format the parser reads
func buildDraftPrompt(opts Options) string {
	var sb strings.Builder

	sb.WriteString("Transcribe the dialogue in this recording as a script. ")
	sb.WriteString("Write one block per spoken line, separated by a blank line, in exactly this form:\n\n")
	sb.WriteString("(m:ss) Speaker: \"dialogue\"\n\n")
	sb.WriteString("The timestamp is when the line starts, in minutes and whole seconds. ")
	sb.WriteString("Keep blocks in the order they are spoken. ")

	if len(opts.Speakers) > 0 {
		sb.WriteString(fmt.Sprintf(
			"The speakers are: %s. ",
			strings.Join(opts.Speakers, ", "),
		))
	} else {
		sb.WriteString("Use the speaker's name when it is said, otherwise Speaker 1, Speaker 2 and so on. ")
	}

	if opts.Language != "" {
		sb.WriteString(fmt.Sprintf("The audio is in %s. ", opts.Language))
	}

	if opts.TranscriptLanguage != "" && opts.TranscriptLanguage != "native" {
		sb.WriteString(fmt.Sprintf("Write the dialogue in %s. ", opts.TranscriptLanguage))
	}

	if opts.Prompt != "" {
		sb.WriteString(opts.Prompt)
		sb.WriteString(" ")
	}

	sb.WriteString("Return ONLY the script, no other text or markdown formatting.")

	return sb.String()
}

var codeFenceRegex = regexp.MustCompile("(?m)^```[a-zA-Z]*\\s*$")

// strips markdown fences and normalizes line endings
func cleanScript(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = codeFenceRegex.ReplaceAllString(s, "")
	return strings.TrimSpace(s)
}

// parses the drafted text so callers can see how much of it is usable
func newResult(text string) (*Result, error) {
	text = cleanScript(text)
	if text == "" {
		return nil, fmt.Errorf("empty script in response")
	}

	entries, warnings := script.ParseEntries(text)
	if len(entries) == 0 {
		return nil, fmt.Errorf(
			"response contained no dialogue lines (response: %s)",
			truncateString(text, 200),
		)
	}

	return &Result{
		Script:   text,
		Entries:  entries,
		Warnings: warnings,
	}, nil
}

// truncates a string to maxLen bytes
func truncateString(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen] + "..."
}
