package transcribe

import (
	"context"
	"fmt"
	"os"

	"google.golang.org/genai"
)

// implements Drafter using Google Gemini
type GeminiDrafter struct {
	client  *genai.Client
	model   string
	options Options
}

func NewGeminiDrafter(ctx context.Context, apiKey string, opts Options) (*GeminiDrafter, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("API key is required")
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	model := opts.Model
	if model == "" {
		model = "gemini-2.5-flash"
	}

	return &GeminiDrafter{
		client:  client,
		model:   model,
		options: opts,
	}, nil
}

// uploads the media file and asks for a dialogue script
func (d *GeminiDrafter) Draft(ctx context.Context, mediaPath string) (*Result, error) {
	if _, err := os.Stat(mediaPath); os.IsNotExist(err) {
		return nil, fmt.Errorf("media file not found: %s", mediaPath)
	}

	uploadedFile, err := d.client.Files.UploadFromPath(ctx, mediaPath, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to upload media file: %w", err)
	}

	defer func() {
		_, _ = d.client.Files.Delete(ctx, uploadedFile.Name, nil)
	}()

	parts := []*genai.Part{
		genai.NewPartFromText(buildDraftPrompt(d.options)),
		genai.NewPartFromURI(uploadedFile.URI, uploadedFile.MIMEType),
	}
	contents := []*genai.Content{
		genai.NewContentFromParts(parts, genai.RoleUser),
	}

	result, err := d.client.Models.GenerateContent(ctx, d.model, contents, nil)
	if err != nil {
		return nil, fmt.Errorf("transcription failed: %w", err)
	}
	if result == nil || len(result.Candidates) == 0 {
		return nil, fmt.Errorf("empty response from Gemini")
	}

	return newResult(result.Text())
}

func (d *GeminiDrafter) Close() error {
	return nil
}
