package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestCheckFile(t *testing.T) {
	tests := []struct {
		name      string
		document  string
		wantErr   bool
		wantLines []string
	}{
		{
			name:      "clean document",
			document:  twoLineDocument,
			wantLines: []string{"2 cues, no problems found"},
		},
		{
			name: "out of order timestamps",
			document: "1\n00:00:05,000 --> 00:00:00,999\nA: late\n\n" +
				"2\n00:00:01,000 --> 00:00:10,000\nB: early",
			wantErr:   true,
			wantLines: []string{"cue 1: inverted"},
		},
		{
			name:      "duration before last timestamp",
			document:  "1\n00:00:03,000 --> -00:00:02,000\nA: hi",
			wantErr:   true,
			wantLines: []string{"cue 1: negative", "cue 1: inverted"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			observeLogs(t)
			path := filepath.Join(t.TempDir(), "in.srt")
			if err := os.WriteFile(path, []byte(tt.document), 0644); err != nil {
				t.Fatal(err)
			}

			var out bytes.Buffer
			err := checkFile(path, &out)
			if tt.wantErr && err == nil {
				t.Error("expected error but got none")
			}
			if !tt.wantErr && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
			for _, want := range tt.wantLines {
				if !strings.Contains(out.String(), want) {
					t.Errorf("output %q should contain %q", out.String(), want)
				}
			}
		})
	}
}

func TestCheckFileMissing(t *testing.T) {
	observeLogs(t)
	err := checkFile(filepath.Join(t.TempDir(), "missing.srt"), &bytes.Buffer{})
	if err == nil {
		t.Error("expected error for missing file")
	}
}

func TestDraftOutputPath(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"episode.mp4", "episode.txt"},
		{"dir/clip.final.mkv", "dir/clip.final.txt"},
		{"audio", "audio.txt"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := draftOutputPath(tt.input); got != tt.want {
				t.Errorf("draftOutputPath(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}
