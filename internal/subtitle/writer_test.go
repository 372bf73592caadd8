package subtitle

import (
	"os"
	"path/filepath"
	"testing"
)

func TestOutputPath(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"", "output.srt"},
		{"  ", "output.srt"},
		{"episode", "episode.srt"},
		{"episode.srt", "episode.srt"},
		{"episode.SRT", "episode.SRT"},
		{"dir/episode.txt", "dir/episode.txt.srt"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := OutputPath(tt.name); got != tt.want {
				t.Errorf("OutputPath(%q) = %q, want %q", tt.name, got, tt.want)
			}
		})
	}
}

func TestWriteDocument(t *testing.T) {
	path := filepath.Join(t.TempDir(), "a", "b", "out.srt")

	if err := WriteDocument(path, "1\n00:00:00,000 --> 00:00:01,000\nA: x"); err != nil {
		t.Fatalf("WriteDocument() error: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read output: %v", err)
	}
	if string(data) != "1\n00:00:00,000 --> 00:00:01,000\nA: x" {
		t.Errorf("unexpected content %q", data)
	}
}
