package video

import (
	"context"
	"path/filepath"
	"testing"
	"time"
)

func TestParseProbeOutput(t *testing.T) {
	data := []byte(`{
		"streams": [
			{"codec_type": "audio", "codec_name": "aac"},
			{"codec_type": "video", "codec_name": "h264", "width": 1920, "height": 1080}
		],
		"format": {"duration": "150.512000"}
	}`)

	info, err := parseProbeOutput(data)
	if err != nil {
		t.Fatalf("parseProbeOutput() error: %v", err)
	}

	if info.Duration != 150*time.Second+512*time.Millisecond {
		t.Errorf("duration = %v", info.Duration)
	}
	if info.Codec != "h264" || info.Width != 1920 || info.Height != 1080 {
		t.Errorf("video stream = %+v", info)
	}
	if !info.HasAudio {
		t.Error("expected HasAudio")
	}
}

func TestParseProbeOutputErrors(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"not json", "ffprobe exploded"},
		{"missing duration", `{"format": {}}`},
		{"bad duration", `{"format": {"duration": "N/A"}}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := parseProbeOutput([]byte(tt.data)); err == nil {
				t.Error("expected error but got none")
			}
		})
	}
}

func TestGetInfoMissingFile(t *testing.T) {
	p := NewProcessor()
	_, err := p.GetInfo(context.Background(), filepath.Join(t.TempDir(), "nope.mp4"))
	if err == nil {
		t.Error("expected error for missing file")
	}
}

func TestEscapeFilterPath(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"subs/out.srt", "subs/out.srt"},
		{"C:/subs/out.srt", `C\:/subs/out.srt`},
		{"it's, [final].srt", `it\'s\, \[final\].srt`},
	}

	for _, tt := range tests {
		if got := escapeFilterPath(tt.in); got != tt.want {
			t.Errorf("escapeFilterPath(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestBurnedOutputPath(t *testing.T) {
	if got := BurnedOutputPath("clips/ep1.mp4"); got != "clips/ep1.subtitled.mp4" {
		t.Errorf("BurnedOutputPath() = %q", got)
	}
}

func TestIsMediaFile(t *testing.T) {
	tests := []struct {
		path string
		want bool
	}{
		{"a.mp4", true},
		{"a.MKV", true},
		{"a.mp3", true},
		{"a.srt", false},
		{"a.txt", false},
	}

	for _, tt := range tests {
		if got := IsMediaFile(tt.path); got != tt.want {
			t.Errorf("IsMediaFile(%q) = %v, want %v", tt.path, got, tt.want)
		}
	}
}
