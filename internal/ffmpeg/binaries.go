package ffmpeg

import (
	"fmt"
	"os"
	"os/exec"
	"sync"
)

const (
	ffmpegPathEnv  = "SCRIPTSRT_FFMPEG_PATH"
	ffprobePathEnv = "SCRIPTSRT_FFPROBE_PATH"
)

type BinaryPaths struct {
	FFmpeg  string
	FFprobe string
}

var (
	resolveOnce sync.Once
	resolved    BinaryPaths
	resolveErr  error
)

// Ensure locates ffmpeg and ffprobe once per process. Environment overrides
// win over PATH lookup.
func Ensure() (BinaryPaths, error) {
	resolveOnce.Do(func() {
		resolved, resolveErr = resolve(os.Getenv, exec.LookPath)
	})
	return resolved, resolveErr
}

func FFmpegPath() (string, error) {
	paths, err := Ensure()
	if err != nil {
		return "", err
	}
	return paths.FFmpeg, nil
}

func FFprobePath() (string, error) {
	paths, err := Ensure()
	if err != nil {
		return "", err
	}
	return paths.FFprobe, nil
}

func resolve(
	getenv func(string) string,
	lookPath func(string) (string, error),
) (BinaryPaths, error) {
	ffmpegPath, err := locate("ffmpeg", getenv(ffmpegPathEnv), lookPath)
	if err != nil {
		return BinaryPaths{}, err
	}
	ffprobePath, err := locate("ffprobe", getenv(ffprobePathEnv), lookPath)
	if err != nil {
		return BinaryPaths{}, err
	}
	return BinaryPaths{FFmpeg: ffmpegPath, FFprobe: ffprobePath}, nil
}

func locate(
	name, override string,
	lookPath func(string) (string, error),
) (string, error) {
	if override != "" {
		return override, nil
	}
	found, err := lookPath(name)
	if err != nil {
		return "", fmt.Errorf(
			"%s not found: install it or set %s: %w",
			name,
			envFor(name),
			err,
		)
	}
	return found, nil
}

func envFor(name string) string {
	if name == "ffprobe" {
		return ffprobePathEnv
	}
	return ffmpegPathEnv
}
