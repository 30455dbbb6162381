package platform

import (
	"fmt"
	"os"
	"os/exec"
)

// External tool names and their env overrides
const (
	YTDLPCommand   = "yt-dlp"
	FFmpegCommand  = "ffmpeg"
	FFprobeCommand = "ffprobe"

	EnvYTDLPPath   = "YTDLP_PATH"
	EnvFFmpegPath  = "FFMPEG_PATH"
	EnvFFprobePath = "FFPROBE_PATH"
)

// YTDLPPath returns the yt-dlp binary to invoke. The YTDLP_PATH environment
// variable overrides PATH lookup.
func YTDLPPath() string {
	return toolPath(EnvYTDLPPath, YTDLPCommand)
}

// FFmpegPath returns the ffmpeg binary to invoke
func FFmpegPath() string {
	return toolPath(EnvFFmpegPath, FFmpegCommand)
}

// FFprobePath returns the ffprobe binary to invoke
func FFprobePath() string {
	return toolPath(EnvFFprobePath, FFprobeCommand)
}

func toolPath(envKey, name string) string {
	if p := os.Getenv(envKey); p != "" {
		return p
	}
	if p, err := exec.LookPath(name); err == nil {
		return p
	}
	return name
}

// CheckTools verifies that the required external binaries resolve. Absence is
// a startup-time failure; nothing downstream recovers from a missing tool.
func CheckTools() error {
	for _, tool := range []struct {
		env  string
		name string
	}{
		{EnvYTDLPPath, YTDLPCommand},
		{EnvFFmpegPath, FFmpegCommand},
	} {
		path := toolPath(tool.env, tool.name)
		if _, err := exec.LookPath(path); err != nil {
			return fmt.Errorf("%s not found on PATH (set %s to override): %w", tool.name, tool.env, err)
		}
	}
	return nil
}
