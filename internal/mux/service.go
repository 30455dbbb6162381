package mux

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/aperricio/qt-dlp/internal/platform"
)

// Output lines kept when reporting a failed tool run
const errorTailLines = 5

// Runner executes an external tool and returns its combined output.
// Injected in tests.
type Runner interface {
	Run(ctx context.Context, name string, args ...string) ([]byte, error)
}

type execRunner struct{}

func (execRunner) Run(ctx context.Context, name string, args ...string) ([]byte, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	return cmd.CombinedOutput()
}

// probeReport mirrors the fields read from ffprobe JSON output
type probeReport struct {
	Streams []struct {
		CodecType string `json:"codec_type"`
		CodecName string `json:"codec_name"`
	} `json:"streams"`
	Format struct {
		Duration string `json:"duration"`
	} `json:"format"`
}

// Service performs the muxing pass of the download pipeline.
type Service struct {
	runner Runner
}

// NewService creates a mux service backed by the real ffmpeg binary
func NewService() *Service {
	return &Service{runner: execRunner{}}
}

// NewServiceWithRunner creates a mux service with a custom runner, used in
// tests
func NewServiceWithRunner(runner Runner) *Service {
	return &Service{runner: runner}
}

// Join stream-copies videoPath and audioPath into outputPath and validates
// the result. A failed or invalid join leaves no partial output behind.
func (s *Service) Join(ctx context.Context, videoPath, audioPath, outputPath string) error {
	if err := platform.CreateDirectoryIfNotExists(filepath.Dir(outputPath)); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	log.Printf("Muxing %s + %s -> %s", filepath.Base(videoPath), filepath.Base(audioPath), filepath.Base(outputPath))

	output, err := s.runner.Run(ctx, platform.FFmpegPath(), BuildJoinArgs(videoPath, audioPath, outputPath)...)
	if err != nil {
		s.removePartial(outputPath)
		if ctx.Err() != nil {
			return ctx.Err()
		}
		return fmt.Errorf("ffmpeg failed: %w\n%s", err, outputTail(output))
	}

	if err := s.validate(ctx, outputPath); err != nil {
		s.removePartial(outputPath)
		return err
	}
	return nil
}

// validate checks with ffprobe that the joined file carries both a video
// and an audio stream.
func (s *Service) validate(ctx context.Context, path string) error {
	output, err := s.runner.Run(ctx, platform.FFprobePath(), BuildProbeArgs(path)...)
	if err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		return fmt.Errorf("ffprobe failed on muxed file: %w\n%s", err, outputTail(output))
	}

	var report probeReport
	if err := json.Unmarshal(output, &report); err != nil {
		return fmt.Errorf("failed to parse ffprobe output: %w", err)
	}

	var hasVideo, hasAudio bool
	for _, stream := range report.Streams {
		switch stream.CodecType {
		case "video":
			hasVideo = true
		case "audio":
			hasAudio = true
		}
	}
	if !hasVideo || !hasAudio {
		return fmt.Errorf("muxed file %s is missing a stream (video=%t, audio=%t)",
			filepath.Base(path), hasVideo, hasAudio)
	}
	return nil
}

// removePartial deletes a failed join artifact so no broken file is left in
// the download directory.
func (s *Service) removePartial(path string) {
	if _, err := os.Stat(path); err != nil {
		return
	}
	if err := os.Remove(path); err != nil {
		log.Printf("Failed to remove partial output %s: %v", path, err)
	}
}

func outputTail(output []byte) string {
	lines := strings.Split(strings.TrimSpace(string(output)), "\n")
	if len(lines) > errorTailLines {
		lines = lines[len(lines)-errorTailLines:]
	}
	return strings.Join(lines, "\n")
}
