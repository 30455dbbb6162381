package model

import (
	"strings"
	"time"
)

// Selection holds the format ids chosen by the user for one download.
// Either field may be empty, but not both.
type Selection struct {
	VideoID string
	AudioID string
}

// IsEmpty reports whether no format was chosen at all.
func (s Selection) IsEmpty() bool {
	return s.VideoID == "" && s.AudioID == ""
}

// Separate reports whether the selection names both a video-only and an
// audio-only stream, which requires an ffmpeg muxing pass after download.
func (s Selection) Separate() bool {
	return s.VideoID != "" && s.AudioID != ""
}

// Spec returns the yt-dlp -f format specifier for a single-stream selection.
func (s Selection) Spec() string {
	if s.VideoID != "" {
		return s.VideoID
	}
	return s.AudioID
}

// DownloadTask represents a single download pipeline: one or two yt-dlp
// invocations, an optional cookie retry, and an optional mux pass.
type DownloadTask struct {
	ID          string
	URL         string
	Selection   Selection
	Status      TaskStatus
	UsedCookies bool   // last attempt carried --cookies-from-browser
	LastError   string // last error message if any
	LastLine    string // most recent yt-dlp output line
	OutputPath  string // path to downloaded (and possibly muxed) file
	Title       string // probed content title, may be empty
	StartedAt   time.Time
	FinishedAt  time.Time
}

// GetDisplayTitle returns title, filename, or URL in order of preference
func (dt *DownloadTask) GetDisplayTitle() string {
	if dt.Title != "" && !strings.HasPrefix(dt.Title, "http") {
		return dt.Title
	}

	if dt.OutputPath != "" {
		parts := strings.FieldsFunc(dt.OutputPath, func(r rune) bool {
			return r == '/' || r == '\\'
		})
		if len(parts) > 0 {
			filename := parts[len(parts)-1]
			if idx := strings.LastIndex(filename, "."); idx > 0 {
				filename = filename[:idx]
			}
			return filename
		}
	}

	return dt.URL
}
