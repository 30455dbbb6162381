package model

import (
	"fmt"
	"sort"
	"strings"
)

// Caps applied to the parsed format lists; the UI only shows the best
// qualities of each kind, matching yt-dlp's ordering.
const (
	MaxVideoFormats = 10
	MaxAudioFormats = 5
)

// StreamKind tells separated video-only streams from audio-only ones.
type StreamKind string

const (
	StreamVideo StreamKind = "video"
	StreamAudio StreamKind = "audio"
)

// FormatInfo describes one separated stream offered by the extractor.
type FormatInfo struct {
	ID       string
	Kind     StreamKind
	Ext      string
	Height   int     // video only
	FPS      float64 // video only
	Codec    string  // short codec name
	Bitrate  float64 // audio only, kbps
	Filesize int64   // bytes, 0 when the extractor gave no estimate
}

// Quality returns the sort key for the format: height for video streams,
// bitrate for audio streams.
func (f FormatInfo) Quality() float64 {
	if f.Kind == StreamVideo {
		return float64(f.Height)
	}
	return f.Bitrate
}

// SizeString returns a human readable size, or a placeholder when the
// extractor reported none.
func (f FormatInfo) SizeString() string {
	if f.Filesize <= 0 {
		return "size unknown"
	}
	mb := float64(f.Filesize) / (1024 * 1024)
	if mb < 1024 {
		return fmt.Sprintf("%.1f MB", mb)
	}
	return fmt.Sprintf("%.1f GB", mb/1024)
}

// Describe returns the label shown on a format button.
func (f FormatInfo) Describe() string {
	var parts []string
	if f.Kind == StreamVideo {
		if f.Height > 0 {
			parts = append(parts, fmt.Sprintf("%dp", f.Height))
		}
		if f.FPS > 0 {
			parts = append(parts, fmt.Sprintf("%dfps", int(f.FPS)))
		}
		if f.Ext != "" {
			parts = append(parts, "."+f.Ext)
		}
		if f.Codec != "" {
			parts = append(parts, f.Codec)
		}
	} else {
		parts = append(parts, fmt.Sprintf("%dkbps", int(f.Bitrate)))
		if f.Ext != "" {
			parts = append(parts, "."+f.Ext)
		}
		if f.Codec != "" {
			parts = append(parts, f.Codec)
		}
	}
	return strings.Join(parts, " ") + " · " + f.SizeString()
}

// ProbeResult is the outcome of a format probe for one URL.
type ProbeResult struct {
	Title          string
	AgeLimit       int
	RequiresCookie bool // probe only succeeded with browser cookies
	Video          []FormatInfo
	Audio          []FormatInfo
}

// HasFormats reports whether any separated stream was found.
func (p *ProbeResult) HasFormats() bool {
	return len(p.Video) > 0 || len(p.Audio) > 0
}

// SortAndTrim orders both lists best-first and applies the display caps.
func (p *ProbeResult) SortAndTrim() {
	sort.SliceStable(p.Video, func(i, j int) bool {
		return p.Video[i].Quality() > p.Video[j].Quality()
	})
	sort.SliceStable(p.Audio, func(i, j int) bool {
		return p.Audio[i].Quality() > p.Audio[j].Quality()
	})
	if len(p.Video) > MaxVideoFormats {
		p.Video = p.Video[:MaxVideoFormats]
	}
	if len(p.Audio) > MaxAudioFormats {
		p.Audio = p.Audio[:MaxAudioFormats]
	}
}
