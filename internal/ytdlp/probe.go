package ytdlp

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/aperricio/qt-dlp/internal/model"
	"github.com/aperricio/qt-dlp/internal/platform"
)

// Timeout constants
const (
	DefaultProbeTimeout = 30 * time.Second
	DefaultTitleTimeout = 10 * time.Second
)

const codecShortLen = 10

// probeInfo mirrors the fields we read from --dump-single-json output
type probeInfo struct {
	Title    string        `json:"title"`
	AgeLimit int           `json:"age_limit"`
	Formats  []probeFormat `json:"formats"`
}

type probeFormat struct {
	FormatID       string  `json:"format_id"`
	Ext            string  `json:"ext"`
	Height         int     `json:"height"`
	FPS            float64 `json:"fps"`
	VCodec         string  `json:"vcodec"`
	ACodec         string  `json:"acodec"`
	ABR            float64 `json:"abr"`
	Filesize       int64   `json:"filesize"`
	FilesizeApprox int64   `json:"filesize_approx"`
}

// Prober runs yt-dlp JSON probes with the cookie fallback applied.
type Prober struct {
	invoker Invoker
	timeout time.Duration
}

// NewProber creates a prober using the exec-backed invoker
func NewProber() *Prober {
	return &Prober{invoker: NewInvoker(), timeout: DefaultProbeTimeout}
}

// NewProberWithInvoker creates a prober with a custom invoker, used in tests
func NewProberWithInvoker(invoker Invoker) *Prober {
	return &Prober{invoker: invoker, timeout: DefaultProbeTimeout}
}

// SetTimeout sets the timeout for one probe invocation
func (p *Prober) SetTimeout(timeout time.Duration) {
	p.timeout = timeout
}

// ProbeFormats fetches the format listing for a URL. The first attempt is
// always cookie-less; on a non-zero exit with browser != none it is repeated
// once with --cookies-from-browser. usedCookies reports whether the returned
// listing came from the cookie attempt.
func (p *Prober) ProbeFormats(ctx context.Context, url, browser string) (result *model.ProbeResult, usedCookies bool, err error) {
	stdout, stderr, runErr := p.runProbe(ctx, url, "")

	if runErr != nil {
		if browser == "" || browser == "none" {
			return nil, false, probeError(stderr, runErr)
		}

		source, resolveErr := platform.ResolveCookieSource(browser)
		if resolveErr != nil {
			return nil, false, resolveErr
		}

		log.Printf("Cookie-less probe failed, retrying with cookies from %s", browser)
		stdout, stderr, runErr = p.runProbe(ctx, url, source)
		if runErr != nil {
			return nil, true, probeError(stderr, runErr)
		}
		usedCookies = true
	}

	var info probeInfo
	if err := json.Unmarshal(stdout, &info); err != nil {
		return nil, usedCookies, fmt.Errorf("failed to parse yt-dlp JSON output: %w", err)
	}

	return processFormats(&info, usedCookies), usedCookies, nil
}

// ProbeTitle fetches just the content title, best effort
func (p *Prober) ProbeTitle(ctx context.Context, url string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, DefaultTitleTimeout)
	defer cancel()

	stdout, _, err := p.invoker.Output(ctx, BuildTitleArgs(url))
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(stdout)), nil
}

func (p *Prober) runProbe(ctx context.Context, url, cookieSource string) ([]byte, []byte, error) {
	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()
	return p.invoker.Output(ctx, BuildProbeArgs(url, cookieSource))
}

func probeError(stderr []byte, err error) error {
	lines := strings.Split(strings.TrimSpace(string(stderr)), "\n")
	return newInvokeError(nil, lines, err)
}

// processFormats turns raw probe info into the display model: only separated
// streams, best quality first, capped per kind.
func processFormats(info *probeInfo, usedCookies bool) *model.ProbeResult {
	result := &model.ProbeResult{
		Title:          info.Title,
		AgeLimit:       info.AgeLimit,
		RequiresCookie: info.AgeLimit > 0 || usedCookies,
	}

	for _, f := range info.Formats {
		hasVideo := f.VCodec != "" && f.VCodec != "none"
		hasAudio := f.ACodec != "" && f.ACodec != "none"

		filesize := f.Filesize
		if filesize == 0 {
			filesize = f.FilesizeApprox
		}

		switch {
		case hasVideo && !hasAudio:
			result.Video = append(result.Video, model.FormatInfo{
				ID:       f.FormatID,
				Kind:     model.StreamVideo,
				Ext:      f.Ext,
				Height:   f.Height,
				FPS:      f.FPS,
				Codec:    videoCodecShort(f.VCodec),
				Filesize: filesize,
			})
		case hasAudio && !hasVideo:
			result.Audio = append(result.Audio, model.FormatInfo{
				ID:       f.FormatID,
				Kind:     model.StreamAudio,
				Ext:      f.Ext,
				Bitrate:  f.ABR,
				Codec:    codecShort(f.ACodec),
				Filesize: filesize,
			})
		}
		// Combined formats are skipped: the point of the listing is
		// choosing a separate video and audio stream to join later.
	}

	result.SortAndTrim()
	return result
}

// videoCodecShort hides the av01 codec tag in labels, matching the listing
// users are used to; av01 ids are still selectable by quality.
func videoCodecShort(codec string) string {
	if codec == "av01" {
		return ""
	}
	return codecShort(codec)
}

func codecShort(codec string) string {
	if codec == "" || codec == "none" {
		return ""
	}
	short := strings.SplitN(codec, ".", 2)[0]
	if len(short) > codecShortLen {
		short = short[:codecShortLen]
	}
	return short
}
