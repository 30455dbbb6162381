package ytdlp

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/aperricio/qt-dlp/internal/model"
)

// fakeInvoker scripts yt-dlp behavior per call and records all argument
// lists, so pipelines can be tested without the tool installed.
type fakeInvoker struct {
	mu          sync.Mutex
	runCalls    [][]string
	outputCalls [][]string

	runFunc    func(ctx context.Context, call int, args []string, onLine func(string)) ([]string, error)
	outputFunc func(ctx context.Context, call int, args []string) ([]byte, []byte, error)
}

func (f *fakeInvoker) Run(ctx context.Context, args []string, onLine func(string)) ([]string, error) {
	f.mu.Lock()
	call := len(f.runCalls)
	f.runCalls = append(f.runCalls, append([]string(nil), args...))
	f.mu.Unlock()

	if f.runFunc == nil {
		return nil, nil
	}
	return f.runFunc(ctx, call, args, onLine)
}

func (f *fakeInvoker) Output(ctx context.Context, args []string) ([]byte, []byte, error) {
	f.mu.Lock()
	call := len(f.outputCalls)
	f.outputCalls = append(f.outputCalls, append([]string(nil), args...))
	f.mu.Unlock()

	if f.outputFunc == nil {
		return nil, nil, nil
	}
	return f.outputFunc(ctx, call, args)
}

func (f *fakeInvoker) recordedRunCalls() [][]string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([][]string(nil), f.runCalls...)
}

func (f *fakeInvoker) recordedOutputCalls() [][]string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([][]string(nil), f.outputCalls...)
}

func hasFlagPair(args []string, flag, value string) bool {
	for i := 0; i < len(args)-1; i++ {
		if args[i] == flag && args[i+1] == value {
			return true
		}
	}
	return false
}

func hasFlag(args []string, flag string) bool {
	for _, a := range args {
		if a == flag {
			return true
		}
	}
	return false
}

const probeJSON = `{
	"title": "Test Video",
	"age_limit": 0,
	"formats": [
		{"format_id": "18", "ext": "mp4", "height": 360, "vcodec": "avc1.42001E", "acodec": "mp4a.40.2"},
		{"format_id": "137", "ext": "mp4", "height": 1080, "fps": 30, "vcodec": "avc1.640028", "acodec": "none", "filesize": 104857600},
		{"format_id": "248", "ext": "webm", "height": 1080, "fps": 30, "vcodec": "vp9", "acodec": "none", "filesize_approx": 94371840},
		{"format_id": "399", "ext": "mp4", "height": 1080, "fps": 60, "vcodec": "av01", "acodec": "none"},
		{"format_id": "140", "ext": "m4a", "height": 0, "vcodec": "none", "acodec": "mp4a.40.2", "abr": 129.5, "filesize": 3145728},
		{"format_id": "251", "ext": "webm", "height": 0, "vcodec": "none", "acodec": "opus", "abr": 150.2}
	]
}`

func TestProbeFormatsParsesListing(t *testing.T) {
	fake := &fakeInvoker{
		outputFunc: func(ctx context.Context, call int, args []string) ([]byte, []byte, error) {
			return []byte(probeJSON), nil, nil
		},
	}
	prober := NewProberWithInvoker(fake)

	result, usedCookies, err := prober.ProbeFormats(context.Background(), "https://example.com/v", "none")
	if err != nil {
		t.Fatalf("ProbeFormats() error: %v", err)
	}
	if usedCookies {
		t.Error("usedCookies should be false when the first attempt succeeds")
	}

	if result.Title != "Test Video" {
		t.Errorf("Title = %q, expected %q", result.Title, "Test Video")
	}
	if len(result.Video) != 3 {
		t.Fatalf("got %d video formats, expected 3 (combined format must be skipped)", len(result.Video))
	}
	if len(result.Audio) != 2 {
		t.Fatalf("got %d audio formats, expected 2", len(result.Audio))
	}

	// Stable sort by height keeps extractor order among equal heights
	if result.Video[0].ID != "137" {
		t.Errorf("first video format = %q, expected id 137", result.Video[0].ID)
	}

	byID := make(map[string]model.FormatInfo)
	for _, f := range result.Video {
		byID[f.ID] = f
	}
	if byID["399"].Codec != "" {
		t.Errorf("av01 codec should be hidden in the label, got %q", byID["399"].Codec)
	}
	// filesize_approx is the fallback when filesize is absent
	if byID["248"].Filesize != 94371840 {
		t.Errorf("format 248 filesize = %d, expected filesize_approx fallback", byID["248"].Filesize)
	}

	if result.Audio[0].ID != "251" {
		t.Errorf("first audio format = %q, expected highest bitrate id 251", result.Audio[0].ID)
	}
}

func TestProbeFormatsRetriesWithCookies(t *testing.T) {
	fake := &fakeInvoker{
		outputFunc: func(ctx context.Context, call int, args []string) ([]byte, []byte, error) {
			if call == 0 {
				return nil, []byte("ERROR: Sign in to confirm your age"), errors.New("exit status 1")
			}
			return []byte(probeJSON), nil, nil
		},
	}
	prober := NewProberWithInvoker(fake)

	result, usedCookies, err := prober.ProbeFormats(context.Background(), "https://example.com/v", "firefox")
	if err != nil {
		t.Fatalf("ProbeFormats() error: %v", err)
	}
	if !usedCookies {
		t.Error("usedCookies should be true after a cookie retry")
	}
	if !result.RequiresCookie {
		t.Error("RequiresCookie should be set when the listing needed cookies")
	}

	calls := fake.recordedOutputCalls()
	if len(calls) != 2 {
		t.Fatalf("got %d invocations, expected 2", len(calls))
	}
	if hasFlag(calls[0], FlagCookieSource) {
		t.Errorf("first attempt must be cookie-less, got %v", calls[0])
	}
	if !hasFlagPair(calls[1], FlagCookieSource, "firefox") {
		t.Errorf("retry must carry %s firefox, got %v", FlagCookieSource, calls[1])
	}
}

func TestProbeFormatsNoRetryWithoutBrowser(t *testing.T) {
	fake := &fakeInvoker{
		outputFunc: func(ctx context.Context, call int, args []string) ([]byte, []byte, error) {
			return nil, []byte("ERROR: Unable to download webpage"), errors.New("exit status 1")
		},
	}
	prober := NewProberWithInvoker(fake)

	_, _, err := prober.ProbeFormats(context.Background(), "https://example.com/v", "none")
	if err == nil {
		t.Fatal("expected error when the probe fails and no browser is configured")
	}

	if calls := fake.recordedOutputCalls(); len(calls) != 1 {
		t.Errorf("got %d invocations, expected 1 (no retry with browser none)", len(calls))
	}

	var invErr *InvokeError
	if !errors.As(err, &invErr) {
		t.Fatalf("expected *InvokeError, got %T", err)
	}
}

func TestProbeFormatsRetryFailure(t *testing.T) {
	fake := &fakeInvoker{
		outputFunc: func(ctx context.Context, call int, args []string) ([]byte, []byte, error) {
			return nil, []byte("ERROR: no cookies found"), errors.New("exit status 1")
		},
	}
	prober := NewProberWithInvoker(fake)

	_, usedCookies, err := prober.ProbeFormats(context.Background(), "https://example.com/v", "chrome")
	if err == nil {
		t.Fatal("expected error when both attempts fail")
	}
	if !usedCookies {
		t.Error("usedCookies should report that the cookie attempt ran")
	}
	if calls := fake.recordedOutputCalls(); len(calls) != 2 {
		t.Errorf("got %d invocations, expected exactly 2 (one retry)", len(calls))
	}
}

func TestProbeTitle(t *testing.T) {
	fake := &fakeInvoker{
		outputFunc: func(ctx context.Context, call int, args []string) ([]byte, []byte, error) {
			return []byte("Some Title\n"), nil, nil
		},
	}
	prober := NewProberWithInvoker(fake)

	title, err := prober.ProbeTitle(context.Background(), "https://example.com/v")
	if err != nil {
		t.Fatalf("ProbeTitle() error: %v", err)
	}
	if title != "Some Title" {
		t.Errorf("title = %q, expected %q", title, "Some Title")
	}

	calls := fake.recordedOutputCalls()
	if len(calls) != 1 || !hasFlag(calls[0], FlagGetTitle) {
		t.Errorf("expected one --get-title invocation, got %v", calls)
	}
}
