package ytdlp

import (
	"bufio"
	"bytes"
	"context"
	"io"
	"os/exec"
	"strings"

	"github.com/aperricio/qt-dlp/internal/platform"
)

// Invoker spawns the yt-dlp binary. The interface exists so the probe and
// download pipelines can be tested without the tool installed.
type Invoker interface {
	// Run executes yt-dlp, streaming merged stdout/stderr lines to onLine
	// (which may be nil) and returning all collected lines.
	Run(ctx context.Context, args []string, onLine func(string)) ([]string, error)

	// Output executes yt-dlp and returns stdout and stderr separately.
	Output(ctx context.Context, args []string) (stdout, stderr []byte, err error)
}

// execInvoker is the production Invoker backed by os/exec
type execInvoker struct{}

// NewInvoker returns the exec-backed Invoker
func NewInvoker() Invoker {
	return execInvoker{}
}

func (execInvoker) Run(ctx context.Context, args []string, onLine func(string)) ([]string, error) {
	cmd := exec.CommandContext(ctx, platform.YTDLPPath(), args...)

	pr, pw := io.Pipe()
	cmd.Stdout = pw
	cmd.Stderr = pw

	if err := cmd.Start(); err != nil {
		pw.Close()
		return nil, err
	}

	var lines []string
	done := make(chan struct{})
	go func() {
		defer close(done)
		scanner := bufio.NewScanner(pr)
		scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
		for scanner.Scan() {
			line := strings.TrimSpace(scanner.Text())
			if line == "" {
				continue
			}
			lines = append(lines, line)
			if onLine != nil {
				onLine(line)
			}
		}
	}()

	err := cmd.Wait()
	pw.Close()
	<-done

	if ctx.Err() != nil {
		return lines, ctx.Err()
	}
	return lines, err
}

func (execInvoker) Output(ctx context.Context, args []string) ([]byte, []byte, error) {
	cmd := exec.CommandContext(ctx, platform.YTDLPPath(), args...)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	if ctx.Err() != nil {
		err = ctx.Err()
	}
	return stdout.Bytes(), stderr.Bytes(), err
}
