package ytdlp

import (
	"context"

	"github.com/aperricio/qt-dlp/internal/model"
)

// Downloader defines the interface for the download pipeline service
type Downloader interface {
	Start(url string, sel model.Selection, browser, title string) (*model.DownloadTask, error)
	Stop() error
	GetTask(id string) (*model.DownloadTask, bool)
	GetAllTasks() []*model.DownloadTask
	SetUpdateCallback(callback func(*model.DownloadTask))
	SetDownloadDirectory(dir string)
}

// FormatProber defines the interface for URL metadata probes
type FormatProber interface {
	ProbeFormats(ctx context.Context, url, browser string) (*model.ProbeResult, bool, error)
	ProbeTitle(ctx context.Context, url string) (string, error)
}

var (
	_ Downloader   = (*Service)(nil)
	_ FormatProber = (*Prober)(nil)
)
