package ytdlp

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/aperricio/qt-dlp/internal/model"
	"github.com/aperricio/qt-dlp/internal/platform"
)

// Muxer joins a downloaded video stream and audio stream into one container.
// Implemented by the mux package; declared here so the pipeline does not
// depend on ffmpeg details.
type Muxer interface {
	Join(ctx context.Context, videoPath, audioPath, outputPath string) error
}

// Names of the intermediate stream files in the pipeline temp dir
const (
	videoStreamPrefix = "video."
	audioStreamPrefix = "audio."

	// MuxedExtension is the container used for the explicit mux pass
	MuxedExtension = ".mkv"

	taskIDPrefix = "task-"
)

// Extensions of unfinished yt-dlp artifacts
var partialExtensions = []string{".part", ".ytdl"}

// Service runs download pipelines. At most one pipeline is in flight at a
// time; a second dispatch fails with ErrBusy.
type Service struct {
	invoker     Invoker
	muxer       Muxer
	downloadDir string

	tasks      map[string]*model.DownloadTask
	tasksMutex sync.RWMutex
	active     bool
	cancel     context.CancelFunc

	onUpdate func(*model.DownloadTask) // callback for UI updates
}

// NewService creates a download service using the exec-backed invoker
func NewService(downloadDir string, muxer Muxer) *Service {
	return NewServiceWithInvoker(downloadDir, muxer, NewInvoker())
}

// NewServiceWithInvoker creates a download service with a custom invoker,
// used in tests
func NewServiceWithInvoker(downloadDir string, muxer Muxer, invoker Invoker) *Service {
	return &Service{
		invoker:     invoker,
		muxer:       muxer,
		downloadDir: downloadDir,
		tasks:       make(map[string]*model.DownloadTask),
	}
}

// SetUpdateCallback sets the callback function for task updates
func (s *Service) SetUpdateCallback(callback func(*model.DownloadTask)) {
	s.onUpdate = callback
}

// SetDownloadDirectory sets the download directory for subsequent tasks
func (s *Service) SetDownloadDirectory(dir string) {
	s.tasksMutex.Lock()
	defer s.tasksMutex.Unlock()
	s.downloadDir = dir
}

// Start dispatches a download pipeline for the URL. browser is the
// configured cookie source ("none" disables the fallback); title is the
// probed content title and may be empty. Returns ErrBusy while another
// pipeline is running.
func (s *Service) Start(url string, sel model.Selection, browser, title string) (*model.DownloadTask, error) {
	if strings.TrimSpace(url) == "" {
		return nil, fmt.Errorf("url must not be empty")
	}

	s.tasksMutex.Lock()
	if s.active {
		s.tasksMutex.Unlock()
		return nil, ErrBusy
	}

	task := &model.DownloadTask{
		ID:        generateTaskID(),
		URL:       url,
		Selection: sel,
		Title:     title,
		Status:    model.TaskStatusStarting,
		StartedAt: time.Now(),
	}
	s.tasks[task.ID] = task
	s.active = true

	ctx, cancel := context.WithCancel(context.Background())
	s.cancel = cancel
	s.tasksMutex.Unlock()

	s.notifyUpdate(task)

	go s.runPipeline(ctx, task, browser)

	return task, nil
}

// Stop cancels the in-flight pipeline, if any
func (s *Service) Stop() error {
	s.tasksMutex.Lock()
	defer s.tasksMutex.Unlock()

	if !s.active || s.cancel == nil {
		return fmt.Errorf("no operation in progress")
	}

	for _, task := range s.tasks {
		if task.Status.IsActive() {
			task.Status = model.TaskStatusStopping
		}
	}
	s.cancel()
	return nil
}

// GetTask returns a task by ID
func (s *Service) GetTask(id string) (*model.DownloadTask, bool) {
	s.tasksMutex.RLock()
	defer s.tasksMutex.RUnlock()
	task, exists := s.tasks[id]
	return task, exists
}

// GetAllTasks returns all tasks
func (s *Service) GetAllTasks() []*model.DownloadTask {
	s.tasksMutex.RLock()
	defer s.tasksMutex.RUnlock()

	tasks := make([]*model.DownloadTask, 0, len(s.tasks))
	for _, task := range s.tasks {
		tasks = append(tasks, task)
	}
	return tasks
}

// runPipeline executes the full download: one or two yt-dlp invocations,
// each with the cookie fallback, and the mux pass for separate selections.
func (s *Service) runPipeline(ctx context.Context, task *model.DownloadTask, browser string) {
	defer func() {
		s.tasksMutex.Lock()
		s.active = false
		s.cancel = nil
		s.tasksMutex.Unlock()
	}()

	s.setStatus(task, model.TaskStatusDownloading)

	var err error
	if task.Selection.Separate() {
		err = s.runSeparateStreams(ctx, task, browser)
	} else {
		err = s.runSinglePass(ctx, task, browser)
	}

	s.tasksMutex.Lock()
	if err != nil {
		if ctx.Err() == context.Canceled {
			task.Status = model.TaskStatusStopped
		} else {
			task.Status = model.TaskStatusError
			task.LastError = err.Error()
		}
	} else {
		task.Status = model.TaskStatusCompleted
	}
	task.FinishedAt = time.Now()
	s.tasksMutex.Unlock()

	s.notifyUpdate(task)
}

// runSinglePass downloads directly into the download directory
func (s *Service) runSinglePass(ctx context.Context, task *model.DownloadTask, browser string) error {
	s.tasksMutex.RLock()
	template := filepath.Join(s.downloadDir, OutputTemplate)
	s.tasksMutex.RUnlock()

	lines, err := s.runAttempt(ctx, task, browser, task.Selection.Spec(), template)
	if err != nil {
		return err
	}

	if path := parseDestination(lines); path != "" {
		s.tasksMutex.Lock()
		task.OutputPath = path
		s.tasksMutex.Unlock()
	}
	return nil
}

// runSeparateStreams downloads the chosen video and audio streams into a
// temp dir, then joins them with the ffmpeg muxing pass.
func (s *Service) runSeparateStreams(ctx context.Context, task *model.DownloadTask, browser string) error {
	tmpDir, err := os.MkdirTemp("", "qt-dlp-*")
	if err != nil {
		return fmt.Errorf("failed to create temp directory: %w", err)
	}
	defer os.RemoveAll(tmpDir)

	if _, err := s.runAttempt(ctx, task, browser, task.Selection.VideoID,
		filepath.Join(tmpDir, videoStreamPrefix+"%(ext)s")); err != nil {
		return err
	}
	videoPath, err := findStreamFile(tmpDir, videoStreamPrefix)
	if err != nil {
		return err
	}

	if _, err := s.runAttempt(ctx, task, browser, task.Selection.AudioID,
		filepath.Join(tmpDir, audioStreamPrefix+"%(ext)s")); err != nil {
		return err
	}
	audioPath, err := findStreamFile(tmpDir, audioStreamPrefix)
	if err != nil {
		return err
	}

	s.setStatus(task, model.TaskStatusMuxing)

	s.tasksMutex.RLock()
	name := platform.SanitizeFileName(task.GetDisplayTitle())
	outputPath := filepath.Join(s.downloadDir, name+MuxedExtension)
	s.tasksMutex.RUnlock()

	if err := s.muxer.Join(ctx, videoPath, audioPath, outputPath); err != nil {
		return err
	}

	s.tasksMutex.Lock()
	task.OutputPath = outputPath
	s.tasksMutex.Unlock()
	return nil
}

// runAttempt performs one yt-dlp download invocation with the cookie
// fallback: a cookie-less run first, then on any non-zero exit exactly one
// retry with --cookies-from-browser, provided a browser is configured.
func (s *Service) runAttempt(ctx context.Context, task *model.DownloadTask, browser, formatSpec, template string) ([]string, error) {
	onLine := func(line string) {
		s.tasksMutex.Lock()
		task.LastLine = line
		s.tasksMutex.Unlock()
		s.notifyUpdate(task)
	}

	args := BuildDownloadArgs(task.URL, formatSpec, template, "")
	lines, err := s.invoker.Run(ctx, args, onLine)
	if err == nil {
		return lines, nil
	}
	if ctx.Err() != nil {
		return lines, ctx.Err()
	}

	firstErr := newInvokeError(args, lines, err)
	if browser == "" || browser == "none" {
		return lines, firstErr
	}

	source, resolveErr := platform.ResolveCookieSource(browser)
	if resolveErr != nil {
		return lines, fmt.Errorf("download failed and cookie source could not be resolved: %w", resolveErr)
	}

	log.Printf("Cookie-less attempt failed for task %s (%v), retrying with cookies from %s",
		task.ID, firstErr.Reason, browser)

	s.tasksMutex.Lock()
	task.UsedCookies = true
	task.Status = model.TaskStatusRetrying
	s.tasksMutex.Unlock()
	s.notifyUpdate(task)
	s.setStatus(task, model.TaskStatusDownloading)

	args = BuildDownloadArgs(task.URL, formatSpec, template, source)
	lines, err = s.invoker.Run(ctx, args, onLine)
	if err == nil {
		return lines, nil
	}
	if ctx.Err() != nil {
		return lines, ctx.Err()
	}
	return lines, newInvokeError(args, lines, err)
}

func (s *Service) setStatus(task *model.DownloadTask, status model.TaskStatus) {
	s.tasksMutex.Lock()
	task.Status = status
	s.tasksMutex.Unlock()
	s.notifyUpdate(task)
}

// notifyUpdate calls the update callback if set
func (s *Service) notifyUpdate(task *model.DownloadTask) {
	if s.onUpdate != nil {
		s.onUpdate(task)
	}
}

// parseDestination extracts the final output path from yt-dlp output lines.
// The merger line wins over plain destination lines because it names the
// joined file.
var destinationMarkers = []string{
	"[Merger] Merging formats into ",
	"[download] Destination: ",
	"Destination: ",
}

func parseDestination(lines []string) string {
	var path string
	for _, line := range lines {
		for _, marker := range destinationMarkers {
			if !strings.HasPrefix(line, marker) {
				continue
			}
			candidate := strings.Trim(strings.TrimPrefix(line, marker), "\"")
			if candidate != "" {
				path = candidate
			}
			break
		}
		// "has already been downloaded" lines carry the path after the tag
		if strings.HasSuffix(line, " has already been downloaded") {
			candidate := strings.TrimSuffix(strings.TrimPrefix(line, "[download] "), " has already been downloaded")
			if candidate != "" {
				path = candidate
			}
		}
	}
	return path
}

// findStreamFile locates the downloaded stream file in the pipeline temp
// dir, skipping unfinished artifacts.
func findStreamFile(dir, prefix string) (string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return "", fmt.Errorf("failed to read temp directory: %w", err)
	}

	for _, entry := range entries {
		if entry.IsDir() || !strings.HasPrefix(entry.Name(), prefix) {
			continue
		}
		partial := false
		for _, ext := range partialExtensions {
			if strings.HasSuffix(entry.Name(), ext) {
				partial = true
				break
			}
		}
		if !partial {
			return filepath.Join(dir, entry.Name()), nil
		}
	}
	return "", fmt.Errorf("downloaded stream not found in %s", dir)
}

// generateTaskID generates a unique task ID using UUID v7 for better
// uniqueness and time ordering
func generateTaskID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return fmt.Sprintf(taskIDPrefix+"%d", time.Now().UnixNano())
	}
	return taskIDPrefix + id.String()
}
