package platform

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
)

// Operating system constants
const (
	OSDarwin  = "darwin"
	OSWindows = "windows"
	OSLinux   = "linux"
)

// File permissions
const (
	DefaultDirPermissions = 0755
)

// Command constants
const (
	OpenCommand     = "open"
	ExplorerCommand = "explorer"
	XDGOpenCommand  = "xdg-open"
)

// Command parameters
const (
	MacOSSelectFlag    = "-R"
	WindowsSelectParam = "/select,"
)

// Characters stripped from titles before they become file names
var unsafeFileNameChars = []string{"/", "\\", ":", "*", "?", "\"", "<", ">", "|"}

// GetHomeDownloadsDir returns the standard Downloads directory for the user
func GetHomeDownloadsDir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user home directory: %w", err)
	}
	return filepath.Join(homeDir, "Downloads"), nil
}

// CreateDirectoryIfNotExists creates the directory and any missing parents
func CreateDirectoryIfNotExists(dir string) error {
	return os.MkdirAll(dir, DefaultDirPermissions)
}

// SanitizeFileName makes a probed title safe to use as a file name
func SanitizeFileName(name string) string {
	for _, c := range unsafeFileNameChars {
		name = strings.ReplaceAll(name, c, "_")
	}
	name = strings.TrimSpace(name)
	if name == "" {
		name = "download"
	}
	// Keep names well under common filesystem limits
	if len(name) > 180 {
		name = name[:180]
	}
	return name
}

// OpenFileInManager opens the file in the system file manager and highlights it
func OpenFileInManager(filePath string) error {
	absPath, err := filepath.Abs(filePath)
	if err != nil {
		return fmt.Errorf("failed to get absolute path: %w", err)
	}
	if _, err := os.Stat(absPath); err != nil {
		return fmt.Errorf("file does not exist: %w", err)
	}

	switch runtime.GOOS {
	case OSDarwin:
		return exec.Command(OpenCommand, MacOSSelectFlag, absPath).Run()
	case OSWindows:
		return exec.Command(ExplorerCommand, WindowsSelectParam+absPath).Run()
	case OSLinux:
		// xdg-open cannot highlight a file, open the containing directory
		return exec.Command(XDGOpenCommand, filepath.Dir(absPath)).Run()
	default:
		return fmt.Errorf("unsupported operating system: %s", runtime.GOOS)
	}
}
