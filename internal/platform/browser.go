package platform

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/ini.v1"
)

// Librewolf is not one of yt-dlp's browser keywords; its profiles are
// Firefox-compatible, so it is passed as firefox:<profile path>.
const librewolfBrowser = "librewolf"

// ResolveCookieSource converts a configured browser name into the value for
// yt-dlp's --cookies-from-browser flag.
func ResolveCookieSource(browser string) (string, error) {
	if browser == librewolfBrowser {
		profile, err := findLibrewolfProfile(librewolfDir())
		if err != nil {
			return "", fmt.Errorf("failed to find librewolf profile: %w", err)
		}
		return "firefox:" + profile, nil
	}
	return browser, nil
}

func librewolfDir() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ".librewolf"
	}
	return filepath.Join(homeDir, ".librewolf")
}

// findLibrewolfProfile locates the default profile directory by reading
// profiles.ini, with directory-name fallbacks when the file is unreadable.
func findLibrewolfProfile(baseDir string) (string, error) {
	profilesIni := filepath.Join(baseDir, "profiles.ini")

	cfg, err := ini.Load(profilesIni)
	if err == nil {
		// Install* sections carry the default profile in the newer layout
		for _, section := range cfg.Sections() {
			if !strings.HasPrefix(section.Name(), "Install") {
				continue
			}
			if path := section.Key("Default").String(); path != "" {
				fullPath := filepath.Join(baseDir, path)
				if _, err := os.Stat(fullPath); err == nil {
					return fullPath, nil
				}
			}
		}
		// Older layout marks the default with Default=1 on a Profile section
		for _, section := range cfg.Sections() {
			if !strings.HasPrefix(section.Name(), "Profile") {
				continue
			}
			if section.Key("Default").String() != "1" {
				continue
			}
			if path := section.Key("Path").String(); path != "" {
				fullPath := filepath.Join(baseDir, path)
				if _, err := os.Stat(fullPath); err == nil {
					return fullPath, nil
				}
			}
		}
	}

	entries, err := os.ReadDir(baseDir)
	if err != nil {
		return "", fmt.Errorf("librewolf directory not found: %w", err)
	}
	for _, entry := range entries {
		if entry.IsDir() && strings.HasSuffix(entry.Name(), ".default-default") {
			return filepath.Join(baseDir, entry.Name()), nil
		}
	}
	for _, entry := range entries {
		if entry.IsDir() && strings.Contains(entry.Name(), ".default") {
			return filepath.Join(baseDir, entry.Name()), nil
		}
	}

	return "", fmt.Errorf("no librewolf profile found in %s", baseDir)
}
