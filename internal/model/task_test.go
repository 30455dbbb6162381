package model

import "testing"

func TestDownloadTask_GetDisplayTitle(t *testing.T) {
	tests := []struct {
		name     string
		task     DownloadTask
		expected string
	}{
		{
			name:     "prefers title",
			task:     DownloadTask{Title: "Some Video", OutputPath: "/d/file.mp4", URL: "https://example.com/v"},
			expected: "Some Video",
		},
		{
			name:     "url-like title ignored",
			task:     DownloadTask{Title: "https://example.com/v", OutputPath: "/d/clip.mkv"},
			expected: "clip",
		},
		{
			name:     "filename without extension",
			task:     DownloadTask{OutputPath: "/downloads/My_Clip.webm"},
			expected: "My_Clip",
		},
		{
			name:     "windows separators",
			task:     DownloadTask{OutputPath: `C:\downloads\My_Clip.webm`},
			expected: "My_Clip",
		},
		{
			name:     "falls back to URL",
			task:     DownloadTask{URL: "https://example.com/watch?v=abc"},
			expected: "https://example.com/watch?v=abc",
		},
	}

	for _, test := range tests {
		if got := test.task.GetDisplayTitle(); got != test.expected {
			t.Errorf("%s: GetDisplayTitle() = %q, expected %q", test.name, got, test.expected)
		}
	}
}
