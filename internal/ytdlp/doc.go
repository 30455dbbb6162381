package ytdlp

// Package ytdlp implements the yt-dlp invocation layer: argument building,
// the JSON format probe, the download pipeline, and the cookie fallback that
// retries a failed cookie-less attempt with --cookies-from-browser. All real
// extraction and downloading work belongs to the external yt-dlp binary;
// this package only spawns it and interprets its output.
