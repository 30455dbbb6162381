package platform

// Package platform wraps host-specific concerns: resolving the external
// yt-dlp/ffmpeg binaries, standard directories, opening files in the system
// file manager, and mapping browser names to yt-dlp cookie sources.
