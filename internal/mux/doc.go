// Package mux joins separately downloaded video and audio streams into one
// container with ffmpeg, and validates the result with ffprobe.
package mux
