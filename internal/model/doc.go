package model

// Package model defines domain data structures used across the app: download
// tasks, the format listing parsed from yt-dlp's JSON probe, and status
// enums. Structures are designed for direct binding in the UI and explicit
// state transitions.
