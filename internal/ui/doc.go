package ui

// Package ui contains the Fyne-based desktop user interface for the
// application. It wires user interactions to the probe and download
// services and renders the format listing, progress, and settings. All UI
// strings are localized via Localization.
