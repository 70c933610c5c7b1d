package ui

// Package ui contains the Fyne-based user interface for the application.
// It renders the page carousel, wires swipes, arrows and the Start/Stop
// button to the carousel model and the playback controller, and shows
// settings and notifications. All UI strings are localized via Localization.
