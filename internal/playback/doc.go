// Package playback owns the single looping sound. Controller holds the
// Stopped/Playing state and applies the page-change policy; SpeakerEngine
// decodes bundled sounds with beep, loops them and plays them through the
// system speaker.
package playback
