package xr

// Package xr bridges VR session lifecycle events to world recentering, the
// XR-active flag, and the audio coordinator's backend handoff.
