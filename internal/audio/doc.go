package audio

// Package audio owns the background-music source: backend selection with
// graceful fallback (native spatial, ambisonic, manual panner, flat),
// play/pause state, per-frame listener and source position tracking, and the
// backend handoff when a VR session starts or ends.
