package assets

// Package assets tracks outstanding load operations (textures, fetches,
// audio decodes) across a loading session and drives the progress overlay
// from 0 to 100 percent before dismissing it.
