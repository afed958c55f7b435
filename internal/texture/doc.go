package texture

// Package texture implements asynchronous image loading for photo and wall
// textures: fetch over HTTP, decode, cache to disk, and report progress to
// the asset registry.
