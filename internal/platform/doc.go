package platform

// Package platform contains OS integration helpers: filesystem utilities and
// the on-disk cache location for downloaded photo textures.
