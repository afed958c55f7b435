package content

// Package content implements paginated retrieval of work items from the
// remote content API, with a hard timeout and environment-aware endpoint
// selection (direct with key header, or same-origin proxy).
