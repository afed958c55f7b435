package model

// Package model defines domain data structures used across the app: work items
// from the content API, pagination state, and status enums. Structures are
// designed for direct JSON decoding and explicit state transitions.
