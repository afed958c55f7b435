package model

// TransitionStatus represents the phase of a page transition
type TransitionStatus string

const (
	// TransitionIdle means no transition is in flight
	TransitionIdle TransitionStatus = "Idle"

	// TransitionAnimatingOut means current slots are sliding off-stage
	TransitionAnimatingOut TransitionStatus = "AnimatingOut"

	// TransitionFetching means the next page is being fetched
	TransitionFetching TransitionStatus = "Fetching"

	// TransitionAnimatingIn means new slots are sliding to rest depth
	TransitionAnimatingIn TransitionStatus = "AnimatingIn"
)

// String returns the string representation of TransitionStatus
func (ts TransitionStatus) String() string {
	return string(ts)
}

// IsActive returns true if a transition is in flight
func (ts TransitionStatus) IsActive() bool {
	return ts == TransitionAnimatingOut || ts == TransitionFetching || ts == TransitionAnimatingIn
}

// LoadStatus represents the state of one asynchronous asset load
type LoadStatus string

const (
	// LoadPending means the load is queued but not started
	LoadPending LoadStatus = "Pending"

	// LoadFetching means the asset is being fetched or decoded
	LoadFetching LoadStatus = "Fetching"

	// LoadCompleted means the asset is ready
	LoadCompleted LoadStatus = "Completed"

	// LoadError means the load failed; prior visible state is preserved
	LoadError LoadStatus = "Error"
)

// String returns the string representation of LoadStatus
func (ls LoadStatus) String() string {
	return string(ls)
}

// IsFinished returns true if the load reached a terminal state
func (ls LoadStatus) IsFinished() bool {
	return ls == LoadCompleted || ls == LoadError
}

// BackendKind identifies one audio playback strategy, in falling order of
// preference.
type BackendKind string

const (
	// BackendNativeSpatial is the engine's own positional sound path
	BackendNativeSpatial BackendKind = "NativeSpatial"

	// BackendAmbisonic routes playback through an ambisonic scene graph
	BackendAmbisonic BackendKind = "Ambisonic"

	// BackendPanner applies a manually computed stereo pan and gain
	BackendPanner BackendKind = "Panner"

	// BackendFlat is plain non-spatial playback
	BackendFlat BackendKind = "Flat"

	// BackendNone means every backend failed to construct
	BackendNone BackendKind = "None"
)

// String returns the string representation of BackendKind
func (bk BackendKind) String() string {
	return string(bk)
}

// Spatial returns true if the backend positions sound in 3D space
func (bk BackendKind) Spatial() bool {
	return bk == BackendNativeSpatial || bk == BackendAmbisonic || bk == BackendPanner
}
