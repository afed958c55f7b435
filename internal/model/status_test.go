package model

import "testing"

func TestTransitionStatus_IsActive(t *testing.T) {
	tests := []struct {
		status   TransitionStatus
		expected bool
	}{
		{TransitionIdle, false},
		{TransitionAnimatingOut, true},
		{TransitionFetching, true},
		{TransitionAnimatingIn, true},
	}

	for _, test := range tests {
		result := test.status.IsActive()
		if result != test.expected {
			t.Errorf("TransitionStatus(%s).IsActive() = %v, expected %v", test.status, result, test.expected)
		}
	}
}

func TestBackendKind_Spatial(t *testing.T) {
	tests := []struct {
		kind     BackendKind
		expected bool
	}{
		{BackendNativeSpatial, true},
		{BackendAmbisonic, true},
		{BackendPanner, true},
		{BackendFlat, false},
		{BackendNone, false},
	}

	for _, test := range tests {
		result := test.kind.Spatial()
		if result != test.expected {
			t.Errorf("BackendKind(%s).Spatial() = %v, expected %v", test.kind, result, test.expected)
		}
	}
}
