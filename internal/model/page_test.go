package model

import "testing"

func TestPageState_NextOffset(t *testing.T) {
	tests := []struct {
		name      string
		offset    int
		total     int
		direction int
		expected  int
	}{
		{"forward within range", 0, 7, 1, 3},
		{"forward to last page", 3, 7, 1, 6},
		{"forward wraps to zero", 6, 7, 1, 0},
		{"backward within range", 6, 7, -1, 3},
		{"backward wraps to last page", 0, 7, -1, 6},
		{"exact multiple total wraps", 6, 9, 1, 0},
		{"backward wrap exact multiple", 0, 9, -1, 6},
		{"single page forward", 0, 2, 1, 0},
		{"single page backward", 0, 2, -1, 0},
	}

	for _, test := range tests {
		state := PageState{Offset: test.offset, TotalCount: test.total}
		result := state.NextOffset(test.direction)
		if result != test.expected {
			t.Errorf("%s: NextOffset(%d) with offset=%d total=%d = %d, expected %d",
				test.name, test.direction, test.offset, test.total, result, test.expected)
		}
	}
}

func TestPageState_LastPageOffset(t *testing.T) {
	tests := []struct {
		total    int
		expected int
	}{
		{0, 0},
		{1, 0},
		{3, 0},
		{4, 3},
		{7, 6},
		{9, 6},
		{10, 9},
	}

	for _, test := range tests {
		state := PageState{TotalCount: test.total}
		result := state.LastPageOffset()
		if result != test.expected {
			t.Errorf("LastPageOffset() with total=%d = %d, expected %d", test.total, result, test.expected)
		}
	}
}

func TestWorkItem_AspectRatio(t *testing.T) {
	tests := []struct {
		name     string
		width    int
		height   int
		expected float64
	}{
		{"landscape", 1600, 1200, 4.0 / 3.0},
		{"portrait", 1200, 1600, 0.75},
		{"square", 800, 800, 1},
		{"missing width", 0, 1200, 1},
		{"missing height", 1600, 0, 1},
		{"both missing", 0, 0, 1},
		{"negative dimensions", -10, 20, 1},
	}

	for _, test := range tests {
		item := WorkItem{Photo: PhotoInfo{Width: test.width, Height: test.height}}
		result := item.AspectRatio()
		if result != test.expected {
			t.Errorf("%s: AspectRatio() = %v, expected %v", test.name, result, test.expected)
		}
	}
}

func TestWorkItem_FormattedDate(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"2023-04-09T00:00:00.000Z", "2023.04.09"},
		{"2023-04-09", "2023.04.09"},
		{"", ""},
		{"not-a-date", ""},
	}

	for _, test := range tests {
		item := WorkItem{ShootingDate: test.input}
		result := item.FormattedDate()
		if result != test.expected {
			t.Errorf("FormattedDate(%q) = %q, expected %q", test.input, result, test.expected)
		}
	}
}
