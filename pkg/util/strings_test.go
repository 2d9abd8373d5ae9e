package util

import "testing"

func TestSplitCommaSeparated(t *testing.T) {
	tests := []struct {
		input string
		want  int
	}{
		{"", 0},
		{"1100", 1},
		{"1100,1200", 2},
		{"1100, 1200, 1300", 3},
		{"1100,,1200", 2},
	}

	for _, tt := range tests {
		got := SplitCommaSeparated(tt.input)
		if len(got) != tt.want {
			t.Errorf("SplitCommaSeparated(%q) = %v (len %d), want len %d", tt.input, got, len(got), tt.want)
		}
	}
}

func TestStringSet(t *testing.T) {
	set := StringSet([]string{"1", "20", "1"})
	if len(set) != 2 {
		t.Errorf("StringSet() len = %d, want 2", len(set))
	}
	if !set["20"] {
		t.Error("StringSet() missing element \"20\"")
	}
	if set["999"] {
		t.Error("StringSet() contains element that was never added")
	}
}
