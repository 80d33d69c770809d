package main

import (
	"testing"
)

// TestRun_ConfigErrors verifies that invalid configuration is rejected
// before any generation work starts.
func TestRun_ConfigErrors(t *testing.T) {
	cases := []struct {
		name      string
		width     int
		height    int
		algorithm string
	}{
		{"MissingWidth", 0, 5, "kruskal"},
		{"NegativeHeight", 5, -2, "prim"},
		{"MissingAlgorithm", 5, 5, ""},
		{"UnknownAlgorithm", 5, 5, "wilson"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if err := run(tc.width, tc.height, tc.algorithm, 1); err == nil {
				t.Errorf("run(%d,%d,%q) = nil; want configuration error",
					tc.width, tc.height, tc.algorithm)
			}
		})
	}
}
