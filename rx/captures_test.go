package rx

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeCaptures(t *testing.T) {
	type testcase struct {
		text     string
		loc      []int
		expected CaptureSet
	}
	tests := []testcase{
		{"12-34", []int{0, 5}, CaptureSet{}},
		{"12-34", []int{0, 5, 0, 2, 3, 5}, CaptureSet{{"12", true}, {"34", true}}},
		{"xb", []int{1, 2, -1, -1, 1, 2}, CaptureSet{{}, {"b", true}}},
		{"xy", []int{0, 2, 1, 1}, CaptureSet{{"", true}}},
		{"", nil, CaptureSet{}},
	}

	for _, test := range tests {
		// Act
		caps := normalizeCaptures(test.text, test.loc)

		// Assert
		assert.Equal(t, test.expected, caps, "loc %v", test.loc)
	}
}
