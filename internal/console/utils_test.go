package console

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestByPiece(t *testing.T) {
	testCases := []struct {
		input string
		sep   string
		array []string
	}{
		{"a b c", " ", []string{"a", "b", "c"}},
		{"foo\nbar\nbaz\n\nbazz", "\n", []string{"foo", "bar", "baz", "", "bazz"}},
		{"single", "\n", []string{"single"}},
	}
	for _, test := range testCases {
		var pieces []string
		for i, p := range byPiece(test.input, test.sep) {
			assert.Equal(t, len(pieces), i)
			pieces = append(pieces, p)
		}
		assert.Equal(t, test.array, pieces)
	}
}

func TestByPieceStopsEarly(t *testing.T) {
	var pieces []string
	for i, p := range byPiece("a\nb\nc", "\n") {
		if i == 1 {
			break
		}
		pieces = append(pieces, p)
	}
	assert.Equal(t, []string{"a"}, pieces)
}

func TestClamp(t *testing.T) {
	assert.Equal(t, 0, clamp(-3, 0, 999))
	assert.Equal(t, 42, clamp(42, 0, 999))
	assert.Equal(t, 999, clamp(1500, 0, 999))
}
