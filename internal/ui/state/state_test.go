package state

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResultsCursorScrolls(t *testing.T) {
	s := NewAppState()
	s.ResultsVisible = 3

	s.MoveResultsCursor(4, 10)
	assert.Equal(t, 4, s.ResultsCursor)
	assert.Equal(t, 2, s.ResultsOffset)

	s.MoveResultsCursor(100, 10)
	assert.Equal(t, 9, s.ResultsCursor)
	assert.Equal(t, 7, s.ResultsOffset)

	s.MoveResultsCursor(-8, 10)
	assert.Equal(t, 1, s.ResultsCursor)
	assert.Equal(t, 1, s.ResultsOffset)
}

func TestEnsureResultVisibleShrinkingList(t *testing.T) {
	s := NewAppState()
	s.ResultsVisible = 3
	s.ResultsCursor = 9
	s.ResultsOffset = 7

	s.EnsureResultVisible(2)
	assert.Equal(t, 1, s.ResultsCursor)
	assert.Equal(t, 0, s.ResultsOffset)

	s.EnsureResultVisible(0)
	assert.Equal(t, 0, s.ResultsCursor)
	assert.Equal(t, 0, s.ResultsOffset)
}

func TestFilterCursor(t *testing.T) {
	s := NewAppState()
	s.MoveFilterCursor(-1, 28)
	assert.Equal(t, 0, s.FilterCursor)
	s.MoveFilterCursor(30, 28)
	assert.Equal(t, 27, s.FilterCursor)
	assert.Equal(t, FocusSearch, s.Focus)
}
