package grid

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSelectorDragAnyDirection(t *testing.T) {
	tests := []struct {
		name                 string
		beginRow, beginCol   int
		extendRow, extendCol int
	}{
		{name: "down right", beginRow: 1, beginCol: 1, extendRow: 3, extendCol: 4},
		{name: "up left", beginRow: 3, beginCol: 4, extendRow: 1, extendCol: 1},
		{name: "down left", beginRow: 1, beginCol: 4, extendRow: 3, extendCol: 1},
		{name: "up right", beginRow: 3, beginCol: 1, extendRow: 1, extendCol: 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewSelector()
			s.Begin(tt.beginRow, tt.beginCol, ButtonPrimary)
			s.Extend(tt.extendRow, tt.extendCol)
			s.EndDrag()

			assert.True(t, s.IsSelected(1, 1))
			assert.True(t, s.IsSelected(3, 4))
			assert.True(t, s.IsSelected(2, 2))
			assert.False(t, s.IsSelected(0, 1))
			assert.False(t, s.IsSelected(4, 4))
			assert.False(t, s.IsSelected(2, 5))
		})
	}
}

func TestSelectorIgnoresSecondaryButton(t *testing.T) {
	s := NewSelector()
	s.Begin(1, 1, ButtonSecondary)

	_, ok := s.Active()
	assert.False(t, ok)
	assert.False(t, s.Dragging())
}

func TestSelectorExtendWithoutDragIsNoop(t *testing.T) {
	s := NewSelector()
	s.Click(2, 2)
	s.Extend(5, 5)

	rect, ok := s.Active()
	require.True(t, ok)
	assert.True(t, rect.IsSingleCell())
	assert.True(t, s.IsSelected(2, 2))
	assert.False(t, s.IsSelected(5, 5))
}

func TestSelectorExtendOnEmptySelectionIsNoop(t *testing.T) {
	s := NewSelector()
	s.Extend(3, 3)

	_, ok := s.Active()
	assert.False(t, ok)
}

func TestSelectorEndDragKeepsSelection(t *testing.T) {
	s := NewSelector()
	s.Begin(0, 0, ButtonPrimary)
	s.Extend(2, 2)
	s.EndDrag()

	assert.False(t, s.Dragging())
	assert.True(t, s.IsSelected(1, 1))

	s.Extend(9, 9)
	assert.False(t, s.IsSelected(9, 9), "extend after drag end must not grow selection")
}

func TestSelectorClear(t *testing.T) {
	s := NewSelector()
	s.Click(1, 1)
	s.Clear()

	assert.False(t, s.IsSelected(1, 1))
	_, ok := s.Active()
	assert.False(t, ok)
}
