package maze

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDirectionsOrder(t *testing.T) {
	require.Equal(t, [4]Compass{North, East, South, West}, Directions())
}

func TestReverseIsInvolution(t *testing.T) {
	for _, dir := range Directions() {
		assert.NotEqual(t, dir, dir.Reverse(), "%s must not reverse to itself", dir)
		assert.Equal(t, dir, dir.Reverse().Reverse(), "%s", dir)
	}
}

func TestNeighbour(t *testing.T) {
	tests := []struct {
		dir      Compass
		row, col int
	}{
		{North, 0, 1},
		{East, 1, 2},
		{South, 2, 1},
		{West, 1, 0},
	}
	for _, tt := range tests {
		row, col := tt.dir.Neighbour(1, 1)
		assert.Equal(t, tt.row, row, "%s row", tt.dir)
		assert.Equal(t, tt.col, col, "%s col", tt.dir)
	}
}

func TestCheckedNeighbour(t *testing.T) {
	tests := []struct {
		name     string
		dir      Compass
		row, col int
		wantRow  int
		wantCol  int
		wantOK   bool
	}{
		{"north inside", North, 1, 1, 0, 1, true},
		{"east inside", East, 1, 1, 1, 2, true},
		{"south inside", South, 1, 1, 2, 1, true},
		{"west inside", West, 1, 1, 1, 0, true},
		{"north at top", North, 0, 1, 0, 0, false},
		{"east at right", East, 1, 2, 0, 0, false},
		{"south at bottom", South, 2, 1, 0, 0, false},
		{"west at left", West, 1, 0, 0, 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			row, col, ok := tt.dir.CheckedNeighbour(3, 3, tt.row, tt.col)
			require.Equal(t, tt.wantOK, ok)
			if ok {
				assert.Equal(t, tt.wantRow, row)
				assert.Equal(t, tt.wantCol, col)
			}
		})
	}
}

func TestOffset(t *testing.T) {
	tests := []struct {
		row, col int
		want     int
		wantOK   bool
	}{
		{0, 2, 2, true},
		{1, 1, 4, true},
		{2, 0, 6, true},
		{3, 1, 0, false},
		{1, 3, 0, false},
		{-1, 0, 0, false},
		{0, -1, 0, false},
	}
	for _, tt := range tests {
		got, ok := Offset(3, 3, tt.row, tt.col)
		require.Equal(t, tt.wantOK, ok, "offset(%d,%d)", tt.row, tt.col)
		if ok {
			assert.Equal(t, tt.want, got)
		}
	}
}

func TestDirSet(t *testing.T) {
	var s dirSet
	require.False(t, s.has(North))

	s.add(North)
	s.add(West)
	assert.True(t, s.has(North))
	assert.True(t, s.has(West))
	assert.False(t, s.has(East))

	s.remove(North)
	assert.False(t, s.has(North))
	assert.True(t, s.has(West))
}
