package axis

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPlacementText(t *testing.T) {
	for p := PlacementTop; p < placementCount; p++ {
		text, err := p.MarshalText()
		require.NoError(t, err)

		var got Placement
		require.NoError(t, got.UnmarshalText(text))
		require.Equal(t, p, got)
	}

	var p Placement
	require.NoError(t, p.UnmarshalText([]byte(" Left-Outside ")))
	require.Equal(t, PlacementLeftOutside, p)
	require.NoError(t, p.UnmarshalText([]byte("right_outside")))
	require.Equal(t, PlacementRightOutside, p)
	require.NoError(t, p.UnmarshalText([]byte("Top-Inside")))
	require.Equal(t, PlacementTopInside, p)

	require.Error(t, p.UnmarshalText([]byte("middle")))
	_, err := Placement(42).MarshalText()
	require.Error(t, err)
	require.Equal(t, "Placement(42)", Placement(42).String())
}

func TestPlacementDirection(t *testing.T) {
	require.Equal(t, Horizontal, PlacementTop.Direction())
	require.Equal(t, Horizontal, PlacementBothSided.Direction())
	require.Equal(t, Vertical, PlacementLeftOutside.Direction())
	require.Equal(t, Vertical, PlacementRightInside.Direction())

	require.Equal(t, Vertical, Placement(42).Direction())
	require.Equal(t, PlacementLeftOutside.edges(), Placement(42).edges())
	require.False(t, Placement(42).Inside())
}

func TestPlacementInside(t *testing.T) {
	inside := map[Placement]bool{
		PlacementTopInside:    true,
		PlacementBottomInside: true,
		PlacementLeftInside:   true,
		PlacementRightInside:  true,
	}
	for p := PlacementTop; p < placementCount; p++ {
		require.Equal(t, inside[p], p.Inside(), p.String())
	}
}

func TestLabelPositionText(t *testing.T) {
	for p := LabelRightTop; p <= LabelLeftBottom; p++ {
		text, err := p.MarshalText()
		require.NoError(t, err)

		var got LabelPosition
		require.NoError(t, got.UnmarshalText(text))
		require.Equal(t, p, got)
	}

	var p LabelPosition
	require.NoError(t, p.UnmarshalText([]byte("LEFT-TOP")))
	require.Equal(t, LabelLeftTop, p)
	require.Error(t, p.UnmarshalText([]byte("center")))

	// Unknown positions lay out like the default.
	require.Equal(t, LabelRightTop.spec(), LabelPosition(9).spec())
}
