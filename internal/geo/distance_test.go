package geo

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDistance_KnownPair(t *testing.T) {
	// Kyiv to Odesa, roughly 440 km.
	d := Distance(50.4501, 30.5234, 46.4825, 30.7233)
	require.InDelta(t, 441, d, 5)
}

func TestDistance_SamePointIsZero(t *testing.T) {
	require.InDelta(t, 0, Distance(48.0, 24.0, 48.0, 24.0), 1e-9)
}

func TestDistance_Symmetric(t *testing.T) {
	a := Distance(50.45, 30.52, 49.84, 24.03)
	b := Distance(49.84, 24.03, 50.45, 30.52)
	require.InDelta(t, a, b, 1e-9)
}
