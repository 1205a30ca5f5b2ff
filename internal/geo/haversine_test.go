package geo

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDistanceKm(t *testing.T) {
	tests := []struct {
		name string
		a, b Point
		want float64
		tol  float64
	}{
		{
			name: "same point",
			a:    Point{52.52, 13.405},
			b:    Point{52.52, 13.405},
			want: 0,
			tol:  1e-9,
		},
		{
			name: "berlin to paris",
			a:    Point{52.5200, 13.4050},
			b:    Point{48.8566, 2.3522},
			want: 877.46,
			tol:  1.0,
		},
		{
			name: "one degree of latitude on a meridian",
			a:    Point{0, 0},
			b:    Point{1, 0},
			want: 111.19,
			tol:  0.01,
		},
		{
			name: "antipodal",
			a:    Point{0, 0},
			b:    Point{0, 180},
			want: 20015.09,
			tol:  0.1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DistanceKm(tt.a, tt.b)
			assert.InDelta(t, tt.want, got, tt.tol)
			assert.InDelta(t, got, DistanceKm(tt.b, tt.a), 1e-9, "distance must be symmetric")
		})
	}
}

func TestPointValid(t *testing.T) {
	assert.True(t, Point{90, 180}.Valid())
	assert.True(t, Point{-90, -180}.Valid())
	assert.False(t, Point{90.1, 0}.Valid())
	assert.False(t, Point{0, -180.5}.Valid())
}
