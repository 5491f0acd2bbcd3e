package geo_test

import (
	"math"
	"testing"

	"github.com/theoremus-urban-solutions/gpx-align/geo"
)

func TestHaversineMeters(t *testing.T) {
	tests := []struct {
		name                   string
		lat1, lon1, lat2, lon2 float64
		want                   float64
		tolerance              float64
	}{
		{
			name: "identical coordinates",
			lat1: 59.9139, lon1: 10.7522,
			lat2: 59.9139, lon2: 10.7522,
			want: 0, tolerance: 0,
		},
		{
			name: "one degree of latitude",
			lat1: 0, lon1: 0,
			lat2: 1, lon2: 0,
			want: 111195, tolerance: 5,
		},
		{
			name: "one degree of longitude at the equator",
			lat1: 0, lon1: 0,
			lat2: 0, lon2: 1,
			want: 111195, tolerance: 5,
		},
		{
			name: "oslo to bergen",
			lat1: 59.9139, lon1: 10.7522,
			lat2: 60.3913, lon2: 5.3221,
			want: 305000, tolerance: 5000,
		},
		{
			name: "ten centimeter scale",
			lat1: 59.913900, lon1: 10.752200,
			lat2: 59.913901, lon2: 10.752200,
			want: 0.111, tolerance: 0.001,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := geo.HaversineMeters(tt.lat1, tt.lon1, tt.lat2, tt.lon2)
			if math.Abs(got-tt.want) > tt.tolerance {
				t.Errorf("expected %.3f ± %.3f, got %.3f", tt.want, tt.tolerance, got)
			}
		})
	}
}

func TestHaversineMetersSymmetry(t *testing.T) {
	forward := geo.HaversineMeters(59.9139, 10.7522, 60.3913, 5.3221)
	backward := geo.HaversineMeters(60.3913, 5.3221, 59.9139, 10.7522)
	if math.Abs(forward-backward) > 1e-9 {
		t.Errorf("distance should be symmetric: %v vs %v", forward, backward)
	}
	t.Logf("✓ symmetric at %.1fm", forward)
}
