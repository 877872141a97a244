package geo

import (
	"math"
	"testing"

	"github.com/paulmach/orb"
)

func pt(lon, lat float64) orb.Point { return orb.Point{lon, lat} }

func TestHaversine(t *testing.T) {
	tests := []struct {
		name             string
		a, b             orb.Point
		wantMeters       float64
		tolerancePercent float64
	}{
		{
			name:             "Singapore CBD to Changi Airport",
			a:                pt(103.8513, 1.2830),
			b:                pt(103.9915, 1.3644),
			wantMeters:       18_023,
			tolerancePercent: 1,
		},
		{
			name:             "Same point",
			a:                pt(103.8198, 1.3521),
			b:                pt(103.8198, 1.3521),
			wantMeters:       0,
			tolerancePercent: 0,
		},
		{
			name:             "London to Paris",
			a:                pt(-0.1278, 51.5074),
			b:                pt(2.3522, 48.8566),
			wantMeters:       343_500,
			tolerancePercent: 1,
		},
		{
			name:             "Short distance (~100m)",
			a:                pt(103.8198, 1.3521),
			b:                pt(103.8198, 1.3530),
			wantMeters:       100,
			tolerancePercent: 5,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Haversine(tt.a, tt.b)
			if tt.wantMeters == 0 {
				if got != 0 {
					t.Errorf("expected 0, got %f", got)
				}
				return
			}
			diff := math.Abs(got-tt.wantMeters) / tt.wantMeters * 100
			if diff > tt.tolerancePercent {
				t.Errorf("Haversine = %f m, want ~%f m (diff %.1f%%)", got, tt.wantMeters, diff)
			}
		})
	}
}

func TestEquirectangularDist(t *testing.T) {
	a := pt(103.8198, 1.3521)
	b := pt(103.8300, 1.3600)

	h := Haversine(a, b)
	e := EquirectangularDist(a, b)

	diffPercent := math.Abs(h-e) / h * 100
	if diffPercent > 0.5 {
		t.Errorf("EquirectangularDist differs from Haversine by %.2f%% (haversine=%f, equirect=%f)", diffPercent, h, e)
	}
}

func TestPointToSegmentDist(t *testing.T) {
	tests := []struct {
		name      string
		p, a, b   orb.Point
		wantRatio float64
		maxDistM  float64
	}{
		{
			name:      "Point at start of segment",
			p:         pt(103.8200, 1.3500),
			a:         pt(103.8200, 1.3500),
			b:         pt(103.8200, 1.3600),
			wantRatio: 0.0,
			maxDistM:  1,
		},
		{
			name:      "Point at end of segment",
			p:         pt(103.8200, 1.3600),
			a:         pt(103.8200, 1.3500),
			b:         pt(103.8200, 1.3600),
			wantRatio: 1.0,
			maxDistM:  1,
		},
		{
			name:      "Point at midpoint perpendicular",
			p:         pt(103.8210, 1.3550),
			a:         pt(103.8200, 1.3500),
			b:         pt(103.8200, 1.3600),
			wantRatio: 0.5,
			maxDistM:  200,
		},
		{
			name:      "Degenerate segment (A == B)",
			p:         pt(103.8210, 1.3500),
			a:         pt(103.8200, 1.3500),
			b:         pt(103.8200, 1.3500),
			wantRatio: 0.0,
			maxDistM:  200,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dist, ratio, _ := PointToSegmentDist(tt.p, tt.a, tt.b)
			if dist > tt.maxDistM {
				t.Errorf("dist = %f m, want <= %f m", dist, tt.maxDistM)
			}
			if math.Abs(ratio-tt.wantRatio) > 0.05 {
				t.Errorf("ratio = %f, want ~%f", ratio, tt.wantRatio)
			}
		})
	}
}

func TestAngleBetween(t *testing.T) {
	// A right turn: straight segment then a 90 degree corner.
	a := pt(0, 0)
	b := pt(0, 1)
	c := pt(1, 1)
	got := AngleBetween(a, b, c)
	if math.Abs(got-90) > 0.01 {
		t.Errorf("AngleBetween = %f, want 90", got)
	}

	// Straight line: angle at b between a and c is 180.
	straight := AngleBetween(pt(0, 0), pt(0, 1), pt(0, 2))
	if math.Abs(straight-180) > 0.01 {
		t.Errorf("AngleBetween(straight) = %f, want 180", straight)
	}
}

func TestCrossProductSign(t *testing.T) {
	// Left turn (counter-clockwise) should be positive.
	left := CrossProductSign(pt(0, 0), pt(0, 1), pt(-1, 2))
	if left <= 0 {
		t.Errorf("expected positive cross product for left turn, got %f", left)
	}
	// Right turn (clockwise) should be negative.
	right := CrossProductSign(pt(0, 0), pt(0, 1), pt(1, 2))
	if right >= 0 {
		t.Errorf("expected negative cross product for right turn, got %f", right)
	}
}

func BenchmarkHaversine(b *testing.B) {
	p1, p2 := pt(103.8198, 1.3521), pt(103.8520, 1.2905)
	for i := 0; i < b.N; i++ {
		Haversine(p1, p2)
	}
}
