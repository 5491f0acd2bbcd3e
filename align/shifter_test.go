package align_test

import (
	"testing"
	"time"

	"github.com/theoremus-urban-solutions/gpx-align/align"
	"github.com/theoremus-urban-solutions/gpx-align/track"
)

func TestShift_AppliesOffsetToEveryTimedPoint(t *testing.T) {
	base := time.Date(2024, 1, 1, 10, 0, 0, 123456789, time.UTC)
	t0 := base
	t1 := base.Add(5 * time.Second)
	doc := &track.Document{Tracks: []track.Track{{
		Segments: []track.Segment{
			{Points: []track.Point{
				{Latitude: 1, Longitude: 1, Time: &t0},
				{Latitude: 2, Longitude: 2}, // untimed, must stay untimed
			}},
			{Points: []track.Point{
				{Latitude: 3, Longitude: 3, Time: &t1},
			}},
		},
	}}}

	offset := -5 * time.Minute
	align.Shift(doc, offset)

	got0 := doc.Tracks[0].Segments[0].Points[0].Time
	if got0 == nil || !got0.Equal(base.Add(offset)) {
		t.Errorf("first point: expected %v, got %v", base.Add(offset), got0)
	}
	if doc.Tracks[0].Segments[0].Points[1].Time != nil {
		t.Error("untimed point must stay untimed")
	}
	got1 := doc.Tracks[0].Segments[1].Points[0].Time
	if got1 == nil || !got1.Equal(t1.Add(offset)) {
		t.Errorf("second segment point: expected %v, got %v", t1.Add(offset), got1)
	}
}

func TestShift_RoundTripIsExact(t *testing.T) {
	// Shifting by +d then -d must reproduce the original instants
	// bit-for-bit, sub-second part included.
	times := []time.Time{
		time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC),
		time.Date(2024, 1, 1, 10, 0, 1, 500000000, time.UTC),
		time.Date(2024, 1, 1, 10, 0, 2, 999999999, time.UTC),
	}
	var points []track.Point
	for i := range times {
		ts := times[i]
		points = append(points, track.Point{Latitude: float64(i), Longitude: 0, Time: &ts})
	}
	doc := &track.Document{Tracks: []track.Track{{Segments: []track.Segment{{Points: points}}}}}

	d := 3*time.Hour + 17*time.Minute + 250*time.Millisecond
	align.Shift(doc, d)
	align.Shift(doc, -d)

	for i, p := range doc.Tracks[0].Segments[0].Points {
		if p.Time.UnixNano() != times[i].UnixNano() {
			t.Errorf("point %d drifted: %v -> %v", i, times[i], *p.Time)
		}
	}
	t.Log("✓ no cumulative drift after +d/-d")
}
