package align

import (
	"fmt"
	"math"

	"github.com/theoremus-urban-solutions/gpx-align/geo"
	"github.com/theoremus-urban-solutions/gpx-align/track"
)

// Locate scans doc in track/segment/point order for the timestamped point
// closest to the target coordinate within the target radius. Points without
// a timestamp are never candidates. A point at exactly the radius
// qualifies. Ties on exact distance keep the earlier point: the comparison
// is a strict less-than against the running minimum.
func Locate(doc *track.Document, target Target) MatchResult {
	best := math.Inf(1)
	var match MatchResult
	for _, trk := range doc.Tracks {
		for _, seg := range trk.Segments {
			for _, p := range seg.Points {
				if p.Time == nil {
					continue
				}
				d := geo.HaversineMeters(target.Latitude, target.Longitude, p.Latitude, p.Longitude)
				if d <= target.RadiusMeters && d < best {
					best = d
					match = MatchResult{Found: true, Time: *p.Time, DistanceMeters: d}
				}
			}
		}
	}
	if !match.Found {
		match.Message = fmt.Sprintf("no points found within %gm of alignment point", target.RadiusMeters)
		return match
	}
	match.Message = fmt.Sprintf("found alignment point at distance %.1fm", match.DistanceMeters)
	return match
}
