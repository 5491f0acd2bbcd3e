package align

import (
	"time"

	"github.com/theoremus-urban-solutions/gpx-align/track"
)

// Shift adds offset to every timestamped point in doc. Points without a
// timestamp are left untouched. The document is mutated in place; callers
// that need a pristine copy for output must re-parse the source first.
func Shift(doc *track.Document, offset time.Duration) {
	for ti := range doc.Tracks {
		for si := range doc.Tracks[ti].Segments {
			points := doc.Tracks[ti].Segments[si].Points
			for pi := range points {
				if points[pi].Time == nil {
					continue
				}
				shifted := points[pi].Time.Add(offset)
				points[pi].Time = &shifted
			}
		}
	}
}
