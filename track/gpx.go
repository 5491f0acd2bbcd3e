package track

import (
	"fmt"

	"github.com/tkrajina/gpxgo/gpx"
)

// FileExtension is the lower-case extension of files GPXCodec handles.
const FileExtension = ".gpx"

// GPXCodec reads and writes GPX 1.1 documents via gpxgo.
type GPXCodec struct{}

// Parse converts raw GPX bytes into a Document. A zero gpxgo timestamp
// means the point carried no <time> element, so it maps to a nil Time.
func (GPXCodec) Parse(data []byte) (*Document, error) {
	g, err := gpx.ParseBytes(data)
	if err != nil {
		return nil, fmt.Errorf("parse gpx: %w", err)
	}
	doc := &Document{
		Creator: g.Creator,
		Name:    g.Name,
		Tracks:  make([]Track, 0, len(g.Tracks)),
	}
	for _, gt := range g.Tracks {
		trk := Track{Name: gt.Name, Segments: make([]Segment, 0, len(gt.Segments))}
		for _, gs := range gt.Segments {
			seg := Segment{Points: make([]Point, 0, len(gs.Points))}
			for _, gp := range gs.Points {
				p := Point{Latitude: gp.Latitude, Longitude: gp.Longitude}
				if gp.Elevation.NotNull() {
					ele := gp.Elevation.Value()
					p.Elevation = &ele
				}
				if !gp.Timestamp.IsZero() {
					ts := gp.Timestamp
					p.Time = &ts
				}
				seg.Points = append(seg.Points, p)
			}
			trk.Segments = append(trk.Segments, seg)
		}
		doc.Tracks = append(doc.Tracks, trk)
	}
	return doc, nil
}

// Serialize renders a Document back to GPX 1.1 XML.
func (GPXCodec) Serialize(doc *Document) ([]byte, error) {
	g := &gpx.GPX{Creator: doc.Creator, Name: doc.Name}
	for _, trk := range doc.Tracks {
		gt := gpx.GPXTrack{Name: trk.Name}
		for _, seg := range trk.Segments {
			var gs gpx.GPXTrackSegment
			for _, p := range seg.Points {
				gp := gpx.GPXPoint{Point: gpx.Point{Latitude: p.Latitude, Longitude: p.Longitude}}
				if p.Elevation != nil {
					gp.Elevation = *gpx.NewNullableFloat64(*p.Elevation)
				}
				if p.Time != nil {
					gp.Timestamp = *p.Time
				}
				gs.Points = append(gs.Points, gp)
			}
			gt.Segments = append(gt.Segments, gs)
		}
		g.Tracks = append(g.Tracks, gt)
	}
	out, err := g.ToXml(gpx.ToXmlParams{Version: "1.1", Indent: true})
	if err != nil {
		return nil, fmt.Errorf("serialize gpx: %w", err)
	}
	return out, nil
}
