package track

import (
	"time"
)

// Point is a single recorded position. Time is nil for points the recorder
// wrote without a fix time; such points are never alignment candidates and
// are left untouched when a document is shifted.
type Point struct {
	Latitude  float64
	Longitude float64
	Elevation *float64
	Time      *time.Time
}

// Segment is a continuous run of points.
type Segment struct {
	Points []Point
}

// Track is a named sequence of segments.
type Track struct {
	Name     string
	Segments []Segment
}

// Document is one parsed track file. A Document is owned by the step that
// parsed it and must not be shared across files.
type Document struct {
	Creator string
	Name    string
	Tracks  []Track
}
