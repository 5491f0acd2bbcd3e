package gpxalign

import (
	"log"

	"github.com/theoremus-urban-solutions/gpx-align/align"
	"github.com/theoremus-urban-solutions/gpx-align/track"
)

// AlignRequest carries the parameters for one batch run. It is both the
// JSON body of POST /api/align and the resolved form of the CLI flags.
type AlignRequest struct {
	Latitude     float64 `json:"latitude"`
	Longitude    float64 `json:"longitude"`
	RadiusMeters float64 `json:"radius_meters"`
	InputDir     string  `json:"input_dir"`
	OutputDir    string  `json:"output_dir,omitempty"`
}

// RunBatch runs a full alignment batch with the GPX codec, logging the
// per-file progress the engine reports.
func RunBatch(req AlignRequest) (*align.BatchResult, error) {
	c := align.NewCoordinator(track.GPXCodec{})
	c.OnProgress = func(p align.Progress) {
		log.Printf("[%s] %s: %s", p.Stage, p.File, p.Message)
	}
	target := align.Target{
		Latitude:     req.Latitude,
		Longitude:    req.Longitude,
		RadiusMeters: req.RadiusMeters,
	}
	return c.Run(req.InputDir, req.OutputDir, target)
}
