package align

import (
	"time"
)

// File statuses in a batch summary.
const (
	StatusSuccess = "success"
	StatusFailed  = "failed"
)

// MatchResult reports the outcome of a closest-point search over one
// document. It is produced once per file during analysis and read-only
// thereafter.
type MatchResult struct {
	Found          bool
	Time           time.Time
	DistanceMeters float64
	Message        string
}

// FileResult is the terminal state of one input file. Successful files
// carry the applied offset, their originally matched time, and where the
// aligned copy was written; failed files carry a message.
type FileResult struct {
	Status      string        `json:"status"`
	Message     string        `json:"message,omitempty"`
	Offset      time.Duration `json:"-"`
	OffsetText  string        `json:"time_offset,omitempty"`
	MatchedTime *time.Time    `json:"original_alignment_time,omitempty"`
	OutputPath  string        `json:"output_path,omitempty"`
}

// BatchResult summarizes a completed run. Files is keyed by the input
// file's base name; every discovered file appears exactly once.
type BatchResult struct {
	Processed     int                   `json:"processed"`
	Successful    int                   `json:"successful"`
	Failed        int                   `json:"failed"`
	ReferenceTime time.Time             `json:"reference_time"`
	Files         map[string]FileResult `json:"files"`
}
