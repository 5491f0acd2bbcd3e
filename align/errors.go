package align

import (
	"errors"
)

// Batch-level failures. Per-file failures never surface as errors; they are
// captured in the file's summary entry instead.
var (
	// ErrNoTracksFound means the input directory holds no track files.
	ErrNoTracksFound = errors.New("no gpx files found in the input directory")

	// ErrNoReferenceTime means every file failed analysis, so no reference
	// time could be derived for the batch.
	ErrNoReferenceTime = errors.New("no files had points within the specified radius of the alignment point")
)
