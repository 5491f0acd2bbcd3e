// Package align implements the track time alignment engine.
//
// A batch run locates, per input file, the recorded point closest to a
// target coordinate within a tolerance radius, selects the earliest matched
// timestamp across the batch as the reference time, and shifts every file
// so its matched point reads exactly the reference time.
//
// This package is organized into:
// - target.go: alignment target and parameter validation
// - locator.go: closest-point search within one document
// - shifter.go: scalar time shift over one document
// - coordinator.go: the two-pass batch over an input directory
// - result.go: per-file and batch summary types
//
// The engine is single-threaded and strictly two-phase: no file is shifted
// or written until every file has been analyzed, because the reference time
// is a minimum over the whole batch.
package align
