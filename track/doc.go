// Package track defines the track document model shared by the alignment
// engine and the codec that reads and writes it.
//
// A Document is an ordered tree of tracks, segments, and points. Points
// carry a coordinate and optionally an elevation and a timestamp. The Codec
// interface hides the on-disk grammar: the engine only ever sees parsed
// documents, so swapping the file format touches nothing outside this
// package.
package track
