// Package geo provides great-circle distance calculation for track points.
//
// The aligner only compares distances in the few hundred meters around an
// alignment target, so a spherical-earth haversine is used instead of a
// geodetic model.
package geo
