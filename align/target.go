package align

import (
	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// Target is the alignment point and tolerance for one batch run. It is
// supplied once per run and never modified.
type Target struct {
	Latitude     float64 `json:"latitude" yaml:"latitude" validate:"gte=-90,lte=90"`
	Longitude    float64 `json:"longitude" yaml:"longitude" validate:"gte=-180,lte=180"`
	RadiusMeters float64 `json:"radius_meters" yaml:"radiusMeters" validate:"gt=0"`
}

// Validate rejects out-of-range coordinates and non-positive radii before
// any file I/O happens.
func (t Target) Validate() error {
	return validate.Struct(t)
}
