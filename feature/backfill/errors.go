package backfill

import "errors"

var (
	// ErrNoBucket is returned when a run is requested without a bucket.
	ErrNoBucket = errors.New("no bucket configured")
	// ErrNoRenderer is returned at startup when the local encoder is
	// unavailable and no remote delegate is configured.
	ErrNoRenderer = errors.New("no local renderer and no remote delegate configured")
)
