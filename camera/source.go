package camera

import "image"

// Source is a live video input. Ready stays false until the first frame has
// been decoded and turns false again for good if the input fails: there are
// no automatic retries, a dead camera means a dead session.
type Source interface {
	Ready() bool
	// Frame returns the latest frame and its monotonic timestamp in
	// milliseconds, or (nil, 0) when no frame is available yet.
	Frame() (image.Image, int64)
	Close() error
}
