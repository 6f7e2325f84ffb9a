package landmarks

import "image"

// MeshSize is the number of points in the full face mesh scheme. Detectors
// may return shorter sets; consumers must skip indices past the end.
const MeshSize = 468

// Point is a single face-mesh point, normalized to [0,1] relative to the
// frame dimensions.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z,omitempty"`
}

// Set is one face's mesh, indexed positionally by the fixed scheme.
type Set []Point

// At returns the point at index i and whether the set actually contains it.
func (s Set) At(i int) (Point, bool) {
	if i < 0 || i >= len(s) {
		return Point{}, false
	}
	return s[i], true
}

// Result of one detector invocation. Sets is empty when no face was found.
type Result struct {
	Sets        []Set `json:"sets"`
	TimestampMs int64 `json:"ts"`
}

// Detector produces face landmark sets for video frames. Implementations
// must tolerate being called once per frame from a single goroutine.
type Detector interface {
	DetectForVideo(img image.Image, timestampMs int64) (Result, error)
	Close() error
}
