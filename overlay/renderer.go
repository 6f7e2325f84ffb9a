package overlay

import (
	"image"
	"math"

	"github.com/fogleman/gg"

	"browcam/landmarks"
	"browcam/styles"
)

// Renderer draws eyebrow overlays for one landmark set directly onto dst.
type Renderer interface {
	Render(dst *image.RGBA, set landmarks.Set, style styles.Style)
}

// browPoints maps the indexed mesh points into pixel space, applying the
// style's vertical offset and the sin-arch lift. Indices the set doesn't
// contain are skipped. The arch parameter t runs over the full index list so
// skipped points don't distort the curve.
func browPoints(set landmarks.Set, indices []int, style styles.Style, arch float64, w, h int) []gg.Point {
	pts := make([]gg.Point, 0, len(indices))
	for i, idx := range indices {
		p, ok := set.At(idx)
		if !ok {
			continue
		}
		t := float64(i) / float64(len(indices)-1)
		lift := math.Sin(math.Pi*t) * arch * float64(h)
		pts = append(pts, gg.Point{
			X: p.X * float64(w),
			Y: p.Y*float64(h) + style.OffsetY*float64(h) - lift,
		})
	}
	return pts
}
