package overlay

import (
	"image"
	"image/color"

	"github.com/fogleman/gg"

	"browcam/landmarks"
	"browcam/styles"
)

// PolygonRenderer is the simpler variant: each brow is a closed polygon
// filled through the offset points (no arch), re-filled once scaled around
// its centroid when the style asks for extra thickness.
type PolygonRenderer struct{}

func (r *PolygonRenderer) Render(dst *image.RGBA, set landmarks.Set, style styles.Style) {
	w := dst.Bounds().Dx()
	h := dst.Bounds().Dy()
	if w == 0 || h == 0 {
		return
	}
	dc := gg.NewContextForRGBA(dst)
	for _, indices := range [][]int{landmarks.LeftEyebrow, landmarks.RightEyebrow} {
		pts := browPoints(set, indices, style, 0, w, h)
		if len(pts) < 3 {
			continue
		}
		fillPolygon(dc, pts, style.Color)
		if style.Thickness > 1 {
			scale := 1 + 0.15*(style.Thickness-1)
			fillPolygon(dc, scaleAround(pts, centroid(pts), scale), style.Color)
		}
	}
}

func fillPolygon(dc *gg.Context, pts []gg.Point, c color.NRGBA) {
	dc.MoveTo(pts[0].X, pts[0].Y)
	for _, p := range pts[1:] {
		dc.LineTo(p.X, p.Y)
	}
	dc.ClosePath()
	dc.SetColor(c)
	dc.Fill()
}

func centroid(pts []gg.Point) gg.Point {
	var cx, cy float64
	for _, p := range pts {
		cx += p.X
		cy += p.Y
	}
	n := float64(len(pts))
	return gg.Point{X: cx / n, Y: cy / n}
}

func scaleAround(pts []gg.Point, anchor gg.Point, scale float64) []gg.Point {
	result := make([]gg.Point, len(pts))
	for i, p := range pts {
		result[i] = gg.Point{
			X: anchor.X + (p.X-anchor.X)*scale,
			Y: anchor.Y + (p.Y-anchor.Y)*scale,
		}
	}
	return result
}
