package overlay

import (
	"image"
	"image/color"
	"image/draw"

	"github.com/disintegration/imaging"
	"github.com/fogleman/gg"

	"browcam/landmarks"
	"browcam/styles"
)

const (
	// Base line width as a fraction of the frame height, before the
	// style's thickness multiplier.
	baseWidthFraction = 0.012
	blurSigma         = 1.2
)

// Each brow is stroked three times: once centered, then nudged up and down
// by a fraction of the line width at reduced opacity, faking bristles.
var bristlePasses = []struct {
	dy    float64 // fraction of the line width
	alpha float64
}{
	{0, 1.0},
	{-0.15, 0.8},
	{0.15, 0.7},
}

// StrokeRenderer is the reference renderer: a smoothed curve through the
// brow points, stroked in layered passes on a separate surface that gets a
// small blur before compositing.
type StrokeRenderer struct{}

func (r *StrokeRenderer) Render(dst *image.RGBA, set landmarks.Set, style styles.Style) {
	w := dst.Bounds().Dx()
	h := dst.Bounds().Dy()
	if w == 0 || h == 0 {
		return
	}
	width := baseWidthFraction * float64(h) * style.Thickness
	if width <= 0 {
		return
	}
	layer := image.NewRGBA(image.Rect(0, 0, w, h))
	dc := gg.NewContextForRGBA(layer)
	dc.SetLineCap(gg.LineCapRound)
	arch := styles.ArchStrength(style.ID)
	drawn := false
	for _, indices := range [][]int{landmarks.LeftEyebrow, landmarks.RightEyebrow} {
		pts := browPoints(set, indices, style, arch, w, h)
		if len(pts) < 2 {
			continue
		}
		strokeBristled(dc, pts, style.Color, width)
		drawn = true
	}
	if !drawn {
		return
	}
	draw.Draw(dst, dst.Bounds(), imaging.Blur(layer, blurSigma), image.Point{}, draw.Over)
}

func strokeBristled(dc *gg.Context, pts []gg.Point, c color.NRGBA, width float64) {
	red := float64(c.R) / 255
	green := float64(c.G) / 255
	blue := float64(c.B) / 255
	alpha := float64(c.A) / 255
	for _, pass := range bristlePasses {
		smoothPath(dc, pts, pass.dy*width)
		dc.SetRGBA(red, green, blue, alpha*pass.alpha)
		dc.SetLineWidth(width)
		dc.Stroke()
	}
}

// smoothPath builds a midpoint-quadratic polyline: interior points act as
// control points and the curve lands on the midpoint to the next point.
func smoothPath(dc *gg.Context, pts []gg.Point, dy float64) {
	dc.MoveTo(pts[0].X, pts[0].Y+dy)
	for i := 1; i < len(pts)-1; i++ {
		mx := (pts[i].X + pts[i+1].X) / 2
		my := (pts[i].Y+pts[i+1].Y)/2 + dy
		dc.QuadraticTo(pts[i].X, pts[i].Y+dy, mx, my)
	}
	last := pts[len(pts)-1]
	dc.LineTo(last.X, last.Y+dy)
}
