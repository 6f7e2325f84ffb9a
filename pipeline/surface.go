package pipeline

import (
	"bytes"
	"errors"
	"image"
	"image/draw"
	"image/jpeg"
	"sync"

	"browcam/landmarks"
	"browcam/overlay"
	"browcam/styles"
)

// Surface is the drawing target the frame loop composes onto. The loop is
// the only writer; capture and stream handlers read concurrently, hence the
// lock.
type Surface struct {
	mutex sync.RWMutex
	img   *image.RGBA
}

func NewSurface() *Surface {
	return &Surface{}
}

// Resize reallocates the surface when the frame's natural dimensions change.
func (s *Surface) Resize(w, h int) {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	if s.img != nil && s.img.Bounds().Dx() == w && s.img.Bounds().Dy() == h {
		return
	}
	s.img = image.NewRGBA(image.Rect(0, 0, w, h))
}

func (s *Surface) Dimensions() (int, int) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	if s.img == nil {
		return 0, 0
	}
	return s.img.Bounds().Dx(), s.img.Bounds().Dy()
}

// DrawFrame paints the raw video frame over the whole surface.
func (s *Surface) DrawFrame(frame image.Image) {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	if s.img == nil {
		return
	}
	draw.Draw(s.img, s.img.Bounds(), frame, frame.Bounds().Min, draw.Src)
}

// Render lets the overlay renderer draw on top of the current frame.
func (s *Surface) Render(r overlay.Renderer, set landmarks.Set, style styles.Style) {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	if s.img == nil {
		return
	}
	r.Render(s.img, set, style)
}

// EncodeJPEG snapshots the composed surface.
func (s *Surface) EncodeJPEG() (data []byte, w, h int, err error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	if s.img == nil {
		return nil, 0, 0, errors.New("surface has no content yet")
	}
	buf := bytes.Buffer{}
	if err = jpeg.Encode(&buf, s.img, &jpeg.Options{Quality: 85}); err != nil {
		return nil, 0, 0, err
	}
	return buf.Bytes(), s.img.Bounds().Dx(), s.img.Bounds().Dy(), nil
}
