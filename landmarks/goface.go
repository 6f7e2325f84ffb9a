package landmarks

import (
	"bytes"
	"image"
	"image/jpeg"
	"log"
	"math"
	"sync"

	"github.com/Kagami/go-face"
)

// dlib 68-point shape indices for the two eyebrows (5 points each).
var (
	dlibLeftBrow  = []int{17, 18, 19, 20, 21}
	dlibRightBrow = []int{22, 23, 24, 25, 26}
)

// dlibShapePoints is what the 68-point shape predictor yields. go-face loads
// whatever sits under the 5-point predictor filename, so a default model set
// yields 5 points per face and no brow shapes at all.
const dlibShapePoints = 68

type gofaceDetector struct {
	mutex     sync.Mutex
	rec       *face.Recognizer
	shapeWarn sync.Once
}

// NewGoFaceDetector loads the dlib models from modelsDir and returns a
// Detector that resamples the dlib eyebrow shape points onto the mesh
// indices the overlay consumes.
func NewGoFaceDetector(modelsDir string) (Detector, error) {
	rec, err := face.NewRecognizer(modelsDir)
	if err != nil {
		return nil, err
	}
	return &gofaceDetector{rec: rec}, nil
}

func (d *gofaceDetector) DetectForVideo(img image.Image, timestampMs int64) (Result, error) {
	buf := bytes.Buffer{}
	if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: 85}); err != nil {
		return Result{}, err
	}
	d.mutex.Lock()
	found, err := d.rec.Recognize(buf.Bytes())
	d.mutex.Unlock()
	if err != nil {
		return Result{}, err
	}
	result := Result{TimestampMs: timestampMs}
	result.Sets = d.setsFromFaces(found, img.Bounds().Dx(), img.Bounds().Dy())
	return result, nil
}

func (d *gofaceDetector) setsFromFaces(found []face.Face, w, h int) []Set {
	var sets []Set
	for _, f := range found {
		if len(f.Shapes) < dlibShapePoints {
			d.shapeWarn.Do(func() {
				log.Printf("Face has %d shape points, need %d; place a 68-point shape predictor in the models dir (see FACE_MODELS_DIR)", len(f.Shapes), dlibShapePoints)
			})
			continue
		}
		set := setFromShapes(f.Shapes, w, h)
		if set == nil {
			continue
		}
		sets = append(sets, set)
	}
	return sets
}

func (d *gofaceDetector) Close() error {
	d.mutex.Lock()
	defer d.mutex.Unlock()
	if d.rec != nil {
		d.rec.Close()
		d.rec = nil
	}
	return nil
}

func setFromShapes(shapes []image.Point, w, h int) Set {
	if len(shapes) < dlibShapePoints || w == 0 || h == 0 {
		return nil
	}
	set := make(Set, MeshSize)
	fillBrow(set, LeftEyebrow, dlibLeftBrow, shapes, w, h)
	fillBrow(set, RightEyebrow, dlibRightBrow, shapes, w, h)
	return set
}

// fillBrow resamples the dlib brow points at len(meshIdx) evenly spaced
// positions and writes them, normalized, to the mesh indices.
func fillBrow(set Set, meshIdx, dlibIdx []int, shapes []image.Point, w, h int) {
	for i, mi := range meshIdx {
		t := float64(i) / float64(len(meshIdx)-1) * float64(len(dlibIdx)-1)
		lo := int(math.Floor(t))
		hi := lo + 1
		if hi >= len(dlibIdx) {
			hi = lo
		}
		frac := t - float64(lo)
		a := shapes[dlibIdx[lo]]
		b := shapes[dlibIdx[hi]]
		set[mi] = Point{
			X: (float64(a.X) + (float64(b.X)-float64(a.X))*frac) / float64(w),
			Y: (float64(a.Y) + (float64(b.Y)-float64(a.Y))*frac) / float64(h),
		}
	}
}
