package landmarks

import (
	"image"
	"math"
	"testing"

	"github.com/Kagami/go-face"
)

func TestSetAt(t *testing.T) {
	set := Set{{X: 0.1, Y: 0.2}, {X: 0.3, Y: 0.4}}
	tests := []struct {
		name  string
		index int
		ok    bool
	}{
		{"first", 0, true},
		{"last", 1, true},
		{"past end", 2, false},
		{"mesh index on short set", 336, false},
		{"negative", -1, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, ok := set.At(tt.index)
			if ok != tt.ok {
				t.Errorf("At(%d) ok = %v, want %v", tt.index, ok, tt.ok)
			}
		})
	}
}

func TestFillBrowResamplesEndpoints(t *testing.T) {
	shapes := make([]image.Point, 68)
	// Left brow along a straight horizontal segment from (100,80) to (180,80)
	for i, di := range dlibLeftBrow {
		shapes[di] = image.Point{X: 100 + 20*i, Y: 80}
	}
	set := make(Set, MeshSize)
	fillBrow(set, LeftEyebrow, dlibLeftBrow, shapes, 200, 160)

	first := set[LeftEyebrow[0]]
	last := set[LeftEyebrow[len(LeftEyebrow)-1]]
	if math.Abs(first.X-0.5) > 1e-9 || math.Abs(first.Y-0.5) > 1e-9 {
		t.Errorf("first point = %+v, want (0.5, 0.5)", first)
	}
	if math.Abs(last.X-0.9) > 1e-9 || math.Abs(last.Y-0.5) > 1e-9 {
		t.Errorf("last point = %+v, want (0.9, 0.5)", last)
	}
	// Interior samples stay on the segment
	for _, mi := range LeftEyebrow {
		p := set[mi]
		if p.X < 0.5-1e-9 || p.X > 0.9+1e-9 || math.Abs(p.Y-0.5) > 1e-9 {
			t.Errorf("point %d = %+v, outside segment", mi, p)
		}
	}
}

func TestSetFromShapesTooShort(t *testing.T) {
	if set := setFromShapes(make([]image.Point, 5), 100, 100); set != nil {
		t.Errorf("expected nil set for a 5-point shape, got %d points", len(set))
	}
	if set := setFromShapes(make([]image.Point, 68), 0, 0); set != nil {
		t.Error("expected nil set for zero-sized frame")
	}
}

func TestSetsFromFacesSkipsFivePointPredictor(t *testing.T) {
	d := &gofaceDetector{}
	// The stock go-face model set: 5 shape points per face
	stock := face.Face{Shapes: make([]image.Point, 5)}
	if sets := d.setsFromFaces([]face.Face{stock, stock}, 100, 100); len(sets) != 0 {
		t.Fatalf("5-point faces produced %d landmark sets, want none", len(sets))
	}

	shapes := make([]image.Point, 68)
	for i, di := range dlibLeftBrow {
		shapes[di] = image.Point{X: 20 + 10*i, Y: 40}
	}
	for i, di := range dlibRightBrow {
		shapes[di] = image.Point{X: 60 + 10*i, Y: 40}
	}
	sets := d.setsFromFaces([]face.Face{{Shapes: shapes}}, 100, 100)
	if len(sets) != 1 {
		t.Fatalf("68-point face produced %d landmark sets, want 1", len(sets))
	}
	if p, ok := sets[0].At(LeftEyebrow[0]); !ok || math.Abs(p.Y-0.4) > 1e-9 {
		t.Errorf("left brow anchor = %+v ok=%v, want y 0.4", p, ok)
	}
}
