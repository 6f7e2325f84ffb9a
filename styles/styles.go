package styles

import (
	"image/color"
	"sync"
)

// Style is an immutable eyebrow preset.
type Style struct {
	ID        string      `json:"id"`
	Name      string      `json:"name"`
	Color     color.NRGBA `json:"-"`
	Thickness float64     `json:"thickness"` // multiplier on the base line width
	OffsetY   float64     `json:"offsetY"`   // vertical offset as a fraction of the frame height
}

// catalog is the fixed, ordered list of presets. The first entry is the
// default selection.
var catalog = []Style{
	{ID: "natural", Name: "Natural", Color: color.NRGBA{R: 60, G: 42, B: 32, A: 217}, Thickness: 1.0, OffsetY: 0},
	{ID: "bold", Name: "Bold", Color: color.NRGBA{R: 28, G: 20, B: 16, A: 235}, Thickness: 1.8, OffsetY: 0},
	{ID: "arched", Name: "Arched", Color: color.NRGBA{R: 74, G: 52, B: 38, A: 217}, Thickness: 1.1, OffsetY: -0.01},
	{ID: "thin", Name: "Thin", Color: color.NRGBA{R: 92, G: 64, B: 46, A: 204}, Thickness: 0.6, OffsetY: 0},
	{ID: "lifted", Name: "Lifted", Color: color.NRGBA{R: 60, G: 42, B: 32, A: 217}, Thickness: 1.0, OffsetY: -0.03},
}

// archStrengths lifts the middle of each brow by sin(pi*t)*strength*height.
// Kept separate from the styles' OffsetY: the two act independently.
var archStrengths = map[string]float64{
	"natural": 0.0,
	"bold":    0.005,
	"arched":  0.018,
	"thin":    0.008,
	"lifted":  0.012,
}

var (
	mutex    sync.RWMutex
	selected = catalog[0]
)

// Catalog returns the presets in display order.
func Catalog() []Style {
	result := make([]Style, len(catalog))
	copy(result, catalog)
	return result
}

// ArchStrength returns the per-style arch constant; 0 for unknown IDs.
func ArchStrength(id string) float64 {
	return archStrengths[id]
}

// Select makes the style with the given ID the current one. Unknown IDs
// silently fall back to the first catalog entry. The resolved style is
// returned.
func Select(id string) Style {
	choice := catalog[0]
	for _, s := range catalog {
		if s.ID == id {
			choice = s
			break
		}
	}
	mutex.Lock()
	selected = choice
	mutex.Unlock()
	return choice
}

// Selected returns the current style.
func Selected() Style {
	mutex.RLock()
	defer mutex.RUnlock()
	return selected
}
