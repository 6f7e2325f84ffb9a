package styles

import "testing"

func TestCatalogShape(t *testing.T) {
	c := Catalog()
	if len(c) != 5 {
		t.Fatalf("catalog has %d entries, want 5", len(c))
	}
	if c[0].ID != "natural" {
		t.Errorf("first entry = %q, want natural", c[0].ID)
	}
	if c[0].OffsetY != 0 || c[0].Thickness != 1.0 || ArchStrength(c[0].ID) != 0 {
		t.Errorf("natural must be a no-op preset: offset=%v thickness=%v arch=%v",
			c[0].OffsetY, c[0].Thickness, ArchStrength(c[0].ID))
	}
	seen := map[string]bool{}
	for _, s := range c {
		if seen[s.ID] {
			t.Errorf("duplicate style ID %q", s.ID)
		}
		seen[s.ID] = true
		if _, ok := archStrengths[s.ID]; !ok {
			t.Errorf("style %q has no arch strength entry", s.ID)
		}
		if s.Thickness < 0 {
			t.Errorf("style %q has negative thickness", s.ID)
		}
	}
}

func TestSelect(t *testing.T) {
	defer Select("natural")
	tests := []struct {
		name string
		id   string
		want string
	}{
		{"known", "bold", "bold"},
		{"another known", "lifted", "lifted"},
		{"unknown falls back to first", "nope", "natural"},
		{"empty falls back to first", "", "natural"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Select(tt.id)
			if got.ID != tt.want {
				t.Errorf("Select(%q) = %q, want %q", tt.id, got.ID, tt.want)
			}
			if Selected().ID != tt.want {
				t.Errorf("Selected() = %q, want %q", Selected().ID, tt.want)
			}
		})
	}
}
