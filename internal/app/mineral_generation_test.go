package app

import (
	"testing"

	"gold-miner/internal/config"
	"gold-miner/internal/defs"
	"gold-miner/internal/entity"
	"gold-miner/internal/utils"
)

func TestGenerateMineralsRespectsCatalogRanges(t *testing.T) {
	tests := []struct {
		name    string
		catalog defs.Catalog
		ranges  map[string][2]int
	}{
		{"shapes", defs.ShapeCatalog(), map[string][2]int{
			"circle": {10, 30}, "square": {10, 30}, "triangle": {10, 30},
		}},
		{"colors", defs.ColorCatalog(), map[string][2]int{
			"red": {0, 10}, "green": {10, 20},
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rng := utils.NewPRNGService(99)
			w := entity.NewWorld(config.ScreenWidth)
			for round := 0; round < 200; round++ {
				GenerateMinerals(w, tt.catalog, rng, config.ScreenWidth, config.ScreenHeight)
				if len(w.Minerals) != config.MineralCount {
					t.Fatalf("generated %d minerals, want %d", len(w.Minerals), config.MineralCount)
				}
				for _, m := range w.Minerals {
					r, ok := tt.ranges[m.Kind]
					if !ok {
						t.Fatalf("unexpected kind %q", m.Kind)
					}
					if m.Value < r[0] || m.Value > r[1] {
						t.Fatalf("%s worth %d, outside [%d,%d]", m.Kind, m.Value, r[0], r[1])
					}
					if m.Position.X < 25 || m.Position.X >= 775 || m.Position.Y < 200 || m.Position.Y >= 600 {
						t.Fatalf("mineral at %+v outside the play area", m.Position)
					}
					if m.Size != config.MineralSize {
						t.Fatalf("size %v, want %v", m.Size, config.MineralSize)
					}
				}
			}
		})
	}
}

func TestGenerateMineralsUniqueIDsAndReplacesPrevious(t *testing.T) {
	rng := utils.NewPRNGService(1)
	w := entity.NewWorld(config.ScreenWidth)
	GenerateMinerals(w, defs.ShapeCatalog(), rng, 800, 600)
	first := w.Minerals[0].ID

	GenerateMinerals(w, defs.ShapeCatalog(), rng, 800, 600)
	if len(w.Minerals) != config.MineralCount {
		t.Fatalf("regeneration left %d minerals", len(w.Minerals))
	}
	seen := map[uint64]bool{}
	for _, m := range w.Minerals {
		if m.ID == first {
			t.Fatal("old mineral survived regeneration")
		}
		if seen[uint64(m.ID)] {
			t.Fatalf("duplicate id %d", m.ID)
		}
		seen[uint64(m.ID)] = true
	}
}

func TestGenerateMineralsIsSeeded(t *testing.T) {
	a := entity.NewWorld(800)
	b := entity.NewWorld(800)
	GenerateMinerals(a, defs.ColorCatalog(), utils.NewPRNGService(5), 800, 600)
	GenerateMinerals(b, defs.ColorCatalog(), utils.NewPRNGService(5), 800, 600)
	for i := range a.Minerals {
		if a.Minerals[i] != b.Minerals[i] {
			t.Fatalf("mineral %d differs: %+v vs %+v", i, a.Minerals[i], b.Minerals[i])
		}
	}
}
