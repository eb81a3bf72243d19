// internal/defs/minerals.go
package defs

import "gold-miner/internal/config"

// Shape is the outline a mineral is drawn with.
type Shape string

const (
	ShapeCircle   Shape = "circle"
	ShapeSquare   Shape = "square"
	ShapeTriangle Shape = "triangle"
)

// MineralDefinition holds the static data for one kind of mineral.
type MineralDefinition struct {
	ID       string `toml:"id"`
	Shape    Shape  `toml:"shape"`
	Fill     string `toml:"fill"`
	Stroke   string `toml:"stroke,omitempty"` // пусто - без обводки
	MinValue int    `toml:"min_value"`
	MaxValue int    `toml:"max_value"`
}

// Catalog lists the kinds a session draws minerals from.
type Catalog struct {
	Minerals []MineralDefinition `toml:"mineral"`
}

// ShapeCatalog is the classic rule set: three gold shapes worth 10-30.
func ShapeCatalog() Catalog {
	return Catalog{Minerals: []MineralDefinition{
		{ID: "circle", Shape: ShapeCircle, Fill: "#FFD700", Stroke: "#000000", MinValue: 10, MaxValue: 30},
		{ID: "square", Shape: ShapeSquare, Fill: "#FFD700", Stroke: "#000000", MinValue: 10, MaxValue: 30},
		{ID: "triangle", Shape: ShapeTriangle, Fill: "#FFD700", Stroke: "#000000", MinValue: 10, MaxValue: 30},
	}}
}

// ColorCatalog is the colour rule set: red worth 0-10, green worth 10-20.
func ColorCatalog() Catalog {
	return Catalog{Minerals: []MineralDefinition{
		{ID: "red", Shape: ShapeCircle, Fill: "#FF0000", MinValue: 0, MaxValue: 10},
		{ID: "green", Shape: ShapeCircle, Fill: "#00FF00", MinValue: 10, MaxValue: 20},
	}}
}

// CatalogFor returns the built-in catalog of a variant.
func CatalogFor(v config.Variant) Catalog {
	if v == config.VariantColors {
		return ColorCatalog()
	}
	return ShapeCatalog()
}

// Lookup finds a definition by ID.
func (c Catalog) Lookup(id string) (MineralDefinition, bool) {
	for _, def := range c.Minerals {
		if def.ID == id {
			return def, true
		}
	}
	return MineralDefinition{}, false
}
