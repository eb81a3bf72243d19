package defs

import (
	"errors"
	"fmt"

	"gold-miner/internal/config"
	"gold-miner/pkg/render"

	"github.com/BurntSushi/toml"
)

var ErrInvalidCatalog = errors.New("invalid mineral catalog")

// LoadCatalog reads a mineral catalog from a TOML file:
//
//	[[mineral]]
//	id = "gold"
//	shape = "circle"
//	fill = "#FFD700"
//	min_value = 10
//	max_value = 30
func LoadCatalog(path string) (Catalog, error) {
	var c Catalog
	if _, err := toml.DecodeFile(path, &c); err != nil {
		return Catalog{}, fmt.Errorf("failed to read mineral catalog: %w", err)
	}
	if err := c.Validate(); err != nil {
		return Catalog{}, err
	}
	return c, nil
}

// LoadFor returns the catalog from path, or the variant's built-in one when
// path is empty.
func LoadFor(v config.Variant, path string) (Catalog, error) {
	if path == "" {
		return CatalogFor(v), nil
	}
	return LoadCatalog(path)
}

// Validate checks ranges, shapes, colours and ID uniqueness.
func (c Catalog) Validate() error {
	if len(c.Minerals) == 0 {
		return fmt.Errorf("%w: no minerals", ErrInvalidCatalog)
	}
	seen := make(map[string]bool, len(c.Minerals))
	for _, def := range c.Minerals {
		if def.ID == "" {
			return fmt.Errorf("%w: mineral without id", ErrInvalidCatalog)
		}
		if seen[def.ID] {
			return fmt.Errorf("%w: duplicate id %q", ErrInvalidCatalog, def.ID)
		}
		seen[def.ID] = true

		switch def.Shape {
		case ShapeCircle, ShapeSquare, ShapeTriangle:
		default:
			return fmt.Errorf("%w: %s: unknown shape %q", ErrInvalidCatalog, def.ID, def.Shape)
		}
		if def.MinValue < 0 || def.MinValue > def.MaxValue {
			return fmt.Errorf("%w: %s: bad value range [%d,%d]", ErrInvalidCatalog, def.ID, def.MinValue, def.MaxValue)
		}
		if _, err := render.ParseHex(def.Fill); err != nil {
			return fmt.Errorf("%w: %s: fill: %v", ErrInvalidCatalog, def.ID, err)
		}
		if def.Stroke != "" {
			if _, err := render.ParseHex(def.Stroke); err != nil {
				return fmt.Errorf("%w: %s: stroke: %v", ErrInvalidCatalog, def.ID, err)
			}
		}
	}
	return nil
}
