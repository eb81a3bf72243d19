// internal/app/mineral_generation.go
package app

import (
	"gold-miner/internal/component"
	"gold-miner/internal/config"
	"gold-miner/internal/defs"
	"gold-miner/internal/entity"
	"gold-miner/internal/utils"
)

// GenerateMinerals replaces the world's minerals with a fresh batch of
// config.MineralCount. Positions avoid the side edges and the reserved strip
// at the top where the hook and score live.
func GenerateMinerals(world *entity.World, catalog defs.Catalog, rng *utils.PRNGService, width, height int) {
	world.Minerals = world.Minerals[:0]
	for i := 0; i < config.MineralCount; i++ {
		def := catalog.Minerals[rng.Intn(len(catalog.Minerals))]
		x := rng.Float64Range(config.MineralMarginX, float64(width)-config.MineralMarginX)
		y := rng.Float64Range(config.MineralTopReserve, float64(height))
		world.Minerals = append(world.Minerals, component.Mineral{
			ID:       world.NewEntity(),
			Position: component.Position{X: x, Y: y},
			Kind:     def.ID,
			Value:    rng.IntRange(def.MinValue, def.MaxValue),
			Size:     config.MineralSize,
		})
	}
}
