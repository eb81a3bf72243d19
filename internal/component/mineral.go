// internal/component/mineral.go
package component

import "gold-miner/internal/types"

// Mineral is a collectible target.
type Mineral struct {
	ID       types.EntityID
	Position Position
	Kind     string  // ID из каталога минералов
	Value    int     // Очки за поимку
	Size     float64 // Диаметр
}

func (m *Mineral) Radius() float64 {
	return m.Size / 2
}
