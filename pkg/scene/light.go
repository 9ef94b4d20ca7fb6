package scene

import "github.com/meshtrace/meshtrace/pkg/core"

// Light is a point light source. Immutable after preprocessing.
type Light struct {
	Position core.Vec3
	Color    core.Vec3 // RGB in [0,1]
}

// NewLight creates a new point light
func NewLight(position, color core.Vec3) Light {
	return Light{Position: position, Color: color}
}
