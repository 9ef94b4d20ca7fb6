package scene

import (
	"github.com/meshtrace/meshtrace/pkg/core"
)

// NewDefaultScene creates the built-in scene used when no geometry
// file is given: two triangles in front of the default camera, lit by
// a bright key light and a dim blue fill light.
func NewDefaultScene(ambient, background core.Vec3) *Scene {
	red := core.NewVec3(0.9, 0.2, 0.2)
	green := core.NewVec3(0.2, 0.9, 0.2)
	blue := core.NewVec3(0.2, 0.2, 0.9)
	gray := core.NewVec3(0.6, 0.6, 0.6)

	// Zero normals get repaired to face normals during preprocessing.
	front := NewTriangle(
		Vertex{Position: core.NewVec3(-1.5, -1, 2), Color: red},
		Vertex{Position: core.NewVec3(1.5, -1, 2), Color: green},
		Vertex{Position: core.NewVec3(0, 1.5, 2), Color: blue},
	)
	floor := NewTriangle(
		Vertex{Position: core.NewVec3(-4, -1.2, 6), Color: gray},
		Vertex{Position: core.NewVec3(4, -1.2, 6), Color: gray},
		Vertex{Position: core.NewVec3(0, -1.2, -2), Color: gray},
	)

	lights := []Light{
		NewLight(core.NewVec3(2, 3, -2), core.NewVec3(1, 1, 1)),
		NewLight(core.NewVec3(-3, 1, 0), core.NewVec3(0.2, 0.2, 0.5)),
	}

	return NewScene([]Triangle{front, floor}, lights, ambient, background)
}
