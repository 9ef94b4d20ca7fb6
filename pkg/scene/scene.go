// Package scene holds the immutable in-memory scene model: triangles
// with per-vertex attributes, point lights, and the ambient and
// background colors. A Scene is built once, single-threaded, and is
// read-only afterwards, so render workers share it without locking.
package scene

import (
	"github.com/meshtrace/meshtrace/pkg/core"
)

// Scene contains all the elements needed for rendering
type Scene struct {
	Triangles  []Triangle // in input order; order is the intersection tie-break
	Lights     []Light
	Ambient    core.Vec3
	Background core.Vec3
}

// NewScene builds a scene from parsed triangles and lights, running
// the one-time preprocessing pass (vertex-normal repair). The input
// slices are copied; callers may discard them afterwards.
func NewScene(triangles []Triangle, lights []Light, ambient, background core.Vec3) *Scene {
	s := &Scene{
		Triangles:  make([]Triangle, len(triangles)),
		Lights:     make([]Light, len(lights)),
		Ambient:    ambient,
		Background: background,
	}
	for i, t := range triangles {
		s.Triangles[i] = t.repairNormals()
	}
	copy(s.Lights, lights)
	return s
}

// TransformTriangles returns a copy of the triangles with the given
// model transform applied to positions and (linearly) to normals.
// Apply before NewScene so zero normals are repaired in final
// position.
func TransformTriangles(triangles []Triangle, m core.Mat4) []Triangle {
	out := make([]Triangle, len(triangles))
	for i, t := range triangles {
		out[i] = t.transform(m)
	}
	return out
}
