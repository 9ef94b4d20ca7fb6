package scene

import (
	"github.com/meshtrace/meshtrace/pkg/core"
)

// Vertex holds the per-vertex attributes of a triangle corner.
type Vertex struct {
	Position core.Vec3
	Normal   core.Vec3
	Color    core.Vec3 // RGB in [0,1]
}

// Triangle represents a single triangle with per-vertex attributes.
// Triangles are immutable once the scene has been preprocessed.
type Triangle struct {
	V0, V1, V2 Vertex
}

// NewTriangle creates a new triangle from three vertices
func NewTriangle(v0, v1, v2 Vertex) Triangle {
	return Triangle{V0: v0, V1: v1, V2: v2}
}

// FaceNormal returns the geometric normal of the triangle's plane,
// the normalized cross product of two edge vectors.
func (t Triangle) FaceNormal() core.Vec3 {
	edge1 := t.V1.Position.Subtract(t.V0.Position)
	edge2 := t.V2.Position.Subtract(t.V0.Position)
	return edge1.Cross(edge2).Normalize()
}

// Centroid returns the average of the three vertex positions
func (t Triangle) Centroid() core.Vec3 {
	return t.V0.Position.
		Add(t.V1.Position).
		Add(t.V2.Position).
		Multiply(1.0 / 3.0)
}

// repairNormals replaces any all-zero vertex normal with the face
// normal. This runs exactly once, during scene preprocessing; every
// later query sees the repaired value.
func (t Triangle) repairNormals() Triangle {
	face := t.FaceNormal()
	if t.V0.Normal.IsZero() {
		t.V0.Normal = face
	}
	if t.V1.Normal.IsZero() {
		t.V1.Normal = face
	}
	if t.V2.Normal.IsZero() {
		t.V2.Normal = face
	}
	return t
}

// transform applies an affine transform to the triangle's vertex
// positions and the linear part to its normals.
func (t Triangle) transform(m core.Mat4) Triangle {
	t.V0.Position = m.TransformPoint(t.V0.Position)
	t.V1.Position = m.TransformPoint(t.V1.Position)
	t.V2.Position = m.TransformPoint(t.V2.Position)
	if !t.V0.Normal.IsZero() {
		t.V0.Normal = m.TransformDirection(t.V0.Normal).Normalize()
	}
	if !t.V1.Normal.IsZero() {
		t.V1.Normal = m.TransformDirection(t.V1.Normal).Normalize()
	}
	if !t.V2.Normal.IsZero() {
		t.V2.Normal = m.TransformDirection(t.V2.Normal).Normalize()
	}
	return t
}
