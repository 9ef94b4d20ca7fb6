package scene

import (
	"math"
	"testing"

	"github.com/meshtrace/meshtrace/pkg/core"
)

const tolerance = 1e-9

func vecNear(a, b core.Vec3) bool {
	return a.Subtract(b).Length() < tolerance
}

// xyTriangle lies in the z=0 plane with face normal +Z
func xyTriangle(n0, n1, n2 core.Vec3) Triangle {
	return NewTriangle(
		Vertex{Position: core.NewVec3(0, 0, 0), Normal: n0},
		Vertex{Position: core.NewVec3(1, 0, 0), Normal: n1},
		Vertex{Position: core.NewVec3(0, 1, 0), Normal: n2},
	)
}

func TestNewScene_RepairsZeroNormals(t *testing.T) {
	custom := core.NewVec3(0, 0, -1)
	tri := xyTriangle(core.Vec3{}, custom, core.Vec3{})

	s := NewScene([]Triangle{tri}, nil, core.Vec3{}, core.Vec3{})

	face := core.NewVec3(0, 0, 1)
	got := s.Triangles[0]
	if !vecNear(got.V0.Normal, face) {
		t.Errorf("Expected zero normal repaired to face normal %v, got %v", face, got.V0.Normal)
	}
	if !vecNear(got.V1.Normal, custom) {
		t.Errorf("Expected caller-supplied normal %v preserved, got %v", custom, got.V1.Normal)
	}
	if !vecNear(got.V2.Normal, face) {
		t.Errorf("Expected zero normal repaired to face normal %v, got %v", face, got.V2.Normal)
	}

	// The input triangle is untouched; preprocessing works on the copy
	if !tri.V0.Normal.IsZero() {
		t.Errorf("Expected input triangle unmodified, got normal %v", tri.V0.Normal)
	}
}

func TestNewScene_PreservesInputOrder(t *testing.T) {
	a := xyTriangle(core.Vec3{}, core.Vec3{}, core.Vec3{})
	b := a
	b.V0.Position = core.NewVec3(5, 0, 0)

	s := NewScene([]Triangle{a, b}, nil, core.Vec3{}, core.Vec3{})
	if !vecNear(s.Triangles[1].V0.Position, core.NewVec3(5, 0, 0)) {
		t.Errorf("Expected triangles retained in input order")
	}
}

func TestTriangle_Centroid(t *testing.T) {
	tri := xyTriangle(core.Vec3{}, core.Vec3{}, core.Vec3{})
	c := tri.Centroid()
	expected := core.NewVec3(1.0/3.0, 1.0/3.0, 0)
	if !vecNear(c, expected) {
		t.Errorf("Expected centroid %v, got %v", expected, c)
	}
}

func TestTransformTriangles(t *testing.T) {
	tri := xyTriangle(core.NewVec3(0, 0, 1), core.NewVec3(0, 0, 1), core.NewVec3(0, 0, 1))

	// Rotate the triangle 90 degrees about X: z=0 plane becomes y=0,
	// normals follow the rotation.
	m := core.RotateX(math.Pi / 2)
	out := TransformTriangles([]Triangle{tri}, m)

	if !vecNear(out[0].V2.Position, core.NewVec3(0, 0, 1)) {
		t.Errorf("Expected rotated position (0, 0, 1), got %v", out[0].V2.Position)
	}
	if !vecNear(out[0].V0.Normal, core.NewVec3(0, -1, 0)) {
		t.Errorf("Expected rotated normal (0, -1, 0), got %v", out[0].V0.Normal)
	}
}

func TestNewDefaultScene(t *testing.T) {
	ambient := core.NewVec3(0.1, 0.1, 0.1)
	background := core.NewVec3(0, 0, 0.2)
	s := NewDefaultScene(ambient, background)

	if len(s.Triangles) == 0 || len(s.Lights) == 0 {
		t.Fatalf("Expected default scene with triangles and lights, got %d/%d", len(s.Triangles), len(s.Lights))
	}
	if !vecNear(s.Ambient, ambient) || !vecNear(s.Background, background) {
		t.Errorf("Expected scene to carry the configured ambient/background colors")
	}
	for i, tri := range s.Triangles {
		for _, n := range []core.Vec3{tri.V0.Normal, tri.V1.Normal, tri.V2.Normal} {
			if n.IsZero() {
				t.Errorf("Triangle %d still has a zero normal after preprocessing", i)
			}
		}
	}
}
