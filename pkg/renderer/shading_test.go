package renderer

import (
	"testing"

	"github.com/meshtrace/meshtrace/pkg/core"
	"github.com/meshtrace/meshtrace/pkg/scene"
)

// surfaceTriangle is a large triangle in the z=0 plane, red, with
// normals left zero so preprocessing repairs them to the +Z face
// normal.
func surfaceTriangle() scene.Triangle {
	red := core.NewVec3(1, 0, 0)
	return scene.NewTriangle(
		scene.Vertex{Position: core.NewVec3(-2, -2, 0), Color: red},
		scene.Vertex{Position: core.NewVec3(2, -2, 0), Color: red},
		scene.Vertex{Position: core.NewVec3(0, 2, 0), Color: red},
	)
}

// hitSurface returns the primary-ray hit on the surface triangle,
// looking straight down from the eye point.
func hitSurface(t *testing.T, s *scene.Scene, eye core.Vec3) HitRecord {
	t.Helper()
	ray := core.NewRay(eye, core.NewVec3(0, 0, 0).Subtract(eye).Normalize())
	hit, ok := NearestHit(s, ray)
	if !ok {
		t.Fatal("Expected the primary ray to hit the surface")
	}
	return hit
}

func TestShade_AmbientOnly(t *testing.T) {
	ambient := core.NewVec3(0.25, 0.5, 0.75)
	s := scene.NewScene([]scene.Triangle{surfaceTriangle()}, nil, ambient, core.Vec3{})
	eye := core.NewVec3(0, 0, 5)

	hit := hitSurface(t, s, eye)
	color := Shade(s, hit, eye, 32)

	// No lights: the result is exactly material ⊙ ambient
	expected := hit.Color.MultiplyVec(ambient)
	if color.Subtract(expected).Length() > tolerance {
		t.Errorf("Expected ambient-only color %v, got %v", expected, color)
	}
}

func TestShade_DiffuseAndSpecular(t *testing.T) {
	s := scene.NewScene(
		[]scene.Triangle{surfaceTriangle()},
		[]scene.Light{scene.NewLight(core.NewVec3(0, 0, 3), core.NewVec3(0.3, 0.3, 0.3))},
		core.Vec3{}, core.Vec3{},
	)
	eye := core.NewVec3(0, 0, 5)

	hit := hitSurface(t, s, eye)
	color := Shade(s, hit, eye, 32)

	// Light straight above, eye straight above: diffuse factor 1 and
	// perfect specular alignment. Diffuse = (1,0,0)⊙(0.3,0.3,0.3),
	// specular = (0.3,0.3,0.3).
	expected := core.NewVec3(0.6, 0.3, 0.3)
	if color.Subtract(expected).Length() > 1e-9 {
		t.Errorf("Expected %v, got %v", expected, color)
	}
}

func TestShade_OccludedLightContributesNothing(t *testing.T) {
	ambient := core.NewVec3(0.1, 0.1, 0.1)
	light := scene.NewLight(core.NewVec3(0, 3, 3), core.NewVec3(1, 1, 1))

	// A small occluder sits on the segment from the surface hit point
	// to the light, out of the primary ray's way.
	occluder := scene.NewTriangle(
		scene.Vertex{Position: core.NewVec3(-0.5, 1, 1.5), Color: core.NewVec3(0, 0, 1)},
		scene.Vertex{Position: core.NewVec3(0.5, 1, 1.5), Color: core.NewVec3(0, 0, 1)},
		scene.Vertex{Position: core.NewVec3(0, 2, 1.5), Color: core.NewVec3(0, 0, 1)},
	)

	occludedScene := scene.NewScene([]scene.Triangle{surfaceTriangle(), occluder}, []scene.Light{light}, ambient, core.Vec3{})
	openScene := scene.NewScene([]scene.Triangle{surfaceTriangle()}, []scene.Light{light}, ambient, core.Vec3{})
	eye := core.NewVec3(0, 0, 5)

	occludedColor := Shade(occludedScene, hitSurface(t, occludedScene, eye), eye, 32)
	openColor := Shade(openScene, hitSurface(t, openScene, eye), eye, 32)

	// Fully occluded: exactly the ambient term, nothing more
	expected := core.NewVec3(1, 0, 0).MultiplyVec(ambient)
	if occludedColor.Subtract(expected).Length() > tolerance {
		t.Errorf("Expected occluded color %v (ambient only), got %v", expected, occludedColor)
	}

	// Sanity: without the occluder the same light does contribute
	if openColor.Subtract(occludedColor).Length() < tolerance {
		t.Error("Expected the unoccluded light to brighten the surface")
	}
}

func TestShade_ClampsToUnitRange(t *testing.T) {
	bright := scene.NewLight(core.NewVec3(0, 0, 3), core.NewVec3(10, 10, 10))
	s := scene.NewScene([]scene.Triangle{surfaceTriangle()}, []scene.Light{bright}, core.NewVec3(1, 1, 1), core.Vec3{})
	eye := core.NewVec3(0, 0, 5)

	color := Shade(s, hitSurface(t, s, eye), eye, 32)
	if color.X > 1 || color.Y > 1 || color.Z > 1 || color.X < 0 || color.Y < 0 || color.Z < 0 {
		t.Errorf("Expected channels clamped to [0,1], got %v", color)
	}
}

func TestShade_NoSelfShadowing(t *testing.T) {
	// A single lit triangle must not occlude its own shadow rays
	light := scene.NewLight(core.NewVec3(0, 0, 3), core.NewVec3(0.5, 0.5, 0.5))
	s := scene.NewScene([]scene.Triangle{surfaceTriangle()}, []scene.Light{light}, core.Vec3{}, core.Vec3{})
	eye := core.NewVec3(0, 0, 5)

	color := Shade(s, hitSurface(t, s, eye), eye, 32)
	if color.Length() < tolerance {
		t.Error("Expected a lit surface, got black (spurious self-shadowing)")
	}
}
