package renderer

import (
	"math"

	"github.com/meshtrace/meshtrace/pkg/core"
	"github.com/meshtrace/meshtrace/pkg/scene"
)

// baryEpsilon is the tolerance band on the barycentric weight sum.
// The area-ratio method below yields unsigned magnitudes, so points
// outside the triangle show up as a weight sum away from 1 rather
// than as a negative weight.
const baryEpsilon = 1e-8

// HitRecord is the transient result of an intersection query.
type HitRecord struct {
	T        float64        // ray parameter, always > 0
	Point    core.Vec3      // intersection point
	Bary     [3]float64     // barycentric weights, sum within baryEpsilon of 1
	Normal   core.Vec3      // interpolated shading normal, faces the ray origin
	Color    core.Vec3      // interpolated vertex color
	Triangle *scene.Triangle
}

// IntersectTriangle tests a ray against a single triangle. The hit
// carries the barycentric blend of the vertex normals (flipped toward
// the ray origin for two-sided shading) and of the vertex colors.
func IntersectTriangle(ray core.Ray, tri *scene.Triangle) (HitRecord, bool) {
	p0, p1, p2 := tri.V0.Position, tri.V1.Position, tri.V2.Position

	// Plane normal via two edge vectors. Its length is twice the
	// triangle's area, which the barycentric ratios below divide out.
	n := p1.Subtract(p0).Cross(p2.Subtract(p0))
	area2 := n.LengthSquared()

	denom := ray.Direction.Dot(n)
	if denom == 0 {
		return HitRecord{}, false // ray parallel to the plane
	}

	t := p0.Subtract(ray.Origin).Dot(n) / denom
	if t <= 0 {
		return HitRecord{}, false // behind or at the ray origin
	}

	p := ray.At(t)

	// Unsigned barycentric weights from sub-triangle areas: each
	// weight is sqrt(subArea² / totalArea²). A point outside the
	// triangle makes the weights sum to more than 1.
	b0 := math.Sqrt(p1.Subtract(p).Cross(p2.Subtract(p)).LengthSquared() / area2)
	b1 := math.Sqrt(p2.Subtract(p).Cross(p0.Subtract(p)).LengthSquared() / area2)
	b2 := math.Sqrt(p0.Subtract(p).Cross(p1.Subtract(p)).LengthSquared() / area2)
	if sum := b0 + b1 + b2; sum < 1-baryEpsilon || sum > 1+baryEpsilon {
		return HitRecord{}, false
	}

	normal := tri.V0.Normal.Multiply(b0).
		Add(tri.V1.Normal.Multiply(b1)).
		Add(tri.V2.Normal.Multiply(b2))
	if normal.Dot(ray.Direction) > 0 {
		normal = normal.Negate() // face the ray origin regardless of winding
	}

	color := tri.V0.Color.Multiply(b0).
		Add(tri.V1.Color.Multiply(b1)).
		Add(tri.V2.Color.Multiply(b2))

	return HitRecord{
		T:        t,
		Point:    p,
		Bary:     [3]float64{b0, b1, b2},
		Normal:   normal,
		Color:    color,
		Triangle: tri,
	}, true
}

// NearestHit scans the full triangle sequence and returns the hit
// with the smallest positive t. Ties go to the earlier triangle in
// input order, so results are deterministic across runs.
func NearestHit(s *scene.Scene, ray core.Ray) (HitRecord, bool) {
	var nearest HitRecord
	found := false
	for i := range s.Triangles {
		if hit, ok := IntersectTriangle(ray, &s.Triangles[i]); ok {
			if !found || hit.T < nearest.T {
				nearest = hit
				found = true
			}
		}
	}
	return nearest, found
}
