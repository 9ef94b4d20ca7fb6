package renderer

import (
	"math"

	"github.com/meshtrace/meshtrace/pkg/core"
	"github.com/meshtrace/meshtrace/pkg/scene"
)

// shadowBias offsets shadow-ray origins along the shading normal so a
// surface does not spuriously occlude itself.
const shadowBias = 1e-4

// Shade evaluates the local Phong illumination of a hit point:
// ambient plus, for every unoccluded light, a Lambertian diffuse term
// and a specular term. Channels are clamped to [0,1] at the end.
// Callers only invoke it with a valid hit; it has no failure mode.
func Shade(s *scene.Scene, hit HitRecord, eye core.Vec3, specularExponent float64) core.Vec3 {
	color := hit.Color.MultiplyVec(s.Ambient)

	// The interpolated shading normal is a blend of unit normals and
	// is near-unit but not exactly; the diffuse term divides by its
	// length, the reflection uses the normalized copy.
	normal := hit.Normal
	unitNormal := normal.Normalize()

	shadowOrigin := hit.Point.Add(unitNormal.Multiply(shadowBias))
	eyeDir := eye.Subtract(hit.Point).Normalize()

	for _, light := range s.Lights {
		toLight := light.Position.Subtract(hit.Point)

		// Hard shadows: any hit on the shadow ray fully occludes.
		if _, occluded := NearestHit(s, core.NewRay(shadowOrigin, toLight)); occluded {
			continue
		}

		lightDir := toLight.Normalize()
		diffuse := math.Max(0, normal.Dot(lightDir)) / normal.Length()
		color = color.Add(hit.Color.MultiplyVec(light.Color).Multiply(diffuse))

		reflectDir := unitNormal.Multiply(2 * lightDir.Dot(unitNormal)).Subtract(lightDir)
		specular := math.Pow(math.Max(0, reflectDir.Dot(eyeDir)), specularExponent)
		color = color.Add(light.Color.Multiply(specular))
	}

	return color.Clamp(0, 1)
}
