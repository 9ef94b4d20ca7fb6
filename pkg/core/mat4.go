package core

import "math"

// Mat4 represents a 4x4 affine transform in row-major order.
type Mat4 struct {
	M [4][4]float64
}

// Identity returns the identity transform
func Identity() Mat4 {
	var m Mat4
	for i := 0; i < 4; i++ {
		m.M[i][i] = 1
	}
	return m
}

// Translate returns a translation transform
func Translate(offset Vec3) Mat4 {
	m := Identity()
	m.M[0][3] = offset.X
	m.M[1][3] = offset.Y
	m.M[2][3] = offset.Z
	return m
}

// Scale returns a per-axis scaling transform
func Scale(factors Vec3) Mat4 {
	var m Mat4
	m.M[0][0] = factors.X
	m.M[1][1] = factors.Y
	m.M[2][2] = factors.Z
	m.M[3][3] = 1
	return m
}

// RotateX returns a rotation about the X axis by the given angle in radians
func RotateX(angle float64) Mat4 {
	s, c := math.Sincos(angle)
	m := Identity()
	m.M[1][1] = c
	m.M[1][2] = -s
	m.M[2][1] = s
	m.M[2][2] = c
	return m
}

// RotateY returns a rotation about the Y axis by the given angle in radians
func RotateY(angle float64) Mat4 {
	s, c := math.Sincos(angle)
	m := Identity()
	m.M[0][0] = c
	m.M[0][2] = s
	m.M[2][0] = -s
	m.M[2][2] = c
	return m
}

// RotateZ returns a rotation about the Z axis by the given angle in radians
func RotateZ(angle float64) Mat4 {
	s, c := math.Sincos(angle)
	m := Identity()
	m.M[0][0] = c
	m.M[0][1] = -s
	m.M[1][0] = s
	m.M[1][1] = c
	return m
}

// Mul returns the matrix product m * other
func (m Mat4) Mul(other Mat4) Mat4 {
	var out Mat4
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			sum := 0.0
			for k := 0; k < 4; k++ {
				sum += m.M[i][k] * other.M[k][j]
			}
			out.M[i][j] = sum
		}
	}
	return out
}

// TransformPoint applies the full affine transform to a point
func (m Mat4) TransformPoint(p Vec3) Vec3 {
	return Vec3{
		X: m.M[0][0]*p.X + m.M[0][1]*p.Y + m.M[0][2]*p.Z + m.M[0][3],
		Y: m.M[1][0]*p.X + m.M[1][1]*p.Y + m.M[1][2]*p.Z + m.M[1][3],
		Z: m.M[2][0]*p.X + m.M[2][1]*p.Y + m.M[2][2]*p.Z + m.M[2][3],
	}
}

// TransformDirection applies only the linear part of the transform,
// ignoring translation. Used for normals and directions.
func (m Mat4) TransformDirection(d Vec3) Vec3 {
	return Vec3{
		X: m.M[0][0]*d.X + m.M[0][1]*d.Y + m.M[0][2]*d.Z,
		Y: m.M[1][0]*d.X + m.M[1][1]*d.Y + m.M[1][2]*d.Z,
		Z: m.M[2][0]*d.X + m.M[2][1]*d.Y + m.M[2][2]*d.Z,
	}
}
