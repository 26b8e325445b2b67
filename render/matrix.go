package render

import (
	"math"

	"github.com/arloliu/moebius/numeric"
)

// mat3 is a 3×3 rotation matrix in row-major order.
type mat3 [3][3]float64

// rotationX returns the rotation matrix about the x axis by deg degrees.
func rotationX(deg float64) mat3 {
	rad := deg * math.Pi / 180
	sin, cos := math.Sin(rad), math.Cos(rad)

	return mat3{
		{1, 0, 0},
		{0, cos, -sin},
		{0, sin, cos},
	}
}

// rotationZ returns the rotation matrix about the z axis by deg degrees.
func rotationZ(deg float64) mat3 {
	rad := deg * math.Pi / 180
	sin, cos := math.Sin(rad), math.Cos(rad)

	return mat3{
		{cos, -sin, 0},
		{sin, cos, 0},
		{0, 0, 1},
	}
}

// mul returns the matrix product m·o.
func (m mat3) mul(o mat3) mat3 {
	var result mat3
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			sum := 0.0
			for k := 0; k < 3; k++ {
				sum += m[i][k] * o[k][j]
			}
			result[i][j] = sum
		}
	}

	return result
}

// apply rotates v by m.
func (m mat3) apply(v numeric.Vec3) numeric.Vec3 {
	return numeric.Vec3{
		X: m[0][0]*v.X + m[0][1]*v.Y + m[0][2]*v.Z,
		Y: m[1][0]*v.X + m[1][1]*v.Y + m[1][2]*v.Z,
		Z: m[2][0]*v.X + m[2][1]*v.Y + m[2][2]*v.Z,
	}
}

// viewMatrix builds the rotation that orients the scene for the given
// elevation and azimuth: azimuth spins the scene around z, elevation then
// tilts it toward the viewer. At elevation 90 the view is straight down the
// z axis.
func viewMatrix(elevation, azimuth float64) mat3 {
	return rotationX(elevation - 90).mul(rotationZ(-azimuth))
}
