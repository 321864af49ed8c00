package math

import (
	gomath "math"

	"github.com/chewxy/math32"
)

// Mat4 is a 4x4 matrix in column-major order (OpenGL compatible).
// Layout: [m0 m4 m8  m12]
//
//	[m1 m5 m9  m13]
//	[m2 m6 m10 m14]
//	[m3 m7 m11 m15]
type Mat4 [16]float32

// Identity returns an identity matrix.
func Identity() Mat4 {
	return Mat4{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}

// Perspective returns a perspective projection matrix.
// fovY is in radians, aspect is width/height.
func Perspective(fovY, aspect, near, far float32) Mat4 {
	top := near * math32.Tan(fovY/2)
	right := top * aspect
	return Frustum(-right, right, -top, top, near, far)
}

// Frustum returns an off-axis perspective projection for the given near-plane
// window. Stereo rigs use it to build asymmetric per-eye projections.
func Frustum(left, right, bottom, top, near, far float32) Mat4 {
	x := 2 * near / (right - left)
	y := 2 * near / (top - bottom)
	a := (right + left) / (right - left)
	b := (top + bottom) / (top - bottom)
	c := -(far + near) / (far - near)
	d := -2 * far * near / (far - near)

	return Mat4{
		x, 0, 0, 0,
		0, y, 0, 0,
		a, b, c, -1,
		0, 0, d, 0,
	}
}

// Translate returns a translation matrix.
func Translate(x, y, z float32) Mat4 {
	return Mat4{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		x, y, z, 1,
	}
}

// Scale returns a scale matrix.
func Scale(x, y, z float32) Mat4 {
	return Mat4{
		x, 0, 0, 0,
		0, y, 0, 0,
		0, 0, z, 0,
		0, 0, 0, 1,
	}
}

// RotateAxis creates a rotation matrix around an arbitrary axis.
// axis should be normalized, angle is in radians.
func RotateAxis(axis Vec3, angle float32) Mat4 {
	c := math32.Cos(angle)
	s := math32.Sin(angle)
	t := 1 - c
	x, y, z := axis.X, axis.Y, axis.Z

	return Mat4{
		t*x*x + c, t*x*y + s*z, t*x*z - s*y, 0,
		t*x*y - s*z, t*y*y + c, t*y*z + s*x, 0,
		t*x*z + s*y, t*y*z - s*x, t*z*z + c, 0,
		0, 0, 0, 1,
	}
}

// Compose builds position * rotation * scale.
func Compose(position Vec3, rotation Quat, scale Vec3) Mat4 {
	m := rotation.ToMat4()
	for row := 0; row < 3; row++ {
		m[row] *= scale.X
		m[4+row] *= scale.Y
		m[8+row] *= scale.Z
	}
	m[12], m[13], m[14] = position.X, position.Y, position.Z
	return m
}

// Decompose splits an affine matrix into position, rotation and scale.
// A negative determinant is folded into the X scale.
func (m Mat4) Decompose() (position Vec3, rotation Quat, scale Vec3) {
	sx := Vec3{m[0], m[1], m[2]}.Length()
	sy := Vec3{m[4], m[5], m[6]}.Length()
	sz := Vec3{m[8], m[9], m[10]}.Length()
	if m.det3() < 0 {
		sx = -sx
	}

	position = Vec3{m[12], m[13], m[14]}
	scale = Vec3{sx, sy, sz}

	r := m
	for row := 0; row < 3; row++ {
		if sx != 0 {
			r[row] /= sx
		}
		if sy != 0 {
			r[4+row] /= sy
		}
		if sz != 0 {
			r[8+row] /= sz
		}
	}
	rotation = QuatFromRotation(r)
	return position, rotation, scale
}

func (m Mat4) det3() float32 {
	return m[0]*(m[5]*m[10]-m[9]*m[6]) -
		m[4]*(m[1]*m[10]-m[9]*m[2]) +
		m[8]*(m[1]*m[6]-m[5]*m[2])
}

// Mul multiplies this matrix by another (m * other).
func (m Mat4) Mul(other Mat4) Mat4 {
	var result Mat4
	for col := 0; col < 4; col++ {
		for row := 0; row < 4; row++ {
			result[col*4+row] =
				m[0*4+row]*other[col*4+0] +
					m[1*4+row]*other[col*4+1] +
					m[2*4+row]*other[col*4+2] +
					m[3*4+row]*other[col*4+3]
		}
	}
	return result
}

// TransformPoint transforms a point by this matrix (w=1) with perspective divide.
func (m Mat4) TransformPoint(p Vec3) Vec3 {
	x := m[0]*p.X + m[4]*p.Y + m[8]*p.Z + m[12]
	y := m[1]*p.X + m[5]*p.Y + m[9]*p.Z + m[13]
	z := m[2]*p.X + m[6]*p.Y + m[10]*p.Z + m[14]
	w := m[3]*p.X + m[7]*p.Y + m[11]*p.Z + m[15]
	if w != 0 && w != 1 {
		return Vec3{x / w, y / w, z / w}
	}
	return Vec3{x, y, z}
}

// TransformDirection transforms a direction vector (ignores translation).
func (m Mat4) TransformDirection(d Vec3) Vec3 {
	return Vec3{
		m[0]*d.X + m[4]*d.Y + m[8]*d.Z,
		m[1]*d.X + m[5]*d.Y + m[9]*d.Z,
		m[2]*d.X + m[6]*d.Y + m[10]*d.Z,
	}
}

// Ptr returns a pointer to the first element (for OpenGL uniform calls).
func (m *Mat4) Ptr() *float32 {
	return &m[0]
}

// Vec4 is a 4-component vector.
type Vec4 [4]float32

// MulVec4 multiplies the matrix by a Vec4.
func (m Mat4) MulVec4(v Vec4) Vec4 {
	return Vec4{
		m[0]*v[0] + m[4]*v[1] + m[8]*v[2] + m[12]*v[3],
		m[1]*v[0] + m[5]*v[1] + m[9]*v[2] + m[13]*v[3],
		m[2]*v[0] + m[6]*v[1] + m[10]*v[2] + m[14]*v[3],
		m[3]*v[0] + m[7]*v[1] + m[11]*v[2] + m[15]*v[3],
	}
}

// Inverse returns the inverse of the matrix.
// Returns identity if the matrix is singular.
func (m Mat4) Inverse() Mat4 {
	inv, ok := m.Invert()
	if !ok {
		return Identity()
	}
	return inv
}

// Invert computes the inverse by Gauss-Jordan elimination with partial
// pivoting in float64. ok is false for singular matrices.
func (m Mat4) Invert() (inv Mat4, ok bool) {
	// a[row][0:4] is m, a[row][4:8] starts as identity.
	var a [4][8]float64
	for row := 0; row < 4; row++ {
		for col := 0; col < 4; col++ {
			a[row][col] = float64(m[col*4+row])
		}
		a[row][4+row] = 1
	}

	for col := 0; col < 4; col++ {
		pivot := col
		for row := col + 1; row < 4; row++ {
			if gomath.Abs(a[row][col]) > gomath.Abs(a[pivot][col]) {
				pivot = row
			}
		}
		if a[pivot][col] == 0 {
			return Mat4{}, false
		}
		a[col], a[pivot] = a[pivot], a[col]

		p := a[col][col]
		for k := 0; k < 8; k++ {
			a[col][k] /= p
		}
		for row := 0; row < 4; row++ {
			if row == col || a[row][col] == 0 {
				continue
			}
			f := a[row][col]
			for k := 0; k < 8; k++ {
				a[row][k] -= f * a[col][k]
			}
		}
	}

	for row := 0; row < 4; row++ {
		for col := 0; col < 4; col++ {
			inv[col*4+row] = float32(a[row][4+col])
		}
	}
	return inv, true
}
