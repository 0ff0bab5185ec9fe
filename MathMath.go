package jolt

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

///////////////////////////////////////////////////////////////////////////////
///////////////////////////////////////////////////////////////////////////////
// Math.h / Quat.h / Mat44.h
///////////////////////////////////////////////////////////////////////////////
///////////////////////////////////////////////////////////////////////////////

const FloatEpsilon = 1.192092896e-07

/// Squared distance tolerance used when comparing quaternions.
const cQuatCloseToleranceSq = 1.0e-12

func Square(value float32) float32 {
	return value * value
}

/// Test if two quaternions are equal within tolerance, component wise.
func QuatIsClose(lhs mgl32.Quat, rhs mgl32.Quat) bool {
	distSq := Square(lhs.V[0]-rhs.V[0]) + Square(lhs.V[1]-rhs.V[1]) + Square(lhs.V[2]-rhs.V[2]) + Square(lhs.W-rhs.W)
	return distSq <= cQuatCloseToleranceSq
}

/// Convert a unit quaternion to a 3x3 rotation matrix.
func QuatToMat3(rotation mgl32.Quat) mgl32.Mat3 {
	col0 := rotation.Rotate(mgl32.Vec3{1, 0, 0})
	col1 := rotation.Rotate(mgl32.Vec3{0, 1, 0})
	col2 := rotation.Rotate(mgl32.Vec3{0, 0, 1})
	return mgl32.Mat3{
		col0[0], col0[1], col0[2],
		col1[0], col1[1], col1[2],
		col2[0], col2[1], col2[2],
	}
}

/// Build a 4x4 matrix that rotates by the given quaternion.
func Mat4Rotation(rotation mgl32.Quat) mgl32.Mat4 {
	return rotation.Mat4()
}

/// Build a 4x4 matrix that rotates by the given quaternion and then translates.
func Mat4RotationTranslation(rotation mgl32.Quat, translation mgl32.Vec3) mgl32.Mat4 {
	return mgl32.Translate3D(translation[0], translation[1], translation[2]).Mul4(rotation.Mat4())
}

/// Transform a point by a 4x4 matrix (applies rotation and translation).
func Mat4TransformPoint(transform mgl32.Mat4, point mgl32.Vec3) mgl32.Vec3 {
	return transform.Mul4x1(point.Vec4(1)).Vec3()
}

/// Transform a direction by a 4x4 matrix (rotation only, no translation).
func Mat4TransformDirection(transform mgl32.Mat4, direction mgl32.Vec3) mgl32.Vec3 {
	return transform.Mul4x1(direction.Vec4(0)).Vec3()
}

/// Multiply a direction by the transpose of the upper left 3x3 part of a
/// matrix. For a pure rotation matrix this is the inverse rotation.
func Mat4Multiply3x3Transposed(transform mgl32.Mat4, direction mgl32.Vec3) mgl32.Vec3 {
	return mgl32.Vec3{
		transform.At(0, 0)*direction[0] + transform.At(1, 0)*direction[1] + transform.At(2, 0)*direction[2],
		transform.At(0, 1)*direction[0] + transform.At(1, 1)*direction[1] + transform.At(2, 1)*direction[2],
		transform.At(0, 2)*direction[0] + transform.At(1, 2)*direction[1] + transform.At(2, 2)*direction[2],
	}
}

/// Replace the upper left 3x3 part of a matrix with its transpose, keeping the
/// translation column.
func Mat4Transposed3x3(transform mgl32.Mat4) mgl32.Mat4 {
	result := mgl32.Ident4()
	for row := 0; row < 3; row++ {
		for col := 0; col < 3; col++ {
			result.Set(row, col, transform.At(col, row))
		}
	}
	return result
}

func Mat4GetTranslation(transform mgl32.Mat4) mgl32.Vec3 {
	return transform.Col(3).Vec3()
}

func Vec3Abs(value mgl32.Vec3) mgl32.Vec3 {
	return mgl32.Vec3{math32.Abs(value[0]), math32.Abs(value[1]), math32.Abs(value[2])}
}

func Vec3MulComponents(lhs mgl32.Vec3, rhs mgl32.Vec3) mgl32.Vec3 {
	return mgl32.Vec3{lhs[0] * rhs[0], lhs[1] * rhs[1], lhs[2] * rhs[2]}
}

func Vec3Min(lhs mgl32.Vec3, rhs mgl32.Vec3) mgl32.Vec3 {
	return mgl32.Vec3{math32.Min(lhs[0], rhs[0]), math32.Min(lhs[1], rhs[1]), math32.Min(lhs[2], rhs[2])}
}

func Vec3Max(lhs mgl32.Vec3, rhs mgl32.Vec3) mgl32.Vec3 {
	return mgl32.Vec3{math32.Max(lhs[0], rhs[0]), math32.Max(lhs[1], rhs[1]), math32.Max(lhs[2], rhs[2])}
}
