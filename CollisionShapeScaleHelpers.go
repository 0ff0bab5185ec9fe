package jolt

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

///////////////////////////////////////////////////////////////////////////////
///////////////////////////////////////////////////////////////////////////////
// ScaleHelpers.h
///////////////////////////////////////////////////////////////////////////////
///////////////////////////////////////////////////////////////////////////////

/// Tolerance for scale component comparisons.
const cScaleEpsilon = 1.0e-6

/// A scale is valid when none of its components is (near) zero; a zero
/// component would collapse the shape.
func ScaleIsValid(scale mgl32.Vec3) bool {
	return math32.Abs(scale[0]) > cScaleEpsilon && math32.Abs(scale[1]) > cScaleEpsilon && math32.Abs(scale[2]) > cScaleEpsilon
}

/// A uniform scale is rotation invariant: applying it before or after a
/// rotation gives the same geometry.
func ScaleIsUniform(scale mgl32.Vec3) bool {
	return math32.Abs(scale[0]-scale[1]) < cScaleEpsilon && math32.Abs(scale[0]-scale[2]) < cScaleEpsilon
}

/// Test if a non-uniform scale can be moved to the other side of a rotation
/// without introducing shear. This requires the rotation to map coordinate
/// axes onto coordinate axes, i.e. its matrix must be a signed permutation.
func ScaleCanBeRotated(rotation mgl32.Quat, scale mgl32.Vec3) bool {
	if ScaleIsUniform(scale) {
		return true
	}

	matrix := QuatToMat3(rotation)
	for row := 0; row < 3; row++ {
		for col := 0; col < 3; col++ {
			element := math32.Abs(matrix.At(row, col))
			if element > cScaleEpsilon && math32.Abs(element-1) > cScaleEpsilon {
				return false
			}
		}
	}
	return true
}

/// Rotate a scale vector by the given rotation. Only meaningful when
/// ScaleCanBeRotated holds for the rotation; the result is the per axis scale
/// in the rotated frame.
func ScaleRotate(rotation mgl32.Quat, scale mgl32.Vec3) mgl32.Vec3 {
	return Vec3Abs(QuatToMat3(rotation).Mul3x1(scale))
}
