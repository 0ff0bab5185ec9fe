package jolt

import (
	"github.com/go-gl/mathgl/mgl32"
)

///////////////////////////////////////////////////////////////////////////////
///////////////////////////////////////////////////////////////////////////////
// RayCast.h / CastResult.h
///////////////////////////////////////////////////////////////////////////////
///////////////////////////////////////////////////////////////////////////////

/// A ray starting at Origin and extending to Origin + Direction. Hits are
/// reported as a fraction in [0, 1] along Direction, so Direction carries the
/// length of the ray.
type RayCast struct {
	Origin    mgl32.Vec3
	Direction mgl32.Vec3
}

func MakeRayCast(origin mgl32.Vec3, direction mgl32.Vec3) RayCast {
	return RayCast{Origin: origin, Direction: direction}
}

/// Transform this ray by a matrix, returning the ray expressed in the new
/// frame. The hit fraction is invariant under this.
func (ray RayCast) Transformed(transform mgl32.Mat4) RayCast {
	return RayCast{
		Origin:    Mat4TransformPoint(transform, ray.Origin),
		Direction: Mat4TransformDirection(transform, ray.Direction),
	}
}

func (ray RayCast) GetPointOnRay(fraction float32) mgl32.Vec3 {
	return ray.Origin.Add(ray.Direction.Mul(fraction))
}

/// Settings for collector style ray casts.
type RayCastSettings struct {
	/// If true, a ray starting inside a convex shape reports a hit at
	/// fraction 0.
	TreatConvexAsSolid bool
}

func MakeRayCastSettings() RayCastSettings {
	return RayCastSettings{TreatConvexAsSolid: true}
}

/// Result of a single hit ray cast. Fraction starts just beyond 1 so that any
/// hit within the ray is an improvement.
type RayCastResult struct {
	Fraction    float32
	SubShapeID2 SubShapeID
}

func MakeRayCastResult() RayCastResult {
	return RayCastResult{Fraction: 1.0 + FloatEpsilon}
}
