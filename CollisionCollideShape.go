package jolt

import (
	"github.com/go-gl/mathgl/mgl32"
)

///////////////////////////////////////////////////////////////////////////////
///////////////////////////////////////////////////////////////////////////////
// CollideShape.h
///////////////////////////////////////////////////////////////////////////////
///////////////////////////////////////////////////////////////////////////////

type CollideShapeSettings struct {
	/// Shapes further apart than this are not reported as colliding.
	MaxSeparationDistance float32
}

func MakeCollideShapeSettings() CollideShapeSettings {
	return CollideShapeSettings{MaxSeparationDistance: 0}
}

/// A single contact between two shapes.
type CollideShapeResult struct {
	/// Deepest contact points on both shapes in world space.
	ContactPointOn1 mgl32.Vec3
	ContactPointOn2 mgl32.Vec3

	/// Direction to move shape 2 out of collision, pointing from shape 1 to
	/// shape 2. Not normalized.
	PenetrationAxis mgl32.Vec3

	/// Distance to move shape 2 along the penetration axis to resolve the
	/// collision. Negative when the shapes are separated but within the max
	/// separation distance.
	PenetrationDepth float32

	SubShapeID1 SubShapeID
	SubShapeID2 SubShapeID
}

/// Swap the roles of shape 1 and shape 2 in a result.
func (result CollideShapeResult) Reversed() CollideShapeResult {
	return CollideShapeResult{
		ContactPointOn1:  result.ContactPointOn2,
		ContactPointOn2:  result.ContactPointOn1,
		PenetrationAxis:  result.PenetrationAxis.Mul(-1),
		PenetrationDepth: result.PenetrationDepth,
		SubShapeID1:      result.SubShapeID2,
		SubShapeID2:      result.SubShapeID1,
	}
}

/// A hit of a point collision query.
type CollidePointResult struct {
	SubShapeID2 SubShapeID
}
