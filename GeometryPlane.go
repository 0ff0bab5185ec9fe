package jolt

import (
	"github.com/go-gl/mathgl/mgl32"
)

///////////////////////////////////////////////////////////////////////////////
///////////////////////////////////////////////////////////////////////////////
// Plane.h
///////////////////////////////////////////////////////////////////////////////
///////////////////////////////////////////////////////////////////////////////

/// An infinite plane described by normal and constant: x . Normal + Constant = 0.
/// Points with a negative signed distance are below the plane; the submerged
/// volume queries treat that side as under water.
type Plane struct {
	Normal   mgl32.Vec3
	Constant float32
}

func MakePlane(normal mgl32.Vec3, constant float32) Plane {
	return Plane{Normal: normal, Constant: constant}
}

func MakePlaneFromPointAndNormal(point mgl32.Vec3, normal mgl32.Vec3) Plane {
	return Plane{Normal: normal, Constant: -normal.Dot(point)}
}

func (plane Plane) SignedDistance(point mgl32.Vec3) float32 {
	return plane.Normal.Dot(point) + plane.Constant
}
