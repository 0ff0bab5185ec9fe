package jolt

import (
	"github.com/go-gl/mathgl/mgl32"
)

///////////////////////////////////////////////////////////////////////////////
///////////////////////////////////////////////////////////////////////////////
// ShapeCast.h
///////////////////////////////////////////////////////////////////////////////
///////////////////////////////////////////////////////////////////////////////

/// A swept query: Shape travels from CenterOfMassStart along Direction. Hits
/// are reported as a fraction in [0, 1] along Direction.
type ShapeCast struct {
	/// The moving shape.
	Shape ShapeInterface

	/// Scale applied to the moving shape in its local space.
	Scale mgl32.Vec3

	/// Center of mass transform of the moving shape at the start of the sweep.
	CenterOfMassStart mgl32.Mat4

	/// Sweep direction; its length is the sweep distance.
	Direction mgl32.Vec3
}

func MakeShapeCast(shape ShapeInterface, scale mgl32.Vec3, centerOfMassStart mgl32.Mat4, direction mgl32.Vec3) ShapeCast {
	return ShapeCast{
		Shape:             shape,
		Scale:             scale,
		CenterOfMassStart: centerOfMassStart,
		Direction:         direction,
	}
}

/// Re-express this cast in another frame by pre-multiplying the given
/// transform.
func (cast ShapeCast) PostTransformed(transform mgl32.Mat4) ShapeCast {
	return ShapeCast{
		Shape:             cast.Shape,
		Scale:             cast.Scale,
		CenterOfMassStart: transform.Mul4(cast.CenterOfMassStart),
		Direction:         Mat4TransformDirection(transform, cast.Direction),
	}
}

type ShapeCastSettings struct {
	/// Cast hits with a fraction greater than this are not reported.
	MaxFraction float32
}

func MakeShapeCastSettings() ShapeCastSettings {
	return ShapeCastSettings{MaxFraction: 1.0}
}

/// A single hit of a shape cast.
type ShapeCastResult struct {
	/// Fraction along the sweep at which the shapes first touch.
	Fraction float32

	/// Contact points on both shapes in world space at the time of contact.
	ContactPointOn1 mgl32.Vec3
	ContactPointOn2 mgl32.Vec3

	/// Direction to move shape 2 out of collision, pointing from shape 1 to
	/// shape 2. Not normalized.
	PenetrationAxis mgl32.Vec3

	SubShapeID1 SubShapeID
	SubShapeID2 SubShapeID
}
