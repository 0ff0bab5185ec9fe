package jolt

import (
	"github.com/go-gl/mathgl/mgl32"
)

///////////////////////////////////////////////////////////////////////////////
///////////////////////////////////////////////////////////////////////////////
// TransformedShape.h
///////////////////////////////////////////////////////////////////////////////
///////////////////////////////////////////////////////////////////////////////

/// A shape placed in world space: the handle returned when resolving a sub
/// shape id or flattening a shape graph.
type TransformedShape struct {
	/// World position of the shape's center of mass.
	ShapePositionCOM mgl32.Vec3

	/// World rotation of the shape.
	ShapeRotation mgl32.Quat

	Shape ShapeInterface

	/// Scale applied in the shape's local space.
	ShapeScale mgl32.Vec3
}

func MakeTransformedShape(positionCOM mgl32.Vec3, rotation mgl32.Quat, shape ShapeInterface) TransformedShape {
	return TransformedShape{
		ShapePositionCOM: positionCOM,
		ShapeRotation:    rotation,
		Shape:            shape,
		ShapeScale:       mgl32.Vec3{1, 1, 1},
	}
}

func (ts *TransformedShape) SetShapeScale(scale mgl32.Vec3) {
	ts.ShapeScale = scale
}

func (ts *TransformedShape) GetShapeScale() mgl32.Vec3 {
	return ts.ShapeScale
}

func (ts *TransformedShape) GetCenterOfMassTransform() mgl32.Mat4 {
	return Mat4RotationTranslation(ts.ShapeRotation, ts.ShapePositionCOM)
}

func (ts *TransformedShape) GetWorldSpaceBounds() AABox {
	if ts.Shape == nil {
		return MakeEmptyAABox()
	}
	return ts.Shape.GetWorldSpaceBounds(ts.GetCenterOfMassTransform(), ts.ShapeScale)
}

/// Cast a world space ray against the placed shape, keeping the closest hit.
func (ts *TransformedShape) CastRay(ray RayCast, hit *RayCastResult) bool {
	if ts.Shape == nil {
		return false
	}
	localRay := ray.Transformed(ts.GetCenterOfMassTransform().Inv())
	return ts.Shape.CastRay(localRay, MakeSubShapeIDCreator(), hit)
}
