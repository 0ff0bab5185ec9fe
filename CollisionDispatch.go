package jolt

import (
	"sync"

	"github.com/go-gl/mathgl/mgl32"
)

///////////////////////////////////////////////////////////////////////////////
///////////////////////////////////////////////////////////////////////////////
// CollisionDispatch.h
///////////////////////////////////////////////////////////////////////////////
///////////////////////////////////////////////////////////////////////////////

/// Pairwise shape collision is resolved through a table keyed by the two
/// shape types, so leaf vs leaf routines stay orthogonal to decoration:
/// decorator shapes register handlers that unwrap their side and re-enter the
/// dispatch, recursing until both operands are leaves. This keeps the number
/// of handlers linear in the number of shape types.

type CollideShapeFunc func(shape1 ShapeInterface, shape2 ShapeInterface, scale1 mgl32.Vec3, scale2 mgl32.Vec3, centerOfMassTransform1 mgl32.Mat4, centerOfMassTransform2 mgl32.Mat4, subShapeIDCreator1 SubShapeIDCreator, subShapeIDCreator2 SubShapeIDCreator, settings CollideShapeSettings, collector CollideShapeCollector)

type CastShapeFunc func(shapeCast ShapeCast, settings ShapeCastSettings, shape ShapeInterface, scale mgl32.Vec3, filter ShapeFilter, centerOfMassTransform2 mgl32.Mat4, subShapeIDCreator1 SubShapeIDCreator, subShapeIDCreator2 SubShapeIDCreator, collector CastShapeCollector)

var sCollideShapeFunctions [3][3]CollideShapeFunc

/// Cast handlers are keyed by the type of the moving shape only; a decorated
/// target is handled by the target's own CastShape method.
var sCastShapeFunctions [3]CastShapeFunc

var sDispatchInitOnce sync.Once

func initializeCollisionDispatch() {
	registerSphereShapeCollision()
	registerBoxShapeCollision()
	registerRotatedTranslatedShapeCollision()
}

func RegisterCollideShape(type1 uint8, type2 uint8, function CollideShapeFunc) {
	Assert(type1 < ShapeType.E_typeCount && type2 < ShapeType.E_typeCount)
	sCollideShapeFunctions[type1][type2] = function
}

func RegisterCastShape(movingType uint8, function CastShapeFunc) {
	Assert(movingType < ShapeType.E_typeCount)
	sCastShapeFunctions[movingType] = function
}

/// Collide a pair of placed shapes and pass contacts to the collector. Pairs
/// for which no handler is registered produce no hits.
func CollideShapeVsShape(shape1 ShapeInterface, shape2 ShapeInterface, scale1 mgl32.Vec3, scale2 mgl32.Vec3, centerOfMassTransform1 mgl32.Mat4, centerOfMassTransform2 mgl32.Mat4, subShapeIDCreator1 SubShapeIDCreator, subShapeIDCreator2 SubShapeIDCreator, settings CollideShapeSettings, collector CollideShapeCollector) {
	sDispatchInitOnce.Do(initializeCollisionDispatch)

	function := sCollideShapeFunctions[shape1.GetType()][shape2.GetType()]
	if function == nil {
		return
	}
	function(shape1, shape2, scale1, scale2, centerOfMassTransform1, centerOfMassTransform2, subShapeIDCreator1, subShapeIDCreator2, settings, collector)
}

/// Cast a moving shape against a placed shape. When the moving shape is a
/// decorator its registered handler unwraps it first; this breaks the
/// recursion that a decorated-vs-decorated pairing would otherwise cause.
/// Otherwise the cast is dispatched to the target shape, which unwraps its
/// own decoration.
func CastShapeVsShape(shapeCast ShapeCast, settings ShapeCastSettings, shape ShapeInterface, scale mgl32.Vec3, filter ShapeFilter, centerOfMassTransform2 mgl32.Mat4, subShapeIDCreator1 SubShapeIDCreator, subShapeIDCreator2 SubShapeIDCreator, collector CastShapeCollector) {
	sDispatchInitOnce.Do(initializeCollisionDispatch)

	if function := sCastShapeFunctions[shapeCast.Shape.GetType()]; function != nil {
		function(shapeCast, settings, shape, scale, filter, centerOfMassTransform2, subShapeIDCreator1, subShapeIDCreator2, collector)
		return
	}
	shape.CastShape(shapeCast, settings, scale, filter, centerOfMassTransform2, subShapeIDCreator1, subShapeIDCreator2, collector)
}
