package jolt

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

///////////////////////////////////////////////////////////////////////////////
///////////////////////////////////////////////////////////////////////////////
// CollideSphereVsSphere / CollideSphereVsBox / CastSphereVsSphere
///////////////////////////////////////////////////////////////////////////////
///////////////////////////////////////////////////////////////////////////////

func registerSphereShapeCollision() {
	RegisterCollideShape(ShapeType.E_sphere, ShapeType.E_sphere, CollideSphereVsSphere)
}

func registerBoxShapeCollision() {
	RegisterCollideShape(ShapeType.E_sphere, ShapeType.E_box, CollideSphereVsBox)
	RegisterCollideShape(ShapeType.E_box, ShapeType.E_sphere, CollideBoxVsSphere)
}

func CollideSphereVsSphere(shape1 ShapeInterface, shape2 ShapeInterface, scale1 mgl32.Vec3, scale2 mgl32.Vec3, centerOfMassTransform1 mgl32.Mat4, centerOfMassTransform2 mgl32.Mat4, subShapeIDCreator1 SubShapeIDCreator, subShapeIDCreator2 SubShapeIDCreator, settings CollideShapeSettings, collector CollideShapeCollector) {
	sphere1 := shape1.(*SphereShape)
	sphere2 := shape2.(*SphereShape)

	radius1 := sphere1.getScaledRadius(scale1)
	radius2 := sphere2.getScaledRadius(scale2)
	position1 := Mat4GetTranslation(centerOfMassTransform1)
	position2 := Mat4GetTranslation(centerOfMassTransform2)

	delta := position2.Sub(position1)
	distance := delta.Len()
	if distance > radius1+radius2+settings.MaxSeparationDistance {
		return
	}

	normal := mgl32.Vec3{1, 0, 0}
	if distance > FloatEpsilon {
		normal = delta.Mul(1.0 / distance)
	}

	collector.AddHit(CollideShapeResult{
		ContactPointOn1:  position1.Add(normal.Mul(radius1)),
		ContactPointOn2:  position2.Sub(normal.Mul(radius2)),
		PenetrationAxis:  normal,
		PenetrationDepth: radius1 + radius2 - distance,
		SubShapeID1:      subShapeIDCreator1.GetID(),
		SubShapeID2:      subShapeIDCreator2.GetID(),
	})
}

func CollideSphereVsBox(shape1 ShapeInterface, shape2 ShapeInterface, scale1 mgl32.Vec3, scale2 mgl32.Vec3, centerOfMassTransform1 mgl32.Mat4, centerOfMassTransform2 mgl32.Mat4, subShapeIDCreator1 SubShapeIDCreator, subShapeIDCreator2 SubShapeIDCreator, settings CollideShapeSettings, collector CollideShapeCollector) {
	sphere := shape1.(*SphereShape)
	box := shape2.(*BoxShape)

	radius := sphere.getScaledRadius(scale1)
	halfExtent := box.getScaledHalfExtent(scale2)

	// Sphere center in the box's local space
	sphereCenter := Mat4GetTranslation(centerOfMassTransform1)
	boxCenter := Mat4GetTranslation(centerOfMassTransform2)
	local := Mat4Multiply3x3Transposed(centerOfMassTransform2, sphereCenter.Sub(boxCenter))

	closest := Vec3Min(Vec3Max(local, halfExtent.Mul(-1)), halfExtent)
	delta := local.Sub(closest)
	distance := delta.Len()

	var normalLocal mgl32.Vec3
	var depth float32
	if distance > FloatEpsilon {
		// Sphere center outside the box
		if distance > radius+settings.MaxSeparationDistance {
			return
		}
		normalLocal = delta.Mul(1.0 / distance)
		depth = radius - distance
	} else {
		// Sphere center inside the box: push out through the nearest face
		bestAxis := 0
		bestPenetration := float32(math32.MaxFloat32)
		for axis := 0; axis < 3; axis++ {
			penetration := halfExtent[axis] - math32.Abs(local[axis])
			if penetration < bestPenetration {
				bestPenetration = penetration
				bestAxis = axis
			}
		}
		normalLocal = mgl32.Vec3{}
		if local[bestAxis] >= 0 {
			normalLocal[bestAxis] = 1
			closest[bestAxis] = halfExtent[bestAxis]
		} else {
			normalLocal[bestAxis] = -1
			closest[bestAxis] = -halfExtent[bestAxis]
		}
		depth = radius + bestPenetration
	}

	// normalWorld points from the box towards the sphere center
	normalWorld := Mat4TransformDirection(centerOfMassTransform2, normalLocal)

	collector.AddHit(CollideShapeResult{
		ContactPointOn1:  sphereCenter.Sub(normalWorld.Mul(radius)),
		ContactPointOn2:  Mat4TransformPoint(centerOfMassTransform2, closest),
		PenetrationAxis:  normalWorld.Mul(-1),
		PenetrationDepth: depth,
		SubShapeID1:      subShapeIDCreator1.GetID(),
		SubShapeID2:      subShapeIDCreator2.GetID(),
	})
}

func CollideBoxVsSphere(shape1 ShapeInterface, shape2 ShapeInterface, scale1 mgl32.Vec3, scale2 mgl32.Vec3, centerOfMassTransform1 mgl32.Mat4, centerOfMassTransform2 mgl32.Mat4, subShapeIDCreator1 SubShapeIDCreator, subShapeIDCreator2 SubShapeIDCreator, settings CollideShapeSettings, collector CollideShapeCollector) {
	reversed := &ReversedCollideShapeCollector{Collector: collector}
	CollideSphereVsBox(shape2, shape1, scale2, scale1, centerOfMassTransform2, centerOfMassTransform1, subShapeIDCreator2, subShapeIDCreator1, settings, reversed)
}

func CastSphereVsSphere(shapeCast ShapeCast, settings ShapeCastSettings, shape ShapeInterface, scale mgl32.Vec3, filter ShapeFilter, centerOfMassTransform2 mgl32.Mat4, subShapeIDCreator1 SubShapeIDCreator, subShapeIDCreator2 SubShapeIDCreator, collector CastShapeCollector) {
	sphere1 := shapeCast.Shape.(*SphereShape)
	sphere2 := shape.(*SphereShape)

	if !filter.ShouldCollide(shape, subShapeIDCreator2.GetID()) {
		return
	}

	radius1 := sphere1.getScaledRadius(shapeCast.Scale)
	radius2 := sphere2.getScaledRadius(scale)
	start := Mat4GetTranslation(shapeCast.CenterOfMassStart)
	target := Mat4GetTranslation(centerOfMassTransform2)

	// Sweep reduces to a ray against a sphere of the summed radii
	combinedRadius := radius1 + radius2
	offset := start.Sub(target)

	var fraction float32
	c := offset.Dot(offset) - combinedRadius*combinedRadius
	if c <= 0 {
		fraction = 0
	} else {
		direction := shapeCast.Direction
		a := direction.Dot(direction)
		if a < FloatEpsilon {
			return
		}
		b := 2.0 * offset.Dot(direction)
		discriminant := b*b - 4.0*a*c
		if discriminant < 0 {
			return
		}
		fraction = (-b - math32.Sqrt(discriminant)) / (2.0 * a)
		if fraction < 0 || fraction > settings.MaxFraction {
			return
		}
	}

	position1 := start.Add(shapeCast.Direction.Mul(fraction))
	axis := position1.Sub(target)
	normal := mgl32.Vec3{1, 0, 0}
	if axis.Len() > FloatEpsilon {
		normal = axis.Normalize()
	}

	collector.AddHit(ShapeCastResult{
		Fraction:        fraction,
		ContactPointOn1: position1.Sub(normal.Mul(radius1)),
		ContactPointOn2: target.Add(normal.Mul(radius2)),
		PenetrationAxis: normal.Mul(-1),
		SubShapeID1:     subShapeIDCreator1.GetID(),
		SubShapeID2:     subShapeIDCreator2.GetID(),
	})
}

/// Sweep a sphere against a box by casting a ray against the box expanded by
/// the sphere radius in the box's local space.
func CastSphereVsBox(shapeCast ShapeCast, settings ShapeCastSettings, shape ShapeInterface, scale mgl32.Vec3, filter ShapeFilter, centerOfMassTransform2 mgl32.Mat4, subShapeIDCreator1 SubShapeIDCreator, subShapeIDCreator2 SubShapeIDCreator, collector CastShapeCollector) {
	sphere := shapeCast.Shape.(*SphereShape)
	box := shape.(*BoxShape)

	if !filter.ShouldCollide(shape, subShapeIDCreator2.GetID()) {
		return
	}

	radius := sphere.getScaledRadius(shapeCast.Scale)
	halfExtent := box.getScaledHalfExtent(scale)

	// Sphere path in the box's local space
	boxCenter := Mat4GetTranslation(centerOfMassTransform2)
	localStart := Mat4Multiply3x3Transposed(centerOfMassTransform2, Mat4GetTranslation(shapeCast.CenterOfMassStart).Sub(boxCenter))
	localDirection := Mat4Multiply3x3Transposed(centerOfMassTransform2, shapeCast.Direction)

	expanded := halfExtent.Add(mgl32.Vec3{radius, radius, radius})
	fraction, ok := rayVsBox(MakeRayCast(localStart, localDirection), expanded)
	if !ok || fraction > settings.MaxFraction {
		return
	}

	localAtHit := localStart.Add(localDirection.Mul(fraction))
	closest := Vec3Min(Vec3Max(localAtHit, halfExtent.Mul(-1)), halfExtent)
	delta := localAtHit.Sub(closest)

	normalLocal := mgl32.Vec3{0, 1, 0}
	if delta.Len() > FloatEpsilon {
		normalLocal = delta.Normalize()
	}
	normalWorld := Mat4TransformDirection(centerOfMassTransform2, normalLocal)
	spherePosition := Mat4GetTranslation(shapeCast.CenterOfMassStart).Add(shapeCast.Direction.Mul(fraction))

	collector.AddHit(ShapeCastResult{
		Fraction:        fraction,
		ContactPointOn1: spherePosition.Sub(normalWorld.Mul(radius)),
		ContactPointOn2: Mat4TransformPoint(centerOfMassTransform2, closest),
		PenetrationAxis: normalWorld.Mul(-1),
		SubShapeID1:     subShapeIDCreator1.GetID(),
		SubShapeID2:     subShapeIDCreator2.GetID(),
	})
}
