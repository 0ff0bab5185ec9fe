package jolt_test

import (
	"testing"

	jolt "github.com/PappaNiels/JoltPhysics"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func translation(position mgl32.Vec3) mgl32.Mat4 {
	return mgl32.Translate3D(position.X(), position.Y(), position.Z())
}

var unitScale = mgl32.Vec3{1, 1, 1}

func TestCollideSphereVsSphere(t *testing.T) {
	sphere1 := jolt.NewSphereShape(1.0)
	sphere2 := jolt.NewSphereShape(1.0)

	collector := &jolt.AllHitCollideShapeCollector{}
	jolt.CollideShapeVsShape(sphere1, sphere2, unitScale, unitScale,
		mgl32.Ident4(), translation(mgl32.Vec3{1.5, 0, 0}),
		jolt.MakeSubShapeIDCreator(), jolt.MakeSubShapeIDCreator(),
		jolt.MakeCollideShapeSettings(), collector)

	require.Len(t, collector.Hits, 1)
	assert.InDelta(t, 0.5, collector.Hits[0].PenetrationDepth, 1.0e-5)

	// Separated spheres report nothing
	collector = &jolt.AllHitCollideShapeCollector{}
	jolt.CollideShapeVsShape(sphere1, sphere2, unitScale, unitScale,
		mgl32.Ident4(), translation(mgl32.Vec3{3, 0, 0}),
		jolt.MakeSubShapeIDCreator(), jolt.MakeSubShapeIDCreator(),
		jolt.MakeCollideShapeSettings(), collector)
	assert.Empty(t, collector.Hits)
}

func TestCollideSphereVsSphereMaxSeparationDistance(t *testing.T) {
	sphere1 := jolt.NewSphereShape(1.0)
	sphere2 := jolt.NewSphereShape(1.0)

	settings := jolt.MakeCollideShapeSettings()
	settings.MaxSeparationDistance = 1.5

	collector := &jolt.AllHitCollideShapeCollector{}
	jolt.CollideShapeVsShape(sphere1, sphere2, unitScale, unitScale,
		mgl32.Ident4(), translation(mgl32.Vec3{3, 0, 0}),
		jolt.MakeSubShapeIDCreator(), jolt.MakeSubShapeIDCreator(),
		settings, collector)

	require.Len(t, collector.Hits, 1)
	assert.InDelta(t, -1.0, collector.Hits[0].PenetrationDepth, 1.0e-5)
}

func TestCollideSphereVsBox(t *testing.T) {
	sphere := jolt.NewSphereShape(1.0)
	box := jolt.NewBoxShape(mgl32.Vec3{1, 1, 1})

	collector := &jolt.AllHitCollideShapeCollector{}
	jolt.CollideShapeVsShape(sphere, box, unitScale, unitScale,
		translation(mgl32.Vec3{1.5, 0, 0}), mgl32.Ident4(),
		jolt.MakeSubShapeIDCreator(), jolt.MakeSubShapeIDCreator(),
		jolt.MakeCollideShapeSettings(), collector)

	require.Len(t, collector.Hits, 1)
	hit := collector.Hits[0]
	assert.InDelta(t, 0.5, hit.PenetrationDepth, 1.0e-5)
	assertVec3InDelta(t, mgl32.Vec3{1, 0, 0}, hit.ContactPointOn2, 1.0e-5)
}

func TestCollideBoxVsSphereIsReversed(t *testing.T) {
	sphere := jolt.NewSphereShape(1.0)
	box := jolt.NewBoxShape(mgl32.Vec3{1, 1, 1})

	forward := &jolt.AllHitCollideShapeCollector{}
	jolt.CollideShapeVsShape(sphere, box, unitScale, unitScale,
		translation(mgl32.Vec3{1.5, 0, 0}), mgl32.Ident4(),
		jolt.MakeSubShapeIDCreator(), jolt.MakeSubShapeIDCreator(),
		jolt.MakeCollideShapeSettings(), forward)

	backward := &jolt.AllHitCollideShapeCollector{}
	jolt.CollideShapeVsShape(box, sphere, unitScale, unitScale,
		mgl32.Ident4(), translation(mgl32.Vec3{1.5, 0, 0}),
		jolt.MakeSubShapeIDCreator(), jolt.MakeSubShapeIDCreator(),
		jolt.MakeCollideShapeSettings(), backward)

	require.Len(t, forward.Hits, 1)
	require.Len(t, backward.Hits, 1)
	assert.InDelta(t, forward.Hits[0].PenetrationDepth, backward.Hits[0].PenetrationDepth, 1.0e-5)
	assertVec3InDelta(t, forward.Hits[0].ContactPointOn1, backward.Hits[0].ContactPointOn2, 1.0e-5)
	assertVec3InDelta(t, forward.Hits[0].PenetrationAxis.Mul(-1), backward.Hits[0].PenetrationAxis, 1.0e-5)
}

func TestCollideDecoratedVsSphere(t *testing.T) {
	// A sphere decorated with a translation, placed so the decorated
	// geometry overlaps the plain sphere
	decorated := jolt.NewRotatedTranslatedShape(mgl32.Vec3{1.5, 0, 0}, mgl32.QuatIdent(), jolt.NewSphereShape(1.0))
	sphere := jolt.NewSphereShape(1.0)

	collector := &jolt.AllHitCollideShapeCollector{}
	jolt.CollideShapeVsShape(sphere, decorated, unitScale, unitScale,
		mgl32.Ident4(), translation(decorated.GetCenterOfMass()),
		jolt.MakeSubShapeIDCreator(), jolt.MakeSubShapeIDCreator(),
		jolt.MakeCollideShapeSettings(), collector)

	require.Len(t, collector.Hits, 1)
	assert.InDelta(t, 0.5, collector.Hits[0].PenetrationDepth, 1.0e-5)
}

func TestCollideDecoratedVsDecorated(t *testing.T) {
	a := jolt.NewRotatedTranslatedShape(mgl32.Vec3{}, rotZ90(), jolt.NewBoxShape(mgl32.Vec3{2, 1, 1}))
	b := jolt.NewRotatedTranslatedShape(mgl32.Vec3{}, mgl32.QuatIdent(), jolt.NewSphereShape(1.0))

	// The rotated box reaches y = 2; the sphere at y = 2.5 dips into it
	collector := &jolt.AllHitCollideShapeCollector{}
	jolt.CollideShapeVsShape(b, a, unitScale, unitScale,
		translation(mgl32.Vec3{0, 2.5, 0}), mgl32.Ident4(),
		jolt.MakeSubShapeIDCreator(), jolt.MakeSubShapeIDCreator(),
		jolt.MakeCollideShapeSettings(), collector)

	require.Len(t, collector.Hits, 1)
	assert.InDelta(t, 0.5, collector.Hits[0].PenetrationDepth, 1.0e-5)
}

func TestCastSphereVsSphere(t *testing.T) {
	moving := jolt.NewSphereShape(1.0)
	target := jolt.NewSphereShape(1.0)

	cast := jolt.MakeShapeCast(moving, unitScale, translation(mgl32.Vec3{-5, 0, 0}), mgl32.Vec3{10, 0, 0})

	collector := &jolt.ClosestHitCastShapeCollector{}
	jolt.CastShapeVsShape(cast, jolt.MakeShapeCastSettings(), target, unitScale, jolt.ShapeFilterAll{},
		mgl32.Ident4(), jolt.MakeSubShapeIDCreator(), jolt.MakeSubShapeIDCreator(), collector)

	// Contact when the centers are 2 apart, at x = -2
	require.True(t, collector.HadHit)
	assert.InDelta(t, 0.3, collector.Hit.Fraction, 1.0e-5)
}

func TestCastSphereVsBox(t *testing.T) {
	moving := jolt.NewSphereShape(1.0)
	target := jolt.NewBoxShape(mgl32.Vec3{1, 1, 1})

	cast := jolt.MakeShapeCast(moving, unitScale, translation(mgl32.Vec3{-5, 0, 0}), mgl32.Vec3{10, 0, 0})

	collector := &jolt.ClosestHitCastShapeCollector{}
	jolt.CastShapeVsShape(cast, jolt.MakeShapeCastSettings(), target, unitScale, jolt.ShapeFilterAll{},
		mgl32.Ident4(), jolt.MakeSubShapeIDCreator(), jolt.MakeSubShapeIDCreator(), collector)

	// The box face is at x = -1, expanded by the sphere radius to -2
	require.True(t, collector.HadHit)
	assert.InDelta(t, 0.3, collector.Hit.Fraction, 1.0e-5)
	assertVec3InDelta(t, mgl32.Vec3{-1, 0, 0}, collector.Hit.ContactPointOn2, 1.0e-4)
}

func TestCastSphereVsDecoratedBox(t *testing.T) {
	moving := jolt.NewSphereShape(1.0)
	target := jolt.NewRotatedTranslatedShape(mgl32.Vec3{}, rotZ90(), jolt.NewBoxShape(mgl32.Vec3{2, 1, 1}))

	cast := jolt.MakeShapeCast(moving, unitScale, translation(mgl32.Vec3{-5, 0, 0}), mgl32.Vec3{10, 0, 0})

	collector := &jolt.ClosestHitCastShapeCollector{}
	jolt.CastShapeVsShape(cast, jolt.MakeShapeCastSettings(), target, unitScale, jolt.ShapeFilterAll{},
		mgl32.Ident4(), jolt.MakeSubShapeIDCreator(), jolt.MakeSubShapeIDCreator(), collector)

	// After the rotation the box reaches x = 1; with the sphere radius the
	// contact is at x = -2
	require.True(t, collector.HadHit)
	assert.InDelta(t, 0.3, collector.Hit.Fraction, 1.0e-5)
}

func TestCastDecoratedSphereVsDecoratedSphere(t *testing.T) {
	moving := jolt.NewRotatedTranslatedShape(mgl32.Vec3{}, rotZ90(), jolt.NewSphereShape(1.0))
	target := jolt.NewRotatedTranslatedShape(mgl32.Vec3{}, mgl32.QuatIdent(), jolt.NewSphereShape(1.0))

	cast := jolt.MakeShapeCast(moving, unitScale, translation(mgl32.Vec3{-5, 0, 0}), mgl32.Vec3{10, 0, 0})

	collector := &jolt.ClosestHitCastShapeCollector{}
	jolt.CastShapeVsShape(cast, jolt.MakeShapeCastSettings(), target, unitScale, jolt.ShapeFilterAll{},
		mgl32.Ident4(), jolt.MakeSubShapeIDCreator(), jolt.MakeSubShapeIDCreator(), collector)

	require.True(t, collector.HadHit)
	assert.InDelta(t, 0.3, collector.Hit.Fraction, 1.0e-5)
}

func TestCastShapeRespectsMaxFraction(t *testing.T) {
	moving := jolt.NewSphereShape(1.0)
	target := jolt.NewSphereShape(1.0)

	cast := jolt.MakeShapeCast(moving, unitScale, translation(mgl32.Vec3{-5, 0, 0}), mgl32.Vec3{10, 0, 0})
	settings := jolt.MakeShapeCastSettings()
	settings.MaxFraction = 0.1

	collector := &jolt.ClosestHitCastShapeCollector{}
	jolt.CastShapeVsShape(cast, settings, target, unitScale, jolt.ShapeFilterAll{},
		mgl32.Ident4(), jolt.MakeSubShapeIDCreator(), jolt.MakeSubShapeIDCreator(), collector)
	assert.False(t, collector.HadHit)
}

type rejectAllShapeFilter struct{}

func (rejectAllShapeFilter) ShouldCollide(shape2 jolt.ShapeInterface, subShapeID2 jolt.SubShapeID) bool {
	return false
}

func TestCastShapeRespectsFilter(t *testing.T) {
	moving := jolt.NewSphereShape(1.0)
	target := jolt.NewSphereShape(1.0)

	cast := jolt.MakeShapeCast(moving, unitScale, translation(mgl32.Vec3{-5, 0, 0}), mgl32.Vec3{10, 0, 0})

	collector := &jolt.ClosestHitCastShapeCollector{}
	jolt.CastShapeVsShape(cast, jolt.MakeShapeCastSettings(), target, unitScale, rejectAllShapeFilter{},
		mgl32.Ident4(), jolt.MakeSubShapeIDCreator(), jolt.MakeSubShapeIDCreator(), collector)
	assert.False(t, collector.HadHit)
}
