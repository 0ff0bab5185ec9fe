package jolt_test

import (
	"bytes"
	"math"
	"sync"
	"testing"

	jolt "github.com/PappaNiels/JoltPhysics"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSphereShapeSettingsCreate(t *testing.T) {
	settings := jolt.NewSphereShapeSettings(2.0)
	settings.UserData = 11

	result := settings.Create()
	require.True(t, result.IsValid())

	sphere := result.Get().(*jolt.SphereShape)
	assert.Equal(t, jolt.ShapeType.E_sphere, sphere.GetType())
	assert.Equal(t, float32(2.0), sphere.GetRadius())
	assert.Equal(t, uint64(11), sphere.GetUserData())
}

func TestSphereShapeSettingsCreateRejectsInvalidRadius(t *testing.T) {
	result := jolt.NewSphereShapeSettings(0).Create()
	require.True(t, result.HasError())
	assert.Equal(t, "invalid radius", result.GetError())
}

func TestSphereShapeSettingsCreateConcurrently(t *testing.T) {
	settings := jolt.NewSphereShapeSettings(1.0)

	shapes := make([]jolt.ShapeInterface, 8)
	var group sync.WaitGroup
	for i := range shapes {
		group.Add(1)
		go func(i int) {
			defer group.Done()
			shapes[i] = settings.Create().Get()
		}(i)
	}
	group.Wait()

	for _, shape := range shapes {
		assert.Same(t, shapes[0], shape)
	}
}

func TestSphereShapeBasics(t *testing.T) {
	sphere := jolt.NewSphereShape(2.0)

	assertVec3InDelta(t, mgl32.Vec3{}, sphere.GetCenterOfMass(), 0)
	assert.Equal(t, float32(2.0), sphere.GetInnerRadius())
	assert.InDelta(t, 4.0/3.0*math.Pi*8.0, sphere.GetVolume(), 1.0e-3)

	bounds := sphere.GetLocalBounds()
	assertVec3InDelta(t, mgl32.Vec3{-2, -2, -2}, bounds.Min, 0)
	assertVec3InDelta(t, mgl32.Vec3{2, 2, 2}, bounds.Max, 0)

	worldBounds := sphere.GetWorldSpaceBounds(mgl32.Translate3D(5, 0, 0), mgl32.Vec3{2, 2, 2})
	assertVec3InDelta(t, mgl32.Vec3{1, -4, -4}, worldBounds.Min, 1.0e-5)
	assertVec3InDelta(t, mgl32.Vec3{9, 4, 4}, worldBounds.Max, 1.0e-5)
}

func TestSphereShapeMassProperties(t *testing.T) {
	sphere := jolt.NewSphereShape(1.0)
	p := sphere.GetMassProperties()

	expectedMass := 4.0 / 3.0 * math.Pi * 1000.0
	assert.InDelta(t, expectedMass, p.Mass, 1.0)

	// Solid sphere inertia is 2/5 m r^2 on the diagonal
	assert.InDelta(t, 0.4*expectedMass, p.Inertia.At(0, 0), 1.0)
	assert.InDelta(t, 0.4*expectedMass, p.Inertia.At(1, 1), 1.0)
	assert.InDelta(t, 0.4*expectedMass, p.Inertia.At(2, 2), 1.0)
	assert.InDelta(t, 0, p.Inertia.At(0, 1), 1.0e-6)
}

func TestSphereShapeCastRay(t *testing.T) {
	sphere := jolt.NewSphereShape(1.0)

	ray := jolt.MakeRayCast(mgl32.Vec3{-5, 0, 0}, mgl32.Vec3{10, 0, 0})
	hit := jolt.MakeRayCastResult()
	require.True(t, sphere.CastRay(ray, jolt.MakeSubShapeIDCreator(), &hit))
	assert.InDelta(t, 0.4, hit.Fraction, 1.0e-5)

	// Starting inside hits at fraction 0
	ray = jolt.MakeRayCast(mgl32.Vec3{0.5, 0, 0}, mgl32.Vec3{10, 0, 0})
	hit = jolt.MakeRayCastResult()
	require.True(t, sphere.CastRay(ray, jolt.MakeSubShapeIDCreator(), &hit))
	assert.Equal(t, float32(0), hit.Fraction)

	// Pointing away
	ray = jolt.MakeRayCast(mgl32.Vec3{-5, 0, 0}, mgl32.Vec3{-10, 0, 0})
	hit = jolt.MakeRayCastResult()
	assert.False(t, sphere.CastRay(ray, jolt.MakeSubShapeIDCreator(), &hit))

	// Passing by
	ray = jolt.MakeRayCast(mgl32.Vec3{-5, 2, 0}, mgl32.Vec3{10, 0, 0})
	hit = jolt.MakeRayCastResult()
	assert.False(t, sphere.CastRay(ray, jolt.MakeSubShapeIDCreator(), &hit))
}

func TestSphereShapeCastRayWithCollectorSolidPolicy(t *testing.T) {
	sphere := jolt.NewSphereShape(1.0)
	ray := jolt.MakeRayCast(mgl32.Vec3{0, 0, 0}, mgl32.Vec3{10, 0, 0})

	solid := &jolt.AllHitCastRayCollector{}
	sphere.CastRayWithCollector(ray, jolt.MakeRayCastSettings(), jolt.MakeSubShapeIDCreator(), solid)
	require.Len(t, solid.Hits, 1)
	assert.Equal(t, float32(0), solid.Hits[0].Fraction)

	hollow := &jolt.AllHitCastRayCollector{}
	settings := jolt.MakeRayCastSettings()
	settings.TreatConvexAsSolid = false
	sphere.CastRayWithCollector(ray, settings, jolt.MakeSubShapeIDCreator(), hollow)
	assert.Empty(t, hollow.Hits)
}

func TestSphereShapeCollidePoint(t *testing.T) {
	sphere := jolt.NewSphereShape(1.0)

	collector := &jolt.AllHitCollidePointCollector{}
	sphere.CollidePoint(mgl32.Vec3{0.5, 0.5, 0.5}, jolt.MakeSubShapeIDCreator(), collector)
	assert.Len(t, collector.Hits, 1)

	collector = &jolt.AllHitCollidePointCollector{}
	sphere.CollidePoint(mgl32.Vec3{1, 1, 1}, jolt.MakeSubShapeIDCreator(), collector)
	assert.Empty(t, collector.Hits)
}

func TestSphereShapeSurfaceNormal(t *testing.T) {
	sphere := jolt.NewSphereShape(2.0)
	normal := sphere.GetSurfaceNormal(jolt.MakeSubShapeID(), mgl32.Vec3{0, 2, 0})
	assertVec3InDelta(t, mgl32.Vec3{0, 1, 0}, normal, 1.0e-6)
}

func TestSphereShapeSubmergedVolume(t *testing.T) {
	sphere := jolt.NewSphereShape(1.0)
	fullVolume := float64(sphere.GetVolume())
	surface := jolt.MakePlaneFromPointAndNormal(mgl32.Vec3{}, mgl32.Vec3{0, 1, 0})

	// Center on the surface: exactly half submerged
	total, submerged, buoyancy := sphere.GetSubmergedVolume(mgl32.Ident4(), mgl32.Vec3{1, 1, 1}, surface)
	assert.InDelta(t, fullVolume, total, 1.0e-4)
	assert.InDelta(t, fullVolume/2, submerged, 1.0e-4)
	assert.Less(t, buoyancy.Y(), float32(0))

	// Far above: dry
	_, submerged, _ = sphere.GetSubmergedVolume(mgl32.Translate3D(0, 5, 0), mgl32.Vec3{1, 1, 1}, surface)
	assert.Equal(t, float32(0), submerged)

	// Far below: fully submerged
	_, submerged, _ = sphere.GetSubmergedVolume(mgl32.Translate3D(0, -5, 0), mgl32.Vec3{1, 1, 1}, surface)
	assert.InDelta(t, fullVolume, submerged, 1.0e-4)
}

func TestSphereShapeIsValidScale(t *testing.T) {
	sphere := jolt.NewSphereShape(1.0)

	assert.True(t, sphere.IsValidScale(mgl32.Vec3{2, 2, 2}))
	assert.True(t, sphere.IsValidScale(mgl32.Vec3{-1, -1, -1}))
	assert.False(t, sphere.IsValidScale(mgl32.Vec3{1, 2, 3}))
	assert.False(t, sphere.IsValidScale(mgl32.Vec3{0, 0, 0}))
}

func TestSphereShapeBinaryRoundTrip(t *testing.T) {
	settings := jolt.NewSphereShapeSettings(1.5)
	settings.Density = 500
	settings.UserData = 3
	sphere := settings.Create().Get()

	buffer := &bytes.Buffer{}
	out := jolt.NewStreamOut(buffer)
	sphere.SaveBinaryState(out)
	require.False(t, out.IsFailed())

	result := jolt.RestoreShapeFromBinaryState(jolt.NewStreamIn(buffer))
	require.True(t, result.IsValid())

	restored := result.Get().(*jolt.SphereShape)
	restored.RestoreSubShapeState(restored.SaveSubShapeState())
	assert.Equal(t, float32(1.5), restored.GetRadius())
	assert.Equal(t, uint64(3), restored.GetUserData())
	assert.InDelta(t, sphere.GetMassProperties().Mass, restored.GetMassProperties().Mass, 1.0e-3)
}
