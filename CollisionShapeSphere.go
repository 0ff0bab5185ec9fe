package jolt

import (
	"unsafe"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

///////////////////////////////////////////////////////////////////////////////
///////////////////////////////////////////////////////////////////////////////
// SphereShape.h
///////////////////////////////////////////////////////////////////////////////
///////////////////////////////////////////////////////////////////////////////

type SphereShapeSettings struct {
	ShapeSettings

	Radius   float32
	Density  float32
	Material PhysicsMaterial
}

func MakeSphereShapeSettings(radius float32) SphereShapeSettings {
	return SphereShapeSettings{Radius: radius, Density: 1000.0}
}

func NewSphereShapeSettings(radius float32) *SphereShapeSettings {
	res := MakeSphereShapeSettings(radius)
	return &res
}

func (settings *SphereShapeSettings) Create() ShapeResult {
	return settings.memoizedCreate(func(result *ShapeResult) {
		if settings.Radius <= 0 {
			result.SetError("invalid radius")
			return
		}
		shape := NewSphereShape(settings.Radius)
		shape.M_userData = settings.UserData
		if settings.Density > 0 {
			shape.M_density = settings.Density
		}
		shape.M_material = settings.Material
		result.Set(shape)
	})
}

/// A sphere centered around its center of mass.
type SphereShape struct {
	Shape

	M_radius   float32
	M_density  float32
	M_material PhysicsMaterial
}

func NewSphereShape(radius float32) *SphereShape {
	return &SphereShape{
		Shape:     Shape{M_type: ShapeType.E_sphere},
		M_radius:  radius,
		M_density: 1000.0,
	}
}

func init() {
	shapeRestoreFunctions[ShapeType.E_sphere] = func() ShapeInterface {
		return &SphereShape{Shape: Shape{M_type: ShapeType.E_sphere}}
	}
}

func (shape *SphereShape) GetRadius() float32 {
	return shape.M_radius
}

/// Only uniform scales are valid for spheres, so the world space radius uses
/// the first scale component.
func (shape *SphereShape) getScaledRadius(scale mgl32.Vec3) float32 {
	return shape.M_radius * math32.Abs(scale[0])
}

func (shape *SphereShape) GetCenterOfMass() mgl32.Vec3 {
	return mgl32.Vec3{}
}

func (shape *SphereShape) GetLocalBounds() AABox {
	extent := mgl32.Vec3{shape.M_radius, shape.M_radius, shape.M_radius}
	return MakeAABox(extent.Mul(-1), extent)
}

func (shape *SphereShape) GetWorldSpaceBounds(centerOfMassTransform mgl32.Mat4, scale mgl32.Vec3) AABox {
	radius := shape.getScaledRadius(scale)
	center := Mat4GetTranslation(centerOfMassTransform)
	extent := mgl32.Vec3{radius, radius, radius}
	return MakeAABoxFromCenterAndExtent(center, extent)
}

func (shape *SphereShape) GetInnerRadius() float32 {
	return shape.M_radius
}

func (shape *SphereShape) GetVolume() float32 {
	return 4.0 / 3.0 * math32.Pi * shape.M_radius * shape.M_radius * shape.M_radius
}

func (shape *SphereShape) GetMassProperties() MassProperties {
	p := MakeMassProperties()
	p.Mass = shape.GetVolume() * shape.M_density

	// Solid sphere: I = 2/5 m r^2 about any axis
	inertia := 2.0 / 5.0 * p.Mass * shape.M_radius * shape.M_radius
	p.Inertia = mgl32.Mat3{
		inertia, 0, 0,
		0, inertia, 0,
		0, 0, inertia,
	}
	return p
}

func (shape *SphereShape) GetMaterial(subShapeID SubShapeID) PhysicsMaterial {
	if shape.M_material != nil {
		return shape.M_material
	}
	return PhysicsMaterialDefault
}

func (shape *SphereShape) GetSubShapeUserData(subShapeID SubShapeID) uint64 {
	return shape.M_userData
}

func (shape *SphereShape) GetSubShapeTransformedShape(subShapeID SubShapeID, positionCOM mgl32.Vec3, rotation mgl32.Quat, scale mgl32.Vec3) (TransformedShape, SubShapeID) {
	ts := MakeTransformedShape(positionCOM, rotation, shape)
	ts.SetShapeScale(scale)
	return ts, subShapeID
}

func (shape *SphereShape) GetSurfaceNormal(subShapeID SubShapeID, localSurfacePosition mgl32.Vec3) mgl32.Vec3 {
	length := localSurfacePosition.Len()
	if length < FloatEpsilon {
		return mgl32.Vec3{0, 1, 0}
	}
	return localSurfacePosition.Mul(1.0 / length)
}

/// Ray vs sphere: solve |origin + t * direction| = radius for the smallest
/// t >= 0. A ray starting inside hits at fraction 0.
func (shape *SphereShape) castRayInternal(ray RayCast) (float32, bool) {
	o := ray.Origin
	d := ray.Direction

	c := o.Dot(o) - shape.M_radius*shape.M_radius
	if c <= 0 {
		return 0, true
	}

	a := d.Dot(d)
	if a < FloatEpsilon {
		return 0, false
	}
	b := 2.0 * o.Dot(d)
	discriminant := b*b - 4.0*a*c
	if discriminant < 0 {
		return 0, false
	}

	t := (-b - math32.Sqrt(discriminant)) / (2.0 * a)
	if t < 0 {
		return 0, false
	}
	return t, true
}

func (shape *SphereShape) CastRay(ray RayCast, subShapeIDCreator SubShapeIDCreator, hit *RayCastResult) bool {
	fraction, ok := shape.castRayInternal(ray)
	if !ok || fraction >= hit.Fraction {
		return false
	}
	hit.Fraction = fraction
	hit.SubShapeID2 = subShapeIDCreator.GetID()
	return true
}

func (shape *SphereShape) CastRayWithCollector(ray RayCast, settings RayCastSettings, subShapeIDCreator SubShapeIDCreator, collector CastRayCollector) {
	fraction, ok := shape.castRayInternal(ray)
	if !ok {
		return
	}
	if fraction == 0 && !settings.TreatConvexAsSolid {
		return
	}
	if fraction <= 1 {
		collector.AddHit(RayCastResult{Fraction: fraction, SubShapeID2: subShapeIDCreator.GetID()})
	}
}

func (shape *SphereShape) CollidePoint(point mgl32.Vec3, subShapeIDCreator SubShapeIDCreator, collector CollidePointCollector) {
	if point.Dot(point) <= shape.M_radius*shape.M_radius {
		collector.AddHit(CollidePointResult{SubShapeID2: subShapeIDCreator.GetID()})
	}
}

func (shape *SphereShape) CastShape(shapeCast ShapeCast, settings ShapeCastSettings, scale mgl32.Vec3, filter ShapeFilter, centerOfMassTransform2 mgl32.Mat4, subShapeIDCreator1 SubShapeIDCreator, subShapeIDCreator2 SubShapeIDCreator, collector CastShapeCollector) {
	if _, ok := shapeCast.Shape.(*SphereShape); ok {
		CastSphereVsSphere(shapeCast, settings, shape, scale, filter, centerOfMassTransform2, subShapeIDCreator1, subShapeIDCreator2, collector)
	}
}

func (shape *SphereShape) CollectTransformedShapes(box AABox, positionCOM mgl32.Vec3, rotation mgl32.Quat, scale mgl32.Vec3, subShapeIDCreator SubShapeIDCreator, collector TransformedShapeCollector) {
	bounds := shape.GetWorldSpaceBounds(Mat4RotationTranslation(rotation, positionCOM), scale)
	if !box.Overlaps(bounds) {
		return
	}
	ts := MakeTransformedShape(positionCOM, rotation, shape)
	ts.SetShapeScale(scale)
	collector.AddHit(ts)
}

func (shape *SphereShape) TransformShape(centerOfMassTransform mgl32.Mat4, collector TransformedShapeCollector) {
	position := Mat4GetTranslation(centerOfMassTransform)
	rotation := mgl32.Mat4ToQuat(centerOfMassTransform)
	collector.AddHit(MakeTransformedShape(position, rotation, shape))
}

func (shape *SphereShape) GetSubmergedVolume(centerOfMassTransform mgl32.Mat4, scale mgl32.Vec3, surface Plane) (totalVolume float32, submergedVolume float32, centerOfBuoyancy mgl32.Vec3) {
	radius := shape.getScaledRadius(scale)
	center := Mat4GetTranslation(centerOfMassTransform)
	totalVolume = 4.0 / 3.0 * math32.Pi * radius * radius * radius

	distance := surface.SignedDistance(center)
	switch {
	case distance >= radius:
		// Fully above the surface
		return totalVolume, 0, center

	case distance <= -radius:
		// Fully submerged
		return totalVolume, totalVolume, center

	default:
		// Spherical cap below the surface
		capHeight := radius - distance
		submergedVolume = math32.Pi * capHeight * capHeight * (3.0*radius - capHeight) / 3.0

		// Centroid of the cap, measured from the sphere center along the
		// downward normal
		centroidOffset := 3.0 * Square(2.0*radius-capHeight) / (4.0 * (3.0*radius - capHeight))
		centerOfBuoyancy = center.Sub(surface.Normal.Mul(centroidOffset))
		return totalVolume, submergedVolume, centerOfBuoyancy
	}
}

func (shape *SphereShape) GetStatsRecursive(visitedShapes VisitedShapes) Stats {
	if visitedShapes[shape] {
		return Stats{}
	}
	visitedShapes[shape] = true
	return Stats{SizeBytes: uint64(unsafe.Sizeof(*shape))}
}

/// Spheres remain spheres only under uniform scale.
func (shape *SphereShape) IsValidScale(scale mgl32.Vec3) bool {
	return ScaleIsValid(scale) && ScaleIsUniform(scale)
}

func (shape *SphereShape) SaveBinaryState(stream *StreamOut) {
	shape.saveBinaryState(stream)

	stream.WriteFloat32(shape.M_radius)
	stream.WriteFloat32(shape.M_density)
}

func (shape *SphereShape) RestoreBinaryState(stream *StreamIn) {
	shape.restoreBinaryState(stream)

	shape.M_radius = stream.ReadFloat32()
	shape.M_density = stream.ReadFloat32()
}

func (shape *SphereShape) SaveSubShapeState() []ShapeInterface {
	return nil
}

func (shape *SphereShape) RestoreSubShapeState(subShapes []ShapeInterface) {
	Assert(len(subShapes) == 0)
}

func (shape *SphereShape) Draw(renderer DebugRenderer, centerOfMassTransform mgl32.Mat4, scale mgl32.Vec3, color Color, useMaterialColors bool, wireframe bool) {
	if useMaterialColors {
		color = shape.GetMaterial(MakeSubShapeID()).GetDebugColor()
	}
	renderer.DrawSphere(centerOfMassTransform, shape.getScaledRadius(scale), color, wireframe)
}
