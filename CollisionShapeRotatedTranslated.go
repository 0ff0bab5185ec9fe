package jolt

import (
	"unsafe"

	"github.com/go-gl/mathgl/mgl32"
)

///////////////////////////////////////////////////////////////////////////////
///////////////////////////////////////////////////////////////////////////////
// RotatedTranslatedShape.h / RotatedTranslatedShape.cpp
///////////////////////////////////////////////////////////////////////////////
///////////////////////////////////////////////////////////////////////////////

type RotatedTranslatedShapeSettings struct {
	DecoratedShapeSettings

	Position mgl32.Vec3
	Rotation mgl32.Quat
}

/// Create settings that wrap child settings.
func MakeRotatedTranslatedShapeSettings(position mgl32.Vec3, rotation mgl32.Quat, innerShape ShapeSettingsInterface) RotatedTranslatedShapeSettings {
	return RotatedTranslatedShapeSettings{
		DecoratedShapeSettings: DecoratedShapeSettings{InnerShape: innerShape},
		Position:               position,
		Rotation:               rotation,
	}
}

/// Create settings that wrap an already built shape.
func MakeRotatedTranslatedShapeSettingsFromShape(position mgl32.Vec3, rotation mgl32.Quat, innerShape ShapeInterface) RotatedTranslatedShapeSettings {
	return RotatedTranslatedShapeSettings{
		DecoratedShapeSettings: DecoratedShapeSettings{InnerShapePtr: innerShape},
		Position:               position,
		Rotation:               rotation,
	}
}

func NewRotatedTranslatedShapeSettings(position mgl32.Vec3, rotation mgl32.Quat, innerShape ShapeSettingsInterface) *RotatedTranslatedShapeSettings {
	res := MakeRotatedTranslatedShapeSettings(position, rotation, innerShape)
	return &res
}

func NewRotatedTranslatedShapeSettingsFromShape(position mgl32.Vec3, rotation mgl32.Quat, innerShape ShapeInterface) *RotatedTranslatedShapeSettings {
	res := MakeRotatedTranslatedShapeSettingsFromShape(position, rotation, innerShape)
	return &res
}

func (settings *RotatedTranslatedShapeSettings) Create() ShapeResult {
	return settings.memoizedCreate(func(result *ShapeResult) {
		newRotatedTranslatedShapeFromSettings(settings, result)
	})
}

/// A decorator that rotates and translates its inner shape. The local origin
/// of the decorator coincides with its center of mass: the position input is
/// consumed into the derived center of mass and does not remain as separate
/// state.
type RotatedTranslatedShape struct {
	DecoratedShape

	/// Orientation of the inner shape relative to this shape.
	M_rotation mgl32.Quat

	/// Derived at construction as position + rotation * inner center of mass.
	M_centerOfMass mgl32.Vec3

	/// Cache of M_rotation being (close to) identity; recomputed after
	/// restore, never persisted.
	M_isRotationIdentity bool
}

func newRotatedTranslatedShapeFromSettings(settings *RotatedTranslatedShapeSettings, result *ShapeResult) *RotatedTranslatedShape {
	shape := &RotatedTranslatedShape{
		DecoratedShape: DecoratedShape{Shape: Shape{M_type: ShapeType.E_rotatedTranslated, M_userData: settings.UserData}},
	}
	if !shape.construct(&settings.DecoratedShapeSettings, result) {
		return shape
	}

	shape.M_centerOfMass = settings.Position.Add(settings.Rotation.Rotate(shape.M_innerShape.GetCenterOfMass()))
	shape.M_rotation = settings.Rotation
	shape.M_isRotationIdentity = QuatIsClose(shape.M_rotation, mgl32.QuatIdent())

	result.Set(shape)
	return shape
}

/// Construct directly from an already built inner shape.
func NewRotatedTranslatedShape(position mgl32.Vec3, rotation mgl32.Quat, innerShape ShapeInterface) *RotatedTranslatedShape {
	return &RotatedTranslatedShape{
		DecoratedShape:       DecoratedShape{Shape: Shape{M_type: ShapeType.E_rotatedTranslated}, M_innerShape: innerShape},
		M_rotation:           rotation,
		M_centerOfMass:       position.Add(rotation.Rotate(innerShape.GetCenterOfMass())),
		M_isRotationIdentity: QuatIsClose(rotation, mgl32.QuatIdent()),
	}
}

func init() {
	shapeRestoreFunctions[ShapeType.E_rotatedTranslated] = func() ShapeInterface {
		return &RotatedTranslatedShape{DecoratedShape: DecoratedShape{Shape: Shape{M_type: ShapeType.E_rotatedTranslated}}}
	}
}

func (shape *RotatedTranslatedShape) GetRotation() mgl32.Quat {
	return shape.M_rotation
}

func (shape *RotatedTranslatedShape) GetPosition() mgl32.Vec3 {
	return shape.M_centerOfMass.Sub(shape.M_rotation.Rotate(shape.M_innerShape.GetCenterOfMass()))
}

func (shape *RotatedTranslatedShape) GetCenterOfMass() mgl32.Vec3 {
	return shape.M_centerOfMass
}

/// Convert a scale given in this shape's space to the inner shape's space.
/// Uniform scales and identity rotations pass through; other combinations are
/// only meaningful when IsValidScale accepted the scale.
func (shape *RotatedTranslatedShape) TransformScale(scale mgl32.Vec3) mgl32.Vec3 {
	if shape.M_isRotationIdentity || ScaleIsUniform(scale) {
		return scale
	}
	return ScaleRotate(shape.M_rotation.Conjugate(), scale)
}

func (shape *RotatedTranslatedShape) GetLocalBounds() AABox {
	return shape.M_innerShape.GetLocalBounds().Transformed(Mat4Rotation(shape.M_rotation))
}

func (shape *RotatedTranslatedShape) GetWorldSpaceBounds(centerOfMassTransform mgl32.Mat4, scale mgl32.Vec3) AABox {
	transform := centerOfMassTransform.Mul4(Mat4Rotation(shape.M_rotation))
	return shape.M_innerShape.GetWorldSpaceBounds(transform, shape.TransformScale(scale))
}

func (shape *RotatedTranslatedShape) GetInnerRadius() float32 {
	return shape.M_innerShape.GetInnerRadius()
}

func (shape *RotatedTranslatedShape) GetVolume() float32 {
	return shape.M_innerShape.GetVolume()
}

/// The inertia tensor is already expressed about the center of mass, so only
/// the rotation needs to be applied.
func (shape *RotatedTranslatedShape) GetMassProperties() MassProperties {
	p := shape.M_innerShape.GetMassProperties()
	p.Rotate(QuatToMat3(shape.M_rotation))
	return p
}

func (shape *RotatedTranslatedShape) GetSubShapeTransformedShape(subShapeID SubShapeID, positionCOM mgl32.Vec3, rotation mgl32.Quat, scale mgl32.Vec3) (TransformedShape, SubShapeID) {
	// We don't use any bits in the sub shape id
	ts := MakeTransformedShape(positionCOM, rotation.Mul(shape.M_rotation), shape.M_innerShape)
	ts.SetShapeScale(shape.TransformScale(scale))
	return ts, subShapeID
}

func (shape *RotatedTranslatedShape) GetSurfaceNormal(subShapeID SubShapeID, localSurfacePosition mgl32.Vec3) mgl32.Vec3 {
	// Transform the surface position into the inner shape's space
	inverseRotation := shape.M_rotation.Conjugate()
	normal := shape.M_innerShape.GetSurfaceNormal(subShapeID, inverseRotation.Rotate(localSurfacePosition))

	// Transform the normal back into this shape's space
	return shape.M_rotation.Rotate(normal)
}

func (shape *RotatedTranslatedShape) CastRay(ray RayCast, subShapeIDCreator SubShapeIDCreator, hit *RayCastResult) bool {
	// The hit fraction and sub shape id are frame independent and pass
	// through unchanged
	transform := Mat4Rotation(shape.M_rotation.Conjugate())
	return shape.M_innerShape.CastRay(ray.Transformed(transform), subShapeIDCreator, hit)
}

func (shape *RotatedTranslatedShape) CastRayWithCollector(ray RayCast, settings RayCastSettings, subShapeIDCreator SubShapeIDCreator, collector CastRayCollector) {
	transform := Mat4Rotation(shape.M_rotation.Conjugate())
	shape.M_innerShape.CastRayWithCollector(ray.Transformed(transform), settings, subShapeIDCreator, collector)
}

func (shape *RotatedTranslatedShape) CollidePoint(point mgl32.Vec3, subShapeIDCreator SubShapeIDCreator, collector CollidePointCollector) {
	shape.M_innerShape.CollidePoint(shape.M_rotation.Conjugate().Rotate(point), subShapeIDCreator, collector)
}

/// Cast against this shape: rotate the incoming cast into the inner shape's
/// space and compose this shape's rotation into the target transform.
func (shape *RotatedTranslatedShape) CastShape(shapeCast ShapeCast, settings ShapeCastSettings, scale mgl32.Vec3, filter ShapeFilter, centerOfMassTransform2 mgl32.Mat4, subShapeIDCreator1 SubShapeIDCreator, subShapeIDCreator2 SubShapeIDCreator, collector CastShapeCollector) {
	localTransform := Mat4Rotation(shape.M_rotation)
	innerCast := shapeCast.PostTransformed(Mat4Transposed3x3(localTransform))
	shape.M_innerShape.CastShape(innerCast, settings, shape.TransformScale(scale), filter, centerOfMassTransform2.Mul4(localTransform), subShapeIDCreator1, subShapeIDCreator2, collector)
}

func (shape *RotatedTranslatedShape) CollectTransformedShapes(box AABox, positionCOM mgl32.Vec3, rotation mgl32.Quat, scale mgl32.Vec3, subShapeIDCreator SubShapeIDCreator, collector TransformedShapeCollector) {
	shape.M_innerShape.CollectTransformedShapes(box, positionCOM, rotation.Mul(shape.M_rotation), shape.TransformScale(scale), subShapeIDCreator, collector)
}

func (shape *RotatedTranslatedShape) TransformShape(centerOfMassTransform mgl32.Mat4, collector TransformedShapeCollector) {
	shape.M_innerShape.TransformShape(centerOfMassTransform.Mul4(Mat4Rotation(shape.M_rotation)), collector)
}

func (shape *RotatedTranslatedShape) GetSubmergedVolume(centerOfMassTransform mgl32.Mat4, scale mgl32.Vec3, surface Plane) (totalVolume float32, submergedVolume float32, centerOfBuoyancy mgl32.Vec3) {
	transform := centerOfMassTransform.Mul4(Mat4Rotation(shape.M_rotation))
	return shape.M_innerShape.GetSubmergedVolume(transform, shape.TransformScale(scale), surface)
}

func (shape *RotatedTranslatedShape) GetStatsRecursive(visitedShapes VisitedShapes) Stats {
	return shape.getStatsRecursive(visitedShapes, shape, uint64(unsafe.Sizeof(*shape)))
}

func (shape *RotatedTranslatedShape) IsValidScale(scale mgl32.Vec3) bool {
	if !ScaleIsValid(scale) {
		return false
	}

	if shape.M_isRotationIdentity || ScaleIsUniform(scale) {
		return shape.M_innerShape.IsValidScale(scale)
	}

	if !ScaleCanBeRotated(shape.M_rotation, scale) {
		return false
	}
	return shape.M_innerShape.IsValidScale(ScaleRotate(shape.M_rotation.Conjugate(), scale))
}

func (shape *RotatedTranslatedShape) SaveBinaryState(stream *StreamOut) {
	shape.saveBinaryState(stream)

	stream.WriteVec3(shape.M_centerOfMass)
	stream.WriteQuat(shape.M_rotation)
}

func (shape *RotatedTranslatedShape) RestoreBinaryState(stream *StreamIn) {
	shape.restoreBinaryState(stream)

	shape.M_centerOfMass = stream.ReadVec3()
	shape.M_rotation = stream.ReadQuat()
	shape.M_isRotationIdentity = QuatIsClose(shape.M_rotation, mgl32.QuatIdent())
}

func (shape *RotatedTranslatedShape) Draw(renderer DebugRenderer, centerOfMassTransform mgl32.Mat4, scale mgl32.Vec3, color Color, useMaterialColors bool, wireframe bool) {
	shape.M_innerShape.Draw(renderer, centerOfMassTransform.Mul4(Mat4Rotation(shape.M_rotation)), shape.TransformScale(scale), color, useMaterialColors, wireframe)
}

///////////////////////////////////////////////////////////////////////////////
// Collision dispatch handlers
///////////////////////////////////////////////////////////////////////////////

/// The decorator contributes two collide handlers (one per operand side) and
/// one cast handler (for when it is the moving shape) regardless of how many
/// leaf types exist.
func registerRotatedTranslatedShapeCollision() {
	for shapeType := uint8(0); shapeType < ShapeType.E_typeCount; shapeType++ {
		RegisterCollideShape(ShapeType.E_rotatedTranslated, shapeType, CollideRotatedTranslatedVsShape)
		if shapeType != ShapeType.E_rotatedTranslated {
			RegisterCollideShape(shapeType, ShapeType.E_rotatedTranslated, CollideShapeVsRotatedTranslated)
		}
	}
	RegisterCastShape(ShapeType.E_rotatedTranslated, CastRotatedTranslatedVsShape)
}

/// Unwrap the decorator on the first operand and re-enter the dispatch table.
func CollideRotatedTranslatedVsShape(shape1 ShapeInterface, shape2 ShapeInterface, scale1 mgl32.Vec3, scale2 mgl32.Vec3, centerOfMassTransform1 mgl32.Mat4, centerOfMassTransform2 mgl32.Mat4, subShapeIDCreator1 SubShapeIDCreator, subShapeIDCreator2 SubShapeIDCreator, settings CollideShapeSettings, collector CollideShapeCollector) {
	decorated := shape1.(*RotatedTranslatedShape)

	transform1 := centerOfMassTransform1.Mul4(Mat4Rotation(decorated.M_rotation))
	CollideShapeVsShape(decorated.M_innerShape, shape2, decorated.TransformScale(scale1), scale2, transform1, centerOfMassTransform2, subShapeIDCreator1, subShapeIDCreator2, settings, collector)
}

/// Unwrap the decorator on the second operand and re-enter the dispatch table.
func CollideShapeVsRotatedTranslated(shape1 ShapeInterface, shape2 ShapeInterface, scale1 mgl32.Vec3, scale2 mgl32.Vec3, centerOfMassTransform1 mgl32.Mat4, centerOfMassTransform2 mgl32.Mat4, subShapeIDCreator1 SubShapeIDCreator, subShapeIDCreator2 SubShapeIDCreator, settings CollideShapeSettings, collector CollideShapeCollector) {
	decorated := shape2.(*RotatedTranslatedShape)

	transform2 := centerOfMassTransform2.Mul4(Mat4Rotation(decorated.M_rotation))
	CollideShapeVsShape(shape1, decorated.M_innerShape, scale1, decorated.TransformScale(scale2), centerOfMassTransform1, transform2, subShapeIDCreator1, subShapeIDCreator2, settings, collector)
}

/// Unwrap a decorated moving shape and re-enter the dispatch with the inner
/// shape as the moving shape. Without this, matching a decorated moving shape
/// against a decorated target would recurse forever.
func CastRotatedTranslatedVsShape(shapeCast ShapeCast, settings ShapeCastSettings, shape ShapeInterface, scale mgl32.Vec3, filter ShapeFilter, centerOfMassTransform2 mgl32.Mat4, subShapeIDCreator1 SubShapeIDCreator, subShapeIDCreator2 SubShapeIDCreator, collector CastShapeCollector) {
	decorated := shapeCast.Shape.(*RotatedTranslatedShape)

	transform := shapeCast.CenterOfMassStart.Mul4(Mat4Rotation(decorated.M_rotation))
	innerScale := decorated.TransformScale(shapeCast.Scale)
	innerCast := MakeShapeCast(decorated.M_innerShape, innerScale, transform, shapeCast.Direction)
	CastShapeVsShape(innerCast, settings, shape, scale, filter, centerOfMassTransform2, subShapeIDCreator1, subShapeIDCreator2, collector)
}
