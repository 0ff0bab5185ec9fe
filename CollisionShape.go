package jolt

import (
	"sync"

	"github.com/go-gl/mathgl/mgl32"
)

///////////////////////////////////////////////////////////////////////////////
///////////////////////////////////////////////////////////////////////////////
// Shape.h
///////////////////////////////////////////////////////////////////////////////
///////////////////////////////////////////////////////////////////////////////

var ShapeType = struct {
	E_sphere            uint8
	E_box               uint8
	E_rotatedTranslated uint8
	E_typeCount         uint8
}{
	E_sphere:            0,
	E_box:               1,
	E_rotatedTranslated: 2,
	E_typeCount:         3,
}

/// Result of constructing a shape: either a usable shape or a human readable
/// error string, never both. Construction never panics.
type ShapeResult struct {
	shape ShapeInterface
	err   string
}

func (result ShapeResult) IsValid() bool {
	return result.shape != nil && result.err == ""
}

func (result ShapeResult) IsEmpty() bool {
	return result.shape == nil && result.err == ""
}

func (result ShapeResult) HasError() bool {
	return result.err != ""
}

func (result ShapeResult) Get() ShapeInterface {
	Assert(result.IsValid())
	return result.shape
}

func (result ShapeResult) GetError() string {
	return result.err
}

func (result *ShapeResult) Set(shape ShapeInterface) {
	result.shape = shape
	result.err = ""
}

func (result *ShapeResult) SetError(err string) {
	result.shape = nil
	result.err = err
}

/// Memory footprint of a shape, reported by GetStatsRecursive.
type Stats struct {
	SizeBytes    uint64
	NumTriangles uint32
}

/// Set of shapes already visited while recursing over a shape graph. Because
/// shapes are shared (the graph is a DAG, not a tree) a shape reachable
/// through multiple decorators must be counted at most once.
type VisitedShapes map[ShapeInterface]bool

func MakeVisitedShapes() VisitedShapes {
	return make(VisitedShapes)
}

/// Filter that determines if two shapes should collide during a cast.
type ShapeFilter interface {
	ShouldCollide(shape2 ShapeInterface, subShapeID2 SubShapeID) bool
}

type ShapeFilterAll struct{}

func (filter ShapeFilterAll) ShouldCollide(shape2 ShapeInterface, subShapeID2 SubShapeID) bool {
	return true
}

/// A shape is an immutable piece of collision geometry. All query methods are
/// safe to call concurrently once construction has succeeded; shapes carry no
/// mutable state beyond caches derived once at construction or restore time.
/// Inputs and outputs are expressed in the shape's local space, which is
/// centered on its center of mass.
type ShapeInterface interface {
	/// Get the type of this shape. You can use this to down cast to the concrete shape.
	GetType() uint8

	GetUserData() uint64
	SetUserData(userData uint64)

	/// The center of mass of this shape relative to its original position input.
	GetCenterOfMass() mgl32.Vec3

	/// Bounding box in local space, centered on the center of mass.
	GetLocalBounds() AABox

	/// Bounding box after applying scale in local space and then the given
	/// center of mass transform.
	GetWorldSpaceBounds(centerOfMassTransform mgl32.Mat4, scale mgl32.Vec3) AABox

	/// Radius of the largest sphere that fits inside the shape.
	GetInnerRadius() float32

	/// Volume of the shape in local space, before scaling.
	GetVolume() float32

	/// Mass and inertia, expressed about the center of mass.
	GetMassProperties() MassProperties

	/// Material of the leaf identified by the sub shape id.
	GetMaterial(subShapeID SubShapeID) PhysicsMaterial

	/// User data of the leaf identified by the sub shape id.
	GetSubShapeUserData(subShapeID SubShapeID) uint64

	/// Resolve a sub shape id to a placed leaf shape. Returns the remainder
	/// of the id after this shape has consumed its bits.
	GetSubShapeTransformedShape(subShapeID SubShapeID, positionCOM mgl32.Vec3, rotation mgl32.Quat, scale mgl32.Vec3) (TransformedShape, SubShapeID)

	/// Outward surface normal at a position on the surface of the shape, in
	/// local space.
	GetSurfaceNormal(subShapeID SubShapeID, localSurfacePosition mgl32.Vec3) mgl32.Vec3

	/// Intersect a ray with this shape, keeping only the closest hit. Returns
	/// true and updates hit when a hit closer than hit.Fraction was found.
	CastRay(ray RayCast, subShapeIDCreator SubShapeIDCreator, hit *RayCastResult) bool

	/// Intersect a ray with this shape, forwarding every hit to the collector.
	/// Any early out policy is the collector's own business.
	CastRayWithCollector(ray RayCast, settings RayCastSettings, subShapeIDCreator SubShapeIDCreator, collector CastRayCollector)

	/// Report a hit for every leaf that contains the given point.
	CollidePoint(point mgl32.Vec3, subShapeIDCreator SubShapeIDCreator, collector CollidePointCollector)

	/// Cast a moving shape against this shape. shapeCast is expressed relative
	/// to centerOfMassTransform2, the placement of this shape.
	CastShape(shapeCast ShapeCast, settings ShapeCastSettings, scale mgl32.Vec3, filter ShapeFilter, centerOfMassTransform2 mgl32.Mat4, subShapeIDCreator1 SubShapeIDCreator, subShapeIDCreator2 SubShapeIDCreator, collector CastShapeCollector)

	/// Report all leaf shapes that intersect the given world space box as
	/// placed TransformedShapes.
	CollectTransformedShapes(box AABox, positionCOM mgl32.Vec3, rotation mgl32.Quat, scale mgl32.Vec3, subShapeIDCreator SubShapeIDCreator, collector TransformedShapeCollector)

	/// Flatten this shape into world placed leaf shapes.
	TransformShape(centerOfMassTransform mgl32.Mat4, collector TransformedShapeCollector)

	/// Compute total volume and the part of it below the given surface plane.
	/// The plane and the returned center of buoyancy are in the space of
	/// centerOfMassTransform.
	GetSubmergedVolume(centerOfMassTransform mgl32.Mat4, scale mgl32.Vec3, surface Plane) (totalVolume float32, submergedVolume float32, centerOfBuoyancy mgl32.Vec3)

	/// Memory stats of this shape and everything below it. Shapes already in
	/// the visited set report zero so DAG shared shapes are counted once.
	GetStatsRecursive(visitedShapes VisitedShapes) Stats

	/// Check if a scale vector can be applied to this shape without producing
	/// unrepresentable geometry. Callers must validate before querying with a
	/// scale; results for rejected scales are unspecified.
	IsValidScale(scale mgl32.Vec3) bool

	/// Persist / restore the shape's own state. Referenced inner shapes are
	/// not serialized; use SaveSubShapeState / RestoreSubShapeState to relink
	/// them.
	SaveBinaryState(stream *StreamOut)
	RestoreBinaryState(stream *StreamIn)

	SaveSubShapeState() []ShapeInterface
	RestoreSubShapeState(subShapes []ShapeInterface)

	Draw(renderer DebugRenderer, centerOfMassTransform mgl32.Mat4, scale mgl32.Vec3, color Color, useMaterialColors bool, wireframe bool)
}

/// Common state embedded in every concrete shape.
type Shape struct {
	M_type     uint8
	M_userData uint64
}

func (shape *Shape) GetType() uint8 {
	return shape.M_type
}

func (shape *Shape) GetUserData() uint64 {
	return shape.M_userData
}

func (shape *Shape) SetUserData(userData uint64) {
	shape.M_userData = userData
}

func (shape *Shape) saveBinaryState(stream *StreamOut) {
	stream.WriteUint8(shape.M_type)
	stream.WriteUint64(shape.M_userData)
}

/// The type tag has already been consumed by RestoreShapeFromBinaryState.
func (shape *Shape) restoreBinaryState(stream *StreamIn) {
	shape.M_userData = stream.ReadUint64()
}

/// Common state embedded in every shape settings struct. Create is memoized:
/// the first call builds the shape, later calls return the cached result. The
/// build is guarded so concurrent first calls construct exactly once.
type ShapeSettings struct {
	UserData uint64

	cachedResult ShapeResult
	createOnce   sync.Once
}

func (settings *ShapeSettings) memoizedCreate(build func(result *ShapeResult)) ShapeResult {
	settings.createOnce.Do(func() {
		build(&settings.cachedResult)
	})
	return settings.cachedResult
}

/// Settings describe how to construct a shape; Create performs the
/// construction and reports the outcome as a ShapeResult.
type ShapeSettingsInterface interface {
	Create() ShapeResult
}

var shapeRestoreFunctions [3]func() ShapeInterface

/// Restore a shape saved with SaveBinaryState. The concrete type is selected
/// by the leading type tag. Inner shape references are not part of the stream
/// and must be relinked with RestoreSubShapeState.
func RestoreShapeFromBinaryState(stream *StreamIn) ShapeResult {
	result := ShapeResult{}

	shapeType := stream.ReadUint8()
	if stream.IsFailed() || shapeType >= ShapeType.E_typeCount || shapeRestoreFunctions[shapeType] == nil {
		result.SetError("failed to restore shape: invalid shape type")
		return result
	}

	shape := shapeRestoreFunctions[shapeType]()
	shape.RestoreBinaryState(stream)
	if stream.IsFailed() {
		result.SetError("failed to restore shape: " + stream.Error().Error())
		return result
	}

	result.Set(shape)
	return result
}
