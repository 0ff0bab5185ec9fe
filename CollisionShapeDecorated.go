package jolt

///////////////////////////////////////////////////////////////////////////////
///////////////////////////////////////////////////////////////////////////////
// DecoratedShape.h / DecoratedShape.cpp
///////////////////////////////////////////////////////////////////////////////
///////////////////////////////////////////////////////////////////////////////

/// Settings common to all decorator shapes: the inner shape can be given
/// either as settings to build recursively or as an already built shape.
/// Exactly one of the two should be set; InnerShapePtr wins when both are.
type DecoratedShapeSettings struct {
	ShapeSettings

	/// Settings of the shape to wrap, built when Create is called.
	InnerShape ShapeSettingsInterface

	/// An already built shape to wrap. The shape is shared, not copied, so
	/// it may be wrapped by any number of decorators at the same time.
	InnerShapePtr ShapeInterface
}

/// Base for shapes that wrap exactly one inner shape and modify its queries.
/// The decorator adds no structure of its own: material and user data lookups
/// are pure delegation and sub shape ids pass through unchanged.
type DecoratedShape struct {
	Shape

	M_innerShape ShapeInterface
}

/// Resolve the inner shape from the settings. Returns false and fills result
/// with the failure when there is no inner shape or its construction failed;
/// a failing child's result is propagated verbatim, not wrapped.
func (shape *DecoratedShape) construct(settings *DecoratedShapeSettings, result *ShapeResult) bool {
	if settings.InnerShape == nil && settings.InnerShapePtr == nil {
		result.SetError("inner shape is null")
		return false
	}

	if settings.InnerShapePtr != nil {
		shape.M_innerShape = settings.InnerShapePtr
		return true
	}

	childResult := settings.InnerShape.Create()
	if !childResult.IsValid() {
		*result = childResult
		return false
	}
	shape.M_innerShape = childResult.Get()
	return true
}

func (shape *DecoratedShape) GetInnerShape() ShapeInterface {
	return shape.M_innerShape
}

func (shape *DecoratedShape) GetMaterial(subShapeID SubShapeID) PhysicsMaterial {
	return shape.M_innerShape.GetMaterial(subShapeID)
}

func (shape *DecoratedShape) GetSubShapeUserData(subShapeID SubShapeID) uint64 {
	return shape.M_innerShape.GetSubShapeUserData(subShapeID)
}

/// The saved state is the single inner shape reference; an external relink
/// mechanism uses this to restore a shape graph without re-serializing
/// geometry.
func (shape *DecoratedShape) SaveSubShapeState() []ShapeInterface {
	return []ShapeInterface{shape.M_innerShape}
}

func (shape *DecoratedShape) RestoreSubShapeState(subShapes []ShapeInterface) {
	Assert(len(subShapes) == 1)
	shape.M_innerShape = subShapes[0]
}

/// Own stats plus the inner shape's. The visited set must be shared across
/// all calls of one aggregation so a DAG shared inner shape counts once.
func (shape *DecoratedShape) getStatsRecursive(visitedShapes VisitedShapes, owner ShapeInterface, ownSizeBytes uint64) Stats {
	if visitedShapes[owner] {
		return Stats{}
	}
	visitedShapes[owner] = true

	stats := Stats{SizeBytes: ownSizeBytes}
	childStats := shape.M_innerShape.GetStatsRecursive(visitedShapes)
	stats.SizeBytes += childStats.SizeBytes
	stats.NumTriangles += childStats.NumTriangles
	return stats
}
