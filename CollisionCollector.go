package jolt

///////////////////////////////////////////////////////////////////////////////
///////////////////////////////////////////////////////////////////////////////
// CollisionCollector.h
///////////////////////////////////////////////////////////////////////////////
///////////////////////////////////////////////////////////////////////////////

/// Collectors are caller supplied sinks invoked once per candidate query
/// result. Shapes forward collectors unmodified and apply no filtering of
/// their own; early termination and hit selection are the collector's policy.

type CastRayCollector interface {
	AddHit(result RayCastResult)
}

type CollidePointCollector interface {
	AddHit(result CollidePointResult)
}

type CastShapeCollector interface {
	AddHit(result ShapeCastResult)
}

type CollideShapeCollector interface {
	AddHit(result CollideShapeResult)
}

type TransformedShapeCollector interface {
	AddHit(result TransformedShape)
}

///////////////////////////////////////////////////////////////////////////////

/// Collects every ray hit in order of arrival.
type AllHitCastRayCollector struct {
	Hits []RayCastResult
}

func (collector *AllHitCastRayCollector) AddHit(result RayCastResult) {
	collector.Hits = append(collector.Hits, result)
}

/// Keeps only the closest ray hit.
type ClosestHitCastRayCollector struct {
	HadHit bool
	Hit    RayCastResult
}

func (collector *ClosestHitCastRayCollector) AddHit(result RayCastResult) {
	if !collector.HadHit || result.Fraction < collector.Hit.Fraction {
		collector.HadHit = true
		collector.Hit = result
	}
}

type AllHitCollidePointCollector struct {
	Hits []CollidePointResult
}

func (collector *AllHitCollidePointCollector) AddHit(result CollidePointResult) {
	collector.Hits = append(collector.Hits, result)
}

type AllHitCastShapeCollector struct {
	Hits []ShapeCastResult
}

func (collector *AllHitCastShapeCollector) AddHit(result ShapeCastResult) {
	collector.Hits = append(collector.Hits, result)
}

/// Keeps only the earliest shape cast hit.
type ClosestHitCastShapeCollector struct {
	HadHit bool
	Hit    ShapeCastResult
}

func (collector *ClosestHitCastShapeCollector) AddHit(result ShapeCastResult) {
	if !collector.HadHit || result.Fraction < collector.Hit.Fraction {
		collector.HadHit = true
		collector.Hit = result
	}
}

type AllHitCollideShapeCollector struct {
	Hits []CollideShapeResult
}

func (collector *AllHitCollideShapeCollector) AddHit(result CollideShapeResult) {
	collector.Hits = append(collector.Hits, result)
}

type AllHitTransformedShapeCollector struct {
	Hits []TransformedShape
}

func (collector *AllHitTransformedShapeCollector) AddHit(result TransformedShape) {
	collector.Hits = append(collector.Hits, result)
}

/// Re-reports collide shape hits with shape 1 and shape 2 swapped. Used by
/// dispatch functions that handle a pair in reversed order.
type ReversedCollideShapeCollector struct {
	Collector CollideShapeCollector
}

func (collector *ReversedCollideShapeCollector) AddHit(result CollideShapeResult) {
	collector.Collector.AddHit(result.Reversed())
}
