package jolt

import (
	"unsafe"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

///////////////////////////////////////////////////////////////////////////////
///////////////////////////////////////////////////////////////////////////////
// BoxShape.h
///////////////////////////////////////////////////////////////////////////////
///////////////////////////////////////////////////////////////////////////////

type BoxShapeSettings struct {
	ShapeSettings

	HalfExtent mgl32.Vec3
	Density    float32
	Material   PhysicsMaterial
}

func MakeBoxShapeSettings(halfExtent mgl32.Vec3) BoxShapeSettings {
	return BoxShapeSettings{HalfExtent: halfExtent, Density: 1000.0}
}

func NewBoxShapeSettings(halfExtent mgl32.Vec3) *BoxShapeSettings {
	res := MakeBoxShapeSettings(halfExtent)
	return &res
}

func (settings *BoxShapeSettings) Create() ShapeResult {
	return settings.memoizedCreate(func(result *ShapeResult) {
		if settings.HalfExtent[0] <= 0 || settings.HalfExtent[1] <= 0 || settings.HalfExtent[2] <= 0 {
			result.SetError("invalid half extent")
			return
		}
		shape := NewBoxShape(settings.HalfExtent)
		shape.M_userData = settings.UserData
		if settings.Density > 0 {
			shape.M_density = settings.Density
		}
		shape.M_material = settings.Material
		result.Set(shape)
	})
}

/// An axis aligned box centered around its center of mass.
type BoxShape struct {
	Shape

	M_halfExtent mgl32.Vec3
	M_density    float32
	M_material   PhysicsMaterial
}

func NewBoxShape(halfExtent mgl32.Vec3) *BoxShape {
	return &BoxShape{
		Shape:        Shape{M_type: ShapeType.E_box},
		M_halfExtent: halfExtent,
		M_density:    1000.0,
	}
}

func init() {
	shapeRestoreFunctions[ShapeType.E_box] = func() ShapeInterface {
		return &BoxShape{Shape: Shape{M_type: ShapeType.E_box}}
	}
}

func (shape *BoxShape) GetHalfExtent() mgl32.Vec3 {
	return shape.M_halfExtent
}

func (shape *BoxShape) getScaledHalfExtent(scale mgl32.Vec3) mgl32.Vec3 {
	return Vec3Abs(Vec3MulComponents(shape.M_halfExtent, scale))
}

func (shape *BoxShape) GetCenterOfMass() mgl32.Vec3 {
	return mgl32.Vec3{}
}

func (shape *BoxShape) GetLocalBounds() AABox {
	return MakeAABox(shape.M_halfExtent.Mul(-1), shape.M_halfExtent)
}

func (shape *BoxShape) GetWorldSpaceBounds(centerOfMassTransform mgl32.Mat4, scale mgl32.Vec3) AABox {
	return shape.GetLocalBounds().Scaled(scale).Transformed(centerOfMassTransform)
}

func (shape *BoxShape) GetInnerRadius() float32 {
	return math32.Min(shape.M_halfExtent[0], math32.Min(shape.M_halfExtent[1], shape.M_halfExtent[2]))
}

func (shape *BoxShape) GetVolume() float32 {
	return 8.0 * shape.M_halfExtent[0] * shape.M_halfExtent[1] * shape.M_halfExtent[2]
}

func (shape *BoxShape) GetMassProperties() MassProperties {
	p := MakeMassProperties()
	p.SetMassAndInertiaOfSolidBox(shape.M_halfExtent.Mul(2), shape.M_density)
	return p
}

func (shape *BoxShape) GetMaterial(subShapeID SubShapeID) PhysicsMaterial {
	if shape.M_material != nil {
		return shape.M_material
	}
	return PhysicsMaterialDefault
}

func (shape *BoxShape) GetSubShapeUserData(subShapeID SubShapeID) uint64 {
	return shape.M_userData
}

func (shape *BoxShape) GetSubShapeTransformedShape(subShapeID SubShapeID, positionCOM mgl32.Vec3, rotation mgl32.Quat, scale mgl32.Vec3) (TransformedShape, SubShapeID) {
	ts := MakeTransformedShape(positionCOM, rotation, shape)
	ts.SetShapeScale(scale)
	return ts, subShapeID
}

/// The face is selected by the axis on which the point is proportionally
/// furthest out.
func (shape *BoxShape) GetSurfaceNormal(subShapeID SubShapeID, localSurfacePosition mgl32.Vec3) mgl32.Vec3 {
	bestAxis := 0
	bestRatio := float32(-1)
	for axis := 0; axis < 3; axis++ {
		ratio := math32.Abs(localSurfacePosition[axis]) / shape.M_halfExtent[axis]
		if ratio > bestRatio {
			bestRatio = ratio
			bestAxis = axis
		}
	}

	normal := mgl32.Vec3{}
	if localSurfacePosition[bestAxis] >= 0 {
		normal[bestAxis] = 1
	} else {
		normal[bestAxis] = -1
	}
	return normal
}

/// Slab test against the box [-halfExtent, halfExtent]. Returns the entry
/// fraction; a ray starting inside hits at fraction 0.
func rayVsBox(ray RayCast, halfExtent mgl32.Vec3) (float32, bool) {
	tMin := float32(-math32.MaxFloat32)
	tMax := float32(math32.MaxFloat32)

	for axis := 0; axis < 3; axis++ {
		if math32.Abs(ray.Direction[axis]) < 1.0e-12 {
			if ray.Origin[axis] < -halfExtent[axis] || ray.Origin[axis] > halfExtent[axis] {
				return 0, false
			}
			continue
		}

		t1 := (-halfExtent[axis] - ray.Origin[axis]) / ray.Direction[axis]
		t2 := (halfExtent[axis] - ray.Origin[axis]) / ray.Direction[axis]
		if t1 > t2 {
			t1, t2 = t2, t1
		}
		tMin = math32.Max(tMin, t1)
		tMax = math32.Min(tMax, t2)
		if tMin > tMax {
			return 0, false
		}
	}

	if tMax < 0 {
		return 0, false
	}
	return math32.Max(tMin, 0), true
}

func (shape *BoxShape) CastRay(ray RayCast, subShapeIDCreator SubShapeIDCreator, hit *RayCastResult) bool {
	fraction, ok := rayVsBox(ray, shape.M_halfExtent)
	if !ok || fraction >= hit.Fraction {
		return false
	}
	hit.Fraction = fraction
	hit.SubShapeID2 = subShapeIDCreator.GetID()
	return true
}

func (shape *BoxShape) CastRayWithCollector(ray RayCast, settings RayCastSettings, subShapeIDCreator SubShapeIDCreator, collector CastRayCollector) {
	fraction, ok := rayVsBox(ray, shape.M_halfExtent)
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

func (shape *BoxShape) CollidePoint(point mgl32.Vec3, subShapeIDCreator SubShapeIDCreator, collector CollidePointCollector) {
	abs := Vec3Abs(point)
	if abs[0] <= shape.M_halfExtent[0] && abs[1] <= shape.M_halfExtent[1] && abs[2] <= shape.M_halfExtent[2] {
		collector.AddHit(CollidePointResult{SubShapeID2: subShapeIDCreator.GetID()})
	}
}

func (shape *BoxShape) CastShape(shapeCast ShapeCast, settings ShapeCastSettings, scale mgl32.Vec3, filter ShapeFilter, centerOfMassTransform2 mgl32.Mat4, subShapeIDCreator1 SubShapeIDCreator, subShapeIDCreator2 SubShapeIDCreator, collector CastShapeCollector) {
	if _, ok := shapeCast.Shape.(*SphereShape); ok {
		CastSphereVsBox(shapeCast, settings, shape, scale, filter, centerOfMassTransform2, subShapeIDCreator1, subShapeIDCreator2, collector)
	}
}

func (shape *BoxShape) CollectTransformedShapes(box AABox, positionCOM mgl32.Vec3, rotation mgl32.Quat, scale mgl32.Vec3, subShapeIDCreator SubShapeIDCreator, collector TransformedShapeCollector) {
	bounds := shape.GetWorldSpaceBounds(Mat4RotationTranslation(rotation, positionCOM), scale)
	if !box.Overlaps(bounds) {
		return
	}
	ts := MakeTransformedShape(positionCOM, rotation, shape)
	ts.SetShapeScale(scale)
	collector.AddHit(ts)
}

func (shape *BoxShape) TransformShape(centerOfMassTransform mgl32.Mat4, collector TransformedShapeCollector) {
	position := Mat4GetTranslation(centerOfMassTransform)
	rotation := mgl32.Mat4ToQuat(centerOfMassTransform)
	collector.AddHit(MakeTransformedShape(position, rotation, shape))
}

func (shape *BoxShape) GetStatsRecursive(visitedShapes VisitedShapes) Stats {
	if visitedShapes[shape] {
		return Stats{}
	}
	visitedShapes[shape] = true
	return Stats{SizeBytes: uint64(unsafe.Sizeof(*shape)), NumTriangles: 12}
}

/// Boxes accept any scale with non-zero components.
func (shape *BoxShape) IsValidScale(scale mgl32.Vec3) bool {
	return ScaleIsValid(scale)
}

func (shape *BoxShape) SaveBinaryState(stream *StreamOut) {
	shape.saveBinaryState(stream)

	stream.WriteVec3(shape.M_halfExtent)
	stream.WriteFloat32(shape.M_density)
}

func (shape *BoxShape) RestoreBinaryState(stream *StreamIn) {
	shape.restoreBinaryState(stream)

	shape.M_halfExtent = stream.ReadVec3()
	shape.M_density = stream.ReadFloat32()
}

func (shape *BoxShape) SaveSubShapeState() []ShapeInterface {
	return nil
}

func (shape *BoxShape) RestoreSubShapeState(subShapes []ShapeInterface) {
	Assert(len(subShapes) == 0)
}

func (shape *BoxShape) Draw(renderer DebugRenderer, centerOfMassTransform mgl32.Mat4, scale mgl32.Vec3, color Color, useMaterialColors bool, wireframe bool) {
	if useMaterialColors {
		color = shape.GetMaterial(MakeSubShapeID()).GetDebugColor()
	}
	renderer.DrawBox(centerOfMassTransform, shape.getScaledHalfExtent(scale), color, wireframe)
}

///////////////////////////////////////////////////////////////////////////////
// Submerged volume
///////////////////////////////////////////////////////////////////////////////

/// Box surface triangulation: corner index bit 0 = +x, bit 1 = +y, bit 2 = +z.
var boxTriangles = [12][3]int{
	{0, 1, 3}, {0, 3, 2}, // z-
	{4, 6, 7}, {4, 7, 5}, // z+
	{0, 2, 6}, {0, 6, 4}, // x-
	{1, 5, 7}, {1, 7, 3}, // x+
	{0, 4, 5}, {0, 5, 1}, // y-
	{2, 3, 7}, {2, 7, 6}, // y+
}

func tetraVolumeAndCentroid(a, b, c, d mgl32.Vec3) (float32, mgl32.Vec3) {
	volume := math32.Abs(b.Sub(a).Dot(c.Sub(a).Cross(d.Sub(a)))) / 6.0
	centroid := a.Add(b).Add(c).Add(d).Mul(0.25)
	return volume, centroid
}

/// Intersection of edge from a (below) to b (above) with the surface.
func planeEdgeIntersection(a, b mgl32.Vec3, distA, distB float32) mgl32.Vec3 {
	t := distA / (distA - distB)
	return a.Add(b.Sub(a).Mul(t))
}

/// Volume and centroid of the part of a tetrahedron below the surface. The
/// vertices are classified by their signed plane distance; the four cases
/// (0..4 vertices below) are handled by clipping edges against the surface.
func tetraSubmergedVolume(v [4]mgl32.Vec3, dist [4]float32) (float32, mgl32.Vec3) {
	var below, above []int
	for i := 0; i < 4; i++ {
		if dist[i] < 0 {
			below = append(below, i)
		} else {
			above = append(above, i)
		}
	}

	switch len(below) {
	case 0:
		return 0, mgl32.Vec3{}

	case 4:
		return tetraVolumeAndCentroid(v[0], v[1], v[2], v[3])

	case 1:
		// Corner tetrahedron below the surface
		i := below[0]
		p0 := planeEdgeIntersection(v[i], v[above[0]], dist[i], dist[above[0]])
		p1 := planeEdgeIntersection(v[i], v[above[1]], dist[i], dist[above[1]])
		p2 := planeEdgeIntersection(v[i], v[above[2]], dist[i], dist[above[2]])
		return tetraVolumeAndCentroid(v[i], p0, p1, p2)

	case 3:
		// Complement of the corner tetrahedron above the surface
		i := above[0]
		p0 := planeEdgeIntersection(v[below[0]], v[i], dist[below[0]], dist[i])
		p1 := planeEdgeIntersection(v[below[1]], v[i], dist[below[1]], dist[i])
		p2 := planeEdgeIntersection(v[below[2]], v[i], dist[below[2]], dist[i])

		fullVolume, fullCentroid := tetraVolumeAndCentroid(v[0], v[1], v[2], v[3])
		cornerVolume, cornerCentroid := tetraVolumeAndCentroid(v[i], p0, p1, p2)

		volume := fullVolume - cornerVolume
		if volume < FloatEpsilon {
			return 0, mgl32.Vec3{}
		}
		centroid := fullCentroid.Mul(fullVolume).Sub(cornerCentroid.Mul(cornerVolume)).Mul(1.0 / volume)
		return volume, centroid

	default:
		// Two below, two above: the submerged part is a wedge, split into
		// three tetrahedra
		a, b := below[0], below[1]
		c, d := above[0], above[1]
		pac := planeEdgeIntersection(v[a], v[c], dist[a], dist[c])
		pad := planeEdgeIntersection(v[a], v[d], dist[a], dist[d])
		pbc := planeEdgeIntersection(v[b], v[c], dist[b], dist[c])
		pbd := planeEdgeIntersection(v[b], v[d], dist[b], dist[d])

		v0, c0 := tetraVolumeAndCentroid(v[a], pac, pad, v[b])
		v1, c1 := tetraVolumeAndCentroid(v[b], pac, pad, pbd)
		v2, c2 := tetraVolumeAndCentroid(v[b], pac, pbd, pbc)

		volume := v0 + v1 + v2
		if volume < FloatEpsilon {
			return 0, mgl32.Vec3{}
		}
		centroid := c0.Mul(v0).Add(c1.Mul(v1)).Add(c2.Mul(v2)).Mul(1.0 / volume)
		return volume, centroid
	}
}

/// The box is decomposed into 12 tetrahedra (apex at the center, one per
/// surface triangle); each is clipped against the surface.
func (shape *BoxShape) GetSubmergedVolume(centerOfMassTransform mgl32.Mat4, scale mgl32.Vec3, surface Plane) (totalVolume float32, submergedVolume float32, centerOfBuoyancy mgl32.Vec3) {
	halfExtent := shape.getScaledHalfExtent(scale)
	totalVolume = 8.0 * halfExtent[0] * halfExtent[1] * halfExtent[2]

	var corners [8]mgl32.Vec3
	var cornerDist [8]float32
	for i := 0; i < 8; i++ {
		local := mgl32.Vec3{-halfExtent[0], -halfExtent[1], -halfExtent[2]}
		if i&1 != 0 {
			local[0] = halfExtent[0]
		}
		if i&2 != 0 {
			local[1] = halfExtent[1]
		}
		if i&4 != 0 {
			local[2] = halfExtent[2]
		}
		corners[i] = Mat4TransformPoint(centerOfMassTransform, local)
		cornerDist[i] = surface.SignedDistance(corners[i])
	}

	center := Mat4GetTranslation(centerOfMassTransform)
	centerDist := surface.SignedDistance(center)

	weightedCentroid := mgl32.Vec3{}
	for _, triangle := range boxTriangles {
		vertices := [4]mgl32.Vec3{center, corners[triangle[0]], corners[triangle[1]], corners[triangle[2]]}
		distances := [4]float32{centerDist, cornerDist[triangle[0]], cornerDist[triangle[1]], cornerDist[triangle[2]]}

		volume, centroid := tetraSubmergedVolume(vertices, distances)
		submergedVolume += volume
		weightedCentroid = weightedCentroid.Add(centroid.Mul(volume))
	}

	if submergedVolume > FloatEpsilon {
		centerOfBuoyancy = weightedCentroid.Mul(1.0 / submergedVolume)
	} else {
		centerOfBuoyancy = center
	}
	return totalVolume, submergedVolume, centerOfBuoyancy
}
