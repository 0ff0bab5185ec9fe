package jolt

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

///////////////////////////////////////////////////////////////////////////////
///////////////////////////////////////////////////////////////////////////////
// AABox.h
///////////////////////////////////////////////////////////////////////////////
///////////////////////////////////////////////////////////////////////////////

/// An axis aligned bounding box.
type AABox struct {
	Min mgl32.Vec3
	Max mgl32.Vec3
}

func MakeAABox(min mgl32.Vec3, max mgl32.Vec3) AABox {
	return AABox{Min: min, Max: max}
}

func MakeAABoxFromCenterAndExtent(center mgl32.Vec3, extent mgl32.Vec3) AABox {
	return AABox{Min: center.Sub(extent), Max: center.Add(extent)}
}

/// An invalid box that contains nothing; encapsulating a point makes it valid.
func MakeEmptyAABox() AABox {
	return AABox{
		Min: mgl32.Vec3{math32.MaxFloat32, math32.MaxFloat32, math32.MaxFloat32},
		Max: mgl32.Vec3{-math32.MaxFloat32, -math32.MaxFloat32, -math32.MaxFloat32},
	}
}

func (box AABox) GetCenter() mgl32.Vec3 {
	return box.Min.Add(box.Max).Mul(0.5)
}

func (box AABox) GetExtent() mgl32.Vec3 {
	return box.Max.Sub(box.Min).Mul(0.5)
}

func (box *AABox) Encapsulate(point mgl32.Vec3) {
	box.Min = Vec3Min(box.Min, point)
	box.Max = Vec3Max(box.Max, point)
}

func (box AABox) Contains(point mgl32.Vec3) bool {
	for i := 0; i < 3; i++ {
		if point[i] < box.Min[i] || point[i] > box.Max[i] {
			return false
		}
	}
	return true
}

func (box AABox) Overlaps(other AABox) bool {
	for i := 0; i < 3; i++ {
		if box.Min[i] > other.Max[i] || box.Max[i] < other.Min[i] {
			return false
		}
	}
	return true
}

/// Scale the box componentwise. Negative scale components flip the affected
/// min/max pair.
func (box AABox) Scaled(scale mgl32.Vec3) AABox {
	a := Vec3MulComponents(box.Min, scale)
	b := Vec3MulComponents(box.Max, scale)
	return AABox{Min: Vec3Min(a, b), Max: Vec3Max(a, b)}
}

/// Compute the axis aligned box that encloses this box transformed by a
/// rotation + translation matrix.
func (box AABox) Transformed(transform mgl32.Mat4) AABox {
	center := Mat4TransformPoint(transform, box.GetCenter())
	extent := box.GetExtent()

	newExtent := mgl32.Vec3{}
	for row := 0; row < 3; row++ {
		value := float32(0)
		for col := 0; col < 3; col++ {
			value += math32.Abs(transform.At(row, col)) * extent[col]
		}
		newExtent[row] = value
	}

	return AABox{Min: center.Sub(newExtent), Max: center.Add(newExtent)}
}
