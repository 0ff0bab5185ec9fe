package jolt

import (
	"github.com/go-gl/mathgl/mgl32"
)

///////////////////////////////////////////////////////////////////////////////
///////////////////////////////////////////////////////////////////////////////
// DebugRenderer.h
///////////////////////////////////////////////////////////////////////////////
///////////////////////////////////////////////////////////////////////////////

/// An RGBA color used by the debug renderer.
type Color struct {
	R, G, B, A uint8
}

var (
	ColorWhite = Color{255, 255, 255, 255}
	ColorGrey  = Color{128, 128, 128, 255}
	ColorRed   = Color{255, 0, 0, 255}
	ColorGreen = Color{0, 255, 0, 255}
	ColorBlue  = Color{0, 0, 255, 255}
)

/// Implementations receive solid or wireframe primitives, already placed in
/// world space. Shapes call into this from their Draw method.
type DebugRenderer interface {
	DrawSphere(transform mgl32.Mat4, radius float32, color Color, wireframe bool)
	DrawBox(transform mgl32.Mat4, halfExtent mgl32.Vec3, color Color, wireframe bool)
}

var DebugRenderPrimitiveKind = struct {
	Sphere uint8
	Box    uint8
}{
	Sphere: 0,
	Box:    1,
}

/// A recorded debug renderer primitive.
type DebugRenderPrimitive struct {
	Kind       uint8
	Transform  mgl32.Mat4
	Radius     float32
	HalfExtent mgl32.Vec3
	Color      Color
	Wireframe  bool
}

/// DebugRendererRecorder buffers draw calls so they can be inspected or
/// forwarded to an actual renderer later. Not safe for concurrent use.
type DebugRendererRecorder struct {
	Primitives []DebugRenderPrimitive
}

func NewDebugRendererRecorder() *DebugRendererRecorder {
	return &DebugRendererRecorder{}
}

func (recorder *DebugRendererRecorder) DrawSphere(transform mgl32.Mat4, radius float32, color Color, wireframe bool) {
	recorder.Primitives = append(recorder.Primitives, DebugRenderPrimitive{
		Kind:      DebugRenderPrimitiveKind.Sphere,
		Transform: transform,
		Radius:    radius,
		Color:     color,
		Wireframe: wireframe,
	})
}

func (recorder *DebugRendererRecorder) DrawBox(transform mgl32.Mat4, halfExtent mgl32.Vec3, color Color, wireframe bool) {
	recorder.Primitives = append(recorder.Primitives, DebugRenderPrimitive{
		Kind:       DebugRenderPrimitiveKind.Box,
		Transform:  transform,
		HalfExtent: halfExtent,
		Color:      color,
		Wireframe:  wireframe,
	})
}
