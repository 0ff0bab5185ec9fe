package jolt

import (
	"github.com/go-gl/mathgl/mgl32"
)

///////////////////////////////////////////////////////////////////////////////
///////////////////////////////////////////////////////////////////////////////
// MassProperties.h
///////////////////////////////////////////////////////////////////////////////
///////////////////////////////////////////////////////////////////////////////

/// Describes the mass and inertia properties of a shape. The inertia tensor is
/// expressed about the center of mass.
type MassProperties struct {
	/// Mass in kg.
	Mass float32

	/// Inertia tensor in kg m^2.
	Inertia mgl32.Mat3
}

func MakeMassProperties() MassProperties {
	return MassProperties{Mass: 0, Inertia: mgl32.Mat3{}}
}

/// Set the mass and inertia of a solid box with the given full extent.
func (p *MassProperties) SetMassAndInertiaOfSolidBox(size mgl32.Vec3, density float32) {
	p.Mass = size[0] * size[1] * size[2] * density

	sizeSq := Vec3MulComponents(size, size)
	factor := p.Mass / 12.0
	p.Inertia = mgl32.Mat3{
		factor * (sizeSq[1] + sizeSq[2]), 0, 0,
		0, factor * (sizeSq[0] + sizeSq[2]), 0,
		0, 0, factor * (sizeSq[0] + sizeSq[1]),
	}
}

/// Rotate the inertia tensor by a rotation matrix: I' = R I R^T. The mass is
/// unaffected; the tensor is about the center of mass so translation does not
/// enter into this.
func (p *MassProperties) Rotate(rotation mgl32.Mat3) {
	p.Inertia = rotation.Mul3(p.Inertia).Mul3(rotation.Transpose())
}
