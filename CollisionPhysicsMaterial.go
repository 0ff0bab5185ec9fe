package jolt

///////////////////////////////////////////////////////////////////////////////
///////////////////////////////////////////////////////////////////////////////
// PhysicsMaterial.h
///////////////////////////////////////////////////////////////////////////////
///////////////////////////////////////////////////////////////////////////////

/// Surface properties of (a part of) a shape. Decorator shapes never carry a
/// material of their own; they forward lookups to their inner shape.
type PhysicsMaterial interface {
	GetDebugName() string
	GetDebugColor() Color
}

type PhysicsMaterialSimple struct {
	Name  string
	Color Color
}

func NewPhysicsMaterialSimple(name string, color Color) *PhysicsMaterialSimple {
	return &PhysicsMaterialSimple{Name: name, Color: color}
}

func (material *PhysicsMaterialSimple) GetDebugName() string {
	return material.Name
}

func (material *PhysicsMaterialSimple) GetDebugColor() Color {
	return material.Color
}

/// Material returned for shapes that have no material assigned.
var PhysicsMaterialDefault PhysicsMaterial = &PhysicsMaterialSimple{Name: "Default", Color: ColorGrey}
