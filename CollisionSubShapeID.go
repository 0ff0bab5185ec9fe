package jolt

///////////////////////////////////////////////////////////////////////////////
///////////////////////////////////////////////////////////////////////////////
// SubShapeID.h
///////////////////////////////////////////////////////////////////////////////
///////////////////////////////////////////////////////////////////////////////

/// A SubShapeID is an opaque bit path that identifies a leaf inside a
/// (possibly decorated or compound) shape graph. Shapes that add no structure,
/// like the rotated/translated decorator, consume zero bits and pass the id
/// through unchanged.
type SubShapeID struct {
	M_value uint32
}

func MakeSubShapeID() SubShapeID {
	return SubShapeID{}
}

func (id SubShapeID) GetValue() uint32 {
	return id.M_value
}

/// Builds a SubShapeID while walking down a shape graph. Passed by value so a
/// child's pushes do not leak into a sibling's path.
type SubShapeIDCreator struct {
	M_id         uint32
	M_currentBit uint32
}

func MakeSubShapeIDCreator() SubShapeIDCreator {
	return SubShapeIDCreator{}
}

/// Append a value of the given number of bits to the path and return the new
/// creator.
func (creator SubShapeIDCreator) PushID(value uint32, bits uint32) SubShapeIDCreator {
	Assert(creator.M_currentBit+bits <= 32)
	creator.M_id |= value << creator.M_currentBit
	creator.M_currentBit += bits
	return creator
}

func (creator SubShapeIDCreator) GetID() SubShapeID {
	return SubShapeID{M_value: creator.M_id}
}

func (creator SubShapeIDCreator) GetNumBitsWritten() uint32 {
	return creator.M_currentBit
}
