package jolt

///////////////////////////////////////////////////////////////////////////////
///////////////////////////////////////////////////////////////////////////////
// Core.h
///////////////////////////////////////////////////////////////////////////////
///////////////////////////////////////////////////////////////////////////////

func Assert(condition bool) {
	if !condition {
		panic("Assertion failed")
	}
}
