package jolt_test

import (
	"bytes"
	"testing"

	jolt "github.com/PappaNiels/JoltPhysics"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStreamRoundTrip(t *testing.T) {
	buffer := &bytes.Buffer{}

	out := jolt.NewStreamOut(buffer)
	out.WriteUint8(7)
	out.WriteUint32(123456)
	out.WriteUint64(1 << 40)
	out.WriteFloat32(3.25)
	out.WriteVec3(mgl32.Vec3{1, -2, 3})
	out.WriteQuat(rotZ90())
	require.False(t, out.IsFailed())

	in := jolt.NewStreamIn(buffer)
	assert.Equal(t, uint8(7), in.ReadUint8())
	assert.Equal(t, uint32(123456), in.ReadUint32())
	assert.Equal(t, uint64(1<<40), in.ReadUint64())
	assert.Equal(t, float32(3.25), in.ReadFloat32())
	assert.Equal(t, mgl32.Vec3{1, -2, 3}, in.ReadVec3())
	assert.True(t, jolt.QuatIsClose(rotZ90(), in.ReadQuat()))
	require.False(t, in.IsFailed())
}

func TestStreamInErrorIsSticky(t *testing.T) {
	in := jolt.NewStreamIn(bytes.NewBuffer([]byte{1, 2}))

	// Not enough bytes for a uint32
	assert.Equal(t, uint32(0), in.ReadUint32())
	require.True(t, in.IsFailed())
	require.Error(t, in.Error())

	// Later reads stay failed and return zero values
	assert.Equal(t, float32(0), in.ReadFloat32())
	assert.Equal(t, mgl32.Vec3{}, in.ReadVec3())
	assert.True(t, in.IsFailed())
}

type failingWriter struct{}

func (failingWriter) Write(data []byte) (int, error) {
	return 0, assert.AnError
}

func TestStreamOutErrorIsSticky(t *testing.T) {
	out := jolt.NewStreamOut(failingWriter{})
	out.WriteUint8(1)
	require.True(t, out.IsFailed())
	out.WriteFloat32(2)
	assert.True(t, out.IsFailed())
	assert.Error(t, out.Error())
}
