package jolt

import (
	"encoding/binary"
	"io"

	"github.com/go-gl/mathgl/mgl32"
)

///////////////////////////////////////////////////////////////////////////////
///////////////////////////////////////////////////////////////////////////////
// StreamOut.h / StreamIn.h
///////////////////////////////////////////////////////////////////////////////
///////////////////////////////////////////////////////////////////////////////

/// Binary output stream used to persist shape state. All values are written
/// little endian. The first write error is sticky; subsequent writes become
/// no-ops.
type StreamOut struct {
	writer io.Writer
	err    error
}

func NewStreamOut(writer io.Writer) *StreamOut {
	return &StreamOut{writer: writer}
}

func (stream *StreamOut) write(data interface{}) {
	if stream.err != nil {
		return
	}
	stream.err = binary.Write(stream.writer, binary.LittleEndian, data)
}

func (stream *StreamOut) WriteUint8(value uint8) {
	stream.write(value)
}

func (stream *StreamOut) WriteUint32(value uint32) {
	stream.write(value)
}

func (stream *StreamOut) WriteUint64(value uint64) {
	stream.write(value)
}

func (stream *StreamOut) WriteFloat32(value float32) {
	stream.write(value)
}

func (stream *StreamOut) WriteVec3(value mgl32.Vec3) {
	stream.write([3]float32{value[0], value[1], value[2]})
}

/// Quaternions are written as 4 floats in x, y, z, w order.
func (stream *StreamOut) WriteQuat(value mgl32.Quat) {
	stream.write([4]float32{value.V[0], value.V[1], value.V[2], value.W})
}

func (stream *StreamOut) IsFailed() bool {
	return stream.err != nil
}

func (stream *StreamOut) Error() error {
	return stream.err
}

/// Binary input stream, the counterpart of StreamOut. Reads past the first
/// error return zero values.
type StreamIn struct {
	reader io.Reader
	err    error
}

func NewStreamIn(reader io.Reader) *StreamIn {
	return &StreamIn{reader: reader}
}

func (stream *StreamIn) read(data interface{}) {
	if stream.err != nil {
		return
	}
	stream.err = binary.Read(stream.reader, binary.LittleEndian, data)
}

func (stream *StreamIn) ReadUint8() uint8 {
	var value uint8
	stream.read(&value)
	return value
}

func (stream *StreamIn) ReadUint32() uint32 {
	var value uint32
	stream.read(&value)
	return value
}

func (stream *StreamIn) ReadUint64() uint64 {
	var value uint64
	stream.read(&value)
	return value
}

func (stream *StreamIn) ReadFloat32() float32 {
	var value float32
	stream.read(&value)
	return value
}

func (stream *StreamIn) ReadVec3() mgl32.Vec3 {
	var value [3]float32
	stream.read(&value)
	return mgl32.Vec3{value[0], value[1], value[2]}
}

func (stream *StreamIn) ReadQuat() mgl32.Quat {
	var value [4]float32
	stream.read(&value)
	return mgl32.Quat{W: value[3], V: mgl32.Vec3{value[0], value[1], value[2]}}
}

func (stream *StreamIn) IsFailed() bool {
	return stream.err != nil
}

func (stream *StreamIn) Error() error {
	return stream.err
}
