// Package unaligned provides read-only views over packed arrays of
// fixed-width little-endian elements at arbitrary byte alignment.
//
// Chunk payloads in a quantized pool are windows into a memory-mapped
// file, so element boundaries carry no alignment guarantee. The view
// types here never assume native alignment: every accessor decodes
// through encoding/binary, which reads byte-wise.
package unaligned

import (
	"encoding/binary"
	"math"
)

// Float32s is a view over packed little-endian float32 values.
type Float32s struct {
	data []byte
}

// NewFloat32s wraps b. Trailing bytes that do not form a whole element
// are ignored.
func NewFloat32s(b []byte) Float32s {
	return Float32s{data: b[:len(b)-len(b)%4]}
}

// Len returns the number of elements.
func (s Float32s) Len() int { return len(s.data) / 4 }

// At returns the i-th element.
func (s Float32s) At(i int) float32 {
	return math.Float32frombits(binary.LittleEndian.Uint32(s.data[i*4:]))
}

// Decode copies all elements into a new slice.
func (s Float32s) Decode() []float32 {
	out := make([]float32, s.Len())
	for i := range out {
		out[i] = s.At(i)
	}
	return out
}

// Float64s is a view over packed little-endian float64 values.
type Float64s struct {
	data []byte
}

// NewFloat64s wraps b. Trailing bytes that do not form a whole element
// are ignored.
func NewFloat64s(b []byte) Float64s {
	return Float64s{data: b[:len(b)-len(b)%8]}
}

// Len returns the number of elements.
func (s Float64s) Len() int { return len(s.data) / 8 }

// At returns the i-th element.
func (s Float64s) At(i int) float64 {
	return math.Float64frombits(binary.LittleEndian.Uint64(s.data[i*8:]))
}

// Uint32s is a view over packed little-endian uint32 values.
type Uint32s struct {
	data []byte
}

// NewUint32s wraps b. Trailing bytes that do not form a whole element
// are ignored.
func NewUint32s(b []byte) Uint32s {
	return Uint32s{data: b[:len(b)-len(b)%4]}
}

// Len returns the number of elements.
func (s Uint32s) Len() int { return len(s.data) / 4 }

// At returns the i-th element.
func (s Uint32s) At(i int) uint32 {
	return binary.LittleEndian.Uint32(s.data[i*4:])
}

// Decode copies all elements into a new slice.
func (s Uint32s) Decode() []uint32 {
	out := make([]uint32, s.Len())
	for i := range out {
		out[i] = s.At(i)
	}
	return out
}

// Uint64s is a view over packed little-endian uint64 values.
type Uint64s struct {
	data []byte
}

// NewUint64s wraps b. Trailing bytes that do not form a whole element
// are ignored.
func NewUint64s(b []byte) Uint64s {
	return Uint64s{data: b[:len(b)-len(b)%8]}
}

// Len returns the number of elements.
func (s Uint64s) Len() int { return len(s.data) / 8 }

// At returns the i-th element.
func (s Uint64s) At(i int) uint64 {
	return binary.LittleEndian.Uint64(s.data[i*8:])
}

// Decode copies all elements into a new slice.
func (s Uint64s) Decode() []uint64 {
	out := make([]uint64, s.Len())
	for i := range out {
		out[i] = s.At(i)
	}
	return out
}

// PutFloat32 writes v as little-endian bytes at b[off:].
func PutFloat32(b []byte, off int, v float32) {
	binary.LittleEndian.PutUint32(b[off:], math.Float32bits(v))
}
