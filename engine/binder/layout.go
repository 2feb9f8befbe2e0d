package binder

import (
	"errors"
	"fmt"

	"github.com/Carmen-Shannon/oxy-gl/engine/gfx"
	"github.com/cogentcore/webgpu/wgpu"
)

type formatKey struct {
	dataType gfx.DataType
	size     int32
}

// vertexFormatMap maps a component type and count to the matching WebGPU vertex format.
var vertexFormatMap = map[formatKey]wgpu.VertexFormat{
	{gfx.Float, 1}:       wgpu.VertexFormatFloat32,
	{gfx.Float, 2}:       wgpu.VertexFormatFloat32x2,
	{gfx.Float, 3}:       wgpu.VertexFormatFloat32x3,
	{gfx.Float, 4}:       wgpu.VertexFormatFloat32x4,
	{gfx.Int, 1}:         wgpu.VertexFormatSint32,
	{gfx.Int, 2}:         wgpu.VertexFormatSint32x2,
	{gfx.Int, 3}:         wgpu.VertexFormatSint32x3,
	{gfx.Int, 4}:         wgpu.VertexFormatSint32x4,
	{gfx.UnsignedInt, 1}: wgpu.VertexFormatUint32,
	{gfx.UnsignedInt, 2}: wgpu.VertexFormatUint32x2,
	{gfx.UnsignedInt, 3}: wgpu.VertexFormatUint32x3,
	{gfx.UnsignedInt, 4}: wgpu.VertexFormatUint32x4,
	{gfx.HalfFloat, 2}:   wgpu.VertexFormatFloat16x2,
	{gfx.HalfFloat, 4}:   wgpu.VertexFormatFloat16x4,
}

func (s *attributeSource) VertexBufferLayout(slot uint32) (wgpu.VertexBufferLayout, bool) {
	format, ok := vertexFormatMap[formatKey{s.dataType, s.size}]
	if !ok {
		return wgpu.VertexBufferLayout{}, false
	}

	// zero stride means tightly packed in GL, WebGPU wants it spelled out
	stride := uint64(s.stride)
	if stride == 0 {
		stride = uint64(s.size) * uint64(s.dataType.Size())
	}

	return wgpu.VertexBufferLayout{
		ArrayStride: stride,
		StepMode:    wgpu.VertexStepModeVertex,
		Attributes: []wgpu.VertexAttribute{
			{
				Format:         format,
				Offset:         uint64(s.ByteOffset()),
				ShaderLocation: slot,
			},
		},
	}, true
}

// InterleavedLayout merges attributes that read one interleaved buffer into a single layout.
// Shader locations are assigned in argument order starting at first.
//
// Parameters:
//   - first: the shader location of the first source
//   - sources: the attributes, all with the same non-zero stride
//
// Returns:
//   - wgpu.VertexBufferLayout: the merged layout
//   - error: error if strides differ or an attribute has no WebGPU vertex format
func InterleavedLayout(first uint32, sources ...AttributeSource) (wgpu.VertexBufferLayout, error) {
	if len(sources) == 0 {
		return wgpu.VertexBufferLayout{}, errors.New("no attributes")
	}
	stride := sources[0].Stride()
	if stride == 0 {
		return wgpu.VertexBufferLayout{}, errors.New("interleaved attributes need an explicit stride")
	}

	attrs := make([]wgpu.VertexAttribute, 0, len(sources))
	for i, src := range sources {
		if src.Stride() != stride {
			return wgpu.VertexBufferLayout{}, fmt.Errorf("attribute %d: stride %d, want %d", i, src.Stride(), stride)
		}
		l, ok := src.VertexBufferLayout(first + uint32(i))
		if !ok {
			return wgpu.VertexBufferLayout{}, fmt.Errorf("attribute %d: no vertex format for %d x 0x%04X", i, src.Size(), uint32(src.DataType()))
		}
		attrs = append(attrs, l.Attributes...)
	}

	return wgpu.VertexBufferLayout{
		ArrayStride: uint64(stride),
		StepMode:    wgpu.VertexStepModeVertex,
		Attributes:  attrs,
	}, nil
}
