package glconv

import (
	"testing"

	"github.com/gogpu/gputypes"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gogpu/glexec/glapi"
)

func TestBlendFactor(t *testing.T) {
	tests := []struct {
		in   gputypes.BlendFactor
		want glapi.Enum
	}{
		{gputypes.BlendFactorZero, glapi.ZERO},
		{gputypes.BlendFactorOne, glapi.ONE},
		{gputypes.BlendFactorSrcAlpha, glapi.SRC_ALPHA},
		{gputypes.BlendFactorOneMinusSrcAlpha, glapi.ONE_MINUS_SRC_ALPHA},
		{gputypes.BlendFactorConstant, glapi.CONSTANT_COLOR},
	}
	for _, tt := range tests {
		got, err := BlendFactor(tt.in)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got)
	}
}

func TestCompareFunction(t *testing.T) {
	got, err := CompareFunction(gputypes.CompareFunctionLess)
	require.NoError(t, err)
	assert.Equal(t, glapi.LESS, got)

	got, err = CompareFunction(gputypes.CompareFunctionAlways)
	require.NoError(t, err)
	assert.Equal(t, glapi.ALWAYS, got)
}

func TestCullFace(t *testing.T) {
	got, err := CullFace(gputypes.CullModeBack)
	require.NoError(t, err)
	assert.Equal(t, glapi.BACK, got)

	_, err = CullFace(gputypes.CullModeNone)
	assert.ErrorIs(t, err, ErrUnsupported)
}

func TestPrimitiveMode(t *testing.T) {
	tests := []struct {
		in   gputypes.PrimitiveTopology
		want glapi.Enum
	}{
		{gputypes.PrimitiveTopologyPointList, glapi.POINTS},
		{gputypes.PrimitiveTopologyLineList, glapi.LINES},
		{gputypes.PrimitiveTopologyLineStrip, glapi.LINE_STRIP},
		{gputypes.PrimitiveTopologyTriangleList, glapi.TRIANGLES},
		{gputypes.PrimitiveTopologyTriangleStrip, glapi.TRIANGLE_STRIP},
	}
	for _, tt := range tests {
		got, err := PrimitiveMode(tt.in)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got)
	}
}

func TestIndexType(t *testing.T) {
	typ, size, err := IndexType(gputypes.IndexFormatUint16)
	require.NoError(t, err)
	assert.Equal(t, glapi.UNSIGNED_SHORT, typ)
	assert.Equal(t, uint32(2), size)

	typ, size, err = IndexType(gputypes.IndexFormatUint32)
	require.NoError(t, err)
	assert.Equal(t, glapi.UNSIGNED_INT, typ)
	assert.Equal(t, uint32(4), size)
}

func TestVertexFormat(t *testing.T) {
	tests := []struct {
		name string
		in   gputypes.VertexFormat
		want VertexAttrib
	}{
		{"float32x3", gputypes.VertexFormatFloat32x3, VertexAttrib{Components: 3, Type: glapi.FLOAT, Size: 12}},
		{"unorm8x4 is normalized", gputypes.VertexFormatUnorm8x4, VertexAttrib{Components: 4, Type: glapi.UNSIGNED_BYTE, Size: 4, Normalized: true}},
		{"uint32x2 is integer", gputypes.VertexFormatUint32x2, VertexAttrib{Components: 2, Type: glapi.UNSIGNED_INT, Size: 8, Integer: true}},
		{"float16x4", gputypes.VertexFormatFloat16x4, VertexAttrib{Components: 4, Type: glapi.HALF_FLOAT, Size: 8}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := VertexFormat(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestVertexFormatSizeMatchesComponents(t *testing.T) {
	typeSize := map[glapi.Enum]uint32{
		glapi.BYTE: 1, glapi.UNSIGNED_BYTE: 1,
		glapi.SHORT: 2, glapi.UNSIGNED_SHORT: 2, glapi.HALF_FLOAT: 2,
		glapi.INT: 4, glapi.UNSIGNED_INT: 4, glapi.FLOAT: 4,
	}
	for f, a := range vertexFormats {
		assert.Equal(t, typeSize[a.Type]*uint32(a.Components), a.Size, "format %v", f)
		assert.False(t, a.Normalized && a.Integer, "format %v", f)
	}
}

func TestTextureFormat(t *testing.T) {
	p, err := TextureFormat(gputypes.TextureFormatRGBA8Unorm)
	require.NoError(t, err)
	assert.Equal(t, PixelFormat{glapi.RGBA, glapi.UNSIGNED_BYTE, glapi.RGBA8, 4}, p)

	p, err = TextureFormat(gputypes.TextureFormatR8Unorm)
	require.NoError(t, err)
	assert.Equal(t, uint32(1), p.Size)

	_, err = TextureFormat(gputypes.TextureFormatUndefined)
	assert.ErrorIs(t, err, ErrUnsupported)
}
