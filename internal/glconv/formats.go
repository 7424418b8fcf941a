package glconv

import (
	"fmt"

	"github.com/gogpu/gputypes"

	"github.com/gogpu/glexec/glapi"
)

// VertexAttrib describes how a vertex format is fed to
// glVertexAttribPointer / glVertexAttribIPointer.
type VertexAttrib struct {
	Components int32
	Type       glapi.Enum
	Size       uint32

	// Normalized is set for unorm/snorm formats.
	Normalized bool

	// Integer formats are read by the shader as integers and must go
	// through glVertexAttribIPointer.
	Integer bool
}

var vertexFormats = map[gputypes.VertexFormat]VertexAttrib{
	gputypes.VertexFormatUint8x2:   {2, glapi.UNSIGNED_BYTE, 2, false, true},
	gputypes.VertexFormatUint8x4:   {4, glapi.UNSIGNED_BYTE, 4, false, true},
	gputypes.VertexFormatSint8x2:   {2, glapi.BYTE, 2, false, true},
	gputypes.VertexFormatSint8x4:   {4, glapi.BYTE, 4, false, true},
	gputypes.VertexFormatUnorm8x2:  {2, glapi.UNSIGNED_BYTE, 2, true, false},
	gputypes.VertexFormatUnorm8x4:  {4, glapi.UNSIGNED_BYTE, 4, true, false},
	gputypes.VertexFormatSnorm8x2:  {2, glapi.BYTE, 2, true, false},
	gputypes.VertexFormatSnorm8x4:  {4, glapi.BYTE, 4, true, false},
	gputypes.VertexFormatUint16x2:  {2, glapi.UNSIGNED_SHORT, 4, false, true},
	gputypes.VertexFormatUint16x4:  {4, glapi.UNSIGNED_SHORT, 8, false, true},
	gputypes.VertexFormatSint16x2:  {2, glapi.SHORT, 4, false, true},
	gputypes.VertexFormatSint16x4:  {4, glapi.SHORT, 8, false, true},
	gputypes.VertexFormatUnorm16x2: {2, glapi.UNSIGNED_SHORT, 4, true, false},
	gputypes.VertexFormatUnorm16x4: {4, glapi.UNSIGNED_SHORT, 8, true, false},
	gputypes.VertexFormatSnorm16x2: {2, glapi.SHORT, 4, true, false},
	gputypes.VertexFormatSnorm16x4: {4, glapi.SHORT, 8, true, false},
	gputypes.VertexFormatFloat16x2: {2, glapi.HALF_FLOAT, 4, false, false},
	gputypes.VertexFormatFloat16x4: {4, glapi.HALF_FLOAT, 8, false, false},
	gputypes.VertexFormatFloat32:   {1, glapi.FLOAT, 4, false, false},
	gputypes.VertexFormatFloat32x2: {2, glapi.FLOAT, 8, false, false},
	gputypes.VertexFormatFloat32x3: {3, glapi.FLOAT, 12, false, false},
	gputypes.VertexFormatFloat32x4: {4, glapi.FLOAT, 16, false, false},
	gputypes.VertexFormatUint32:    {1, glapi.UNSIGNED_INT, 4, false, true},
	gputypes.VertexFormatUint32x2:  {2, glapi.UNSIGNED_INT, 8, false, true},
	gputypes.VertexFormatUint32x3:  {3, glapi.UNSIGNED_INT, 12, false, true},
	gputypes.VertexFormatUint32x4:  {4, glapi.UNSIGNED_INT, 16, false, true},
	gputypes.VertexFormatSint32:    {1, glapi.INT, 4, false, true},
	gputypes.VertexFormatSint32x2:  {2, glapi.INT, 8, false, true},
	gputypes.VertexFormatSint32x3:  {3, glapi.INT, 12, false, true},
	gputypes.VertexFormatSint32x4:  {4, glapi.INT, 16, false, true},
}

// VertexFormat returns the attribute description of f.
func VertexFormat(f gputypes.VertexFormat) (VertexAttrib, error) {
	a, ok := vertexFormats[f]
	if !ok {
		return VertexAttrib{}, fmt.Errorf("%w: vertex format %v", ErrUnsupported, f)
	}
	return a, nil
}

// PixelFormat describes the client-side layout of a texture format for
// glTexSubImage* and the sized internal format used for image binding.
type PixelFormat struct {
	Format   glapi.Enum
	Type     glapi.Enum
	Internal glapi.Enum

	// Size is the size of one pixel in bytes.
	Size uint32
}

var textureFormats = map[gputypes.TextureFormat]PixelFormat{
	gputypes.TextureFormatR8Unorm:             {glapi.RED, glapi.UNSIGNED_BYTE, glapi.R8, 1},
	gputypes.TextureFormatR8Snorm:             {glapi.RED, glapi.BYTE, glapi.R8_SNORM, 1},
	gputypes.TextureFormatR8Uint:              {glapi.RED_INTEGER, glapi.UNSIGNED_BYTE, glapi.R8UI, 1},
	gputypes.TextureFormatR8Sint:              {glapi.RED_INTEGER, glapi.BYTE, glapi.R8I, 1},
	gputypes.TextureFormatR16Uint:             {glapi.RED_INTEGER, glapi.UNSIGNED_SHORT, glapi.R16UI, 2},
	gputypes.TextureFormatR16Sint:             {glapi.RED_INTEGER, glapi.SHORT, glapi.R16I, 2},
	gputypes.TextureFormatR16Float:            {glapi.RED, glapi.HALF_FLOAT, glapi.R16F, 2},
	gputypes.TextureFormatRG8Unorm:            {glapi.RG, glapi.UNSIGNED_BYTE, glapi.RG8, 2},
	gputypes.TextureFormatR32Float:            {glapi.RED, glapi.FLOAT, glapi.R32F, 4},
	gputypes.TextureFormatR32Uint:             {glapi.RED_INTEGER, glapi.UNSIGNED_INT, glapi.R32UI, 4},
	gputypes.TextureFormatR32Sint:             {glapi.RED_INTEGER, glapi.INT, glapi.R32I, 4},
	gputypes.TextureFormatRG16Float:           {glapi.RG, glapi.HALF_FLOAT, glapi.RG16F, 4},
	gputypes.TextureFormatRGBA8Unorm:          {glapi.RGBA, glapi.UNSIGNED_BYTE, glapi.RGBA8, 4},
	gputypes.TextureFormatRGBA8UnormSrgb:      {glapi.RGBA, glapi.UNSIGNED_BYTE, glapi.SRGB8_ALPHA8, 4},
	gputypes.TextureFormatRGBA8Snorm:          {glapi.RGBA, glapi.BYTE, glapi.RGBA8_SNORM, 4},
	gputypes.TextureFormatRGBA8Uint:           {glapi.RGBA_INTEGER, glapi.UNSIGNED_BYTE, glapi.RGBA8UI, 4},
	gputypes.TextureFormatRGBA8Sint:           {glapi.RGBA_INTEGER, glapi.BYTE, glapi.RGBA8I, 4},
	gputypes.TextureFormatBGRA8Unorm:          {glapi.BGRA, glapi.UNSIGNED_BYTE, glapi.RGBA8, 4},
	gputypes.TextureFormatBGRA8UnormSrgb:      {glapi.BGRA, glapi.UNSIGNED_BYTE, glapi.SRGB8_ALPHA8, 4},
	gputypes.TextureFormatRG32Float:           {glapi.RG, glapi.FLOAT, glapi.RG32F, 8},
	gputypes.TextureFormatRG32Uint:            {glapi.RG_INTEGER, glapi.UNSIGNED_INT, glapi.RG32UI, 8},
	gputypes.TextureFormatRG32Sint:            {glapi.RG_INTEGER, glapi.INT, glapi.RG32I, 8},
	gputypes.TextureFormatRGBA16Float:         {glapi.RGBA, glapi.HALF_FLOAT, glapi.RGBA16F, 8},
	gputypes.TextureFormatRGBA16Uint:          {glapi.RGBA_INTEGER, glapi.UNSIGNED_SHORT, glapi.RGBA16UI, 8},
	gputypes.TextureFormatRGBA16Sint:          {glapi.RGBA_INTEGER, glapi.SHORT, glapi.RGBA16I, 8},
	gputypes.TextureFormatRGBA32Float:         {glapi.RGBA, glapi.FLOAT, glapi.RGBA32F, 16},
	gputypes.TextureFormatRGBA32Uint:          {glapi.RGBA_INTEGER, glapi.UNSIGNED_INT, glapi.RGBA32UI, 16},
	gputypes.TextureFormatRGBA32Sint:          {glapi.RGBA_INTEGER, glapi.INT, glapi.RGBA32I, 16},
	gputypes.TextureFormatDepth16Unorm:        {glapi.DEPTH_COMPONENT, glapi.UNSIGNED_SHORT, glapi.DEPTH_COMPONENT16, 2},
	gputypes.TextureFormatDepth24Plus:         {glapi.DEPTH_COMPONENT, glapi.UNSIGNED_INT, glapi.DEPTH_COMPONENT24, 4},
	gputypes.TextureFormatDepth24PlusStencil8: {glapi.DEPTH_STENCIL, glapi.UNSIGNED_INT_24_8, glapi.DEPTH24_STENCIL8, 4},
	gputypes.TextureFormatDepth32Float:        {glapi.DEPTH_COMPONENT, glapi.FLOAT, glapi.DEPTH_COMPONENT32F, 4},
}

// TextureFormat returns the pixel layout of f.
func TextureFormat(f gputypes.TextureFormat) (PixelFormat, error) {
	p, ok := textureFormats[f]
	if !ok {
		return PixelFormat{}, fmt.Errorf("%w: texture format %v", ErrUnsupported, f)
	}
	return p, nil
}
