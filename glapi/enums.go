package glapi

import "fmt"

// Error codes returned by GetError.
const (
	NO_ERROR                      Enum = 0
	INVALID_ENUM                  Enum = 0x0500
	INVALID_VALUE                 Enum = 0x0501
	INVALID_OPERATION             Enum = 0x0502
	STACK_OVERFLOW                Enum = 0x0503
	STACK_UNDERFLOW               Enum = 0x0504
	OUT_OF_MEMORY                 Enum = 0x0505
	INVALID_FRAMEBUFFER_OPERATION Enum = 0x0506
	CONTEXT_LOST                  Enum = 0x0507
)

// Capabilities.
const (
	BLEND        Enum = 0x0BE2
	CULL_FACE    Enum = 0x0B44
	DEPTH_TEST   Enum = 0x0B71
	SCISSOR_TEST Enum = 0x0C11
	DEPTH_CLAMP  Enum = 0x864F
)

// Blend factors and equations.
const (
	ZERO                     Enum = 0
	ONE                      Enum = 1
	SRC_COLOR                Enum = 0x0300
	ONE_MINUS_SRC_COLOR      Enum = 0x0301
	SRC_ALPHA                Enum = 0x0302
	ONE_MINUS_SRC_ALPHA      Enum = 0x0303
	DST_ALPHA                Enum = 0x0304
	ONE_MINUS_DST_ALPHA      Enum = 0x0305
	DST_COLOR                Enum = 0x0306
	ONE_MINUS_DST_COLOR      Enum = 0x0307
	SRC_ALPHA_SATURATE       Enum = 0x0308
	CONSTANT_COLOR           Enum = 0x8001
	ONE_MINUS_CONSTANT_COLOR Enum = 0x8002

	FUNC_ADD              Enum = 0x8006
	MIN                   Enum = 0x8007
	MAX                   Enum = 0x8008
	FUNC_SUBTRACT         Enum = 0x800A
	FUNC_REVERSE_SUBTRACT Enum = 0x800B
)

// Depth comparison functions.
const (
	NEVER    Enum = 0x0200
	LESS     Enum = 0x0201
	EQUAL    Enum = 0x0202
	LEQUAL   Enum = 0x0203
	GREATER  Enum = 0x0204
	NOTEQUAL Enum = 0x0205
	GEQUAL   Enum = 0x0206
	ALWAYS   Enum = 0x0207
)

// Rasterizer state.
const (
	FRONT          Enum = 0x0404
	BACK           Enum = 0x0405
	FRONT_AND_BACK Enum = 0x0408
	CW             Enum = 0x0900
	CCW            Enum = 0x0901
	POINT          Enum = 0x1B00
	LINE           Enum = 0x1B01
	FILL           Enum = 0x1B02
)

// Primitive modes.
const (
	POINTS         Enum = 0x0000
	LINES          Enum = 0x0001
	LINE_STRIP     Enum = 0x0003
	TRIANGLES      Enum = 0x0004
	TRIANGLE_STRIP Enum = 0x0005
)

// Data types.
const (
	BYTE              Enum = 0x1400
	UNSIGNED_BYTE     Enum = 0x1401
	SHORT             Enum = 0x1402
	UNSIGNED_SHORT    Enum = 0x1403
	INT               Enum = 0x1404
	UNSIGNED_INT      Enum = 0x1405
	FLOAT             Enum = 0x1406
	HALF_FLOAT        Enum = 0x140B
	UNSIGNED_INT_24_8 Enum = 0x84FA
)

// Buffer targets.
const (
	ARRAY_BUFFER             Enum = 0x8892
	ELEMENT_ARRAY_BUFFER     Enum = 0x8893
	UNIFORM_BUFFER           Enum = 0x8A11
	SHADER_STORAGE_BUFFER    Enum = 0x90D2
	DRAW_INDIRECT_BUFFER     Enum = 0x8F3F
	DISPATCH_INDIRECT_BUFFER Enum = 0x90EE
	COPY_WRITE_BUFFER        Enum = 0x8F37
)

// Memory barriers.
const (
	ALL_BARRIER_BITS Enum = 0xFFFFFFFF
)

// Framebuffer targets, attachments and clear bits.
const (
	FRAMEBUFFER       Enum = 0x8D40
	READ_FRAMEBUFFER  Enum = 0x8CA8
	DRAW_FRAMEBUFFER  Enum = 0x8CA9
	COLOR_ATTACHMENT0 Enum = 0x8CE0

	DEPTH_BUFFER_BIT   Enum = 0x00000100
	STENCIL_BUFFER_BIT Enum = 0x00000400
	COLOR_BUFFER_BIT   Enum = 0x00004000

	NEAREST Enum = 0x2600
	LINEAR  Enum = 0x2601
)

// Texture targets.
const (
	TEXTURE_1D                  Enum = 0x0DE0
	TEXTURE_2D                  Enum = 0x0DE1
	TEXTURE_3D                  Enum = 0x806F
	TEXTURE_2D_ARRAY            Enum = 0x8C1A
	TEXTURE_2D_MULTISAMPLE      Enum = 0x9100
	TEXTURE_CUBE_MAP            Enum = 0x8513
	TEXTURE_CUBE_MAP_POSITIVE_X Enum = 0x8515
	TEXTURE_CUBE_MAP_NEGATIVE_X Enum = 0x8516
	TEXTURE_CUBE_MAP_POSITIVE_Y Enum = 0x8517
	TEXTURE_CUBE_MAP_NEGATIVE_Y Enum = 0x8518
	TEXTURE_CUBE_MAP_POSITIVE_Z Enum = 0x8519
	TEXTURE_CUBE_MAP_NEGATIVE_Z Enum = 0x851A

	TEXTURE0 Enum = 0x84C0
)

// Image access and pixel store.
const (
	READ_ONLY  Enum = 0x88B8
	WRITE_ONLY Enum = 0x88B9
	READ_WRITE Enum = 0x88BA

	UNPACK_ALIGNMENT Enum = 0x0CF5
)

// Pixel transfer formats.
const (
	DEPTH_COMPONENT Enum = 0x1902
	RED             Enum = 0x1903
	RGBA            Enum = 0x1908
	BGRA            Enum = 0x80E1
	RG              Enum = 0x8227
	RG_INTEGER      Enum = 0x8228
	DEPTH_STENCIL   Enum = 0x84F9
	RED_INTEGER     Enum = 0x8D94
	RGBA_INTEGER    Enum = 0x8D99
)

// Sized internal formats.
const (
	RGBA8              Enum = 0x8058
	DEPTH_COMPONENT16  Enum = 0x81A5
	DEPTH_COMPONENT24  Enum = 0x81A6
	R8                 Enum = 0x8229
	RG8                Enum = 0x822B
	R16F               Enum = 0x822D
	R32F               Enum = 0x822E
	RG16F              Enum = 0x822F
	RG32F              Enum = 0x8230
	R8I                Enum = 0x8231
	R8UI               Enum = 0x8232
	R16I               Enum = 0x8233
	R16UI              Enum = 0x8234
	R32I               Enum = 0x8235
	R32UI              Enum = 0x8236
	RG32I              Enum = 0x823B
	RG32UI             Enum = 0x823C
	RGBA32F            Enum = 0x8814
	RGBA16F            Enum = 0x881A
	DEPTH24_STENCIL8   Enum = 0x88F0
	SRGB8_ALPHA8       Enum = 0x8C43
	DEPTH_COMPONENT32F Enum = 0x8CAC
	RGBA32UI           Enum = 0x8D70
	RGBA16UI           Enum = 0x8D76
	RGBA8UI            Enum = 0x8D7C
	RGBA32I            Enum = 0x8D82
	RGBA16I            Enum = 0x8D88
	RGBA8I             Enum = 0x8D8E
	R8_SNORM           Enum = 0x8F94
	RGBA8_SNORM        Enum = 0x8F97
)

// ErrorString returns the symbolic name of a GetError code.
func ErrorString(code Enum) string {
	switch code {
	case NO_ERROR:
		return "GL_NO_ERROR"
	case INVALID_ENUM:
		return "GL_INVALID_ENUM"
	case INVALID_VALUE:
		return "GL_INVALID_VALUE"
	case INVALID_OPERATION:
		return "GL_INVALID_OPERATION"
	case STACK_OVERFLOW:
		return "GL_STACK_OVERFLOW"
	case STACK_UNDERFLOW:
		return "GL_STACK_UNDERFLOW"
	case OUT_OF_MEMORY:
		return "GL_OUT_OF_MEMORY"
	case INVALID_FRAMEBUFFER_OPERATION:
		return "GL_INVALID_FRAMEBUFFER_OPERATION"
	case CONTEXT_LOST:
		return "GL_CONTEXT_LOST"
	default:
		return fmt.Sprintf("GL_ERROR(0x%04X)", uint32(code))
	}
}
