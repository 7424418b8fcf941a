// Package glapi describes the subset of the OpenGL 4.6 core API that the
// glexec executor drives.
//
// The executor never calls a GL binding directly. It is handed a Functions
// value bound to the current context, which keeps the state-tracking logic
// independent of cgo and lets tests substitute a recording implementation
// (see package glapitest). The production implementation lives in package
// gl46.
//
// Handles are distinct named types so that a texture name cannot be passed
// where a buffer name is expected. The zero value of each handle is the GL
// "no object" name; the zero Framebuffer is the default (window) framebuffer.
package glapi

// Enum is a GLenum / GLbitfield value.
type Enum uint32

// Object handles.
type (
	Buffer      uint32
	Texture     uint32
	Framebuffer uint32
	Program     uint32
	Sampler     uint32
)

// Functions is the set of native entry points used by the executor.
//
// Methods mirror the GL functions of the same name. Byte offsets into bound
// buffers are passed as uintptr; client data is passed as byte slices and
// must not be retained after the call returns.
//
// Implementations are bound to a single GL context and are not safe for
// concurrent use.
type Functions interface {
	GetError() Enum

	Enable(capability Enum)
	Disable(capability Enum)
	Enablei(capability Enum, index uint32)
	Disablei(capability Enum, index uint32)

	BlendColor(r, g, b, a float32)
	BlendFuncSeparatei(buf uint32, srcRGB, dstRGB, srcAlpha, dstAlpha Enum)
	BlendEquationSeparatei(buf uint32, modeRGB, modeAlpha Enum)
	DepthFunc(fn Enum)
	DepthMask(flag bool)
	CullFace(mode Enum)
	PolygonMode(face, mode Enum)
	FrontFace(mode Enum)

	UseProgram(p Program)
	UniformBlockBinding(p Program, blockIndex, binding uint32)
	ShaderStorageBlockBinding(p Program, blockIndex, binding uint32)
	Uniform1i(location int32, v int32)

	BindBuffer(target Enum, b Buffer)
	BindBufferRange(target Enum, index uint32, b Buffer, offset, size int)
	BufferSubData(target Enum, offset int, data []byte)
	NamedBufferSubData(b Buffer, offset int, data []byte)

	ActiveTexture(unit Enum)
	BindTexture(target Enum, t Texture)
	BindSampler(unit uint32, s Sampler)
	BindImageTexture(unit uint32, t Texture, level int32, layered bool, layer int32, access, format Enum)
	PixelStorei(pname Enum, param int32)
	TexSubImage2D(target Enum, level, x, y, width, height int32, format, typ Enum, data []byte)
	TexSubImage3D(target Enum, level, x, y, z, width, height, depth int32, format, typ Enum, data []byte)

	EnableVertexAttribArray(index uint32)
	DisableVertexAttribArray(index uint32)
	VertexAttribPointer(index uint32, size int32, typ Enum, normalized bool, stride int32, offset uintptr)
	VertexAttribIPointer(index uint32, size int32, typ Enum, stride int32, offset uintptr)
	VertexAttribDivisor(index, divisor uint32)

	DrawArrays(mode Enum, first, count int32)
	DrawArraysInstanced(mode Enum, first, count, instances int32)
	DrawArraysInstancedBaseInstance(mode Enum, first, count, instances int32, baseInstance uint32)
	DrawElements(mode Enum, count int32, typ Enum, offset uintptr)
	DrawElementsBaseVertex(mode Enum, count int32, typ Enum, offset uintptr, baseVertex int32)
	DrawElementsInstanced(mode Enum, count int32, typ Enum, offset uintptr, instances int32)
	DrawElementsInstancedBaseVertex(mode Enum, count int32, typ Enum, offset uintptr, instances, baseVertex int32)
	MultiDrawArraysIndirect(mode Enum, offset uintptr, drawCount, stride int32)
	MultiDrawElementsIndirect(mode, typ Enum, offset uintptr, drawCount, stride int32)

	DispatchCompute(x, y, z uint32)
	DispatchComputeIndirect(offset uintptr)
	MemoryBarrier(barriers Enum)

	BindFramebuffer(target Enum, fb Framebuffer)
	DrawBuffer(buf Enum)
	ClearColor(r, g, b, a float32)
	ClearDepth(depth float64)
	Clear(mask Enum)
	BlitFramebuffer(srcX0, srcY0, srcX1, srcY1, dstX0, dstY0, dstX1, dstY1 int32, mask, filter Enum)

	ViewportIndexedf(index uint32, x, y, width, height float32)
	DepthRangeIndexed(index uint32, near, far float64)
	ScissorIndexed(index uint32, left, bottom, width, height int32)
}
