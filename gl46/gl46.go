// Package gl46 binds glapi.Functions to a live OpenGL 4.6 core context
// through github.com/go-gl/gl.
//
// Init must be called once the context is current on the calling thread,
// and every call must be made from that thread.
package gl46

import (
	"fmt"
	"unsafe"

	"github.com/go-gl/gl/v4.6-core/gl"

	"github.com/gogpu/glexec"
	"github.com/gogpu/glexec/glapi"
)

// Functions implements glapi.Functions for the current context.
type Functions struct{}

var _ glapi.Functions = Functions{}

// Init loads the GL entry points for the current context and returns the
// Functions wrapper.
func Init() (Functions, error) {
	if err := gl.Init(); err != nil {
		return Functions{}, fmt.Errorf("gl46: load entry points: %w", err)
	}
	return Functions{}, nil
}

// Version returns the GL_VERSION string of the current context.
func (Functions) Version() string {
	return gl.GoStr(gl.GetString(gl.VERSION))
}

// Extensions returns the extension names advertised by the current context.
func (Functions) Extensions() []string {
	var n int32
	gl.GetIntegerv(gl.NUM_EXTENSIONS, &n)
	names := make([]string, 0, n)
	for i := int32(0); i < n; i++ {
		names = append(names, gl.GoStr(gl.GetStringi(gl.EXTENSIONS, uint32(i))))
	}
	return names
}

// DetectExtensions returns the executor capabilities supported by the
// current context.
func DetectExtensions(f Functions) glexec.Extensions {
	return glexec.NewExtensions(f.Extensions()...)
}

func bytesPtr(b []byte) unsafe.Pointer {
	if len(b) == 0 {
		return nil
	}
	return gl.Ptr(&b[0])
}

func offsetPtr(off uintptr) unsafe.Pointer {
	return gl.PtrOffset(int(off))
}

func (Functions) GetError() glapi.Enum { return glapi.Enum(gl.GetError()) }

func (Functions) Enable(c glapi.Enum)  { gl.Enable(uint32(c)) }
func (Functions) Disable(c glapi.Enum) { gl.Disable(uint32(c)) }

func (Functions) Enablei(c glapi.Enum, index uint32)  { gl.Enablei(uint32(c), index) }
func (Functions) Disablei(c glapi.Enum, index uint32) { gl.Disablei(uint32(c), index) }

func (Functions) BlendColor(r, g, b, a float32) { gl.BlendColor(r, g, b, a) }

func (Functions) BlendFuncSeparatei(buf uint32, srcRGB, dstRGB, srcAlpha, dstAlpha glapi.Enum) {
	gl.BlendFuncSeparatei(buf, uint32(srcRGB), uint32(dstRGB), uint32(srcAlpha), uint32(dstAlpha))
}

func (Functions) BlendEquationSeparatei(buf uint32, modeRGB, modeAlpha glapi.Enum) {
	gl.BlendEquationSeparatei(buf, uint32(modeRGB), uint32(modeAlpha))
}

func (Functions) DepthFunc(fn glapi.Enum)           { gl.DepthFunc(uint32(fn)) }
func (Functions) DepthMask(flag bool)               { gl.DepthMask(flag) }
func (Functions) CullFace(mode glapi.Enum)          { gl.CullFace(uint32(mode)) }
func (Functions) PolygonMode(face, mode glapi.Enum) { gl.PolygonMode(uint32(face), uint32(mode)) }
func (Functions) FrontFace(mode glapi.Enum)         { gl.FrontFace(uint32(mode)) }

func (Functions) UseProgram(p glapi.Program) { gl.UseProgram(uint32(p)) }

func (Functions) UniformBlockBinding(p glapi.Program, blockIndex, binding uint32) {
	gl.UniformBlockBinding(uint32(p), blockIndex, binding)
}

func (Functions) ShaderStorageBlockBinding(p glapi.Program, blockIndex, binding uint32) {
	gl.ShaderStorageBlockBinding(uint32(p), blockIndex, binding)
}

func (Functions) Uniform1i(location int32, v int32) { gl.Uniform1i(location, v) }

func (Functions) BindBuffer(target glapi.Enum, b glapi.Buffer) {
	gl.BindBuffer(uint32(target), uint32(b))
}

func (Functions) BindBufferRange(target glapi.Enum, index uint32, b glapi.Buffer, offset, size int) {
	gl.BindBufferRange(uint32(target), index, uint32(b), offset, size)
}

func (Functions) BufferSubData(target glapi.Enum, offset int, data []byte) {
	gl.BufferSubData(uint32(target), offset, len(data), bytesPtr(data))
}

func (Functions) NamedBufferSubData(b glapi.Buffer, offset int, data []byte) {
	gl.NamedBufferSubData(uint32(b), offset, len(data), bytesPtr(data))
}

func (Functions) ActiveTexture(unit glapi.Enum) { gl.ActiveTexture(uint32(unit)) }

func (Functions) BindTexture(target glapi.Enum, t glapi.Texture) {
	gl.BindTexture(uint32(target), uint32(t))
}

func (Functions) BindSampler(unit uint32, s glapi.Sampler) { gl.BindSampler(unit, uint32(s)) }

func (Functions) BindImageTexture(unit uint32, t glapi.Texture, level int32, layered bool, layer int32, access, format glapi.Enum) {
	gl.BindImageTexture(unit, uint32(t), level, layered, layer, uint32(access), uint32(format))
}

func (Functions) PixelStorei(pname glapi.Enum, param int32) { gl.PixelStorei(uint32(pname), param) }

func (Functions) TexSubImage2D(target glapi.Enum, level, x, y, width, height int32, format, typ glapi.Enum, data []byte) {
	gl.TexSubImage2D(uint32(target), level, x, y, width, height, uint32(format), uint32(typ), bytesPtr(data))
}

func (Functions) TexSubImage3D(target glapi.Enum, level, x, y, z, width, height, depth int32, format, typ glapi.Enum, data []byte) {
	gl.TexSubImage3D(uint32(target), level, x, y, z, width, height, depth, uint32(format), uint32(typ), bytesPtr(data))
}

func (Functions) EnableVertexAttribArray(index uint32)  { gl.EnableVertexAttribArray(index) }
func (Functions) DisableVertexAttribArray(index uint32) { gl.DisableVertexAttribArray(index) }

func (Functions) VertexAttribPointer(index uint32, size int32, typ glapi.Enum, normalized bool, stride int32, offset uintptr) {
	gl.VertexAttribPointer(index, size, uint32(typ), normalized, stride, offsetPtr(offset))
}

func (Functions) VertexAttribIPointer(index uint32, size int32, typ glapi.Enum, stride int32, offset uintptr) {
	gl.VertexAttribIPointer(index, size, uint32(typ), stride, offsetPtr(offset))
}

func (Functions) VertexAttribDivisor(index, divisor uint32) { gl.VertexAttribDivisor(index, divisor) }

func (Functions) DrawArrays(mode glapi.Enum, first, count int32) {
	gl.DrawArrays(uint32(mode), first, count)
}

func (Functions) DrawArraysInstanced(mode glapi.Enum, first, count, instances int32) {
	gl.DrawArraysInstanced(uint32(mode), first, count, instances)
}

func (Functions) DrawArraysInstancedBaseInstance(mode glapi.Enum, first, count, instances int32, baseInstance uint32) {
	gl.DrawArraysInstancedBaseInstance(uint32(mode), first, count, instances, baseInstance)
}

func (Functions) DrawElements(mode glapi.Enum, count int32, typ glapi.Enum, offset uintptr) {
	gl.DrawElements(uint32(mode), count, uint32(typ), offsetPtr(offset))
}

func (Functions) DrawElementsBaseVertex(mode glapi.Enum, count int32, typ glapi.Enum, offset uintptr, baseVertex int32) {
	gl.DrawElementsBaseVertex(uint32(mode), count, uint32(typ), offsetPtr(offset), baseVertex)
}

func (Functions) DrawElementsInstanced(mode glapi.Enum, count int32, typ glapi.Enum, offset uintptr, instances int32) {
	gl.DrawElementsInstanced(uint32(mode), count, uint32(typ), offsetPtr(offset), instances)
}

func (Functions) DrawElementsInstancedBaseVertex(mode glapi.Enum, count int32, typ glapi.Enum, offset uintptr, instances, baseVertex int32) {
	gl.DrawElementsInstancedBaseVertex(uint32(mode), count, uint32(typ), offsetPtr(offset), instances, baseVertex)
}

func (Functions) MultiDrawArraysIndirect(mode glapi.Enum, offset uintptr, drawCount, stride int32) {
	gl.MultiDrawArraysIndirect(uint32(mode), offsetPtr(offset), drawCount, stride)
}

func (Functions) MultiDrawElementsIndirect(mode, typ glapi.Enum, offset uintptr, drawCount, stride int32) {
	gl.MultiDrawElementsIndirect(uint32(mode), uint32(typ), offsetPtr(offset), drawCount, stride)
}

func (Functions) DispatchCompute(x, y, z uint32) { gl.DispatchCompute(x, y, z) }

func (Functions) DispatchComputeIndirect(offset uintptr) { gl.DispatchComputeIndirect(int(offset)) }

func (Functions) MemoryBarrier(barriers glapi.Enum) { gl.MemoryBarrier(uint32(barriers)) }

func (Functions) BindFramebuffer(target glapi.Enum, fb glapi.Framebuffer) {
	gl.BindFramebuffer(uint32(target), uint32(fb))
}

func (Functions) DrawBuffer(buf glapi.Enum) { gl.DrawBuffer(uint32(buf)) }

func (Functions) ClearColor(r, g, b, a float32) { gl.ClearColor(r, g, b, a) }
func (Functions) ClearDepth(depth float64)      { gl.ClearDepth(depth) }
func (Functions) Clear(mask glapi.Enum)         { gl.Clear(uint32(mask)) }

func (Functions) BlitFramebuffer(srcX0, srcY0, srcX1, srcY1, dstX0, dstY0, dstX1, dstY1 int32, mask, filter glapi.Enum) {
	gl.BlitFramebuffer(srcX0, srcY0, srcX1, srcY1, dstX0, dstY0, dstX1, dstY1, uint32(mask), uint32(filter))
}

func (Functions) ViewportIndexedf(index uint32, x, y, width, height float32) {
	gl.ViewportIndexedf(index, x, y, width, height)
}

func (Functions) DepthRangeIndexed(index uint32, near, far float64) {
	gl.DepthRangeIndexed(index, near, far)
}

func (Functions) ScissorIndexed(index uint32, left, bottom, width, height int32) {
	gl.ScissorIndexed(index, left, bottom, width, height)
}
