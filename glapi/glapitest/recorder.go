// Package glapitest provides a recording glapi.Functions for tests.
//
// A Recorder logs every native call in order with its arguments and reports
// configurable error codes from GetError. GetError itself is not logged;
// instead every logged call remembers whether an error check followed it
// before the next native call was issued.
package glapitest

import (
	"github.com/gogpu/glexec/glapi"
)

// Call is one recorded native call.
type Call struct {
	Name string
	Args []any

	// Checked reports whether GetError was called after this call and
	// before any other call.
	Checked bool
}

// Recorder implements glapi.Functions by recording calls.
//
// Recorder is not safe for concurrent use.
type Recorder struct {
	calls   []Call
	fail    map[string][]glapi.Enum
	pending glapi.Enum
	checks  int
}

var _ glapi.Functions = (*Recorder)(nil)

// New returns an empty Recorder.
func New() *Recorder {
	return &Recorder{fail: make(map[string][]glapi.Enum)}
}

// FailNext makes the GetError following the next call named name report
// code. Multiple registrations for the same name queue up in order.
func (r *Recorder) FailNext(name string, code glapi.Enum) {
	r.fail[name] = append(r.fail[name], code)
}

// Calls returns a copy of the call log.
func (r *Recorder) Calls() []Call {
	out := make([]Call, len(r.calls))
	copy(out, r.calls)
	return out
}

// Names returns the names of all recorded calls in order.
func (r *Recorder) Names() []string {
	out := make([]string, len(r.calls))
	for i, c := range r.calls {
		out[i] = c.Name
	}
	return out
}

// Filter returns the recorded calls named name, in order.
func (r *Recorder) Filter(name string) []Call {
	var out []Call
	for _, c := range r.calls {
		if c.Name == name {
			out = append(out, c)
		}
	}
	return out
}

// Count returns how many times name was called.
func (r *Recorder) Count(name string) int {
	n := 0
	for _, c := range r.calls {
		if c.Name == name {
			n++
		}
	}
	return n
}

// Last returns the most recent call named name.
func (r *Recorder) Last(name string) (Call, bool) {
	for i := len(r.calls) - 1; i >= 0; i-- {
		if r.calls[i].Name == name {
			return r.calls[i], true
		}
	}
	return Call{}, false
}

// Unchecked returns the calls that were not followed by GetError.
func (r *Recorder) Unchecked() []Call {
	var out []Call
	for _, c := range r.calls {
		if !c.Checked {
			out = append(out, c)
		}
	}
	return out
}

// ErrorChecks returns the number of GetError calls.
func (r *Recorder) ErrorChecks() int { return r.checks }

// Len returns the number of recorded calls.
func (r *Recorder) Len() int { return len(r.calls) }

// Reset clears the call log. Pending failures registered with FailNext are
// kept.
func (r *Recorder) Reset() {
	r.calls = r.calls[:0]
	r.pending = glapi.NO_ERROR
	r.checks = 0
}

func (r *Recorder) record(name string, args ...any) {
	r.calls = append(r.calls, Call{Name: name, Args: args})
	if q := r.fail[name]; len(q) > 0 {
		r.pending = q[0]
		if len(q) == 1 {
			delete(r.fail, name)
		} else {
			r.fail[name] = q[1:]
		}
	}
}

func cloneBytes(b []byte) []byte {
	if b == nil {
		return nil
	}
	out := make([]byte, len(b))
	copy(out, b)
	return out
}

// GetError reports the code registered for the previous call, if any.
func (r *Recorder) GetError() glapi.Enum {
	r.checks++
	if n := len(r.calls); n > 0 {
		r.calls[n-1].Checked = true
	}
	code := r.pending
	r.pending = glapi.NO_ERROR
	return code
}

func (r *Recorder) Enable(c glapi.Enum)  { r.record("Enable", c) }
func (r *Recorder) Disable(c glapi.Enum) { r.record("Disable", c) }
func (r *Recorder) Enablei(c glapi.Enum, index uint32) {
	r.record("Enablei", c, index)
}
func (r *Recorder) Disablei(c glapi.Enum, index uint32) {
	r.record("Disablei", c, index)
}

func (r *Recorder) BlendColor(red, green, blue, alpha float32) {
	r.record("BlendColor", red, green, blue, alpha)
}

func (r *Recorder) BlendFuncSeparatei(buf uint32, srcRGB, dstRGB, srcAlpha, dstAlpha glapi.Enum) {
	r.record("BlendFuncSeparatei", buf, srcRGB, dstRGB, srcAlpha, dstAlpha)
}

func (r *Recorder) BlendEquationSeparatei(buf uint32, modeRGB, modeAlpha glapi.Enum) {
	r.record("BlendEquationSeparatei", buf, modeRGB, modeAlpha)
}

func (r *Recorder) DepthFunc(fn glapi.Enum)           { r.record("DepthFunc", fn) }
func (r *Recorder) DepthMask(flag bool)               { r.record("DepthMask", flag) }
func (r *Recorder) CullFace(mode glapi.Enum)          { r.record("CullFace", mode) }
func (r *Recorder) PolygonMode(face, mode glapi.Enum) { r.record("PolygonMode", face, mode) }
func (r *Recorder) FrontFace(mode glapi.Enum)         { r.record("FrontFace", mode) }

func (r *Recorder) UseProgram(p glapi.Program) { r.record("UseProgram", p) }

func (r *Recorder) UniformBlockBinding(p glapi.Program, blockIndex, binding uint32) {
	r.record("UniformBlockBinding", p, blockIndex, binding)
}

func (r *Recorder) ShaderStorageBlockBinding(p glapi.Program, blockIndex, binding uint32) {
	r.record("ShaderStorageBlockBinding", p, blockIndex, binding)
}

func (r *Recorder) Uniform1i(location int32, v int32) { r.record("Uniform1i", location, v) }

func (r *Recorder) BindBuffer(target glapi.Enum, b glapi.Buffer) {
	r.record("BindBuffer", target, b)
}

func (r *Recorder) BindBufferRange(target glapi.Enum, index uint32, b glapi.Buffer, offset, size int) {
	r.record("BindBufferRange", target, index, b, offset, size)
}

func (r *Recorder) BufferSubData(target glapi.Enum, offset int, data []byte) {
	r.record("BufferSubData", target, offset, cloneBytes(data))
}

func (r *Recorder) NamedBufferSubData(b glapi.Buffer, offset int, data []byte) {
	r.record("NamedBufferSubData", b, offset, cloneBytes(data))
}

func (r *Recorder) ActiveTexture(unit glapi.Enum) { r.record("ActiveTexture", unit) }

func (r *Recorder) BindTexture(target glapi.Enum, t glapi.Texture) {
	r.record("BindTexture", target, t)
}

func (r *Recorder) BindSampler(unit uint32, s glapi.Sampler) { r.record("BindSampler", unit, s) }

func (r *Recorder) BindImageTexture(unit uint32, t glapi.Texture, level int32, layered bool, layer int32, access, format glapi.Enum) {
	r.record("BindImageTexture", unit, t, level, layered, layer, access, format)
}

func (r *Recorder) PixelStorei(pname glapi.Enum, param int32) { r.record("PixelStorei", pname, param) }

func (r *Recorder) TexSubImage2D(target glapi.Enum, level, x, y, width, height int32, format, typ glapi.Enum, data []byte) {
	r.record("TexSubImage2D", target, level, x, y, width, height, format, typ, cloneBytes(data))
}

func (r *Recorder) TexSubImage3D(target glapi.Enum, level, x, y, z, width, height, depth int32, format, typ glapi.Enum, data []byte) {
	r.record("TexSubImage3D", target, level, x, y, z, width, height, depth, format, typ, cloneBytes(data))
}

func (r *Recorder) EnableVertexAttribArray(index uint32) {
	r.record("EnableVertexAttribArray", index)
}

func (r *Recorder) DisableVertexAttribArray(index uint32) {
	r.record("DisableVertexAttribArray", index)
}

func (r *Recorder) VertexAttribPointer(index uint32, size int32, typ glapi.Enum, normalized bool, stride int32, offset uintptr) {
	r.record("VertexAttribPointer", index, size, typ, normalized, stride, offset)
}

func (r *Recorder) VertexAttribIPointer(index uint32, size int32, typ glapi.Enum, stride int32, offset uintptr) {
	r.record("VertexAttribIPointer", index, size, typ, stride, offset)
}

func (r *Recorder) VertexAttribDivisor(index, divisor uint32) {
	r.record("VertexAttribDivisor", index, divisor)
}

func (r *Recorder) DrawArrays(mode glapi.Enum, first, count int32) {
	r.record("DrawArrays", mode, first, count)
}

func (r *Recorder) DrawArraysInstanced(mode glapi.Enum, first, count, instances int32) {
	r.record("DrawArraysInstanced", mode, first, count, instances)
}

func (r *Recorder) DrawArraysInstancedBaseInstance(mode glapi.Enum, first, count, instances int32, baseInstance uint32) {
	r.record("DrawArraysInstancedBaseInstance", mode, first, count, instances, baseInstance)
}

func (r *Recorder) DrawElements(mode glapi.Enum, count int32, typ glapi.Enum, offset uintptr) {
	r.record("DrawElements", mode, count, typ, offset)
}

func (r *Recorder) DrawElementsBaseVertex(mode glapi.Enum, count int32, typ glapi.Enum, offset uintptr, baseVertex int32) {
	r.record("DrawElementsBaseVertex", mode, count, typ, offset, baseVertex)
}

func (r *Recorder) DrawElementsInstanced(mode glapi.Enum, count int32, typ glapi.Enum, offset uintptr, instances int32) {
	r.record("DrawElementsInstanced", mode, count, typ, offset, instances)
}

func (r *Recorder) DrawElementsInstancedBaseVertex(mode glapi.Enum, count int32, typ glapi.Enum, offset uintptr, instances, baseVertex int32) {
	r.record("DrawElementsInstancedBaseVertex", mode, count, typ, offset, instances, baseVertex)
}

func (r *Recorder) MultiDrawArraysIndirect(mode glapi.Enum, offset uintptr, drawCount, stride int32) {
	r.record("MultiDrawArraysIndirect", mode, offset, drawCount, stride)
}

func (r *Recorder) MultiDrawElementsIndirect(mode, typ glapi.Enum, offset uintptr, drawCount, stride int32) {
	r.record("MultiDrawElementsIndirect", mode, typ, offset, drawCount, stride)
}

func (r *Recorder) DispatchCompute(x, y, z uint32) { r.record("DispatchCompute", x, y, z) }

func (r *Recorder) DispatchComputeIndirect(offset uintptr) {
	r.record("DispatchComputeIndirect", offset)
}

func (r *Recorder) MemoryBarrier(barriers glapi.Enum) { r.record("MemoryBarrier", barriers) }

func (r *Recorder) BindFramebuffer(target glapi.Enum, fb glapi.Framebuffer) {
	r.record("BindFramebuffer", target, fb)
}

func (r *Recorder) DrawBuffer(buf glapi.Enum) { r.record("DrawBuffer", buf) }

func (r *Recorder) ClearColor(red, green, blue, alpha float32) {
	r.record("ClearColor", red, green, blue, alpha)
}

func (r *Recorder) ClearDepth(depth float64) { r.record("ClearDepth", depth) }
func (r *Recorder) Clear(mask glapi.Enum)    { r.record("Clear", mask) }

func (r *Recorder) BlitFramebuffer(srcX0, srcY0, srcX1, srcY1, dstX0, dstY0, dstX1, dstY1 int32, mask, filter glapi.Enum) {
	r.record("BlitFramebuffer", srcX0, srcY0, srcX1, srcY1, dstX0, dstY0, dstX1, dstY1, mask, filter)
}

func (r *Recorder) ViewportIndexedf(index uint32, x, y, width, height float32) {
	r.record("ViewportIndexedf", index, x, y, width, height)
}

func (r *Recorder) DepthRangeIndexed(index uint32, near, far float64) {
	r.record("DepthRangeIndexed", index, near, far)
}

func (r *Recorder) ScissorIndexed(index uint32, left, bottom, width, height int32) {
	r.record("ScissorIndexed", index, left, bottom, width, height)
}
