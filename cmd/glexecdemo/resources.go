package main

import (
	"encoding/binary"
	"fmt"
	"math"
	"strings"

	"github.com/go-gl/gl/v4.6-core/gl"
	"github.com/gogpu/gputypes"

	"github.com/gogpu/glexec"
	"github.com/gogpu/glexec/glapi"
)

type swapchain struct{ w, h uint32 }

func (s swapchain) Size() (uint32, uint32) { return s.w, s.h }
func (swapchain) SwapchainFramebuffer()    {}

type buffer struct {
	id   uint32
	size uint32
}

func (b *buffer) EnsureResourcesCreated() error {
	if b.id != 0 {
		return nil
	}
	gl.CreateBuffers(1, &b.id)
	gl.NamedBufferData(b.id, int(b.size), nil, gl.DYNAMIC_DRAW)
	if code := gl.GetError(); code != gl.NO_ERROR {
		return fmt.Errorf("create buffer: %s", glapi.ErrorString(glapi.Enum(code)))
	}
	return nil
}

func (b *buffer) Handle() glapi.Buffer { return glapi.Buffer(b.id) }
func (b *buffer) SizeInBytes() uint32  { return b.size }

// pool hands out staging blocks backed by a free list.
type pool struct {
	free []*glexec.StagingBlock
}

func (p *pool) stage(data []byte) *glexec.StagingBlock {
	var b *glexec.StagingBlock
	if n := len(p.free); n > 0 {
		b, p.free = p.free[n-1], p.free[:n-1]
	} else {
		b = &glexec.StagingBlock{Pool: p}
	}
	b.Data = append(b.Data[:0], data...)
	b.SizeInBytes = uint32(len(data))
	return b
}

func (p *pool) Free(b *glexec.StagingBlock) { p.free = append(p.free, b) }

func triangle() []byte {
	verts := []struct {
		x, y float32
		rgba [4]byte
	}{
		{-0.6, -0.5, [4]byte{255, 64, 64, 255}},
		{0.6, -0.5, [4]byte{64, 255, 64, 255}},
		{0, 0.6, [4]byte{64, 64, 255, 255}},
	}
	out := make([]byte, 0, len(verts)*vertexStride)
	for _, v := range verts {
		out = binary.LittleEndian.AppendUint32(out, math.Float32bits(v.x))
		out = binary.LittleEndian.AppendUint32(out, math.Float32bits(v.y))
		out = append(out, v.rgba[:]...)
	}
	return out
}

const vertexShader = `#version 460 core
layout(location = 0) in vec2 position;
layout(location = 1) in vec4 color;
out vec4 vColor;
void main() {
	vColor = color;
	gl_Position = vec4(position, 0.0, 1.0);
}
` + "\x00"

const fragmentShader = `#version 460 core
in vec4 vColor;
out vec4 outColor;
void main() {
	outColor = vColor;
}
` + "\x00"

type pipeline struct {
	program uint32
	desc    glexec.GraphicsDescription
}

func newPipeline() *pipeline {
	return &pipeline{
		desc: glexec.GraphicsDescription{
			Blend: glexec.BlendState{
				Attachments: []glexec.BlendAttachment{{Enabled: false}},
			},
			DepthStencil: glexec.DepthStencilState{Compare: gputypes.CompareFunctionAlways},
			Rasterizer: glexec.RasterizerState{
				CullMode:         gputypes.CullModeNone,
				FrontFace:        gputypes.FrontFaceCCW,
				DepthClipEnabled: true,
			},
			Topology: gputypes.PrimitiveTopologyTriangleList,
			VertexLayouts: []glexec.VertexLayout{{
				Stride: vertexStride,
				Elements: []glexec.VertexElement{
					{Name: "position", Format: gputypes.VertexFormatFloat32x2},
					{Name: "color", Format: gputypes.VertexFormatUnorm8x4},
				},
			}},
		},
	}
}

func (p *pipeline) EnsureResourcesCreated() error {
	if p.program != 0 {
		return nil
	}
	vs, err := compile(gl.VERTEX_SHADER, vertexShader)
	if err != nil {
		return err
	}
	defer gl.DeleteShader(vs)
	fs, err := compile(gl.FRAGMENT_SHADER, fragmentShader)
	if err != nil {
		return err
	}
	defer gl.DeleteShader(fs)

	prog := gl.CreateProgram()
	gl.AttachShader(prog, vs)
	gl.AttachShader(prog, fs)
	gl.LinkProgram(prog)

	var status int32
	gl.GetProgramiv(prog, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var n int32
		gl.GetProgramiv(prog, gl.INFO_LOG_LENGTH, &n)
		msg := strings.Repeat("\x00", int(n+1))
		gl.GetProgramInfoLog(prog, n, nil, gl.Str(msg))
		gl.DeleteProgram(prog)
		return fmt.Errorf("link program: %s", strings.TrimRight(msg, "\x00"))
	}
	p.program = prog
	return nil
}

func compile(kind uint32, src string) (uint32, error) {
	sh := gl.CreateShader(kind)
	csrc, free := gl.Strs(src)
	gl.ShaderSource(sh, 1, csrc, nil)
	free()
	gl.CompileShader(sh)

	var status int32
	gl.GetShaderiv(sh, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var n int32
		gl.GetShaderiv(sh, gl.INFO_LOG_LENGTH, &n)
		msg := strings.Repeat("\x00", int(n+1))
		gl.GetShaderInfoLog(sh, n, nil, gl.Str(msg))
		gl.DeleteShader(sh)
		return 0, fmt.Errorf("compile shader: %s", strings.TrimRight(msg, "\x00"))
	}
	return sh, nil
}

func (p *pipeline) Program() glapi.Program                { return glapi.Program(p.program) }
func (p *pipeline) Graphics() *glexec.GraphicsDescription { return &p.desc }
func (p *pipeline) Compute() *glexec.ComputeDescription   { return nil }

func (p *pipeline) UniformBinding(_, _ uint32) glexec.UniformBinding { return glexec.UniformBinding{} }
func (p *pipeline) StorageBinding(_, _ uint32) glexec.StorageBinding { return glexec.StorageBinding{} }
func (p *pipeline) TextureBinding(_, _ uint32) glexec.TextureBinding { return glexec.TextureBinding{} }
func (p *pipeline) SamplerBinding(_, _ uint32) glexec.SamplerBinding { return glexec.SamplerBinding{} }
