package glexec

import (
	"github.com/gogpu/gputypes"

	"github.com/gogpu/glexec/glapi"
)

type fakeBuffer struct {
	handle  glapi.Buffer
	size    uint32
	ensured int
	err     error
}

func (b *fakeBuffer) EnsureResourcesCreated() error { b.ensured++; return b.err }
func (b *fakeBuffer) Handle() glapi.Buffer          { return b.handle }
func (b *fakeBuffer) SizeInBytes() uint32           { return b.size }

type fakeTexture struct {
	handle      glapi.Texture
	target      glapi.Enum
	format      gputypes.TextureFormat
	width       uint32
	height      uint32
	arrayLayers uint32
	fb          glapi.Framebuffer
	ensured     int
}

func (t *fakeTexture) EnsureResourcesCreated() error           { t.ensured++; return nil }
func (t *fakeTexture) Handle() glapi.Texture                   { return t.handle }
func (t *fakeTexture) Target() glapi.Enum                      { return t.target }
func (t *fakeTexture) Format() gputypes.TextureFormat          { return t.format }
func (t *fakeTexture) Width() uint32                           { return t.width }
func (t *fakeTexture) Height() uint32                          { return t.height }
func (t *fakeTexture) ArrayLayers() uint32                     { return t.arrayLayers }
func (t *fakeTexture) Framebuffer() (glapi.Framebuffer, error) { return t.fb, nil }

type fakeView struct {
	tex    *fakeTexture
	format gputypes.TextureFormat
}

func (v *fakeView) Texture() Texture               { return v.tex }
func (v *fakeView) Format() gputypes.TextureFormat { return v.format }

type fakeSampler struct {
	handle  glapi.Sampler
	ensured int
}

func (s *fakeSampler) EnsureResourcesCreated() error { s.ensured++; return nil }
func (s *fakeSampler) Handle() glapi.Sampler         { return s.handle }

type fakeOffscreen struct {
	handle  glapi.Framebuffer
	ensured int
}

func (f *fakeOffscreen) Size() (uint32, uint32)        { return 64, 64 }
func (f *fakeOffscreen) EnsureResourcesCreated() error { f.ensured++; return nil }
func (f *fakeOffscreen) Handle() glapi.Framebuffer     { return f.handle }

type fakeSwapchain struct{}

func (fakeSwapchain) Size() (uint32, uint32) { return 800, 600 }
func (fakeSwapchain) SwapchainFramebuffer()  {}

// plainFramebuffer is neither offscreen nor swapchain.
type plainFramebuffer struct{}

func (plainFramebuffer) Size() (uint32, uint32) { return 1, 1 }

type fakePool struct {
	freed []*StagingBlock
}

func (p *fakePool) Free(b *StagingBlock) { p.freed = append(p.freed, b) }

func (p *fakePool) block(data ...byte) *StagingBlock {
	return &StagingBlock{Data: data, SizeInBytes: uint32(len(data)), Pool: p}
}

type unitCall struct {
	unit    uint32
	view    TextureView
	sampler Sampler
}

type fakeUnits struct {
	calls []unitCall
}

func (u *fakeUnits) SetTexture(unit uint32, view TextureView) error {
	u.calls = append(u.calls, unitCall{unit: unit, view: view})
	return nil
}

func (u *fakeUnits) SetSampler(unit uint32, s Sampler) error {
	u.calls = append(u.calls, unitCall{unit: unit, sampler: s})
	return nil
}

type bindingKey struct{ slot, element uint32 }

type fakePipeline struct {
	program  glapi.Program
	graphics *GraphicsDescription
	compute  *ComputeDescription
	ensured  int
	err      error

	uniforms map[bindingKey]UniformBinding
	storage  map[bindingKey]StorageBinding
	textures map[bindingKey]TextureBinding
	samplers map[bindingKey]SamplerBinding
}

func (p *fakePipeline) EnsureResourcesCreated() error             { p.ensured++; return p.err }
func (p *fakePipeline) Program() glapi.Program                    { return p.program }
func (p *fakePipeline) Graphics() *GraphicsDescription            { return p.graphics }
func (p *fakePipeline) Compute() *ComputeDescription              { return p.compute }
func (p *fakePipeline) UniformBinding(s, e uint32) UniformBinding { return p.uniforms[bindingKey{s, e}] }
func (p *fakePipeline) StorageBinding(s, e uint32) StorageBinding { return p.storage[bindingKey{s, e}] }
func (p *fakePipeline) TextureBinding(s, e uint32) TextureBinding { return p.textures[bindingKey{s, e}] }
func (p *fakePipeline) SamplerBinding(s, e uint32) SamplerBinding { return p.samplers[bindingKey{s, e}] }

// graphicsPipeline returns a pipeline with one vertex binding per entry of
// elementCounts, each made of float32x4 elements.
func graphicsPipeline(program glapi.Program, elementCounts ...int) *fakePipeline {
	desc := &GraphicsDescription{
		Blend: BlendState{
			Attachments: []BlendAttachment{{Enabled: false}},
		},
		DepthStencil: DepthStencilState{Compare: gputypes.CompareFunctionLess},
		Rasterizer: RasterizerState{
			CullMode:         gputypes.CullModeNone,
			FrontFace:        gputypes.FrontFaceCCW,
			DepthClipEnabled: true,
		},
		Topology: gputypes.PrimitiveTopologyTriangleList,
	}
	for _, n := range elementCounts {
		l := VertexLayout{}
		for i := 0; i < n; i++ {
			l.Elements = append(l.Elements, VertexElement{Format: gputypes.VertexFormatFloat32x4})
		}
		desc.VertexLayouts = append(desc.VertexLayouts, l)
	}
	return &fakePipeline{program: program, graphics: desc}
}

func computePipeline(program glapi.Program, layouts ...*ResourceLayout) *fakePipeline {
	return &fakePipeline{program: program, compute: &ComputeDescription{ResourceLayouts: layouts}}
}

func layout(kinds ...ResourceKind) *ResourceLayout {
	l := &ResourceLayout{}
	for _, k := range kinds {
		l.Elements = append(l.Elements, ResourceLayoutElement{Name: k.String(), Kind: k})
	}
	return l
}
