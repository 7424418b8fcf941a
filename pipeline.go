package glexec

import (
	"strconv"

	"github.com/gogpu/gputypes"

	"github.com/gogpu/glexec/glapi"
	"github.com/gogpu/glexec/internal/slots"
)

// Pipeline is a linked program plus the description it was created from.
// Exactly one of Graphics and Compute returns non-nil.
type Pipeline interface {
	EnsureResourcesCreated() error
	Program() glapi.Program

	Graphics() *GraphicsDescription
	Compute() *ComputeDescription

	// Binding metadata for the element at the given resource set slot and
	// element index, resolved from program reflection.
	UniformBinding(slot, element uint32) UniformBinding
	StorageBinding(slot, element uint32) StorageBinding
	TextureBinding(slot, element uint32) TextureBinding
	SamplerBinding(slot, element uint32) SamplerBinding
}

// UniformBinding locates a uniform block in the program.
type UniformBinding struct {
	BlockIndex uint32
}

// StorageBinding locates a shader storage block in the program.
type StorageBinding struct {
	BlockIndex uint32
}

// TextureBinding locates a sampler or image uniform and the unit it reads
// from.
type TextureBinding struct {
	UniformLocation int32
	Unit            int32
}

// SamplerBinding lists the texture units a sampler applies to. A sampler
// shared by several textures has several units.
type SamplerBinding struct {
	Units []int32
}

// GraphicsDescription is the fixed-function and layout state of a graphics
// pipeline.
type GraphicsDescription struct {
	Blend        BlendState
	DepthStencil DepthStencilState
	Rasterizer   RasterizerState
	Topology     gputypes.PrimitiveTopology

	VertexLayouts   []VertexLayout
	ResourceLayouts []*ResourceLayout
}

// ComputeDescription is the layout state of a compute pipeline.
type ComputeDescription struct {
	ResourceLayouts []*ResourceLayout
}

// BlendState holds the blend constant and per-attachment blending.
type BlendState struct {
	Constant    gputypes.Color
	Attachments []BlendAttachment
}

// BlendAttachment is the blend configuration of one color attachment.
type BlendAttachment struct {
	Enabled  bool
	SrcColor gputypes.BlendFactor
	DstColor gputypes.BlendFactor
	SrcAlpha gputypes.BlendFactor
	DstAlpha gputypes.BlendFactor
	ColorOp  gputypes.BlendOperation
	AlphaOp  gputypes.BlendOperation
}

// DepthStencilState configures the depth test.
type DepthStencilState struct {
	DepthTestEnabled  bool
	DepthWriteEnabled bool
	Compare           gputypes.CompareFunction
}

// FillMode selects how polygons are rasterized.
type FillMode uint8

const (
	FillSolid FillMode = iota
	FillWireframe
)

// RasterizerState configures culling, fill mode, scissoring and depth
// clipping.
type RasterizerState struct {
	CullMode  gputypes.CullMode
	FillMode  FillMode
	FrontFace gputypes.FrontFace

	// DepthClipEnabled false enables GL_DEPTH_CLAMP.
	DepthClipEnabled   bool
	ScissorTestEnabled bool
}

// VertexLayout describes one vertex buffer binding.
type VertexLayout struct {
	// Stride is the distance in bytes between consecutive vertices. Zero
	// means the elements are tightly packed.
	Stride uint32

	// InstanceStepRate is the attribute divisor of every element in the
	// binding. Zero advances per vertex.
	InstanceStepRate uint32

	Elements []VertexElement
}

// VertexElement is one attribute inside a vertex binding. Elements are laid
// out back to back in declaration order.
type VertexElement struct {
	Name   string
	Format gputypes.VertexFormat
}

// ResourceKind is the kind of a resource layout element.
type ResourceKind uint8

const (
	UniformBuffer ResourceKind = iota
	StructuredBufferReadOnly
	StructuredBufferReadWrite
	TextureReadOnly
	TextureReadWrite
	SamplerResource
)

func (k ResourceKind) String() string {
	switch k {
	case UniformBuffer:
		return "UniformBuffer"
	case StructuredBufferReadOnly:
		return "StructuredBufferReadOnly"
	case StructuredBufferReadWrite:
		return "StructuredBufferReadWrite"
	case TextureReadOnly:
		return "TextureReadOnly"
	case TextureReadWrite:
		return "TextureReadWrite"
	case SamplerResource:
		return "Sampler"
	default:
		return "ResourceKind(" + strconv.Itoa(int(k)) + ")"
	}
}

// ResourceLayout is the ordered schema of a resource set slot.
type ResourceLayout struct {
	Elements []ResourceLayoutElement
}

// ResourceLayoutElement names one resource and its kind.
type ResourceLayoutElement struct {
	Name string
	Kind ResourceKind
}

// counts returns the number of uniform and storage buffer elements.
func (l *ResourceLayout) counts() slots.Counts {
	var c slots.Counts
	if l == nil {
		return c
	}
	for _, el := range l.Elements {
		switch el.Kind {
		case UniformBuffer:
			c.UniformBuffers++
		case StructuredBufferReadOnly, StructuredBufferReadWrite:
			c.StorageBuffers++
		}
	}
	return c
}

// ResourceSet is a list of resources matched positionally to Layout.
// Resources hold Buffer, TextureView or Sampler values according to the
// element kinds. Sets are compared by pointer identity.
type ResourceSet struct {
	Layout    *ResourceLayout
	Resources []any
}

func layoutCounts(layouts []*ResourceLayout) []slots.Counts {
	out := make([]slots.Counts, len(layouts))
	for i, l := range layouts {
		out[i] = l.counts()
	}
	return out
}
