package glexec

import (
	"github.com/gogpu/gputypes"

	"github.com/gogpu/glexec/glapi"
)

// Buffer is a GL buffer object owned by the caller.
type Buffer interface {
	// EnsureResourcesCreated creates the native object if it does not
	// exist yet. It is called on the GL thread right before first use.
	EnsureResourcesCreated() error
	Handle() glapi.Buffer
	SizeInBytes() uint32
}

// Texture is a GL texture object owned by the caller.
type Texture interface {
	EnsureResourcesCreated() error
	Handle() glapi.Texture

	// Target is the bind target the texture was created with
	// (TEXTURE_2D, TEXTURE_2D_ARRAY, TEXTURE_3D, TEXTURE_CUBE_MAP, ...).
	Target() glapi.Enum
	Format() gputypes.TextureFormat
	Width() uint32
	Height() uint32
	ArrayLayers() uint32

	// Framebuffer returns a framebuffer object with the texture attached as
	// its first color attachment, creating it on first use.
	Framebuffer() (glapi.Framebuffer, error)
}

// TextureView is a view over a Texture that can be bound to a texture or
// image unit.
type TextureView interface {
	Texture() Texture

	// Format is the view format. It selects the sized internal format used
	// for image (read-write) binding.
	Format() gputypes.TextureFormat
}

// Sampler is a GL sampler object owned by the caller.
type Sampler interface {
	EnsureResourcesCreated() error
	Handle() glapi.Sampler
}

// Framebuffer is a render target. The executor accepts exactly two
// variants, OffscreenFramebuffer and SwapchainFramebuffer.
type Framebuffer interface {
	Size() (width, height uint32)
}

// OffscreenFramebuffer is a framebuffer object with its own attachments.
type OffscreenFramebuffer interface {
	Framebuffer
	EnsureResourcesCreated() error
	Handle() glapi.Framebuffer
}

// SwapchainFramebuffer is the default framebuffer of the window surface.
// It is bound as framebuffer zero and has no draw buffer selector.
type SwapchainFramebuffer interface {
	Framebuffer
	SwapchainFramebuffer()
}

// StagingPool owns staging blocks.
type StagingPool interface {
	Free(block *StagingBlock)
}

// StagingBlock is pooled host memory holding data for one upload.
//
// Transfer commands take ownership of the block and return it to Pool
// exactly once before they return, whatever the outcome.
type StagingBlock struct {
	Data        []byte
	SizeInBytes uint32
	Pool        StagingPool
}

// Bytes returns the staged bytes.
func (b *StagingBlock) Bytes() []byte {
	if int(b.SizeInBytes) < len(b.Data) {
		return b.Data[:b.SizeInBytes]
	}
	return b.Data
}

func (b *StagingBlock) release() {
	if b.Pool != nil {
		b.Pool.Free(b)
	}
}

// UnitManager assigns textures and samplers to texture units.
type UnitManager interface {
	SetTexture(unit uint32, view TextureView) error
	SetSampler(unit uint32, s Sampler) error
}

// Extensions are the optional GL capabilities the executor can use.
type Extensions struct {
	// DirectStateAccess enables glNamedBufferSubData for buffer uploads.
	DirectStateAccess bool
}

// NewExtensions returns the capabilities advertised by the given extension
// names.
func NewExtensions(names ...string) Extensions {
	var ext Extensions
	for _, n := range names {
		switch n {
		case "GL_ARB_direct_state_access":
			ext.DirectStateAccess = true
		}
	}
	return ext
}
