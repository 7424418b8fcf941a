package glexec

import (
	"log/slog"

	"github.com/gogpu/glexec/glapi"
	"github.com/gogpu/glexec/internal/slots"
)

// Mode reports which kind of pipeline is currently active.
type Mode uint8

const (
	// ModeNone is the state before any pipeline was set.
	ModeNone Mode = iota
	ModeGraphics
	ModeCompute
)

func (m Mode) String() string {
	switch m {
	case ModeGraphics:
		return "graphics"
	case ModeCompute:
		return "compute"
	default:
		return "none"
	}
}

// Viewport is a viewport rectangle with its depth range.
type Viewport struct {
	X, Y          float32
	Width, Height float32
	MinDepth      float32
	MaxDepth      float32
}

// Executor translates commands into native calls against one GL context
// and tracks the resulting context state.
//
// An Executor must only be used from the thread the context is current on.
type Executor struct {
	gl    glapi.Functions
	ext   Extensions
	units UnitManager
	log   *slog.Logger

	legacyStorageBase bool

	fb            Framebuffer
	isSwapchainFB bool

	mode Mode

	graphicsPipeline      Pipeline
	graphicsCounts        []slots.Counts
	graphicsResourceSets  []*ResourceSet
	vertexBuffers         []Buffer
	vertexAttribDivisors  []uint32
	vertexAttributesBound uint32
	primitiveType         glapi.Enum

	drawElementsType glapi.Enum
	indexSize        uint32
	hasIndexBuffer   bool

	viewports []Viewport

	computePipeline     Pipeline
	computeCounts       []slots.Counts
	computeResourceSets []*ResourceSet
}

// New returns an Executor driving gl.
func New(gl glapi.Functions, opts ...Option) *Executor {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	e := &Executor{
		gl:                gl,
		ext:               o.extensions,
		log:               o.logger,
		legacyStorageBase: o.legacyStorageBase,
		viewports:         make([]Viewport, o.viewportCount),
		primitiveType:     glapi.TRIANGLES,
		drawElementsType:  glapi.UNSIGNED_SHORT,
		indexSize:         2,
	}
	e.units = o.units
	if e.units == nil {
		e.units = &textureUnits{e: e}
	}
	return e
}

func (e *Executor) logger() *slog.Logger {
	if e.log != nil {
		return e.log
	}
	return Logger()
}

// Begin marks the start of a command stream. It issues no native calls.
func (e *Executor) Begin() {}

// End marks the end of a command stream. It issues no native calls.
func (e *Executor) End() {}

// ActiveMode reports whether graphics or compute state is active.
func (e *Executor) ActiveMode() Mode { return e.mode }

// EnabledVertexAttributes returns the number of vertex attribute slots
// enabled by the last draw.
func (e *Executor) EnabledVertexAttributes() uint32 { return e.vertexAttributesBound }

// IndexElementSize returns the size in bytes of one index of the bound
// index buffer.
func (e *Executor) IndexElementSize() uint32 { return e.indexSize }

// Framebuffer returns the framebuffer set by the last SetFramebuffer.
func (e *Executor) Framebuffer() Framebuffer { return e.fb }

// IsSwapchainFramebuffer reports whether the default framebuffer is bound.
func (e *Executor) IsSwapchainFramebuffer() bool { return e.isSwapchainFB }

// Viewport returns the cached viewport at index.
func (e *Executor) Viewport(index uint32) (Viewport, bool) {
	if int(index) >= len(e.viewports) {
		return Viewport{}, false
	}
	return e.viewports[index], true
}

// grow extends s to at least n elements. It never shrinks.
func grow[T any](s []T, n int) []T {
	if len(s) >= n {
		return s
	}
	return append(s, make([]T, n-len(s))...)
}
