package glexec

import (
	"fmt"

	"github.com/gogpu/gputypes"

	"github.com/gogpu/glexec/glapi"
	"github.com/gogpu/glexec/internal/glconv"
)

// SetPipeline makes p the active pipeline of its kind. Setting the pipeline
// that is already recorded for that kind is a no-op.
func (e *Executor) SetPipeline(p Pipeline) error {
	if p == nil {
		return fmt.Errorf("set pipeline: %w", ErrInvalidPipeline)
	}
	g, c := p.Graphics(), p.Compute()
	if (g == nil) == (c == nil) {
		return fmt.Errorf("set pipeline: %w", ErrInvalidPipeline)
	}

	if g != nil {
		if e.graphicsPipeline == p {
			return nil
		}
		return e.activateGraphics(p)
	}
	if e.computePipeline == p {
		return nil
	}
	return e.activateCompute(p)
}

// invalidateResourceSets drops the cached resource sets of kind m. Entering
// a different mode drops the sets of both kinds, since the bindings of one
// kind share the flat GL binding spaces with the other.
func (e *Executor) invalidateResourceSets(m Mode) {
	if e.mode != m {
		clear(e.graphicsResourceSets)
		clear(e.computeResourceSets)
		return
	}
	if m == ModeGraphics {
		clear(e.graphicsResourceSets)
	} else {
		clear(e.computeResourceSets)
	}
}

// activateGraphics makes p the active graphics pipeline. On failure no
// graphics pipeline is recorded, so setting p again retries activation.
func (e *Executor) activateGraphics(p Pipeline) error {
	if err := e.applyGraphics(p); err != nil {
		e.graphicsPipeline = nil
		if e.mode == ModeGraphics {
			e.mode = ModeNone
		}
		return err
	}
	e.graphicsPipeline = p
	e.mode = ModeGraphics
	return nil
}

func (e *Executor) applyGraphics(p Pipeline) error {
	e.invalidateResourceSets(ModeGraphics)
	if err := p.EnsureResourcesCreated(); err != nil {
		return fmt.Errorf("activate graphics pipeline: %w", err)
	}
	desc := p.Graphics()

	if err := e.applyBlend(&desc.Blend); err != nil {
		return err
	}
	if err := e.applyDepthStencil(&desc.DepthStencil); err != nil {
		return err
	}
	if err := e.applyRasterizer(&desc.Rasterizer); err != nil {
		return err
	}

	mode, err := glconv.PrimitiveMode(desc.Topology)
	if err != nil {
		return fmt.Errorf("activate graphics pipeline: %w", err)
	}
	e.primitiveType = mode

	e.gl.UseProgram(p.Program())
	if err := e.check("UseProgram"); err != nil {
		return err
	}

	var totalElements int
	for _, l := range desc.VertexLayouts {
		totalElements += len(l.Elements)
	}
	e.vertexBuffers = grow(e.vertexBuffers, len(desc.VertexLayouts))
	e.vertexAttribDivisors = grow(e.vertexAttribDivisors, totalElements)
	e.graphicsResourceSets = grow(e.graphicsResourceSets, len(desc.ResourceLayouts))
	e.graphicsCounts = layoutCounts(desc.ResourceLayouts)

	e.logger().Debug("glexec: graphics pipeline activated",
		"program", p.Program(),
		"resource_layouts", len(desc.ResourceLayouts),
		"vertex_elements", totalElements)
	return nil
}

func (e *Executor) applyBlend(b *BlendState) error {
	c := b.Constant
	e.gl.BlendColor(float32(c.R), float32(c.G), float32(c.B), float32(c.A))
	if err := e.check("BlendColor"); err != nil {
		return err
	}

	for i, a := range b.Attachments {
		buf := uint32(i)
		if !a.Enabled {
			e.gl.Disablei(glapi.BLEND, buf)
			if err := e.check("Disablei"); err != nil {
				return err
			}
			continue
		}

		srcRGB, err := glconv.BlendFactor(a.SrcColor)
		if err != nil {
			return fmt.Errorf("blend attachment %d: %w", i, err)
		}
		dstRGB, err := glconv.BlendFactor(a.DstColor)
		if err != nil {
			return fmt.Errorf("blend attachment %d: %w", i, err)
		}
		srcAlpha, err := glconv.BlendFactor(a.SrcAlpha)
		if err != nil {
			return fmt.Errorf("blend attachment %d: %w", i, err)
		}
		dstAlpha, err := glconv.BlendFactor(a.DstAlpha)
		if err != nil {
			return fmt.Errorf("blend attachment %d: %w", i, err)
		}
		colorOp, err := glconv.BlendOperation(a.ColorOp)
		if err != nil {
			return fmt.Errorf("blend attachment %d: %w", i, err)
		}
		alphaOp, err := glconv.BlendOperation(a.AlphaOp)
		if err != nil {
			return fmt.Errorf("blend attachment %d: %w", i, err)
		}

		e.gl.Enablei(glapi.BLEND, buf)
		if err := e.check("Enablei"); err != nil {
			return err
		}
		e.gl.BlendFuncSeparatei(buf, srcRGB, dstRGB, srcAlpha, dstAlpha)
		if err := e.check("BlendFuncSeparatei"); err != nil {
			return err
		}
		e.gl.BlendEquationSeparatei(buf, colorOp, alphaOp)
		if err := e.check("BlendEquationSeparatei"); err != nil {
			return err
		}
	}
	return nil
}

func (e *Executor) applyDepthStencil(d *DepthStencilState) error {
	if !d.DepthTestEnabled {
		e.gl.Disable(glapi.DEPTH_TEST)
		if err := e.check("Disable"); err != nil {
			return err
		}
	} else {
		fn, err := glconv.CompareFunction(d.Compare)
		if err != nil {
			return fmt.Errorf("depth test: %w", err)
		}
		e.gl.Enable(glapi.DEPTH_TEST)
		if err := e.check("Enable"); err != nil {
			return err
		}
		e.gl.DepthFunc(fn)
		if err := e.check("DepthFunc"); err != nil {
			return err
		}
	}

	e.gl.DepthMask(d.DepthWriteEnabled)
	return e.check("DepthMask")
}

func (e *Executor) applyRasterizer(r *RasterizerState) error {
	if r.CullMode == gputypes.CullModeNone {
		e.gl.Disable(glapi.CULL_FACE)
		if err := e.check("Disable"); err != nil {
			return err
		}
	} else {
		face, err := glconv.CullFace(r.CullMode)
		if err != nil {
			return fmt.Errorf("rasterizer: %w", err)
		}
		e.gl.Enable(glapi.CULL_FACE)
		if err := e.check("Enable"); err != nil {
			return err
		}
		e.gl.CullFace(face)
		if err := e.check("CullFace"); err != nil {
			return err
		}
	}

	fill := glapi.FILL
	if r.FillMode == FillWireframe {
		fill = glapi.LINE
	}
	e.gl.PolygonMode(glapi.FRONT_AND_BACK, fill)
	if err := e.check("PolygonMode"); err != nil {
		return err
	}

	if err := e.toggle(glapi.SCISSOR_TEST, r.ScissorTestEnabled); err != nil {
		return err
	}
	// Depth clamping is the inverse of depth clipping.
	if err := e.toggle(glapi.DEPTH_CLAMP, !r.DepthClipEnabled); err != nil {
		return err
	}

	front, err := glconv.FrontFace(r.FrontFace)
	if err != nil {
		return fmt.Errorf("rasterizer: %w", err)
	}
	e.gl.FrontFace(front)
	return e.check("FrontFace")
}

func (e *Executor) toggle(capability glapi.Enum, on bool) error {
	if on {
		e.gl.Enable(capability)
		return e.check("Enable")
	}
	e.gl.Disable(capability)
	return e.check("Disable")
}

// activateCompute makes p the active compute pipeline. On failure no
// compute pipeline is recorded.
func (e *Executor) activateCompute(p Pipeline) error {
	if err := e.applyCompute(p); err != nil {
		e.computePipeline = nil
		if e.mode == ModeCompute {
			e.mode = ModeNone
		}
		return err
	}
	e.computePipeline = p
	e.mode = ModeCompute
	return nil
}

func (e *Executor) applyCompute(p Pipeline) error {
	e.invalidateResourceSets(ModeCompute)
	if err := p.EnsureResourcesCreated(); err != nil {
		return fmt.Errorf("activate compute pipeline: %w", err)
	}
	desc := p.Compute()
	e.computeResourceSets = grow(e.computeResourceSets, len(desc.ResourceLayouts))
	e.computeCounts = layoutCounts(desc.ResourceLayouts)

	e.gl.UseProgram(p.Program())
	if err := e.check("UseProgram"); err != nil {
		return err
	}

	e.logger().Debug("glexec: compute pipeline activated",
		"program", p.Program(),
		"resource_layouts", len(desc.ResourceLayouts))
	return nil
}
