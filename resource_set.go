package glexec

import (
	"fmt"

	"github.com/gogpu/glexec/glapi"
	"github.com/gogpu/glexec/internal/glconv"
	"github.com/gogpu/glexec/internal/slots"
)

// SetGraphicsResourceSet binds rs at slot of the active graphics pipeline.
// Binding the set already bound at slot is a no-op.
func (e *Executor) SetGraphicsResourceSet(slot uint32, rs *ResourceSet) error {
	if e.graphicsPipeline == nil {
		return fmt.Errorf("set graphics resource set: %w", ErrNoPipeline)
	}
	layouts := e.graphicsPipeline.Graphics().ResourceLayouts
	return e.setResourceSet(slot, rs, e.graphicsPipeline, len(layouts), e.graphicsResourceSets, e.graphicsCounts)
}

// SetComputeResourceSet binds rs at slot of the active compute pipeline.
// Binding the set already bound at slot is a no-op.
func (e *Executor) SetComputeResourceSet(slot uint32, rs *ResourceSet) error {
	if e.computePipeline == nil {
		return fmt.Errorf("set compute resource set: %w", ErrNoPipeline)
	}
	layouts := e.computePipeline.Compute().ResourceLayouts
	return e.setResourceSet(slot, rs, e.computePipeline, len(layouts), e.computeResourceSets, e.computeCounts)
}

func (e *Executor) setResourceSet(slot uint32, rs *ResourceSet, p Pipeline, layoutCount int, bound []*ResourceSet, counts []slots.Counts) error {
	if int(slot) >= layoutCount || int(slot) >= len(bound) {
		return fmt.Errorf("set resource set: %w: slot %d, pipeline has %d", ErrSlotOutOfRange, slot, layoutCount)
	}
	if bound[slot] == rs {
		return nil
	}
	if rs == nil || rs.Layout == nil {
		return fmt.Errorf("set resource set: %w: slot %d has no layout", ErrResourceCountMismatch, slot)
	}
	if len(rs.Resources) != len(rs.Layout.Elements) {
		return fmt.Errorf("set resource set: %w: %d resources, %d layout elements",
			ErrResourceCountMismatch, len(rs.Resources), len(rs.Layout.Elements))
	}

	bound[slot] = rs
	if err := e.activateResourceSet(slot, p, counts, rs); err != nil {
		bound[slot] = nil
		return err
	}
	return nil
}

// activateResourceSet binds every resource of rs into the flat GL binding
// spaces. Uniform and storage buffers get consecutive indices starting at
// the slot's base; textures and samplers use the units reported by the
// pipeline.
//
// Texture uniforms are written with p's program current. When p is not the
// pipeline of the active mode, the active pipeline's program is made
// current again afterwards.
func (e *Executor) activateResourceSet(slot uint32, p Pipeline, counts []slots.Counts, rs *ResourceSet) error {
	bases := slots.Compute(counts, slot, e.legacyStorageBase)
	uniformIndex, storageIndex := bases.Uniform, bases.Storage
	programSwitched := false

	e.logger().Debug("glexec: binding resource set",
		"slot", slot,
		"resources", len(rs.Resources),
		"uniform_base", bases.Uniform,
		"storage_base", bases.Storage)

	for i, el := range rs.Layout.Elements {
		element := uint32(i)
		res := rs.Resources[i]

		switch el.Kind {
		case UniformBuffer:
			b, err := asBuffer(res, el)
			if err != nil {
				return err
			}
			binding := p.UniformBinding(slot, element)
			if err := e.bindBlock(p, b, glapi.UNIFORM_BUFFER, binding.BlockIndex, uniformIndex); err != nil {
				return err
			}
			uniformIndex++

		case StructuredBufferReadOnly, StructuredBufferReadWrite:
			b, err := asBuffer(res, el)
			if err != nil {
				return err
			}
			binding := p.StorageBinding(slot, element)
			if err := e.bindBlock(p, b, glapi.SHADER_STORAGE_BUFFER, binding.BlockIndex, storageIndex); err != nil {
				return err
			}
			storageIndex++

		case TextureReadOnly:
			v, err := asTextureView(res, el)
			if err != nil {
				return err
			}
			if err := v.Texture().EnsureResourcesCreated(); err != nil {
				return fmt.Errorf("resource %q: %w", el.Name, err)
			}
			binding := p.TextureBinding(slot, element)
			if err := e.units.SetTexture(uint32(binding.Unit), v); err != nil {
				return fmt.Errorf("resource %q: %w", el.Name, err)
			}

			// The program has to be current again before the sampler
			// uniform is written.
			if err := e.useProgram(p); err != nil {
				return err
			}
			programSwitched = true
			e.gl.Uniform1i(binding.UniformLocation, binding.Unit)
			if err := e.check("Uniform1i"); err != nil {
				return err
			}

		case TextureReadWrite:
			v, err := asTextureView(res, el)
			if err != nil {
				return err
			}
			pf, err := glconv.TextureFormat(v.Format())
			if err != nil {
				return fmt.Errorf("resource %q: %w", el.Name, err)
			}
			tex := v.Texture()
			if err := tex.EnsureResourcesCreated(); err != nil {
				return fmt.Errorf("resource %q: %w", el.Name, err)
			}
			binding := p.TextureBinding(slot, element)
			e.gl.BindImageTexture(uint32(binding.Unit), tex.Handle(), 0, false, 0, glapi.READ_WRITE, pf.Internal)
			if err := e.check("BindImageTexture"); err != nil {
				return err
			}
			if err := e.useProgram(p); err != nil {
				return err
			}
			programSwitched = true
			e.gl.Uniform1i(binding.UniformLocation, binding.Unit)
			if err := e.check("Uniform1i"); err != nil {
				return err
			}

		case SamplerResource:
			s, ok := res.(Sampler)
			if !ok {
				return typeMismatch(res, el, "Sampler")
			}
			if err := s.EnsureResourcesCreated(); err != nil {
				return fmt.Errorf("resource %q: %w", el.Name, err)
			}
			for _, unit := range p.SamplerBinding(slot, element).Units {
				if err := e.units.SetSampler(uint32(unit), s); err != nil {
					return fmt.Errorf("resource %q: %w", el.Name, err)
				}
			}

		default:
			return fmt.Errorf("resource %q: %w: %v", el.Name, ErrUnknownResourceKind, el.Kind)
		}
	}

	if active := e.activePipeline(); programSwitched && active != nil && active != p {
		return e.useProgram(active)
	}
	return nil
}

// activePipeline returns the pipeline of the active mode, or nil before any
// pipeline was activated.
func (e *Executor) activePipeline() Pipeline {
	switch e.mode {
	case ModeGraphics:
		return e.graphicsPipeline
	case ModeCompute:
		return e.computePipeline
	default:
		return nil
	}
}

func (e *Executor) useProgram(p Pipeline) error {
	e.gl.UseProgram(p.Program())
	return e.check("UseProgram")
}

func (e *Executor) bindBlock(p Pipeline, b Buffer, target glapi.Enum, blockIndex, binding uint32) error {
	if err := b.EnsureResourcesCreated(); err != nil {
		return fmt.Errorf("bind buffer block %d: %w", blockIndex, err)
	}
	if target == glapi.UNIFORM_BUFFER {
		e.gl.UniformBlockBinding(p.Program(), blockIndex, binding)
		if err := e.check("UniformBlockBinding"); err != nil {
			return err
		}
	} else {
		e.gl.ShaderStorageBlockBinding(p.Program(), blockIndex, binding)
		if err := e.check("ShaderStorageBlockBinding"); err != nil {
			return err
		}
	}
	e.gl.BindBufferRange(target, binding, b.Handle(), 0, int(b.SizeInBytes()))
	return e.check("BindBufferRange")
}

func asBuffer(res any, el ResourceLayoutElement) (Buffer, error) {
	b, ok := res.(Buffer)
	if !ok {
		return nil, typeMismatch(res, el, "Buffer")
	}
	return b, nil
}

func asTextureView(res any, el ResourceLayoutElement) (TextureView, error) {
	v, ok := res.(TextureView)
	if !ok {
		return nil, typeMismatch(res, el, "TextureView")
	}
	return v, nil
}

func typeMismatch(res any, el ResourceLayoutElement, want string) error {
	return fmt.Errorf("resource %q (%v): %w: got %T, want %s", el.Name, el.Kind, ErrTypeMismatch, res, want)
}
