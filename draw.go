package glexec

import (
	"fmt"

	"github.com/gogpu/glexec/glapi"
)

func (e *Executor) preDraw() error {
	if e.graphicsPipeline == nil {
		return fmt.Errorf("draw: %w", ErrNoPipeline)
	}
	if e.mode != ModeGraphics {
		if err := e.activateGraphics(e.graphicsPipeline); err != nil {
			return err
		}
	}
	return e.flushVertexLayouts()
}

// Draw issues a non-indexed draw.
//
// A single instance uses glDrawArrays. Several instances use
// glDrawArraysInstanced, or glDrawArraysInstancedBaseInstance when
// instanceStart is not zero.
func (e *Executor) Draw(vertexCount, instanceCount, vertexStart, instanceStart uint32) error {
	if err := e.preDraw(); err != nil {
		return err
	}

	switch {
	case instanceCount == 1:
		e.gl.DrawArrays(e.primitiveType, int32(vertexStart), int32(vertexCount))
		return e.check("DrawArrays")
	case instanceStart == 0:
		e.gl.DrawArraysInstanced(e.primitiveType, int32(vertexStart), int32(vertexCount), int32(instanceCount))
		return e.check("DrawArraysInstanced")
	default:
		e.gl.DrawArraysInstancedBaseInstance(e.primitiveType, int32(vertexStart), int32(vertexCount), int32(instanceCount), instanceStart)
		return e.check("DrawArraysInstancedBaseInstance")
	}
}

// DrawIndexed issues an indexed draw from the bound index buffer.
//
// The variant is selected by instance count and vertex offset. indexStart
// is converted to a byte offset using the index element size. instanceStart
// is not applied; none of the four entry points takes a base instance.
func (e *Executor) DrawIndexed(indexCount, instanceCount, indexStart uint32, vertexOffset int32, instanceStart uint32) error {
	if !e.hasIndexBuffer {
		return fmt.Errorf("draw indexed: %w", ErrNoIndexBuffer)
	}
	if err := e.preDraw(); err != nil {
		return err
	}

	indices := uintptr(indexStart) * uintptr(e.indexSize)
	count := int32(indexCount)

	switch {
	case instanceCount == 1 && vertexOffset == 0:
		e.gl.DrawElements(e.primitiveType, count, e.drawElementsType, indices)
		return e.check("DrawElements")
	case instanceCount == 1:
		e.gl.DrawElementsBaseVertex(e.primitiveType, count, e.drawElementsType, indices, vertexOffset)
		return e.check("DrawElementsBaseVertex")
	case vertexOffset == 0:
		e.gl.DrawElementsInstanced(e.primitiveType, count, e.drawElementsType, indices, int32(instanceCount))
		return e.check("DrawElementsInstanced")
	default:
		e.gl.DrawElementsInstancedBaseVertex(e.primitiveType, count, e.drawElementsType, indices, int32(instanceCount), vertexOffset)
		return e.check("DrawElementsInstancedBaseVertex")
	}
}

// DrawIndirect issues drawCount non-indexed draws whose arguments are read
// from indirect at offset.
func (e *Executor) DrawIndirect(indirect Buffer, offset, drawCount, stride uint32) error {
	if err := e.preDraw(); err != nil {
		return err
	}
	if err := e.bindIndirect(glapi.DRAW_INDIRECT_BUFFER, indirect); err != nil {
		return err
	}

	e.gl.MultiDrawArraysIndirect(e.primitiveType, uintptr(offset), int32(drawCount), int32(stride))
	return e.check("MultiDrawArraysIndirect")
}

// DrawIndexedIndirect issues drawCount indexed draws whose arguments are
// read from indirect at offset.
func (e *Executor) DrawIndexedIndirect(indirect Buffer, offset, drawCount, stride uint32) error {
	if !e.hasIndexBuffer {
		return fmt.Errorf("draw indexed indirect: %w", ErrNoIndexBuffer)
	}
	if err := e.preDraw(); err != nil {
		return err
	}
	if err := e.bindIndirect(glapi.DRAW_INDIRECT_BUFFER, indirect); err != nil {
		return err
	}

	e.gl.MultiDrawElementsIndirect(e.primitiveType, e.drawElementsType, uintptr(offset), int32(drawCount), int32(stride))
	return e.check("MultiDrawElementsIndirect")
}

func (e *Executor) bindIndirect(target glapi.Enum, b Buffer) error {
	if err := b.EnsureResourcesCreated(); err != nil {
		return fmt.Errorf("indirect buffer: %w", err)
	}
	e.gl.BindBuffer(target, b.Handle())
	return e.check("BindBuffer")
}

func (e *Executor) preDispatch() error {
	if e.computePipeline == nil {
		return fmt.Errorf("dispatch: %w", ErrNoPipeline)
	}
	if e.mode != ModeCompute {
		return e.activateCompute(e.computePipeline)
	}
	return nil
}

// Dispatch runs the active compute pipeline over the given work group
// counts, then issues a full memory barrier.
func (e *Executor) Dispatch(groupsX, groupsY, groupsZ uint32) error {
	if err := e.preDispatch(); err != nil {
		return err
	}

	e.gl.DispatchCompute(groupsX, groupsY, groupsZ)
	if err := e.check("DispatchCompute"); err != nil {
		return err
	}
	return e.postDispatch()
}

// DispatchIndirect runs the active compute pipeline with work group counts
// read from indirect at offset, then issues a full memory barrier.
func (e *Executor) DispatchIndirect(indirect Buffer, offset uint32) error {
	if err := e.preDispatch(); err != nil {
		return err
	}
	if err := e.bindIndirect(glapi.DISPATCH_INDIRECT_BUFFER, indirect); err != nil {
		return err
	}

	e.gl.DispatchComputeIndirect(uintptr(offset))
	if err := e.check("DispatchComputeIndirect"); err != nil {
		return err
	}
	return e.postDispatch()
}

// TODO: narrow the barrier to the bits the dispatched program's resources need.
func (e *Executor) postDispatch() error {
	e.gl.MemoryBarrier(glapi.ALL_BARRIER_BITS)
	return e.check("MemoryBarrier")
}
