package glexec

import (
	"fmt"

	"github.com/gogpu/gputypes"

	"github.com/gogpu/glexec/glapi"
	"github.com/gogpu/glexec/internal/glconv"
)

// SetVertexBuffer records vb for vertex binding index. The buffer is bound
// and its attributes are set up on the next draw.
func (e *Executor) SetVertexBuffer(index uint32, vb Buffer) error {
	if err := vb.EnsureResourcesCreated(); err != nil {
		return fmt.Errorf("set vertex buffer %d: %w", index, err)
	}
	e.vertexBuffers = grow(e.vertexBuffers, int(index)+1)
	e.vertexBuffers[index] = vb
	return nil
}

// SetIndexBuffer binds ib as the element array buffer.
func (e *Executor) SetIndexBuffer(ib Buffer, format gputypes.IndexFormat) error {
	typ, size, err := glconv.IndexType(format)
	if err != nil {
		return fmt.Errorf("set index buffer: %w", err)
	}
	if err := ib.EnsureResourcesCreated(); err != nil {
		return fmt.Errorf("set index buffer: %w", err)
	}

	e.gl.BindBuffer(glapi.ELEMENT_ARRAY_BUFFER, ib.Handle())
	if err := e.check("BindBuffer"); err != nil {
		return err
	}

	e.drawElementsType = typ
	e.indexSize = size
	e.hasIndexBuffer = true
	return nil
}

type vertexAttrib struct {
	glconv.VertexAttrib
	offset uint32
}

// vertexAttribs resolves the formats and byte offsets of the elements of l
// and returns the binding stride.
func vertexAttribs(l *VertexLayout) ([]vertexAttrib, uint32, error) {
	attrs := make([]vertexAttrib, len(l.Elements))
	var offset uint32
	for i, el := range l.Elements {
		a, err := glconv.VertexFormat(el.Format)
		if err != nil {
			return nil, 0, fmt.Errorf("vertex element %q: %w", el.Name, err)
		}
		attrs[i] = vertexAttrib{VertexAttrib: a, offset: offset}
		offset += a.Size
	}
	stride := l.Stride
	if stride == 0 {
		stride = offset
	}
	return attrs, stride, nil
}

// flushVertexLayouts makes the vertex attribute state match the layouts of
// the active graphics pipeline.
//
// Attribute slots are numbered across bindings in pipeline order. Slots
// below the count enabled by the previous draw are already enabled; slots
// at or past the new total are disabled. Divisors are only set when they
// differ from the cached value. Slots are enabled in increasing order, so
// vertexAttributesBound stays accurate if a native call fails midway.
func (e *Executor) flushVertexLayouts() error {
	layouts := e.graphicsPipeline.Graphics().VertexLayouts

	resolved := make([][]vertexAttrib, len(layouts))
	strides := make([]uint32, len(layouts))
	for i := range layouts {
		if i >= len(e.vertexBuffers) || e.vertexBuffers[i] == nil {
			return fmt.Errorf("draw: %w: binding %d", ErrMissingVertexBuffer, i)
		}
		attrs, stride, err := vertexAttribs(&layouts[i])
		if err != nil {
			return fmt.Errorf("draw: binding %d: %w", i, err)
		}
		resolved[i], strides[i] = attrs, stride
	}

	var total uint32
	for i, layout := range layouts {
		e.gl.BindBuffer(glapi.ARRAY_BUFFER, e.vertexBuffers[i].Handle())
		if err := e.check("BindBuffer"); err != nil {
			return err
		}

		for j, a := range resolved[i] {
			slot := total + uint32(j)
			if slot >= e.vertexAttributesBound {
				e.gl.EnableVertexAttribArray(slot)
				if err := e.check("EnableVertexAttribArray"); err != nil {
					return err
				}
				e.vertexAttributesBound = slot + 1
			}

			if a.Integer {
				e.gl.VertexAttribIPointer(slot, a.Components, a.Type, int32(strides[i]), uintptr(a.offset))
				if err := e.check("VertexAttribIPointer"); err != nil {
					return err
				}
			} else {
				e.gl.VertexAttribPointer(slot, a.Components, a.Type, a.Normalized, int32(strides[i]), uintptr(a.offset))
				if err := e.check("VertexAttribPointer"); err != nil {
					return err
				}
			}

			if e.vertexAttribDivisors[slot] != layout.InstanceStepRate {
				e.gl.VertexAttribDivisor(slot, layout.InstanceStepRate)
				if err := e.check("VertexAttribDivisor"); err != nil {
					return err
				}
				e.vertexAttribDivisors[slot] = layout.InstanceStepRate
			}
		}
		total += uint32(len(layout.Elements))
	}

	for extra := total; extra < e.vertexAttributesBound; extra++ {
		e.gl.DisableVertexAttribArray(extra)
		if err := e.check("DisableVertexAttribArray"); err != nil {
			return err
		}
	}
	e.vertexAttributesBound = total
	return nil
}
