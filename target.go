package glexec

import (
	"fmt"

	"github.com/gogpu/gputypes"

	"github.com/gogpu/glexec/glapi"
)

// SetFramebuffer binds fb for subsequent draws and clears.
//
// fb must implement OffscreenFramebuffer or SwapchainFramebuffer; any other
// type fails with ErrTypeMismatch.
func (e *Executor) SetFramebuffer(fb Framebuffer) error {
	switch f := fb.(type) {
	case OffscreenFramebuffer:
		if err := f.EnsureResourcesCreated(); err != nil {
			return fmt.Errorf("set framebuffer: %w", err)
		}
		e.gl.BindFramebuffer(glapi.FRAMEBUFFER, f.Handle())
		if err := e.check("BindFramebuffer"); err != nil {
			return err
		}
		e.isSwapchainFB = false
	case SwapchainFramebuffer:
		e.gl.BindFramebuffer(glapi.FRAMEBUFFER, 0)
		if err := e.check("BindFramebuffer"); err != nil {
			return err
		}
		e.isSwapchainFB = true
	default:
		return fmt.Errorf("set framebuffer: %w: invalid framebuffer type %T", ErrTypeMismatch, fb)
	}

	e.fb = fb
	e.logger().Debug("glexec: framebuffer bound", "swapchain", e.isSwapchainFB)
	return nil
}

// ClearColorTarget clears color attachment index of the bound framebuffer.
// The swapchain framebuffer has a single color buffer and ignores index.
func (e *Executor) ClearColorTarget(index uint32, c gputypes.Color) error {
	if !e.isSwapchainFB {
		e.gl.DrawBuffer(glapi.COLOR_ATTACHMENT0 + glapi.Enum(index))
		if err := e.check("DrawBuffer"); err != nil {
			return err
		}
	}

	e.gl.ClearColor(float32(c.R), float32(c.G), float32(c.B), float32(c.A))
	if err := e.check("ClearColor"); err != nil {
		return err
	}
	e.gl.Clear(glapi.COLOR_BUFFER_BIT)
	return e.check("Clear")
}

// ClearDepthTarget clears the depth buffer to depth. Depth writes are
// enabled first and left enabled.
func (e *Executor) ClearDepthTarget(depth float32) error {
	e.gl.ClearDepth(float64(depth))
	if err := e.check("ClearDepth"); err != nil {
		return err
	}
	e.gl.DepthMask(true)
	if err := e.check("DepthMask"); err != nil {
		return err
	}
	e.gl.Clear(glapi.DEPTH_BUFFER_BIT)
	return e.check("Clear")
}

// SetViewport sets viewport index and its depth range.
func (e *Executor) SetViewport(index uint32, vp Viewport) error {
	if int(index) >= len(e.viewports) {
		return fmt.Errorf("set viewport: %w: index %d, %d viewports", ErrSlotOutOfRange, index, len(e.viewports))
	}
	e.viewports[index] = vp

	e.gl.ViewportIndexedf(index, vp.X, vp.Y, vp.Width, vp.Height)
	if err := e.check("ViewportIndexedf"); err != nil {
		return err
	}
	e.gl.DepthRangeIndexed(index, float64(vp.MinDepth), float64(vp.MaxDepth))
	return e.check("DepthRangeIndexed")
}

// SetScissorRect sets scissor index. x and y are measured from the top-left
// corner; the rectangle is flipped against the height of viewport index to
// GL's bottom-left origin.
func (e *Executor) SetScissorRect(index, x, y, width, height uint32) error {
	if int(index) >= len(e.viewports) {
		return fmt.Errorf("set scissor rect: %w: index %d, %d viewports", ErrSlotOutOfRange, index, len(e.viewports))
	}
	bottom := int32(e.viewports[index].Height - float32(height) - float32(y))

	e.gl.ScissorIndexed(index, int32(x), bottom, int32(width), int32(height))
	return e.check("ScissorIndexed")
}

// ResolveTexture blits the full extent of source into destination with
// nearest filtering. Scissoring is disabled and stays disabled.
func (e *Executor) ResolveTexture(source, destination Texture) error {
	if err := source.EnsureResourcesCreated(); err != nil {
		return fmt.Errorf("resolve texture: %w", err)
	}
	if err := destination.EnsureResourcesCreated(); err != nil {
		return fmt.Errorf("resolve texture: %w", err)
	}
	src, err := source.Framebuffer()
	if err != nil {
		return fmt.Errorf("resolve texture: source framebuffer: %w", err)
	}
	dst, err := destination.Framebuffer()
	if err != nil {
		return fmt.Errorf("resolve texture: destination framebuffer: %w", err)
	}

	e.gl.BindFramebuffer(glapi.READ_FRAMEBUFFER, src)
	if err := e.check("BindFramebuffer"); err != nil {
		return err
	}
	e.gl.BindFramebuffer(glapi.DRAW_FRAMEBUFFER, dst)
	if err := e.check("BindFramebuffer"); err != nil {
		return err
	}
	e.gl.Disable(glapi.SCISSOR_TEST)
	if err := e.check("Disable"); err != nil {
		return err
	}

	e.gl.BlitFramebuffer(
		0, 0, int32(source.Width()), int32(source.Height()),
		0, 0, int32(destination.Width()), int32(destination.Height()),
		glapi.COLOR_BUFFER_BIT, glapi.NEAREST)
	return e.check("BlitFramebuffer")
}
