package glexec

import (
	"errors"
	"fmt"

	"github.com/gogpu/glexec/glapi"
	"github.com/gogpu/glexec/internal/glconv"
)

var (
	// ErrNativeCall is wrapped by every *GLError.
	ErrNativeCall = errors.New("glexec: native call failed")

	// ErrTypeMismatch is returned when a framebuffer or bound resource has
	// a dynamic type the executor does not accept in that position.
	ErrTypeMismatch = errors.New("glexec: type mismatch")

	// ErrUnimplemented is returned for inputs the executor rejects rather
	// than mishandles, such as cube textures with several array layers.
	ErrUnimplemented = errors.New("glexec: not implemented")

	// ErrUnknownResourceKind is returned for a layout element whose kind is
	// outside the ResourceKind enumeration.
	ErrUnknownResourceKind = errors.New("glexec: unknown resource kind")

	// ErrNoPipeline is returned by draws and dispatches issued before a
	// pipeline of the matching kind was set.
	ErrNoPipeline = errors.New("glexec: no pipeline set")

	// ErrInvalidPipeline is returned for a pipeline that describes neither
	// or both of a graphics and a compute configuration.
	ErrInvalidPipeline = errors.New("glexec: pipeline must be either graphics or compute")

	// ErrSlotOutOfRange is returned for a resource set slot, viewport or
	// scissor index outside the tracked range.
	ErrSlotOutOfRange = errors.New("glexec: slot out of range")

	// ErrResourceCountMismatch is returned for a resource set whose length
	// differs from its layout's element count.
	ErrResourceCountMismatch = errors.New("glexec: resource count does not match layout")

	// ErrMissingVertexBuffer is returned by a draw when the active pipeline
	// declares a vertex binding that has no buffer set.
	ErrMissingVertexBuffer = errors.New("glexec: vertex buffer not set")

	// ErrNoIndexBuffer is returned by indexed draws issued before
	// SetIndexBuffer.
	ErrNoIndexBuffer = errors.New("glexec: index buffer not set")

	// ErrUnsupportedFormat is returned when a description value has no GL
	// equivalent.
	ErrUnsupportedFormat = glconv.ErrUnsupported
)

// GLError reports a non-zero code returned by GetError after a native call.
type GLError struct {
	// Op is the native function that failed.
	Op   string
	Code glapi.Enum
}

func (e *GLError) Error() string {
	return fmt.Sprintf("glexec: %s: %s", e.Op, glapi.ErrorString(e.Code))
}

// Unwrap returns ErrNativeCall.
func (e *GLError) Unwrap() error { return ErrNativeCall }

// check reads the GL error state after the call named op.
func (e *Executor) check(op string) error {
	code := e.gl.GetError()
	if code == glapi.NO_ERROR {
		return nil
	}
	err := &GLError{Op: op, Code: code}
	e.logger().Warn("glexec: native call failed", "op", op, "code", glapi.ErrorString(code))
	return err
}
