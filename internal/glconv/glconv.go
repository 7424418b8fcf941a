// Package glconv maps gputypes descriptions onto OpenGL enums.
package glconv

import (
	"errors"
	"fmt"

	"github.com/gogpu/gputypes"

	"github.com/gogpu/glexec/glapi"
)

// ErrUnsupported is returned for values that have no GL equivalent.
var ErrUnsupported = errors.New("glconv: unsupported value")

// BlendFactor returns the GL blend factor for f.
func BlendFactor(f gputypes.BlendFactor) (glapi.Enum, error) {
	switch f {
	case gputypes.BlendFactorZero:
		return glapi.ZERO, nil
	case gputypes.BlendFactorOne:
		return glapi.ONE, nil
	case gputypes.BlendFactorSrc:
		return glapi.SRC_COLOR, nil
	case gputypes.BlendFactorOneMinusSrc:
		return glapi.ONE_MINUS_SRC_COLOR, nil
	case gputypes.BlendFactorSrcAlpha:
		return glapi.SRC_ALPHA, nil
	case gputypes.BlendFactorOneMinusSrcAlpha:
		return glapi.ONE_MINUS_SRC_ALPHA, nil
	case gputypes.BlendFactorDst:
		return glapi.DST_COLOR, nil
	case gputypes.BlendFactorOneMinusDst:
		return glapi.ONE_MINUS_DST_COLOR, nil
	case gputypes.BlendFactorDstAlpha:
		return glapi.DST_ALPHA, nil
	case gputypes.BlendFactorOneMinusDstAlpha:
		return glapi.ONE_MINUS_DST_ALPHA, nil
	case gputypes.BlendFactorSrcAlphaSaturated:
		return glapi.SRC_ALPHA_SATURATE, nil
	case gputypes.BlendFactorConstant:
		return glapi.CONSTANT_COLOR, nil
	case gputypes.BlendFactorOneMinusConstant:
		return glapi.ONE_MINUS_CONSTANT_COLOR, nil
	default:
		return 0, fmt.Errorf("%w: blend factor %v", ErrUnsupported, f)
	}
}

// BlendOperation returns the GL blend equation for op.
func BlendOperation(op gputypes.BlendOperation) (glapi.Enum, error) {
	switch op {
	case gputypes.BlendOperationAdd:
		return glapi.FUNC_ADD, nil
	case gputypes.BlendOperationSubtract:
		return glapi.FUNC_SUBTRACT, nil
	case gputypes.BlendOperationReverseSubtract:
		return glapi.FUNC_REVERSE_SUBTRACT, nil
	case gputypes.BlendOperationMin:
		return glapi.MIN, nil
	case gputypes.BlendOperationMax:
		return glapi.MAX, nil
	default:
		return 0, fmt.Errorf("%w: blend operation %v", ErrUnsupported, op)
	}
}

// CompareFunction returns the GL depth function for fn.
func CompareFunction(fn gputypes.CompareFunction) (glapi.Enum, error) {
	switch fn {
	case gputypes.CompareFunctionNever:
		return glapi.NEVER, nil
	case gputypes.CompareFunctionLess:
		return glapi.LESS, nil
	case gputypes.CompareFunctionEqual:
		return glapi.EQUAL, nil
	case gputypes.CompareFunctionLessEqual:
		return glapi.LEQUAL, nil
	case gputypes.CompareFunctionGreater:
		return glapi.GREATER, nil
	case gputypes.CompareFunctionNotEqual:
		return glapi.NOTEQUAL, nil
	case gputypes.CompareFunctionGreaterEqual:
		return glapi.GEQUAL, nil
	case gputypes.CompareFunctionAlways:
		return glapi.ALWAYS, nil
	default:
		return 0, fmt.Errorf("%w: compare function %v", ErrUnsupported, fn)
	}
}

// CullFace returns the face culled by mode. CullModeNone has no face; the
// caller disables culling instead.
func CullFace(mode gputypes.CullMode) (glapi.Enum, error) {
	switch mode {
	case gputypes.CullModeFront:
		return glapi.FRONT, nil
	case gputypes.CullModeBack:
		return glapi.BACK, nil
	default:
		return 0, fmt.Errorf("%w: cull mode %v", ErrUnsupported, mode)
	}
}

// FrontFace returns the GL winding for f.
func FrontFace(f gputypes.FrontFace) (glapi.Enum, error) {
	switch f {
	case gputypes.FrontFaceCCW:
		return glapi.CCW, nil
	case gputypes.FrontFaceCW:
		return glapi.CW, nil
	default:
		return 0, fmt.Errorf("%w: front face %v", ErrUnsupported, f)
	}
}

// PrimitiveMode returns the GL draw mode for t.
func PrimitiveMode(t gputypes.PrimitiveTopology) (glapi.Enum, error) {
	switch t {
	case gputypes.PrimitiveTopologyPointList:
		return glapi.POINTS, nil
	case gputypes.PrimitiveTopologyLineList:
		return glapi.LINES, nil
	case gputypes.PrimitiveTopologyLineStrip:
		return glapi.LINE_STRIP, nil
	case gputypes.PrimitiveTopologyTriangleList:
		return glapi.TRIANGLES, nil
	case gputypes.PrimitiveTopologyTriangleStrip:
		return glapi.TRIANGLE_STRIP, nil
	default:
		return 0, fmt.Errorf("%w: primitive topology %v", ErrUnsupported, t)
	}
}

// IndexType returns the GL element type and its size in bytes.
func IndexType(f gputypes.IndexFormat) (glapi.Enum, uint32, error) {
	switch f {
	case gputypes.IndexFormatUint16:
		return glapi.UNSIGNED_SHORT, 2, nil
	case gputypes.IndexFormatUint32:
		return glapi.UNSIGNED_INT, 4, nil
	default:
		return 0, 0, fmt.Errorf("%w: index format %v", ErrUnsupported, f)
	}
}
