package glexec

import (
	"fmt"

	"github.com/gogpu/glexec/glapi"
	"github.com/gogpu/glexec/internal/glconv"
)

// TextureRegion selects the texels written by UpdateTexture.
type TextureRegion struct {
	X, Y, Z       uint32
	Width, Height uint32
	Depth         uint32
	MipLevel      uint32
	ArrayLayer    uint32
}

// CubeFace is a face of a cube texture.
type CubeFace uint8

const (
	CubeFaceNegativeX CubeFace = iota
	CubeFacePositiveX
	CubeFaceNegativeY
	CubeFacePositiveY
	CubeFaceNegativeZ
	CubeFacePositiveZ
)

// cubeFaceTarget returns the GL target of face. The two Z faces are
// swapped to account for the flipped Z axis of the cube map convention.
func cubeFaceTarget(face CubeFace) (glapi.Enum, error) {
	switch face {
	case CubeFaceNegativeX:
		return glapi.TEXTURE_CUBE_MAP_NEGATIVE_X, nil
	case CubeFacePositiveX:
		return glapi.TEXTURE_CUBE_MAP_POSITIVE_X, nil
	case CubeFaceNegativeY:
		return glapi.TEXTURE_CUBE_MAP_NEGATIVE_Y, nil
	case CubeFacePositiveY:
		return glapi.TEXTURE_CUBE_MAP_POSITIVE_Y, nil
	case CubeFaceNegativeZ:
		return glapi.TEXTURE_CUBE_MAP_POSITIVE_Z, nil
	case CubeFacePositiveZ:
		return glapi.TEXTURE_CUBE_MAP_NEGATIVE_Z, nil
	default:
		return 0, fmt.Errorf("%w: cube face %d", ErrUnsupportedFormat, face)
	}
}

// UpdateBuffer writes the staged bytes into b at offset. The staging block
// is returned to its pool before UpdateBuffer returns.
func (e *Executor) UpdateBuffer(b Buffer, offset uint32, block *StagingBlock) error {
	defer block.release()

	if err := b.EnsureResourcesCreated(); err != nil {
		return fmt.Errorf("update buffer: %w", err)
	}
	data := block.Bytes()

	e.logger().Debug("glexec: buffer upload",
		"buffer", b.Handle(),
		"offset", offset,
		"bytes", len(data),
		"dsa", e.ext.DirectStateAccess)

	if e.ext.DirectStateAccess {
		e.gl.NamedBufferSubData(b.Handle(), int(offset), data)
		return e.check("NamedBufferSubData")
	}

	e.gl.BindBuffer(glapi.COPY_WRITE_BUFFER, b.Handle())
	if err := e.check("BindBuffer"); err != nil {
		return err
	}
	e.gl.BufferSubData(glapi.COPY_WRITE_BUFFER, int(offset), data)
	return e.check("BufferSubData")
}

// UpdateTexture writes the staged texels into region of tex. Supported
// targets are TEXTURE_2D, TEXTURE_2D_ARRAY and TEXTURE_3D. The staging
// block is returned to its pool before UpdateTexture returns.
func (e *Executor) UpdateTexture(tex Texture, block *StagingBlock, r TextureRegion) error {
	defer block.release()

	target := tex.Target()
	switch target {
	case glapi.TEXTURE_2D, glapi.TEXTURE_2D_ARRAY, glapi.TEXTURE_3D:
	default:
		return fmt.Errorf("update texture: %w: target 0x%04X", ErrUnimplemented, uint32(target))
	}
	pf, err := glconv.TextureFormat(tex.Format())
	if err != nil {
		return fmt.Errorf("update texture: %w", err)
	}
	if err := tex.EnsureResourcesCreated(); err != nil {
		return fmt.Errorf("update texture: %w", err)
	}

	e.logger().Debug("glexec: texture upload",
		"texture", tex.Handle(),
		"mip", r.MipLevel,
		"layer", r.ArrayLayer,
		"bytes", len(block.Bytes()))

	e.gl.BindTexture(target, tex.Handle())
	if err := e.check("BindTexture"); err != nil {
		return err
	}

	return e.withUnpackAlignment(pf.Size, func() error {
		data := block.Bytes()
		level := int32(r.MipLevel)
		switch target {
		case glapi.TEXTURE_2D:
			e.gl.TexSubImage2D(target, level, int32(r.X), int32(r.Y), int32(r.Width), int32(r.Height), pf.Format, pf.Type, data)
			return e.check("TexSubImage2D")
		case glapi.TEXTURE_2D_ARRAY:
			e.gl.TexSubImage3D(target, level, int32(r.X), int32(r.Y), int32(r.ArrayLayer), int32(r.Width), int32(r.Height), 1, pf.Format, pf.Type, data)
			return e.check("TexSubImage3D")
		default:
			e.gl.TexSubImage3D(target, level, int32(r.X), int32(r.Y), int32(r.Z), int32(r.Width), int32(r.Height), int32(r.Depth), pf.Format, pf.Type, data)
			return e.check("TexSubImage3D")
		}
	})
}

// UpdateTextureCube writes the staged texels into one face of a cube
// texture. Cube arrays are not supported: a texture with more than one
// array layer, or a non-zero arrayLayer, fails with ErrUnimplemented. The
// staging block is returned to its pool before UpdateTextureCube returns.
func (e *Executor) UpdateTextureCube(tex Texture, block *StagingBlock, face CubeFace, x, y, width, height, mipLevel, arrayLayer uint32) error {
	defer block.release()

	if layers := tex.ArrayLayers(); layers > 1 {
		return fmt.Errorf("update texture cube: %w: %d array layers", ErrUnimplemented, layers)
	}
	if arrayLayer != 0 {
		return fmt.Errorf("update texture cube: %w: array layer %d", ErrUnimplemented, arrayLayer)
	}
	faceTarget, err := cubeFaceTarget(face)
	if err != nil {
		return fmt.Errorf("update texture cube: %w", err)
	}
	pf, err := glconv.TextureFormat(tex.Format())
	if err != nil {
		return fmt.Errorf("update texture cube: %w", err)
	}
	if err := tex.EnsureResourcesCreated(); err != nil {
		return fmt.Errorf("update texture cube: %w", err)
	}

	e.logger().Debug("glexec: cube texture upload",
		"texture", tex.Handle(),
		"face", face,
		"mip", mipLevel,
		"bytes", len(block.Bytes()))

	e.gl.BindTexture(glapi.TEXTURE_CUBE_MAP, tex.Handle())
	if err := e.check("BindTexture"); err != nil {
		return err
	}

	return e.withUnpackAlignment(pf.Size, func() error {
		e.gl.TexSubImage2D(faceTarget, int32(mipLevel), int32(x), int32(y), int32(width), int32(height), pf.Format, pf.Type, block.Bytes())
		return e.check("TexSubImage2D")
	})
}

// withUnpackAlignment narrows GL_UNPACK_ALIGNMENT to pixelSize for formats
// narrower than four bytes while upload runs, then restores the default of
// four even if upload failed. The upload error takes precedence.
func (e *Executor) withUnpackAlignment(pixelSize uint32, upload func() error) error {
	if pixelSize >= 4 {
		return upload()
	}

	e.gl.PixelStorei(glapi.UNPACK_ALIGNMENT, int32(pixelSize))
	if err := e.check("PixelStorei"); err != nil {
		return err
	}
	uploadErr := upload()
	e.gl.PixelStorei(glapi.UNPACK_ALIGNMENT, 4)
	restoreErr := e.check("PixelStorei")
	if uploadErr != nil {
		return uploadErr
	}
	return restoreErr
}
