package glexec

import "github.com/gogpu/glexec/glapi"

// textureUnits is the built-in UnitManager. It binds on every call and
// keeps no state of its own.
type textureUnits struct {
	e *Executor
}

func (u *textureUnits) SetTexture(unit uint32, view TextureView) error {
	tex := view.Texture()
	u.e.gl.ActiveTexture(glapi.TEXTURE0 + glapi.Enum(unit))
	if err := u.e.check("ActiveTexture"); err != nil {
		return err
	}
	u.e.gl.BindTexture(tex.Target(), tex.Handle())
	return u.e.check("BindTexture")
}

func (u *textureUnits) SetSampler(unit uint32, s Sampler) error {
	u.e.gl.BindSampler(unit, s.Handle())
	return u.e.check("BindSampler")
}
