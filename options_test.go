package glexec

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/gogpu/glexec/glapi/glapitest"
)

func TestNewDefaults(t *testing.T) {
	ex := New(glapitest.New())

	assert.Equal(t, ModeNone, ex.ActiveMode())
	assert.Equal(t, uint32(2), ex.IndexElementSize())
	assert.Zero(t, ex.EnabledVertexAttributes())
	assert.Nil(t, ex.Framebuffer())
	assert.False(t, ex.IsSwapchainFramebuffer())

	_, ok := ex.Viewport(DefaultViewportCount - 1)
	assert.True(t, ok)
	_, ok = ex.Viewport(DefaultViewportCount)
	assert.False(t, ok)

	assert.IsType(t, &textureUnits{}, ex.units)
}

func TestWithViewportCount(t *testing.T) {
	tests := []struct {
		n    int
		want int
	}{
		{4, 4},
		{1, 1},
		{0, DefaultViewportCount},
		{-3, DefaultViewportCount},
	}

	for _, tt := range tests {
		ex := New(glapitest.New(), WithViewportCount(tt.n))
		assert.Len(t, ex.viewports, tt.want, "WithViewportCount(%d)", tt.n)
	}
}

func TestWithUnitManager(t *testing.T) {
	units := &fakeUnits{}
	ex := New(glapitest.New(), WithUnitManager(units))
	assert.Same(t, units, ex.units)
}

func TestWithExtensions(t *testing.T) {
	ex := New(glapitest.New(), WithExtensions(Extensions{DirectStateAccess: true}))
	assert.True(t, ex.ext.DirectStateAccess)

	ex = New(glapitest.New(), WithLegacyStorageBaseIndex(true))
	assert.False(t, ex.ext.DirectStateAccess)
	assert.True(t, ex.legacyStorageBase)
}

func TestNewExtensions(t *testing.T) {
	assert.Equal(t, Extensions{}, NewExtensions())
	assert.Equal(t, Extensions{}, NewExtensions("GL_KHR_debug", "GL_ARB_texture_storage"))
	assert.Equal(t, Extensions{DirectStateAccess: true},
		NewExtensions("GL_KHR_debug", "GL_ARB_direct_state_access"))
}
