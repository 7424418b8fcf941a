package glexec

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/gogpu/glexec/glapi/glapitest"
)

func TestBeginEndIssueNoCalls(t *testing.T) {
	rec := glapitest.New()
	ex := New(rec)

	ex.Begin()
	ex.End()

	assert.Zero(t, rec.Len())
	assert.Zero(t, rec.ErrorChecks())
}

func TestModeString(t *testing.T) {
	assert.Equal(t, "none", ModeNone.String())
	assert.Equal(t, "graphics", ModeGraphics.String())
	assert.Equal(t, "compute", ModeCompute.String())
	assert.Equal(t, "none", Mode(42).String())
}

func TestResourceKindString(t *testing.T) {
	tests := []struct {
		kind ResourceKind
		want string
	}{
		{UniformBuffer, "UniformBuffer"},
		{StructuredBufferReadOnly, "StructuredBufferReadOnly"},
		{StructuredBufferReadWrite, "StructuredBufferReadWrite"},
		{TextureReadOnly, "TextureReadOnly"},
		{TextureReadWrite, "TextureReadWrite"},
		{SamplerResource, "Sampler"},
		{ResourceKind(99), "ResourceKind(99)"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.kind.String())
	}
}

func TestGrow(t *testing.T) {
	s := grow([]uint32{1, 2}, 4)
	assert.Equal(t, []uint32{1, 2, 0, 0}, s)

	s = grow(s, 1)
	assert.Len(t, s, 4, "never shrinks")
}

func TestStagingBlockBytes(t *testing.T) {
	b := &StagingBlock{Data: []byte{1, 2, 3}, SizeInBytes: 2}
	assert.Equal(t, []byte{1, 2}, b.Bytes())

	b.SizeInBytes = 10
	assert.Equal(t, []byte{1, 2, 3}, b.Bytes())

	assert.NotPanics(t, b.release, "blocks without a pool are not returned")
}
