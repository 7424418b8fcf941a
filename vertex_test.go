package glexec

import (
	"testing"

	"github.com/gogpu/gputypes"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gogpu/glexec/glapi"
	"github.com/gogpu/glexec/glapi/glapitest"
)

func indices(calls []glapitest.Call) []uint32 {
	out := make([]uint32, 0, len(calls))
	for _, c := range calls {
		out = append(out, c.Args[0].(uint32))
	}
	return out
}

func TestFlushVertexLayouts_ShrinkingLayout(t *testing.T) {
	rec := glapitest.New()
	ex := New(rec)

	require.NoError(t, ex.SetVertexBuffer(0, &fakeBuffer{handle: 1}))
	require.NoError(t, ex.SetVertexBuffer(1, &fakeBuffer{handle: 2}))

	require.NoError(t, ex.SetPipeline(graphicsPipeline(1, 3, 2)))
	require.NoError(t, ex.Draw(3, 1, 0, 0))

	assert.Equal(t, uint32(5), ex.EnabledVertexAttributes())
	assert.Equal(t, []uint32{0, 1, 2, 3, 4}, indices(rec.Filter("EnableVertexAttribArray")))
	assert.Zero(t, rec.Count("DisableVertexAttribArray"))

	rec.Reset()
	require.NoError(t, ex.SetPipeline(graphicsPipeline(2, 1)))
	require.NoError(t, ex.Draw(3, 1, 0, 0))

	assert.Equal(t, uint32(1), ex.EnabledVertexAttributes())
	assert.Zero(t, rec.Count("EnableVertexAttribArray"), "slot 0 is already enabled")
	assert.Equal(t, []uint32{1, 2, 3, 4}, indices(rec.Filter("DisableVertexAttribArray")))
	assert.Empty(t, rec.Unchecked())
}

func TestFlushVertexLayouts_EnabledCountTracksLastDraw(t *testing.T) {
	rec := glapitest.New()
	ex := New(rec)
	for i := uint32(0); i < 4; i++ {
		require.NoError(t, ex.SetVertexBuffer(i, &fakeBuffer{handle: glapi.Buffer(i + 1)}))
	}

	counts := [][]int{{2}, {4, 3}, {1}, {2, 2, 2}, {0}, {1, 1}}
	for i, c := range counts {
		require.NoError(t, ex.SetPipeline(graphicsPipeline(glapi.Program(i+1), c...)))
		require.NoError(t, ex.Draw(1, 1, 0, 0))

		var total uint32
		for _, n := range c {
			total += uint32(n)
		}
		assert.Equal(t, total, ex.EnabledVertexAttributes(), "draw %d", i)
	}
}

func TestFlushVertexLayouts_PointersAndStride(t *testing.T) {
	rec := glapitest.New()
	ex := New(rec)
	p := graphicsPipeline(1)
	p.graphics.VertexLayouts = []VertexLayout{
		{
			Elements: []VertexElement{
				{Name: "position", Format: gputypes.VertexFormatFloat32x3},
				{Name: "color", Format: gputypes.VertexFormatUnorm8x4},
				{Name: "id", Format: gputypes.VertexFormatUint32},
			},
		},
		{
			Stride: 32,
			Elements: []VertexElement{
				{Name: "uv", Format: gputypes.VertexFormatFloat32x2},
			},
		},
	}

	require.NoError(t, ex.SetPipeline(p))
	require.NoError(t, ex.SetVertexBuffer(0, &fakeBuffer{handle: 10}))
	require.NoError(t, ex.SetVertexBuffer(1, &fakeBuffer{handle: 11}))
	rec.Reset()
	require.NoError(t, ex.Draw(3, 1, 0, 0))

	binds := rec.Filter("BindBuffer")
	require.Len(t, binds, 2)
	assert.Equal(t, []any{glapi.ARRAY_BUFFER, glapi.Buffer(10)}, binds[0].Args)
	assert.Equal(t, []any{glapi.ARRAY_BUFFER, glapi.Buffer(11)}, binds[1].Args)

	ptrs := rec.Filter("VertexAttribPointer")
	require.Len(t, ptrs, 3)
	// Packed stride of binding 0 is 12 + 4 + 4.
	assert.Equal(t, []any{uint32(0), int32(3), glapi.FLOAT, false, int32(20), uintptr(0)}, ptrs[0].Args)
	assert.Equal(t, []any{uint32(1), int32(4), glapi.UNSIGNED_BYTE, true, int32(20), uintptr(12)}, ptrs[1].Args)
	assert.Equal(t, []any{uint32(3), int32(2), glapi.FLOAT, false, int32(32), uintptr(0)}, ptrs[2].Args)

	iptrs := rec.Filter("VertexAttribIPointer")
	require.Len(t, iptrs, 1)
	assert.Equal(t, []any{uint32(2), int32(1), glapi.UNSIGNED_INT, int32(20), uintptr(16)}, iptrs[0].Args)
}

func TestFlushVertexLayouts_DivisorCache(t *testing.T) {
	rec := glapitest.New()
	ex := New(rec)
	p := graphicsPipeline(1, 1, 2)
	p.graphics.VertexLayouts[1].InstanceStepRate = 1

	require.NoError(t, ex.SetPipeline(p))
	require.NoError(t, ex.SetVertexBuffer(0, &fakeBuffer{handle: 1}))
	require.NoError(t, ex.SetVertexBuffer(1, &fakeBuffer{handle: 2}))
	require.NoError(t, ex.Draw(3, 4, 0, 0))

	divs := rec.Filter("VertexAttribDivisor")
	require.Len(t, divs, 2)
	assert.Equal(t, []any{uint32(1), uint32(1)}, divs[0].Args)
	assert.Equal(t, []any{uint32(2), uint32(1)}, divs[1].Args)

	rec.Reset()
	require.NoError(t, ex.Draw(3, 4, 0, 0))
	assert.Zero(t, rec.Count("VertexAttribDivisor"), "unchanged divisors are cached")

	// A per-vertex layout on the same slots resets the divisors.
	rec.Reset()
	require.NoError(t, ex.SetPipeline(graphicsPipeline(2, 3)))
	require.NoError(t, ex.Draw(3, 1, 0, 0))
	assert.Equal(t, [][]any{{uint32(1), uint32(0)}, {uint32(2), uint32(0)}}, [][]any{
		rec.Filter("VertexAttribDivisor")[0].Args,
		rec.Filter("VertexAttribDivisor")[1].Args,
	})
}

func TestFlushVertexLayouts_MissingBuffer(t *testing.T) {
	rec := glapitest.New()
	ex := New(rec)
	require.NoError(t, ex.SetPipeline(graphicsPipeline(1, 1, 1)))
	require.NoError(t, ex.SetVertexBuffer(0, &fakeBuffer{handle: 1}))
	rec.Reset()

	err := ex.Draw(3, 1, 0, 0)
	assert.ErrorIs(t, err, ErrMissingVertexBuffer)
	assert.Zero(t, rec.Len())
}

func TestSetVertexBuffer_EnsuresAndGrows(t *testing.T) {
	ex := New(glapitest.New())
	b := &fakeBuffer{handle: 4}

	require.NoError(t, ex.SetVertexBuffer(3, b))

	assert.Equal(t, 1, b.ensured)
	assert.Len(t, ex.vertexBuffers, 4)
	assert.Same(t, b, ex.vertexBuffers[3])
}

func TestSetIndexBuffer(t *testing.T) {
	tests := []struct {
		format gputypes.IndexFormat
		typ    glapi.Enum
		size   uint32
	}{
		{gputypes.IndexFormatUint16, glapi.UNSIGNED_SHORT, 2},
		{gputypes.IndexFormatUint32, glapi.UNSIGNED_INT, 4},
	}
	for _, tt := range tests {
		rec := glapitest.New()
		ex := New(rec)

		require.NoError(t, ex.SetIndexBuffer(&fakeBuffer{handle: 8}, tt.format))

		assert.Equal(t, tt.size, ex.IndexElementSize())
		assert.Equal(t, tt.typ, ex.drawElementsType)
		c, _ := rec.Last("BindBuffer")
		assert.Equal(t, []any{glapi.ELEMENT_ARRAY_BUFFER, glapi.Buffer(8)}, c.Args)
	}
}
