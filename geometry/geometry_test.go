package geometry

import (
	"errors"
	"testing"

	"github.com/bloeys/gglm/gglm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func v3s(n int) []gglm.Vec3 {

	out := make([]gglm.Vec3, n)
	for i := 0; i < n; i++ {
		out[i] = gglm.NewVec3(float32(i), float32(i)+0.5, float32(i)+0.25)
	}

	return out
}

func v2s(n int) []gglm.Vec2 {

	out := make([]gglm.Vec2, n)
	for i := 0; i < n; i++ {
		out[i] = gglm.Vec2{Data: [2]float32{float32(i) / 10, 1 - float32(i)/10}}
	}

	return out
}

func TestNew(t *testing.T) {

	g, err := New(v3s(4), v3s(4), v3s(4), v3s(4), v2s(4), nil)
	require.NoError(t, err)

	assert.Equal(t, 4, g.VertexCount())
	assert.False(t, g.HasIndices())
	assert.Empty(t, g.Indices())
	assert.Equal(t, v2s(4), g.TexCoords())

	g, err = New(v3s(4), v3s(4), v3s(4), v3s(4), v2s(4), []uint32{0, 1, 2, 2, 3, 0})
	require.NoError(t, err)
	assert.True(t, g.HasIndices())
	assert.Len(t, g.Indices(), 6)
}

func TestNewMismatch(t *testing.T) {

	tests := []struct {
		name string
		want GeometryMismatchError
	}{
		{name: "short normals", want: GeometryMismatchError{Positions: 4, Normals: 3, Tangents: 4, Bitangents: 4, TexCoords: 4}},
		{name: "short uvs", want: GeometryMismatchError{Positions: 4, Normals: 4, Tangents: 4, Bitangents: 4, TexCoords: 2}},
		{name: "long bitangents", want: GeometryMismatchError{Positions: 4, Normals: 4, Tangents: 4, Bitangents: 5, TexCoords: 4}},
		{name: "empty", want: GeometryMismatchError{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {

			w := tt.want
			g, err := New(v3s(w.Positions), v3s(w.Normals), v3s(w.Tangents), v3s(w.Bitangents), v2s(w.TexCoords), nil)
			assert.Nil(t, g)

			var mismatchErr *GeometryMismatchError
			require.True(t, errors.As(err, &mismatchErr))
			assert.Equal(t, tt.want, *mismatchErr)
		})
	}
}

func TestMismatchErrorNamesLengths(t *testing.T) {

	err := &GeometryMismatchError{Positions: 24, Normals: 24, Tangents: 20, Bitangents: 24, TexCoords: 23}
	assert.Equal(t,
		"geometry attribute array lengths do not match: positions=24, normals=24, tangents=20, bitangents=24, texcoords=23",
		err.Error(),
	)
}

func TestNewIndexOutOfRange(t *testing.T) {

	_, err := New(v3s(3), v3s(3), v3s(3), v3s(3), v2s(3), []uint32{0, 1, 3})

	var rangeErr *IndexOutOfRangeError
	require.True(t, errors.As(err, &rangeErr))
	assert.Equal(t, IndexOutOfRangeError{Index: 2, Value: 3, VertexCount: 3}, *rangeErr)
}
