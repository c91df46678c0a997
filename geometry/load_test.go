package geometry

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const quadJSON = `{
	"vertices":   [[-1,-1,0],[1,-1,0],[1,1,0],[-1,1,0]],
	"uvs":        [[0,0],[1,0],[1,1],[0,1]],
	"normals":    [[0,0,1],[0,0,1],[0,0,1],[0,0,1]],
	"tangents":   [[1,0,0],[1,0,0],[1,0,0],[1,0,0]],
	"bitangents": [[0,1,0],[0,1,0],[0,1,0],[0,1,0]]
}`

func TestParseJSON(t *testing.T) {

	g, err := ParseJSON([]byte(quadJSON), nil)
	require.NoError(t, err)

	assert.Equal(t, 4, g.VertexCount())
	assert.False(t, g.HasIndices())
	assert.Equal(t, [3]float32{1, 1, 0}, g.Positions()[2].Data)
	assert.Equal(t, [2]float32{0, 1}, g.TexCoords()[3].Data)
	assert.Equal(t, [3]float32{0, 1, 0}, g.Bitangents()[0].Data)
}

func TestParseJSONScalesPositions(t *testing.T) {

	g, err := ParseJSON([]byte(quadJSON), &LoadOptions{PositionScale: DefaultPositionScale})
	require.NoError(t, err)

	assert.InDelta(t, -1.2, g.Positions()[0].Data[0], 1e-6)
	assert.InDelta(t, 1.2, g.Positions()[2].Data[1], 1e-6)

	// Only positions are scaled
	assert.Equal(t, [3]float32{0, 0, 1}, g.Normals()[0].Data)
	assert.Equal(t, [2]float32{1, 1}, g.TexCoords()[2].Data)
}

func TestParseJSONMismatch(t *testing.T) {

	data := `{
		"vertices":   [[0,0,0],[1,0,0],[1,1,0]],
		"uvs":        [[0,0],[1,0]],
		"normals":    [[0,0,1],[0,0,1],[0,0,1]],
		"tangents":   [[1,0,0],[1,0,0],[1,0,0]],
		"bitangents": [[0,1,0],[0,1,0],[0,1,0]],
		"indices":    [0,1,2]
	}`

	_, err := ParseJSON([]byte(data), nil)

	var mismatchErr *GeometryMismatchError
	require.True(t, errors.As(err, &mismatchErr))
	assert.Equal(t, 3, mismatchErr.Positions)
	assert.Equal(t, 2, mismatchErr.TexCoords)
}

func TestParseJSONInvalid(t *testing.T) {
	_, err := ParseJSON([]byte(`{"vertices": [[0,0]`), nil)
	assert.Error(t, err)
}

func TestParseJSONComponentCount(t *testing.T) {

	tests := []struct {
		name  string
		data  string
		array string
		entry int
		want  int
		got   int
	}{
		{
			name:  "short vertex",
			data:  `{"vertices": [[0,0,0],[1,2]], "uvs": [[0,0],[1,0]], "normals": [[0,0,1],[0,0,1]], "tangents": [[1,0,0],[1,0,0]], "bitangents": [[0,1,0],[0,1,0]]}`,
			array: "vertices", entry: 1, want: 3, got: 2,
		},
		{
			name:  "long vertex",
			data:  `{"vertices": [[1,2,3,4]], "uvs": [[0,0]], "normals": [[0,0,1]], "tangents": [[1,0,0]], "bitangents": [[0,1,0]]}`,
			array: "vertices", entry: 0, want: 3, got: 4,
		},
		{
			name:  "short uv",
			data:  `{"vertices": [[0,0,0]], "uvs": [[0]], "normals": [[0,0,1]], "tangents": [[1,0,0]], "bitangents": [[0,1,0]]}`,
			array: "uvs", entry: 0, want: 2, got: 1,
		},
		{
			name:  "long uv",
			data:  `{"vertices": [[0,0,0],[1,0,0]], "uvs": [[0,0],[0,1,7]], "normals": [[0,0,1],[0,0,1]], "tangents": [[1,0,0],[1,0,0]], "bitangents": [[0,1,0],[0,1,0]]}`,
			array: "uvs", entry: 1, want: 2, got: 3,
		},
		{
			name:  "long bitangent",
			data:  `{"vertices": [[0,0,0]], "uvs": [[0,0]], "normals": [[0,0,1]], "tangents": [[1,0,0]], "bitangents": [[0,1,0,0]]}`,
			array: "bitangents", entry: 0, want: 3, got: 4,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {

			g, err := ParseJSON([]byte(tt.data), nil)
			assert.Nil(t, g)

			var countErr *ComponentCountError
			require.True(t, errors.As(err, &countErr), "got err: %v", err)
			assert.Equal(t, tt.array, countErr.Array)
			assert.Equal(t, tt.entry, countErr.Entry)
			assert.Equal(t, tt.want, countErr.Want)
			assert.Equal(t, tt.got, countErr.Got)
			assert.Contains(t, err.Error(), tt.array)
		})
	}
}

func TestLoadFileJSON(t *testing.T) {

	path := filepath.Join(t.TempDir(), "quad.JSON")
	require.NoError(t, os.WriteFile(path, []byte(quadJSON), 0o644))

	g, err := LoadFile(path, &LoadOptions{})
	require.NoError(t, err)
	assert.Equal(t, 4, g.VertexCount())

	_, err = LoadJSON(filepath.Join(t.TempDir(), "missing.json"), nil)
	assert.Error(t, err)
}

func TestLoadBundledCube(t *testing.T) {

	g, err := LoadFile("../res/models/cube_geometry.json", &LoadOptions{PositionScale: DefaultPositionScale})
	require.NoError(t, err)

	assert.Equal(t, 24, g.VertexCount())
	require.True(t, g.HasIndices())
	assert.Len(t, g.Indices(), 36)

	for _, p := range g.Positions() {
		// Unit cube corners scaled by 1.2
		for _, c := range p.Data {
			assert.InDelta(t, 0.6, math.Abs(float64(c)), 1e-5)
		}
	}
}
