package geometry

import (
	"fmt"

	"github.com/bloeys/gglm/gglm"
)

// GeometryMismatchError is returned when the per-vertex attribute arrays don't share one non-zero length
type GeometryMismatchError struct {
	Positions  int
	Normals    int
	Tangents   int
	Bitangents int
	TexCoords  int
}

func (e *GeometryMismatchError) Error() string {
	return fmt.Sprintf(
		"geometry attribute array lengths do not match: positions=%d, normals=%d, tangents=%d, bitangents=%d, texcoords=%d",
		e.Positions, e.Normals, e.Tangents, e.Bitangents, e.TexCoords,
	)
}

type IndexOutOfRangeError struct {
	// Index is the position inside the index list
	Index       int
	Value       uint32
	VertexCount int
}

func (e *IndexOutOfRangeError) Error() string {
	return fmt.Sprintf("index %d has value %d but geometry only has %d vertices", e.Index, e.Value, e.VertexCount)
}

// Geometry holds the validated vertex attribute set of a mesh and its optional index list.
// Geometry is read-only after New.
type Geometry struct {
	positions  []gglm.Vec3
	normals    []gglm.Vec3
	tangents   []gglm.Vec3
	bitangents []gglm.Vec3
	texCoords  []gglm.Vec2
	indices    []uint32
}

func New(positions, normals, tangents, bitangents []gglm.Vec3, texCoords []gglm.Vec2, indices []uint32) (*Geometry, error) {

	n := len(positions)
	if n == 0 || len(normals) != n || len(tangents) != n || len(bitangents) != n || len(texCoords) != n {
		return nil, &GeometryMismatchError{
			Positions:  len(positions),
			Normals:    len(normals),
			Tangents:   len(tangents),
			Bitangents: len(bitangents),
			TexCoords:  len(texCoords),
		}
	}

	for i, v := range indices {
		if int(v) >= n {
			return nil, &IndexOutOfRangeError{Index: i, Value: v, VertexCount: n}
		}
	}

	return &Geometry{
		positions:  positions,
		normals:    normals,
		tangents:   tangents,
		bitangents: bitangents,
		texCoords:  texCoords,
		indices:    indices,
	}, nil
}

func (g *Geometry) VertexCount() int {
	return len(g.positions)
}

func (g *Geometry) Positions() []gglm.Vec3 {
	return g.positions
}

func (g *Geometry) Normals() []gglm.Vec3 {
	return g.normals
}

func (g *Geometry) Tangents() []gglm.Vec3 {
	return g.tangents
}

func (g *Geometry) Bitangents() []gglm.Vec3 {
	return g.bitangents
}

func (g *Geometry) TexCoords() []gglm.Vec2 {
	return g.texCoords
}

// Indices returns the index list, which is empty when vertices are drawn in sequence
func (g *Geometry) Indices() []uint32 {
	return g.indices
}

func (g *Geometry) HasIndices() bool {
	return len(g.indices) > 0
}
