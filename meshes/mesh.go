package meshes

import (
	"github.com/bloeys/bumpcube/assert"
	"github.com/bloeys/bumpcube/buffers"
	"github.com/bloeys/bumpcube/geometry"
	"github.com/bloeys/bumpcube/logging"
	"github.com/bloeys/bumpcube/materials"
	"github.com/bloeys/gglm/gglm"
)

const (
	// FloatsPerVertex is the interleaved size of one vertex: position(3), normal(3), tangent(3), bitangent(3), texcoord(2)
	FloatsPerVertex = 3 + 3 + 3 + 3 + 2

	// QuadFanSize is the number of vertices per fan when drawing without indices
	QuadFanSize = 4
)

// VertexLayout returns the named elements of the interleaved vertex buffer, in order
func VertexLayout() []buffers.Element {
	return []buffers.Element{
		{Name: materials.AttribPosition, ElementType: buffers.DataTypeVec3},
		{Name: materials.AttribNormal, ElementType: buffers.DataTypeVec3},
		{Name: materials.AttribTangent, ElementType: buffers.DataTypeVec3},
		{Name: materials.AttribBitangent, ElementType: buffers.DataTypeVec3},
		{Name: materials.AttribTexCoord, ElementType: buffers.DataTypeVec2},
	}
}

type Mesh struct {
	Name string
	/*
		Vao has one interleaved vertex buffer with the following attributes, wired by name:
			- position
			- normal
			- tangent
			- bitangent
			- texcoord

		Attributes the shader doesn't have are left unwired.
		If the geometry has indices the vao also holds an index buffer.
	*/
	Vao         buffers.VertexArray
	VertexCount int32
	IndexCount  int32

	drawCall DrawCall
}

// NewMesh uploads the geometry as an interleaved vertex buffer and wires it to the attributes of the locator (usually a material).
func NewMesh(name string, geom *geometry.Geometry, locator buffers.AttribLocator) (Mesh, error) {

	vao, err := buffers.NewVertexArray()
	if err != nil {
		return Mesh{}, err
	}

	vbo, err := buffers.NewVertexBuffer(VertexLayout()...)
	if err != nil {
		vao.Delete()
		return Mesh{}, err
	}

	assert.T(vbo.Stride == FloatsPerVertex*4, "Interleaved vertex stride should be %d bytes but is %d", FloatsPerVertex*4, vbo.Stride)

	vbo.SetData(Interleave(geom), buffers.BufUsage_Static_Draw)

	skipped := vao.AddVertexBuffer(vbo, locator)
	for _, attribName := range skipped {
		logging.WarnLog.Printf("Shader attribute '%s' not found for mesh '%s'. The shader won't receive it\n", attribName, name)
	}

	if geom.HasIndices() {

		ibo, err := buffers.NewIndexBuffer()
		if err != nil {
			vao.Delete()
			return Mesh{}, err
		}

		vao.SetIndexBuffer(ibo, geom.Indices())
	}

	mesh := Mesh{
		Name:        name,
		Vao:         vao,
		VertexCount: int32(geom.VertexCount()),
		IndexCount:  int32(len(geom.Indices())),
	}
	mesh.drawCall = drawCallFor(geom)

	return mesh, nil
}

func (m *Mesh) DrawCall() DrawCall {
	return m.drawCall
}

func (m *Mesh) Delete() {
	m.Vao.Delete()
}

type arrToInterleave struct {
	V2s []gglm.Vec2
	V3s []gglm.Vec3
}

func (a *arrToInterleave) get(i int) []float32 {

	assert.T(len(a.V2s) == 0 || len(a.V3s) == 0, "One array should be set in arrToInterleave, but multiple arrays are set")

	if len(a.V2s) > 0 {
		return a.V2s[i].Data[:]
	}

	return a.V3s[i].Data[:]
}

func (a *arrToInterleave) len() int {

	if len(a.V2s) > 0 {
		return len(a.V2s)
	}

	return len(a.V3s)
}

// Interleave packs the geometry into FloatsPerVertex floats per vertex, in VertexLayout order
func Interleave(geom *geometry.Geometry) []float32 {
	return interleave(
		arrToInterleave{V3s: geom.Positions()},
		arrToInterleave{V3s: geom.Normals()},
		arrToInterleave{V3s: geom.Tangents()},
		arrToInterleave{V3s: geom.Bitangents()},
		arrToInterleave{V2s: geom.TexCoords()},
	)
}

func interleave(arrs ...arrToInterleave) []float32 {

	assert.T(len(arrs) > 0, "No input sent to interleave")

	elementCount := arrs[0].len()

	//Calculate final size of the float buffer
	totalSize := 0
	for i := 0; i < len(arrs); i++ {

		assert.T(arrs[i].len() == elementCount, "Mesh vertex data given to interleave is not the same length")

		if len(arrs[i].V2s) > 0 {
			totalSize += len(arrs[i].V2s) * 2
		} else {
			totalSize += len(arrs[i].V3s) * 3
		}
	}

	out := make([]float32, 0, totalSize)
	for i := 0; i < elementCount; i++ {
		for arrToUse := 0; arrToUse < len(arrs); arrToUse++ {
			out = append(out, arrs[arrToUse].get(i)...)
		}
	}

	return out
}
