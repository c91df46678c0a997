package geometry

import (
	"testing"

	"github.com/bloeys/gglm/gglm"
	"github.com/stretchr/testify/assert"
)

func TestDeriveBitangents(t *testing.T) {

	normals := []gglm.Vec3{gglm.NewVec3(0, 0, 1), gglm.NewVec3(0, 1, 0)}
	tangents := []gglm.Vec3{gglm.NewVec3(1, 0, 0), gglm.NewVec3(1, 0, 0)}

	b := deriveBitangents(normals, tangents)
	assert.Len(t, b, 2)
	assert.Equal(t, [3]float32{0, 1, 0}, b[0].Data)
	assert.Equal(t, [3]float32{0, 0, -1}, b[1].Data)
}

func TestV3sToV2s(t *testing.T) {

	v2 := v3sToV2s([]gglm.Vec3{gglm.NewVec3(0.25, 0.75, 9)})
	assert.Equal(t, [2]float32{0.25, 0.75}, v2[0].Data)
}

func TestMeshBitangents(t *testing.T) {

	normals := []gglm.Vec3{gglm.NewVec3(0, 0, 1), gglm.NewVec3(0, 0, 1)}
	tangents := []gglm.Vec3{gglm.NewVec3(1, 0, 0), gglm.NewVec3(1, 0, 0)}

	// Mirrored uvs give a bitangent opposite to normal x tangent, which must survive
	imported := []gglm.Vec3{gglm.NewVec3(0, 1, 0), gglm.NewVec3(0, -1, 0)}
	b := meshBitangents(2, normals, tangents, imported)
	assert.Equal(t, imported, b)

	// Missing or partial imported bitangents fall back to derivation
	for _, partial := range [][]gglm.Vec3{nil, imported[:1]} {
		b = meshBitangents(2, normals, tangents, partial)
		assert.Len(t, b, 2)
		assert.Equal(t, [3]float32{0, 1, 0}, b[0].Data)
		assert.Equal(t, [3]float32{0, 1, 0}, b[1].Data)
	}
}
