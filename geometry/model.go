package geometry

import (
	"errors"

	"github.com/bloeys/assimp-go/asig"
	"github.com/bloeys/gglm/gglm"
	"github.com/go-gl/mathgl/mgl32"
)

var (
	// ModelLoadFlags are applied when importing a model file.
	// Tangents are required by the bump mapping shader so tangent space calculation must stay on
	ModelLoadFlags asig.PostProcess = asig.PostProcessTriangulate | asig.PostProcessCalcTangentSpace
)

// LoadModel imports a model through assimp and merges all of its meshes into one geometry.
// Bitangents computed by assimp are used as is. Meshes without them get normal x tangent.
func LoadModel(path string, opts *LoadOptions) (*Geometry, error) {

	scene, release, err := asig.ImportFile(path, ModelLoadFlags)
	if err != nil {
		return nil, errors.New("Failed to load model. Err: " + err.Error())
	}
	defer release()

	if len(scene.Meshes) == 0 {
		return nil, errors.New("No meshes found in file: " + path)
	}

	vertCount := len(scene.Meshes[0].Vertices)
	positions := make([]gglm.Vec3, 0, vertCount)
	normals := make([]gglm.Vec3, 0, vertCount)
	tangents := make([]gglm.Vec3, 0, vertCount)
	bitangents := make([]gglm.Vec3, 0, vertCount)
	texCoords := make([]gglm.Vec2, 0, vertCount)
	indices := make([]uint32, 0, len(scene.Meshes[0].Faces)*3)

	for i := 0; i < len(scene.Meshes); i++ {

		sceneMesh := scene.Meshes[i]

		// Missing tangents/uvs are zero filled so all arrays keep the same length
		if len(sceneMesh.Tangents) == 0 {
			sceneMesh.Tangents = make([]gglm.Vec3, len(sceneMesh.Vertices))
		}

		if len(sceneMesh.TexCoords[0]) == 0 {
			sceneMesh.TexCoords[0] = make([]gglm.Vec3, len(sceneMesh.Vertices))
		}

		baseVertex := uint32(len(positions))
		for _, f := range sceneMesh.Faces {
			for _, idx := range f.Indices {
				indices = append(indices, baseVertex+uint32(idx))
			}
		}

		positions = append(positions, sceneMesh.Vertices...)
		normals = append(normals, sceneMesh.Normals...)
		tangents = append(tangents, sceneMesh.Tangents...)
		bitangents = append(bitangents, meshBitangents(len(sceneMesh.Vertices), sceneMesh.Normals, sceneMesh.Tangents, sceneMesh.BitTangents)...)
		texCoords = append(texCoords, v3sToV2s(sceneMesh.TexCoords[0])...)
	}

	if opts != nil {
		scalePositions(positions, opts.PositionScale)
	}

	return New(positions, normals, tangents, bitangents, texCoords, indices)
}

// meshBitangents keeps imported bitangents when there is one per vertex, since they carry the
// handedness of mirrored uvs. Otherwise they are derived from the normals and tangents.
func meshBitangents(vertCount int, normals, tangents, imported []gglm.Vec3) []gglm.Vec3 {

	if len(imported) == vertCount {
		return imported
	}

	return deriveBitangents(normals, tangents)
}

func deriveBitangents(normals, tangents []gglm.Vec3) []gglm.Vec3 {

	count := len(normals)
	if len(tangents) < count {
		count = len(tangents)
	}

	bitangents := make([]gglm.Vec3, count)
	for i := 0; i < count; i++ {
		b := mgl32.Vec3(normals[i].Data).Cross(mgl32.Vec3(tangents[i].Data))
		bitangents[i] = gglm.Vec3{Data: [3]float32(b)}
	}

	return bitangents
}

func v3sToV2s(v3s []gglm.Vec3) []gglm.Vec2 {

	v2s := make([]gglm.Vec2, len(v3s))
	for i := 0; i < len(v3s); i++ {
		v2s[i] = gglm.Vec2{
			Data: [2]float32{v3s[i].Data[0], v3s[i].Data[1]},
		}
	}

	return v2s
}
