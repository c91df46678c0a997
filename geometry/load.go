package geometry

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/bloeys/gglm/gglm"
)

// DefaultPositionScale is applied to loaded vertex positions to make the cube asset bigger on screen.
// It is an asset adjustment and not part of the geometry format.
const DefaultPositionScale float32 = 1.2

type LoadOptions struct {
	// PositionScale multiplies every vertex position. Zero means no scaling
	PositionScale float32
}

// jsonGeometry is the persisted geometry record. Indices are optional.
// Entries are decoded as plain slices so a wrong component count can be reported instead of padded
type jsonGeometry struct {
	Vertices   [][]float32 `json:"vertices"`
	UVs        [][]float32 `json:"uvs"`
	Normals    [][]float32 `json:"normals"`
	Tangents   [][]float32 `json:"tangents"`
	Bitangents [][]float32 `json:"bitangents"`
	Indices    []uint32    `json:"indices"`
}

// ComponentCountError is returned when a geometry record entry doesn't have the component count of its attribute
type ComponentCountError struct {
	Array string
	Entry int
	Want  int
	Got   int
}

func (e *ComponentCountError) Error() string {
	return fmt.Sprintf("geometry array '%s' entry %d has %d components but needs %d", e.Array, e.Entry, e.Got, e.Want)
}

// LoadFile loads '.json' geometry records directly and imports everything else through assimp
func LoadFile(path string, opts *LoadOptions) (*Geometry, error) {

	if strings.EqualFold(filepath.Ext(path), ".json") {
		return LoadJSON(path, opts)
	}

	return LoadModel(path, opts)
}

func LoadJSON(path string, opts *LoadOptions) (*Geometry, error) {

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.New("Failed to read geometry file. Err: " + err.Error())
	}

	return ParseJSON(data, opts)
}

func ParseJSON(data []byte, opts *LoadOptions) (*Geometry, error) {

	var jg jsonGeometry
	if err := json.Unmarshal(data, &jg); err != nil {
		return nil, fmt.Errorf("failed to parse geometry json: %w", err)
	}

	positions, err := v3sFromArrays("vertices", jg.Vertices)
	if err != nil {
		return nil, err
	}

	normals, err := v3sFromArrays("normals", jg.Normals)
	if err != nil {
		return nil, err
	}

	tangents, err := v3sFromArrays("tangents", jg.Tangents)
	if err != nil {
		return nil, err
	}

	bitangents, err := v3sFromArrays("bitangents", jg.Bitangents)
	if err != nil {
		return nil, err
	}

	texCoords := make([]gglm.Vec2, len(jg.UVs))
	for i := 0; i < len(jg.UVs); i++ {

		if len(jg.UVs[i]) != 2 {
			return nil, &ComponentCountError{Array: "uvs", Entry: i, Want: 2, Got: len(jg.UVs[i])}
		}

		texCoords[i] = gglm.Vec2{Data: [2]float32{jg.UVs[i][0], jg.UVs[i][1]}}
	}

	if opts != nil {
		scalePositions(positions, opts.PositionScale)
	}

	return New(positions, normals, tangents, bitangents, texCoords, jg.Indices)
}

func v3sFromArrays(arrayName string, arrs [][]float32) ([]gglm.Vec3, error) {

	v3s := make([]gglm.Vec3, len(arrs))
	for i := 0; i < len(arrs); i++ {

		if len(arrs[i]) != 3 {
			return nil, &ComponentCountError{Array: arrayName, Entry: i, Want: 3, Got: len(arrs[i])}
		}

		v3s[i] = gglm.Vec3{Data: [3]float32{arrs[i][0], arrs[i][1], arrs[i][2]}}
	}

	return v3s, nil
}

func scalePositions(positions []gglm.Vec3, scale float32) {

	if scale == 0 || scale == 1 {
		return
	}

	for i := 0; i < len(positions); i++ {
		positions[i].Data[0] *= scale
		positions[i].Data[1] *= scale
		positions[i].Data[2] *= scale
	}
}
