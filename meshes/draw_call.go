package meshes

import "github.com/bloeys/bumpcube/geometry"

// DrawCall describes how a mesh is submitted.
//
// Indexed meshes draw Count indices as triangles. Otherwise Count vertices are drawn in sequence as
// quad fans: fan i starts at FanFirsts[i] and has FanCounts[i] vertices (the last fan holds any remainder).
type DrawCall struct {
	Indexed bool
	Count   int32

	FanFirsts []int32
	FanCounts []int32
}

// drawCallFor draws the geometry's indices when it has any, otherwise all of its vertices
func drawCallFor(geom *geometry.Geometry) DrawCall {
	return newDrawCall(int32(geom.VertexCount()), int32(len(geom.Indices())))
}

func newDrawCall(vertCount, indexCount int32) DrawCall {

	if indexCount > 0 {
		return DrawCall{Indexed: true, Count: indexCount}
	}

	fanCount := (vertCount + QuadFanSize - 1) / QuadFanSize
	dc := DrawCall{
		Count:     vertCount,
		FanFirsts: make([]int32, fanCount),
		FanCounts: make([]int32, fanCount),
	}

	for i := int32(0); i < fanCount; i++ {

		first := i * QuadFanSize
		dc.FanFirsts[i] = first
		dc.FanCounts[i] = min(QuadFanSize, vertCount-first)
	}

	return dc
}
