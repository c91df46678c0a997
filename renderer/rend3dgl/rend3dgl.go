package rend3dgl

import (
	"github.com/bloeys/bumpcube/assert"
	"github.com/bloeys/bumpcube/camera"
	"github.com/bloeys/bumpcube/materials"
	"github.com/bloeys/bumpcube/meshes"
	"github.com/bloeys/bumpcube/renderer"
	"github.com/go-gl/gl/v4.1-core/gl"
)

var _ renderer.Render = &Rend3DGL{}

type Rend3DGL struct{}

// DrawFrame clears the screen, uploads the frame uniforms, rebinds the material and its normal map, then draws the mesh
func (r *Rend3DGL) DrawFrame(cam *camera.Camera, state *renderer.RenderState, mesh *meshes.Mesh, mat *materials.Material) {

	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)

	unifs := renderer.ComputeFrameUniforms(cam, state)
	mat.SetUnifMat4(materials.UnifModelView, &unifs.ModelView)
	mat.SetUnifMat4(materials.UnifProj, &unifs.Proj)
	mat.SetUnifVec3(materials.UnifLightPos, &unifs.LightPos)

	defer mat.BindScoped()()
	mat.SetUnifInt32(materials.UnifNormalMap, int32(materials.TextureSlot_NormalMap))

	defer mesh.Vao.BindScoped()()

	dc := mesh.DrawCall()
	assert.T(dc.Indexed == mesh.Vao.HasIndexBuffer(), "Mesh '%s' draw call indexed=%v doesn't match its vertex array", mesh.Name, dc.Indexed)

	if dc.Indexed {
		gl.DrawElements(gl.TRIANGLES, dc.Count, gl.UNSIGNED_INT, nil)
		return
	}

	if len(dc.FanFirsts) > 0 {
		gl.MultiDrawArrays(gl.TRIANGLE_FAN, &dc.FanFirsts[0], &dc.FanCounts[0], int32(len(dc.FanFirsts)))
	}
}

func NewRend3DGL() *Rend3DGL {
	return &Rend3DGL{}
}
