package renderer

import (
	"github.com/bloeys/bumpcube/camera"
	"github.com/bloeys/bumpcube/materials"
	"github.com/bloeys/bumpcube/meshes"
	"github.com/bloeys/gglm/gglm"
)

type Render interface {
	DrawFrame(cam *camera.Camera, state *RenderState, mesh *meshes.Mesh, mat *materials.Material)
}

// RenderState is the camera and light state that changes between frames.
// Only the input controller writes it and only the renderer reads it.
type RenderState struct {
	// RotationX and RotationY are in degrees and are not wrapped
	RotationX float32
	RotationY float32
	LightPos  gglm.Vec3
}

func NewRenderState(lightPos gglm.Vec3) *RenderState {
	return &RenderState{LightPos: lightPos}
}

// FrameUniforms are the per-frame values uploaded to the shader
type FrameUniforms struct {
	ModelView gglm.Mat4
	Proj      gglm.Mat4
	LightPos  gglm.Vec3
}

// ComputeFrameUniforms has no side effects, so unchanged state always produces identical uniforms
func ComputeFrameUniforms(cam *camera.Camera, state *RenderState) FrameUniforms {
	return FrameUniforms{
		ModelView: cam.ViewMat(state.RotationX, state.RotationY),
		Proj:      cam.ProjMat,
		LightPos:  state.LightPos,
	}
}
