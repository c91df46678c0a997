package renderer

import (
	"testing"

	"github.com/bloeys/bumpcube/camera"
	"github.com/bloeys/gglm/gglm"
	"github.com/stretchr/testify/assert"
)

func TestComputeFrameUniformsIdempotent(t *testing.T) {

	cam := camera.NewPerspective(&camera.DefaultPullBack, 45, 800.0/600, 0.1, 50)
	state := NewRenderState(gglm.NewVec3(1, 2, 3))
	state.RotationX = 25
	state.RotationY = -40

	first := ComputeFrameUniforms(&cam, state)
	for i := 0; i < 50; i++ {
		assert.Equal(t, first, ComputeFrameUniforms(&cam, state))
	}

	assert.Equal(t, cam.ProjMat, first.Proj)
	assert.Equal(t, [3]float32{1, 2, 3}, first.LightPos.Data)
	assert.Equal(t, cam.ViewMat(25, -40), first.ModelView)
}

func TestComputeFrameUniformsFollowsState(t *testing.T) {

	cam := camera.NewPerspective(&camera.DefaultPullBack, 45, 1, 0.1, 50)
	state := NewRenderState(gglm.NewVec3(0, 0, 2))

	before := ComputeFrameUniforms(&cam, state)

	state.RotationY += 5
	state.LightPos.Data[0] = -5

	after := ComputeFrameUniforms(&cam, state)
	assert.NotEqual(t, before.ModelView, after.ModelView)
	assert.Equal(t, before.Proj, after.Proj)
	assert.Equal(t, [3]float32{-5, 0, 2}, after.LightPos.Data)
}
