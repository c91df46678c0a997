package camera

import (
	"testing"

	"github.com/bloeys/gglm/gglm"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
)

func toMgl(m gglm.Mat4) mgl32.Mat4 {

	var out mgl32.Mat4
	for col := 0; col < 4; col++ {
		for row := 0; row < 4; row++ {
			out[col*4+row] = m.Data[col][row]
		}
	}

	return out
}

func transformPoint(m gglm.Mat4, x, y, z float32) mgl32.Vec3 {
	return toMgl(m).Mul4x1(mgl32.Vec4{x, y, z, 1}).Vec3()
}

func TestViewMatNoRotation(t *testing.T) {

	cam := NewPerspective(&DefaultPullBack, 45, 800.0/600, 0.1, 50)
	view := cam.ViewMat(0, 0)

	assert.Equal(t, ToGglmMat4(mgl32.Translate3D(0, 0, -3)), view)
}

func TestViewMatYawThenPitch(t *testing.T) {

	cam := NewPerspective(&DefaultPullBack, 45, 1, 0.1, 50)

	// Yaw of 90 degrees maps +X onto -Z, then the camera pulls back
	p := transformPoint(cam.ViewMat(0, 90), 1, 0, 0)
	assert.InDelta(t, 0, p[0], 1e-5)
	assert.InDelta(t, 0, p[1], 1e-5)
	assert.InDelta(t, -4, p[2], 1e-5)

	// Pitch is applied to the model first, so +Y pitched by 90 is +Z, then yawed by 90 is +X
	p = transformPoint(cam.ViewMat(90, 90), 0, 1, 0)
	assert.InDelta(t, 1, p[0], 1e-5)
	assert.InDelta(t, 0, p[1], 1e-5)
	assert.InDelta(t, -3, p[2], 1e-5)
}

func TestViewMatIsDeterministic(t *testing.T) {

	cam := NewPerspective(&DefaultPullBack, 45, 1, 0.1, 50)

	first := cam.ViewMat(35, -20)
	for i := 0; i < 100; i++ {
		assert.Equal(t, first, cam.ViewMat(35, -20))
	}
}

func TestProjMat(t *testing.T) {

	cam := NewPerspective(&DefaultPullBack, 45, 800.0/600, 0.1, 50)
	want := ToGglmMat4(mgl32.Perspective(mgl32.DegToRad(45), 800.0/600, 0.1, 50))

	assert.Equal(t, want, cam.ProjMat)
	assert.Equal(t, float32(-1), cam.ProjMat.Data[2][3])
}

func TestToGglmMat4(t *testing.T) {

	m := mgl32.Translate3D(1, 2, 3)
	g := ToGglmMat4(m)

	// Translation lives in the last column
	assert.Equal(t, [4]float32{1, 2, 3, 1}, g.Data[3])
}
