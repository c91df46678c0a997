package camera

import (
	"github.com/bloeys/gglm/gglm"
	"github.com/go-gl/mathgl/mgl32"
)

// DefaultPullBack is the camera translation used when none is configured
var DefaultPullBack = gglm.NewVec3(0, 0, -3)

// Camera is a fixed perspective camera looking down -Z from Translation.
// The projection is computed once at creation and never changes.
type Camera struct {
	Translation gglm.Vec3

	// Fov is the vertical field of view in degrees
	Fov         float32
	AspectRatio float32
	NearClip    float32
	FarClip     float32

	ProjMat gglm.Mat4
}

// ViewMat returns Translation * RotY(rotYDeg) * RotX(rotXDeg), so yaw is applied before pitch
// and both rotate about the origin.
func (c *Camera) ViewMat(rotXDeg, rotYDeg float32) gglm.Mat4 {

	tr := c.Translation.Data
	view := mgl32.Translate3D(tr[0], tr[1], tr[2]).
		Mul4(mgl32.HomogRotate3DY(mgl32.DegToRad(rotYDeg))).
		Mul4(mgl32.HomogRotate3DX(mgl32.DegToRad(rotXDeg)))

	return ToGglmMat4(view)
}

func (c *Camera) updateProjMat() {
	c.ProjMat = ToGglmMat4(mgl32.Perspective(mgl32.DegToRad(c.Fov), c.AspectRatio, c.NearClip, c.FarClip))
}

// ToGglmMat4 converts a column major mgl32 matrix into the gglm layout used for uniform uploads
func ToGglmMat4(m mgl32.Mat4) gglm.Mat4 {

	out := gglm.Mat4{}
	for col := 0; col < 4; col++ {
		for row := 0; row < 4; row++ {
			out.Data[col][row] = m[col*4+row]
		}
	}

	return out
}

// NewPerspective creates a camera with its projection already computed. fovDeg is in degrees
func NewPerspective(translation *gglm.Vec3, fovDeg, aspectRatio, nearClip, farClip float32) Camera {

	cam := Camera{
		Translation: *translation,
		Fov:         fovDeg,
		AspectRatio: aspectRatio,
		NearClip:    nearClip,
		FarClip:     farClip,
	}

	cam.updateProjMat()
	return cam
}
