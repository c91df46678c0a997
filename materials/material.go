package materials

import (
	"github.com/bloeys/bumpcube/logging"
	"github.com/bloeys/bumpcube/shaders"
	"github.com/bloeys/gglm/gglm"
	"github.com/go-gl/gl/v4.1-core/gl"
)

// Names shared with the shader sources
const (
	AttribPosition  = "position"
	AttribNormal    = "normal"
	AttribTangent   = "tangent"
	AttribBitangent = "bitangent"
	AttribTexCoord  = "texcoord"

	UnifModelView = "modelview"
	UnifProj      = "projection"
	UnifLightPos  = "light_pos"
	UnifNormalMap = "normal_map"
)

type TextureSlot uint32

const (
	TextureSlot_NormalMap TextureSlot = 0
)

// Material is a shader program plus the textures it samples.
//
// Uniforms and attributes are looked up by name and cached, including misses.
// Setting a uniform the shader doesn't have is a no-op.
type Material struct {
	Name       string
	ShaderProg shaders.ShaderProgram

	UnifLocs   map[string]int32
	AttribLocs map[string]int32

	NormalTex uint32
}

// Bind makes the program current and binds the normal map to its texture slot.
// Binding isn't assumed to persist so this is expected to be called every frame.
func (m *Material) Bind() {

	m.ShaderProg.Bind()

	gl.ActiveTexture(uint32(gl.TEXTURE0 + TextureSlot_NormalMap))
	gl.BindTexture(gl.TEXTURE_2D, m.NormalTex)
}

func (m *Material) UnBind() {

	gl.ActiveTexture(uint32(gl.TEXTURE0 + TextureSlot_NormalMap))
	gl.BindTexture(gl.TEXTURE_2D, 0)

	m.ShaderProg.UnBind()
}

// BindScoped binds the material and returns a func that unbinds it, meant to be deferred
func (m *Material) BindScoped() (unbind func()) {
	m.Bind()
	return m.UnBind
}

// AttribLoc implements buffers.AttribLocator
func (m *Material) AttribLoc(attribName string) (uint32, bool) {

	loc, ok := m.AttribLocs[attribName]
	if !ok {
		l, found := m.ShaderProg.AttribLoc(attribName)
		loc = -1
		if found {
			loc = int32(l)
		}

		m.AttribLocs[attribName] = loc
	}

	if loc < 0 {
		return 0, false
	}

	return uint32(loc), true
}

func (m *Material) UnifLoc(uniformName string) (int32, bool) {

	loc, ok := m.UnifLocs[uniformName]
	if !ok {
		loc, _ = m.ShaderProg.UniformLoc(uniformName)
		m.UnifLocs[uniformName] = loc

		if loc == -1 {
			logging.WarnLog.Printf("Uniform '%s' doesn't exist on material '%s' and won't be set\n", uniformName, m.Name)
		}
	}

	return loc, loc != -1
}

func (m *Material) SetUnifInt32(uniformName string, val int32) {

	loc, ok := m.UnifLoc(uniformName)
	if !ok {
		return
	}

	gl.ProgramUniform1i(m.ShaderProg.Id, loc, val)
}

func (m *Material) SetUnifVec3(uniformName string, vec3 *gglm.Vec3) {

	loc, ok := m.UnifLoc(uniformName)
	if !ok {
		return
	}

	gl.ProgramUniform3fv(m.ShaderProg.Id, loc, 1, &vec3.Data[0])
}

func (m *Material) SetUnifMat4(uniformName string, mat4 *gglm.Mat4) {

	loc, ok := m.UnifLoc(uniformName)
	if !ok {
		return
	}

	gl.ProgramUniformMatrix4fv(m.ShaderProg.Id, loc, 1, false, &mat4.Data[0][0])
}

// Delete releases the shader program. Textures are owned by whoever created them
func (m *Material) Delete() {
	m.ShaderProg.Delete()
}

func NewMaterial(matName string, shdrProg shaders.ShaderProgram, normalTex uint32) Material {
	return Material{
		Name:       matName,
		ShaderProg: shdrProg,
		UnifLocs:   make(map[string]int32),
		AttribLocs: make(map[string]int32),
		NormalTex:  normalTex,
	}
}
