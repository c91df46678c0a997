package shaders

import (
	"github.com/go-gl/gl/v4.1-core/gl"
)

// ShaderProgram is a linked program. The shader objects it was linked from are already deleted.
type ShaderProgram struct {
	Id uint32
}

func (sp *ShaderProgram) Bind() {
	gl.UseProgram(sp.Id)
}

func (sp *ShaderProgram) UnBind() {
	gl.UseProgram(0)
}

// BindScoped makes the program current and returns a func that unbinds it, meant to be deferred
func (sp *ShaderProgram) BindScoped() (unbind func()) {
	sp.Bind()
	return sp.UnBind
}

// AttribLoc returns the location of an active vertex attribute.
// ok is false if the program has no such attribute (e.g. it was optimized out).
func (sp *ShaderProgram) AttribLoc(name string) (loc uint32, ok bool) {

	l := gl.GetAttribLocation(sp.Id, gl.Str(name+"\x00"))
	if l < 0 {
		return 0, false
	}

	return uint32(l), true
}

// UniformLoc returns the location of an active uniform, with ok=false if the uniform doesn't exist
func (sp *ShaderProgram) UniformLoc(name string) (loc int32, ok bool) {

	loc = gl.GetUniformLocation(sp.Id, gl.Str(name+"\x00"))
	return loc, loc != -1
}

func (sp *ShaderProgram) Delete() {
	driver.DeleteProgram(sp.Id)
	sp.Id = 0
}
