package shaders

import (
	"strings"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// glDriver is the subset of OpenGL the program builder needs.
// Tests replace 'driver' with a fake so compile and link failures can be exercised without a GL context.
type glDriver interface {
	CreateShader(shaderType uint32) uint32
	CompileShader(shaderId uint32, src string) (ok bool, log string)
	DeleteShader(shaderId uint32)

	CreateProgram() uint32
	AttachShader(progId, shaderId uint32)
	LinkProgram(progId uint32) (ok bool, log string)
	DeleteProgram(progId uint32)

	GetError() uint32
}

var driver glDriver = openGL{}

type openGL struct{}

func (openGL) CreateShader(shaderType uint32) uint32 {
	return gl.CreateShader(shaderType)
}

func (openGL) CompileShader(shaderId uint32, src string) (ok bool, log string) {

	shaderCStr, shaderFree := gl.Strs(src + "\x00")
	defer shaderFree()
	gl.ShaderSource(shaderId, 1, shaderCStr, nil)

	gl.CompileShader(shaderId)

	var compiledSuccessfully int32
	gl.GetShaderiv(shaderId, gl.COMPILE_STATUS, &compiledSuccessfully)
	if compiledSuccessfully == gl.TRUE {
		return true, ""
	}

	var logLength int32
	gl.GetShaderiv(shaderId, gl.INFO_LOG_LENGTH, &logLength)
	if logLength == 0 {
		return false, ""
	}

	infoLog := gl.Str(strings.Repeat("\x00", int(logLength)))
	gl.GetShaderInfoLog(shaderId, logLength, nil, infoLog)

	return false, gl.GoStr(infoLog)
}

func (openGL) DeleteShader(shaderId uint32) {
	gl.DeleteShader(shaderId)
}

func (openGL) CreateProgram() uint32 {
	return gl.CreateProgram()
}

func (openGL) AttachShader(progId, shaderId uint32) {
	gl.AttachShader(progId, shaderId)
}

func (openGL) LinkProgram(progId uint32) (ok bool, log string) {

	gl.LinkProgram(progId)

	var linkedSuccessfully int32
	gl.GetProgramiv(progId, gl.LINK_STATUS, &linkedSuccessfully)
	if linkedSuccessfully == gl.TRUE {
		return true, ""
	}

	var logLength int32
	gl.GetProgramiv(progId, gl.INFO_LOG_LENGTH, &logLength)
	if logLength == 0 {
		return false, ""
	}

	infoLog := gl.Str(strings.Repeat("\x00", int(logLength)))
	gl.GetProgramInfoLog(progId, logLength, nil, infoLog)

	return false, gl.GoStr(infoLog)
}

func (openGL) DeleteProgram(progId uint32) {
	gl.DeleteProgram(progId)
}

func (openGL) GetError() uint32 {
	return gl.GetError()
}
