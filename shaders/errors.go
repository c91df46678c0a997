package shaders

import "fmt"

// ShaderCompileError carries the compiler's info log verbatim
type ShaderCompileError struct {
	Stage ShaderType
	Log   string
}

func (e *ShaderCompileError) Error() string {
	return fmt.Sprintf("failed to compile %s shader: %s", e.Stage, e.Log)
}

// ProgramLinkError carries the linker's info log verbatim
type ProgramLinkError struct {
	Log string
}

func (e *ProgramLinkError) Error() string {
	return "failed to link shader program: " + e.Log
}
