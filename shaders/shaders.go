package shaders

import (
	"bytes"
	"errors"
	"fmt"
	"os"

	"github.com/bloeys/bumpcube/logging"
)

type Shader struct {
	Id   uint32
	Type ShaderType
}

func (s *Shader) Delete() {
	driver.DeleteShader(s.Id)
	s.Id = 0
}

// Compile compiles the source as a shader of the given stage.
// On failure the shader object is deleted and a *ShaderCompileError with the compiler log is returned.
func Compile(shaderSource []byte, shaderType ShaderType) (Shader, error) {

	shaderId := driver.CreateShader(shaderType.ToGl())
	if shaderId == 0 {
		return Shader{}, fmt.Errorf("failed to create OpenGl %s shader. OpenGl Error=%d", shaderType, driver.GetError())
	}

	ok, compileLog := driver.CompileShader(shaderId, string(shaderSource))
	if !ok {
		driver.DeleteShader(shaderId)
		logging.ErrLog.Println("Compilation of", shaderType, "shader with id", shaderId, "failed. Err:", compileLog)
		return Shader{}, &ShaderCompileError{Stage: shaderType, Log: compileLog}
	}

	return Shader{Id: shaderId, Type: shaderType}, nil
}

// Link links a vertex and fragment shader into a program.
// Both shaders are deleted whether linking succeeds or not, and on failure no program is returned.
func Link(vert, frag Shader) (ShaderProgram, error) {

	defer vert.Delete()
	defer frag.Delete()

	if vert.Type != ShaderType_Vertex || frag.Type != ShaderType_Fragment {
		return ShaderProgram{}, fmt.Errorf("link expects a vertex and a fragment shader but got '%s' and '%s'", vert.Type, frag.Type)
	}

	progId := driver.CreateProgram()
	if progId == 0 {
		return ShaderProgram{}, fmt.Errorf("failed to create shader program. OpenGl Error=%d", driver.GetError())
	}

	driver.AttachShader(progId, vert.Id)
	driver.AttachShader(progId, frag.Id)

	ok, linkLog := driver.LinkProgram(progId)
	if !ok {
		driver.DeleteProgram(progId)
		logging.ErrLog.Println("Linking of shader program with id", progId, "failed. Err:", linkLog)
		return ShaderProgram{}, &ProgramLinkError{Log: linkLog}
	}

	return ShaderProgram{Id: progId}, nil
}

// NewProgram compiles both stages and links them
func NewProgram(vertSrc, fragSrc []byte) (ShaderProgram, error) {

	vert, err := Compile(vertSrc, ShaderType_Vertex)
	if err != nil {
		return ShaderProgram{}, err
	}

	frag, err := Compile(fragSrc, ShaderType_Fragment)
	if err != nil {
		vert.Delete()
		return ShaderProgram{}, err
	}

	return Link(vert, frag)
}

func LoadProgramFiles(vertPath, fragPath string) (ShaderProgram, error) {

	vertSrc, err := os.ReadFile(vertPath)
	if err != nil {
		return ShaderProgram{}, errors.New("Failed to read vertex shader. Err: " + err.Error())
	}

	fragSrc, err := os.ReadFile(fragPath)
	if err != nil {
		return ShaderProgram{}, errors.New("Failed to read fragment shader. Err: " + err.Error())
	}

	return NewProgram(vertSrc, fragSrc)
}

// LoadAndCompileCombinedShaderSrc builds a program from one source holding both stages,
// each starting with a '//shader:vertex' or '//shader:fragment' line
func LoadAndCompileCombinedShaderSrc(shaderSrc []byte) (ShaderProgram, error) {

	vertSrc, fragSrc, err := SplitCombinedShaderSrc(shaderSrc)
	if err != nil {
		return ShaderProgram{}, err
	}

	return NewProgram(vertSrc, fragSrc)
}

func SplitCombinedShaderSrc(shaderSrc []byte) (vertSrc, fragSrc []byte, err error) {

	shaderSources := bytes.Split(shaderSrc, []byte("//shader:"))
	if len(shaderSources) < 2 {
		return nil, nil, errors.New("failed to read combined shader. The shader types to have are '//shader:vertex' and '//shader:fragment'")
	}

	for i := 0; i < len(shaderSources); i++ {

		src := shaderSources[i]

		//This can happen when the shader type is at the start of the file
		if len(bytes.TrimSpace(src)) == 0 {
			continue
		}

		if bytes.HasPrefix(src, []byte("vertex")) {
			vertSrc = src[6:]
		} else if bytes.HasPrefix(src, []byte("fragment")) {
			fragSrc = src[8:]
		} else {
			return nil, nil, errors.New("unknown shader type. Must be '//shader:vertex' or '//shader:fragment'")
		}
	}

	if vertSrc == nil {
		return nil, nil, errors.New("no valid vertex shader found. Please put '//shader:vertex' before your vertex shader")
	}

	if fragSrc == nil {
		return nil, nil, errors.New("no valid fragment shader found. Please put '//shader:fragment' before your fragment shader")
	}

	return vertSrc, fragSrc, nil
}
