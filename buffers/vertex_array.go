package buffers

import (
	"errors"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// AttribLocator resolves a shader attribute name to its location.
// ok is false when the shader has no such (active) attribute.
type AttribLocator interface {
	AttribLoc(name string) (loc uint32, ok bool)
}

type VertexArray struct {
	Id          uint32
	Vbos        []VertexBuffer
	IndexBuffer IndexBuffer
}

func (va *VertexArray) Bind() {
	gl.BindVertexArray(va.Id)
}

func (va *VertexArray) UnBind() {
	gl.BindVertexArray(0)
}

// BindScoped binds the vertex array and returns a func that unbinds it, meant to be deferred
func (va *VertexArray) BindScoped() (unbind func()) {
	va.Bind()
	return va.UnBind
}

// AddVertexBuffer wires each element of the vbo layout to the location of the shader attribute with the same name.
// Elements whose attribute doesn't exist on the shader are skipped and the shader simply won't receive them.
//
// Returns the names of the skipped elements.
func (va *VertexArray) AddVertexBuffer(vbo VertexBuffer, locator AttribLocator) (skipped []string) {

	// NOTE: VBOs are only bound at 'VertexAttribPointer' (and related) calls

	defer va.BindScoped()()
	vbo.Bind()
	defer vbo.UnBind()

	for i := 0; i < len(vbo.layout); i++ {

		l := &vbo.layout[i]

		loc, ok := locator.AttribLoc(l.Name)
		if !ok {
			skipped = append(skipped, l.Name)
			continue
		}

		gl.EnableVertexAttribArray(loc)
		gl.VertexAttribPointerWithOffset(loc, l.ElementType.CompCount(), l.ElementType.GLType(), false, vbo.Stride, uintptr(l.Offset))
	}

	va.Vbos = append(va.Vbos, vbo)
	return skipped
}

// SetIndexBuffer uploads the indices into ib while this vertex array is bound, so the
// element array binding is stored in the vertex array
func (va *VertexArray) SetIndexBuffer(ib IndexBuffer, indices []uint32) {

	defer va.BindScoped()()

	ib.SetData(indices)
	va.IndexBuffer = ib
}

func (va *VertexArray) HasIndexBuffer() bool {
	return va.IndexBuffer.Id != 0
}

// Delete releases the vertex array along with its vertex and index buffers
func (va *VertexArray) Delete() {

	for i := 0; i < len(va.Vbos); i++ {
		va.Vbos[i].Delete()
	}
	va.Vbos = nil

	if va.IndexBuffer.Id != 0 {
		va.IndexBuffer.Delete()
	}

	gl.DeleteVertexArrays(1, &va.Id)
	va.Id = 0
}

func NewVertexArray() (VertexArray, error) {

	vao := VertexArray{}

	gl.GenVertexArrays(1, &vao.Id)
	if vao.Id == 0 {
		return VertexArray{}, errors.New("failed to create OpenGL vertex array object")
	}

	return vao, nil
}
