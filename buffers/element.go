package buffers

import (
	"github.com/bloeys/bumpcube/assert"
	"github.com/go-gl/gl/v4.1-core/gl"
)

// Element represents one named attribute that makes up a vertex buffer (e.g. 'normal' as a Vec3 at an offset of 12 bytes)
type Element struct {
	// Name is the shader attribute the element feeds
	Name   string
	Offset int
	ElementType
}

// ElementType is the type of an element thats makes up a buffer (e.g. Vec3)
type ElementType uint8

const (
	DataTypeUnknown ElementType = iota
	DataTypeVec2
	DataTypeVec3
)

func (dt ElementType) GLType() uint32 {

	switch dt {

	case DataTypeVec2:
		fallthrough
	case DataTypeVec3:
		return gl.FLOAT

	default:
		assert.T(false, "Unknown data type passed. DataType '%d'", dt)
		return 0
	}
}

// CompSize returns the size in bytes for one component of the type (e.g. for Vec2 its 4)
func (dt ElementType) CompSize() int32 {

	switch dt {

	case DataTypeVec2:
		fallthrough
	case DataTypeVec3:
		return 4

	default:
		assert.T(false, "Unknown data type passed. DataType '%d'", dt)
		return 0
	}
}

// CompCount returns the number of components in the element (e.g. for Vec2 its 2)
func (dt ElementType) CompCount() int32 {

	switch dt {

	case DataTypeVec2:
		return 2
	case DataTypeVec3:
		return 3

	default:
		assert.T(false, "Unknown data type passed. DataType '%d'", dt)
		return 0
	}
}

// Size returns the total size in bytes (e.g. for vec3 its 3*4=12 bytes)
func (dt ElementType) Size() int32 {
	return dt.CompSize() * dt.CompCount()
}

func (dt ElementType) String() string {

	switch dt {

	case DataTypeVec2:
		return "Vec2"
	case DataTypeVec3:
		return "Vec3"

	default:
		return "Unknown"
	}
}

// Layout computes element offsets in order and returns the resulting stride in bytes
func Layout(elements []Element) (stride int32) {

	for i := 0; i < len(elements); i++ {
		elements[i].Offset = int(stride)
		stride += elements[i].Size()
	}

	return stride
}
