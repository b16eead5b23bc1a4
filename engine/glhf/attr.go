package glhf

// AttrFormat defines names and types of OpenGL attributes (vertex format, uniform format, etc.).
//
// Example:
//
//	AttrFormat{{"position", Vec3}, {"life", Float}}
type AttrFormat []Attr

// Size returns the total size of all attributes of the AttrFormat in bytes.
func (af AttrFormat) Size() int {
	total := 0
	for _, attr := range af {
		total += attr.Type.Size()
	}
	return total
}

// Attr represents an arbitrary OpenGL attribute, such as a vertex attribute or a shader
// uniform attribute.
type Attr struct {
	Name string
	Type AttrType
}

// AttrType represents the type of an OpenGL attribute.
type AttrType int

// List of all possible attribute types.
const (
	Int AttrType = iota
	UInt
	Float
	Vec2
	Vec3
	Vec4
	Mat4
)

// Size returns the size of a type in bytes.
func (at AttrType) Size() int {
	switch at {
	case Int, UInt, Float:
		return 4
	case Vec2:
		return 2 * 4
	case Vec3:
		return 3 * 4
	case Vec4:
		return 4 * 4
	case Mat4:
		return 16 * 4
	default:
		panic("size of vertex attribute type: invalid type")
	}
}
