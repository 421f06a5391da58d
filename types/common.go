package types

import "fmt"

// ArgumentType defines the semantic type of an Argument value
type ArgumentType int

const (
	StringType    ArgumentType = iota // StringType denotes free text
	IntType                           // IntType denotes a signed integral value
	FloatType                         // FloatType denotes a floating point value
	BoolType                          // BoolType denotes yes/no, on/off or true/false
	PointType                         // PointType denotes a coordinate pair such as [10:20]
	RectangleType                     // RectangleType denotes two coordinate pairs such as [0:0]-[10:20]
	DateType                          // DateType denotes a date or timestamp in any common layout
)

// String returns the string representation of an ArgumentType
func (t ArgumentType) String() string {
	switch t {
	case StringType:
		return "string"
	case IntType:
		return "int"
	case FloatType:
		return "float"
	case BoolType:
		return "bool"
	case PointType:
		return "point"
	case RectangleType:
		return "rectangle"
	case DateType:
		return "date"
	default:
		return fmt.Sprintf("ArgumentType(%d)", int(t))
	}
}

// DefaultPointFormat holds the opening bracket, separator and closing bracket used for Point and Rectangle values
const DefaultPointFormat = "[:]"

// Point is a pair of 32-bit coordinates
type Point struct {
	X int32
	Y int32
}

// Rectangle is described by its upper left and lower right corners
type Rectangle struct {
	UpperLeft  Point
	LowerRight Point
}

// String renders p using DefaultPointFormat
func (p Point) String() string {
	return fmt.Sprintf("[%d:%d]", p.X, p.Y)
}

// String renders r using DefaultPointFormat
func (r Rectangle) String() string {
	return r.UpperLeft.String() + "-" + r.LowerRight.String()
}

// Width returns the horizontal extent of r
func (r Rectangle) Width() int64 {
	return int64(r.LowerRight.X) - int64(r.UpperLeft.X)
}

// Height returns the vertical extent of r
func (r Rectangle) Height() int64 {
	return int64(r.LowerRight.Y) - int64(r.UpperLeft.Y)
}
