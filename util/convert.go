package util

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/araddon/dateparse"
	"github.com/littlesmith/arguments/types"
)

// ConvertString converts value and stores the result in data, which must be a pointer to one of the
// supported types. Numbers are read from the longest valid prefix of value. Points and rectangles use
// types.DefaultPointFormat. Any other target type fails with types.ErrNotImplemented.
func ConvertString(value string, data any) error {
	switch t := data.(type) {
	case *string:
		*t = value
	case *int:
		n, err := parseInt(value, strconv.IntSize)
		if err != nil {
			return err
		}
		*t = int(n)
	case *int8:
		n, err := parseInt(value, 8)
		if err != nil {
			return err
		}
		*t = int8(n)
	case *int16:
		n, err := parseInt(value, 16)
		if err != nil {
			return err
		}
		*t = int16(n)
	case *int32:
		n, err := parseInt(value, 32)
		if err != nil {
			return err
		}
		*t = int32(n)
	case *int64:
		n, err := parseInt(value, 64)
		if err != nil {
			return err
		}
		*t = n
	case *uint:
		n, err := parseUint(value, strconv.IntSize)
		if err != nil {
			return err
		}
		*t = uint(n)
	case *uint8:
		n, err := parseUint(value, 8)
		if err != nil {
			return err
		}
		*t = uint8(n)
	case *uint16:
		n, err := parseUint(value, 16)
		if err != nil {
			return err
		}
		*t = uint16(n)
	case *uint32:
		n, err := parseUint(value, 32)
		if err != nil {
			return err
		}
		*t = uint32(n)
	case *uint64:
		n, err := parseUint(value, 64)
		if err != nil {
			return err
		}
		*t = n
	case *float32:
		f, _, err := ParseFloatPrefix(value, 32)
		if err != nil {
			return err
		}
		*t = float32(f)
	case *float64:
		f, _, err := ParseFloatPrefix(value, 64)
		if err != nil {
			return err
		}
		*t = f
	case *bool:
		b, err := ParseBool(value)
		if err != nil {
			return err
		}
		*t = b
	case *types.Point:
		p, err := ParsePoint(value, types.DefaultPointFormat)
		if err != nil {
			return err
		}
		*t = p
	case *types.Rectangle:
		r, err := ParseRectangle(value, types.DefaultPointFormat)
		if err != nil {
			return err
		}
		*t = r
	case *time.Time:
		tm, err := dateparse.ParseLocal(value)
		if err != nil {
			return types.NewError(types.ErrMalformed, fmt.Sprintf("%q is not a date: %v", value, err))
		}
		*t = tm
	default:
		return types.NewError(types.ErrNotImplemented,
			fmt.Sprintf("no conversion from string to %s", strings.TrimPrefix(fmt.Sprintf("%T", data), "*")))
	}

	return nil
}

// Coerce converts text to T, see ConvertString for the supported types
func Coerce[T any](text string) (T, error) {
	var result T
	err := ConvertString(text, &result)

	return result, err
}

// CanConvert reports whether data points to a Go type which can hold values of the declared argument type.
// Sized integers of either signedness hold IntType, both float widths hold FloatType and time.Time holds
// DateType. A target that does not match returns types.ErrTypeMismatch, one ConvertString cannot fill
// returns types.ErrNotImplemented.
func CanConvert(data any, typ types.ArgumentType) (bool, error) {
	var target types.ArgumentType
	switch data.(type) {
	case *string:
		target = types.StringType
	case *int, *int8, *int16, *int32, *int64,
		*uint, *uint8, *uint16, *uint32, *uint64:
		target = types.IntType
	case *float32, *float64:
		target = types.FloatType
	case *bool:
		target = types.BoolType
	case *types.Point:
		target = types.PointType
	case *types.Rectangle:
		target = types.RectangleType
	case *time.Time:
		target = types.DateType
	default:
		return false, types.NewError(types.ErrNotImplemented,
			fmt.Sprintf("no conversion from string to %s", strings.TrimPrefix(fmt.Sprintf("%T", data), "*")))
	}

	if target != typ {
		return false, fmt.Errorf(types.FmtErrorWithString, types.ErrTypeMismatch,
			fmt.Sprintf("%s argument cannot be read as %s", typ, target))
	}

	return true, nil
}

func parseInt(value string, bitSize int) (int64, error) {
	n, _, err := ParseIntPrefix(value, bitSize)

	return n, err
}

func parseUint(value string, bitSize int) (uint64, error) {
	n, _, err := ParseUintPrefix(value, bitSize)

	return n, err
}
