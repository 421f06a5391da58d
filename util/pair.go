package util

import (
	"errors"
	"fmt"
	"strings"

	"github.com/littlesmith/arguments/types"
)

var (
	trueWords  = []string{"yes", "on", "true"}
	falseWords = []string{"no", "off", "false"}
)

// ParseBool matches s case-insensitively against yes/on/true and no/off/false. Prefixes do not match.
func ParseBool(s string) (bool, error) {
	for _, w := range trueWords {
		if strings.EqualFold(s, w) {
			return true, nil
		}
	}
	for _, w := range falseWords {
		if strings.EqualFold(s, w) {
			return false, nil
		}
	}

	return false, types.NewError(types.ErrMalformed, fmt.Sprintf("%q is not a boolean", s))
}

func checkPairFormat(format string) error {
	if len(format) != 3 {
		return types.NewError(types.ErrInvalidFormat, fmt.Sprintf("pair format %q must have exactly 3 characters", format))
	}

	return nil
}

// ParsePointPrefix parses <open><int><sep><int><close> at the start of s where open, sep and close are the
// three characters of format. It returns the point and the number of bytes consumed.
func ParsePointPrefix(s, format string) (types.Point, int, error) {
	if err := checkPairFormat(format); err != nil {
		return types.Point{}, 0, err
	}

	if len(s) == 0 || s[0] != format[0] {
		return types.Point{}, 0, types.NewError(types.ErrMalformed, "wrong or missing opening bracket")
	}
	pos := 1

	x, n, err := ParseIntPrefix(s[pos:], 32)
	if err != nil {
		return types.Point{}, 0, err
	}
	pos += n

	if pos >= len(s) || s[pos] != format[1] {
		return types.Point{}, 0, types.NewError(types.ErrMalformed, "wrong or missing separator")
	}
	pos++

	y, n, err := ParseIntPrefix(s[pos:], 32)
	if err != nil {
		return types.Point{}, 0, err
	}
	pos += n

	if pos >= len(s) || s[pos] != format[2] {
		return types.Point{}, 0, types.NewError(types.ErrMalformed, "wrong or missing closing bracket")
	}
	pos++

	return types.Point{X: int32(x), Y: int32(y)}, pos, nil
}

// ParsePoint parses s as a single point, see ParsePointPrefix. Text after the closing bracket is malformed.
func ParsePoint(s, format string) (types.Point, error) {
	p, n, err := ParsePointPrefix(s, format)
	if err != nil {
		return types.Point{}, err
	}
	if n != len(s) {
		return types.Point{}, types.NewError(types.ErrMalformed, fmt.Sprintf("unexpected %q after point", s[n:]))
	}

	return p, nil
}

// FormatPoint is the inverse of ParsePoint
func FormatPoint(p types.Point, format string) (string, error) {
	if err := checkPairFormat(format); err != nil {
		return "", err
	}

	return fmt.Sprintf("%c%d%c%d%c", format[0], p.X, format[1], p.Y, format[2]), nil
}

// ParseRectangle parses two points separated by '-', for instance [0:0]-[10:20] with format "[:]".
func ParseRectangle(s, format string) (types.Rectangle, error) {
	upperLeft, n, err := ParsePointPrefix(s, format)
	if err != nil {
		return types.Rectangle{}, rectangleError(err)
	}
	rest := s[n:]
	if !strings.HasPrefix(rest, "-") {
		return types.Rectangle{}, types.NewError(types.ErrMalformed, "wrong format for rectangle")
	}

	lowerRight, err := ParsePoint(rest[1:], format)
	if err != nil {
		return types.Rectangle{}, rectangleError(err)
	}

	return types.Rectangle{UpperLeft: upperLeft, LowerRight: lowerRight}, nil
}

// FormatRectangle is the inverse of ParseRectangle
func FormatRectangle(r types.Rectangle, format string) (string, error) {
	upperLeft, err := FormatPoint(r.UpperLeft, format)
	if err != nil {
		return "", err
	}
	lowerRight, err := FormatPoint(r.LowerRight, format)
	if err != nil {
		return "", err
	}

	return upperLeft + "-" + lowerRight, nil
}

// rectangleError keeps the kind of a point failure but reports it as a rectangle problem
func rectangleError(err error) error {
	if errors.Is(err, types.ErrOutOfRange) || errors.Is(err, types.ErrInvalidFormat) {
		return err
	}

	return types.NewError(types.ErrMalformed, "wrong format for rectangle")
}
