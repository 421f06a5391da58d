package util

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/littlesmith/arguments/types"
)

type Numeric interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// ParseIntPrefix parses the longest decimal integer at the start of s, after optional leading whitespace
// and an optional sign. It returns the value and the number of bytes consumed. No digits at the start is
// reported as types.ErrMalformed, a value which does not fit in bitSize bits as types.ErrOutOfRange.
func ParseIntPrefix(s string, bitSize int) (int64, int, error) {
	start := skipSpace(s)
	end := start
	if end < len(s) && (s[end] == '+' || s[end] == '-') {
		end++
	}
	digits := scanDigits(s, end)
	if digits == end {
		return 0, 0, malformed(s)
	}

	n, err := strconv.ParseInt(s[start:digits], 10, bitSize)
	if err != nil {
		return 0, 0, rangeError(s[start:digits], bitSize)
	}

	return n, digits, nil
}

// ParseUintPrefix is the unsigned counterpart of ParseIntPrefix. A leading '-' is only accepted for zero,
// any other negative value is out of range.
func ParseUintPrefix(s string, bitSize int) (uint64, int, error) {
	start := skipSpace(s)
	end := start
	negative := false
	if end < len(s) && (s[end] == '+' || s[end] == '-') {
		negative = s[end] == '-'
		end++
	}
	digits := scanDigits(s, end)
	if digits == end {
		return 0, 0, malformed(s)
	}

	n, err := strconv.ParseUint(s[end:digits], 10, bitSize)
	if err != nil || (negative && n != 0) {
		return 0, 0, rangeError(s[start:digits], bitSize)
	}

	return n, digits, nil
}

// ParseFloatPrefix parses the longest floating point number at the start of s: an optional sign, digits with an
// optional fraction and an optional exponent, or one of inf, infinity and nan.
func ParseFloatPrefix(s string, bitSize int) (float64, int, error) {
	start := skipSpace(s)
	end := start
	if end < len(s) && (s[end] == '+' || s[end] == '-') {
		end++
	}

	if word := matchSpecial(s[end:]); word > 0 {
		end += word
	} else {
		mantissa := scanDigits(s, end)
		intDigits := mantissa - end
		fracDigits := 0
		if mantissa < len(s) && s[mantissa] == '.' {
			frac := scanDigits(s, mantissa+1)
			fracDigits = frac - mantissa - 1
			if intDigits > 0 || fracDigits > 0 {
				mantissa = frac
			}
		}
		if intDigits == 0 && fracDigits == 0 {
			return 0, 0, malformed(s)
		}
		end = mantissa
		if end < len(s) && (s[end] == 'e' || s[end] == 'E') {
			exp := end + 1
			if exp < len(s) && (s[exp] == '+' || s[exp] == '-') {
				exp++
			}
			if expDigits := scanDigits(s, exp); expDigits > exp {
				end = expDigits
			}
		}
	}

	f, err := strconv.ParseFloat(s[start:end], bitSize)
	if err != nil || (f == 0 && hasNonZeroMantissa(s[start:end])) {
		return 0, 0, rangeError(s[start:end], bitSize)
	}

	return f, end, nil
}

// Max returns the larger of x and y
func Max[T Numeric](x, y T) T {
	if x > y {
		return x
	}
	return y
}

// hasNonZeroMantissa reports whether the digits before any exponent include one other than zero.
// A literal like that which parses to zero has underflowed.
func hasNonZeroMantissa(literal string) bool {
	mantissa := literal
	if i := strings.IndexAny(literal, "eE"); i >= 0 {
		mantissa = literal[:i]
	}

	return strings.ContainsAny(mantissa, "123456789")
}

func skipSpace(s string) int {
	i := 0
	for i < len(s) && unicode.IsSpace(rune(s[i])) {
		i++
	}

	return i
}

func scanDigits(s string, from int) int {
	i := from
	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		i++
	}

	return i
}

func matchSpecial(s string) int {
	lower := strings.ToLower(s)
	for _, word := range []string{"infinity", "inf", "nan"} {
		if strings.HasPrefix(lower, word) {
			return len(word)
		}
	}

	return 0
}

func malformed(s string) error {
	return types.NewError(types.ErrMalformed, fmt.Sprintf("no number at the start of %q", s))
}

func rangeError(s string, bitSize int) error {
	return types.NewError(types.ErrOutOfRange, fmt.Sprintf("%s does not fit in %d bits", s, bitSize))
}
