// Package text provides the string splitting and block formatting helpers used to lay out
// help and usage output.
package text

import (
	"strings"
	"unicode/utf8"
)

// DefaultWidth is the line width used when no positive width is given
const DefaultWidth = 80

// Align controls where padding is placed on a formatted line
type Align int

const (
	AlignLeft Align = iota
	AlignCenter
	AlignRight
)

const (
	delimiterSpace = iota
	delimiterBreak
	delimiterNone
)

// lineDelimiters lists the whitespace recognized by Formatter. "\r\n" precedes "\n" so that the
// two never start at the same position.
var lineDelimiters = []string{" ", "\t", "\r\n", "\n"}

// Formatter breaks prose into lines of at most Width bytes
type Formatter struct {
	Width int
	Align Align
	// PadRight pads lines past their content up to Width (trailing half of the slack for AlignCenter)
	PadRight bool
}

type token struct {
	text      string
	delimiter int
}

// ToBlock wraps s at width using the given alignment without padding past the content of a line
func ToBlock(s string, width int, align Align) []string {
	return Formatter{Width: width, Align: align}.Format(s)
}

// Format splits s into lines. Words are packed greedily, explicit line breaks always start a new line
// and words longer than the width are cut into width-sized chunks.
func (f Formatter) Format(s string) []string {
	width := f.Width
	if width <= 0 {
		width = DefaultWidth
	}

	tokens := tokenize(s, width)
	block := make([]string, 0, len(tokens))
	line := ""
	for i := 0; i < len(tokens); i++ {
		t := tokens[i]
		newLine := false
		// a character wider than the line still gets a line of its own
		if len(line)+len(t.text) <= width || line == "" {
			line += t.text
			switch t.delimiter {
			case delimiterBreak:
				newLine = true
			case delimiterSpace:
				if len(line)+1 <= width {
					line += " "
				} else {
					newLine = true
				}
			}
		} else {
			// close the line and process the token again on a fresh one
			i--
			newLine = true
		}
		if newLine {
			block = append(block, f.finish(line, width))
			line = ""
		}
	}
	if line != "" {
		block = append(block, f.finish(line, width))
	}

	return block
}

func (f Formatter) finish(line string, width int) string {
	return AlignText(strings.TrimRight(line, " "), width, f.Align, f.PadRight)
}

func tokenize(s string, width int) []token {
	words, delimiters := SplitAny(s, lineDelimiters)
	tokens := make([]token, 0, len(words))
	for i, w := range words {
		for len(w) > width {
			cut := chunkEnd(w, width)
			tokens = append(tokens, token{text: w[:cut], delimiter: delimiterBreak})
			w = w[cut:]
		}

		d := delimiterNone
		if i < len(delimiters) {
			d = classify(delimiters[i])
		}
		// runs of blanks collapse, empty lines between two breaks survive
		if w == "" && d != delimiterBreak {
			continue
		}
		tokens = append(tokens, token{text: w, delimiter: d})
	}

	return tokens
}

// chunkEnd returns the largest cut of at most width bytes that does not split a UTF-8 sequence. When the
// first character alone is wider than width it is kept whole.
func chunkEnd(w string, width int) int {
	cut := width
	for cut > 0 && !utf8.RuneStart(w[cut]) {
		cut--
	}
	if cut == 0 {
		_, cut = utf8.DecodeRuneInString(w)
	}

	return cut
}

func classify(delimiter string) int {
	switch delimiter {
	case "\n", "\r\n":
		return delimiterBreak
	default:
		return delimiterSpace
	}
}

// AlignText pads line to width according to align. Padding after the content is only added when padRight is set.
// Lines which are already width bytes or longer are returned unchanged.
func AlignText(line string, width int, align Align, padRight bool) string {
	if len(line) >= width {
		return line
	}

	diff := width - len(line)
	before, after := 0, 0
	switch align {
	case AlignLeft:
		after = diff
	case AlignCenter:
		before = diff / 2
		after = diff - before
	case AlignRight:
		before = diff
	}

	if before > 0 {
		line = strings.Repeat(" ", before) + line
	}
	if after > 0 && padRight {
		line += strings.Repeat(" ", after)
	}

	return line
}
