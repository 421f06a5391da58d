package parse

// Cursor walks over a list of command-line tokens
type Cursor interface {
	CurrentArg() string // Get the current argument
	Advance() bool      // Move to the next argument, false when the list is exhausted
}

// DefaultCursor is the default implementation of the Cursor interface
type DefaultCursor struct {
	pos  int
	args []string
}

// NewCursor creates a new Cursor positioned before the first argument
func NewCursor(args []string) Cursor {
	return &DefaultCursor{
		pos:  -1,
		args: args,
	}
}

// CurrentArg returns the current argument, or "" before the first call to Advance
func (c *DefaultCursor) CurrentArg() string {
	if c.pos < 0 || c.pos >= len(c.args) {
		return ""
	}
	return c.args[c.pos]
}

// Advance advances to the next argument, returning true if successful
func (c *DefaultCursor) Advance() bool {
	if c.pos+1 < len(c.args) {
		c.pos++
		return true
	}
	return false
}
