package parser

import "fmt"

// Context identifies where in the input a chunk or diagnostic originated.
// It is copied by value onto every chunk, so a chunk's context stays stable
// even while the parser's own context advances.
type Context struct {
	Path string
	Line int
}

func (c Context) String() string {
	return fmt.Sprintf("%s line %d", c.Path, c.Line)
}
