package format

import (
	"fmt"
	"io"
	"strings"

	"github.com/dhamidi/debctrl/parser"
)

// DumpEncoder prints the parsed structure in a compact debugging form: one
// banner per section, the field names indented, and each chunk prefixed
// with its kind.
type DumpEncoder struct {
	w   io.Writer
	doc *parser.Document
}

func NewDumpEncoder(w io.Writer) *DumpEncoder {
	return &DumpEncoder{w: w}
}

func (e *DumpEncoder) Encode(doc *parser.Document) error {
	e.doc = doc
	text, err := e.MarshalText()
	if err != nil {
		return err
	}
	_, err = e.w.Write(text)
	return err
}

func (e *DumpEncoder) MarshalText() ([]byte, error) {
	var sb strings.Builder

	for i, section := range e.doc.Sections {
		fmt.Fprintf(&sb, "------ Section %d ------\n", i+1)
		for _, block := range section.Blocks {
			fmt.Fprintf(&sb, "  %s\n", block.Name)
			for _, chunk := range block.Chunks {
				switch chunk.Kind {
				case parser.ChunkFixed:
					fmt.Fprintf(&sb, "[fixed] %s\n", chunk.Text)
				case parser.ChunkMerge:
					fmt.Fprintf(&sb, "[merge] %s\n", chunk.Text)
				default:
					fmt.Fprintf(&sb, "[empty]\n")
				}
			}
		}
	}

	return []byte(sb.String()), nil
}
