package format

import (
	"io"
	"strings"

	"github.com/dhamidi/debctrl/parser"
)

// ControlEncoder writes a document back out as control file text. Feeding
// the output through the parser again yields the same chunk kinds, order
// and text, provided the original parse raised no duplicate-field warnings.
type ControlEncoder struct {
	w   io.Writer
	doc *parser.Document
}

func NewControlEncoder(w io.Writer) *ControlEncoder {
	return &ControlEncoder{w: w}
}

func (e *ControlEncoder) Encode(doc *parser.Document) error {
	e.doc = doc
	text, err := e.MarshalText()
	if err != nil {
		return err
	}
	_, err = e.w.Write(text)
	return err
}

func (e *ControlEncoder) MarshalText() ([]byte, error) {
	var sb strings.Builder

	first := true
	for _, section := range e.doc.Sections {
		// A section without blocks exists only transiently at the end
		// of input; it renders as nothing.
		if len(section.Blocks) == 0 {
			continue
		}
		if !first {
			sb.WriteString("\n")
		}
		first = false
		for _, block := range section.Blocks {
			sb.WriteString(Block(block))
		}
	}

	return []byte(sb.String()), nil
}

// Block flattens a single block to control file text. The head chunk sits
// on the field line; every following chunk becomes a continuation line:
// " ." for empty chunks, one leading space for mergeable chunks, two for
// fixed-formatting chunks.
func Block(block *parser.Block) string {
	var sb strings.Builder

	sb.WriteString(block.Name)
	sb.WriteString(":")

	chunks := block.Chunks
	if len(chunks) > 0 {
		if head := chunks[0]; head.Kind != parser.ChunkEmpty {
			sb.WriteString(" ")
			sb.WriteString(head.Text)
		}
		chunks = chunks[1:]
	}
	sb.WriteString("\n")

	for _, chunk := range chunks {
		switch chunk.Kind {
		case parser.ChunkEmpty:
			sb.WriteString(" .\n")
		case parser.ChunkFixed:
			sb.WriteString("  ")
			sb.WriteString(chunk.Text)
			sb.WriteString("\n")
		default:
			sb.WriteString(" ")
			sb.WriteString(chunk.Text)
			sb.WriteString("\n")
		}
	}

	return sb.String()
}
