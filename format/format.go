// Package format renders parsed control documents back to text. The
// ControlEncoder reproduces control file syntax for round-tripping, the
// JSONEncoder dumps the document structure, and the DumpEncoder prints a
// human-readable debugging view.
package format

import (
	"encoding"

	"github.com/dhamidi/debctrl/parser"
)

type Encoder interface {
	encoding.TextMarshaler
	Encode(doc *parser.Document) error
}
