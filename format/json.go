package format

import (
	"encoding/json"
	"io"

	"github.com/dhamidi/debctrl/parser"
)

type JSONEncoder struct {
	w   io.Writer
	doc *parser.Document
}

func NewJSONEncoder(w io.Writer) *JSONEncoder {
	return &JSONEncoder{w: w}
}

func (e *JSONEncoder) Encode(doc *parser.Document) error {
	e.doc = doc
	text, err := e.MarshalText()
	if err != nil {
		return err
	}
	_, err = e.w.Write(text)
	return err
}

func (e *JSONEncoder) MarshalText() ([]byte, error) {
	data := e.buildDocumentData()
	return json.MarshalIndent(data, "", "  ")
}

type jsonDocument struct {
	Path     string        `json:"path,omitempty"`
	Sections []jsonSection `json:"sections"`
}

type jsonSection struct {
	Blocks []jsonBlock `json:"blocks"`
}

type jsonBlock struct {
	Name   string      `json:"name"`
	Chunks []jsonChunk `json:"chunks"`
}

type jsonChunk struct {
	Kind string `json:"kind"`
	Text string `json:"text,omitempty"`
	Line int    `json:"line"`
}

func (e *JSONEncoder) buildDocumentData() jsonDocument {
	data := jsonDocument{
		Path:     e.doc.Context().Path,
		Sections: []jsonSection{},
	}
	for _, section := range e.doc.Sections {
		data.Sections = append(data.Sections, jsonSection{
			Blocks: buildBlocks(section),
		})
	}
	return data
}

func buildBlocks(section *parser.Section) []jsonBlock {
	result := make([]jsonBlock, len(section.Blocks))
	for i, block := range section.Blocks {
		chunks := make([]jsonChunk, len(block.Chunks))
		for j, chunk := range block.Chunks {
			chunks[j] = jsonChunk{
				Kind: chunk.Kind.String(),
				Text: chunk.Text,
				Line: chunk.Ctx.Line,
			}
		}
		result[i] = jsonBlock{
			Name:   block.Name,
			Chunks: chunks,
		}
	}
	return result
}
