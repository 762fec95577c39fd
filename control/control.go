// Package control extracts semantic information about a debian/control
// source package file from a parsed document. Where package parser handles
// the syntax, this package understands what the fields mean: the first
// paragraph describes the source package and every later paragraph one of
// the binary packages it builds.
//
// The mapping is read only. It navigates the document's sections, blocks
// and chunks without mutating their linkage, so the document can still be
// flattened back to text afterwards.
package control

import (
	"fmt"
	"strings"

	"github.com/dhamidi/debctrl/parser"
)

// Control is the semantic view of one debian/control file.
type Control struct {
	Source   Source
	Binaries []Binary
}

// Source describes the source package paragraph.
type Source struct {
	Name             string
	Maintainer       string
	Section          string
	Priority         string
	StandardsVersion string
	BuildDepends     string
}

// Binary describes one binary package paragraph.
type Binary struct {
	Package      string
	Architecture string
	Depends      string
	Synopsis     string
	Description  []string
}

// Parse maps a parsed document onto the control file semantics. Package
// naming violations and structural oddities that Policy tolerates are
// reported as warnings through the document's handler; a missing source
// paragraph is an error.
func Parse(doc *parser.Document) (*Control, error) {
	if len(doc.Sections) == 0 || len(doc.Sections[0].Blocks) == 0 {
		return nil, fmt.Errorf("control file has no paragraphs")
	}

	ctl := &Control{}
	handler := doc.Handler()

	first := doc.Sections[0]
	name := first.Get("Source")
	if name == "" {
		return nil, fmt.Errorf("first paragraph has no Source field")
	}
	warnInvalidName(handler, first.Find("Source"), name)

	ctl.Source = Source{
		Name:             name,
		Maintainer:       foldedValue(first.Find("Maintainer")),
		Section:          first.Get("Section"),
		Priority:         first.Get("Priority"),
		StandardsVersion: first.Get("Standards-Version"),
		BuildDepends:     foldedValue(first.Find("Build-Depends")),
	}

	for _, section := range doc.Sections[1:] {
		if len(section.Blocks) == 0 {
			continue
		}
		pkg := section.Get("Package")
		if pkg == "" {
			handler.Warn(blockContext(section.Blocks[0]), "paragraph has no Package field and was skipped")
			continue
		}
		warnInvalidName(handler, section.Find("Package"), pkg)

		binary := Binary{
			Package:      pkg,
			Architecture: section.Get("Architecture"),
			Depends:      foldedValue(section.Find("Depends")),
		}
		if desc := section.Find("Description"); desc != nil && len(desc.Chunks) > 0 {
			binary.Synopsis = desc.Chunks[0].Text
			for _, chunk := range desc.Chunks[1:] {
				binary.Description = append(binary.Description, chunk.Text)
			}
		}
		ctl.Binaries = append(ctl.Binaries, binary)
	}

	return ctl, nil
}

func warnInvalidName(handler parser.Handler, block *parser.Block, name string) {
	err := ValidPackageName(name)
	if err == nil {
		return
	}
	handler.Warn(blockContext(block), fmt.Sprintf("invalid package name %q: %v", name, err))
}

func blockContext(block *parser.Block) *parser.Context {
	if block == nil || len(block.Chunks) == 0 {
		return nil
	}
	ctx := block.Chunks[0].Ctx
	return &ctx
}

// foldedValue joins a block's chunks into one logical value, the way
// relationship fields such as Depends are read: continuation lines fold
// onto the first line, empty chunks contribute nothing.
func foldedValue(block *parser.Block) string {
	if block == nil {
		return ""
	}
	var parts []string
	for _, chunk := range block.Chunks {
		if chunk.Kind == parser.ChunkEmpty {
			continue
		}
		parts = append(parts, chunk.Text)
	}
	return strings.Join(parts, " ")
}
