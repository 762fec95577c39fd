package parser

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// ReadFile opens path and reads it into the document. The document must be
// fresh: reading into a document that already holds sections is a parameter
// error. On a syntax or file error the document keeps whatever partial
// structure was built and should be discarded.
func (d *Document) ReadFile(path string) error {
	if len(d.Sections) > 0 {
		return newError(KindParameter, nil, "document has already been read")
	}

	f, err := os.Open(path)
	if err != nil {
		message := fmt.Sprintf("can't open file '%s': %v", path, err)
		d.handler.Critical(nil, message)
		return &Error{Kind: KindFile, Path: path, Message: message}
	}
	defer f.Close()

	return d.Read(f, path)
}

// Read reads control file text from r into the document, stamping path onto
// every chunk's context. The same freshness precondition as ReadFile
// applies.
func (d *Document) Read(r io.Reader, path string) error {
	if len(d.Sections) > 0 {
		return newError(KindParameter, nil, "document has already been read")
	}

	d.ctx = Context{Path: path}
	d.AppendSection(NewSection())

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		if err := d.ReadLine(scanner.Text()); err != nil {
			return err
		}
	}
	if err := scanner.Err(); err != nil {
		// The failure happened while pulling the line after the last
		// one delivered, so point the diagnostic there.
		ctx := d.ctx
		ctx.Line++
		message := fmt.Sprintf("can't read file '%s': %v", path, err)
		d.handler.Critical(&ctx, message)
		return newError(KindFile, &ctx, message)
	}

	return nil
}

// ReadLine parses a single physical line into the document. Read must have
// opened the document first; calling ReadLine on a document without
// sections is a parameter error.
func (d *Document) ReadLine(line string) error {
	if len(d.Sections) == 0 {
		return newError(KindParameter, nil, "document has no open section")
	}

	d.ctx.Line++

	line = chomp(line)

	// Comments are dropped entirely.
	if strings.HasPrefix(line, "#") {
		return nil
	}

	// A blank line closes the current paragraph.
	if line == "" {
		section := d.Tail()
		if len(section.Blocks) == 0 {
			d.handler.Warn(&d.ctx, "multiple blank lines will be transformed into a single blank line")
		} else {
			d.AppendSection(NewSection())
		}
		return nil
	}

	if line[0] == ' ' || line[0] == '\t' {
		return d.readChunk(line)
	}
	return d.readBlock(line)
}

// readChunk handles a continuation line: one byte of leading whitespace
// followed by data that extends the last opened block.
func (d *Document) readChunk(line string) error {
	section := d.Tail()
	if len(section.Blocks) == 0 {
		message := "attempted to continue previous statement, however, none have been opened yet"
		d.handler.Critical(&d.ctx, message)
		return newError(KindSyntax, &d.ctx, message)
	}
	block := section.Blocks[len(section.Blocks)-1]

	var chunk *Chunk
	rest := line[1:]
	switch {
	case strings.HasPrefix(rest, "."):
		// A full stop must be the only thing on the line.
		if rest != "." {
			message := "lines beginning with '.' are reserved for future use (Sec. 5.6.13)"
			d.handler.Critical(&d.ctx, message)
			return newError(KindSyntax, &d.ctx, message)
		}
		chunk = NewChunk("")
	case rest[0] == ' ' || rest[0] == '\t':
		chunk = NewChunk(rest[1:])
		chunk.Kind = ChunkFixed
	default:
		chunk = NewChunk(rest)
	}

	chunk.Ctx = d.ctx
	block.AppendChunk(chunk)

	return nil
}

// readBlock handles a field line: it opens a new block, or merges into an
// existing one when the field name repeats within the section.
func (d *Document) readBlock(line string) error {
	name, value, found := strings.Cut(line, ":")
	if !found {
		message := "expected pseudoheader/data pair (Sec. 5.1); if continuing a previous line, add a space"
		d.handler.Critical(&d.ctx, message)
		return newError(KindSyntax, &d.ctx, message)
	}
	value = chug(value)

	section := d.Tail()
	block := section.Find(name)
	if block != nil {
		d.handler.Warn(&d.ctx, "duplicate field names are not permitted (Sec. 5.1), contents will be merged together")
	} else {
		block = NewBlock(name)
		section.AppendBlock(block)
	}

	chunk := NewChunk(value)
	if value != "" {
		// Field payloads never merge with continuations of another
		// origin.
		chunk.Kind = ChunkFixed
	}
	chunk.Ctx = d.ctx
	block.AppendChunk(chunk)

	return nil
}

// chomp strips trailing space, tab, CR and LF characters.
func chomp(line string) string {
	return strings.TrimRight(line, " \t\r\n")
}

// chug strips leading space and tab characters.
func chug(text string) string {
	return strings.TrimLeft(text, " \t")
}
