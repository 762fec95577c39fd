package parser

// Document is the parsed representation of one control file. It owns its
// sections outright; nothing in the tree is shared between documents.
//
// A Document is populated by exactly one read and is not safe for
// concurrent mutation. Parsing independent files in parallel requires one
// Document per file.
type Document struct {
	ctx      Context
	handler  Handler
	Sections []*Section
}

// New returns an empty document using DefaultHandler for diagnostics.
func New() *Document {
	return &Document{handler: DefaultHandler}
}

// SetHandler replaces the document's diagnostic handler. Passing nil
// restores DefaultHandler.
func (d *Document) SetHandler(h Handler) {
	if h == nil {
		h = DefaultHandler
	}
	d.handler = h
}

// Handler returns the document's current diagnostic handler.
func (d *Document) Handler() Handler {
	return d.handler
}

// Context returns a copy of the parsing context: the input path and the
// number of the line read most recently.
func (d *Document) Context() Context {
	return d.ctx
}

// AppendSection adds section at the end of the document.
func (d *Document) AppendSection(section *Section) {
	d.Sections = append(d.Sections, section)
}

// Tail returns the document's last section, or nil before any read began.
func (d *Document) Tail() *Section {
	if len(d.Sections) == 0 {
		return nil
	}
	return d.Sections[len(d.Sections)-1]
}
