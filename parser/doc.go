// Package parser reads RFC822-style Debian control files into a document
// model that preserves enough structure to reproduce the original text.
//
// Processing a control file happens in two steps: the text is first parsed
// into sections, blocks and chunks (syntax), and specific data is then
// extracted from that structure (semantics, see the control package). This
// parser is "dumb" in the sense that it attaches no meaning to the fields it
// encounters.
//
// A Document holds one Section per paragraph. Each Section holds one Block
// per field, and each Block holds the field's physical lines as Chunks. A
// continuation line indented by a single space or tab is a mergeable chunk:
// it continues the logical line before it. Two or more leading whitespace
// characters mark the chunk as fixed formatting that must be reproduced
// as-is. A continuation consisting of a lone "." renders as a blank line
// without opening a new paragraph.
//
// Comments (lines starting with '#') are dropped while reading. They are
// only legal in debian/control per Debian Policy, and the parser does not
// warn about them elsewhere.
//
// See "Control files and their fields" in the Debian Policy Manual,
// https://www.debian.org/doc/debian-policy/ch-controlfields.html
package parser
