package parser

import "strings"

// Section is one control file paragraph: a run of field lines bounded by
// blank lines.
type Section struct {
	Blocks []*Block
}

func NewSection() *Section {
	return &Section{}
}

// AppendBlock adds block at the end of the section.
func (s *Section) AppendBlock(block *Block) {
	s.Blocks = append(s.Blocks, block)
}

// Find returns the block whose name matches field, or nil if the section
// has none. Field names are not case sensitive (Debian Policy 5.1).
func (s *Section) Find(field string) *Block {
	for _, block := range s.Blocks {
		if strings.EqualFold(block.Name, field) {
			return block
		}
	}
	return nil
}

// Get returns the text of the first chunk of the named field, or "" if the
// field is missing or empty.
func (s *Section) Get(field string) string {
	block := s.Find(field)
	if block == nil {
		return ""
	}
	head := block.Head()
	if head == nil {
		return ""
	}
	return head.Text
}
