package parser

// Block is one named field within a section, holding its value as an
// ordered list of chunks. The first chunk comes from the field line itself,
// later chunks from continuation lines.
type Block struct {
	Name   string
	Chunks []*Chunk
}

func NewBlock(name string) *Block {
	return &Block{Name: name}
}

// AppendChunk adds chunk at the end of the block.
func (b *Block) AppendChunk(chunk *Chunk) {
	b.Chunks = append(b.Chunks, chunk)
}

// PrependChunk adds chunk at the start of the block.
func (b *Block) PrependChunk(chunk *Chunk) {
	b.Chunks = append([]*Chunk{chunk}, b.Chunks...)
}

// RemoveChunk unlinks the chunk at index i and returns it. It returns nil
// if i is out of range.
func (b *Block) RemoveChunk(i int) *Chunk {
	if i < 0 || i >= len(b.Chunks) {
		return nil
	}
	chunk := b.Chunks[i]
	b.Chunks = append(b.Chunks[:i], b.Chunks[i+1:]...)
	return chunk
}

// Head returns the block's first chunk, or nil for a block without chunks.
func (b *Block) Head() *Chunk {
	if len(b.Chunks) == 0 {
		return nil
	}
	return b.Chunks[0]
}

// Tail returns the block's last chunk, or nil for a block without chunks.
func (b *Block) Tail() *Chunk {
	if len(b.Chunks) == 0 {
		return nil
	}
	return b.Chunks[len(b.Chunks)-1]
}
