package parser

// ChunkKind classifies how a chunk relates to the line before it.
type ChunkKind int

const (
	// ChunkEmpty holds no data and renders as a blank continuation line.
	// An empty chunk always has an empty Text.
	ChunkEmpty ChunkKind = iota

	// ChunkMerge may be combined with the previous chunk into one logical
	// line.
	ChunkMerge

	// ChunkFixed is preformatted and must be reproduced exactly.
	ChunkFixed
)

func (k ChunkKind) String() string {
	switch k {
	case ChunkEmpty:
		return "empty"
	case ChunkMerge:
		return "merge"
	case ChunkFixed:
		return "fixed"
	default:
		return "unknown"
	}
}

// Chunk is one physical line's contribution to a field value.
type Chunk struct {
	Text string
	Kind ChunkKind
	Ctx  Context
}

// NewChunk returns a chunk holding text. An empty text yields a ChunkEmpty
// chunk, anything else a ChunkMerge chunk; callers adjust the kind when the
// indentation says otherwise.
func NewChunk(text string) *Chunk {
	if text == "" {
		return &Chunk{Kind: ChunkEmpty}
	}
	return &Chunk{Text: text, Kind: ChunkMerge}
}
