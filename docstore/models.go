package docstore

// Doc is a text document read from the document root.
type Doc struct {
	// Path is the location on disk.
	Path string
	// Filename is the path relative to the document root, slash separated.
	// It identifies the document in chunk attribution.
	Filename string
	Content  string
}

// Chunk is a retrievable unit of a document. It only carries the source
// filename, not its position inside the document.
type Chunk struct {
	Source  string
	Content string
}

type SearchResult struct {
	Content string  `json:"content"`
	Source  string  `json:"source"`
	Score   float32 `json:"score"`
}
