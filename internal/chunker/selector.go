package chunker

import (
	"path/filepath"
	"strings"
)

// lineExtensions lists the file extensions routed to the line chunker.
// Everything else, including files without an extension, gets the word
// chunker.
var lineExtensions = map[string]struct{}{
	".py": {}, ".js": {}, ".ts": {}, ".tsx": {}, ".java": {}, ".go": {},
	".rs": {}, ".cpp": {}, ".c": {}, ".cs": {}, ".kt": {}, ".rb": {},
	".php": {}, ".scala": {}, ".yml": {}, ".swift": {}, ".md": {},
}

// Selector picks a chunking strategy from a filename. It holds one
// configured instance of each strategy; selection itself is a pure
// function of the filename's lowercased extension.
type Selector struct {
	line Chunker
	word Chunker
}

// NewSelector builds a Selector with the given window/overlap pairs.
// Both pairs are validated the same way the chunker constructors validate
// them.
func NewSelector(lineWindow, lineOverlap, wordWindow, wordOverlap int) (*Selector, error) {
	line, err := NewLineChunker(lineWindow, lineOverlap)
	if err != nil {
		return nil, err
	}
	word, err := NewWordChunker(wordWindow, wordOverlap)
	if err != nil {
		return nil, err
	}
	return &Selector{line: line, word: word}, nil
}

// NewDefaultSelector builds a Selector with the shipped default sizes.
func NewDefaultSelector() *Selector {
	s, err := NewSelector(DefaultLineWindow, DefaultLineOverlap, DefaultWordWindow, DefaultWordOverlap)
	if err != nil {
		// The defaults satisfy overlap < window.
		panic(err)
	}
	return s
}

// ForFilename returns the chunker for the given filename based on its
// extension. Comparison is case-insensitive; unrecognized or missing
// extensions select the word chunker.
func (s *Selector) ForFilename(name string) Chunker {
	ext := strings.ToLower(filepath.Ext(name))
	if _, ok := lineExtensions[ext]; ok {
		return s.line
	}
	return s.word
}

// Word returns the word chunker, used for raw text ingestion where no
// filename is available.
func (s *Selector) Word() Chunker {
	return s.word
}
