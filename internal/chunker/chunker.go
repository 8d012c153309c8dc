package chunker

import (
	"fmt"
	"strings"
)

// Default window and overlap sizes, in units (lines or words).
const (
	DefaultLineWindow  = 120
	DefaultLineOverlap = 20
	DefaultWordWindow  = 500
	DefaultWordOverlap = 100
)

// Chunker splits text into overlapping retrieval-sized chunks.
type Chunker interface {
	Chunk(text string) []string
}

// slidingWindow implements the shared sliding-window algorithm. The two
// strategies differ only in how they split text into units and how units
// are rejoined.
type slidingWindow struct {
	window  int
	overlap int
	split   func(text string) []string
	sep     string
}

// newSlidingWindow validates the window configuration. An overlap that
// reaches the window size would stop the cursor from advancing, so it is
// rejected here rather than discovered as a hang during segmentation.
func newSlidingWindow(window, overlap int, split func(string) []string, sep string) (*slidingWindow, error) {
	if window <= 0 {
		return nil, fmt.Errorf("chunk window must be positive, got %d", window)
	}
	if overlap < 0 || overlap >= window {
		return nil, fmt.Errorf("chunk overlap must be in [0, window), got overlap %d with window %d", overlap, window)
	}
	return &slidingWindow{window: window, overlap: overlap, split: split, sep: sep}, nil
}

// Chunk splits text into chunks of up to window units, with consecutive
// chunks sharing overlap units. Empty input yields zero chunks. The final
// chunk always ends flush with the last unit and may be shorter than the
// window.
func (c *slidingWindow) Chunk(text string) []string {
	units := c.split(text)

	var out []string
	i := 0
	for i < len(units) {
		j := min(len(units), i+c.window)
		out = append(out, strings.Join(units[i:j], c.sep))
		if j == len(units) {
			break
		}
		i = max(0, j-c.overlap)
	}
	return out
}

// NewLineChunker returns a chunker that windows over lines, joined by
// newlines. Intended for source code and markup, where line boundaries
// carry structure.
func NewLineChunker(window, overlap int) (Chunker, error) {
	return newSlidingWindow(window, overlap, splitLines, "\n")
}

// NewWordChunker returns a chunker that windows over whitespace-delimited
// words, joined by single spaces. Intended for prose.
func NewWordChunker(window, overlap int) (Chunker, error) {
	return newSlidingWindow(window, overlap, strings.Fields, " ")
}

// splitLines splits text into lines without a trailing empty unit for
// text that ends in a newline. Empty text has no units.
func splitLines(text string) []string {
	if text == "" {
		return nil
	}
	return strings.Split(strings.TrimSuffix(text, "\n"), "\n")
}
