package splitter

import "github.com/apex/log"

// SplitResult holds the emitted chunks in order. Chunk paths are unique.
type SplitResult struct {
	Chunks []Chunk

	seen map[string]bool
}

func newSplitResult(capacity int) SplitResult {
	return SplitResult{
		Chunks: make([]Chunk, 0, capacity),
		seen:   make(map[string]bool, capacity),
	}
}

// add appends the chunk unless its path was already emitted. Indexes only
// ever increase so this never triggers for a valid plan.
func (s *SplitResult) add(chunk Chunk) {
	if s.seen[chunk.Path] {
		log.WithField("path", chunk.Path).Warn("Skipping duplicate chunk path")
		return
	}

	s.seen[chunk.Path] = true
	s.Chunks = append(s.Chunks, chunk)
}

func (s SplitResult) Paths() []string {
	paths := make([]string, 0, len(s.Chunks))
	for _, chunk := range s.Chunks {
		paths = append(paths, chunk.Path)
	}

	return paths
}
