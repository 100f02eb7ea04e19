package splitter

import (
	"fmt"
	"path/filepath"
	"strings"
)

// ChunkPath names chunk index (0-based) after the input, in the input's
// directory: /dir/episode.mp3 -> /dir/episode_part1.mp3.
func ChunkPath(inputPath string, index int) string {
	dir := filepath.Dir(inputPath)
	fileName := filepath.Base(inputPath)
	ext := filepath.Ext(fileName)
	baseName := strings.TrimSuffix(fileName, ext)

	return filepath.Join(dir, fmt.Sprintf("%s_part%d%s", baseName, index+1, ext))
}
