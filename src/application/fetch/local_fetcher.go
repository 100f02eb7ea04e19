package fetch

import (
	"context"
	"errors"
	"freecast-workers/src/lib/cerr"
	"io/fs"
	"os"
	"path/filepath"
)

var _ Fetcher = LocalFetcher{}

func NewLocalFetcher() LocalFetcher {
	return LocalFetcher{}
}

type LocalFetcher struct{}

func (LocalFetcher) Fetch(_ context.Context, path string) (LocalAudio, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return LocalAudio{}, cerr.Field("path", path).Wrap(err).Error("Cannot convert input path to absolute format")
	}

	info, err := os.Stat(absPath)
	if errors.Is(err, fs.ErrNotExist) {
		return LocalAudio{}, NotFoundError{Path: path, Cause: err}
	}
	if err != nil {
		return LocalAudio{}, cerr.Field("path", absPath).Wrap(err).Error("Failed to stat input file")
	}

	if info.IsDir() {
		return LocalAudio{}, NotFoundError{Path: path}
	}

	return newLocalAudio(absPath), nil
}
