package fetch

import (
	"context"
	"strings"
	"sync"
)

var _ Fetcher = SelectFetcher{}

type Fetcher interface {
	Fetch(ctx context.Context, reference string) (LocalAudio, error)
}

// LocalAudio is a readable audio file on local disk. If it was downloaded
// to a temp file, Release deletes it; Release is safe to call more than once.
type LocalAudio struct {
	Path      string
	Temporary bool

	release *sync.Once
	remove  func()
}

func newLocalAudio(path string) LocalAudio {
	return LocalAudio{Path: path}
}

func newTemporaryLocalAudio(path string, remove func()) LocalAudio {
	return LocalAudio{
		Path:      path,
		Temporary: true,
		release:   &sync.Once{},
		remove:    remove,
	}
}

func (l LocalAudio) Release() {
	if l.release == nil || l.remove == nil {
		return
	}

	l.release.Do(l.remove)
}

// IsRemote only looks at the scheme prefix. A malformed URL is still
// remote and fails when the download request is built.
func IsRemote(reference string) bool {
	lower := strings.ToLower(reference)
	return strings.HasPrefix(lower, "http://") || strings.HasPrefix(lower, "https://")
}

func NewSelectFetcher(remote HTTPFetcher, local LocalFetcher) SelectFetcher {
	return SelectFetcher{
		remote: remote,
		local:  local,
	}
}

type SelectFetcher struct {
	remote HTTPFetcher
	local  LocalFetcher
}

func (s SelectFetcher) Fetch(ctx context.Context, reference string) (LocalAudio, error) {
	if IsRemote(reference) {
		return s.remote.Fetch(ctx, reference)
	}

	return s.local.Fetch(ctx, reference)
}
