package chunking

import (
	"context"
	"freecast-workers/src/application/fetch"
	"freecast-workers/src/application/splitter"
	"freecast-workers/src/lib/cerr"

	"github.com/apex/log"
)

func NewReferenceSplitter(fetcher fetch.Fetcher, audioSplitter splitter.AudioSplitter) ReferenceSplitter {
	return ReferenceSplitter{
		fetcher:  fetcher,
		splitter: audioSplitter,
	}
}

// ReferenceSplitter splits the audio behind a URL or local path. A
// downloaded temp file lives exactly as long as one call.
type ReferenceSplitter struct {
	fetcher  fetch.Fetcher
	splitter splitter.AudioSplitter
}

func (r ReferenceSplitter) SplitReference(ctx context.Context, reference string, maxBytes int64) (splitter.SplitResult, error) {
	errctx := cerr.Field("reference", reference)

	// no point downloading anything for a budget we can't use
	if err := splitter.ValidateMaxBytes(maxBytes); err != nil {
		return splitter.SplitResult{}, err
	}

	local, err := r.fetcher.Fetch(ctx, reference)
	if err != nil {
		return splitter.SplitResult{}, errctx.Wrap(err).Error("Failed to fetch source audio")
	}

	defer local.Release()

	log.WithFields(log.Fields{
		"reference": reference,
		"localPath": local.Path,
		"temporary": local.Temporary,
	}).Info("Splitting source audio")

	result, err := r.splitter.SplitFile(ctx, local.Path, maxBytes)
	if err != nil {
		return splitter.SplitResult{}, errctx.Wrap(err).Error("Failed to split source audio")
	}

	return result, nil
}
