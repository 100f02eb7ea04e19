package splitter

import (
	"context"
	"freecast-workers/src/application/codec"
	"freecast-workers/src/lib/cerr"
	"os"
	"path/filepath"

	"github.com/apex/log"
)

var _ AudioSplitter = FileSplitter{}

type AudioSplitter interface {
	SplitFile(ctx context.Context, localPath string, maxBytes int64) (SplitResult, error)
}

func NewFileSplitter(decoder codec.Decoder, encoder codec.Encoder) FileSplitter {
	return FileSplitter{
		decoder: decoder,
		encoder: encoder,
	}
}

type FileSplitter struct {
	decoder codec.Decoder
	encoder codec.Encoder
}

// SplitFile writes chunks of at most about maxBytes next to localPath and
// returns them in timeline order.
func (f FileSplitter) SplitFile(ctx context.Context, localPath string, maxBytes int64) (SplitResult, error) {
	if err := ValidateMaxBytes(maxBytes); err != nil {
		return SplitResult{}, err
	}

	absPath, err := filepath.Abs(localPath)
	if err != nil {
		return SplitResult{}, cerr.Field("local_path", localPath).
			Wrap(err).Error("Cannot convert source path to absolute format")
	}

	errctx := cerr.Fields(cerr.F{
		"source_path": absPath,
		"max_bytes":   maxBytes,
	})

	logger := log.WithFields(log.Fields{
		"sourcePath": absPath,
		"maxBytes":   maxBytes,
	})

	logger.Info("Decoding source audio")
	source, err := f.decoder.Decode(absPath)
	if err != nil {
		return SplitResult{}, errctx.Wrap(err).Error("Failed to decode source audio")
	}

	chunks, err := PlanChunks(source.ByteSize, source.Duration, maxBytes)
	if err != nil {
		if invalidInput, ok := err.(InvalidInputError); ok {
			invalidInput.Path = absPath
			err = invalidInput
		}
		return SplitResult{}, errctx.Wrap(err).Error("Failed to plan chunks")
	}

	logger.WithFields(log.Fields{
		"duration":       source.Duration,
		"byteSize":       source.ByteSize,
		"bytesPerSecond": source.BytesPerSecond(),
		"totalChunks":    len(chunks),
	}).Info("Planned chunks")

	result := newSplitResult(len(chunks))
	for _, chunk := range chunks {
		// encoding is a lengthy process, if we want to halt now is the time
		if ctx.Err() != nil {
			removeChunks(result.Chunks)
			return SplitResult{}, errctx.Wrap(ctx.Err()).Error("Context cancelled before all chunks were encoded")
		}

		chunk.Path = ChunkPath(absPath, chunk.Index)
		if err := f.encoder.Encode(ctx, source, chunk.Start, chunk.End, chunk.Path); err != nil {
			removeChunks(append(result.Chunks, chunk))
			return SplitResult{}, errctx.Field("chunk", chunk.String()).
				Wrap(err).Error("Failed to encode chunk")
		}

		logger.WithField("chunkPath", chunk.Path).Info("Created chunk")
		result.add(chunk)
	}

	return result, nil
}

// removeChunks is best effort; the error that stopped the split takes precedence.
func removeChunks(chunks []Chunk) {
	for _, chunk := range chunks {
		if err := os.Remove(chunk.Path); err != nil && !os.IsNotExist(err) {
			log.WithField("chunkPath", chunk.Path).WithError(err).Error("Failed to remove partial chunk")
		}
	}
}
