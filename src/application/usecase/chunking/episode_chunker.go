package chunking

import (
	"context"
	"fmt"
	"freecast-workers/src/application/cloud_storage/entity"
	cloudstore "freecast-workers/src/application/cloud_storage/store"
	episodes "freecast-workers/src/application/episodes/entity"
	"freecast-workers/src/application/fetch"
	"freecast-workers/src/application/splitter"
	"freecast-workers/src/lib/cerr"
	"os"
	"path/filepath"

	"github.com/apex/log"
)

const defaultChunkExt = ".mp3"

func NewEpisodeChunker(referenceSplitter ReferenceSplitter, fileStore entity.FileStore, bucketName string) EpisodeChunker {
	return EpisodeChunker{
		referenceSplitter: referenceSplitter,
		fileStore:         fileStore,
		bucketName:        bucketName,
	}
}

// EpisodeChunker splits an episode's audio and publishes the chunks to
// cloud storage. Local chunk files never outlive a call.
type EpisodeChunker struct {
	referenceSplitter ReferenceSplitter
	fileStore         entity.FileStore
	bucketName        string
}

func (e EpisodeChunker) ChunkEpisode(ctx context.Context, episodeGUID string, audioURL string, maxBytes int64) ([]episodes.ChunkRecord, error) {
	errctx := cerr.Field("episode_guid", episodeGUID).Field("audio_url", audioURL)

	if episodeGUID == "" {
		return nil, errctx.Error("Episode GUID is required")
	}

	if !fetch.IsRemote(audioURL) {
		return nil, errctx.Error("Episode audio must be an http or https URL")
	}

	logger := log.WithFields(log.Fields{
		"episodeGUID": episodeGUID,
		"audioURL":    audioURL,
		"maxBytes":    maxBytes,
	})

	logger.Info("Splitting episode audio")
	result, err := e.referenceSplitter.SplitReference(ctx, audioURL, maxBytes)
	if err != nil {
		return nil, errctx.Wrap(err).Error("Failed to split episode audio")
	}

	defer removeLocalChunks(result.Chunks)

	logger.WithField("chunks", len(result.Chunks)).Info("Uploading episode chunks")
	records, err := e.uploadChunks(ctx, episodeGUID, result.Chunks)
	if err != nil {
		return nil, errctx.Wrap(err).Error("Failed to upload episode chunks")
	}

	return records, nil
}

func (e EpisodeChunker) chunkURL(episodeGUID string, chunk splitter.Chunk) string {
	ext := filepath.Ext(chunk.Path)
	if ext == "" {
		ext = defaultChunkExt
	}

	objectPath := fmt.Sprintf("episodes/%s/part%d%s", episodeGUID, chunk.Index+1, ext)
	return cloudstore.FileURL(e.bucketName, objectPath)
}

func (e EpisodeChunker) uploadChunk(ctx context.Context, done chan error, chunk splitter.Chunk, destURL string) {
	logger := log.WithFields(log.Fields{
		"chunkPath": chunk.Path,
		"destURL":   destURL,
	})

	logger.Info("Uploading chunk")

	fileContents, err := os.ReadFile(chunk.Path)
	if err != nil {
		logger.Error("Failed to read local chunk")
		done <- cerr.Field("chunk_path", chunk.Path).Wrap(err).Error("Failed to read local chunk")
		return
	}

	err = e.fileStore.WriteFile(ctx, destURL, fileContents)
	if err != nil {
		logger.Error("Failed to upload chunk")
		done <- cerr.Field("dest_url", destURL).Wrap(err).Error("Failed to upload chunk")
		return
	}

	done <- nil
}

func (e EpisodeChunker) uploadChunks(ctx context.Context, episodeGUID string, chunks []splitter.Chunk) ([]episodes.ChunkRecord, error) {
	uploadResultChannels := []chan error{}
	records := []episodes.ChunkRecord{}

	log.Info("Spinning off upload threads")

	for _, chunk := range chunks {
		// buffered so an early return below doesn't strand the senders
		resultChannel := make(chan error, 1)
		uploadResultChannels = append(uploadResultChannels, resultChannel)

		destURL := e.chunkURL(episodeGUID, chunk)
		records = append(records, episodes.ChunkRecord{
			Index:       chunk.Index,
			URL:         destURL,
			StartMillis: chunk.Start.Milliseconds(),
			EndMillis:   chunk.End.Milliseconds(),
		})

		go e.uploadChunk(ctx, resultChannel, chunk, destURL)
	}

	log.Info("Waiting for upload threads to finish")
	for _, resultChannel := range uploadResultChannels {
		if err := <-resultChannel; err != nil {
			return nil, err
		}
	}

	return records, nil
}

func removeLocalChunks(chunks []splitter.Chunk) {
	for _, chunk := range chunks {
		if err := os.Remove(chunk.Path); err != nil && !os.IsNotExist(err) {
			log.WithField("chunkPath", chunk.Path).WithError(err).Error("Failed to remove local chunk")
		}
	}
}
