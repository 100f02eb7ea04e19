package split_audio

import (
	"context"
	"encoding/json"
	"freecast-workers/src/application/episodes/entity"
	"freecast-workers/src/application/jobs/job_message"
	"freecast-workers/src/lib/cerr"

	"github.com/apex/log"
	"github.com/streadway/amqp"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

const JobType string = "split_audio"
const ErrorMessage string = "Failed to split the episode audio into chunks"

//counterfeiter:generate . SplitAudioJobHandler
type SplitAudioJobHandler interface {
	HandleSplitAudioJob(message []byte) (JobParams, []entity.ChunkRecord, error)
}

type EpisodeChunker interface {
	ChunkEpisode(ctx context.Context, episodeGUID string, audioURL string, maxBytes int64) ([]entity.ChunkRecord, error)
}

type JobParams struct {
	job_message.EpisodeIdentifier
	AudioURL      string `json:"audio_url"`
	MaxChunkBytes int64  `json:"max_chunk_bytes,omitempty"`
}

func CreateJobMessage(episodeGUID string, audioURL string, maxChunkBytes int64) (amqp.Publishing, error) {
	job := JobParams{
		EpisodeIdentifier: job_message.EpisodeIdentifier{
			EpisodeGUID: episodeGUID,
		},
		AudioURL:      audioURL,
		MaxChunkBytes: maxChunkBytes,
	}

	jsonBytes, err := json.Marshal(job)
	if err != nil {
		return amqp.Publishing{}, cerr.Wrap(err).Error("Failed to marshal split audio job params")
	}

	return amqp.Publishing{
		Type: JobType,
		Body: jsonBytes,
	}, nil
}

func NewJobHandler(episodeStore entity.EpisodeStore, chunker EpisodeChunker, defaultMaxChunkBytes int64) JobHandler {
	return JobHandler{
		episodeStore:         episodeStore,
		chunker:              chunker,
		defaultMaxChunkBytes: defaultMaxChunkBytes,
	}
}

type JobHandler struct {
	episodeStore         entity.EpisodeStore
	chunker              EpisodeChunker
	defaultMaxChunkBytes int64
}

func (j JobHandler) HandleSplitAudioJob(message []byte) (JobParams, []entity.ChunkRecord, error) {
	params, err := unmarshalMessage(message)
	if err != nil {
		return JobParams{}, nil, cerr.Wrap(err).Error("Failed to unmarshal message JSON")
	}

	maxChunkBytes := params.MaxChunkBytes
	if maxChunkBytes == 0 {
		maxChunkBytes = j.defaultMaxChunkBytes
	}

	errctx := cerr.Field("episode_guid", params.EpisodeGUID).
		Field("audio_url", params.AudioURL).
		Field("max_chunk_bytes", maxChunkBytes)

	updater := func(episode entity.Episode) (entity.Episode, error) {
		episode.AudioURL = params.AudioURL
		episode.JobStatus = entity.ProcessingStatus
		episode.JobStatusMessage = "Splitting the episode audio into chunks"
		episode.JobStatusDebugLog = ""
		episode.JobProgress = 10
		episode.Chunks = nil
		return episode, nil
	}

	err = j.episodeStore.UpdateEpisode(context.Background(), params.EpisodeGUID, updater)
	if err != nil {
		return JobParams{}, nil, errctx.Wrap(err).Error("Failed to set the episode status")
	}

	log.WithFields(log.Fields{
		"episodeGUID":   params.EpisodeGUID,
		"audioURL":      params.AudioURL,
		"maxChunkBytes": maxChunkBytes,
	}).Info("Chunking episode")

	chunks, err := j.chunker.ChunkEpisode(context.Background(), params.EpisodeGUID, params.AudioURL, maxChunkBytes)
	if err != nil {
		return JobParams{}, nil, errctx.Wrap(err).Error("Failed to chunk the episode")
	}

	return params, chunks, nil
}

func unmarshalMessage(message []byte) (JobParams, error) {
	params := JobParams{}
	err := json.Unmarshal(message, &params)
	if err != nil {
		return JobParams{}, cerr.Wrap(err).Error("Failed to unmarshal message JSON")
	}

	errctx := cerr.Field("job_params", params)

	if params.EpisodeGUID == "" {
		return JobParams{}, errctx.Error("Missing episode GUID")
	}

	if params.AudioURL == "" {
		return JobParams{}, errctx.Error("Missing audio URL")
	}

	if params.MaxChunkBytes < 0 {
		return JobParams{}, errctx.Error("Max chunk bytes can't be negative")
	}

	return params, nil
}
