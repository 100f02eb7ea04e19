package save_chunks_to_db

import (
	"context"
	"encoding/json"
	"freecast-workers/src/application/episodes/entity"
	"freecast-workers/src/application/jobs/job_message"
	"freecast-workers/src/lib/cerr"

	"github.com/streadway/amqp"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

const JobType string = "save_chunks_to_db"
const ErrorMessage string = "Failed to save the episode chunks"

//counterfeiter:generate . SaveChunksJobHandler
type SaveChunksJobHandler interface {
	HandleSaveChunksToDBJob(message []byte) error
}

type JobParams struct {
	job_message.EpisodeIdentifier
	Chunks []entity.ChunkRecord `json:"chunks"`
}

func CreateJobMessage(episodeGUID string, chunks []entity.ChunkRecord) (amqp.Publishing, error) {
	job := JobParams{
		EpisodeIdentifier: job_message.EpisodeIdentifier{
			EpisodeGUID: episodeGUID,
		},
		Chunks: chunks,
	}

	jsonBytes, err := json.Marshal(job)
	if err != nil {
		return amqp.Publishing{}, cerr.Wrap(err).Error("Failed to marshal save chunks job params")
	}

	return amqp.Publishing{
		Type: JobType,
		Body: jsonBytes,
	}, nil
}

func NewJobHandler(episodeStore entity.EpisodeStore) JobHandler {
	return JobHandler{
		episodeStore: episodeStore,
	}
}

type JobHandler struct {
	episodeStore entity.EpisodeStore
}

func (j JobHandler) HandleSaveChunksToDBJob(message []byte) error {
	params := JobParams{}
	if err := json.Unmarshal(message, &params); err != nil {
		return cerr.Wrap(err).Error("Failed to unmarshal message JSON")
	}

	errctx := cerr.Field("episode_guid", params.EpisodeGUID)

	if params.EpisodeGUID == "" {
		return errctx.Error("Missing episode GUID")
	}

	if len(params.Chunks) == 0 {
		return errctx.Error("No chunks to save")
	}

	for i, chunk := range params.Chunks {
		if chunk.Index != i {
			return errctx.Field("chunk_index", chunk.Index).Error("Chunks are out of order")
		}
	}

	updater := func(episode entity.Episode) (entity.Episode, error) {
		episode.Chunks = params.Chunks
		episode.JobStatus = entity.CompletedStatus
		episode.JobStatusMessage = ""
		episode.JobStatusDebugLog = ""
		episode.JobProgress = 100
		return episode, nil
	}

	if err := j.episodeStore.UpdateEpisode(context.Background(), params.EpisodeGUID, updater); err != nil {
		return errctx.Wrap(err).Error("Failed to write chunks to DB")
	}

	return nil
}
