package job_router

import (
	"context"
	"encoding/json"
	"freecast-workers/src/application/episodes/entity"
	"freecast-workers/src/application/jobs/job_message"
	"freecast-workers/src/application/jobs/save_chunks_to_db"
	"freecast-workers/src/application/jobs/split_audio"
	"freecast-workers/src/application/publish"
	"freecast-workers/src/lib/cerr"

	"github.com/streadway/amqp"
)

const unknownJobErrorMessage = "Failed to process the episode"

func NewJobRouter(
	episodeStore entity.EpisodeStore,
	publisher publish.Publisher,
	splitAudioHandler split_audio.SplitAudioJobHandler,
	saveChunksHandler save_chunks_to_db.SaveChunksJobHandler,
) JobRouter {
	return JobRouter{
		episodeStore:      episodeStore,
		publisher:         publisher,
		splitAudioHandler: splitAudioHandler,
		saveChunksHandler: saveChunksHandler,
	}
}

type JobRouter struct {
	publisher    publish.Publisher
	episodeStore entity.EpisodeStore

	splitAudioHandler split_audio.SplitAudioJobHandler
	saveChunksHandler save_chunks_to_db.SaveChunksJobHandler
}

func (j JobRouter) HandleMessage(message amqp.Delivery) error {
	err := j.handleMessageWithoutErrorHandling(message)
	if err != nil {
		if reportErr := j.handleError(message, err); reportErr != nil {
			cerr.Log(reportErr)
		}
		return err
	}

	return nil
}

func (j JobRouter) handleMessageWithoutErrorHandling(message amqp.Delivery) error {
	var nextJobMsg amqp.Publishing
	var nextJobMessage string
	var nextJobProgress int
	wasLastJob := false

	switch message.Type {
	case split_audio.JobType:
		splitAudioParams, chunks, err := j.splitAudioHandler.HandleSplitAudioJob(message.Body)
		if err != nil {
			return cerr.Field("message_body", string(message.Body)).Wrap(err).Error("Failed to handle split audio job")
		}

		nextJobMessage = "Saving the episode chunks into the database"
		nextJobProgress = 90
		nextJobMsg, err = save_chunks_to_db.CreateJobMessage(splitAudioParams.EpisodeGUID, chunks)
		if err != nil {
			return cerr.Field("episode_guid", splitAudioParams.EpisodeGUID).
				Field("chunks", len(chunks)).
				Wrap(err).
				Error("Failed to create save chunks to DB job message")
		}

	case save_chunks_to_db.JobType:
		err := j.saveChunksHandler.HandleSaveChunksToDBJob(message.Body)
		if err != nil {
			return cerr.Field("message_body", string(message.Body)).Wrap(err).Error("Failed to handle save chunks to DB job")
		}

		wasLastJob = true

	default:
		return cerr.Field("job_type", message.Type).Error("Unrecognized amqp job type")
	}

	if !wasLastJob {
		if err := j.updateProgress(message, nextJobMessage, nextJobProgress); err != nil {
			return cerr.Wrap(err).Error("Failed to update the episode progress")
		}

		if err := j.publisher.Publish(nextJobMsg); err != nil {
			return cerr.Field("next_job", nextJobMsg.Type).
				Wrap(err).Error("Failed to publish next job message")
		}
	}

	return nil
}

func (j JobRouter) updateProgress(message amqp.Delivery, statusMessage string, progress int) error {
	var episodeParams job_message.EpisodeIdentifier
	err := json.Unmarshal(message.Body, &episodeParams)
	if err != nil {
		return cerr.Wrap(err).Error("Failed to unmarshal job message")
	}

	updater := func(episode entity.Episode) (entity.Episode, error) {
		episode.JobStatusMessage = statusMessage
		episode.JobProgress = progress
		return episode, nil
	}

	err = j.episodeStore.UpdateEpisode(context.Background(), episodeParams.EpisodeGUID, updater)
	if err != nil {
		return cerr.Field("episode_guid", episodeParams.EpisodeGUID).Wrap(err).Error("Failed to update episode")
	}

	return nil
}

func (j JobRouter) getErrorMessage(jobType string) string {
	switch jobType {
	case split_audio.JobType:
		return split_audio.ErrorMessage
	case save_chunks_to_db.JobType:
		return save_chunks_to_db.ErrorMessage
	default:
		return unknownJobErrorMessage
	}
}

func (j JobRouter) handleError(message amqp.Delivery, jobError error) error {
	var episodeParams job_message.EpisodeIdentifier
	err := json.Unmarshal(message.Body, &episodeParams)
	if err != nil {
		return cerr.Field("job_type", message.Type).Wrap(err).Error("Failed to report error to episode DB")
	}

	// nothing to attach the failure to
	if episodeParams.EpisodeGUID == "" {
		return nil
	}

	updater := func(episode entity.Episode) (entity.Episode, error) {
		episode.JobStatus = entity.ErrorStatus
		episode.JobStatusMessage = j.getErrorMessage(message.Type)
		episode.JobStatusDebugLog = jobError.Error()
		return episode, nil
	}

	err = j.episodeStore.UpdateEpisode(context.Background(), episodeParams.EpisodeGUID, updater)
	if err != nil {
		return cerr.Field("episode_guid", episodeParams.EpisodeGUID).Wrap(err).Error("Failed to update episode")
	}

	return nil
}
