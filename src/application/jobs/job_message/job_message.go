package job_message

type EpisodeIdentifier struct {
	EpisodeGUID string `json:"episode_guid"`
}
