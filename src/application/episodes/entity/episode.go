package entity

import "time"

type JobStatus string

const (
	NoStatus         JobStatus = ""
	RequestedStatus  JobStatus = "requested"
	ProcessingStatus JobStatus = "processing"
	CompletedStatus  JobStatus = "completed"
	ErrorStatus      JobStatus = "error"
)

// ChunkRecord is an uploaded chunk. Offsets are into the original episode
// so transcripts of consecutive chunks can be stitched back together.
type ChunkRecord struct {
	Index       int    `json:"index"`
	URL         string `json:"url"`
	StartMillis int64  `json:"start_millis"`
	EndMillis   int64  `json:"end_millis"`
}

func (c ChunkRecord) Start() time.Duration {
	return time.Duration(c.StartMillis) * time.Millisecond
}

func (c ChunkRecord) End() time.Duration {
	return time.Duration(c.EndMillis) * time.Millisecond
}

type Episode struct {
	GUID              string
	AudioURL          string
	JobStatus         JobStatus
	JobStatusMessage  string
	JobStatusDebugLog string
	JobProgress       int
	Chunks            []ChunkRecord
}
