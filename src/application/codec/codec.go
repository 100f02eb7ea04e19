package codec

import (
	"context"
	"time"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

// AudioSource describes a decoded audio file. ByteSize is the size of the
// encoded file on disk, not of the decoded PCM.
type AudioSource struct {
	Path       string
	ByteSize   int64
	Duration   time.Duration
	SampleRate int
}

// BytesPerSecond is the average encoded bitrate, assuming the file is
// roughly constant bitrate. It is 0 for a source with no duration.
func (a AudioSource) BytesPerSecond() float64 {
	if a.Duration <= 0 {
		return 0
	}

	return float64(a.ByteSize) / a.Duration.Seconds()
}

//counterfeiter:generate . Decoder
type Decoder interface {
	Decode(path string) (AudioSource, error)
}

//counterfeiter:generate . Encoder
type Encoder interface {
	// Encode writes [start, end) of source to outPath in the source's format.
	Encode(ctx context.Context, source AudioSource, start time.Duration, end time.Duration, outPath string) error
}
