package splitter

import (
	"fmt"
	"math/big"
	"time"
)

// Chunk is the half-open interval [Start, End) of the source timeline.
type Chunk struct {
	Index int
	Start time.Duration
	End   time.Duration
	Path  string
}

func (c Chunk) Duration() time.Duration {
	return c.End - c.Start
}

func (c Chunk) String() string {
	return fmt.Sprintf("chunk %d: %s-%s", c.Index+1, c.Start, c.End)
}

func ValidateMaxBytes(maxBytes int64) error {
	if maxBytes <= 0 {
		return InvalidArgumentError{Reason: fmt.Sprintf("max chunk size must be positive, got %d bytes", maxBytes)}
	}

	return nil
}

// PlanChunks converts a byte budget into time ranges, assuming the source
// is roughly constant bitrate. Every chunk but the last spans the longest
// whole number of milliseconds whose estimated size stays within maxBytes;
// for variable bitrate sources the real encoded size may still drift.
func PlanChunks(byteSize int64, duration time.Duration, maxBytes int64) ([]Chunk, error) {
	if err := ValidateMaxBytes(maxBytes); err != nil {
		return nil, err
	}

	durationMillis := duration.Milliseconds()
	if durationMillis <= 0 {
		return nil, InvalidInputError{Reason: "audio has no duration"}
	}

	if byteSize <= 0 {
		return nil, InvalidInputError{Reason: "audio file is empty"}
	}

	// largest whole number of milliseconds whose estimated size fits the
	// budget: step * byteSize <= maxBytes * durationMillis
	step := new(big.Int).Mul(big.NewInt(maxBytes), big.NewInt(durationMillis))
	step.Quo(step, big.NewInt(byteSize))
	if step.Sign() <= 0 {
		bytesPerSecond := float64(byteSize) * 1000 / float64(durationMillis)
		return nil, InvalidArgumentError{
			Reason: fmt.Sprintf("max chunk size of %d bytes holds less than a millisecond of audio at %.0f bytes/sec", maxBytes, bytesPerSecond),
		}
	}

	stepMillis := durationMillis
	if step.IsInt64() && step.Int64() < durationMillis {
		stepMillis = step.Int64()
	}

	totalChunks := int((durationMillis + stepMillis - 1) / stepMillis)

	chunks := make([]Chunk, 0, totalChunks)
	for i := 0; i < totalChunks; i++ {
		startMillis := int64(i) * stepMillis
		endMillis := startMillis + stepMillis
		if endMillis > durationMillis {
			endMillis = durationMillis
		}

		chunks = append(chunks, Chunk{
			Index: i,
			Start: time.Duration(startMillis) * time.Millisecond,
			End:   time.Duration(endMillis) * time.Millisecond,
		})
	}

	return chunks, nil
}
