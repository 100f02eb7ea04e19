package codec

import (
	"context"
	"fmt"
	"freecast-workers/src/application/executor"
	"freecast-workers/src/lib/cerr"
	"math"
	"os"
	"time"

	"github.com/apex/log"
)

var _ Encoder = FFmpegEncoder{}

const (
	minBitrateKbps = 8
	maxBitrateKbps = 320
)

func NewFFmpegEncoder(ffmpegBinPath string, executor executor.Executor) FFmpegEncoder {
	return FFmpegEncoder{
		ffmpegBinPath: ffmpegBinPath,
		executor:      executor,
	}
}

type FFmpegEncoder struct {
	ffmpegBinPath string
	executor      executor.Executor
}

func (f FFmpegEncoder) Encode(ctx context.Context, source AudioSource, start time.Duration, end time.Duration, outPath string) error {
	logger := log.WithFields(log.Fields{
		"sourcePath": source.Path,
		"outPath":    outPath,
		"start":      start,
		"end":        end,
	})

	if end <= start {
		return CodecError{
			Op:    EncodeOp,
			Path:  outPath,
			Cause: cerr.Fields(cerr.F{"start": start, "end": end}).Error("Chunk range is empty"),
		}
	}

	logger.Debug("Running ffmpeg command")
	cmd := f.executor.CommandContext(ctx, f.ffmpegBinPath, EncodeArgs(source, start, end, outPath)...)

	output, err := cmd.CombinedOutput()
	if err != nil {
		errMsg := fmt.Sprintf("Error occurred while running ffmpeg - output: %s", string(output))
		return CodecError{Op: EncodeOp, Path: outPath, Cause: cerr.Wrap(err).Error(errMsg)}
	}

	if _, err := os.Stat(outPath); err != nil {
		return CodecError{Op: EncodeOp, Path: outPath, Cause: cerr.Wrap(err).Error("ffmpeg did not produce an output file")}
	}

	logger.Debug("Finished ffmpeg command")
	return nil
}

// EncodeArgs re-encodes [start, end) of the source to MP3 at the source's
// average bitrate so each chunk stays close to its planned size.
func EncodeArgs(source AudioSource, start time.Duration, end time.Duration, outPath string) []string {
	return []string{
		"-y",
		"-hide_banner",
		"-loglevel", "error",
		"-i", source.Path,
		"-ss", formatFFmpegTime(start),
		"-to", formatFFmpegTime(end),
		"-vn",
		"-c:a", "libmp3lame",
		"-b:a", fmt.Sprintf("%dk", bitrateKbps(source)),
		"-f", "mp3",
		outPath,
	}
}

func bitrateKbps(source AudioSource) int {
	kbps := int(math.Round(source.BytesPerSecond() * 8 / 1000))
	if kbps < minBitrateKbps {
		return minBitrateKbps
	}
	if kbps > maxBitrateKbps {
		return maxBitrateKbps
	}

	return kbps
}

func formatFFmpegTime(d time.Duration) string {
	h := int(d.Hours())
	m := int(d.Minutes()) % 60
	s := d.Seconds() - float64(h*3600+m*60)
	return fmt.Sprintf("%02d:%02d:%06.3f", h, m, s)
}
