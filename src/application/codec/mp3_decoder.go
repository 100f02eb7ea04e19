package codec

import (
	"freecast-workers/src/lib/cerr"
	"io"
	"os"
	"time"

	gomp3 "github.com/hajimehoshi/go-mp3"
)

var _ Decoder = MP3Decoder{}

// go-mp3 always decodes to 16-bit little-endian stereo
const mp3BytesPerFrame = 4

// mp3Stream is the part of gomp3.Decoder used here, so it can be faked.
type mp3Stream interface {
	SampleRate() int
	Length() int64
}

type openMP3Func func(r io.Reader) (mp3Stream, error)

func openGoMP3(r io.Reader) (mp3Stream, error) {
	return gomp3.NewDecoder(r)
}

func NewMP3Decoder() MP3Decoder {
	return MP3Decoder{openMP3: openGoMP3}
}

type MP3Decoder struct {
	openMP3 openMP3Func
}

func (m MP3Decoder) Decode(path string) (AudioSource, error) {
	file, err := os.Open(path)
	if err != nil {
		return AudioSource{}, CodecError{Op: DecodeOp, Path: path, Cause: err}
	}

	defer file.Close()

	info, err := file.Stat()
	if err != nil {
		return AudioSource{}, CodecError{Op: DecodeOp, Path: path, Cause: err}
	}

	openMP3 := m.openMP3
	if openMP3 == nil {
		openMP3 = openGoMP3
	}

	stream, err := openMP3(file)
	if err != nil {
		return AudioSource{}, CodecError{Op: DecodeOp, Path: path, Cause: err}
	}

	return sourceFromStream(path, info.Size(), stream)
}

func sourceFromStream(path string, byteSize int64, stream mp3Stream) (AudioSource, error) {
	sampleRate := stream.SampleRate()
	if sampleRate <= 0 {
		return AudioSource{}, CodecError{
			Op:    DecodeOp,
			Path:  path,
			Cause: cerr.Field("sample_rate", sampleRate).Error("Stream reported an invalid sample rate"),
		}
	}

	// Length is -1 when the reader could not be seeked to scan the frames
	length := stream.Length()
	if length < 0 {
		return AudioSource{}, CodecError{
			Op:    DecodeOp,
			Path:  path,
			Cause: cerr.Error("Stream length is unknown"),
		}
	}

	frames := length / mp3BytesPerFrame
	seconds := float64(frames) / float64(sampleRate)
	duration := time.Duration(seconds * float64(time.Second)).Round(time.Millisecond)

	return AudioSource{
		Path:       path,
		ByteSize:   byteSize,
		Duration:   duration,
		SampleRate: sampleRate,
	}, nil
}
