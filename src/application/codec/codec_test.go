package codec_test

import (
	"context"
	"errors"
	"freecast-workers/src/application/codec"
	"freecast-workers/src/application/executor/executorfakes"
	"io"
	"os"
	"path/filepath"
	"time"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

type stubStream struct {
	sampleRate int
	length     int64
}

func (s stubStream) SampleRate() int { return s.sampleRate }
func (s stubStream) Length() int64   { return s.length }

var _ = Describe("AudioSource", func() {
	It("averages the encoded size over the duration", func() {
		source := codec.AudioSource{ByteSize: 2400000, Duration: 300 * time.Second}
		Expect(source.BytesPerSecond()).To(BeNumerically("~", 8000, 1e-9))
	})

	It("reports no bitrate without a duration", func() {
		source := codec.AudioSource{ByteSize: 2400000}
		Expect(source.BytesPerSecond()).To(BeZero())
	})
})

var _ = Describe("MP3 decoder", func() {
	var (
		audioPath string
		content   []byte
	)

	BeforeEach(func() {
		audioPath = filepath.Join(workingDir, "episode.mp3")
		content = []byte("pretend these are mp3 frames")
	})

	JustBeforeEach(func() {
		err := os.WriteFile(audioPath, content, os.ModePerm)
		Expect(err).NotTo(HaveOccurred())
	})

	AfterEach(func() {
		_ = os.Remove(audioPath)
	})

	Describe("with a readable stream", func() {
		var decoder codec.MP3Decoder

		BeforeEach(func() {
			decoder = codec.NewMP3DecoderWithOpener(func(r io.Reader) (codec.MP3Stream, error) {
				return stubStream{sampleRate: 44100, length: 44100 * 4 * 300}, nil
			})
		})

		It("reports the duration and the encoded size", func() {
			source, err := decoder.Decode(audioPath)
			Expect(err).NotTo(HaveOccurred())
			Expect(source.Path).To(Equal(audioPath))
			Expect(source.Duration).To(Equal(300 * time.Second))
			Expect(source.ByteSize).To(Equal(int64(len(content))))
			Expect(source.SampleRate).To(Equal(44100))
		})
	})

	Describe("when the stream length is unknown", func() {
		It("returns a codec error", func() {
			decoder := codec.NewMP3DecoderWithOpener(func(r io.Reader) (codec.MP3Stream, error) {
				return stubStream{sampleRate: 44100, length: -1}, nil
			})

			_, err := decoder.Decode(audioPath)
			var codecErr codec.CodecError
			Expect(errors.As(err, &codecErr)).To(BeTrue())
			Expect(codecErr.Op).To(Equal(codec.DecodeOp))
		})
	})

	Describe("when the stream has no sample rate", func() {
		It("returns a codec error", func() {
			decoder := codec.NewMP3DecoderWithOpener(func(r io.Reader) (codec.MP3Stream, error) {
				return stubStream{sampleRate: 0, length: 400}, nil
			})

			_, err := decoder.Decode(audioPath)
			var codecErr codec.CodecError
			Expect(errors.As(err, &codecErr)).To(BeTrue())
		})
	})

	Describe("with the real mp3 decoder", func() {
		It("rejects data that isn't mp3", func() {
			_, err := codec.NewMP3Decoder().Decode(audioPath)
			var codecErr codec.CodecError
			Expect(errors.As(err, &codecErr)).To(BeTrue())
			Expect(codecErr.Path).To(Equal(audioPath))
		})

		Describe("on an empty file", func() {
			BeforeEach(func() {
				content = []byte{}
			})

			It("returns a codec error", func() {
				_, err := codec.NewMP3Decoder().Decode(audioPath)
				var codecErr codec.CodecError
				Expect(errors.As(err, &codecErr)).To(BeTrue())
			})
		})
	})

	It("returns a codec error for a missing file", func() {
		_, err := codec.NewMP3Decoder().Decode(filepath.Join(workingDir, "nope.mp3"))
		var codecErr codec.CodecError
		Expect(errors.As(err, &codecErr)).To(BeTrue())
		Expect(codecErr.Op).To(Equal(codec.DecodeOp))
	})
})

var _ = Describe("FFmpeg encoder", func() {
	var (
		fakeExecutor *executorfakes.FakeExecutor
		fakeCommand  *executorfakes.FakeCommand
		encoder      codec.FFmpegEncoder

		source  codec.AudioSource
		outPath string
	)

	BeforeEach(func() {
		fakeExecutor = &executorfakes.FakeExecutor{}
		fakeCommand = &executorfakes.FakeCommand{}
		fakeExecutor.CommandContextReturns(fakeCommand)

		encoder = codec.NewFFmpegEncoder("/usr/bin/ffmpeg", fakeExecutor)
		source = codec.AudioSource{
			Path:     "/episodes/episode.mp3",
			ByteSize: 4800000,
			Duration: 600 * time.Second,
		}
		outPath = filepath.Join(workingDir, "episode_part2.mp3")
	})

	AfterEach(func() {
		_ = os.Remove(outPath)
	})

	Describe("when ffmpeg succeeds", func() {
		BeforeEach(func() {
			fakeCommand.CombinedOutputStub = func() ([]byte, error) {
				return nil, os.WriteFile(outPath, []byte("chunk"), os.ModePerm)
			}
		})

		It("re-encodes the requested range at the source bitrate", func() {
			err := encoder.Encode(context.Background(), source, 200*time.Second, 400*time.Second, outPath)
			Expect(err).NotTo(HaveOccurred())

			Expect(fakeExecutor.CommandContextCallCount()).To(Equal(1))
			_, binPath, args := fakeExecutor.CommandContextArgsForCall(0)
			Expect(binPath).To(Equal("/usr/bin/ffmpeg"))
			Expect(args).To(Equal([]string{
				"-y",
				"-hide_banner",
				"-loglevel", "error",
				"-i", "/episodes/episode.mp3",
				"-ss", "00:03:20.000",
				"-to", "00:06:40.000",
				"-vn",
				"-c:a", "libmp3lame",
				"-b:a", "64k",
				"-f", "mp3",
				outPath,
			}))
		})
	})

	Describe("when ffmpeg fails", func() {
		BeforeEach(func() {
			fakeCommand.CombinedOutputReturns([]byte("Invalid data found when processing input"), errors.New("exit status 1"))
		})

		It("returns a codec error including the tool output", func() {
			err := encoder.Encode(context.Background(), source, 0, 200*time.Second, outPath)
			var codecErr codec.CodecError
			Expect(errors.As(err, &codecErr)).To(BeTrue())
			Expect(codecErr.Op).To(Equal(codec.EncodeOp))
			Expect(err.Error()).To(ContainSubstring("Invalid data found when processing input"))
		})
	})

	Describe("when ffmpeg exits cleanly without writing the chunk", func() {
		It("returns a codec error", func() {
			err := encoder.Encode(context.Background(), source, 0, 200*time.Second, outPath)
			var codecErr codec.CodecError
			Expect(errors.As(err, &codecErr)).To(BeTrue())
		})
	})

	It("refuses an empty range without running ffmpeg", func() {
		err := encoder.Encode(context.Background(), source, 200*time.Second, 200*time.Second, outPath)
		Expect(err).To(HaveOccurred())
		Expect(fakeExecutor.CommandContextCallCount()).To(BeZero())
	})

	It("clamps the bitrate for very dense sources", func() {
		source.ByteSize = 600 * 1000 * 1000
		args := codec.EncodeArgs(source, 0, time.Second, outPath)
		Expect(args).To(ContainElement("320k"))
	})
})
