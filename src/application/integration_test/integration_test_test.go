package integration_test_test

import (
	"context"
	"fmt"
	"freecast-workers/src/application/codec"
	"freecast-workers/src/application/codec/codecfakes"
	"freecast-workers/src/application/episodes/entity"
	"freecast-workers/src/application/fetch"
	"freecast-workers/src/application/integration_test/dummy"
	"freecast-workers/src/application/jobs/job_router"
	"freecast-workers/src/application/jobs/save_chunks_to_db"
	"freecast-workers/src/application/jobs/split_audio"
	"freecast-workers/src/application/metrics"
	"freecast-workers/src/application/splitter"
	"freecast-workers/src/application/usecase/chunking"
	"freecast-workers/src/application/worker"
	"freecast-workers/src/lib/working_dir"
	"net/http"
	"net/http/httptest"
	"time"

	. "github.com/onsi/gomega"

	. "github.com/onsi/ginkgo"
)

var _ = Describe("IntegrationTest", func() {
	var (
		episodeGUID       string
		originalAudioData []byte
		bucketName        string
		maxChunkBytes     int64

		server *httptest.Server

		rabbitMQ       *dummy.RabbitMQ
		fileStore      *dummy.FileStore
		episodeStore   *dummy.EpisodeStore
		ffmpegExecutor *dummy.FFmpegExecutor

		queueWorker worker.QueueWorker
		run         func()
	)

	BeforeEach(func() {
		By("Assigning data to variables", func() {
			episodeGUID = "episode-GUID"
			originalAudioData = []byte("cool-episode")
			bucketName = "bucket-head"
			maxChunkBytes = 1000000
		})

		By("Serving the original episode", func() {
			server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write(originalAudioData)
			}))
		})

		By("Instantiating all dummies", func() {
			rabbitMQ = dummy.NewRabbitMQ()
			fileStore = dummy.NewDummyFileStore()
			episodeStore = dummy.NewDummyEpisodeStore()
			ffmpegExecutor = dummy.NewDummyFFmpegExecutor()
		})

		var router job_router.JobRouter

		By("Creating the job router", func() {
			dir, err := working_dir.NewWorkingDir(workingDir)
			Expect(err).NotTo(HaveOccurred())

			decoder := &codecfakes.FakeDecoder{}
			decoder.DecodeStub = func(path string) (codec.AudioSource, error) {
				return codec.AudioSource{Path: path, ByteSize: 2500000, Duration: 250 * time.Second}, nil
			}

			fetcher := fetch.NewSelectFetcher(
				fetch.NewHTTPFetcher(server.Client(), "Mozilla/5.0 (test)", dir),
				fetch.NewLocalFetcher(),
			)
			audioSplitter := splitter.NewFileSplitter(decoder, codec.NewFFmpegEncoder("/whatever/ffmpeg", ffmpegExecutor))
			episodeChunker := chunking.NewEpisodeChunker(chunking.NewReferenceSplitter(fetcher, audioSplitter), fileStore, bucketName)

			router = job_router.NewJobRouter(
				episodeStore,
				rabbitMQ,
				split_audio.NewJobHandler(episodeStore, episodeChunker, maxChunkBytes),
				save_chunks_to_db.NewJobHandler(episodeStore),
			)
		})

		By("Instantiating the worker", func() {
			queueWorker = worker.NewQueueWorker(rabbitMQ, "test-queue", router, metrics.NewMetrics())
		})

		By("Setting up the run routine", func() {
			run = func() {
				go func() {
					defer GinkgoRecover()
					err := queueWorker.Start()
					Expect(err).NotTo(HaveOccurred())
				}()

				message, err := split_audio.CreateJobMessage(episodeGUID, server.URL+"/episodes/cool.mp3", 0)
				Expect(err).NotTo(HaveOccurred())
				err = rabbitMQ.Publish(message)
				Expect(err).NotTo(HaveOccurred())
			}
		})
	})

	AfterEach(func() {
		server.Close()
	})

	It("gets 2 acks", func() {
		run()

		Eventually(rabbitMQ.AckCounter).Should(Equal(2))
	})

	It("gets no nacks", func() {
		run()

		Consistently(rabbitMQ.NackCounter).Should(Equal(0))
	})

	It("uploads the chunks and saves them to the episode", func() {
		run()

		Eventually(func() entity.JobStatus {
			episode, err := episodeStore.GetEpisode(context.Background(), episodeGUID)
			if err != nil {
				return entity.NoStatus
			}
			return episode.JobStatus
		}).Should(Equal(entity.CompletedStatus))

		episode, err := episodeStore.GetEpisode(context.Background(), episodeGUID)
		Expect(err).NotTo(HaveOccurred())
		Expect(episode.JobProgress).To(Equal(100))
		Expect(episode.Chunks).To(HaveLen(3))

		expectedRanges := []string{
			"00:00:00.000-00:01:40.000",
			"00:01:40.000-00:03:20.000",
			"00:03:20.000-00:04:10.000",
		}

		for i, chunk := range episode.Chunks {
			Expect(chunk.Index).To(Equal(i))
			Expect(chunk.URL).To(Equal(fmt.Sprintf("https://storage.googleapis.com/%s/episodes/%s/part%d.mp3", bucketName, episodeGUID, i+1)))

			contents, err := fileStore.GetFile(context.Background(), chunk.URL)
			Expect(err).NotTo(HaveOccurred())
			Expect(string(contents)).To(Equal(string(originalAudioData) + ":" + expectedRanges[i]))
		}

		Expect(episode.Chunks[2].EndMillis).To(Equal(int64(250000)))
	})

	Describe("when ffmpeg is broken", func() {
		BeforeEach(func() {
			ffmpegExecutor.Unavailable = true
		})

		It("nacks the job and marks the episode as failed", func() {
			run()

			Eventually(rabbitMQ.NackCounter).Should(Equal(1))

			episode, err := episodeStore.GetEpisode(context.Background(), episodeGUID)
			Expect(err).NotTo(HaveOccurred())
			Expect(episode.JobStatus).To(Equal(entity.ErrorStatus))
			Expect(episode.JobStatusMessage).To(Equal(split_audio.ErrorMessage))
			Expect(episode.JobStatusDebugLog).To(ContainSubstring("ffmpeg"))
			Expect(fileStore.Len()).To(BeZero())
		})
	})
})
