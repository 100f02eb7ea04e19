package application

import (
	filestore "freecast-workers/src/application/cloud_storage/store"
	"freecast-workers/src/application/codec"
	"freecast-workers/src/application/config"
	episodestore "freecast-workers/src/application/episodes/store"
	"freecast-workers/src/application/executor"
	"freecast-workers/src/application/fetch"
	"freecast-workers/src/application/jobs/job_router"
	"freecast-workers/src/application/jobs/save_chunks_to_db"
	"freecast-workers/src/application/jobs/split_audio"
	"freecast-workers/src/application/metrics"
	"freecast-workers/src/application/publish"
	"freecast-workers/src/application/splitter"
	"freecast-workers/src/application/usecase/chunking"
	"freecast-workers/src/application/worker"
	"freecast-workers/src/lib/cerr"
	"freecast-workers/src/lib/working_dir"
	"net/http"

	"github.com/apex/log"
	"github.com/streadway/amqp"
)

func ensureOk(err error) {
	if err != nil {
		cerr.Log(err)
		panic(err)
	}
}

// NewReferenceSplitter builds the fetch, decode and encode pipeline shared
// by the CLI and the queue workers.
func NewReferenceSplitter(cfg config.Config) (chunking.ReferenceSplitter, error) {
	workingDir, err := working_dir.NewWorkingDir(cfg.WorkingDir)
	if err != nil {
		return chunking.ReferenceSplitter{}, cerr.Wrap(err).Error("Failed to create working directory object")
	}

	fetcher := fetch.NewSelectFetcher(
		fetch.NewHTTPFetcher(http.DefaultClient, cfg.UserAgent, workingDir),
		fetch.NewLocalFetcher(),
	)

	audioSplitter := splitter.NewFileSplitter(
		codec.NewMP3Decoder(),
		codec.NewFFmpegEncoder(cfg.FFmpegBinPath, executor.BinaryFileExecutor{}),
	)

	return chunking.NewReferenceSplitter(fetcher, audioSplitter), nil
}

type App struct {
	workers []worker.QueueWorker
	metrics *metrics.Metrics
}

func NewApp(cfg config.WorkerConfig) App {
	consumerConn, err := amqp.Dial(cfg.RabbitMQURL)
	ensureOk(err)
	producerConn, err := amqp.Dial(cfg.RabbitMQURL)
	ensureOk(err)

	jobMetrics := metrics.NewMetrics()

	workers := []worker.QueueWorker{}
	for i := 0; i < cfg.NumWorkers; i++ {
		workers = append(workers, newWorker(cfg, consumerConn, producerConn, jobMetrics))
	}

	return App{
		workers: workers,
		metrics: jobMetrics,
	}
}

// MetricsHandler serves the workers' job metrics in the Prometheus format.
func (a App) MetricsHandler() http.Handler {
	return a.metrics.Handler()
}

func (a App) Start() {
	for _, queueWorker := range a.workers {
		go func(worker worker.QueueWorker) {
			err := worker.Start()
			if err != nil {
				cerr.Log(cerr.Wrap(err).Error("Failed to start worker!"))
			}
		}(queueWorker)
	}
}

func newWorker(cfg config.WorkerConfig, consumerConn *amqp.Connection, producerConn *amqp.Connection, jobMetrics *metrics.Metrics) worker.QueueWorker {
	publisher := newPublisher(cfg, producerConn)
	episodeStore := episodestore.NewDynamoDBEpisodeStore(cfg.Environment, cfg.AWSRegion, cfg.ChunkTableName)

	router := job_router.NewJobRouter(
		episodeStore,
		publisher,
		newSplitAudioJobHandler(cfg, episodeStore),
		save_chunks_to_db.NewJobHandler(episodeStore),
	)

	queueWorker, err := worker.NewQueueWorkerFromConnection(consumerConn, cfg.QueueName, router, jobMetrics)
	ensureOk(err)
	return queueWorker
}

func newPublisher(cfg config.WorkerConfig, conn *amqp.Connection) publish.RabbitMQPublisher {
	publisher, err := publish.NewRabbitMQPublisher(conn, cfg.QueueName)
	ensureOk(err)
	return publisher
}

func newGoogleFileStore(cfg config.WorkerConfig) filestore.GoogleFileStore {
	fileStore, err := filestore.NewGoogleFileStore(cfg.GoogleCloudKey)
	ensureOk(err)
	return fileStore
}

func newSplitAudioJobHandler(cfg config.WorkerConfig, episodeStore episodestore.DynamoDBEpisodeStore) split_audio.JobHandler {
	referenceSplitter, err := NewReferenceSplitter(cfg.Config)
	ensureOk(err)

	episodeChunker := chunking.NewEpisodeChunker(referenceSplitter, newGoogleFileStore(cfg), cfg.BucketName)

	log.WithFields(log.Fields{
		"bucket":        cfg.BucketName,
		"maxChunkBytes": cfg.MaxChunkBytes,
	}).Info("Created split audio job handler")

	return split_audio.NewJobHandler(episodeStore, episodeChunker, cfg.MaxChunkBytes)
}
