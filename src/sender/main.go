package main

import (
	"fmt"
	"freecast-workers/src/application/config"
	"freecast-workers/src/application/jobs/split_audio"
	"freecast-workers/src/application/publish"
	"freecast-workers/src/application/worker"
	"freecast-workers/src/lib/cerr"
	"os"
	"strconv"

	"github.com/apex/log"
	"github.com/streadway/amqp"
)

const usage = "Usage: sender <episode_guid> <audio_url> [max_chunk_bytes]"

func main() {
	if len(os.Args) < 3 || len(os.Args) > 4 {
		fmt.Fprintln(os.Stderr, usage)
		os.Exit(1)
	}

	var maxChunkBytes int64
	if len(os.Args) == 4 {
		var err error
		maxChunkBytes, err = strconv.ParseInt(os.Args[3], 10, 64)
		if err != nil || maxChunkBytes <= 0 {
			fmt.Fprintln(os.Stderr, usage)
			os.Exit(1)
		}
	}

	cfg, err := config.LoadQueue()
	ensureOk(err)

	conn, err := amqp.Dial(cfg.RabbitMQURL)
	ensureOk(err)
	defer conn.Close()

	rabbitChannel, err := conn.Channel()
	ensureOk(err)
	defer rabbitChannel.Close()

	_, err = worker.DeclareQueue(rabbitChannel, cfg.QueueName)
	ensureOk(err)

	job, err := split_audio.CreateJobMessage(os.Args[1], os.Args[2], maxChunkBytes)
	ensureOk(err)

	err = publish.NewRabbitMQPublisherWithChannel(rabbitChannel, cfg.QueueName).Publish(job)
	ensureOk(err)

	log.WithFields(log.Fields{
		"episode_guid": os.Args[1],
		"queue_name":   cfg.QueueName,
	}).Info("Published split audio job")
}

func ensureOk(err error) {
	if err != nil {
		cerr.Log(err)
		panic(err)
	}
}
