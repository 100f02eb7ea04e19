package worker

import (
	"freecast-workers/src/lib/cerr"
	"time"

	"github.com/apex/log"
	"github.com/streadway/amqp"
)

type MessageChannel interface {
	Consume(queue, consumer string, autoAck, exclusive, noLocal, noWait bool, args amqp.Table) (<-chan amqp.Delivery, error)
	Close() error
}

type MessageRouter interface {
	HandleMessage(message amqp.Delivery) error
}

type JobObserver interface {
	ObserveJob(jobType string, duration time.Duration, err error)
}

type QueueWorker struct {
	channel   MessageChannel
	router    MessageRouter
	observer  JobObserver
	queueName string
}

func NewQueueWorker(channel MessageChannel, queueName string, router MessageRouter, observer JobObserver) QueueWorker {
	return QueueWorker{
		channel:   channel,
		queueName: queueName,
		router:    router,
		observer:  observer,
	}
}

func NewQueueWorkerFromConnection(conn *amqp.Connection, queueName string, router MessageRouter, observer JobObserver) (QueueWorker, error) {
	rabbitChannel, err := conn.Channel()
	if err != nil {
		return QueueWorker{}, cerr.Wrap(err).Error("Failed to get channel")
	}

	// one unacked message at a time so a long split doesn't hoard the queue
	if err := rabbitChannel.Qos(1, 0, false); err != nil {
		_ = rabbitChannel.Close()
		return QueueWorker{}, cerr.Wrap(err).Error("Failed to set channel prefetch")
	}

	queue, err := DeclareQueue(rabbitChannel, queueName)
	if err != nil {
		_ = rabbitChannel.Close()
		return QueueWorker{}, err
	}

	return NewQueueWorker(rabbitChannel, queue.Name, router, observer), nil
}

// DeclareQueue declares the durable job queue shared by workers and senders.
func DeclareQueue(channel *amqp.Channel, queueName string) (amqp.Queue, error) {
	queue, err := channel.QueueDeclare(
		queueName,
		true,
		false,
		false,
		false,
		nil,
	)
	if err != nil {
		return amqp.Queue{}, cerr.Field("queue_name", queueName).Wrap(err).Error("Failed to declare queue")
	}

	return queue, nil
}

func (q QueueWorker) Start() error {
	logger := log.WithField("queue_name", q.queueName)
	logger.Info("Starting worker")

	defer q.channel.Close()

	messageStream, err := q.channel.Consume(
		q.queueName,
		"",
		false,
		false,
		false,
		false,
		nil,
	)

	if err != nil {
		return cerr.Field("queue_name", q.queueName).
			Wrap(err).Error("Failed to start consuming from channel")
	}

	for message := range messageStream {
		q.handle(message)
	}

	logger.Info("Message stream closed, stopping worker")
	return nil
}

func (q QueueWorker) handle(message amqp.Delivery) {
	logger := log.WithField("message_type", message.Type)
	logger.Info("Handling message")

	started := time.Now()
	err := q.router.HandleMessage(message)
	q.observer.ObserveJob(message.Type, time.Since(started), err)

	if err != nil {
		err = cerr.Field("message_type", message.Type).
			Wrap(err).Error("Failed to process message")

		cerr.Log(err)

		if err = message.Nack(false, false); err != nil {
			logger.WithError(err).Error("Failed to nack message")
		}
		return
	}

	logger.Info("Successfully processed message")
	if err = message.Ack(false); err != nil {
		logger.WithError(err).Error("Failed to ack message")
	}
}
