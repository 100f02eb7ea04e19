package publish

import (
	"freecast-workers/src/lib/cerr"

	"github.com/streadway/amqp"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

var _ Publisher = RabbitMQPublisher{}

//counterfeiter:generate . Publisher
type Publisher interface {
	Publish(msg amqp.Publishing) error
}

type PublishChannel interface {
	Publish(exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
}

func NewRabbitMQPublisher(conn *amqp.Connection, queueName string) (RabbitMQPublisher, error) {
	channel, err := conn.Channel()
	if err != nil {
		return RabbitMQPublisher{}, cerr.Wrap(err).Error("Failed to create rabbit channel")
	}

	return NewRabbitMQPublisherWithChannel(channel, queueName), nil
}

func NewRabbitMQPublisherWithChannel(channel PublishChannel, queueName string) RabbitMQPublisher {
	return RabbitMQPublisher{
		channel:   channel,
		queueName: queueName,
	}
}

type RabbitMQPublisher struct {
	channel   PublishChannel
	queueName string
}

func (r RabbitMQPublisher) Publish(msg amqp.Publishing) error {
	msg.ContentType = "application/json"
	msg.DeliveryMode = amqp.Persistent

	if err := r.channel.Publish("", r.queueName, true, false, msg); err != nil {
		return cerr.Field("queue_name", r.queueName).
			Field("job_type", msg.Type).
			Wrap(err).Error("Failed to publish message")
	}

	return nil
}
