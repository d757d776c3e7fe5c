package notify

import (
	"time"

	"github.com/streadway/amqp"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	// Channel is the subset of *amqp.Channel used by the publisher.
	Channel interface {
		ExchangeDeclare(name, kind string, durable, autoDelete, internal, noWait bool, args amqp.Table) error
		Publish(exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
		Close() error
	}

	Metrics interface {
		ObservePublish(event string, err error, started time.Time)
	}
)
