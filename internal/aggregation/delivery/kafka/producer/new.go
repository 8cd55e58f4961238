package producer

import (
	"analytics-srv/internal/aggregation"
	pkgKafka "analytics-srv/pkg/kafka"
	"analytics-srv/pkg/log"
)

// Producer interface for aggregation domain
type Producer interface {
	aggregation.Producer
}

// implProducer implements the Producer interface
type implProducer struct {
	l        log.Logger
	producer pkgKafka.IProducer
}

// New creates a new aggregation producer
func New(l log.Logger, producer pkgKafka.IProducer) Producer {
	return &implProducer{
		l:        l,
		producer: producer,
	}
}
