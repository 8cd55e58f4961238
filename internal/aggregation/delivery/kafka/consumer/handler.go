package consumer

import (
	"github.com/IBM/sarama"
)

type batchIngestedHandler struct {
	consumer *Consumer
}

func (h *batchIngestedHandler) Setup(sarama.ConsumerGroupSession) error {
	return nil
}

func (h *batchIngestedHandler) Cleanup(sarama.ConsumerGroupSession) error {
	return nil
}

func (h *batchIngestedHandler) ConsumeClaim(session sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	for msg := range claim.Messages() {
		if err := h.consumer.handleBatchIngestedMessage(session.Context(), msg); err != nil {
			h.consumer.l.Errorf(session.Context(), "aggregation.delivery.kafka.consumer.ConsumeClaim: Failed to process batch ingested message: %v", err)
			continue
		}
		session.MarkMessage(msg, "")
	}
	return nil
}
