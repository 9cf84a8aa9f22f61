package handler

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"

	goshopify "github.com/bold-commerce/go-shopify/v3"
	"github.com/go-playground/validator/v10"
	"github.com/segmentio/kafka-go"

	"github.com/orderdesk/supplier-orders/internal/config"
	"github.com/orderdesk/supplier-orders/internal/entities"
	"github.com/orderdesk/supplier-orders/internal/normalize"
)

type OrderSaver interface {
	SaveOrder(ctx context.Context, order entities.Order) error
}

// OrderEvent is a Shopify order webhook relayed through Kafka. The
// payload keeps the REST wire shape; the store name routes it.
type OrderEvent struct {
	Store string          `json:"store" validate:"required"`
	Order json.RawMessage `json:"order" validate:"required"`
}

type kafkaHandler struct {
	dlq      *kafka.Writer
	reader   *kafka.Reader
	logger   *slog.Logger
	validate *validator.Validate
	saver    OrderSaver
}

func NewKafkaHandler(logger *slog.Logger, cfg config.Kafka, saver OrderSaver) *kafkaHandler {
	return &kafkaHandler{
		logger: logger.With(slog.String("handler", "kafka")),
		reader: kafka.NewReader(kafka.ReaderConfig{
			Brokers: cfg.Brokers,
			GroupID: cfg.GroupID,
			Topic:   cfg.Topic,
			MaxWait: cfg.ReaderMaxWait,
		}),
		dlq: &kafka.Writer{
			Addr:         kafka.TCP(cfg.Brokers...),
			Balancer:     &kafka.LeastBytes{},
			BatchTimeout: cfg.BatchTimeout,
		},
		validate: validator.New(),
		saver:    saver,
	}
}

func (h *kafkaHandler) Consume(ctx context.Context) {
	for {
		m, err := h.reader.FetchMessage(ctx)
		if err != nil {
			if errors.Is(err, io.EOF) || errors.Is(err, context.Canceled) {
				break
			}
			h.logger.Error("failed to fetch message", slog.Any("error", err))
			continue
		}

		if err := h.handleOrderEvent(ctx, m); err != nil {
			eventsFailed.Inc()
			h.logger.Error("failed to handle message", slog.Any("error", err))

			if err := h.WriteToDLQ(ctx, m); err != nil {
				h.logger.Error("failed to write message to DLQ", slog.Any("error", err))
				continue
			}
			eventsDLQ.Inc()
		} else {
			eventsProcessed.Inc()
		}

		if err := h.reader.CommitMessages(ctx, m); err != nil {
			commitErrors.Inc()
			h.logger.Error("failed to commit message", slog.Any("error", err))
		}
	}
}

func (h *kafkaHandler) handleOrderEvent(ctx context.Context, m kafka.Message) error {
	var event OrderEvent
	if err := json.Unmarshal(m.Value, &event); err != nil {
		return fmt.Errorf("failed to unmarshal event: %w", err)
	}

	if err := h.validate.Struct(event); err != nil {
		return fmt.Errorf("invalid event data: %w", err)
	}

	var raw goshopify.Order
	if err := json.Unmarshal(event.Order, &raw); err != nil {
		return fmt.Errorf("failed to unmarshal order payload: %w", err)
	}

	return h.saver.SaveOrder(ctx, normalize.FromREST(event.Store, raw))
}

func (h *kafkaHandler) WriteToDLQ(ctx context.Context, m kafka.Message) error {
	m.Topic = fmt.Sprintf("%s-dlq", m.Topic)
	return h.dlq.WriteMessages(ctx, m)
}

func (h *kafkaHandler) Close() error {
	if err := h.reader.Close(); err != nil {
		return err
	}
	return h.dlq.Close()
}
