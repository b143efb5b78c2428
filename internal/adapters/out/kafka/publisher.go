// Package kafka publishes aggregate change events to Kafka topics.
package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"autoservice/internal/core/domain/model/order"
	"autoservice/internal/core/domain/model/part"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/propagation"
)

// OrderChangedEvent is the payload written to the order changed topic.
type OrderChangedEvent struct {
	EventID        string      `json:"eventId"`
	OccurredAt     time.Time   `json:"occurredAt"`
	OrderID        string      `json:"orderId"`
	Status         string      `json:"status"`
	Completed      bool        `json:"completed"`
	PartIDs        []string    `json:"partIds"`
	RequiredTasks  []string    `json:"requiredTasks"`
	CompletedTasks []string    `json:"completedTasks"`
	LaborCost      json.Number `json:"laborCost"`
}

// PartChangedEvent is the payload written to the part changed topic.
type PartChangedEvent struct {
	EventID    string      `json:"eventId"`
	OccurredAt time.Time   `json:"occurredAt"`
	PartID     string      `json:"partId"`
	Name       string      `json:"name"`
	Stock      int         `json:"stock"`
	Available  bool        `json:"available"`
	Price      json.Number `json:"price"`
}

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// Publisher implements ports.EventPublisher on top of a kafka-go writer.
// Messages are keyed by aggregate id so that events of one aggregate stay ordered.
// The trace context of the publishing request travels in the message headers.
type Publisher struct {
	writer     messageWriter
	orderTopic string
	partTopic  string
	propagator propagation.TextMapPropagator
	now        func() time.Time
}

// NewPublisher creates a publisher writing to the given broker address.
func NewPublisher(broker, orderTopic, partTopic string) *Publisher {
	writer := &kafka.Writer{
		Addr:                   kafka.TCP(broker),
		Balancer:               &kafka.Hash{},
		RequiredAcks:           kafka.RequireOne,
		AllowAutoTopicCreation: true,
		BatchTimeout:           10 * time.Millisecond,
	}
	return newPublisher(writer, orderTopic, partTopic)
}

func newPublisher(writer messageWriter, orderTopic, partTopic string) *Publisher {
	return &Publisher{
		writer:     writer,
		orderTopic: orderTopic,
		partTopic:  partTopic,
		propagator: otel.GetTextMapPropagator(),
		now:        func() time.Time { return time.Now().UTC() },
	}
}

func (p *Publisher) PublishOrderChanged(ctx context.Context, aggregate *order.ServiceOrder) error {
	partIDs := make([]string, 0, len(aggregate.Parts()))
	for _, id := range aggregate.Parts() {
		partIDs = append(partIDs, id.String())
	}

	event := OrderChangedEvent{
		EventID:        uuid.NewString(),
		OccurredAt:     p.now(),
		OrderID:        aggregate.ID().String(),
		Status:         aggregate.Status().String(),
		Completed:      aggregate.Completed(),
		PartIDs:        partIDs,
		RequiredTasks:  taskLabels(aggregate.RequiredTasks()),
		CompletedTasks: taskLabels(aggregate.CompletedTasks()),
		LaborCost:      json.Number(aggregate.LaborCost().String()),
	}
	return p.write(ctx, p.orderTopic, event.OrderID, event)
}

func (p *Publisher) PublishPartChanged(ctx context.Context, aggregate *part.Part) error {
	event := PartChangedEvent{
		EventID:    uuid.NewString(),
		OccurredAt: p.now(),
		PartID:     aggregate.ID().String(),
		Name:       aggregate.Name(),
		Stock:      aggregate.Stock(),
		Available:  aggregate.IsAvailable(),
		Price:      json.Number(aggregate.Price().String()),
	}
	return p.write(ctx, p.partTopic, event.PartID, event)
}

func (p *Publisher) Close() error {
	return p.writer.Close()
}

func (p *Publisher) write(ctx context.Context, topic, key string, event any) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal event: %w", err)
	}

	carrier := propagation.MapCarrier{}
	p.propagator.Inject(ctx, carrier)
	headers := make([]kafka.Header, 0, len(carrier))
	for _, k := range carrier.Keys() {
		headers = append(headers, kafka.Header{Key: k, Value: []byte(carrier.Get(k))})
	}

	err = p.writer.WriteMessages(ctx, kafka.Message{
		Topic:   topic,
		Key:     []byte(key),
		Value:   payload,
		Headers: headers,
	})
	if err != nil {
		return fmt.Errorf("write to %s: %w", topic, err)
	}
	return nil
}

func taskLabels(tasks []order.Task) []string {
	labels := make([]string, 0, len(tasks))
	for _, t := range tasks {
		labels = append(labels, t.String())
	}
	return labels
}

// NopPublisher drops every event. It is used when no broker is configured.
type NopPublisher struct{}

func (NopPublisher) PublishOrderChanged(context.Context, *order.ServiceOrder) error { return nil }
func (NopPublisher) PublishPartChanged(context.Context, *part.Part) error          { return nil }
func (NopPublisher) Close() error                                                  { return nil }
