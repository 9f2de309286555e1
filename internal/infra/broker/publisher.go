package broker

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"campsite-reservation/internal/pkg/errs"
	"campsite-reservation/internal/usecase/shared"

	amqp "github.com/rabbitmq/amqp091-go"
)

// Publisher delivers outbox events to a consumer outside the process.
type Publisher interface {
	Publish(ctx context.Context, event shared.ReservationEvent) error
	Close() error
}

// AMQPPublisher publishes to a durable topic exchange using the event topic as
// routing key. The connection is opened lazily and re-dialed after a failure.
type AMQPPublisher struct {
	url      string
	exchange string

	mu   sync.Mutex
	conn *amqp.Connection
	ch   *amqp.Channel
}

func NewAMQPPublisher(url, exchange string) *AMQPPublisher {
	return &AMQPPublisher{url: url, exchange: exchange}
}

func (p *AMQPPublisher) Publish(ctx context.Context, event shared.ReservationEvent) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	ch, err := p.channel()
	if err != nil {
		return err
	}

	msg := amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		MessageId:    event.ID.String(),
		Type:         string(event.Kind),
		Timestamp:    time.Now().UTC(),
		Body:         event.Payload,
	}
	if err := ch.PublishWithContext(ctx, p.exchange, event.Topic, false, false, msg); err != nil {
		p.reset()
		return errs.Wrap(err, "amqp publish failed")
	}
	return nil
}

func (p *AMQPPublisher) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.conn == nil {
		return nil
	}
	err := p.conn.Close()
	p.conn, p.ch = nil, nil
	return err
}

// channel must be called with mu held.
func (p *AMQPPublisher) channel() (*amqp.Channel, error) {
	if p.ch != nil && !p.ch.IsClosed() {
		return p.ch, nil
	}
	p.reset()

	conn, err := amqp.Dial(p.url)
	if err != nil {
		return nil, errs.Wrap(err, "amqp dial failed")
	}
	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, errs.Wrap(err, "amqp channel open failed")
	}
	if err := ch.ExchangeDeclare(
		p.exchange, // name
		"topic",    // kind
		true,       // durable
		false,      // autoDelete
		false,      // internal
		false,      // noWait
		nil,        // args
	); err != nil {
		_ = conn.Close()
		return nil, errs.Wrap(err, "amqp exchange declare failed")
	}

	p.conn, p.ch = conn, ch
	return ch, nil
}

func (p *AMQPPublisher) reset() {
	if p.conn != nil {
		_ = p.conn.Close()
	}
	p.conn, p.ch = nil, nil
}

// LogPublisher drains the outbox into the application log when no broker is configured.
type LogPublisher struct{}

func NewLogPublisher() *LogPublisher {
	return &LogPublisher{}
}

func (LogPublisher) Publish(_ context.Context, event shared.ReservationEvent) error {
	slog.Info("reservation event",
		"event_id", event.ID.String(),
		"kind", string(event.Kind),
		"topic", event.Topic,
		"payload", string(event.Payload))
	return nil
}

func (LogPublisher) Close() error { return nil }
