package events

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/rs/zerolog"
	"github.com/streadway/amqp"
)

// RabbitMQPublisher publica eventos de villas en una queue durable de RabbitMQ
type RabbitMQPublisher struct {
	connection *amqp.Connection
	channel    *amqp.Channel
	queueName  string
	logger     zerolog.Logger

	// amqp.Channel no se puede usar desde varias goroutines a la vez
	mu sync.Mutex
}

// NewRabbitMQPublisher conecta con RabbitMQ y declara la queue
func NewRabbitMQPublisher(rabbitURL, queueName string, logger zerolog.Logger) (*RabbitMQPublisher, error) {
	if queueName == "" {
		queueName = "villas_queue"
	}
	logger = logger.With().Str("component", "rabbitmq_publisher").Str("queue", queueName).Logger()

	conn, err := amqp.Dial(rabbitURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to RabbitMQ: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to open channel: %w", err)
	}

	_, err = ch.QueueDeclare(
		queueName, // name
		true,      // durable
		false,     // delete when unused
		false,     // exclusive
		false,     // no-wait
		nil,       // arguments
	)
	if err != nil {
		ch.Close()
		conn.Close()
		return nil, fmt.Errorf("failed to declare queue: %w", err)
	}

	logger.Info().Msg("connected to RabbitMQ")

	return &RabbitMQPublisher{
		connection: conn,
		channel:    ch,
		queueName:  queueName,
		logger:     logger,
	}, nil
}

// Publish serializa el evento a JSON y lo manda a la queue como mensaje persistente
func (p *RabbitMQPublisher) Publish(ctx context.Context, event VillaEvent) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	body, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal villa event: %w", err)
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	err = p.channel.Publish(
		"",          // exchange por defecto
		p.queueName, // routing key = nombre de la queue
		false,       // mandatory
		false,       // immediate
		amqp.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp.Persistent,
			MessageId:    event.ID,
			Timestamp:    event.OccurredAt,
			Body:         body,
		},
	)
	if err != nil {
		return fmt.Errorf("failed to publish villa event: %w", err)
	}

	p.logger.Debug().
		Str("event_id", event.ID).
		Str("action", string(event.Action)).
		Uint("villa_id", event.VillaID).
		Msg("villa event published")
	return nil
}

// Close cierra el channel y la conexión
func (p *RabbitMQPublisher) Close() error {
	var errs []error

	if p.channel != nil {
		if err := p.channel.Close(); err != nil {
			errs = append(errs, fmt.Errorf("error closing channel: %w", err))
		}
	}

	if p.connection != nil {
		if err := p.connection.Close(); err != nil {
			errs = append(errs, fmt.Errorf("error closing connection: %w", err))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("errors closing RabbitMQ publisher: %v", errs)
	}

	p.logger.Info().Msg("RabbitMQ publisher closed")
	return nil
}
