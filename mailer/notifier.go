package mailer

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	log "github.com/sirupsen/logrus"
	"github.com/streadway/amqp"
	"github.com/vishalpatil-45/Adventour/metrics"
)

// Notifier hands a rendered message over for delivery. Depending on the
// implementation the mail is sent before Deliver returns or queued.
type Notifier interface {
	Deliver(ctx context.Context, msg Message) error
}

type directNotifier struct {
	sender Sender
}

// NewDirectNotifier sends every message inside the calling request
func NewDirectNotifier(sender Sender) Notifier {
	return &directNotifier{sender: sender}
}

func (n *directNotifier) Deliver(ctx context.Context, msg Message) error {
	if err := n.sender.Send(ctx, msg); err != nil {
		metrics.MailsSent.WithLabelValues(msg.Kind, "failed").Inc()
		return err
	}
	metrics.MailsSent.WithLabelValues(msg.Kind, "sent").Inc()
	log.WithFields(log.Fields{"kind": msg.Kind, "to": msg.To}).Info("mail sent")
	return nil
}

// QueueNotifier publishes mail jobs to RabbitMQ. A MailConsumer on the other
// side sends them.
type QueueNotifier struct {
	mu         sync.Mutex
	connection *amqp.Connection
	channel    *amqp.Channel
	queueName  string
}

// NewQueueNotifier connects to RabbitMQ and declares the durable mail queue
func NewQueueNotifier(rabbitURL, queueName string) (*QueueNotifier, error) {
	conn, err := amqp.Dial(rabbitURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to RabbitMQ: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to open channel: %w", err)
	}

	if _, err := DeclareQueue(ch, queueName); err != nil {
		ch.Close()
		conn.Close()
		return nil, err
	}

	log.WithField("queue", queueName).Info("mail jobs go through RabbitMQ")
	return &QueueNotifier{connection: conn, channel: ch, queueName: queueName}, nil
}

// DeclareQueue declares the durable mail queue on ch
func DeclareQueue(ch *amqp.Channel, queueName string) (amqp.Queue, error) {
	q, err := ch.QueueDeclare(
		queueName,
		true,  // durable
		false, // delete when unused
		false, // exclusive
		false, // no-wait
		nil,
	)
	if err != nil {
		return q, fmt.Errorf("failed to declare queue %s: %w", queueName, err)
	}
	return q, nil
}

// Deliver publishes the message as a persistent JSON job
func (n *QueueNotifier) Deliver(_ context.Context, msg Message) error {
	body, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("encode mail job: %w", err)
	}

	n.mu.Lock()
	defer n.mu.Unlock()

	err = n.channel.Publish("", n.queueName, false, false, amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Body:         body,
	})
	if err != nil {
		metrics.MailsSent.WithLabelValues(msg.Kind, "failed").Inc()
		return fmt.Errorf("publish mail job: %w", err)
	}
	metrics.MailsSent.WithLabelValues(msg.Kind, "queued").Inc()
	return nil
}

// Close closes the channel and the connection
func (n *QueueNotifier) Close() error {
	n.mu.Lock()
	defer n.mu.Unlock()

	var errs []error
	if err := n.channel.Close(); err != nil {
		errs = append(errs, err)
	}
	if err := n.connection.Close(); err != nil {
		errs = append(errs, err)
	}
	if len(errs) > 0 {
		return fmt.Errorf("errors closing mail publisher: %v", errs)
	}
	return nil
}
