package consumers

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/streadway/amqp"
	"github.com/vishalpatil-45/Adventour/mailer"
	"github.com/vishalpatil-45/Adventour/metrics"
)

// MailConsumer sends the mail jobs published by mailer.QueueNotifier
type MailConsumer struct {
	connection *amqp.Connection
	channel    *amqp.Channel
	queueName  string
	sender     mailer.Sender
}

// NewMailConsumer connects to RabbitMQ and declares the mail queue
func NewMailConsumer(rabbitURL, queueName string, sender mailer.Sender) (*MailConsumer, error) {
	conn, err := amqp.Dial(rabbitURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to RabbitMQ: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to open channel: %w", err)
	}

	if _, err := mailer.DeclareQueue(ch, queueName); err != nil {
		ch.Close()
		conn.Close()
		return nil, err
	}

	return &MailConsumer{
		connection: conn,
		channel:    ch,
		queueName:  queueName,
		sender:     sender,
	}, nil
}

// Run consumes jobs one at a time until ctx is cancelled or the channel is
// closed by the broker.
func (c *MailConsumer) Run(ctx context.Context) error {
	if err := c.channel.Qos(1, 0, false); err != nil {
		return fmt.Errorf("failed to set QoS: %w", err)
	}

	msgs, err := c.channel.Consume(
		c.queueName,
		"",
		false, // auto-ack, we ack after sending
		false, // exclusive
		false, // no-local
		false, // no-wait
		nil,
	)
	if err != nil {
		return fmt.Errorf("failed to register consumer: %w", err)
	}

	log.WithField("queue", c.queueName).Info("mail consumer waiting for jobs")

	for {
		select {
		case <-ctx.Done():
			return nil
		case msg, ok := <-msgs:
			if !ok {
				return fmt.Errorf("mail queue %s closed", c.queueName)
			}
			c.processMessage(ctx, msg)
		}
	}
}

// processMessage sends one job. Undecodable jobs are dropped, send failures
// are requeued.
func (c *MailConsumer) processMessage(ctx context.Context, msg amqp.Delivery) {
	var job mailer.Message
	if err := json.Unmarshal(msg.Body, &job); err != nil {
		log.WithError(err).Error("dropping undecodable mail job")
		msg.Nack(false, false)
		return
	}

	if job.To == "" {
		log.WithField("kind", job.Kind).Error("dropping mail job without recipient")
		msg.Nack(false, false)
		return
	}

	sendCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	if err := c.sender.Send(sendCtx, job); err != nil {
		log.WithError(err).WithFields(log.Fields{"kind": job.Kind, "to": job.To}).Warn("mail job failed, requeueing")
		metrics.MailsSent.WithLabelValues(job.Kind, "failed").Inc()
		msg.Nack(false, true)
		return
	}

	metrics.MailsSent.WithLabelValues(job.Kind, "sent").Inc()
	log.WithFields(log.Fields{"kind": job.Kind, "to": job.To}).Info("mail sent")

	if err := msg.Ack(false); err != nil {
		log.WithError(err).Error("failed to ack mail job")
	}
}

// Close closes the channel and the connection
func (c *MailConsumer) Close() error {
	var errs []error

	if c.channel != nil {
		if err := c.channel.Close(); err != nil {
			errs = append(errs, fmt.Errorf("error closing channel: %w", err))
		}
	}
	if c.connection != nil {
		if err := c.connection.Close(); err != nil {
			errs = append(errs, fmt.Errorf("error closing connection: %w", err))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("errors closing mail consumer: %v", errs)
	}
	return nil
}
