package notify

import (
	"context"
	"encoding/json"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
)

// MailJob is one outbound email handed to the queue worker.
type MailJob struct {
	To      string `json:"to"`
	Subject string `json:"subject"`
	Body    string `json:"body"`
}

// MailQueue hands mail jobs to RabbitMQ so HTTP requests never wait on SMTP.
type MailQueue struct {
	conn    *amqp.Connection
	channel *amqp.Channel
	queue   amqp.Queue
}

func OpenMailQueue(url, queueName string) (*MailQueue, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, err
	}
	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, err
	}
	q, err := ch.QueueDeclare(
		queueName,
		true,  // durable
		false, // delete when unused
		false, // exclusive
		false, // no-wait
		nil,
	)
	if err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return nil, err
	}
	return &MailQueue{conn: conn, channel: ch, queue: q}, nil
}

func (m *MailQueue) Publish(ctx context.Context, job MailJob) error {
	body, err := json.Marshal(job)
	if err != nil {
		return err
	}
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	return m.channel.PublishWithContext(ctx,
		"",           // exchange
		m.queue.Name, // routing key
		false,
		false,
		amqp.Publishing{
			ContentType: "application/json",
			Body:        body,
		},
	)
}

// Consume delivers queued jobs to handler until the channel closes.
func (m *MailQueue) Consume(handler func(MailJob)) error {
	msgs, err := m.channel.Consume(
		m.queue.Name,
		"",
		true,  // auto-ack
		false, // exclusive
		false, // no-local
		false, // no-wait
		nil,
	)
	if err != nil {
		return err
	}
	for d := range msgs {
		var job MailJob
		if err := json.Unmarshal(d.Body, &job); err != nil {
			continue
		}
		handler(job)
	}
	return nil
}

func (m *MailQueue) Close() {
	if m == nil {
		return
	}
	if m.channel != nil {
		_ = m.channel.Close()
	}
	if m.conn != nil {
		_ = m.conn.Close()
	}
}
