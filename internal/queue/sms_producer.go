package queue

import (
	"context"
	"crypto/tls"
	"encoding/json"
	"log"
	"time"

	"github.com/segmentio/kafka-go"
	"github.com/segmentio/kafka-go/sasl/plain"
)

// SMSMessage is the event published for the downstream SMS delivery worker
type SMSMessage struct {
	PhoneNumber string `json:"phoneNumber"`
	Body        string `json:"body"`
}

// SMSProducer publishes SMS delivery events to a Kafka topic. It satisfies
// service.SMSSender. With an empty broker address it degrades to logging the
// message instead of failing, so local development works without a broker.
type SMSProducer struct {
	writer *kafka.Writer
}

// NewSMSProducer creates an SMSProducer. Username/password are optional; when
// set, SASL plain over TLS is used.
func NewSMSProducer(broker, topic, username, password string) *SMSProducer {
	if broker == "" {
		return &SMSProducer{}
	}

	writer := &kafka.Writer{
		Addr:         kafka.TCP(broker),
		Topic:        topic,
		Balancer:     &kafka.LeastBytes{},
		RequiredAcks: kafka.RequireAll,
		Async:        false,
		WriteTimeout: 10 * time.Second,
	}

	if username != "" {
		writer.Transport = &kafka.Transport{
			SASL: plain.Mechanism{Username: username, Password: password},
			TLS:  &tls.Config{},
		}
	}

	return &SMSProducer{writer: writer}
}

// Send publishes one SMS event keyed by phone number
func (p *SMSProducer) Send(ctx context.Context, phoneNumber, message string) error {
	if p == nil || p.writer == nil {
		log.Printf("SMS broker not configured - would send to %s: %s", phoneNumber, message)
		return nil
	}

	payload, err := json.Marshal(SMSMessage{PhoneNumber: phoneNumber, Body: message})
	if err != nil {
		return err
	}

	return p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(phoneNumber),
		Value: payload,
		Time:  time.Now(),
	})
}

// Close releases the underlying Kafka writer
func (p *SMSProducer) Close() error {
	if p == nil || p.writer == nil {
		return nil
	}
	return p.writer.Close()
}
