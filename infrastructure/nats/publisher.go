package nats

import (
	"context"
	"encoding/json"
	"fmt"

	"taskboard/domain/ports"
)

// Publisher implements ports.EventPublisher over NATS.
type Publisher struct {
	client *Client
}

func NewPublisher(client *Client) *Publisher {
	return &Publisher{client: client}
}

func (p *Publisher) PublishBoardEvent(ctx context.Context, event *ports.BoardEvent) error {
	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal board event: %w", err)
	}

	subject := SubjectPrefix + event.BoardID.String()
	if err := p.client.conn.Publish(subject, data); err != nil {
		return fmt.Errorf("failed to publish board event: %w", err)
	}

	return nil
}
