package nats

import (
	"strings"

	"github.com/google/uuid"
	"github.com/nats-io/nats.go"

	"taskboard/pkg/logger"
)

// Subscriber forwards board events to a sink, normally the websocket hub.
// The boardID is recovered from the subject so the hub can route without
// unmarshalling the payload.
type Subscriber struct {
	client *Client
	sub    *nats.Subscription
}

func NewSubscriber(client *Client) *Subscriber {
	return &Subscriber{client: client}
}

func (s *Subscriber) Start(sink func(boardID uuid.UUID, data []byte)) error {
	sub, err := s.client.conn.Subscribe(SubjectWildcard, func(msg *nats.Msg) {
		idPart := strings.TrimPrefix(msg.Subject, SubjectPrefix)
		boardID, err := uuid.Parse(idPart)
		if err != nil {
			logger.Warn("Board event with bad subject", "subject", msg.Subject)
			return
		}
		sink(boardID, msg.Data)
	})
	if err != nil {
		return err
	}

	s.sub = sub
	logger.Info("Board event subscriber started", "subject", SubjectWildcard)
	return nil
}

func (s *Subscriber) Stop() {
	if s.sub != nil {
		_ = s.sub.Unsubscribe()
	}
}
