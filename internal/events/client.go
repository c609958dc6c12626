package events

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/nats-io/nats.go"
)

// NATS subjects owned by this service.
const (
	SubjectDocumentExtracted = "penyata.document.extracted"
	SubjectDocumentAnalyzed  = "penyata.document.analyzed"
	SubjectSpeakerUnmatched  = "penyata.speaker.unmatched"
	SubjectSpeakerMapped     = "penyata.speaker.mapped"
)

// DocumentExtracted is the payload announcing that the text-extraction
// collaborator finished one document.
type DocumentExtracted struct {
	DocumentID string `json:"document_id"`
	Title      string `json:"title,omitempty"`
	Text       string `json:"text"`
}

// DocumentAnalyzed summarizes one completed parse.
type DocumentAnalyzed struct {
	DocumentID      string `json:"document_id"`
	SessionNumber   string `json:"session_number"`
	SessionDate     string `json:"session_date"`
	PresentSeats    int    `json:"present_seats"`
	AbsentSeats     int    `json:"absent_seats"`
	ProceduralSeats int    `json:"procedural_seats"`
	Questions       int    `json:"questions"`
	BillsMotions    int    `json:"bills_motions"`
	Unmatched       int    `json:"unmatched"`
}

type Client struct {
	conn   *nats.Conn
	subs   []*nats.Subscription
	logger *slog.Logger
}

func NewClient(url, token string, logger *slog.Logger) (*Client, error) {
	opts := []nats.Option{
		nats.RetryOnFailedConnect(true),
		nats.MaxReconnects(60),
		nats.ReconnectWait(2 * time.Second),
		nats.DisconnectErrHandler(func(_ *nats.Conn, err error) {
			if err != nil {
				logger.Warn("nats disconnected", "error", err)
			}
		}),
		nats.ReconnectHandler(func(_ *nats.Conn) {
			logger.Info("nats reconnected")
		}),
	}
	if token != "" {
		opts = append(opts, nats.Token(token))
	}

	nc, err := nats.Connect(url, opts...)
	if err != nil {
		return nil, fmt.Errorf("nats connect: %w", err)
	}

	return &Client{conn: nc, logger: logger}, nil
}

func (c *Client) Publish(subject string, data any) error {
	payload, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("marshal payload: %w", err)
	}
	return c.conn.Publish(subject, payload)
}

func (c *Client) Subscribe(subject string, handler func(subject string, data []byte)) error {
	sub, err := c.conn.Subscribe(subject, func(msg *nats.Msg) {
		handler(msg.Subject, msg.Data)
	})
	if err != nil {
		return fmt.Errorf("subscribe %s: %w", subject, err)
	}
	c.subs = append(c.subs, sub)
	c.logger.Info("subscribed", "subject", subject)
	return nil
}

func (c *Client) Close() {
	for _, sub := range c.subs {
		_ = sub.Unsubscribe()
	}
	c.conn.Close()
}
