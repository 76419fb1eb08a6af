package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"

	"github.com/heartmarshall/vitalog-backend/internal/domain"
)

const (
	originHeader    = "origin"
	fetchRetryDelay = time.Second
)

// Invalidator is the commit hook of the mutation coordinator.
type Invalidator interface {
	Invalidate(ctx context.Context, scopes ...domain.Scope) error
}

// Fanout calls every invalidator and joins their errors.
type Fanout []Invalidator

func (f Fanout) Invalidate(ctx context.Context, scopes ...domain.Scope) error {
	var errs []error
	for _, inv := range f {
		if err := inv.Invalidate(ctx, scopes...); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// Writer is the subset of *kafka.Writer used by Broadcaster.
type Writer interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// scopeMessage is the wire form of a domain.Scope.
type scopeMessage struct {
	Kind     domain.ResourceKind `json:"kind"`
	OwnerID  uuid.UUID           `json:"owner_id"`
	Activity *activityMessage    `json:"activity,omitempty"`
	Extra    []uuid.UUID         `json:"extra,omitempty"`
}

type activityMessage struct {
	Kind domain.ActivityKind `json:"kind"`
	ID   uuid.UUID           `json:"id"`
}

func encodeScope(s domain.Scope) ([]byte, error) {
	m := scopeMessage{Kind: s.Kind, OwnerID: s.OwnerID, Extra: s.Extra}
	if s.Activity != nil {
		m.Activity = &activityMessage{Kind: s.Activity.Kind, ID: s.Activity.ID}
	}
	return json.Marshal(m)
}

func decodeScope(b []byte) (domain.Scope, error) {
	var m scopeMessage
	if err := json.Unmarshal(b, &m); err != nil {
		return domain.Scope{}, err
	}
	if m.Kind == "" {
		return domain.Scope{}, errors.New("missing kind")
	}
	s := domain.Scope{Kind: m.Kind, OwnerID: m.OwnerID, Extra: m.Extra}
	if m.Activity != nil {
		s.Activity = &domain.ActivityRef{Kind: m.Activity.Kind, ID: m.Activity.ID}
	}
	return s, nil
}

// Broadcaster publishes committed scopes so that other instances drop
// their copies. Messages are keyed by owner to keep one account's changes
// ordered.
type Broadcaster struct {
	writer Writer
	origin string
}

// NewBroadcaster creates a Broadcaster. origin identifies this instance so
// that its Subscriber can skip its own messages.
func NewBroadcaster(w Writer, origin string) *Broadcaster {
	return &Broadcaster{writer: w, origin: origin}
}

// NewKafkaWriter returns a synchronous writer for topic.
func NewKafkaWriter(brokers []string, topic string) *kafka.Writer {
	return &kafka.Writer{
		Addr:         kafka.TCP(brokers...),
		Topic:        topic,
		Balancer:     &kafka.Hash{},
		RequiredAcks: kafka.RequireOne,
		Async:        false,
	}
}

func (b *Broadcaster) Invalidate(ctx context.Context, scopes ...domain.Scope) error {
	if len(scopes) == 0 {
		return nil
	}
	msgs := make([]kafka.Message, 0, len(scopes))
	for _, s := range scopes {
		value, err := encodeScope(s)
		if err != nil {
			return fmt.Errorf("encode scope: %w", err)
		}
		msgs = append(msgs, kafka.Message{
			Key:     []byte(s.OwnerID.String()),
			Value:   value,
			Headers: []kafka.Header{{Key: originHeader, Value: []byte(b.origin)}},
		})
	}
	if err := b.writer.WriteMessages(ctx, msgs...); err != nil {
		return fmt.Errorf("publish invalidation: %w", err)
	}
	return nil
}

// Close closes the underlying writer.
func (b *Broadcaster) Close() error {
	return b.writer.Close()
}

// PingBrokers succeeds when at least one broker accepts a connection.
func PingBrokers(ctx context.Context, brokers []string) error {
	var errs []error
	for _, addr := range brokers {
		conn, err := kafka.DialContext(ctx, "tcp", addr)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		return conn.Close()
	}
	if len(errs) == 0 {
		return errors.New("no brokers configured")
	}
	return errors.Join(errs...)
}

// Reader is the subset of *kafka.Reader used by Subscriber.
type Reader interface {
	FetchMessage(ctx context.Context) (kafka.Message, error)
	CommitMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// NewKafkaReader returns a consumer-group reader for topic. Every instance
// must use its own group so that each one sees every message.
func NewKafkaReader(brokers []string, topic, groupID string) *kafka.Reader {
	return kafka.NewReader(kafka.ReaderConfig{
		Brokers:     brokers,
		Topic:       topic,
		GroupID:     groupID,
		StartOffset: kafka.LastOffset,
		MinBytes:    1,
		MaxBytes:    1 << 20,
	})
}

// Subscriber applies invalidations published by other instances.
type Subscriber struct {
	reader Reader
	target Invalidator
	origin string
	log    *slog.Logger
}

// NewSubscriber creates a Subscriber that forwards remote scopes to target.
func NewSubscriber(logger *slog.Logger, r Reader, target Invalidator, origin string) *Subscriber {
	return &Subscriber{
		reader: r,
		target: target,
		origin: origin,
		log:    logger.With("component", "cache_subscriber"),
	}
}

// Run consumes until ctx is cancelled. Malformed messages are committed
// and skipped.
func (s *Subscriber) Run(ctx context.Context) error {
	for {
		msg, err := s.reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil || errors.Is(err, context.Canceled) {
				return nil
			}
			s.log.WarnContext(ctx, "fetch invalidation", slog.String("error", err.Error()))
			select {
			case <-ctx.Done():
				return nil
			case <-time.After(fetchRetryDelay):
			}
			continue
		}

		if origin(msg) != s.origin {
			scope, err := decodeScope(msg.Value)
			if err != nil {
				s.log.WarnContext(ctx, "malformed invalidation",
					slog.Int64("offset", msg.Offset),
					slog.String("error", err.Error()),
				)
			} else if err := s.target.Invalidate(ctx, scope); err != nil {
				s.log.WarnContext(ctx, "apply invalidation", slog.String("error", err.Error()))
			}
		}

		if err := s.reader.CommitMessages(ctx, msg); err != nil && ctx.Err() == nil {
			s.log.WarnContext(ctx, "commit invalidation", slog.String("error", err.Error()))
		}
	}
}

// Close closes the underlying reader.
func (s *Subscriber) Close() error {
	return s.reader.Close()
}

func origin(msg kafka.Message) string {
	for _, h := range msg.Headers {
		if h.Key == originHeader {
			return string(h.Value)
		}
	}
	return ""
}
