package kafka

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"time"

	portssvc "github.com/SscSPs/papermill_ledger/internal/core/ports/services"
	kafkago "github.com/segmentio/kafka-go"
)

// AccountEvent is published by the account-management forms whenever an account is
// created, edited, moved to another parent, or deleted.
type AccountEvent struct {
	Type                    string `json:"type"`
	AccountID               string `json:"accountID"`
	ParentAccountID         string `json:"parentAccountID,omitempty"`
	PreviousParentAccountID string `json:"previousParentAccountID,omitempty"`
}

// affectedAccounts lists the accounts whose cached hierarchies the event makes stale. The
// parents are named explicitly since a deleted account can no longer be walked upwards.
func (e AccountEvent) affectedAccounts() []string {
	ids := []string{e.AccountID}
	for _, parent := range []string{e.ParentAccountID, e.PreviousParentAccountID} {
		if parent != "" && !slices.Contains(ids, parent) {
			ids = append(ids, parent)
		}
	}
	return ids
}

// messageReader is the subset of *kafka.Reader the consumer uses.
type messageReader interface {
	FetchMessage(ctx context.Context) (kafkago.Message, error)
	CommitMessages(ctx context.Context, msgs ...kafkago.Message) error
	Close() error
}

const (
	initialRetryBackoff = 500 * time.Millisecond
	maxRetryBackoff     = 30 * time.Second
)

// AccountEventConsumer invalidates cached account hierarchies as account events arrive.
type AccountEventConsumer struct {
	reader      messageReader
	invalidator portssvc.AccountCacheInvalidatorSvc
	logger      *slog.Logger
	backoff     time.Duration
	maxBackoff  time.Duration
}

// NewAccountEventConsumer creates a consumer-group reader on topic.
func NewAccountEventConsumer(brokers []string, topic, groupID string, invalidator portssvc.AccountCacheInvalidatorSvc, logger *slog.Logger) *AccountEventConsumer {
	reader := kafkago.NewReader(kafkago.ReaderConfig{
		Brokers: brokers,
		Topic:   topic,
		GroupID: groupID,
	})
	return newAccountEventConsumer(reader, invalidator, logger)
}

func newAccountEventConsumer(reader messageReader, invalidator portssvc.AccountCacheInvalidatorSvc, logger *slog.Logger) *AccountEventConsumer {
	return &AccountEventConsumer{
		reader:      reader,
		invalidator: invalidator,
		logger:      logger,
		backoff:     initialRetryBackoff,
		maxBackoff:  maxRetryBackoff,
	}
}

// Run consumes events until ctx is cancelled. Malformed messages are logged and committed.
// A message whose invalidation fails is retried with backoff and nothing after it is
// fetched, since a group commit acknowledges every earlier offset of the partition.
func (c *AccountEventConsumer) Run(ctx context.Context) error {
	defer func() {
		if err := c.reader.Close(); err != nil {
			c.logger.Error("Failed to close account event reader", slog.String("error", err.Error()))
		}
	}()

	for {
		msg, err := c.reader.FetchMessage(ctx)
		if err != nil {
			if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
				return nil
			}
			return fmt.Errorf("failed to fetch account event: %w", err)
		}

		if !c.handleWithRetry(ctx, msg) {
			return nil
		}

		if err := c.reader.CommitMessages(ctx, msg); err != nil {
			c.logger.Warn("Failed to commit account event", slog.String("error", err.Error()))
		}
	}
}

// handleWithRetry applies msg until it succeeds. It returns false when ctx ends first,
// leaving msg uncommitted for the next group member.
func (c *AccountEventConsumer) handleWithRetry(ctx context.Context, msg kafkago.Message) bool {
	wait := c.backoff
	for attempt := 1; ; attempt++ {
		err := c.handle(ctx, msg)
		if err == nil {
			return true
		}
		c.logger.Error("Failed to apply account event, retrying",
			slog.String("error", err.Error()),
			slog.Int64("offset", msg.Offset),
			slog.Int("attempt", attempt),
			slog.Duration("backoff", wait))

		timer := time.NewTimer(wait)
		select {
		case <-ctx.Done():
			timer.Stop()
			return false
		case <-timer.C:
		}
		wait = min(wait*2, c.maxBackoff)
	}
}

func (c *AccountEventConsumer) handle(ctx context.Context, msg kafkago.Message) error {
	var event AccountEvent
	if err := json.Unmarshal(msg.Value, &event); err != nil || event.AccountID == "" {
		c.logger.Warn("Skipping malformed account event",
			slog.Int64("offset", msg.Offset),
			slog.String("key", string(msg.Key)))
		return nil
	}

	for _, id := range event.affectedAccounts() {
		if err := c.invalidator.InvalidateAccount(ctx, id); err != nil {
			return fmt.Errorf("invalidate %s: %w", id, err)
		}
	}
	c.logger.Debug("Applied account event",
		slog.String("type", event.Type),
		slog.String("account_id", event.AccountID))
	return nil
}
