package messaging

import (
	"context"
	"errors"
	"time"

	"github.com/dmitrijs2005/carswipe/internal/client/keyring"
	"github.com/dmitrijs2005/carswipe/internal/common"
)

// Subscriber delivers a re-rendered thread whenever it changes.
type Subscriber interface {
	Subscribe(ctx context.Context, h *keyring.Handle, threadID string, fn func([]RenderedMessage)) error
}

// PollingSubscriber re-fetches the thread on a fixed interval.
type PollingSubscriber struct {
	flow     *Flow
	interval time.Duration
}

var _ Subscriber = (*PollingSubscriber)(nil)

func NewPollingSubscriber(flow *Flow, interval time.Duration) *PollingSubscriber {
	if interval <= 0 {
		interval = 3 * time.Second
	}
	return &PollingSubscriber{flow: flow, interval: interval}
}

type threadState struct {
	count  int
	lastID string
}

func stateOf(msgs []RenderedMessage) threadState {
	s := threadState{count: len(msgs)}
	if len(msgs) > 0 {
		s.lastID = msgs[len(msgs)-1].ID
	}
	return s
}

// Subscribe calls fn with the current thread, then again after every change,
// until ctx is done. A missing thread or a rejected session ends the
// subscription with that error; other poll failures are logged and retried.
func (s *PollingSubscriber) Subscribe(ctx context.Context, h *keyring.Handle, threadID string, fn func([]RenderedMessage)) error {
	msgs, err := s.flow.RenderThread(ctx, h, threadID)
	if err != nil {
		return err
	}
	last := stateOf(msgs)
	fn(msgs)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			msgs, err := s.flow.RenderThread(ctx, h, threadID)
			if err != nil {
				if fatalPollError(err) {
					return err
				}
				if ctx.Err() == nil {
					s.flow.logger.Warn(ctx, "poll failed", "thread_id", threadID, "error", err)
				}
				continue
			}
			if st := stateOf(msgs); st != last {
				last = st
				fn(msgs)
			}
		}
	}
}

func fatalPollError(err error) bool {
	return errors.Is(err, common.ErrorNotFound) ||
		errors.Is(err, common.ErrorUnauthorized) ||
		errors.Is(err, common.ErrorForbidden)
}
