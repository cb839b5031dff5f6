package messaging

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/dmitrijs2005/carswipe/internal/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPollingSubscriber_DeliversOnlyChanges(t *testing.T) {
	buyer := newParty(t, "buyer", "Bob")
	seller := newParty(t, "seller", "Sally")
	b := newBackend("t1", buyer.profile, seller.profile)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var (
		mu    sync.Mutex
		calls [][]RenderedMessage
	)
	updates := make(chan struct{}, 8)

	sub := NewPollingSubscriber(flowFor(b, "seller"), 10*time.Millisecond)
	done := make(chan error, 1)
	go func() {
		done <- sub.Subscribe(ctx, seller.handle, "t1", func(msgs []RenderedMessage) {
			mu.Lock()
			calls = append(calls, msgs)
			mu.Unlock()
			updates <- struct{}{}
		})
	}()

	<-updates // initial render

	// several idle ticks produce no callback
	time.Sleep(50 * time.Millisecond)
	mu.Lock()
	require.Len(t, calls, 1)
	assert.Empty(t, calls[0])
	mu.Unlock()

	_, err := flowFor(b, "buyer").Send(context.Background(), buyer.handle, "t1", "seller", "Is this car still available?")
	require.NoError(t, err)

	select {
	case <-updates:
	case <-time.After(2 * time.Second):
		t.Fatal("no update after new message")
	}

	mu.Lock()
	require.Len(t, calls, 2)
	require.Len(t, calls[1], 1)
	assert.Equal(t, "Is this car still available?", calls[1][0].Text)
	mu.Unlock()

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("subscriber did not stop")
	}
}

func TestPollingSubscriber_MissingThreadFails(t *testing.T) {
	buyer := newParty(t, "buyer", "Bob")
	b := newBackend("t1", buyer.profile)

	sub := NewPollingSubscriber(flowFor(b, "buyer"), 0)
	err := sub.Subscribe(context.Background(), buyer.handle, "missing", func([]RenderedMessage) {
		t.Fatal("callback must not run")
	})
	assert.ErrorIs(t, err, common.ErrorNotFound)
}
