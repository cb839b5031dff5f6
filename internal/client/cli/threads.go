package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"time"

	"github.com/dmitrijs2005/carswipe/internal/client/messaging"
)

const timeLayout = "2006-01-02 15:04"

// ListThreads prints the inbox, most recently active first.
func (a *App) ListThreads(ctx context.Context) error {
	if _, _, err := a.current(); err != nil {
		return err
	}

	list, err := a.threads.ListThreads(ctx)
	if err != nil {
		return err
	}
	if len(list) == 0 {
		a.printf("No conversations yet\n")
		return nil
	}

	for _, p := range list {
		last := "-"
		if !p.LastMessageAt.IsZero() {
			last = p.LastMessageAt.Local().Format(timeLayout) + " " + p.Preview
		}
		a.printf("%s  listing %s  with %s  unread %d  last %s\n",
			p.Thread.ID, p.Thread.ListingID, p.Counterpart.DisplayName, p.UnreadCount, last)
	}
	return nil
}

// OpenThread starts or reuses the conversation with counterpartID about listingID.
func (a *App) OpenThread(ctx context.Context, counterpartID, listingID string) error {
	if _, _, err := a.current(); err != nil {
		return err
	}

	t, err := a.threads.OpenThread(ctx, listingID, counterpartID)
	if err != nil {
		return err
	}
	a.printf("Thread %s\n", t.ID)
	return nil
}

// Show decrypts and prints threadID.
func (a *App) Show(ctx context.Context, threadID string) error {
	_, h, err := a.current()
	if err != nil {
		return err
	}

	msgs, err := a.flow.RenderThread(ctx, h, threadID)
	if err != nil {
		return err
	}
	a.printMessages(msgs)
	return nil
}

func (a *App) printMessages(msgs []messaging.RenderedMessage) {
	if len(msgs) == 0 {
		a.printf("(no messages)\n")
		return
	}
	for _, m := range msgs {
		who := m.SenderName
		if m.Outgoing {
			who = "me"
		}
		a.printf("[%s] %s: %s\n", m.CreatedAt.Local().Format(timeLayout), who, m.Text)
	}
}

// Send encrypts text for the other participant of threadID and stores it.
func (a *App) Send(ctx context.Context, threadID, text string) error {
	sess, h, err := a.current()
	if err != nil {
		return err
	}

	view, err := a.threads.ListMessages(ctx, threadID)
	if err != nil {
		return err
	}
	peer, ok := view.Counterpart(sess.UserID)
	if !ok {
		return fmt.Errorf("thread %s has no other participant", threadID)
	}

	if _, err := a.flow.Send(ctx, h, threadID, peer.UserID, text); err != nil {
		return err
	}
	a.printf("Sent\n")
	return nil
}

// MarkRead marks threadID as read up to now.
func (a *App) MarkRead(ctx context.Context, threadID string) error {
	if _, _, err := a.current(); err != nil {
		return err
	}
	return a.flow.MarkRead(ctx, threadID)
}

// Watch prints threadID whenever it changes until Ctrl+C.
func (a *App) Watch(ctx context.Context, threadID string) error {
	_, h, err := a.current()
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt)
	defer stop()

	a.printf("Watching %s, press Ctrl+C to stop\n", threadID)
	return a.subscriber.Subscribe(ctx, h, threadID, func(msgs []messaging.RenderedMessage) {
		a.printf("--- %s ---\n", time.Now().Format(timeLayout))
		a.printMessages(msgs)
	})
}

func joinText(args []string) string {
	return strings.TrimSpace(strings.Join(args, " "))
}
