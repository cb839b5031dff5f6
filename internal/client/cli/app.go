package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"sync"
	"time"

	"github.com/dmitrijs2005/carswipe/internal/client/client"
	"github.com/dmitrijs2005/carswipe/internal/client/config"
	"github.com/dmitrijs2005/carswipe/internal/client/keyring"
	"github.com/dmitrijs2005/carswipe/internal/client/messaging"
	"github.com/dmitrijs2005/carswipe/internal/client/models"
	"github.com/dmitrijs2005/carswipe/internal/client/services"
	"github.com/dmitrijs2005/carswipe/internal/logging"
)

type Mode string

const (
	ModeOffline Mode = "offline"
	ModeOnline  Mode = "online"
)

// threadAPI is the part of the server API the REPL calls directly.
type threadAPI interface {
	OpenThread(ctx context.Context, listingID, counterpartID string) (*models.Thread, error)
	ListThreads(ctx context.Context) ([]models.ThreadPreview, error)
	ListMessages(ctx context.Context, threadID string) (*models.ThreadView, error)
}

type flowAPI interface {
	Send(ctx context.Context, h *keyring.Handle, threadID, receiverID, plaintext string) (*models.Message, error)
	RenderThread(ctx context.Context, h *keyring.Handle, threadID string) ([]messaging.RenderedMessage, error)
	MarkRead(ctx context.Context, threadID string) error
}

type App struct {
	config      *config.Config
	authService services.AuthService
	threads     threadAPI
	flow        flowAPI
	subscriber  messaging.Subscriber
	closers     []io.Closer

	mu      sync.RWMutex
	session *models.Session
	handle  *keyring.Handle
	Mode    Mode

	reader *bufio.Reader
	out    io.Writer
}

func NewApp(c *config.Config) (*App, error) {
	cache, err := keyring.OpenCache(c.KeyCachePath)
	if err != nil {
		return nil, err
	}

	apiClient, err := client.NewCarswipeClient(c.ServerEndpointAddr)
	if err != nil {
		_ = cache.Close()
		return nil, err
	}

	logger := logging.NewSlogLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn})))
	flow := messaging.NewFlow(apiClient, apiClient, logger)

	return &App{
		config:      c,
		authService: services.NewAuthService(apiClient, cache),
		threads:     apiClient,
		flow:        flow,
		subscriber:  messaging.NewPollingSubscriber(flow, c.PollInterval),
		closers:     []io.Closer{cache},
		reader:      bufio.NewReader(os.Stdin),
		out:         os.Stdout,
	}, nil
}

func (a *App) Run(ctx context.Context) {
	defer a.close(ctx)
	a.Root(ctx)
}

func (a *App) close(ctx context.Context) {
	a.Logout(ctx)
	_ = a.authService.Close(ctx)
	for _, c := range a.closers {
		_ = c.Close()
	}
}

func (a *App) printf(format string, args ...any) {
	fmt.Fprintf(a.out, format, args...)
}

func (a *App) isLoggedIn() bool {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.handle != nil
}

// current returns the logged-in session and key handle.
func (a *App) current() (*models.Session, *keyring.Handle, error) {
	a.mu.RLock()
	defer a.mu.RUnlock()

	if a.handle == nil {
		return nil, nil, client.ErrNotLoggedIn
	}
	return a.session, a.handle, nil
}

func (a *App) setMode(mode Mode) {
	a.mu.Lock()
	changed := a.Mode != mode
	a.Mode = mode
	a.mu.Unlock()

	if changed {
		a.printf("Switched to %s mode\n", mode)
	}
}

func (a *App) getStatus() string {
	a.mu.RLock()
	defer a.mu.RUnlock()

	s := ""
	if a.session != nil {
		s = a.session.DisplayName + " "
	}
	s += string(a.Mode)
	if s != "" {
		s = fmt.Sprintf("(%s)", s)
	}
	return s
}

// StartOnlineStatusWatcher pings the server every interval and flips Mode.
func (a *App) StartOnlineStatusWatcher(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			pctx, cancel := context.WithTimeout(ctx, 3*time.Second)
			err := a.authService.Ping(pctx)
			cancel()

			if err != nil {
				a.setMode(ModeOffline)
			} else {
				a.setMode(ModeOnline)
			}

		case <-ctx.Done():
			return
		}
	}
}
