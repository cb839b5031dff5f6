// Package metrics exposes Prometheus counters for the messaging server.
// A nil *Metrics is valid and records nothing.
package metrics

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/dmitrijs2005/carswipe/internal/logging"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"google.golang.org/grpc"
	"google.golang.org/grpc/status"
)

type Metrics struct {
	registry          *prometheus.Registry
	rpcRequests       *prometheus.CounterVec
	messagesStored    prometheus.Counter
	keyPairsGenerated prometheus.Counter
}

func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		rpcRequests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "carswipe_rpc_requests_total",
				Help: "Number of handled RPCs by method and status code",
			},
			[]string{"method", "code"},
		),
		messagesStored: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "carswipe_messages_stored_total",
				Help: "Number of encrypted messages persisted",
			},
		),
		keyPairsGenerated: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "carswipe_keypairs_generated_total",
				Help: "Number of key pairs issued at signup",
			},
		),
	}

	m.registry.MustRegister(
		m.rpcRequests,
		m.messagesStored,
		m.keyPairsGenerated,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return m
}

func (m *Metrics) MessageStored() {
	if m == nil {
		return
	}
	m.messagesStored.Inc()
}

func (m *Metrics) KeyPairGenerated() {
	if m == nil {
		return
	}
	m.keyPairsGenerated.Inc()
}

func (m *Metrics) ObserveRPC(method string, err error) {
	if m == nil {
		return
	}
	m.rpcRequests.With(prometheus.Labels{"method": method, "code": status.Code(err).String()}).Inc()
}

// UnaryInterceptor counts every unary call by full method and resulting code.
func (m *Metrics) UnaryInterceptor(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
	resp, err := handler(ctx, req)
	m.ObserveRPC(info.FullMethod, err)
	return resp, err
}

func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// Serve runs the /metrics endpoint on addr until ctx is cancelled.
func (m *Metrics) Serve(ctx context.Context, addr string, l logging.Logger) error {
	mux := http.NewServeMux()
	mux.Handle("/metrics", m.Handler())

	srv := &http.Server{Addr: addr, Handler: mux, ReadHeaderTimeout: 5 * time.Second}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	l.Info(ctx, "Starting metrics server", "address", addr)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
