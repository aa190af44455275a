package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sourcegraph/conc"
	"go.uber.org/zap"

	"anagram/internal/logger"
)

const shutdownTimeout = 5 * time.Second

// Endpoint is one HTTP listener run by Serve.
type Endpoint struct {
	Name    string
	Addr    string
	Handler http.Handler
	// Listener, when set, is used instead of listening on Addr.
	Listener net.Listener
}

// MetricsEndpoint serves the Prometheus registry on /metrics.
func MetricsEndpoint(addr string) Endpoint {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	return Endpoint{Name: "metrics", Addr: addr, Handler: mux}
}

// Serve runs every endpoint until ctx is done or one of them fails, then
// shuts them all down gracefully. It returns the first serve error.
func Serve(ctx context.Context, log logger.Logger, endpoints ...Endpoint) error {
	listeners := make([]net.Listener, 0, len(endpoints))
	for _, ep := range endpoints {
		l := ep.Listener
		if l == nil {
			var err error
			if l, err = net.Listen("tcp", ep.Addr); err != nil {
				for _, prev := range listeners {
					_ = prev.Close()
				}
				return fmt.Errorf("%s server: %w", ep.Name, err)
			}
		}
		listeners = append(listeners, l)
	}

	servers := make([]*http.Server, len(endpoints))
	errc := make(chan error, len(endpoints))
	var wg conc.WaitGroup
	for i, ep := range endpoints {
		srv := &http.Server{Handler: ep.Handler, ReadHeaderTimeout: 10 * time.Second}
		servers[i] = srv
		l := listeners[i]
		wg.Go(func() {
			log.Info(fmt.Sprintf("Server running at http://%s/", l.Addr()), zap.String("server", ep.Name))
			if err := srv.Serve(l); err != nil && !errors.Is(err, http.ErrServerClosed) {
				errc <- fmt.Errorf("%s server: %w", ep.Name, err)
			}
			log.Info(ep.Name + " server shut down.")
		})
	}

	var err error
	select {
	case <-ctx.Done():
	case err = <-errc:
	}
	log.Info("attempting to shutdown gracefully...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	for i, srv := range servers {
		if serr := srv.Shutdown(shutdownCtx); serr != nil {
			log.Info("failed to shutdown the "+endpoints[i].Name+" server", zap.Error(serr))
		}
	}
	wg.Wait()
	return err
}
