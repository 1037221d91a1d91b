// Package httptransport assembles the public router: registry routes, health
// probes, and the metrics endpoint.
package httptransport

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/sync/errgroup"

	"merit/internal/transport/http/shared"
)

// HealthChecker reports the state of one backing dependency.
type HealthChecker interface {
	Health(ctx context.Context) error
}

// Registrar is implemented by module handlers that mount their own routes.
type Registrar interface {
	Register(r chi.Router)
}

// NewRouter wires all public endpoints. Module handlers own their middleware
// chains; the router only adds the operational surface.
func NewRouter(handlers []Registrar, deps map[string]HealthChecker) http.Handler {
	r := chi.NewRouter()

	for _, h := range handlers {
		h.Register(r)
	}

	r.Get("/healthz", handleHealth(deps))
	r.Handle("/metrics", promhttp.Handler())

	return r
}

// handleHealth probes every configured dependency in parallel. Unconfigured
// deployments (memory-only) report healthy with no dependencies.
func handleHealth(deps map[string]HealthChecker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		type result struct {
			name string
			err  error
		}
		results := make([]result, 0, len(deps))

		g, gctx := errgroup.WithContext(ctx)
		resultCh := make(chan result, len(deps))
		for name, dep := range deps {
			g.Go(func() error {
				resultCh <- result{name: name, err: dep.Health(gctx)}
				return nil
			})
		}
		_ = g.Wait()
		close(resultCh)
		for res := range resultCh {
			results = append(results, res)
		}

		status := http.StatusOK
		body := map[string]string{"status": "ok"}
		for _, res := range results {
			if res.err != nil {
				status = http.StatusServiceUnavailable
				body["status"] = "degraded"
				body[res.name] = res.err.Error()
			} else {
				body[res.name] = "ok"
			}
		}
		shared.WriteJSON(w, status, body)
	}
}
