package server

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const readyTimeout = 5 * time.Second

// Pinger is anything the service can't run without, typically the store backend.
type Pinger interface {
	Ping(ctx context.Context) error
}

func NewRouter(pinger Pinger, gatherer prometheus.Gatherer) *mux.Router {
	r := mux.NewRouter()

	r.HandleFunc("/live", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("live"))
	}).Methods(http.MethodGet)

	r.HandleFunc("/ready", func(w http.ResponseWriter, r *http.Request) {
		if pinger != nil {
			ctx, cancel := context.WithTimeout(r.Context(), readyTimeout)
			defer cancel()
			if err := pinger.Ping(ctx); err != nil {
				log.Println(err)
				w.WriteHeader(http.StatusServiceUnavailable)
				w.Write([]byte("unready"))
				return
			}
		}
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ready"))
	}).Methods(http.MethodGet)

	r.Handle("/metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})).Methods(http.MethodGet)

	return r
}

// StartHealthCheckServer serves the health and metrics routes on port in the background. The caller
// shuts the returned server down.
func StartHealthCheckServer(port string, pinger Pinger, gatherer prometheus.Gatherer) *http.Server {
	srv := &http.Server{
		Addr:    ":" + port,
		Handler: NewRouter(pinger, gatherer),
	}
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Println(err)
		}
	}()
	log.Printf("[Server] Health and metrics listening on :%s", port)
	return srv
}
