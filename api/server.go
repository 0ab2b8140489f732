package api

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/matt-g-everett/mapanim/stream"
)

// FrameSource supplies the latest rendered frame.
type FrameSource interface {
	Latest() *stream.Frame
}

// Api serves the current view frame and the metrics registry over HTTP.
type Api struct {
	server *http.Server
}

// NewApi creates an Api listening on addr.
func NewApi(addr string, frames FrameSource, gatherer prometheus.Gatherer) *Api {
	a := new(Api)
	a.server = &http.Server{
		Addr:              addr,
		Handler:           NewHandler(frames, gatherer),
		ReadHeaderTimeout: 5 * time.Second,
	}
	return a
}

// NewHandler routes /frame and /metrics.
func NewHandler(frames FrameSource, gatherer prometheus.Gatherer) http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/frame", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(frames.Latest()); err != nil {
			log.Printf("Encoding frame: %v", err)
		}
	})
	mux.Handle("/metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))
	return mux
}

// Serve listens until ctx is cancelled.
func (a *Api) Serve(ctx context.Context) error {
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := a.server.Shutdown(shutdownCtx); err != nil {
			log.Printf("Shutdown: %v", err)
		}
	}()

	log.Printf("Listening on %s...", a.server.Addr)
	if err := a.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
