package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	PicksSubmitted = promauto.NewCounter(prometheus.CounterOpts{
		Name: "pickem_picks_submitted_total",
		Help: "Picks persisted successfully",
	})
	PicksRejected = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "pickem_picks_rejected_total",
		Help: "Pick submissions rejected, by failure kind",
	}, []string{"kind"})
	ParlaysOpened = promauto.NewCounter(prometheus.CounterOpts{
		Name: "pickem_parlays_opened_total",
		Help: "Fresh parlays opened for users",
	})
	MatchupsLocked = promauto.NewCounter(prometheus.CounterOpts{
		Name: "pickem_matchups_locked_total",
		Help: "Matchups locked by the game-start scheduler",
	})
)

// StartServer serves /metrics and /healthz on their own port, away from
// the public API.
func StartServer(port string, healthFn func() error) *http.Server {
	mux := http.NewServeMux()

	mux.Handle("/metrics", promhttp.Handler())

	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		if err := healthFn(); err != nil {
			w.WriteHeader(http.StatusServiceUnavailable)
			_, _ = w.Write([]byte("unhealthy: " + err.Error()))
			return
		}
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	srv := &http.Server{
		Addr:    ":" + port,
		Handler: mux,
	}

	go func() {
		_ = srv.ListenAndServe()
	}()

	return srv
}
