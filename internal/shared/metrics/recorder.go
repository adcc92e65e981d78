package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Recorder agrupa os coletores Prometheus do serviço
type Recorder struct {
	feedFetches   *prometheus.CounterVec
	feedDuration  prometheus.Histogram
	httpRequests  *prometheus.CounterVec
	notifications *prometheus.CounterVec
}

// NewRecorder cria e registra os coletores no registerer informado
func NewRecorder(reg prometheus.Registerer) *Recorder {
	r := &Recorder{
		feedFetches: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "playbyplay_feed_fetch_total",
			Help: "buscas do documento de play-by-play por resultado",
		}, []string{"outcome"}),
		feedDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "playbyplay_feed_fetch_duration_seconds",
			Help:    "latência das buscas ao feed",
			Buckets: prometheus.DefBuckets,
		}),
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "playbyplay_http_requests_total",
			Help: "requisições da API pública por rota e status",
		}, []string{"route", "status"}),
		notifications: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "playbyplay_notifications_total",
			Help: "publicações de jogo encerrado por destino e resultado",
		}, []string{"sink", "outcome"}),
	}
	reg.MustRegister(r.feedFetches, r.feedDuration, r.httpRequests, r.notifications)
	return r
}

// ObserveFetch registra uma busca ao feed; métodos aceitam receiver nil
func (r *Recorder) ObserveFetch(outcome string, took time.Duration) {
	if r == nil {
		return
	}
	r.feedFetches.WithLabelValues(outcome).Inc()
	r.feedDuration.Observe(took.Seconds())
}

func (r *Recorder) ObserveRequest(route string, status int) {
	if r == nil {
		return
	}
	r.httpRequests.WithLabelValues(route, strconv.Itoa(status)).Inc()
}

func (r *Recorder) ObserveNotification(sink, outcome string) {
	if r == nil {
		return
	}
	r.notifications.WithLabelValues(sink, outcome).Inc()
}
