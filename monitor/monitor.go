// monitor/monitor.go
package monitor

import (
	"errors"
	"expvar"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/wfunc/ludo/logger"
	"github.com/wfunc/ludo/ludo"
)

type Metrics struct {
	DiceRolls      *prometheus.CounterVec
	MovesChecked   prometheus.Counter
	PiecesMoved    prometheus.Counter
	Captures       prometheus.Counter
	TurnHandoffs   prometheus.Counter
	GamesWon       prometheus.Counter
	ActiveRooms    prometheus.Gauge
	ActionDuration *prometheus.HistogramVec
}

// NewMetrics registers the game metrics with reg, or with the default
// registerer when reg is nil.
func NewMetrics(namespace string, reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		DiceRolls: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "dice_rolls_total",
			Help:      "Total number of applied rolls by value",
		}, []string{"value"}),
		MovesChecked: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "moves_checked_total",
			Help:      "Total number of rolls that left at least one movable piece",
		}),
		PiecesMoved: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "pieces_moved_total",
			Help:      "Total number of piece relocations, captured pieces included",
		}),
		Captures: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "captures_total",
			Help:      "Total number of pieces sent home",
		}),
		TurnHandoffs: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "turn_handoffs_total",
			Help:      "Total number of turns passed to the next player",
		}),
		GamesWon: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "games_won_total",
			Help:      "Total number of finished games",
		}),
		ActiveRooms: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "active_rooms",
			Help:      "Number of active rooms",
		}),
		ActionDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "action_duration_seconds",
			Help:      "Time spent applying a roll or a move",
			Buckets:   prometheus.ExponentialBuckets(0.00001, 2, 12),
		}, []string{"action"}),
	}

	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	reg.MustRegister(
		m.DiceRolls,
		m.MovesChecked,
		m.PiecesMoved,
		m.Captures,
		m.TurnHandoffs,
		m.GamesWon,
		m.ActiveRooms,
		m.ActionDuration,
	)

	return m
}

var (
	startTime   = time.Now()
	actionCount = new(expvar.Int)
	publishOnce sync.Once
)

// publishVars adds the expvar entries. expvar is process wide, so this runs once.
func publishVars() {
	publishOnce.Do(func() {
		expvar.Publish("uptime", expvar.Func(func() interface{} {
			return time.Since(startTime).Seconds()
		}))
		expvar.Publish("actions", actionCount)
	})
}

// Monitor turns engine events into metrics. It implements ludo.Listener.
type Monitor struct {
	metrics  *Metrics
	gatherer prometheus.Gatherer
}

func NewMonitor(namespace string, reg prometheus.Registerer) *Monitor {
	gatherer := prometheus.DefaultGatherer
	if g, ok := reg.(prometheus.Gatherer); ok {
		gatherer = g
	}
	return &Monitor{
		metrics:  NewMetrics(namespace, reg),
		gatherer: gatherer,
	}
}

func (m *Monitor) Metrics() *Metrics {
	return m.metrics
}

// Attach subscribes the monitor to every event of e.
func (m *Monitor) Attach(e *ludo.Engine) {
	e.AddListener(m)
}

// Handler serves /metrics from the monitor's registry and /debug/vars.
func (m *Monitor) Handler() http.Handler {
	publishVars()

	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(m.gatherer, promhttp.HandlerOpts{}))
	mux.Handle("/debug/vars", expvar.Handler())
	return mux
}

// StartServer serves Handler on addr in the background.
func (m *Monitor) StartServer(addr string) *http.Server {
	srv := &http.Server{Addr: addr, Handler: m.Handler()}
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Log.Errorw("metrics server stopped", "addr", addr, "error", err)
		}
	}()
	return srv
}

func (m *Monitor) SetActiveRooms(count int) {
	m.metrics.ActiveRooms.Set(float64(count))
}

// ObserveAction records how long a roll or a move took.
func (m *Monitor) ObserveAction(action string, duration time.Duration) {
	m.metrics.ActionDuration.WithLabelValues(action).Observe(duration.Seconds())
	actionCount.Add(1)
}

func (m *Monitor) DiceThrown(ev ludo.DiceEvent) {
	m.metrics.DiceRolls.WithLabelValues(strconv.Itoa(ev.Dice)).Inc()
}

func (m *Monitor) MovesChecked(ludo.MovesCheckedEvent) {
	m.metrics.MovesChecked.Inc()
}

func (m *Monitor) PieceMoved(ev ludo.PieceEvent) {
	m.metrics.PiecesMoved.Inc()
	if ev.Captured() {
		m.metrics.Captures.Inc()
	}
}

func (m *Monitor) PlayerStateChanged(ev ludo.PlayerEvent) {
	switch ev.State {
	case ludo.Waiting:
		m.metrics.TurnHandoffs.Inc()
	case ludo.Won:
		m.metrics.GamesWon.Inc()
	}
}
