package metrics

import (
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog/log"
)

type Outcome string

const (
	Success                  Outcome       = "success"
	Error                    Outcome       = "error"
	MetricRequestTimeout     time.Duration = 5 * time.Second
	MetricRequestIdleTimeout time.Duration = 10 * time.Second
)

func (O Outcome) String() string {
	return string(O)
}

var (
	once                    sync.Once
	metricsRouter           *chi.Mux
	opDurationHistogram     *prometheus.HistogramVec
	pollerDurationHistogram *prometheus.HistogramVec
	rewardPaidCounter       prometheus.Counter
	queueSendErrorCounter   prometheus.Counter
	persistenceErrorCounter prometheus.Counter
	totalStakedGauge        prometheus.Gauge
	totalOwnerDepositsGauge prometheus.Gauge
	totalInterestPaidGauge  prometheus.Gauge
	interestRateGauge       prometheus.Gauge
	activeAccountsGauge     prometheus.Gauge
	pausedGauge             prometheus.Gauge
	dbLatency               *prometheus.HistogramVec
)

// Init initializes the metrics package.
func Init(metricsPort int) {
	once.Do(func() {
		initMetricsRouter(metricsPort)
		registerMetrics()
	})
}

// initMetricsRouter initializes the metrics router.
func initMetricsRouter(metricsPort int) {
	metricsRouter = chi.NewRouter()
	metricsRouter.Get("/metrics", func(w http.ResponseWriter, r *http.Request) {
		promhttp.Handler().ServeHTTP(w, r)
	})
	// Create a custom server with timeout settings
	metricsAddr := fmt.Sprintf(":%d", metricsPort)
	server := &http.Server{
		Addr:         metricsAddr,
		Handler:      metricsRouter,
		ReadTimeout:  MetricRequestTimeout,
		WriteTimeout: MetricRequestTimeout,
		IdleTimeout:  MetricRequestIdleTimeout,
	}

	// Start the server in a separate goroutine
	go func() {
		log.Printf("Starting metrics server on %s", metricsAddr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msgf("Error starting metrics server on %s", metricsAddr)
		}
	}()
}

// registerMetrics initializes and register the Prometheus metrics.
func registerMetrics() {
	defaultHistogramBucketsSeconds := []float64{0.1, 0.5, 1, 2.5, 5, 10, 30}

	opDurationHistogram = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "ledger_operation_duration_seconds",
			Help:    "Histogram of ledger operation durations in seconds.",
			Buckets: defaultHistogramBucketsSeconds,
		},
		[]string{"operation", "status"},
	)

	pollerDurationHistogram = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "poller_duration_seconds",
			Help:    "Histogram of poller durations in seconds.",
			Buckets: defaultHistogramBucketsSeconds,
		},
		[]string{"type", "status"},
	)

	rewardPaidCounter = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "ledger_reward_paid_total",
			Help: "Cumulative reward paid out by settlements, in the smallest token denomination",
		},
	)

	// add a counter for the number of errors from the fail to push message into queue
	queueSendErrorCounter = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "queue_send_error_count",
			Help: "The total number of errors when sending messages to the queue",
		},
	)

	persistenceErrorCounter = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "ledger_persistence_error_count",
			Help: "Number of failed attempts to persist committed ledger state",
		},
	)

	totalStakedGauge = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "ledger_total_staked",
			Help: "Sum of all staked principal",
		},
	)

	totalOwnerDepositsGauge = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "ledger_total_owner_deposits",
			Help: "Cumulative owner funding of the reward pool",
		},
	)

	totalInterestPaidGauge = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "ledger_total_interest_paid",
			Help: "Cumulative interest paid to stakers",
		},
	)

	interestRateGauge = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "ledger_interest_rate_bps",
			Help: "Current annualized interest rate in basis points",
		},
	)

	activeAccountsGauge = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "ledger_active_accounts",
			Help: "Number of accounts with a nonzero stake",
		},
	)

	pausedGauge = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "ledger_paused",
			Help: "1 when deposits are paused, 0 otherwise",
		},
	)

	dbLatency = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "db_latency_seconds",
			Help: "DB latency in seconds splitted by method and execution status",
		},
		[]string{"method", "status"},
	)

	prometheus.MustRegister(
		opDurationHistogram,
		pollerDurationHistogram,
		rewardPaidCounter,
		queueSendErrorCounter,
		persistenceErrorCounter,
		totalStakedGauge,
		totalOwnerDepositsGauge,
		totalInterestPaidGauge,
		interestRateGauge,
		activeAccountsGauge,
		pausedGauge,
		dbLatency,
	)
}

func RecordOperationDuration(d time.Duration, operation string, failure bool) {
	status := Success
	if failure {
		status = Error
	}

	opDurationHistogram.WithLabelValues(operation, status.String()).Observe(d.Seconds())
}

func RecordDbLatency(d time.Duration, method string, failure bool) {
	status := Success
	if failure {
		status = Error
	}

	dbLatency.WithLabelValues(method, status.String()).Observe(d.Seconds())
}

func AddRewardPaid(amount uint64) {
	rewardPaidCounter.Add(float64(amount))
}

func RecordQueueSendError() {
	queueSendErrorCounter.Inc()
}

func IncPersistenceErrors() {
	persistenceErrorCounter.Inc()
}

func RecordLedgerTotals(totalStaked, ownerDeposits, interestPaid, rateBps, activeAccounts uint64) {
	totalStakedGauge.Set(float64(totalStaked))
	totalOwnerDepositsGauge.Set(float64(ownerDeposits))
	totalInterestPaidGauge.Set(float64(interestPaid))
	interestRateGauge.Set(float64(rateBps))
	activeAccountsGauge.Set(float64(activeAccounts))
}

func RecordPaused(paused bool) {
	if paused {
		pausedGauge.Set(1)
	} else {
		pausedGauge.Set(0)
	}
}
