package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics
type Metrics struct {
	// Document metrics
	DocumentsCreated   *prometheus.CounterVec
	DocumentsCompleted *prometheus.CounterVec
	DocumentsDeleted   *prometheus.CounterVec
	StatusTransitions  *prometheus.CounterVec
	DocumentAmount     *prometheus.HistogramVec

	// Ledger metrics
	EntriesApplied      prometheus.Counter
	EntriesReversed     prometheus.Counter
	LedgerDuration      prometheus.Histogram
	LedgerErrors        *prometheus.CounterVec
	InsufficientBalance prometheus.Counter
	VersionConflicts    prometheus.Counter

	// Account metrics
	AccountsCreated   prometheus.Counter
	AccountBalance    *prometheus.GaugeVec
	AccountOperations *prometheus.CounterVec

	// API metrics
	HTTPRequests *prometheus.CounterVec
	HTTPDuration *prometheus.HistogramVec

	// Database metrics
	DBQueries     *prometheus.CounterVec
	DBDuration    *prometheus.HistogramVec
	DBConnections prometheus.Gauge
	DBErrors      *prometheus.CounterVec

	// Redis metrics
	RedisOperations *prometheus.CounterVec
	RedisDuration   *prometheus.HistogramVec
	RedisErrors     *prometheus.CounterVec

	// Rate limiting metrics
	RateLimitHits *prometheus.CounterVec

	// Audit metrics
	AuditLogsCreated *prometheus.CounterVec
}

// New creates and registers all Prometheus metrics
func New() *Metrics {
	return &Metrics{
		// Document metrics
		DocumentsCreated: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "traveledger_documents_created_total",
				Help: "Total number of documents created by type",
			},
			[]string{"type"},
		),
		DocumentsCompleted: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "traveledger_documents_completed_total",
				Help: "Total number of documents completed by type",
			},
			[]string{"type"},
		),
		DocumentsDeleted: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "traveledger_documents_deleted_total",
				Help: "Total number of documents soft-deleted by type",
			},
			[]string{"type"},
		),
		StatusTransitions: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "traveledger_document_status_transitions_total",
				Help: "Total document status transitions",
			},
			[]string{"from", "to"},
		),
		DocumentAmount: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "traveledger_document_amount",
				Help:    "Document amounts",
				Buckets: []float64{1, 10, 100, 1000, 10000, 100000, 1000000},
			},
			[]string{"type"},
		),

		// Ledger metrics
		EntriesApplied: promauto.NewCounter(prometheus.CounterOpts{
			Name: "traveledger_ledger_entries_applied_total",
			Help: "Total number of ledger entries applied",
		}),
		EntriesReversed: promauto.NewCounter(prometheus.CounterOpts{
			Name: "traveledger_ledger_entries_reversed_total",
			Help: "Total number of ledger entries reversed",
		}),
		LedgerDuration: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "traveledger_ledger_operation_duration_seconds",
			Help:    "Duration of ledger operations",
			Buckets: prometheus.DefBuckets,
		}),
		LedgerErrors: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "traveledger_ledger_errors_total",
				Help: "Total number of ledger errors by type",
			},
			[]string{"error_type"},
		),
		InsufficientBalance: promauto.NewCounter(prometheus.CounterOpts{
			Name: "traveledger_insufficient_balance_total",
			Help: "Total number of operations rejected for insufficient balance",
		}),
		VersionConflicts: promauto.NewCounter(prometheus.CounterOpts{
			Name: "traveledger_version_conflicts_total",
			Help: "Total number of account version conflicts",
		}),

		// Account metrics
		AccountsCreated: promauto.NewCounter(prometheus.CounterOpts{
			Name: "traveledger_accounts_created_total",
			Help: "Total number of accounts created",
		}),
		AccountBalance: promauto.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "traveledger_account_balance",
				Help: "Current account balance",
			},
			[]string{"account_id", "currency"},
		),
		AccountOperations: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "traveledger_account_operations_total",
				Help: "Total account operations by type",
			},
			[]string{"operation"},
		),

		// API metrics
		HTTPRequests: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "traveledger_http_requests_total",
				Help: "Total HTTP requests",
			},
			[]string{"method", "path", "status"},
		),
		HTTPDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "traveledger_http_duration_seconds",
				Help:    "HTTP request duration",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "path"},
		),

		// Database metrics
		DBQueries: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "traveledger_db_queries_total",
				Help: "Total database queries",
			},
			[]string{"operation", "table"},
		),
		DBDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "traveledger_db_query_duration_seconds",
				Help:    "Database query duration",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"operation", "table"},
		),
		DBConnections: promauto.NewGauge(prometheus.GaugeOpts{
			Name: "traveledger_db_connections",
			Help: "Current number of database connections",
		}),
		DBErrors: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "traveledger_db_errors_total",
				Help: "Total database errors",
			},
			[]string{"operation"},
		),

		// Redis metrics
		RedisOperations: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "traveledger_redis_operations_total",
				Help: "Total Redis operations",
			},
			[]string{"operation"},
		),
		RedisDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "traveledger_redis_duration_seconds",
				Help:    "Redis operation duration",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"operation"},
		),
		RedisErrors: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "traveledger_redis_errors_total",
				Help: "Total Redis errors",
			},
			[]string{"operation"},
		),

		// Rate limiting metrics
		RateLimitHits: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "traveledger_rate_limit_hits_total",
				Help: "Total rate limit hits",
			},
			[]string{"ip"},
		),

		// Audit metrics
		AuditLogsCreated: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "traveledger_audit_logs_total",
				Help: "Total audit logs created",
			},
			[]string{"action", "status"},
		),
	}
}
