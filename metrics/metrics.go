// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package metrics

import (
	"github.com/go-kit/kit/metrics"
	"github.com/go-kit/kit/metrics/discard"
	prometheus "github.com/go-kit/kit/metrics/prometheus"
	stdprometheus "github.com/prometheus/client_golang/prometheus"
)

const (
	Namespace       = "approval_ledger"
	LedgerSubsystem = "ledger"
	APISubsystem    = "api"
)

// Operation label values
const (
	OperationCreateProposal = "create_proposal"
	OperationCastVote       = "cast_vote"
)

var (
	Ledger = NopLedgerMetrics()
	API    = NopAPIMetrics()
)

// InitPrometheusMetrics swaps the no-op metrics for Prometheus-backed ones
// registered on reg
func InitPrometheusMetrics(reg stdprometheus.Registerer) {
	Ledger = PromLedgerMetrics(reg)
	API = PromAPIMetrics(reg)
}

type LedgerMetrics struct {
	ProposalsCreated metrics.Counter
	VotesCast        metrics.Counter
	Approvals        metrics.Counter
	Rejections       metrics.Counter
}

// Rejected counts a call refused with the given error code
func (l *LedgerMetrics) Rejected(operation, code string) {
	l.Rejections.With("operation", operation, "code", code).Add(1)
}

// Voted counts one stored vote carrying approvals candidate approvals
func (l *LedgerMetrics) Voted(approvals int) {
	l.VotesCast.Add(1)
	l.Approvals.Add(float64(approvals))
}

func PromLedgerMetrics(reg stdprometheus.Registerer) *LedgerMetrics {
	return &LedgerMetrics{
		ProposalsCreated: counter(reg, stdprometheus.CounterOpts{
			Namespace: Namespace,
			Subsystem: LedgerSubsystem,
			Name:      "proposals_created_total",
			Help:      "Total number of proposals created.",
		}),
		VotesCast: counter(reg, stdprometheus.CounterOpts{
			Namespace: Namespace,
			Subsystem: LedgerSubsystem,
			Name:      "votes_cast_total",
			Help:      "Total number of votes recorded.",
		}),
		Approvals: counter(reg, stdprometheus.CounterOpts{
			Namespace: Namespace,
			Subsystem: LedgerSubsystem,
			Name:      "approvals_total",
			Help:      "Total number of candidate approvals tallied.",
		}),
		Rejections: counter(reg, stdprometheus.CounterOpts{
			Namespace: Namespace,
			Subsystem: LedgerSubsystem,
			Name:      "rejections_total",
			Help:      "Total number of rejected operations by error code.",
		}, "operation", "code"),
	}
}

func NopLedgerMetrics() *LedgerMetrics {
	return &LedgerMetrics{
		ProposalsCreated: discard.NewCounter(),
		VotesCast:        discard.NewCounter(),
		Approvals:        discard.NewCounter(),
		Rejections:       discard.NewCounter(),
	}
}

type APIMetrics struct {
	RequestsTotal          metrics.Counter
	RequestDurationSeconds metrics.Histogram
}

func PromAPIMetrics(reg stdprometheus.Registerer) *APIMetrics {
	summary := stdprometheus.NewSummaryVec(stdprometheus.SummaryOpts{
		Namespace: Namespace,
		Subsystem: APISubsystem,
		Name:      "request_duration_seconds",
		Help:      "Request duration in seconds.",
	}, []string{"endpoint", "method", "status"})
	reg.MustRegister(summary)

	return &APIMetrics{
		RequestsTotal: counter(reg, stdprometheus.CounterOpts{
			Namespace: Namespace,
			Subsystem: APISubsystem,
			Name:      "requests_total",
			Help:      "Total number of requests.",
		}, "endpoint", "method", "status"),
		RequestDurationSeconds: prometheus.NewSummary(summary),
	}
}

func NopAPIMetrics() *APIMetrics {
	return &APIMetrics{
		RequestsTotal:          discard.NewCounter(),
		RequestDurationSeconds: discard.NewHistogram(),
	}
}

func counter(reg stdprometheus.Registerer, opts stdprometheus.CounterOpts, labels ...string) *prometheus.Counter {
	cv := stdprometheus.NewCounterVec(opts, labels)
	reg.MustRegister(cv)
	return prometheus.NewCounter(cv)
}
