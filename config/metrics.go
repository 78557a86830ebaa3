package config

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the process-wide counters the program and background jobs
// increment. Registered on a dedicated registry so tests can construct
// independent instances.
type Metrics struct {
	Registry          *prometheus.Registry
	ProgramRuns       prometheus.Counter
	CallsPlaced       prometheus.Counter
	BiosGenerated     prometheus.Counter
	PhotoEmailsSent   prometheus.Counter
	ProgramRunErrors  prometheus.Counter
	FostersProcessed  prometheus.Counter
}

func NewMetrics() *Metrics {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)

	return &Metrics{
		Registry: reg,
		ProgramRuns: factory.NewCounter(prometheus.CounterOpts{
			Name: "foster_program_runs_total",
			Help: "Number of foster program batch passes started.",
		}),
		CallsPlaced: factory.NewCounter(prometheus.CounterOpts{
			Name: "foster_calls_placed_total",
			Help: "Number of outbound calls placed through the voice vendor.",
		}),
		BiosGenerated: factory.NewCounter(prometheus.CounterOpts{
			Name: "foster_biographies_generated_total",
			Help: "Number of biographies generated from transcripts.",
		}),
		PhotoEmailsSent: factory.NewCounter(prometheus.CounterOpts{
			Name: "foster_photo_emails_sent_total",
			Help: "Number of photography notification emails sent.",
		}),
		ProgramRunErrors: factory.NewCounter(prometheus.CounterOpts{
			Name: "foster_program_run_errors_total",
			Help: "Number of batch passes that failed before processing records.",
		}),
		FostersProcessed: factory.NewCounter(prometheus.CounterOpts{
			Name: "foster_records_processed_total",
			Help: "Number of foster records advanced by batch passes.",
		}),
	}
}
