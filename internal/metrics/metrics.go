package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Pipeline holds the parsing-pipeline counters on a private registry so
// tests can construct isolated instances.
type Pipeline struct {
	registry *prometheus.Registry

	DocumentsParsed   prometheus.Counter
	ParseFailures     prometheus.Counter
	EntriesParsed     prometheus.Counter
	Resolutions       *prometheus.CounterVec
	UnmatchedRecorded prometheus.Counter
	MappingsConfirmed prometheus.Counter
}

func NewPipeline() *Pipeline {
	registry := prometheus.NewRegistry()

	p := &Pipeline{
		registry: registry,
		DocumentsParsed: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "penyata", Subsystem: "pipeline",
			Name: "documents_parsed_total",
			Help: "Documents fully processed.",
		}),
		ParseFailures: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "penyata", Subsystem: "pipeline",
			Name: "parse_failures_total",
			Help: "Documents that failed before producing any result.",
		}),
		EntriesParsed: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "penyata", Subsystem: "pipeline",
			Name: "entries_parsed_total",
			Help: "Question, bill and motion entries parsed from segmented blocks.",
		}),
		Resolutions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "penyata", Subsystem: "pipeline",
			Name: "resolutions_total",
			Help: "Speaker resolution outcomes.",
		}, []string{"outcome"}),
		UnmatchedRecorded: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "penyata", Subsystem: "escalation",
			Name: "unmatched_speakers_total",
			Help: "Unmatched speakers persisted to the escalation queue.",
		}),
		MappingsConfirmed: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "penyata", Subsystem: "escalation",
			Name: "mappings_confirmed_total",
			Help: "Human-confirmed speaker mappings.",
		}),
	}

	registry.MustRegister(
		p.DocumentsParsed, p.ParseFailures, p.EntriesParsed,
		p.Resolutions, p.UnmatchedRecorded, p.MappingsConfirmed,
	)
	return p
}

// Handler serves the registry in Prometheus exposition format.
func (p *Pipeline) Handler() http.Handler {
	return promhttp.HandlerFor(p.registry, promhttp.HandlerOpts{})
}
