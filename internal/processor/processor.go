// Package processor drives the parsing pipeline off the event bus: one
// incoming extracted document becomes parsed records, escalations for every
// unresolved speaker, and an analyzed summary event.
package processor

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/google/uuid"

	"github.com/merdeka-labs/penyata/internal/escalation"
	"github.com/merdeka-labs/penyata/internal/events"
	"github.com/merdeka-labs/penyata/internal/hansard"
	"github.com/merdeka-labs/penyata/internal/metrics"
	"github.com/merdeka-labs/penyata/internal/resolver"
)

// RosterLoader supplies the read-only legislator snapshot for one parse.
type RosterLoader interface {
	LoadRoster(ctx context.Context) ([]resolver.Legislator, error)
}

// Publisher is the outbound side of the events client.
type Publisher interface {
	Publish(subject string, data any) error
}

type Processor struct {
	roster     RosterLoader
	escalation *escalation.Manager
	publisher  Publisher
	pipeline   *metrics.Pipeline
	logger     *slog.Logger
}

func New(roster RosterLoader, esc *escalation.Manager, pub Publisher, pipeline *metrics.Pipeline, logger *slog.Logger) *Processor {
	return &Processor{
		roster:     roster,
		escalation: esc,
		publisher:  pub,
		pipeline:   pipeline,
		logger:     logger,
	}
}

// HandleDocumentExtracted is the NATS handler for
// penyata.document.extracted.
func (p *Processor) HandleDocumentExtracted(subject string, data []byte) {
	ctx := context.Background()

	var evt events.DocumentExtracted
	if err := json.Unmarshal(data, &evt); err != nil {
		p.logger.Error("failed to parse document event", "error", err)
		p.pipeline.ParseFailures.Inc()
		return
	}
	docID, err := uuid.Parse(evt.DocumentID)
	if err != nil {
		p.logger.Error("invalid document id", "document_id", evt.DocumentID, "error", err)
		p.pipeline.ParseFailures.Inc()
		return
	}

	doc, unmatched, err := p.Process(ctx, docID, evt.Text)
	if err != nil {
		p.logger.Error("document processing failed", "document_id", docID, "error", err)
		p.pipeline.ParseFailures.Inc()
		return
	}

	summary := events.DocumentAnalyzed{
		DocumentID:      docID.String(),
		SessionNumber:   doc.Metadata.SessionNumber,
		SessionDate:     doc.Metadata.SessionDate,
		PresentSeats:    doc.Attendance.PresentConstituencies,
		AbsentSeats:     doc.Attendance.AbsentConstituencies,
		ProceduralSeats: doc.Attendance.ProceduralConstituencies,
		Questions:       len(doc.Questions),
		BillsMotions:    len(doc.Entries),
		Unmatched:       unmatched,
	}
	if err := p.publisher.Publish(events.SubjectDocumentAnalyzed, summary); err != nil {
		p.logger.Warn("failed to publish analyzed event", "document_id", docID, "error", err)
	}

	p.pipeline.DocumentsParsed.Inc()
	p.logger.Info("document analyzed",
		"document_id", docID,
		"questions", summary.Questions,
		"bills_motions", summary.BillsMotions,
		"unmatched", unmatched)
}

// Process parses one document against a roster snapshot taken at the start
// of the call and escalates every sponsor or speaker turn that cannot be
// resolved. It returns the parsed document and the count of new
// escalations.
func (p *Processor) Process(ctx context.Context, docID uuid.UUID, rawText string) (hansard.Document, int, error) {
	roster, err := p.roster.LoadRoster(ctx)
	if err != nil {
		return hansard.Document{}, 0, err
	}

	text := hansard.Normalize(rawText)
	doc := hansard.ParseDocument(p.logger, text)

	unmatched := 0
	for _, q := range doc.Questions {
		p.pipeline.EntriesParsed.Inc()
		if q.SponsorName == "" {
			continue
		}
		unmatched += p.resolveSpeaker(ctx, docID, q.SponsorName, q.SponsorConstituency,
			sponsorHeader(q.SponsorName, q.SponsorConstituency), roster)
	}
	for _, e := range doc.Entries {
		p.pipeline.EntriesParsed.Inc()
		if e.SponsorName == "" {
			continue
		}
		unmatched += p.resolveSpeaker(ctx, docID, e.SponsorName, e.SponsorConstituency,
			sponsorHeader(e.SponsorName, e.SponsorConstituency), roster)
	}

	// debate turns carry speakers that never sponsor anything; one
	// escalation per distinct unresolvable header
	seenTurns := map[string]bool{}
	for _, turn := range hansard.SpeakerTurns(text) {
		if seenTurns[turn.Header] {
			continue
		}
		seenTurns[turn.Header] = true
		name, seat, ok := resolver.ExtractSponsor(turn.Header)
		if !ok {
			name = turn.Header
		}
		unmatched += p.resolveSpeaker(ctx, docID, name, seat, turn.Header, roster)
	}

	return doc, unmatched, nil
}

// resolveSpeaker resolves one extracted pair and records an escalation on
// failure. Returns 1 when a new escalation was created.
func (p *Processor) resolveSpeaker(ctx context.Context, docID uuid.UUID, name, seat, rawHeader string, roster []resolver.Legislator) int {
	out := resolver.Resolve(name, seat, roster)
	if out.Resolved {
		p.pipeline.Resolutions.WithLabelValues("resolved").Inc()
		return 0
	}
	p.pipeline.Resolutions.WithLabelValues(string(out.Reason)).Inc()

	if _, err := p.escalation.Record(ctx, docID, out, rawHeader); err != nil {
		p.logger.Error("failed to record unmatched speaker", "document_id", docID, "name", name, "error", err)
		return 0
	}
	p.pipeline.UnmatchedRecorded.Inc()
	return 1
}

func sponsorHeader(name, seat string) string {
	if seat == "" {
		return name
	}
	return name + " [" + seat + "]"
}
