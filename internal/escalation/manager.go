package escalation

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/merdeka-labs/penyata/internal/resolver"
)

// Store is the persistence the manager needs. Implemented by the Postgres
// store; mocked in tests.
type Store interface {
	InsertUnmatchedSpeaker(ctx context.Context, sp UnmatchedSpeaker) error
	ListUnmatchedSpeakers(ctx context.Context, documentID *uuid.UUID, unmappedOnly bool) ([]UnmatchedSpeaker, error)
	GetUnmatchedSpeaker(ctx context.Context, id uuid.UUID) (UnmatchedSpeaker, error)
	ConfirmMapping(ctx context.Context, m SpeakerMapping) error
	LoadRoster(ctx context.Context) ([]resolver.Legislator, error)
}

// Publisher mirrors the events client's publish side.
type Publisher interface {
	Publish(subject string, data any) error
}

// Manager owns the unmatched-speaker queue: it records resolution failures,
// ranks candidates on demand, and applies human-confirmed mappings.
type Manager struct {
	store     Store
	publisher Publisher
	logger    *slog.Logger
}

func NewManager(store Store, publisher Publisher, logger *slog.Logger) *Manager {
	return &Manager{store: store, publisher: publisher, logger: logger}
}

// Record persists a fresh escalation for an unresolved outcome and announces
// it. Calling Record with a resolved outcome is a programming error.
func (m *Manager) Record(ctx context.Context, documentID uuid.UUID, out resolver.Outcome, rawHeader string) (UnmatchedSpeaker, error) {
	if out.Resolved {
		return UnmatchedSpeaker{}, fmt.Errorf("record called with resolved outcome")
	}

	sp := UnmatchedSpeaker{
		ID:           uuid.New(),
		DocumentID:   documentID,
		Name:         out.Name,
		Constituency: out.Constituency,
		Reason:       out.Reason,
		RawHeader:    rawHeader,
		CreatedAt:    time.Now().UTC(),
	}
	if err := m.store.InsertUnmatchedSpeaker(ctx, sp); err != nil {
		return UnmatchedSpeaker{}, fmt.Errorf("insert unmatched speaker: %w", err)
	}

	if m.publisher != nil {
		if err := m.publisher.Publish("penyata.speaker.unmatched", sp); err != nil {
			m.logger.Warn("failed to publish unmatched speaker", "id", sp.ID, "error", err)
		}
	}
	return sp, nil
}

// List returns escalations, optionally scoped to one document and filtered
// to those still awaiting a mapping.
func (m *Manager) List(ctx context.Context, documentID *uuid.UUID, unmappedOnly bool) ([]UnmatchedSpeaker, error) {
	return m.store.ListUnmatchedSpeakers(ctx, documentID, unmappedOnly)
}

// Suggest ranks the roster against one escalation's extracted pair and
// returns the top n candidates.
func (m *Manager) Suggest(ctx context.Context, id uuid.UUID, n int) ([]Suggestion, error) {
	sp, err := m.store.GetUnmatchedSpeaker(ctx, id)
	if err != nil {
		return nil, err
	}
	roster, err := m.store.LoadRoster(ctx)
	if err != nil {
		return nil, fmt.Errorf("load roster: %w", err)
	}
	return Rank(sp.Name, sp.Constituency, roster, n), nil
}

// Confirm applies a human-confirmed mapping. The store serializes the
// transition per speaker id; a second confirmation surfaces
// ErrAlreadyMapped.
func (m *Manager) Confirm(ctx context.Context, id, legislatorID uuid.UUID, confidence float64, notes string) (SpeakerMapping, error) {
	roster, err := m.store.LoadRoster(ctx)
	if err != nil {
		return SpeakerMapping{}, fmt.Errorf("load roster: %w", err)
	}
	known := false
	for _, leg := range roster {
		if leg.ID == legislatorID {
			known = true
			break
		}
	}
	if !known {
		return SpeakerMapping{}, fmt.Errorf("legislator %s: %w", legislatorID, ErrUnknownLegislator)
	}

	mapping := SpeakerMapping{
		ID:                 uuid.New(),
		UnmatchedSpeakerID: id,
		LegislatorID:       legislatorID,
		Confidence:         confidence,
		Notes:              notes,
		CreatedAt:          time.Now().UTC(),
	}
	if err := m.store.ConfirmMapping(ctx, mapping); err != nil {
		return SpeakerMapping{}, err
	}

	if m.publisher != nil {
		if err := m.publisher.Publish("penyata.speaker.mapped", mapping); err != nil {
			m.logger.Warn("failed to publish mapping", "id", mapping.ID, "error", err)
		}
	}
	return mapping, nil
}
