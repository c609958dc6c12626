package escalation

import (
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/merdeka-labs/penyata/internal/resolver"
)

// ErrNotFound reports an unmatched-speaker id with no record.
var ErrNotFound = errors.New("unmatched speaker not found")

// ErrAlreadyMapped reports a confirmation attempt against a speaker that
// has already been mapped. The transition is one-way; a second confirmation
// is rejected, never silently overwritten.
var ErrAlreadyMapped = errors.New("speaker already mapped")

// ErrUnknownLegislator reports a confirmation naming a legislator id that
// is not in the roster.
var ErrUnknownLegislator = errors.New("legislator not in roster")

// UnmatchedSpeaker is the persisted projection of an unresolved outcome.
// It is created once per resolution failure and becomes immutable after the
// mapped transition.
type UnmatchedSpeaker struct {
	ID           uuid.UUID              `json:"id"`
	DocumentID   uuid.UUID              `json:"document_id"`
	Name         string                 `json:"name"`
	Constituency string                 `json:"constituency,omitempty"`
	Reason       resolver.FailureReason `json:"reason"`
	RawHeader    string                 `json:"raw_header"`
	IsMapped     bool                   `json:"is_mapped"`
	MappedTo     *uuid.UUID             `json:"mapped_to,omitempty"`
	CreatedAt    time.Time              `json:"created_at"`
}

// SpeakerMapping is a human-confirmed assignment. Append-only: once
// written it is never edited.
type SpeakerMapping struct {
	ID                 uuid.UUID `json:"id"`
	UnmatchedSpeakerID uuid.UUID `json:"unmatched_speaker_id"`
	LegislatorID       uuid.UUID `json:"legislator_id"`
	Confidence         float64   `json:"confidence"`
	Notes              string    `json:"notes,omitempty"`
	CreatedAt          time.Time `json:"created_at"`
}

// Suggestion pairs a candidate legislator with its score and a
// human-readable justification.
type Suggestion struct {
	Legislator resolver.Legislator `json:"legislator"`
	Score      float64             `json:"score"`
	Reason     string              `json:"reason"`
}
