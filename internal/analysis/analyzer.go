// Package analysis answers one question: what did a given legislator do in
// a given Hansard document. It runs the parsing core over the raw text and
// projects the result onto a single target identity.
package analysis

import (
	"errors"
	"strings"

	"github.com/google/uuid"

	"github.com/merdeka-labs/penyata/internal/hansard"
	"github.com/merdeka-labs/penyata/internal/resolver"
)

// ErrEmptyDocument reports a request with no text to analyze.
var ErrEmptyDocument = errors.New("document text is empty")

// ErrUnknownLegislator reports a target id absent from the roster. This is
// the only failure that aborts a request before parsing begins.
var ErrUnknownLegislator = errors.New("legislator not in roster")

// AttendanceMark classifies the target's presence in the sitting.
type AttendanceMark string

const (
	AttendancePresent AttendanceMark = "present"
	AttendanceAbsent  AttendanceMark = "absent"
	AttendanceUnknown AttendanceMark = "unknown"
)

// SpeechInstance is one occurrence of the target taking the floor.
type SpeechInstance struct {
	Position  int    `json:"position"`  // offset of the header in the normalized text
	RawHeader string `json:"raw_header"`
	Context   string `json:"context"` // window around the header
	Text      string `json:"text"`    // speech up to the next speaker header
}

// SpeakingSlot groups the target's instances whose headers normalize to the
// same name. Header carries the first-seen raw form.
type SpeakingSlot struct {
	Header    string `json:"header"`
	Instances int    `json:"instances"`
}

// SessionAggregates summarizes the whole sitting, not just the target.
type SessionAggregates struct {
	DistinctSpeakers int      `json:"distinct_speakers"`
	AttendedCount    int      `json:"attended_count"`
	AbsentCount      int      `json:"absent_count"`
	UnresolvedNames  []string `json:"unresolved_names,omitempty"`
}

// DocumentAnalysis is the stable output contract consumed by the API layer.
type DocumentAnalysis struct {
	DocumentID      uuid.UUID               `json:"document_id"`
	Legislator      resolver.Legislator     `json:"legislator"`
	Metadata        hansard.SessionMetadata `json:"metadata"`
	Attendance      AttendanceMark          `json:"attendance"`
	SpeakingSlots   []SpeakingSlot          `json:"speaking_slots"`
	SpeechInstances []SpeechInstance        `json:"speech_instances"`
	Aggregates      SessionAggregates       `json:"aggregates"`
}

const contextWindow = 80

// Analyze parses the raw text and reports the target legislator's activity
// in it. The roster slice is treated as an immutable snapshot for the whole
// call.
func Analyze(documentID uuid.UUID, rawText string, roster []resolver.Legislator, targetID uuid.UUID) (*DocumentAnalysis, error) {
	if strings.TrimSpace(rawText) == "" {
		return nil, ErrEmptyDocument
	}
	target, ok := findLegislator(roster, targetID)
	if !ok {
		return nil, ErrUnknownLegislator
	}

	text := hansard.Normalize(rawText)

	result := &DocumentAnalysis{
		DocumentID: documentID,
		Legislator: target,
		Metadata:   hansard.ExtractMetadata(text),
		Attendance: AttendanceUnknown,
	}

	attendance, err := hansard.ExtractAttendance(text)
	if err == nil {
		result.Attendance = classifyAttendance(attendance, roster, targetID)
		result.Aggregates.AttendedCount = len(attendance.PresentNames)
		result.Aggregates.AbsentCount = len(attendance.AbsentNames)
	}

	scanSpeeches(text, roster, targetID, result)
	return result, nil
}

func findLegislator(roster []resolver.Legislator, id uuid.UUID) (resolver.Legislator, bool) {
	for _, leg := range roster {
		if leg.ID == id {
			return leg, true
		}
	}
	return resolver.Legislator{}, false
}

// classifyAttendance resolves every roll-call name until one lands on the
// target. Present wins over absent when a name somehow appears in both
// lists.
func classifyAttendance(att hansard.AttendanceResult, roster []resolver.Legislator, targetID uuid.UUID) AttendanceMark {
	if rollCallContains(att.PresentNames, roster, targetID) {
		return AttendancePresent
	}
	if rollCallContains(att.AbsentNames, roster, targetID) {
		return AttendanceAbsent
	}
	return AttendanceUnknown
}

func rollCallContains(entries []string, roster []resolver.Legislator, targetID uuid.UUID) bool {
	for _, entry := range entries {
		name, seat, ok := resolver.ExtractSponsor(entry)
		if !ok {
			name = entry
		}
		out := resolver.Resolve(name, seat, roster)
		if out.Resolved && out.LegislatorID == targetID {
			return true
		}
	}
	return false
}

// scanSpeeches walks every speaker turn in the document, resolves it, and
// fills both the target's instances/slots and the session aggregates. Slots
// group by normalized name, so header variants of one speaker share a slot;
// the first-seen header is kept for display.
func scanSpeeches(text string, roster []resolver.Legislator, targetID uuid.UUID, result *DocumentAnalysis) {
	turns := hansard.SpeakerTurns(text)

	seenSpeakers := map[string]bool{}
	seenUnresolved := map[string]bool{}
	slots := map[string]int{}
	slotHeader := map[string]string{}
	var slotOrder []string

	for i, turn := range turns {
		name, seat, ok := resolver.ExtractSponsor(turn.Header)
		if !ok {
			name = turn.Header
		}

		normName := resolver.NormalizeName(name)
		if !seenSpeakers[normName] {
			seenSpeakers[normName] = true
			result.Aggregates.DistinctSpeakers++
		}

		out := resolver.Resolve(name, seat, roster)
		if !out.Resolved {
			if !seenUnresolved[turn.Header] {
				seenUnresolved[turn.Header] = true
				result.Aggregates.UnresolvedNames = append(result.Aggregates.UnresolvedNames, turn.Header)
			}
			continue
		}
		if out.LegislatorID != targetID {
			continue
		}

		speechEnd := len(text)
		if i+1 < len(turns) {
			speechEnd = turns[i+1].Start
		}

		result.SpeechInstances = append(result.SpeechInstances, SpeechInstance{
			Position:  turn.Start,
			RawHeader: turn.Header,
			Context:   contextAround(text, turn.Start, turn.HeaderEnd),
			Text:      strings.TrimSpace(text[turn.HeaderEnd:speechEnd]),
		})

		if _, seen := slots[normName]; !seen {
			slotOrder = append(slotOrder, normName)
			slotHeader[normName] = turn.Header
		}
		slots[normName]++
	}

	for _, key := range slotOrder {
		result.SpeakingSlots = append(result.SpeakingSlots, SpeakingSlot{Header: slotHeader[key], Instances: slots[key]})
	}
}

func contextAround(text string, start, end int) string {
	lo := start - contextWindow
	if lo < 0 {
		lo = 0
	}
	hi := end + contextWindow
	if hi > len(text) {
		hi = len(text)
	}
	return text[lo:hi]
}
