package resolver

import (
	"regexp"
	"strings"

	"github.com/google/uuid"
)

// Legislator is one entry of the read-only roster snapshot. The resolver
// never mutates the roster; callers pass the same slice to every parse.
type Legislator struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	Constituency string    `json:"constituency"`
	Party        string    `json:"party"`
}

// FailureReason enumerates why a speaker could not be resolved.
type FailureReason string

const (
	ReasonNoConstituency FailureReason = "no_constituency"
	ReasonNoNameMatch    FailureReason = "no_name_match"
	ReasonAmbiguous      FailureReason = "ambiguous"
)

// Outcome is the result of one resolution attempt. Exactly one of the two
// shapes holds: Resolved carries LegislatorID; otherwise the extracted pair
// and a failure reason are retained for escalation.
type Outcome struct {
	Resolved       bool          `json:"resolved"`
	LegislatorID   uuid.UUID     `json:"legislator_id,omitempty"`
	HighConfidence bool          `json:"high_confidence,omitempty"`
	Name           string        `json:"name,omitempty"`
	Constituency   string        `json:"constituency,omitempty"`
	Reason         FailureReason `json:"reason,omitempty"`
}

// Sponsor header forms. The bracket form is unambiguous; parentheses are
// tried second because other parenthetical content can masquerade as a seat.
var (
	bracketSponsor = regexp.MustCompile(`([A-Z][^\n\[\]]+?)\s*\[\s*([^\[\]\n]+?)\s*\]`)
	parenSponsor   = regexp.MustCompile(`([A-Z][^\n()]+?)\s*\(\s*([^()\n]+?)\s*\)`)
)

// ExtractSponsor pulls a "Name [Constituency]" pair out of free text,
// falling back to the parenthesised variant.
func ExtractSponsor(text string) (name, constituency string, ok bool) {
	if m := bracketSponsor.FindStringSubmatch(text); m != nil {
		return strings.TrimSpace(m[1]), strings.TrimSpace(m[2]), true
	}
	if m := parenSponsor.FindStringSubmatch(text); m != nil {
		return strings.TrimSpace(m[1]), strings.TrimSpace(m[2]), true
	}
	return "", "", false
}

// SponsorRef is one extracted name/constituency pair.
type SponsorRef struct {
	Name         string
	Constituency string
}

// ExtractSponsors returns every bracket-form sponsor pair in the text in
// order of appearance. Used for co-sponsor lists; the parenthesis fallback
// is deliberately not applied here because repeated parentheticals are
// rarely sponsors.
func ExtractSponsors(text string) []SponsorRef {
	var refs []SponsorRef
	for _, m := range bracketSponsor.FindAllStringSubmatch(text, -1) {
		refs = append(refs, SponsorRef{
			Name:         strings.TrimSpace(m[1]),
			Constituency: strings.TrimSpace(m[2]),
		})
	}
	return refs
}

// Resolve matches an extracted name and optional constituency against the
// roster.
//
// A constituency match combined with a canonical-name substring match is
// the high-confidence path. Failing that, a substring match across the
// whole roster resolves only when it is unique; several candidates produce
// an ambiguous outcome routed to the escalation queue rather than a silent
// first-match pick.
func Resolve(name, constituency string, roster []Legislator) Outcome {
	normName := NormalizeName(name)
	if normName == "" {
		return unresolved(name, constituency, ReasonNoNameMatch)
	}

	if constituency != "" {
		normSeat := NormalizeConstituency(constituency)
		for _, leg := range roster {
			if NormalizeConstituency(leg.Constituency) == normSeat &&
				strings.Contains(NormalizeName(leg.Name), normName) {
				return Outcome{Resolved: true, LegislatorID: leg.ID, HighConfidence: true}
			}
		}
	}

	var matches []Legislator
	for _, leg := range roster {
		canon := NormalizeName(leg.Name)
		if strings.Contains(canon, normName) || strings.Contains(normName, canon) {
			matches = append(matches, leg)
		}
	}
	switch len(matches) {
	case 1:
		return Outcome{Resolved: true, LegislatorID: matches[0].ID}
	case 0:
		reason := ReasonNoNameMatch
		if constituency == "" {
			reason = ReasonNoConstituency
		}
		return unresolved(name, constituency, reason)
	default:
		return unresolved(name, constituency, ReasonAmbiguous)
	}
}

func unresolved(name, constituency string, reason FailureReason) Outcome {
	return Outcome{Name: name, Constituency: constituency, Reason: reason}
}
