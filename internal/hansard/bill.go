package hansard

import (
	"log/slog"
	"regexp"
	"strings"

	"github.com/merdeka-labs/penyata/internal/resolver"
)

var (
	billTitle  = regexp.MustCompile(`(?i)RANG UNDANG-UNDANG\s+([^\n(]+)`)
	billNumber = regexp.MustCompile(`\(\s*(D\.R\.\s*\d+/\d{4})\s*\)`)
	motionText = regexp.MustCompile(`(?i)\b(?:mencadangkan|mengusulkan)\b[,:\s]*([^\n]+)`)
)

// Status keywords, checked in order. Proposed is the default when no
// keyword appears.
var statusKeywords = []struct {
	pattern *regexp.Regexp
	status  EntryStatus
}{
	{regexp.MustCompile(`(?i)\bdiluluskan\b`), StatusPassed},
	{regexp.MustCompile(`(?i)\bditolak\b`), StatusRejected},
	{regexp.MustCompile(`(?i)\b(?:ditangguhkan|dalam perbincangan|dibahaskan)\b`), StatusUnderDiscussion},
}

// ParseBillsAndMotions extracts bill and motion entries from a bounded
// section, with the same skip-on-failure batch policy as the question
// parser.
func ParseBillsAndMotions(logger *slog.Logger, section string) []ParsedBillOrMotion {
	var entries []ParsedBillOrMotion
	for i, block := range SplitEntries(section) {
		e, err := parseBillOrMotionBlock(block)
		if err != nil {
			logger.Warn("skipping unparsable bill/motion block", "index", i, "error", err)
			continue
		}
		entries = append(entries, e)
	}
	return entries
}

func parseBillOrMotionBlock(block string) (ParsedBillOrMotion, error) {
	e := ParsedBillOrMotion{
		Status:  StatusProposed,
		RawText: block,
	}

	if m := billTitle.FindStringSubmatch(block); m != nil {
		e.Kind = EntryKindBill
		e.Title = strings.TrimSpace(m[1])
		if n := billNumber.FindStringSubmatch(block); n != nil {
			e.BillNumber = n[1]
		}
	} else if m := motionText.FindStringSubmatch(block); m != nil {
		e.Kind = EntryKindMotion
		e.Title = strings.TrimSpace(strings.TrimRight(m[1], ".,"))
	} else {
		return ParsedBillOrMotion{}, errUnparsableBlock
	}

	// the (D.R. n/yyyy) parenthetical masquerades as a paren-form sponsor;
	// strip it before sponsor extraction
	sponsorText := billNumber.ReplaceAllString(block, "")
	if pairs := resolver.ExtractSponsors(sponsorText); len(pairs) > 0 {
		e.SponsorName = pairs[0].Name
		e.SponsorConstituency = pairs[0].Constituency
		for _, p := range pairs[1:] {
			e.CoSponsors = append(e.CoSponsors, p.Name)
		}
	} else if name, seat, ok := resolver.ExtractSponsor(sponsorText); ok {
		e.SponsorName = name
		e.SponsorConstituency = seat
	}

	for _, kw := range statusKeywords {
		if kw.pattern.MatchString(block) {
			e.Status = kw.status
			break
		}
	}

	e.Description = entryDescription(block)
	return e, nil
}

// entryDescription keeps the first body line that is not the title line as
// a short description.
func entryDescription(block string) string {
	lines := strings.Split(block, "\n")
	for _, line := range lines[1:] {
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			return trimmed
		}
	}
	return strings.TrimSpace(lines[0])
}
