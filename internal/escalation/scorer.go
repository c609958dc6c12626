package escalation

import (
	"sort"
	"strings"

	"github.com/merdeka-labs/penyata/internal/resolver"
)

// Score weights. An exact normalized name match dominates; a constituency
// match boosts; a bare substring overlap ranks lowest.
const (
	exactNameScore    = 1.0
	constituencyBoost = 0.3
	substringScore    = 0.4
)

// Score rates one legislator against an extracted name/constituency pair.
// Pure: no persistence, no roster ordering assumptions.
func Score(name, constituency string, leg resolver.Legislator) (float64, string) {
	normName := resolver.NormalizeName(name)
	canon := resolver.NormalizeName(leg.Name)

	var score float64
	var reasons []string

	switch {
	case normName != "" && normName == canon:
		score += exactNameScore
		reasons = append(reasons, "exact name match")
	case normName != "" && (strings.Contains(canon, normName) || strings.Contains(normName, canon)):
		score += substringScore
		reasons = append(reasons, "partial name match")
	}

	if constituency != "" &&
		resolver.NormalizeConstituency(constituency) == resolver.NormalizeConstituency(leg.Constituency) {
		score += constituencyBoost
		reasons = append(reasons, "constituency match")
	}

	if len(reasons) == 0 {
		return 0, "no overlap"
	}
	return score, strings.Join(reasons, ", ")
}

// Rank scores every roster entry and returns the top n candidates with a
// positive score, highest first. Ties keep roster order: the ranking is
// advisory and a human makes the final pick.
func Rank(name, constituency string, roster []resolver.Legislator, n int) []Suggestion {
	var suggestions []Suggestion
	for _, leg := range roster {
		score, reason := Score(name, constituency, leg)
		if score <= 0 {
			continue
		}
		suggestions = append(suggestions, Suggestion{Legislator: leg, Score: score, Reason: reason})
	}

	sort.SliceStable(suggestions, func(i, j int) bool {
		return suggestions[i].Score > suggestions[j].Score
	})

	if n > 0 && len(suggestions) > n {
		suggestions = suggestions[:n]
	}
	return suggestions
}
