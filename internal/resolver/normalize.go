package resolver

import (
	"regexp"
	"strings"
)

// Honorific prefixes stripped during normalization. Order matters: the
// multi-word forms must be tried before their single-word prefixes.
var honorifics = []string{
	"yang berhormat", "yb.", "yb",
	"tan sri", "toh puan", "tun",
	"dato' seri", "dato seri", "datuk seri",
	"dato'", "dato", "datuk", "datin",
	"tuan", "puan", "haji", "hajah", "hj.", "hj",
	"dr.", "dr", "prof.", "prof", "ir.", "ir",
}

// Lineage and clan connectors dropped so "Ahmad bin Hassan" and
// "Ahmad Hassan" normalize identically.
var particles = map[string]bool{
	"bin":   true,
	"binti": true,
	"bt":    true,
	"st":    true,
	"a/l":   true,
	"a/p":   true,
	"anak":  true,
	"al":    true,
}

var innerSpaces = regexp.MustCompile(`\s+`)

// NormalizeName canonicalizes an extracted name for matching: lowercase,
// collapsed whitespace, honorific prefixes and lineage particles removed.
// Idempotent.
func NormalizeName(name string) string {
	s := strings.ToLower(strings.TrimSpace(name))
	s = innerSpaces.ReplaceAllString(s, " ")

	for changed := true; changed; {
		changed = false
		for _, h := range honorifics {
			if strings.HasPrefix(s, h+" ") {
				s = strings.TrimSpace(strings.TrimPrefix(s, h))
				changed = true
			}
		}
	}

	words := strings.Fields(s)
	kept := words[:0]
	for _, w := range words {
		if particles[w] {
			continue
		}
		kept = append(kept, w)
	}
	return strings.Join(kept, " ")
}

// NormalizeConstituency canonicalizes a constituency label: lowercase with
// collapsed whitespace. Seats carry no honorifics so nothing else is
// stripped.
func NormalizeConstituency(c string) string {
	return innerSpaces.ReplaceAllString(strings.ToLower(strings.TrimSpace(c)), " ")
}
