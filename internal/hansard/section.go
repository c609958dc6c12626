package hansard

import "regexp"

// BoundaryTier records which strategy bounded the end of a section. It is
// diagnostic only; callers never branch on it.
type BoundaryTier string

const (
	TierNextMarker BoundaryTier = "next_marker" // explicit marker for the following section
	TierHeading    BoundaryTier = "heading"     // generic all-caps heading heuristic
	TierLengthCap  BoundaryTier = "length_cap"  // hard character window
)

// sectionCap bounds a section when neither an explicit marker nor a heading
// is found, so a missing terminator never drags in the rest of the document.
const sectionCap = 20000

// A blank line followed by a line opening with at least three consecutive
// uppercase letters is read as the heading of the next major section.
var headingPattern = regexp.MustCompile(`\n\s*\n([A-Z]{3,})`)

// Section is a bounded span of the document. Start and End are offsets into
// the text FindSection was given; Text is the span between them.
type Section struct {
	Text  string
	Start int
	End   int
	Tier  BoundaryTier
}

// FindSection locates the span following the start marker. The end is chosen
// by the first tier that produces a signal: the explicit next-section marker
// when given and present, then the generic all-caps heading heuristic, then
// a fixed length cap.
func FindSection(text string, start, next *regexp.Regexp) (Section, bool) {
	loc := start.FindStringIndex(text)
	if loc == nil {
		return Section{}, false
	}
	begin := loc[1]
	rest := text[begin:]

	if next != nil {
		if end := next.FindStringIndex(rest); end != nil {
			return Section{Text: rest[:end[0]], Start: begin, End: begin + end[0], Tier: TierNextMarker}, true
		}
	}

	if end := headingPattern.FindStringSubmatchIndex(rest); end != nil {
		// cut before the heading itself, not before the blank line match
		return Section{Text: rest[:end[2]], Start: begin, End: begin + end[2], Tier: TierHeading}, true
	}

	if len(rest) > sectionCap {
		rest = rest[:sectionCap]
	}
	return Section{Text: rest, Start: begin, End: begin + len(rest), Tier: TierLengthCap}, true
}
