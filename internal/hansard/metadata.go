package hansard

import "regexp"

// Header field patterns. Each search is independent: a Hansard with a
// mangled date still yields its session number, and vice versa.
var (
	sessionNumberPattern = regexp.MustCompile(`(?i)Bil\.?\s*(\d+)`)
	sessionDatePattern   = regexp.MustCompile(`(?i)(\d{1,2})\s+(Januari|Februari|Mac|April|Mei|Jun|Julai|Ogos|September|Oktober|November|Disember)\s+(\d{4})`)
	// single spaces only: \s would cross the newline into the next header line
	parliamentPattern = regexp.MustCompile(`PARLIMEN ([A-Z]+(?: [A-Z]+)*)`)
	sittingPattern    = regexp.MustCompile(`PENGGAL ([A-Z]+(?: [A-Z]+)*)`)
)

// ExtractMetadata pulls the session header fields out of normalized text.
// Fields that cannot be found come back as UnknownField; extraction never
// fails outright.
func ExtractMetadata(text string) SessionMetadata {
	meta := SessionMetadata{
		SessionNumber:  UnknownField,
		SessionDate:    UnknownField,
		ParliamentTerm: UnknownField,
		Sitting:        UnknownField,
	}

	if m := sessionNumberPattern.FindStringSubmatch(text); m != nil {
		meta.SessionNumber = m[1]
	}
	if m := sessionDatePattern.FindStringSubmatch(text); m != nil {
		meta.SessionDate = m[1] + " " + m[2] + " " + m[3]
	}
	if m := parliamentPattern.FindStringSubmatch(text); m != nil {
		meta.ParliamentTerm = m[1]
	}
	if m := sittingPattern.FindStringSubmatch(text); m != nil {
		meta.Sitting = m[1]
	}

	return meta
}
