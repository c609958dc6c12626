package hansard

import (
	"errors"
	"regexp"
	"strings"
)

// Roll-call section markers as they appear in the printed Hansard. The
// ordinary absent list ends at the Standing Order 91 sub-heading when one
// exists; otherwise at the senator roster.
var (
	presentMarker   = regexp.MustCompile(`AHLI-AHLI YANG HADIR`)
	absentMarker    = regexp.MustCompile(`AHLI-AHLI YANG TIDAK HADIR`)
	rule91Marker    = regexp.MustCompile(`PERATURAN MESYUARAT 91`)
	senatorMarker   = regexp.MustCompile(`SENATOR`)
	absentEndMarker = regexp.MustCompile(`PERATURAN MESYUARAT 91|SENATOR`)
)

// numberedEntry matches one roll-call line: "12. Tuan Ahmad [Kota Baru]".
var numberedEntry = regexp.MustCompile(`(?m)^\s*\d+\.\s+(.+)$`)

// constituencyTag detects the bracketed seat on a roll-call line. Presiding
// officers carry no seat and are excluded from constituency counts.
var constituencyTag = regexp.MustCompile(`\[[^\]]+\]`)

// ErrNoRollCall reports a document with no recognizable attendance sections.
var ErrNoRollCall = errors.New("no roll-call sections found")

// ExtractAttendance parses the present and absent rosters out of a full
// normalized document. The absent section may contain a Standing Order 91
// sub-section whose entries are counted as procedural absences; their names
// still appear in the absent list.
func ExtractAttendance(text string) (AttendanceResult, error) {
	var result AttendanceResult
	found := false

	if present, ok := FindSection(text, presentMarker, absentMarker); ok {
		found = true
		names, seats := scanRollCall(present.Text)
		result.PresentNames = names
		result.PresentConstituencies = seats
	}

	if absent, ok := FindSection(text, absentMarker, absentEndMarker); ok {
		found = true
		names, seats := scanRollCall(absent.Text)
		result.AbsentNames = names
		result.AbsentConstituencies = seats

		if r91, ok := FindSection(text, rule91Marker, senatorMarker); ok {
			names, seats := scanRollCall(r91.Text)
			result.AbsentNames = append(result.AbsentNames, names...)
			result.ProceduralConstituencies = seats
		}
	}

	if !found {
		return AttendanceResult{}, ErrNoRollCall
	}
	return result, nil
}

// scanRollCall collects the numbered entries of one bounded roster span,
// returning the name list and the count of entries holding a constituency.
func scanRollCall(section string) (names []string, seats int) {
	for _, m := range numberedEntry.FindAllStringSubmatch(section, -1) {
		entry := strings.TrimSpace(m[1])
		if entry == "" {
			continue
		}
		names = append(names, entry)
		if constituencyTag.MatchString(entry) {
			seats++
		}
	}
	return names, seats
}
