package hansard

import (
	"regexp"
	"strings"
)

// speakerHeader matches a speaker-turn header line: an honorific, a name,
// an optional bracketed seat, then a colon.
var speakerHeader = regexp.MustCompile(`(?m)^((?:Tuan|Puan|Dato'|Dato|Datuk|Datin|Dr\.|Tan Sri|Tun|Timbalan[^\n:\[]*|Menteri[^\n:\[]*|Yang Berhormat)[^\n:\[]*(?:\[[^\]\n]+\])?)\s*:`)

// SpeakerTurn is one speaker-header occurrence in the transcript body. The
// speech itself runs from HeaderEnd to the next turn's Start.
type SpeakerTurn struct {
	Start     int // offset of the header line
	HeaderEnd int // offset just past the trailing colon
	Header    string
}

// SpeakerTurns returns every speaker-turn header in document order.
func SpeakerTurns(text string) []SpeakerTurn {
	var turns []SpeakerTurn
	for _, m := range speakerHeader.FindAllStringSubmatchIndex(text, -1) {
		turns = append(turns, SpeakerTurn{
			Start:     m[0],
			HeaderEnd: m[1],
			Header:    strings.TrimSpace(text[m[2]:m[3]]),
		})
	}
	return turns
}
