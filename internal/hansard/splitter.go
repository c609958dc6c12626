package hansard

import (
	"regexp"
	"strings"
)

// minBlockLen guards against a false-positive start line cutting a block
// short: an accumulating block below this length absorbs further start
// lines rather than closing.
const minBlockLen = 50

// lineClass is the classification fed into the splitter's transition table.
type lineClass int

const (
	classPlain lineClass = iota
	classNumberedStart
	classHonorificStart
	classMotionCue
)

// splitState is the splitter's FSM state.
type splitState int

const (
	stateIdle splitState = iota
	stateInEntry
)

var (
	numberedStart  = regexp.MustCompile(`^\s*\d+\.\s`)
	honorificStart = regexp.MustCompile(`^(Tuan|Puan|Dato'|Dato|Datuk|Datin|Dr\.|Tan Sri|Tun|Timbalan|Menteri|Yang Berhormat|YB)\b.*\s[A-Z]`)
	motionCue      = regexp.MustCompile(`\b(mencadangkan|mengusulkan)\b`)
)

// classifyLine assigns the first matching class from the fixed ordered set
// of entry-start heuristics.
func classifyLine(line string) lineClass {
	switch {
	case numberedStart.MatchString(line):
		return classNumberedStart
	case honorificStart.MatchString(line):
		return classHonorificStart
	case motionCue.MatchString(line):
		return classMotionCue
	default:
		return classPlain
	}
}

// SplitEntries segments a bounded section into one block per logical entry
// (a question, a bill, a motion, a speaker turn).
//
// The machine has two states. In idle, a start line opens a block and plain
// lines are discarded as preamble. In inEntry, a start line closes and emits
// the current block only once it exceeds minBlockLen; otherwise the line
// continues the open block. Plain lines always accumulate. At end of input
// an open block above the threshold is emitted. A section with no start
// line at all is emitted whole, so downstream parsers always see at least
// one candidate.
func SplitEntries(section string) []string {
	var (
		blocks  []string
		current []string
		state   = stateIdle
		sawAny  = false
	)

	flush := func() {
		block := strings.TrimSpace(strings.Join(current, "\n"))
		if len(block) >= minBlockLen {
			blocks = append(blocks, block)
		}
		current = current[:0]
	}

	for _, line := range strings.Split(section, "\n") {
		class := classifyLine(line)

		switch state {
		case stateIdle:
			if class != classPlain {
				sawAny = true
				current = append(current, line)
				state = stateInEntry
			}
		case stateInEntry:
			if class != classPlain && len(strings.TrimSpace(strings.Join(current, "\n"))) >= minBlockLen {
				flush()
			}
			current = append(current, line)
		}
	}

	if state == stateInEntry {
		flush()
	}

	if !sawAny {
		if trimmed := strings.TrimSpace(section); trimmed != "" {
			return []string{trimmed}
		}
		return nil
	}
	return blocks
}
