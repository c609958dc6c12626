package hansard

// UnknownField is the sentinel for a labelled field that could not be
// extracted. Downstream layers render it as-is rather than hiding the gap.
const UnknownField = "Unknown"

// UnknownMinistry is the sentinel for a question whose ministry label is
// missing from the block.
const UnknownMinistry = "Unknown Ministry"

// SessionMetadata holds the header fields of one Hansard document.
// Each field is extracted independently; a miss yields UnknownField.
type SessionMetadata struct {
	SessionNumber  string `json:"session_number"`
	SessionDate    string `json:"session_date"`
	ParliamentTerm string `json:"parliament_term"`
	Sitting        string `json:"sitting"`
}

// AttendanceResult is the outcome of parsing the roll-call sections.
// Name lists keep document order and include presiding-officer entries;
// constituency counts exclude them.
type AttendanceResult struct {
	PresentNames []string `json:"present_names"`
	AbsentNames  []string `json:"absent_names"`

	PresentConstituencies    int `json:"present_constituencies"`
	AbsentConstituencies     int `json:"absent_constituencies"`
	ProceduralConstituencies int `json:"procedural_constituencies"` // absent under Standing Order 91
}

// TotalConstituencies is the number of constituency seats accounted for
// across all three attendance categories.
func (a AttendanceResult) TotalConstituencies() int {
	return a.PresentConstituencies + a.AbsentConstituencies + a.ProceduralConstituencies
}

// AnswerStatus classifies whether a question carries its answer.
type AnswerStatus string

const (
	AnswerStatusAnswered AnswerStatus = "answered"
	AnswerStatusPending  AnswerStatus = "pending"
	AnswerStatusUnknown  AnswerStatus = "unknown"
)

// QuestionType distinguishes the three Hansard question sections.
type QuestionType string

const (
	QuestionTypeOral     QuestionType = "oral"
	QuestionTypeWritten  QuestionType = "written"
	QuestionTypeMinister QuestionType = "minister"
)

// ParsedQuestion is one question entry extracted from a question section.
type ParsedQuestion struct {
	QuestionNumber      int          `json:"question_number,omitempty"`
	SponsorName         string       `json:"sponsor_name,omitempty"`
	SponsorConstituency string       `json:"sponsor_constituency,omitempty"`
	Ministry            string       `json:"ministry"`
	QuestionText        string       `json:"question_text"`
	Topic               string       `json:"topic"`
	AnswerText          string       `json:"answer_text,omitempty"`
	AnswerStatus        AnswerStatus `json:"answer_status"`
	QuestionType        QuestionType `json:"question_type"`
	RawText             string       `json:"raw_text"`
}

// EntryKind distinguishes bills from motions.
type EntryKind string

const (
	EntryKindBill   EntryKind = "bill"
	EntryKindMotion EntryKind = "motion"
)

// EntryStatus classifies the procedural state of a bill or motion.
type EntryStatus string

const (
	StatusProposed        EntryStatus = "proposed"
	StatusUnderDiscussion EntryStatus = "under_discussion"
	StatusPassed          EntryStatus = "passed"
	StatusRejected        EntryStatus = "rejected"
)

// ParsedBillOrMotion is one bill or motion entry.
type ParsedBillOrMotion struct {
	Title               string      `json:"title"`
	Kind                EntryKind   `json:"kind"`
	SponsorName         string      `json:"sponsor_name,omitempty"`
	SponsorConstituency string      `json:"sponsor_constituency,omitempty"`
	CoSponsors          []string    `json:"co_sponsors,omitempty"`
	Description         string      `json:"description"`
	Status              EntryStatus `json:"status"`
	BillNumber          string      `json:"bill_number,omitempty"`
	RawText             string      `json:"raw_text"`
}
