package hansard

import (
	"log/slog"
	"regexp"
)

// Major section markers of the order paper, in the order they appear in a
// typical sitting.
var (
	oralQuestionsMarker    = regexp.MustCompile(`PERTANYAAN-PERTANYAAN JAWAB LISAN`)
	ministerQuestionMarker = regexp.MustCompile(`WAKTU PERTANYAAN-PERTANYAAN MENTERI`)
	writtenQuestionsMarker = regexp.MustCompile(`JAWAB BERTULIS`)
	billsMarker            = regexp.MustCompile(`RANG UNDANG-UNDANG KERAJAAN`)
	motionsMarker          = regexp.MustCompile(`USUL-USUL`)
)

// Document is the fully parsed form of one Hansard transcript.
type Document struct {
	Metadata    SessionMetadata
	Attendance  AttendanceResult
	HasRollCall bool
	Questions   []ParsedQuestion
	Entries     []ParsedBillOrMotion
}

// ParseDocument runs the whole pipeline over normalized text: header
// metadata, roll call, then every question, bill and motion section that
// can be located. Absent sections are simply skipped; the document is
// parsed as far as its structure allows.
func ParseDocument(logger *slog.Logger, text string) Document {
	doc := Document{Metadata: ExtractMetadata(text)}

	attendance, err := ExtractAttendance(text)
	if err != nil {
		logger.Warn("no roll-call sections", "error", err)
	} else {
		doc.Attendance = attendance
		doc.HasRollCall = true
	}

	type questionSection struct {
		start *regexp.Regexp
		next  *regexp.Regexp
		qtype QuestionType
	}
	for _, qs := range []questionSection{
		{ministerQuestionMarker, oralQuestionsMarker, QuestionTypeMinister},
		{oralQuestionsMarker, writtenQuestionsMarker, QuestionTypeOral},
		{writtenQuestionsMarker, billsMarker, QuestionTypeWritten},
	} {
		section, ok := FindSection(text, qs.start, qs.next)
		if !ok {
			continue
		}
		logger.Debug("question section located", "type", qs.qtype, "tier", section.Tier)
		doc.Questions = append(doc.Questions, ParseQuestions(logger, section.Text, qs.qtype)...)
	}

	type entrySection struct {
		start *regexp.Regexp
		next  *regexp.Regexp
	}
	for _, es := range []entrySection{
		{billsMarker, motionsMarker},
		{motionsMarker, nil},
	} {
		section, ok := FindSection(text, es.start, es.next)
		if !ok {
			continue
		}
		logger.Debug("bill/motion section located", "tier", section.Tier)
		doc.Entries = append(doc.Entries, ParseBillsAndMotions(logger, section.Text)...)
	}

	return doc
}
