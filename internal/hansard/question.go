package hansard

import (
	"errors"
	"log/slog"
	"regexp"
	"strconv"
	"strings"

	"github.com/merdeka-labs/penyata/internal/resolver"
)

var (
	leadingNumber = regexp.MustCompile(`^\s*(\d+)\.\s`)
	// "minta Menteri Kesihatan menyatakan ..." — the labelled ministry form
	ministryLabel    = regexp.MustCompile(`(?i)minta\s+((?:Perdana\s+)?Menteri(?:\s+[^\n]*?)?)\s+menyatakan`)
	ministryFallback = regexp.MustCompile(`(?i)\b((?:Perdana\s+)?Menteri(?:\s+[A-Z][\p{L}']*)+)`)
	requestCue       = regexp.MustCompile(`(?i)\bminta\b`)
	answerLabel      = regexp.MustCompile(`(?i)\bJawapan\s*:`)
)

var errUnparsableBlock = errors.New("block matches no known entry shape")

// ParseQuestions extracts a typed question from each block of a bounded
// question section. A block that fits no known shape is logged and skipped;
// it never aborts the rest of the batch.
func ParseQuestions(logger *slog.Logger, section string, qtype QuestionType) []ParsedQuestion {
	var questions []ParsedQuestion
	for i, block := range SplitEntries(section) {
		q, err := parseQuestionBlock(block, qtype)
		if err != nil {
			logger.Warn("skipping unparsable question block", "index", i, "error", err)
			continue
		}
		questions = append(questions, q)
	}
	return questions
}

func parseQuestionBlock(block string, qtype QuestionType) (ParsedQuestion, error) {
	q := ParsedQuestion{
		Ministry:     UnknownMinistry,
		Topic:        UnknownField,
		AnswerStatus: AnswerStatusUnknown,
		QuestionType: qtype,
		RawText:      block,
	}

	if m := leadingNumber.FindStringSubmatch(block); m != nil {
		q.QuestionNumber, _ = strconv.Atoi(m[1])
	}

	if name, seat, ok := resolver.ExtractSponsor(block); ok {
		q.SponsorName = name
		q.SponsorConstituency = seat
	}

	if m := ministryLabel.FindStringSubmatch(block); m != nil {
		q.Ministry = strings.TrimSpace(m[1])
	} else if m := ministryFallback.FindStringSubmatch(block); m != nil {
		q.Ministry = strings.TrimSpace(m[1])
	}

	cue := requestCue.FindStringIndex(block)
	answer := answerLabel.FindStringIndex(block)

	if cue == nil && q.SponsorName == "" {
		return ParsedQuestion{}, errUnparsableBlock
	}

	if cue != nil {
		end := len(block)
		if answer != nil && answer[0] > cue[0] {
			end = answer[0]
		}
		q.QuestionText = strings.TrimSpace(block[cue[0]:end])
		q.Topic = questionTopic(q.QuestionText)
	}

	if answer != nil {
		q.AnswerText = strings.TrimSpace(block[answer[1]:])
		q.AnswerStatus = AnswerStatusAnswered
	} else if q.QuestionText != "" {
		q.AnswerStatus = AnswerStatusPending
	}

	return q, nil
}

// questionTopic condenses the clause after "menyatakan" into a short topic
// line; the raw text keeps the full wording.
func questionTopic(questionText string) string {
	_, after, found := strings.Cut(questionText, "menyatakan")
	if !found {
		return UnknownField
	}
	topic := strings.TrimSpace(strings.TrimLeft(after, ",:; "))
	if topic == "" {
		return UnknownField
	}
	if idx := strings.IndexAny(topic, ".\n"); idx > 0 {
		topic = topic[:idx]
	}
	return strings.TrimSpace(topic)
}
