package hansard

import (
	"io"
	"log/slog"
	"strings"
	"testing"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

const oralQuestionBlock = `3. Tuan Ahmad Fadhli bin Shaari [Pasir Mas] minta Menteri Kesihatan
menyatakan kadar penularan denggi di seluruh negara. Butiran lanjut
mengikut negeri turut dipohon.`

func TestParseQuestions_OralQuestion(t *testing.T) {
	questions := ParseQuestions(discardLogger(), oralQuestionBlock, QuestionTypeOral)
	if len(questions) != 1 {
		t.Fatalf("expected 1 question, got %d", len(questions))
	}
	q := questions[0]

	if q.QuestionNumber != 3 {
		t.Errorf("QuestionNumber = %d, want 3", q.QuestionNumber)
	}
	if q.SponsorName != "Tuan Ahmad Fadhli bin Shaari" {
		t.Errorf("SponsorName = %q", q.SponsorName)
	}
	if q.SponsorConstituency != "Pasir Mas" {
		t.Errorf("SponsorConstituency = %q", q.SponsorConstituency)
	}
	if q.Ministry != "Menteri Kesihatan" {
		t.Errorf("Ministry = %q", q.Ministry)
	}
	if q.Topic != "kadar penularan denggi di seluruh negara" {
		t.Errorf("Topic = %q", q.Topic)
	}
	if q.QuestionType != QuestionTypeOral {
		t.Errorf("QuestionType = %q", q.QuestionType)
	}
	if q.AnswerStatus != AnswerStatusPending {
		t.Errorf("AnswerStatus = %q", q.AnswerStatus)
	}
	if q.RawText == "" {
		t.Error("RawText empty")
	}
}

func TestParseQuestions_WrittenAnswer(t *testing.T) {
	section := `7. Puan Siti Aminah binti Yusof [Kuala Nerus] minta Menteri Pendidikan
menyatakan bilangan sekolah daif yang masih beroperasi.

Jawapan: Sebanyak 312 buah sekolah daif masih beroperasi dan kerja-kerja
naik taraf sedang dijalankan secara berperingkat.`

	questions := ParseQuestions(discardLogger(), section, QuestionTypeWritten)
	if len(questions) != 1 {
		t.Fatalf("expected 1 question, got %d", len(questions))
	}
	q := questions[0]

	if q.AnswerStatus != AnswerStatusAnswered {
		t.Errorf("AnswerStatus = %q", q.AnswerStatus)
	}
	if !strings.HasPrefix(q.AnswerText, "Sebanyak 312") {
		t.Errorf("AnswerText = %q", q.AnswerText)
	}
	if strings.Contains(q.QuestionText, "Jawapan") {
		t.Errorf("answer leaked into question text: %q", q.QuestionText)
	}
}

func TestParseQuestions_MissingMinistrySentinel(t *testing.T) {
	section := `12. Datuk Lim Guan Cheng [Bukit Bendera] minta penjelasan lanjut
mengenai peruntukan pembangunan kawasan yang telah diluluskan tahun lalu.`

	questions := ParseQuestions(discardLogger(), section, QuestionTypeMinister)
	if len(questions) != 1 {
		t.Fatalf("expected 1 question, got %d", len(questions))
	}
	if questions[0].Ministry != UnknownMinistry {
		t.Errorf("Ministry = %q, want sentinel", questions[0].Ministry)
	}
}

func TestParseQuestions_SkipsUnparsableBlock(t *testing.T) {
	// the middle block has neither a request cue nor a sponsor reference,
	// so it is skipped without aborting the batch
	section := strings.Join([]string{
		"1. Tuan Ahmad [Kota Baru] minta Menteri Kewangan menyatakan jumlah hutang negara semasa",
		"berserta unjuran bagi tempoh lima tahun akan datang.",
		"2. catatan prosedur yang tidak mengandungi sebarang permintaan mahupun penama tertentu",
		"dan tidak membawa maksud soalan dalam apa jua bentuk sekalipun.",
		"3. Puan Siti [Kuala Nerus] minta Menteri Pendidikan menyatakan bilangan guru sandaran",
		"yang masih belum diserap ke jawatan tetap sehingga kini.",
	}, "\n")

	questions := ParseQuestions(discardLogger(), section, QuestionTypeOral)
	if len(questions) != 2 {
		t.Fatalf("expected 2 questions, got %d", len(questions))
	}
	if questions[0].QuestionNumber != 1 || questions[1].QuestionNumber != 3 {
		t.Errorf("question numbers = %d, %d", questions[0].QuestionNumber, questions[1].QuestionNumber)
	}
}

func TestParseQuestions_EmptySection(t *testing.T) {
	if qs := ParseQuestions(discardLogger(), "", QuestionTypeOral); qs != nil {
		t.Errorf("expected no questions, got %d", len(qs))
	}
}
