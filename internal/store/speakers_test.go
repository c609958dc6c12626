package store

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"

	"github.com/merdeka-labs/penyata/internal/escalation"
	"github.com/merdeka-labs/penyata/internal/resolver"
)

func newMockStore(t *testing.T) (*Store, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return New(db), mock
}

func sampleSpeaker() escalation.UnmatchedSpeaker {
	return escalation.UnmatchedSpeaker{
		ID:           uuid.New(),
		DocumentID:   uuid.New(),
		Name:         "Zulkifli bin Omar",
		Constituency: "Sepang",
		Reason:       resolver.ReasonNoNameMatch,
		RawHeader:    "Tuan Zulkifli bin Omar [Sepang]",
		CreatedAt:    time.Now().UTC().Truncate(time.Microsecond),
	}
}

func TestInsertUnmatchedSpeaker(t *testing.T) {
	s, mock := newMockStore(t)
	sp := sampleSpeaker()

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO unmatched_speakers")).
		WithArgs(sp.ID, sp.DocumentID, sp.Name, sp.Constituency, string(sp.Reason), sp.RawHeader, sp.CreatedAt).
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := s.InsertUnmatchedSpeaker(context.Background(), sp); err != nil {
		t.Fatalf("InsertUnmatchedSpeaker: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Error(err)
	}
}

func speakerRows(sp escalation.UnmatchedSpeaker) *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"id", "document_id", "name", "constituency", "reason", "raw_header", "is_mapped", "mapped_to", "created_at",
	}).AddRow(
		sp.ID.String(), sp.DocumentID.String(), sp.Name, sp.Constituency,
		string(sp.Reason), sp.RawHeader, sp.IsMapped, nil, sp.CreatedAt,
	)
}

func TestListUnmatchedSpeakers(t *testing.T) {
	s, mock := newMockStore(t)
	sp := sampleSpeaker()

	mock.ExpectQuery(regexp.QuoteMeta("FROM unmatched_speakers")).
		WithArgs(nil, true).
		WillReturnRows(speakerRows(sp))

	got, err := s.ListUnmatchedSpeakers(context.Background(), nil, true)
	if err != nil {
		t.Fatalf("ListUnmatchedSpeakers: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("got %d speakers", len(got))
	}
	if got[0].ID != sp.ID || got[0].Reason != resolver.ReasonNoNameMatch || got[0].MappedTo != nil {
		t.Errorf("speaker = %+v", got[0])
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Error(err)
	}
}

func TestGetUnmatchedSpeaker_NotFound(t *testing.T) {
	s, mock := newMockStore(t)
	id := uuid.New()

	mock.ExpectQuery(regexp.QuoteMeta("FROM unmatched_speakers")).
		WithArgs(id).
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "document_id", "name", "constituency", "reason", "raw_header", "is_mapped", "mapped_to", "created_at",
		}))

	_, err := s.GetUnmatchedSpeaker(context.Background(), id)
	if !errors.Is(err, escalation.ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}

func sampleMapping() escalation.SpeakerMapping {
	return escalation.SpeakerMapping{
		ID:                 uuid.New(),
		UnmatchedSpeakerID: uuid.New(),
		LegislatorID:       uuid.New(),
		Confidence:         0.9,
		Notes:              "manual review",
		CreatedAt:          time.Now().UTC().Truncate(time.Microsecond),
	}
}

func TestConfirmMapping(t *testing.T) {
	s, mock := newMockStore(t)
	m := sampleMapping()

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("UPDATE unmatched_speakers")).
		WithArgs(m.LegislatorID, m.UnmatchedSpeakerID).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO speaker_mappings")).
		WithArgs(m.ID, m.UnmatchedSpeakerID, m.LegislatorID, m.Confidence, m.Notes, m.CreatedAt).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	if err := s.ConfirmMapping(context.Background(), m); err != nil {
		t.Fatalf("ConfirmMapping: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Error(err)
	}
}

func TestConfirmMapping_AlreadyMapped(t *testing.T) {
	s, mock := newMockStore(t)
	m := sampleMapping()

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("UPDATE unmatched_speakers")).
		WithArgs(m.LegislatorID, m.UnmatchedSpeakerID).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery(regexp.QuoteMeta("SELECT EXISTS")).
		WithArgs(m.UnmatchedSpeakerID).
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))
	mock.ExpectRollback()

	err := s.ConfirmMapping(context.Background(), m)
	if !errors.Is(err, escalation.ErrAlreadyMapped) {
		t.Fatalf("err = %v, want ErrAlreadyMapped", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Error(err)
	}
}

func TestConfirmMapping_SpeakerNotFound(t *testing.T) {
	s, mock := newMockStore(t)
	m := sampleMapping()

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("UPDATE unmatched_speakers")).
		WithArgs(m.LegislatorID, m.UnmatchedSpeakerID).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery(regexp.QuoteMeta("SELECT EXISTS")).
		WithArgs(m.UnmatchedSpeakerID).
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))
	mock.ExpectRollback()

	err := s.ConfirmMapping(context.Background(), m)
	if !errors.Is(err, escalation.ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}

func TestLoadRoster(t *testing.T) {
	s, mock := newMockStore(t)
	id1 := uuid.New()
	id2 := uuid.New()

	mock.ExpectQuery(regexp.QuoteMeta("FROM legislators")).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "constituency", "party"}).
			AddRow(id1.String(), "Ahmad Fadhli bin Shaari", "Pasir Mas", "PN").
			AddRow(id2.String(), "Lim Guan Cheng", "Bukit Bendera", "PH"))

	roster, err := s.LoadRoster(context.Background())
	if err != nil {
		t.Fatalf("LoadRoster: %v", err)
	}
	if len(roster) != 2 {
		t.Fatalf("got %d legislators", len(roster))
	}
	if roster[0].ID != id1 || roster[0].Constituency != "Pasir Mas" {
		t.Errorf("roster[0] = %+v", roster[0])
	}
}

func TestUpsertLegislator(t *testing.T) {
	s, mock := newMockStore(t)
	leg := resolver.Legislator{ID: uuid.New(), Name: "Ahmad Fadhli bin Shaari", Constituency: "Pasir Mas", Party: "PN"}

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO legislators")).
		WithArgs(leg.ID, leg.Name, leg.Constituency, leg.Party).
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := s.UpsertLegislator(context.Background(), leg); err != nil {
		t.Fatalf("UpsertLegislator: %v", err)
	}
}
