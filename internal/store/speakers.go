package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/merdeka-labs/penyata/internal/escalation"
	"github.com/merdeka-labs/penyata/internal/resolver"
)

// InsertUnmatchedSpeaker persists one fresh escalation.
func (s *Store) InsertUnmatchedSpeaker(ctx context.Context, sp escalation.UnmatchedSpeaker) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO unmatched_speakers (id, document_id, name, constituency, reason, raw_header, is_mapped, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, FALSE, $7)`,
		sp.ID, sp.DocumentID, sp.Name, sp.Constituency, string(sp.Reason), sp.RawHeader, sp.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert unmatched speaker: %w", err)
	}
	return nil
}

// ListUnmatchedSpeakers returns escalations, newest first, optionally
// scoped to one document and to those not yet mapped.
func (s *Store) ListUnmatchedSpeakers(ctx context.Context, documentID *uuid.UUID, unmappedOnly bool) ([]escalation.UnmatchedSpeaker, error) {
	query := `
		SELECT id, document_id, name, constituency, reason, raw_header, is_mapped, mapped_to, created_at
		FROM unmatched_speakers
		WHERE ($1::uuid IS NULL OR document_id = $1)
		  AND ($2::boolean = FALSE OR is_mapped = FALSE)
		ORDER BY created_at DESC`

	rows, err := s.db.QueryContext(ctx, query, documentID, unmappedOnly)
	if err != nil {
		return nil, fmt.Errorf("query unmatched speakers: %w", err)
	}
	defer rows.Close()

	var speakers []escalation.UnmatchedSpeaker
	for rows.Next() {
		sp, err := scanUnmatchedSpeaker(rows)
		if err != nil {
			return nil, err
		}
		speakers = append(speakers, sp)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows error: %w", err)
	}
	return speakers, nil
}

// GetUnmatchedSpeaker fetches one escalation by id.
func (s *Store) GetUnmatchedSpeaker(ctx context.Context, id uuid.UUID) (escalation.UnmatchedSpeaker, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, document_id, name, constituency, reason, raw_header, is_mapped, mapped_to, created_at
		FROM unmatched_speakers
		WHERE id = $1`, id)

	sp, err := scanUnmatchedSpeaker(row)
	if errors.Is(err, sql.ErrNoRows) {
		return escalation.UnmatchedSpeaker{}, escalation.ErrNotFound
	}
	return sp, err
}

// ConfirmMapping records a human-confirmed mapping and flips the speaker to
// mapped in one transaction. The conditional UPDATE is the serialization
// point: under concurrent confirmations exactly one transaction sees an
// unmapped row, every other attempt gets ErrAlreadyMapped.
func (s *Store) ConfirmMapping(ctx context.Context, m escalation.SpeakerMapping) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	res, err := tx.ExecContext(ctx, `
		UPDATE unmatched_speakers
		SET is_mapped = TRUE, mapped_to = $1
		WHERE id = $2 AND is_mapped = FALSE`,
		m.LegislatorID, m.UnmatchedSpeakerID,
	)
	if err != nil {
		return fmt.Errorf("mark speaker mapped: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if affected == 0 {
		// Either the id does not exist or the transition already happened.
		var exists bool
		if err := tx.QueryRowContext(ctx,
			`SELECT EXISTS (SELECT 1 FROM unmatched_speakers WHERE id = $1)`,
			m.UnmatchedSpeakerID,
		).Scan(&exists); err != nil {
			return fmt.Errorf("check speaker exists: %w", err)
		}
		if !exists {
			return escalation.ErrNotFound
		}
		return escalation.ErrAlreadyMapped
	}

	_, err = tx.ExecContext(ctx, `
		INSERT INTO speaker_mappings (id, unmatched_speaker_id, legislator_id, confidence, notes, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)`,
		m.ID, m.UnmatchedSpeakerID, m.LegislatorID, m.Confidence, m.Notes, m.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert mapping: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanUnmatchedSpeaker(row rowScanner) (escalation.UnmatchedSpeaker, error) {
	var sp escalation.UnmatchedSpeaker
	var reason string
	var mappedTo uuid.NullUUID
	if err := row.Scan(&sp.ID, &sp.DocumentID, &sp.Name, &sp.Constituency, &reason, &sp.RawHeader, &sp.IsMapped, &mappedTo, &sp.CreatedAt); err != nil {
		return escalation.UnmatchedSpeaker{}, err
	}
	sp.Reason = resolver.FailureReason(reason)
	if mappedTo.Valid {
		id := mappedTo.UUID
		sp.MappedTo = &id
	}
	return sp, nil
}
