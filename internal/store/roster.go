package store

import (
	"context"
	"fmt"

	"github.com/merdeka-labs/penyata/internal/resolver"
)

// LoadRoster returns every legislator in stable id order. Callers treat the
// returned slice as a snapshot: a parse started before a roster update
// simply works against the older roster.
func (s *Store) LoadRoster(ctx context.Context) ([]resolver.Legislator, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, name, constituency, party
		FROM legislators
		ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("query legislators: %w", err)
	}
	defer rows.Close()

	var roster []resolver.Legislator
	for rows.Next() {
		var leg resolver.Legislator
		if err := rows.Scan(&leg.ID, &leg.Name, &leg.Constituency, &leg.Party); err != nil {
			return nil, fmt.Errorf("scan legislator: %w", err)
		}
		roster = append(roster, leg)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows error: %w", err)
	}
	return roster, nil
}

// UpsertLegislator writes one roster entry. The roster is reference data
// owned by an external loader; this exists for bootstrap and tests.
func (s *Store) UpsertLegislator(ctx context.Context, leg resolver.Legislator) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO legislators (id, name, constituency, party)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (id) DO UPDATE
		SET name = EXCLUDED.name, constituency = EXCLUDED.constituency, party = EXCLUDED.party`,
		leg.ID, leg.Name, leg.Constituency, leg.Party,
	)
	if err != nil {
		return fmt.Errorf("upsert legislator: %w", err)
	}
	return nil
}
