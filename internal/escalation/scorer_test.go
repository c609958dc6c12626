package escalation

import (
	"math"
	"testing"

	"github.com/google/uuid"

	"github.com/merdeka-labs/penyata/internal/resolver"
)

func scorerRoster() []resolver.Legislator {
	return []resolver.Legislator{
		{ID: uuid.MustParse("00000000-0000-0000-0000-000000000001"), Name: "Ahmad Fadhli bin Shaari", Constituency: "Pasir Mas"},
		{ID: uuid.MustParse("00000000-0000-0000-0000-000000000002"), Name: "Ahmad Karim bin Hassan", Constituency: "Machang"},
		{ID: uuid.MustParse("00000000-0000-0000-0000-000000000003"), Name: "Lim Guan Cheng", Constituency: "Bukit Bendera"},
	}
}

func TestScore_ExactNameWithConstituency(t *testing.T) {
	score, reason := Score("Ahmad Fadhli bin Shaari", "Pasir Mas", scorerRoster()[0])
	if math.Abs(score-1.3) > 1e-9 {
		t.Errorf("score = %v, want 1.3", score)
	}
	if reason != "exact name match, constituency match" {
		t.Errorf("reason = %q", reason)
	}
}

func TestScore_SubstringOnly(t *testing.T) {
	score, reason := Score("Ahmad Fadhli", "", scorerRoster()[0])
	if score != 0.4 {
		t.Errorf("score = %v, want 0.4", score)
	}
	if reason != "partial name match" {
		t.Errorf("reason = %q", reason)
	}
}

func TestScore_ConstituencyOnly(t *testing.T) {
	score, reason := Score("Zulkifli bin Omar", "Pasir Mas", scorerRoster()[0])
	if score != 0.3 {
		t.Errorf("score = %v, want 0.3", score)
	}
	if reason != "constituency match" {
		t.Errorf("reason = %q", reason)
	}
}

func TestScore_NoOverlap(t *testing.T) {
	score, reason := Score("Zulkifli bin Omar", "Sepang", scorerRoster()[0])
	if score != 0 {
		t.Errorf("score = %v, want 0", score)
	}
	if reason != "no overlap" {
		t.Errorf("reason = %q", reason)
	}
}

func TestRank_OrderAndLimit(t *testing.T) {
	got := Rank("Ahmad", "Pasir Mas", scorerRoster(), 5)
	if len(got) != 2 {
		t.Fatalf("got %d suggestions", len(got))
	}
	// 0.4 + 0.3 beats the bare substring match on the other Ahmad
	if got[0].Legislator.Constituency != "Pasir Mas" {
		t.Errorf("top suggestion = %+v", got[0])
	}
	if got[0].Score <= got[1].Score {
		t.Errorf("scores not descending: %v, %v", got[0].Score, got[1].Score)
	}

	if top := Rank("Ahmad", "Pasir Mas", scorerRoster(), 1); len(top) != 1 {
		t.Errorf("limit not applied: %d", len(top))
	}
}

func TestRank_TiesKeepRosterOrder(t *testing.T) {
	got := Rank("Ahmad", "", scorerRoster(), 5)
	if len(got) != 2 {
		t.Fatalf("got %d suggestions", len(got))
	}
	if got[0].Legislator.Constituency != "Pasir Mas" || got[1].Legislator.Constituency != "Machang" {
		t.Errorf("tie order = %q, %q", got[0].Legislator.Constituency, got[1].Legislator.Constituency)
	}
}

func TestRank_ZeroScoresExcluded(t *testing.T) {
	if got := Rank("Zulkifli bin Omar", "Sepang", scorerRoster(), 5); len(got) != 0 {
		t.Errorf("got %d suggestions, want none", len(got))
	}
}
