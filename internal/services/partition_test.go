package services

import (
	"errors"
	"testing"

	"meeting-itinerary-service/internal/domain"
)

func TestPartitionCandidates(t *testing.T) {
	candidates := []*domain.MeetingCandidate{
		{ID: "flex-1"},
		{ID: "late", StartClock: "14:00", EndClock: "15:00"},
		{ID: "early", StartClock: "09:00", EndClock: "10:00"},
		{ID: "flex-2"},
	}

	fixed, flexible, err := PartitionCandidates(candidates)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(fixed) != 2 {
		t.Fatalf("expected 2 fixed, got %d", len(fixed))
	}
	if fixed[0].Candidate.ID != "early" || fixed[1].Candidate.ID != "late" {
		t.Errorf("fixed order = %q, %q; want early, late", fixed[0].Candidate.ID, fixed[1].Candidate.ID)
	}
	if fixed[0].Window.Start != 540 || fixed[0].Window.End != 600 {
		t.Errorf("early window = %+v, want [540, 600)", fixed[0].Window)
	}

	if len(flexible) != 2 {
		t.Fatalf("expected 2 flexible, got %d", len(flexible))
	}
	if flexible[0].ID != "flex-1" || flexible[1].ID != "flex-2" {
		t.Errorf("flexible order = %q, %q; want input order", flexible[0].ID, flexible[1].ID)
	}
}

func TestPartitionCandidatesStableOnEqualStarts(t *testing.T) {
	candidates := []*domain.MeetingCandidate{
		{ID: "first", StartClock: "10:00", EndClock: "10:30"},
		{ID: "second", StartClock: "10:00", EndClock: "11:00"},
		{ID: "third", StartClock: "10:00", EndClock: "10:15"},
	}

	fixed, _, err := PartitionCandidates(candidates)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []string{"first", "second", "third"}
	for i, w := range want {
		if fixed[i].Candidate.ID != w {
			t.Errorf("fixed[%d] = %q, want %q", i, fixed[i].Candidate.ID, w)
		}
	}
}

func TestPartitionCandidatesBadClock(t *testing.T) {
	candidates := []*domain.MeetingCandidate{
		{ID: "broken", StartClock: "25:00", EndClock: "26:00"},
	}

	_, _, err := PartitionCandidates(candidates)
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if !errors.Is(err, domain.ErrInvalidTimeFormat) {
		t.Errorf("error = %v, want ErrInvalidTimeFormat", err)
	}
}

func TestPartitionCandidatesHalfWindowIsFlexible(t *testing.T) {
	// Only one of start/end declared: no concrete window, so flexible.
	candidates := []*domain.MeetingCandidate{
		{ID: "half", StartClock: "10:00"},
	}

	fixed, flexible, err := PartitionCandidates(candidates)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(fixed) != 0 || len(flexible) != 1 {
		t.Errorf("got %d fixed, %d flexible; want 0, 1", len(fixed), len(flexible))
	}
}
