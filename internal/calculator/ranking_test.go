package calculator

import (
	"testing"

	"salesboard/internal/model"
)

func personWithPaid(id string, paid float64) model.Salesperson {
	return model.Salesperson{
		ID:      id,
		Name:    id,
		Records: []model.DailyRecord{{Day: 1, Paid: paid}},
	}
}

func TestRank_StableOnTies(t *testing.T) {
	people := []model.Salesperson{
		personWithPaid("idx0", 100),
		personWithPaid("idx1", 300),
		personWithPaid("idx2", 300),
		personWithPaid("idx3", 50),
	}

	ranked := Rank(people)
	want := []string{"idx1", "idx2", "idx0", "idx3"}
	if len(ranked) != len(want) {
		t.Fatalf("len=%d, want %d", len(ranked), len(want))
	}
	for i, id := range want {
		if ranked[i].ID != id {
			t.Fatalf("position %d: got %s, want %s", i, ranked[i].ID, id)
		}
		if ranked[i].Rank != i+1 {
			t.Fatalf("position %d: rank=%d", i, ranked[i].Rank)
		}
	}
}

func TestRank_Empty(t *testing.T) {
	if got := Rank(nil); len(got) != 0 {
		t.Fatalf("expected empty ranking, got %d", len(got))
	}
	if got := Podium(nil); len(got) != 0 {
		t.Fatalf("expected empty podium, got %d", len(got))
	}
}

func TestPodium_TopThree(t *testing.T) {
	people := []model.Salesperson{
		personWithPaid("a", 1),
		personWithPaid("b", 2),
		personWithPaid("c", 3),
		personWithPaid("d", 4),
	}
	podium := Podium(Rank(people))
	if len(podium) != 3 {
		t.Fatalf("podium len=%d, want 3", len(podium))
	}
	if podium[0].ID != "d" || podium[2].ID != "b" {
		t.Fatalf("unexpected podium: %s %s %s", podium[0].ID, podium[1].ID, podium[2].ID)
	}
}

func TestRank_DoesNotMutateInput(t *testing.T) {
	people := []model.Salesperson{personWithPaid("x", 1), personWithPaid("y", 2)}
	_ = Rank(people)
	if people[0].ID != "x" || people[1].ID != "y" {
		t.Fatalf("input reordered: %s %s", people[0].ID, people[1].ID)
	}
}
