package discovery

import (
	"reflect"
	"testing"

	"github.com/google/uuid"

	"github.com/zakiyahfaroo/HuskySync/internal/models/domain"
)

func fixture() []domain.Event {
	return []domain.Event{
		{
			ID:        uuid.MustParse("00000000-0000-0000-0000-000000000001"),
			Title:     "Husky Coding Mixer",
			Date:      "2024-06-01",
			StartTime: "18:00",
			EndTime:   "20:00",
			Tags:      []domain.Tag{domain.TagFreeFood, domain.TagSocial, domain.TagCareer},
		},
		{
			ID:        uuid.MustParse("00000000-0000-0000-0000-000000000002"),
			Title:     "Resume Workshop",
			Date:      "2024-06-01",
			StartTime: "17:30",
			EndTime:   "19:00",
			Tags:      []domain.Tag{domain.TagCareer, domain.TagAcademic, domain.TagRSVPRequired},
		},
		{
			ID:        uuid.MustParse("00000000-0000-0000-0000-000000000003"),
			Title:     "Cherry Blossom Picnic",
			Date:      "2024-06-03",
			StartTime: "12:00",
			EndTime:   "15:00",
			Tags:      []domain.Tag{domain.TagFreeFood, domain.TagSocial, domain.TagOutdoors},
		},
		{
			ID:        uuid.MustParse("00000000-0000-0000-0000-000000000004"),
			Title:     "Gaming Night",
			Date:      "2024-06-04",
			StartTime: "19:00",
			EndTime:   "23:00",
			Tags:      []domain.Tag{domain.TagFreeMerch, domain.TagGames, domain.TagSocial},
		},
	}
}

func titles(events []domain.Event) []string {
	out := make([]string, len(events))
	for i, e := range events {
		out[i] = e.Title
	}
	return out
}

func TestApply(t *testing.T) {
	t.Parallel()

	events := fixture()

	t.Run("empty criteria passes everything unchanged", func(t *testing.T) {
		got := Apply(events, Criteria{})
		if !reflect.DeepEqual(titles(got), titles(events)) {
			t.Fatalf("expected input order preserved, got %v", titles(got))
		}
	})

	t.Run("empty tag list is a no-op filter", func(t *testing.T) {
		got := Apply(events, Criteria{Tags: []domain.Tag{}})
		if len(got) != len(events) {
			t.Fatalf("expected %d events, got %d", len(events), len(got))
		}
	})

	t.Run("date filter matches exactly", func(t *testing.T) {
		got := Apply(events, Criteria{Date: "2024-06-01"})
		want := []string{"Husky Coding Mixer", "Resume Workshop"}
		if !reflect.DeepEqual(titles(got), want) {
			t.Fatalf("expected %v, got %v", want, titles(got))
		}
	})

	t.Run("tag filter is OR across selected tags", func(t *testing.T) {
		got := Apply(events, Criteria{Tags: []domain.Tag{domain.TagGames, domain.TagOutdoors}})
		want := []string{"Cherry Blossom Picnic", "Gaming Night"}
		if !reflect.DeepEqual(titles(got), want) {
			t.Fatalf("expected %v, got %v", want, titles(got))
		}
	})

	t.Run("date and tag filters compose by AND", func(t *testing.T) {
		got := Apply(events, Criteria{
			Date: "2024-06-01",
			Tags: []domain.Tag{domain.TagFreeFood},
		})
		want := []string{"Husky Coding Mixer"}
		if !reflect.DeepEqual(titles(got), want) {
			t.Fatalf("expected %v, got %v", want, titles(got))
		}
	})

	t.Run("no matches yields empty, not nil panic", func(t *testing.T) {
		got := Apply(events, Criteria{Date: "2030-01-01"})
		if len(got) != 0 {
			t.Fatalf("expected empty result, got %v", titles(got))
		}
	})
}

func TestSelectForComparison(t *testing.T) {
	t.Parallel()

	events := fixture()

	t.Run("preserves collection order, not id order", func(t *testing.T) {
		ids := []uuid.UUID{events[3].ID, events[0].ID}
		got := SelectForComparison(ids, events)
		want := []string{"Husky Coding Mixer", "Gaming Night"}
		if !reflect.DeepEqual(titles(got), want) {
			t.Fatalf("expected %v, got %v", want, titles(got))
		}
	})

	t.Run("unknown ids are ignored", func(t *testing.T) {
		ids := []uuid.UUID{uuid.New(), events[1].ID}
		got := SelectForComparison(ids, events)
		if len(got) != 1 || got[0].Title != "Resume Workshop" {
			t.Fatalf("expected only Resume Workshop, got %v", titles(got))
		}
	})
}

func TestSortByStart(t *testing.T) {
	t.Parallel()

	events := fixture()

	t.Run("orders by date then start time", func(t *testing.T) {
		got := SortByStart(events)
		want := []string{"Resume Workshop", "Husky Coding Mixer", "Cherry Blossom Picnic", "Gaming Night"}
		if !reflect.DeepEqual(titles(got), want) {
			t.Fatalf("expected %v, got %v", want, titles(got))
		}
	})

	t.Run("idempotent on a sorted list", func(t *testing.T) {
		once := SortByStart(events)
		twice := SortByStart(once)
		if !reflect.DeepEqual(titles(once), titles(twice)) {
			t.Fatalf("expected %v, got %v", titles(once), titles(twice))
		}
	})

	t.Run("ties keep relative input order", func(t *testing.T) {
		a := domain.Event{Title: "a", Date: "2024-06-01", StartTime: "10:00"}
		b := domain.Event{Title: "b", Date: "2024-06-01", StartTime: "10:00"}
		got := SortByStart([]domain.Event{a, b})
		if got[0].Title != "a" || got[1].Title != "b" {
			t.Fatalf("expected stable tie order, got %v", titles(got))
		}
	})

	t.Run("does not mutate its input", func(t *testing.T) {
		in := fixture()
		_ = SortByStart(in)
		if !reflect.DeepEqual(titles(in), titles(fixture())) {
			t.Fatalf("input mutated: %v", titles(in))
		}
	})
}

func TestCompare(t *testing.T) {
	t.Parallel()

	events := fixture()

	t.Run("common tags in first event order", func(t *testing.T) {
		got := Compare([]domain.Event{events[0], events[3]})
		want := []domain.Tag{domain.TagSocial}
		if !reflect.DeepEqual(got.CommonTags, want) {
			t.Fatalf("expected %v, got %v", want, got.CommonTags)
		}
	})

	t.Run("detects time clash inside the set", func(t *testing.T) {
		got := Compare([]domain.Event{events[0], events[1]})
		if !got.HasTimeClash {
			t.Fatalf("expected time clash between mixer and workshop")
		}
	})

	t.Run("disjoint set has no clash", func(t *testing.T) {
		got := Compare([]domain.Event{events[2], events[3]})
		if got.HasTimeClash {
			t.Fatalf("expected no clash")
		}
	})

	t.Run("empty set", func(t *testing.T) {
		got := Compare(nil)
		if got.HasTimeClash || len(got.CommonTags) != 0 {
			t.Fatalf("expected empty result, got %+v", got)
		}
	})
}
