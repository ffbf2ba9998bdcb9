// Package discovery derives the visible event subset and the comparison
// set from the full collection and the active filter criteria.
package discovery

import (
	"sort"

	"github.com/google/uuid"

	"github.com/zakiyahfaroo/HuskySync/internal/models/domain"
	"github.com/zakiyahfaroo/HuskySync/internal/schedule"
)

// Criteria is the active filter selection. An empty Date disables the
// date filter and an empty Tags list disables the tag filter.
type Criteria struct {
	Date string
	Tags []domain.Tag
}

// ComparisonResult summarizes a comparison set for side-by-side display.
type ComparisonResult struct {
	Events       []domain.Event
	CommonTags   []domain.Tag
	HasTimeClash bool
}

// Apply filters events down to the subset matching the criteria. The date
// filter is exact string equality, the tag filter passes events carrying
// at least one selected tag, and both compose by logical AND. The filter
// is stable over input order.
func Apply(events []domain.Event, c Criteria) []domain.Event {
	result := make([]domain.Event, 0, len(events))
	for _, e := range events {
		if c.Date != "" && e.Date != c.Date {
			continue
		}
		if len(c.Tags) > 0 && !hasAnyTag(e, c.Tags) {
			continue
		}
		result = append(result, e)
	}
	return result
}

// SelectForComparison returns the events whose id appears in ids,
// preserving the order of events rather than the order of ids. The ≤3
// selection cap is enforced by the caller.
func SelectForComparison(ids []uuid.UUID, events []domain.Event) []domain.Event {
	selected := make([]domain.Event, 0, len(ids))
	for _, e := range events {
		for _, id := range ids {
			if e.ID == id {
				selected = append(selected, e)
				break
			}
		}
	}
	return selected
}

// SortByStart returns a copy of events ordered by (Date, StartTime)
// ascending. Lexicographic comparison is safe for zero-padded ISO dates
// and 24-hour times; ties keep their relative input order.
func SortByStart(events []domain.Event) []domain.Event {
	sorted := make([]domain.Event, len(events))
	copy(sorted, events)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].Date != sorted[j].Date {
			return sorted[i].Date < sorted[j].Date
		}
		return sorted[i].StartTime < sorted[j].StartTime
	})
	return sorted
}

// Compare prepares a comparison set: the events themselves, the tags
// common to every member (ordered by the first event's tag order), and
// whether any two members overlap in time.
func Compare(events []domain.Event) ComparisonResult {
	result := ComparisonResult{
		Events:       events,
		CommonTags:   make([]domain.Tag, 0),
		HasTimeClash: schedule.AnyClash(events),
	}
	if len(events) == 0 {
		return result
	}
	for _, t := range events[0].Tags {
		shared := true
		for _, e := range events[1:] {
			if !e.HasTag(t) {
				shared = false
				break
			}
		}
		if shared {
			result.CommonTags = append(result.CommonTags, t)
		}
	}
	return result
}

func hasAnyTag(e domain.Event, tags []domain.Tag) bool {
	for _, t := range tags {
		if e.HasTag(t) {
			return true
		}
	}
	return false
}
