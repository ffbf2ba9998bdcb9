// Package schedule classifies temporal relationships between events.
// Conflicts are advisory only: nothing here blocks creation of an
// overlapping event, the results just carry a severity hint.
package schedule

import (
	"strconv"
	"strings"

	"github.com/zakiyahfaroo/HuskySync/internal/models/domain"
)

// ConflictRecord describes one existing event clashing with a candidate.
// AudienceClash marks a conflict where both events also compete for the
// same audience via at least one shared tag.
type ConflictRecord struct {
	Event         domain.Event
	SharedTags    []domain.Tag
	AudienceClash bool
}

// minutesOfDay converts a zero-padded 24-hour "HH:MM" string to minutes
// since midnight. Malformed input maps to -1 so comparisons against it
// stay deterministic.
func minutesOfDay(s string) int {
	hh, mm, ok := strings.Cut(s, ":")
	if !ok {
		return -1
	}
	h, err := strconv.Atoi(hh)
	if err != nil {
		return -1
	}
	m, err := strconv.Atoi(mm)
	if err != nil {
		return -1
	}
	if h < 0 || h > 23 || m < 0 || m > 59 {
		return -1
	}
	return h*60 + m
}

// Overlaps reports whether the half-open intervals [StartTime, EndTime)
// of a and b intersect on the same calendar date. Touching intervals,
// where one ends exactly when the other starts, do not overlap.
func Overlaps(a, b domain.Event) bool {
	if a.Date != b.Date {
		return false
	}
	return minutesOfDay(a.StartTime) < minutesOfDay(b.EndTime) &&
		minutesOfDay(a.EndTime) > minutesOfDay(b.StartTime)
}

// Conflicts returns a record for every member of existing that overlaps
// the candidate, in the input order of existing. Shared tags follow the
// candidate's tag order. Pure function over its inputs.
func Conflicts(candidate domain.Event, existing []domain.Event) []ConflictRecord {
	records := make([]ConflictRecord, 0)
	for _, e := range existing {
		if !Overlaps(candidate, e) {
			continue
		}
		shared := sharedTags(candidate, e)
		records = append(records, ConflictRecord{
			Event:         e,
			SharedTags:    shared,
			AudienceClash: len(shared) > 0,
		})
	}
	return records
}

// AnyClash reports whether any two distinct members of events overlap.
// All-pairs scan; callers keep the set small (the UI caps it at 3) but
// the predicate itself is not arity-limited.
func AnyClash(events []domain.Event) bool {
	for i := range events {
		for j := range events {
			if i != j && Overlaps(events[i], events[j]) {
				return true
			}
		}
	}
	return false
}

func sharedTags(candidate, other domain.Event) []domain.Tag {
	shared := make([]domain.Tag, 0)
	for _, t := range candidate.Tags {
		if other.HasTag(t) {
			shared = append(shared, t)
		}
	}
	return shared
}
