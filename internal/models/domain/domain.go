package domain

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
)

// ErrEventNotFound is returned when an event id has no match in the collection.
var ErrEventNotFound = errors.New("event not found")

// Tag is one label from the closed set of event categories.
type Tag string

const (
	TagFreeFood     Tag = "Free Food"
	TagFreeMerch    Tag = "Free Merch"
	TagRSVPRequired Tag = "RSVP Required"
	TagCareer       Tag = "Career"
	TagSocial       Tag = "Social"
	TagAcademic     Tag = "Academic"
	TagOutdoors     Tag = "Outdoors"
	TagGames        Tag = "Games"
)

// AllTags lists every tag in display order.
var AllTags = []Tag{
	TagFreeFood,
	TagFreeMerch,
	TagRSVPRequired,
	TagCareer,
	TagSocial,
	TagAcademic,
	TagOutdoors,
	TagGames,
}

func (t Tag) String() string {
	return string(t)
}

// IsValid reports whether t belongs to the closed tag set.
func (t Tag) IsValid() bool {
	switch t {
	case TagFreeFood, TagFreeMerch, TagRSVPRequired, TagCareer,
		TagSocial, TagAcademic, TagOutdoors, TagGames:
		return true
	default:
		return false
	}
}

// ParseTag converts a raw label into a Tag.
func ParseTag(s string) (Tag, error) {
	t := Tag(s)
	if !t.IsValid() {
		return "", fmt.Errorf("unknown tag: %q", s)
	}
	return t, nil
}

// Coordinates is a point on the campus map in decimal degrees.
type Coordinates struct {
	Lat float64
	Lng float64
}

func (c Coordinates) IsZero() bool {
	return c.Lat == 0 && c.Lng == 0
}

// Event is the domain model of a campus happening.
//
// Date is ISO "YYYY-MM-DD" and StartTime/EndTime are zero-padded 24-hour
// "HH:MM". The triple defines the half-open interval [StartTime, EndTime)
// on that calendar date; cross-midnight events are not modeled. StartTime
// preceding EndTime is not validated.
type Event struct {
	ID          uuid.UUID
	Title       string
	Organizer   string
	Date        string
	StartTime   string
	EndTime     string
	Location    string
	Coordinates Coordinates
	Description string
	Tags        []Tag
	ImageURL    string
}

// HasTag reports whether the event carries the given tag.
func (e Event) HasTag(tag Tag) bool {
	for _, t := range e.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

// EventDraft is the planner form state before an event is published.
// Same field semantics as Event, minus identity and coordinates.
type EventDraft struct {
	Title       string
	Organizer   string
	Date        string
	StartTime   string
	EndTime     string
	Location    string
	Description string
	Tags        []Tag
}

// Candidate builds the transient event used for conflict classification.
func (d EventDraft) Candidate() Event {
	return Event{
		Title:     d.Title,
		Organizer: d.Organizer,
		Date:      d.Date,
		StartTime: d.StartTime,
		EndTime:   d.EndTime,
		Tags:      d.Tags,
	}
}
