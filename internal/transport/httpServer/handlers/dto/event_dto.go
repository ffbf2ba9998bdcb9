package dto

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/zakiyahfaroo/HuskySync/internal/geo"
	"github.com/zakiyahfaroo/HuskySync/internal/models/domain"
	"github.com/zakiyahfaroo/HuskySync/internal/schedule"
)

// CoordinatesDTO mirrors domain.Coordinates on the wire.
type CoordinatesDTO struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// EventResponse is the wire shape of an event. DistanceMiles is present
// when the caller supplied a viewer coordinate.
type EventResponse struct {
	ID            uuid.UUID      `json:"id"`
	Title         string         `json:"title"`
	Organizer     string         `json:"organizer"`
	Date          string         `json:"date"`
	StartTime     string         `json:"start_time"`
	EndTime       string         `json:"end_time"`
	Location      string         `json:"location"`
	Coordinates   CoordinatesDTO `json:"coordinates"`
	Description   string         `json:"description"`
	Tags          []string       `json:"tags"`
	ImageURL      string         `json:"image_url"`
	DistanceMiles *float64       `json:"distance_miles,omitempty"`
}

// CreateEventRequest is the body of POST /events. All free-text fields
// are required; only formats are validated, not semantics. An end time
// before the start time is accepted.
type CreateEventRequest struct {
	Title       string          `json:"title"`
	Organizer   string          `json:"organizer"`
	Date        string          `json:"date"`
	StartTime   string          `json:"start_time"`
	EndTime     string          `json:"end_time"`
	Location    string          `json:"location"`
	Description string          `json:"description"`
	Tags        []string        `json:"tags"`
	Coordinates *CoordinatesDTO `json:"coordinates,omitempty"`
	ImageURL    string          `json:"image_url,omitempty"`
}

// Validate checks required fields and formats.
func (r CreateEventRequest) Validate() error {
	for name, v := range map[string]string{
		"title":      r.Title,
		"organizer":  r.Organizer,
		"date":       r.Date,
		"start_time": r.StartTime,
		"end_time":   r.EndTime,
		"location":   r.Location,
	} {
		if v == "" {
			return fmt.Errorf("%s is required", name)
		}
	}
	if err := validateDate(r.Date); err != nil {
		return err
	}
	if err := validateClock("start_time", r.StartTime); err != nil {
		return err
	}
	if err := validateClock("end_time", r.EndTime); err != nil {
		return err
	}
	_, err := ParseTags(r.Tags)
	return err
}

// MapCreateRequestToDomain converts a validated request into a domain
// event. Identity and coordinate defaults are filled in by the
// repository.
func MapCreateRequestToDomain(r CreateEventRequest) (domain.Event, error) {
	tags, err := ParseTags(r.Tags)
	if err != nil {
		return domain.Event{}, err
	}

	e := domain.Event{
		Title:       r.Title,
		Organizer:   r.Organizer,
		Date:        r.Date,
		StartTime:   r.StartTime,
		EndTime:     r.EndTime,
		Location:    r.Location,
		Description: r.Description,
		Tags:        tags,
		ImageURL:    r.ImageURL,
	}
	if r.Coordinates != nil {
		e.Coordinates = domain.Coordinates{Lat: r.Coordinates.Lat, Lng: r.Coordinates.Lng}
	}
	return e, nil
}

// MapDomainToEventResponse converts a domain event, attaching the
// distance from the viewer when one is given.
func MapDomainToEventResponse(e domain.Event, viewer *domain.Coordinates) EventResponse {
	resp := EventResponse{
		ID:          e.ID,
		Title:       e.Title,
		Organizer:   e.Organizer,
		Date:        e.Date,
		StartTime:   e.StartTime,
		EndTime:     e.EndTime,
		Location:    e.Location,
		Coordinates: CoordinatesDTO{Lat: e.Coordinates.Lat, Lng: e.Coordinates.Lng},
		Description: e.Description,
		Tags:        tagsToStrings(e.Tags),
		ImageURL:    e.ImageURL,
	}
	if viewer != nil {
		d := geo.DistanceMiles(*viewer, e.Coordinates)
		resp.DistanceMiles = &d
	}
	return resp
}

// MapDomainToEventResponseList converts a slice of domain events.
func MapDomainToEventResponseList(events []domain.Event, viewer *domain.Coordinates) []EventResponse {
	result := make([]EventResponse, len(events))
	for i, e := range events {
		result[i] = MapDomainToEventResponse(e, viewer)
	}
	return result
}

// ConflictRecordResponse is the wire shape of one conflict advisory.
type ConflictRecordResponse struct {
	Event         EventResponse `json:"event"`
	SharedTags    []string      `json:"shared_tags"`
	AudienceClash bool          `json:"audience_clash"`
}

// MapConflictRecords converts conflict advisories for the wire.
func MapConflictRecords(records []schedule.ConflictRecord) []ConflictRecordResponse {
	result := make([]ConflictRecordResponse, len(records))
	for i, rec := range records {
		result[i] = ConflictRecordResponse{
			Event:         MapDomainToEventResponse(rec.Event, nil),
			SharedTags:    tagsToStrings(rec.SharedTags),
			AudienceClash: rec.AudienceClash,
		}
	}
	return result
}

// TagMatrixRow is one row of the comparison feature matrix: a tag and,
// per compared event, whether the event carries it.
type TagMatrixRow struct {
	Tag string `json:"tag"`
	Has []bool `json:"has"`
}

// CompareResponse is the body of GET /events/compare.
type CompareResponse struct {
	Events       []EventResponse `json:"events"`
	CommonTags   []string        `json:"common_tags"`
	HasTimeClash bool            `json:"has_time_clash"`
	TagMatrix    []TagMatrixRow  `json:"tag_matrix"`
}

// BuildTagMatrix walks the full tag enumeration against the comparison
// set, in display order.
func BuildTagMatrix(events []domain.Event) []TagMatrixRow {
	rows := make([]TagMatrixRow, len(domain.AllTags))
	for i, tag := range domain.AllTags {
		row := TagMatrixRow{Tag: tag.String(), Has: make([]bool, len(events))}
		for j, e := range events {
			row.Has[j] = e.HasTag(tag)
		}
		rows[i] = row
	}
	return rows
}

// MarkerResponse is one point on the map surface.
type MarkerResponse struct {
	ID       uuid.UUID `json:"id"`
	Title    string    `json:"title"`
	Location string    `json:"location"`
	Lat      float64   `json:"lat"`
	Lng      float64   `json:"lng"`
}

// MarkersResponse is the body of GET /events/markers: event markers plus
// the viewer position they are rendered against.
type MarkersResponse struct {
	Viewer  CoordinatesDTO   `json:"viewer"`
	Markers []MarkerResponse `json:"markers"`
}

// MapDomainToMarkers converts events into map markers.
func MapDomainToMarkers(events []domain.Event, viewer domain.Coordinates) MarkersResponse {
	markers := make([]MarkerResponse, len(events))
	for i, e := range events {
		markers[i] = MarkerResponse{
			ID:       e.ID,
			Title:    e.Title,
			Location: e.Location,
			Lat:      e.Coordinates.Lat,
			Lng:      e.Coordinates.Lng,
		}
	}
	return MarkersResponse{
		Viewer:  CoordinatesDTO{Lat: viewer.Lat, Lng: viewer.Lng},
		Markers: markers,
	}
}

// ParseTags converts raw labels, failing on any label outside the
// closed tag set.
func ParseTags(raw []string) ([]domain.Tag, error) {
	tags := make([]domain.Tag, 0, len(raw))
	for _, s := range raw {
		t, err := domain.ParseTag(s)
		if err != nil {
			return nil, err
		}
		tags = append(tags, t)
	}
	return tags, nil
}

func tagsToStrings(tags []domain.Tag) []string {
	out := make([]string, len(tags))
	for i, t := range tags {
		out[i] = t.String()
	}
	return out
}

func validateDate(s string) error {
	if _, err := time.Parse("2006-01-02", s); err != nil {
		return fmt.Errorf("date must be YYYY-MM-DD: %q", s)
	}
	return nil
}

func validateClock(name, s string) error {
	if len(s) != 5 {
		return fmt.Errorf("%s must be zero-padded 24-hour HH:MM: %q", name, s)
	}
	if _, err := time.Parse("15:04", s); err != nil {
		return fmt.Errorf("%s must be zero-padded 24-hour HH:MM: %q", name, s)
	}
	return nil
}
