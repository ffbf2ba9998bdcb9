package dto

import (
	"github.com/zakiyahfaroo/HuskySync/internal/models/domain"
	"github.com/zakiyahfaroo/HuskySync/internal/planner"
)

// DraftDTO is the wire shape of the planner form state.
type DraftDTO struct {
	Title       string   `json:"title"`
	Organizer   string   `json:"organizer"`
	Date        string   `json:"date"`
	StartTime   string   `json:"start_time"`
	EndTime     string   `json:"end_time"`
	Location    string   `json:"location"`
	Description string   `json:"description"`
	Tags        []string `json:"tags"`
}

// Validate checks formats of whatever draft fields are filled in. A
// partially empty draft is fine; completeness is checked on publish.
func (d DraftDTO) Validate() error {
	if d.Date != "" {
		if err := validateDate(d.Date); err != nil {
			return err
		}
	}
	if d.StartTime != "" {
		if err := validateClock("start_time", d.StartTime); err != nil {
			return err
		}
	}
	if d.EndTime != "" {
		if err := validateClock("end_time", d.EndTime); err != nil {
			return err
		}
	}
	_, err := ParseTags(d.Tags)
	return err
}

// MapDraftToDomain converts a validated draft.
func MapDraftToDomain(d DraftDTO) (domain.EventDraft, error) {
	tags, err := ParseTags(d.Tags)
	if err != nil {
		return domain.EventDraft{}, err
	}
	return domain.EventDraft{
		Title:       d.Title,
		Organizer:   d.Organizer,
		Date:        d.Date,
		StartTime:   d.StartTime,
		EndTime:     d.EndTime,
		Location:    d.Location,
		Description: d.Description,
		Tags:        tags,
	}, nil
}

// MarketingRequest is the body of POST /planner/marketing.
type MarketingRequest struct {
	Type string `json:"type"`
}

// PlannerStateResponse is the body of GET /planner: the draft plus all
// derived transient state.
type PlannerStateResponse struct {
	Draft         DraftDTO                 `json:"draft"`
	Advice        string                   `json:"advice"`
	Marketing     string                   `json:"marketing"`
	MarketingKind string                   `json:"marketing_kind"`
	FlyerImage    string                   `json:"flyer_image"`
	Conflicts     []ConflictRecordResponse `json:"conflicts"`
	Schedule      []EventResponse          `json:"schedule"`
}

// MapPlannerState converts a planner snapshot with its conflict
// advisories and same-day schedule.
func MapPlannerState(s planner.State, conflicts []ConflictRecordResponse, schedule []EventResponse) PlannerStateResponse {
	return PlannerStateResponse{
		Draft: DraftDTO{
			Title:       s.Draft.Title,
			Organizer:   s.Draft.Organizer,
			Date:        s.Draft.Date,
			StartTime:   s.Draft.StartTime,
			EndTime:     s.Draft.EndTime,
			Location:    s.Draft.Location,
			Description: s.Draft.Description,
			Tags:        tagsToStrings(s.Draft.Tags),
		},
		Advice:        s.Advice,
		Marketing:     s.Marketing,
		MarketingKind: string(s.MarketingKind),
		FlyerImage:    s.FlyerImage,
		Conflicts:     conflicts,
		Schedule:      schedule,
	}
}
