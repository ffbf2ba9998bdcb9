package handlers

import (
	"context"

	"github.com/google/uuid"

	"github.com/zakiyahfaroo/HuskySync/internal/assistant"
	"github.com/zakiyahfaroo/HuskySync/internal/models/domain"
	"github.com/zakiyahfaroo/HuskySync/internal/planner"
	"github.com/zakiyahfaroo/HuskySync/internal/schedule"
)

// EventRepository is the slice of the event collection the handlers use.
type EventRepository interface {
	CreateEvent(ctx context.Context, event domain.Event) (domain.Event, error)
	FindEventByID(ctx context.Context, id uuid.UUID) (domain.Event, error)
	ReadAllEvents(ctx context.Context) ([]domain.Event, error)
}

// EventPlanner is the planner service surface the handlers use.
type EventPlanner interface {
	State() planner.State
	UpdateDraft(draft domain.EventDraft) planner.State
	RequestAdvice(ctx context.Context) error
	RequestMarketing(ctx context.Context, kind assistant.MarketingKind) error
	RequestFlyer(ctx context.Context) error
	Conflicts(ctx context.Context) ([]schedule.ConflictRecord, error)
	SameDaySchedule(ctx context.Context) ([]domain.Event, error)
	Publish(ctx context.Context) (domain.Event, error)
}

// Announcer broadcasts directly created events.
type Announcer interface {
	AnnounceEvent(event domain.Event) error
}
