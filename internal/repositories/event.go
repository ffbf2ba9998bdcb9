// Package repositories holds the in-memory event collection. The
// collection lives for the session only: events are appended through the
// planner or API and never updated or deleted.
package repositories

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/zakiyahfaroo/HuskySync/internal/config"
	"github.com/zakiyahfaroo/HuskySync/internal/discovery"
	"github.com/zakiyahfaroo/HuskySync/internal/geo"
	"github.com/zakiyahfaroo/HuskySync/internal/models/domain"
	"github.com/zakiyahfaroo/HuskySync/internal/utils/logger/sl"
)

type Repository struct {
	logger *slog.Logger
	cfg    *config.Config

	mu     sync.RWMutex
	events []domain.Event
}

// New creates the repository and seeds it with the campus fixture,
// sorted by (date, start time).
func New(logger *slog.Logger, cfg *config.Config) *Repository {
	op := "repositories.New()"
	log := logger.With(slog.String("op", op))

	events, err := loadSeed(time.Now())
	if err != nil {
		// A broken embedded fixture only costs the demo data.
		log.Error("failed to load seed events", sl.Err(err))
		events = nil
	}

	log.Info("creating event repository", slog.Int("seeded", len(events)))

	return &Repository{
		logger: logger,
		cfg:    cfg,
		events: discovery.SortByStart(events),
	}
}

// CreateEvent appends an event to the collection and keeps it sorted by
// (date, start time). A nil id gets a fresh uuid, zero coordinates are
// jittered around Red Square, and an empty image url gets a stock
// placeholder. Returns the stored event.
func (r *Repository) CreateEvent(ctx context.Context, event domain.Event) (domain.Event, error) {
	op := "repository.CreateEvent()"

	if event.ID == uuid.Nil {
		event.ID = uuid.New()
	}
	if event.Coordinates.IsZero() {
		event.Coordinates = geo.Jitter(geo.RedSquare)
	}
	if event.ImageURL == "" {
		event.ImageURL = fmt.Sprintf("https://picsum.photos/400/200?random=%d", time.Now().UnixMilli())
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	for _, e := range r.events {
		if e.ID == event.ID {
			return domain.Event{}, fmt.Errorf("%s: duplicate event id %s", op, event.ID)
		}
	}

	r.events = discovery.SortByStart(append(r.events, event))

	r.logger.Debug("event created",
		slog.String("op", op),
		slog.String("eventID", event.ID.String()),
		slog.String("title", event.Title),
	)

	return event, nil
}

// FindEventByID returns the event with the given id or
// domain.ErrEventNotFound.
func (r *Repository) FindEventByID(ctx context.Context, id uuid.UUID) (domain.Event, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, e := range r.events {
		if e.ID == id {
			return e, nil
		}
	}
	return domain.Event{}, fmt.Errorf("find event %s: %w", id, domain.ErrEventNotFound)
}

// ReadAllEvents returns a copy of the collection in (date, start time)
// order.
func (r *Repository) ReadAllEvents(ctx context.Context) ([]domain.Event, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]domain.Event, len(r.events))
	copy(out, r.events)
	return out, nil
}

// FindEventsByDate returns the events on the given ISO date, preserving
// collection order.
func (r *Repository) FindEventsByDate(ctx context.Context, date string) ([]domain.Event, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]domain.Event, 0)
	for _, e := range r.events {
		if e.Date == date {
			out = append(out, e)
		}
	}
	return out, nil
}

func (r *Repository) Shutdown(ctx context.Context) error {
	select {
	case <-ctx.Done():
		return fmt.Errorf("force exit repository: %w", ctx.Err())
	default:
		return nil
	}
}
