// Package planner owns the RSO event draft and its derived transient
// state: conflict advisories, AI advice, marketing copy and flyer art.
// AI calls run on a worker pool; each job carries the draft generation
// it was started for, and results landing after the draft changed are
// discarded instead of overwriting newer input.
package planner

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/google/uuid"

	"github.com/zakiyahfaroo/HuskySync/internal/assistant"
	"github.com/zakiyahfaroo/HuskySync/internal/config"
	"github.com/zakiyahfaroo/HuskySync/internal/discovery"
	"github.com/zakiyahfaroo/HuskySync/internal/models/domain"
	"github.com/zakiyahfaroo/HuskySync/internal/schedule"
	"github.com/zakiyahfaroo/HuskySync/internal/utils/logger/sl"
)

var (
	// ErrDraftIncomplete is returned when an AI request or publish needs
	// draft fields that are still empty.
	ErrDraftIncomplete = errors.New("draft is missing required fields")
	// ErrJobBufferFull is returned when the AI job queue cannot take
	// another request right now.
	ErrJobBufferFull = errors.New("job buffer is full")
)

// AI is the generative service the planner enriches its state with.
type AI interface {
	PlanningAdvice(ctx context.Context, draft domain.EventDraft, existing []domain.Event) string
	MarketingContent(ctx context.Context, draft domain.EventDraft, kind assistant.MarketingKind) string
	FlyerImage(ctx context.Context, draft domain.EventDraft) string
}

// Repository is the event collection the planner reads and publishes to.
type Repository interface {
	CreateEvent(ctx context.Context, event domain.Event) (domain.Event, error)
	ReadAllEvents(ctx context.Context) ([]domain.Event, error)
	FindEventsByDate(ctx context.Context, date string) ([]domain.Event, error)
}

// Announcer broadcasts a freshly published event. May be a no-op.
type Announcer interface {
	AnnounceEvent(event domain.Event) error
}

type jobKind int

const (
	jobAdvice jobKind = iota
	jobMarketing
	jobFlyer
)

// job is one queued AI request, pinned to the draft generation it was
// issued for.
type job struct {
	kind       jobKind
	generation uint64
	draft      domain.EventDraft
	marketing  assistant.MarketingKind
}

// State is a snapshot of the planner for rendering.
type State struct {
	Draft         domain.EventDraft
	Generation    uint64
	Advice        string
	Marketing     string
	MarketingKind assistant.MarketingKind
	FlyerImage    string
}

type Planner struct {
	logger     *slog.Logger
	cfg        *config.Config
	ai         AI
	repository Repository
	announcer  Announcer

	mu            sync.Mutex
	draft         domain.EventDraft
	generation    uint64
	advice        string
	marketing     string
	marketingKind assistant.MarketingKind
	flyerImage    string

	jobs            chan job
	shutdownChannel chan struct{}
	wg              *sync.WaitGroup
}

// New creates a Planner with an empty draft.
func New(
	logger *slog.Logger,
	cfg *config.Config,
	ai AI,
	repository Repository,
	announcer Announcer,
) *Planner {
	op := "planner.New()"
	log := logger.With(slog.String("op", op))

	log.Info("creating planner service")

	return &Planner{
		logger:          logger,
		cfg:             cfg,
		ai:              ai,
		repository:      repository,
		announcer:       announcer,
		jobs:            make(chan job, cfg.AI.JobBufferSize),
		shutdownChannel: make(chan struct{}),
		wg:              &sync.WaitGroup{},
	}
}

// Start runs the AI job workers and blocks until they exit.
func (p *Planner) Start() {
	op := "Planner.Start()"
	log := p.logger.With(slog.String("op", op))

	for i := 0; i < p.cfg.AI.WorkersCount; i++ {
		p.wg.Add(1)
		go p.handleJob(i)
	}
	log.Info("planner service started", slog.Int("workers", p.cfg.AI.WorkersCount))

	p.wg.Wait()
}

// State returns a snapshot of the current planner state.
func (p *Planner) State() State {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.snapshotLocked()
}

// UpdateDraft replaces the draft and bumps the generation so results of
// in-flight AI jobs for the old draft get discarded.
func (p *Planner) UpdateDraft(draft domain.EventDraft) State {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.draft = draft
	p.generation++
	return p.snapshotLocked()
}

// RequestAdvice queues a planning-advice job for the current draft.
func (p *Planner) RequestAdvice(ctx context.Context) error {
	p.mu.Lock()
	draft := p.draft
	generation := p.generation
	p.mu.Unlock()

	if draft.Title == "" || draft.Date == "" {
		return ErrDraftIncomplete
	}
	return p.enqueue(job{kind: jobAdvice, generation: generation, draft: draft})
}

// RequestMarketing queues a marketing-copy job for the current draft.
func (p *Planner) RequestMarketing(ctx context.Context, kind assistant.MarketingKind) error {
	if !kind.IsValid() {
		return fmt.Errorf("invalid marketing kind: %q", kind)
	}

	p.mu.Lock()
	draft := p.draft
	generation := p.generation
	p.mu.Unlock()

	if draft.Title == "" || draft.Date == "" {
		return ErrDraftIncomplete
	}
	return p.enqueue(job{kind: jobMarketing, generation: generation, draft: draft, marketing: kind})
}

// RequestFlyer queues a flyer-art job for the current draft.
func (p *Planner) RequestFlyer(ctx context.Context) error {
	p.mu.Lock()
	draft := p.draft
	generation := p.generation
	p.mu.Unlock()

	if draft.Title == "" {
		return ErrDraftIncomplete
	}
	return p.enqueue(job{kind: jobFlyer, generation: generation, draft: draft})
}

// Conflicts classifies the current draft against the collection.
func (p *Planner) Conflicts(ctx context.Context) ([]schedule.ConflictRecord, error) {
	p.mu.Lock()
	candidate := p.draft.Candidate()
	p.mu.Unlock()

	events, err := p.repository.ReadAllEvents(ctx)
	if err != nil {
		return nil, fmt.Errorf("planner.Conflicts(): %w", err)
	}
	return schedule.Conflicts(candidate, events), nil
}

// SameDaySchedule returns the events sharing the draft's date, ordered
// by start time. An empty draft date yields an empty schedule.
func (p *Planner) SameDaySchedule(ctx context.Context) ([]domain.Event, error) {
	p.mu.Lock()
	date := p.draft.Date
	p.mu.Unlock()

	if date == "" {
		return []domain.Event{}, nil
	}

	events, err := p.repository.FindEventsByDate(ctx, date)
	if err != nil {
		return nil, fmt.Errorf("planner.SameDaySchedule(): %w", err)
	}
	return discovery.SortByStart(events), nil
}

// Publish turns the draft into an event, appends it to the collection
// and resets the transient AI state. The generated flyer becomes the
// event image when present. Conflicts never block publishing.
func (p *Planner) Publish(ctx context.Context) (domain.Event, error) {
	op := "Planner.Publish()"
	log := p.logger.With(slog.String("op", op))

	p.mu.Lock()
	draft := p.draft
	flyer := p.flyerImage
	p.mu.Unlock()

	if draft.Title == "" || draft.Organizer == "" || draft.Date == "" ||
		draft.StartTime == "" || draft.EndTime == "" || draft.Location == "" {
		return domain.Event{}, ErrDraftIncomplete
	}

	event := domain.Event{
		ID:          uuid.New(),
		Title:       draft.Title,
		Organizer:   draft.Organizer,
		Date:        draft.Date,
		StartTime:   draft.StartTime,
		EndTime:     draft.EndTime,
		Location:    draft.Location,
		Description: draft.Description,
		Tags:        draft.Tags,
		ImageURL:    flyer,
	}

	created, err := p.repository.CreateEvent(ctx, event)
	if err != nil {
		return domain.Event{}, fmt.Errorf("%s: %w", op, err)
	}

	if p.announcer != nil {
		if err := p.announcer.AnnounceEvent(created); err != nil {
			log.Error("failed to announce event", sl.Err(err))
		}
	}

	p.mu.Lock()
	p.draft = domain.EventDraft{}
	p.generation++
	p.advice = ""
	p.marketing = ""
	p.marketingKind = ""
	p.flyerImage = ""
	p.mu.Unlock()

	log.Info("event published",
		slog.String("eventID", created.ID.String()),
		slog.String("title", created.Title),
	)

	return created, nil
}

// Shutdown stops accepting jobs and lets running workers drain.
func (p *Planner) Shutdown(ctx context.Context) error {
	select {
	case <-ctx.Done():
		return fmt.Errorf("force exit planner: %w", ctx.Err())
	default:
		close(p.shutdownChannel)
		close(p.jobs)
		return nil
	}
}

func (p *Planner) enqueue(j job) error {
	select {
	case <-p.shutdownChannel:
		return errors.New("service is shutting down")
	default:
		select {
		case p.jobs <- j:
			return nil
		default:
			return ErrJobBufferFull
		}
	}
}

// handleJob is a worker draining the AI job channel.
func (p *Planner) handleJob(id int) {
	defer p.wg.Done()
	op := "Planner.handleJob()"
	log := p.logger.With(slog.String("op", op), slog.Int("workerId", id))

	log.Info("start planner job handler")

	for {
		select {
		case <-p.shutdownChannel:
			return
		case j, ok := <-p.jobs:
			if !ok {
				return
			}
			p.runJob(log, j)
		}
	}
}

func (p *Planner) runJob(log *slog.Logger, j job) {
	ctx, cancel := context.WithTimeout(context.Background(), p.cfg.AI.GetTimeout())
	defer cancel()

	var advice, marketing, flyer string
	switch j.kind {
	case jobAdvice:
		events, err := p.repository.ReadAllEvents(ctx)
		if err != nil {
			log.Error("failed to read events for advice", sl.Err(err))
			return
		}
		advice = p.ai.PlanningAdvice(ctx, j.draft, events)
	case jobMarketing:
		marketing = p.ai.MarketingContent(ctx, j.draft, j.marketing)
	case jobFlyer:
		flyer = p.ai.FlyerImage(ctx, j.draft)
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if j.generation != p.generation {
		log.Debug("discarding stale AI result",
			slog.Uint64("jobGeneration", j.generation),
			slog.Uint64("generation", p.generation),
		)
		return
	}

	switch j.kind {
	case jobAdvice:
		p.advice = advice
	case jobMarketing:
		p.marketing = marketing
		p.marketingKind = j.marketing
	case jobFlyer:
		if flyer != "" {
			p.flyerImage = flyer
		}
	}
}

func (p *Planner) snapshotLocked() State {
	return State{
		Draft:         p.draft,
		Generation:    p.generation,
		Advice:        p.advice,
		Marketing:     p.marketing,
		MarketingKind: p.marketingKind,
		FlyerImage:    p.flyerImage,
	}
}
