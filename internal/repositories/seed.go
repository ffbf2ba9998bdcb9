package repositories

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/zakiyahfaroo/HuskySync/internal/models/domain"
	"github.com/zakiyahfaroo/HuskySync/internal/models/repositories"
)

//go:embed seed.json
var seedFile []byte

// loadSeed decodes the embedded campus fixture and resolves its relative
// dates against now.
func loadSeed(now time.Time) ([]domain.Event, error) {
	var seeds []repositories.SeedEvent
	if err := json.Unmarshal(seedFile, &seeds); err != nil {
		return nil, fmt.Errorf("decode seed file: %w", err)
	}

	events := make([]domain.Event, 0, len(seeds))
	for _, s := range seeds {
		e, err := mapSeedToDomain(s, now)
		if err != nil {
			return nil, err
		}
		events = append(events, e)
	}
	return events, nil
}

func mapSeedToDomain(s repositories.SeedEvent, now time.Time) (domain.Event, error) {
	tags := make([]domain.Tag, 0, len(s.Tags))
	for _, raw := range s.Tags {
		t, err := domain.ParseTag(raw)
		if err != nil {
			return domain.Event{}, fmt.Errorf("seed event %q: %w", s.Title, err)
		}
		tags = append(tags, t)
	}

	return domain.Event{
		ID:          uuid.New(),
		Title:       s.Title,
		Organizer:   s.Organizer,
		Date:        now.AddDate(0, 0, s.DaysFromNow).Format("2006-01-02"),
		StartTime:   s.StartTime,
		EndTime:     s.EndTime,
		Location:    s.Location,
		Coordinates: domain.Coordinates{Lat: s.Lat, Lng: s.Lng},
		Description: s.Description,
		Tags:        tags,
		ImageURL:    s.ImageURL,
	}, nil
}
