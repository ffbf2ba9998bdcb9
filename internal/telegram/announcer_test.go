package telegramBot

import (
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/google/uuid"

	"github.com/zakiyahfaroo/HuskySync/internal/config"
	"github.com/zakiyahfaroo/HuskySync/internal/models/domain"
)

func TestNew_Disabled(t *testing.T) {
	t.Parallel()

	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	a, err := New(log, &config.Config{})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	// Disabled announcer drops announcements without error.
	if err := a.AnnounceEvent(domain.Event{ID: uuid.New(), Title: "x"}); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
}

func TestFormatAnnouncement(t *testing.T) {
	t.Parallel()

	event := domain.Event{
		ID:          uuid.New(),
		Title:       "Gaming Night",
		Organizer:   "Husky Gamer Nation",
		Date:        "2030-05-01",
		StartTime:   "19:00",
		EndTime:     "23:00",
		Location:    "HUB Games Area",
		Description: "Smash Bros tournament with prizes!",
		Tags:        []domain.Tag{domain.TagFreeMerch, domain.TagGames},
	}

	got := formatAnnouncement(event)

	for _, want := range []string{
		"<b>Gaming Night</b>",
		"by Husky Gamer Nation",
		"7:00 PM – 11:00 PM",
		"HUB Games Area",
		"#FreeMerch #Games",
		"Smash Bros tournament",
	} {
		if !strings.Contains(got, want) {
			t.Fatalf("expected announcement to contain %q:\n%s", want, got)
		}
	}
}
