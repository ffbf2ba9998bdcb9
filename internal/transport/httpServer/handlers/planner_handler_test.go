package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/zakiyahfaroo/HuskySync/internal/assistant"
	"github.com/zakiyahfaroo/HuskySync/internal/models/domain"
	"github.com/zakiyahfaroo/HuskySync/internal/planner"
	"github.com/zakiyahfaroo/HuskySync/internal/schedule"
)

type fakePlanner struct {
	state      planner.State
	enqueueErr error
	publishErr error

	adviceCalls    int
	marketingCalls []assistant.MarketingKind
	flyerCalls     int
	updatedDrafts  []domain.EventDraft
}

func (f *fakePlanner) State() planner.State { return f.state }

func (f *fakePlanner) UpdateDraft(draft domain.EventDraft) planner.State {
	f.updatedDrafts = append(f.updatedDrafts, draft)
	f.state.Draft = draft
	return f.state
}

func (f *fakePlanner) RequestAdvice(context.Context) error {
	f.adviceCalls++
	return f.enqueueErr
}

func (f *fakePlanner) RequestMarketing(_ context.Context, kind assistant.MarketingKind) error {
	f.marketingCalls = append(f.marketingCalls, kind)
	return f.enqueueErr
}

func (f *fakePlanner) RequestFlyer(context.Context) error {
	f.flyerCalls++
	return f.enqueueErr
}

func (f *fakePlanner) Conflicts(context.Context) ([]schedule.ConflictRecord, error) {
	return nil, nil
}

func (f *fakePlanner) SameDaySchedule(context.Context) ([]domain.Event, error) {
	return nil, nil
}

func (f *fakePlanner) Publish(context.Context) (domain.Event, error) {
	if f.publishErr != nil {
		return domain.Event{}, f.publishErr
	}
	return domain.Event{
		ID:        uuid.New(),
		Title:     f.state.Draft.Title,
		Organizer: f.state.Draft.Organizer,
		Date:      f.state.Draft.Date,
		StartTime: f.state.Draft.StartTime,
		EndTime:   f.state.Draft.EndTime,
		Location:  f.state.Draft.Location,
	}, nil
}

func newPlannerTestServer(t *testing.T, p *fakePlanner) *httptest.Server {
	t.Helper()

	h := NewPlannerHandler(discardLogger(), p)

	mux := chi.NewMux()
	mux.Route("/api/v1/planner", func(mux chi.Router) {
		mux.Get("/", h.GetPlanner)
		mux.Put("/draft", h.UpdateDraft)
		mux.Post("/advice", h.RequestAdvice)
		mux.Post("/marketing", h.RequestMarketing)
		mux.Post("/flyer", h.RequestFlyer)
		mux.Post("/publish", h.Publish)
	})

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func TestGetPlanner(t *testing.T) {
	p := &fakePlanner{state: planner.State{
		Draft:  domain.EventDraft{Title: "Study Jam"},
		Advice: "Looks like a quiet evening.",
	}}
	srv := newPlannerTestServer(t, p)

	resp, err := http.Get(srv.URL + "/api/v1/planner")
	if err != nil {
		t.Fatalf("GET: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want %d", resp.StatusCode, http.StatusOK)
	}

	var body struct {
		Draft struct {
			Title string `json:"title"`
		} `json:"draft"`
		Advice string `json:"advice"`
	}
	decodeBody(t, resp, &body)

	if body.Draft.Title != "Study Jam" {
		t.Errorf("draft title = %q", body.Draft.Title)
	}
	if body.Advice != "Looks like a quiet evening." {
		t.Errorf("advice = %q", body.Advice)
	}
}

func TestUpdateDraft(t *testing.T) {
	t.Run("partial draft is accepted", func(t *testing.T) {
		p := &fakePlanner{}
		srv := newPlannerTestServer(t, p)

		req, _ := http.NewRequest(http.MethodPut, srv.URL+"/api/v1/planner/draft",
			strings.NewReader(`{"title":"Study Jam","date":"2026-09-10"}`))
		resp, err := http.DefaultClient.Do(req)
		if err != nil {
			t.Fatalf("PUT: %v", err)
		}
		resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			t.Fatalf("status = %d, want %d", resp.StatusCode, http.StatusOK)
		}
		if len(p.updatedDrafts) != 1 {
			t.Fatalf("updated %d drafts, want 1", len(p.updatedDrafts))
		}
		if p.updatedDrafts[0].Title != "Study Jam" {
			t.Errorf("draft title = %q", p.updatedDrafts[0].Title)
		}
	})

	t.Run("malformed date is rejected without touching the draft", func(t *testing.T) {
		p := &fakePlanner{}
		srv := newPlannerTestServer(t, p)

		req, _ := http.NewRequest(http.MethodPut, srv.URL+"/api/v1/planner/draft",
			strings.NewReader(`{"date":"next friday"}`))
		resp, err := http.DefaultClient.Do(req)
		if err != nil {
			t.Fatalf("PUT: %v", err)
		}
		resp.Body.Close()

		if resp.StatusCode != http.StatusBadRequest {
			t.Errorf("status = %d, want %d", resp.StatusCode, http.StatusBadRequest)
		}
		if len(p.updatedDrafts) != 0 {
			t.Errorf("draft was updated on invalid input")
		}
	})
}

func TestRequestAdvice(t *testing.T) {
	tests := []struct {
		name       string
		enqueueErr error
		wantStatus int
	}{
		{"queued", nil, http.StatusAccepted},
		{"incomplete draft", planner.ErrDraftIncomplete, http.StatusBadRequest},
		{"full buffer", planner.ErrJobBufferFull, http.StatusConflict},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			p := &fakePlanner{enqueueErr: tc.enqueueErr}
			srv := newPlannerTestServer(t, p)

			resp, err := http.Post(srv.URL+"/api/v1/planner/advice", "application/json", nil)
			if err != nil {
				t.Fatalf("POST: %v", err)
			}
			resp.Body.Close()

			if resp.StatusCode != tc.wantStatus {
				t.Errorf("status = %d, want %d", resp.StatusCode, tc.wantStatus)
			}
			if p.adviceCalls != 1 {
				t.Errorf("advice requested %d times, want 1", p.adviceCalls)
			}
		})
	}
}

func TestRequestMarketing(t *testing.T) {
	t.Run("valid kind is queued", func(t *testing.T) {
		p := &fakePlanner{}
		srv := newPlannerTestServer(t, p)

		resp, err := http.Post(srv.URL+"/api/v1/planner/marketing", "application/json",
			strings.NewReader(`{"type":"social"}`))
		if err != nil {
			t.Fatalf("POST: %v", err)
		}
		resp.Body.Close()

		if resp.StatusCode != http.StatusAccepted {
			t.Errorf("status = %d, want %d", resp.StatusCode, http.StatusAccepted)
		}
		if len(p.marketingCalls) != 1 || p.marketingCalls[0] != assistant.MarketingSocial {
			t.Errorf("marketing calls = %v", p.marketingCalls)
		}
	})

	t.Run("unknown kind is rejected", func(t *testing.T) {
		p := &fakePlanner{}
		srv := newPlannerTestServer(t, p)

		resp, err := http.Post(srv.URL+"/api/v1/planner/marketing", "application/json",
			strings.NewReader(`{"type":"skywriting"}`))
		if err != nil {
			t.Fatalf("POST: %v", err)
		}
		resp.Body.Close()

		if resp.StatusCode != http.StatusBadRequest {
			t.Errorf("status = %d, want %d", resp.StatusCode, http.StatusBadRequest)
		}
		if len(p.marketingCalls) != 0 {
			t.Errorf("marketing was requested for an unknown kind")
		}
	})
}

func TestRequestFlyer(t *testing.T) {
	p := &fakePlanner{}
	srv := newPlannerTestServer(t, p)

	resp, err := http.Post(srv.URL+"/api/v1/planner/flyer", "application/json", nil)
	if err != nil {
		t.Fatalf("POST: %v", err)
	}
	resp.Body.Close()

	if resp.StatusCode != http.StatusAccepted {
		t.Errorf("status = %d, want %d", resp.StatusCode, http.StatusAccepted)
	}
	if p.flyerCalls != 1 {
		t.Errorf("flyer requested %d times, want 1", p.flyerCalls)
	}
}

func TestPublish(t *testing.T) {
	t.Run("complete draft publishes", func(t *testing.T) {
		p := &fakePlanner{state: planner.State{Draft: domain.EventDraft{
			Title:     "Study Jam",
			Organizer: "Math Club",
			Date:      "2026-09-10",
			StartTime: "18:00",
			EndTime:   "20:00",
			Location:  "Odegaard Library",
		}}}
		srv := newPlannerTestServer(t, p)

		resp, err := http.Post(srv.URL+"/api/v1/planner/publish", "application/json", nil)
		if err != nil {
			t.Fatalf("POST: %v", err)
		}
		if resp.StatusCode != http.StatusCreated {
			t.Fatalf("status = %d, want %d", resp.StatusCode, http.StatusCreated)
		}

		var body struct {
			ID    string `json:"id"`
			Title string `json:"title"`
		}
		decodeBody(t, resp, &body)

		if body.Title != "Study Jam" {
			t.Errorf("title = %q", body.Title)
		}
		if _, err := uuid.Parse(body.ID); err != nil {
			t.Errorf("id %q is not a uuid: %v", body.ID, err)
		}
	})

	t.Run("incomplete draft is rejected", func(t *testing.T) {
		p := &fakePlanner{publishErr: planner.ErrDraftIncomplete}
		srv := newPlannerTestServer(t, p)

		resp, err := http.Post(srv.URL+"/api/v1/planner/publish", "application/json", nil)
		if err != nil {
			t.Fatalf("POST: %v", err)
		}
		resp.Body.Close()

		if resp.StatusCode != http.StatusBadRequest {
			t.Errorf("status = %d, want %d", resp.StatusCode, http.StatusBadRequest)
		}
	})
}
