package routers

import (
	"log/slog"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/zakiyahfaroo/HuskySync/internal/transport/httpServer/handlers"
	myMiddleware "github.com/zakiyahfaroo/HuskySync/internal/transport/httpServer/middleware"
)

type Router struct {
	eventHandler   *handlers.EventHandler
	plannerHandler *handlers.PlannerHandler
	log            *slog.Logger
}

func NewRouter(log *slog.Logger, eventHandler *handlers.EventHandler, plannerHandler *handlers.PlannerHandler) *Router {
	return &Router{
		eventHandler:   eventHandler,
		plannerHandler: plannerHandler,
		log:            log,
	}
}

func (r *Router) Mount(mux *chi.Mux) {

	mux.Use(cors.AllowAll().Handler)
	mux.Use(myMiddleware.New(r.log))
	mux.Use(middleware.Heartbeat("/ping"))

	mux.Route("/api", func(mux chi.Router) {
		mux.Route("/v1", func(mux chi.Router) {
			mux.Route("/events", func(mux chi.Router) {
				mux.Get("/", r.eventHandler.GetEvents)
				mux.Post("/", r.eventHandler.CreateEvent)
				// literal routes go before the id wildcard
				mux.Get("/compare", r.eventHandler.CompareEvents)
				mux.Get("/markers", r.eventHandler.GetMarkers)
				mux.Get("/{eventId}", r.eventHandler.GetEvent)
			})
			mux.Route("/planner", func(mux chi.Router) {
				mux.Get("/", r.plannerHandler.GetPlanner)
				mux.Put("/draft", r.plannerHandler.UpdateDraft)
				mux.Post("/advice", r.plannerHandler.RequestAdvice)
				mux.Post("/marketing", r.plannerHandler.RequestMarketing)
				mux.Post("/flyer", r.plannerHandler.RequestFlyer)
				mux.Post("/publish", r.plannerHandler.Publish)
			})
		})
	})
}
