package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/fernvaleriano/coachpilot/internal/service"
)

type Server struct {
	mx               *chi.Mux
	readinessService service.ReadinessServiceI
	streakService    service.StreakServiceI
	scheduleService  service.ScheduleServiceI
	triageService    service.TriageServiceI
	jwtService       JWTServiceI
}

type ServicesList struct {
	ReadinessService service.ReadinessServiceI
	StreakService    service.StreakServiceI
	ScheduleService  service.ScheduleServiceI
	TriageService    service.TriageServiceI
	JwtService       JWTServiceI
}

func New(servicesOptions *ServicesList) *Server {
	s := &Server{
		mx:               chi.NewMux(),
		readinessService: servicesOptions.ReadinessService,
		streakService:    servicesOptions.StreakService,
		scheduleService:  servicesOptions.ScheduleService,
		triageService:    servicesOptions.TriageService,
		jwtService:       servicesOptions.JwtService,
	}
	s.routes()
	return s
}

func (s *Server) routes() {
	s.mx.Use(s.RequestIDMiddleware)
	s.mx.Use(s.SettingUpLoggerMiddleware)

	s.mx.Route("/api/v1", func(r chi.Router) {
		r.Use(s.AuthMiddleware)
		r.Use(s.LoggerExtensionMiddleware)

		r.Route("/clients/{clientID}", func(r chi.Router) {
			r.Get("/readiness", s.GetReadiness)
			r.Post("/readiness", s.SubmitReadiness)
			r.Get("/streaks/{streakType}", s.GetStreak)
			r.Get("/schedule", s.GetSchedule)
			r.Post("/schedule", s.EnsureSchedule)
			r.Post("/triage", s.RunTriage)
		})

		r.Get("/flags", s.ListFlags)
		r.Put("/flags/{flagID}", s.UpdateFlag)
	})
}

func (s *Server) Run(address string) error {
	return http.ListenAndServe(address, s.mx)
}

// Handler exposes the routed mux. Meant for tests.
func (s *Server) Handler() http.Handler {
	return s.mx
}
