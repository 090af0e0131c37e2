package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/limbo/healthlog/internal/service"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Server struct {
	mx              *chi.Mux
	srv             *http.Server
	activityService service.ActivityServiceI
	statsService    service.StatisticsServiceI
}

type ServicesList struct {
	ActivityService   service.ActivityServiceI
	StatisticsService service.StatisticsServiceI
}

func New(servicesOptions *ServicesList) *Server {
	s := &Server{
		mx:              chi.NewMux(),
		activityService: servicesOptions.ActivityService,
		statsService:    servicesOptions.StatisticsService,
	}
	s.srv = &http.Server{
		Handler:      s.mx,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}
	s.routes()
	return s
}

func (s *Server) routes() {
	s.mx.Use(middleware.Recoverer)
	s.mx.Use(s.RequestIDMiddleware)
	s.mx.Use(s.SettingUpLoggerMiddleware)
	s.mx.Use(s.AccessLogMiddleware)

	s.mx.Get("/health", s.Health)
	s.mx.Handle("/metrics", promhttp.Handler())

	s.mx.Route("/api/v1", func(r chi.Router) {
		r.Route("/activities", func(r chi.Router) {
			r.Get("/", s.ListActivities)
			r.Post("/", s.CreateActivity)
			r.Get("/search", s.SearchActivities)
			r.Get("/recent", s.RecentActivities)
			r.Get("/range", s.ActivitiesByRange)
			r.Get("/category/{category}", s.ActivitiesByCategory)
			r.Get("/{id}", s.GetActivity)
			r.Put("/{id}", s.UpdateActivity)
			r.Delete("/{id}", s.DeleteActivity)
		})
		r.Route("/types", func(r chi.Router) {
			r.Get("/", s.ListTypes)
			r.Get("/predefined", s.PredefinedTypes)
			r.Get("/{name}", s.TypeInfo)
		})
		r.Route("/stats", func(r chi.Router) {
			r.Get("/summary", s.Summary)
			r.Get("/detailed", s.DetailedStatistics)
			r.Get("/overview", s.OverallSummary)
			r.Get("/trend", s.TrendAnalysis)
			r.Get("/compliance", s.ComplianceRate)
			r.Get("/compliance/overview", s.ComplianceOverview)
			r.Get("/correlations", s.Correlations)
		})
	})
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mx.ServeHTTP(w, r)
}

// Run blocks until the server stops. A stop caused by Shutdown is not an error.
func (s *Server) Run(address string) error {
	s.srv.Addr = address
	slog.Info("api server listening", slog.String("address", address))
	err := s.srv.ListenAndServe()
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return err
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.srv.Shutdown(ctx)
}
