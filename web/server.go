package web

import (
	"context"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/rs/cors"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"parlayPickem/config"
)

type Server struct {
	cfg        config.Config
	db         *gorm.DB
	log        *zap.Logger
	httpServer *http.Server
}

func NewServer(cfg config.Config, db *gorm.DB, log *zap.Logger) *Server {
	return &Server{
		cfg: cfg,
		db:  db,
		log: log,
	}
}

// Router wires the public API. Identity arrives as the X-Session-Email
// header installed by the auth proxy in front of this service.
func (s *Server) Router() http.Handler {
	router := mux.NewRouter()

	api := router.PathPrefix("/api").Subrouter()
	api.HandleFunc("/health", s.handleHealth).Methods("GET")
	api.HandleFunc("/picks", s.handleSubmitPick).Methods("POST")
	api.HandleFunc("/parlays/active", s.handleActiveParlay).Methods("GET")
	api.HandleFunc("/matchups/current-week", s.handleCurrentWeekMatchups).Methods("GET")
	api.HandleFunc("/admin/matchups/{id}/toggle", s.handleToggleAdminFlag).Methods("POST")

	c := cors.New(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
	})

	return c.Handler(router)
}

func (s *Server) Start() error {
	s.httpServer = &http.Server{
		Addr:         ":" + s.cfg.HTTPPort,
		Handler:      s.Router(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	return s.httpServer.ListenAndServe()
}

func (s *Server) Stop() {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := s.httpServer.Shutdown(ctx); err != nil {
		s.log.Error("server shutdown failed", zap.Error(err))
	}
}
