package api

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog/log"

	"github.com/stakeworks/staking-ledger/internal/config"
	"github.com/stakeworks/staking-ledger/internal/observability/tracing"
	"github.com/stakeworks/staking-ledger/internal/services"
)

// Server is the HTTP surface of the staking ledger.
type Server struct {
	cfg *config.ApiConfig
	svc *services.Service
	srv *http.Server
}

func New(cfg *config.ApiConfig, svc *services.Service) *Server {
	s := &Server{cfg: cfg, svc: svc}

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(traceMiddleware)

	r.Get("/healthcheck", s.handleHealthcheck)

	r.Route("/v1", func(r chi.Router) {
		r.Post("/stake", s.handleStake)
		r.Post("/unstake", s.handleUnstake)
		r.Post("/claim", s.handleClaim)
		r.Get("/stake/{account}", s.handleGetStake)
		r.Get("/stake/{account}/events", s.handleGetAccountEvents)
		r.Get("/rate", s.handleGetRate)
		r.Get("/pool", s.handleGetPool)

		r.Route("/admin", func(r chi.Router) {
			r.Post("/rate", s.handleSetRate)
			r.Post("/fund", s.handleFund)
			r.Post("/emergency-withdraw", s.handleEmergencyWithdraw)
			r.Post("/pause", s.handlePause)
			r.Post("/unpause", s.handleUnpause)
		})
	})

	s.srv = &http.Server{
		Addr:         cfg.Address(),
		Handler:      r,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
	}

	return s
}

// Start blocks serving HTTP until Stop is called or the listener fails.
func (s *Server) Start() error {
	log.Info().Msgf("Starting ledger API server on %s", s.cfg.Address())
	if err := s.srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

func (s *Server) Stop(ctx context.Context) error {
	return s.srv.Shutdown(ctx)
}

// traceMiddleware gives every request a trace ID carried through the
// zerolog context.
func traceMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := tracing.InjectTraceID(r.Context())
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
