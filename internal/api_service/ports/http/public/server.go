package public

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/langowen/exchangeit/deploy/config"
	mwLogger "github.com/langowen/exchangeit/internal/api_service/ports/http/public/middleware/logger"
	"github.com/langowen/exchangeit/internal/entities"
	"github.com/langowen/exchangeit/internal/metrics"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Server struct {
	Server  *http.Server
	cfg     *config.Config
	service Service
}

type ExchangeResponse struct {
	Src    string  `json:"src"`
	Dst    string  `json:"dst"`
	Amount float64 `json:"amount"`
	Result float64 `json:"result"`
}

type CurrencyResponse struct {
	Code  string `json:"code"`
	Valid bool   `json:"valid"`
}

func NewServer(server *http.Server, cfg *config.Config, service Service) *Server {
	return &Server{
		Server:  server,
		cfg:     cfg,
		service: service,
	}
}

func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(mwLogger.New())
	r.Use(metrics.Middleware)
	r.Use(middleware.Recoverer)

	r.Handle("/metrics", promhttp.Handler())

	r.Get("/exchange", s.Exchange)
	r.Get("/currencies/{code}", s.IsCurrency)
	r.Get("/exchanges", s.GetExchanges)

	return r
}

func StartServer(ctx context.Context, service Service, cfg *config.Config) <-chan struct{} {
	server := NewServer(nil, cfg, service)

	server.Server = &http.Server{
		Addr:         ":" + cfg.HTTPServer.Port,
		Handler:      server.Routes(),
		ReadTimeout:  cfg.HTTPServer.Timeout,
		WriteTimeout: cfg.HTTPServer.Timeout,
		IdleTimeout:  cfg.HTTPServer.IdleTimeout,
	}

	doneChan := make(chan struct{})

	go func() {
		if err := server.Server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("Http server error", "error", err)
		}
	}()

	go func() {
		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := server.Server.Shutdown(shutdownCtx); err != nil {
			slog.Error("Failed to stop server", "error", err)
		}

		close(doneChan)
	}()

	return doneChan
}

func (s *Server) Exchange(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	query := r.URL.Query()

	src := strings.ToUpper(query.Get("src"))
	dst := strings.ToUpper(query.Get("dst"))

	amt, err := strconv.ParseFloat(query.Get("amt"), 64)
	if err != nil {
		RespondWithError(w, http.StatusBadRequest, "amt must be a number", err.Error())
		return
	}

	exchange, err := s.service.Exchange(ctx, src, dst, amt)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}

	RespondWithJSON(w, http.StatusOK, ExchangeResponse{
		Src:    exchange.Src,
		Dst:    exchange.Dst,
		Amount: exchange.Amount,
		Result: exchange.Result,
	})
}

func (s *Server) IsCurrency(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	code := strings.ToUpper(chi.URLParam(r, "code"))

	valid, err := s.service.IsCurrency(ctx, code)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}

	RespondWithJSON(w, http.StatusOK, CurrencyResponse{Code: code, Valid: valid})
}

func (s *Server) GetExchanges(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			RespondWithError(w, http.StatusBadRequest, "limit must be an integer", err.Error())
			return
		}
		limit = parsed
	}

	exchanges, err := s.service.FetchExchanges(ctx, limit)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}

	RespondWithJSON(w, http.StatusOK, exchanges)
}

func statusFromError(err error) int {
	switch {
	case errors.Is(err, entities.ErrInvalidCurrency), errors.Is(err, entities.ErrServiceRejected):
		return http.StatusUnprocessableEntity
	case errors.Is(err, entities.ErrJournalDisabled):
		return http.StatusNotFound
	case errors.Is(err, entities.ErrPrecondition):
		return http.StatusBadRequest
	default:
		return http.StatusBadGateway
	}
}

// respondWithServiceError hides upstream failures from callers. Their text may
// carry details of the currency service request.
func respondWithServiceError(w http.ResponseWriter, err error) {
	status := statusFromError(err)
	if status == http.StatusBadGateway {
		slog.Error("Currency service request failed", "error", err)
		RespondWithError(w, status, "currency service unavailable")
		return
	}

	RespondWithError(w, status, err.Error())
}

func RespondWithJSON(w http.ResponseWriter, code int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")

	w.WriteHeader(code)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		slog.Error("Failed to encode response", "error", err)
	}
}

func RespondWithError(w http.ResponseWriter, code int, message string, details ...string) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(code)

	errorText := message
	if len(details) > 0 {
		errorText += "\nDetails: " + details[0]
	}

	if _, err := w.Write([]byte(errorText)); err != nil {
		slog.Error("Failed to write error response", "error", err)
	}
}
