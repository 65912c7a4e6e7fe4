// sentiric-phonemask-service/internal/server/http.go
package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"github.com/sentiric/sentiric-phonemask-service/internal/country"
	"github.com/sentiric/sentiric-phonemask-service/internal/logger"
	grpchandler "github.com/sentiric/sentiric-phonemask-service/internal/server/grpc"
	"github.com/sentiric/sentiric-phonemask-service/internal/service/mask"
	"github.com/sentiric/sentiric-phonemask-service/internal/tracing"
)

type HTTPHandler struct {
	svc grpchandler.Service
	log zerolog.Logger
}

func NewHTTPHandler(svc grpchandler.Service, log zerolog.Logger) *HTTPHandler {
	return &HTTPHandler{svc: svc, log: log}
}

// Router, REST uçlarını, health ve metrics'i tek bir httprouter'a bağlar.
func (h *HTTPHandler) Router() *httprouter.Router {
	router := httprouter.New()
	router.GET("/v1/format", h.traced("Format", h.Format))
	router.GET("/v1/guess", h.traced("Guess", h.Guess))
	router.GET("/v1/countries", h.traced("ListCountries", h.ListCountries))
	router.POST("/v1/countries/reload", h.traced("ReloadCountries", h.ReloadCountries))
	router.GET("/healthz", h.Health)
	router.Handler(http.MethodGet, "/metrics", promhttp.Handler())
	return router
}

type errorResponse struct {
	Error string `json:"error"`
}

type healthResponse struct {
	Status    string `json:"status"`
	Countries int    `json:"countries"`
}

type reloadResponse struct {
	Loaded int `json:"loaded"`
}

func (h *HTTPHandler) traced(method string, next httprouter.Handle) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
		traceID := tracing.TraceID(r.Context(), r.Header.Get(tracing.HeaderKey))
		w.Header().Set(tracing.HeaderKey, traceID)
		l := logger.WithTrace(h.log, traceID, method)
		next(w, r.WithContext(l.WithContext(r.Context())), ps)
	}
}

func (h *HTTPHandler) Format(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	res, err := h.svc.FormatPhone(r.Context(), r.URL.Query().Get("input"))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, res)
}

func (h *HTTPHandler) Guess(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	g, err := h.svc.GuessCountry(r.Context(), r.URL.Query().Get("digits"))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, g)
}

func (h *HTTPHandler) ListCountries(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	countries, err := h.svc.ListCountries(r.Context())
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, countries)
}

func (h *HTTPHandler) ReloadCountries(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	n, err := h.svc.ReloadCountries(r.Context())
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, reloadResponse{Loaded: n})
}

func (h *HTTPHandler) Health(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	countries, err := h.svc.ListCountries(r.Context())
	if err != nil {
		h.writeJSON(w, http.StatusServiceUnavailable, healthResponse{Status: "unavailable"})
		return
	}
	h.writeJSON(w, http.StatusOK, healthResponse{Status: "ok", Countries: len(countries)})
}

func (h *HTTPHandler) writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.log.Error().Err(err).Msg("JSON yanıtı yazılamadı")
	}
}

func (h *HTTPHandler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	code := httpStatus(err)
	l := zerolog.Ctx(r.Context())
	if code >= http.StatusInternalServerError {
		l.Error().Err(err).Int("status", code).Msg("HTTP isteği başarısız")
	} else {
		l.Warn().Err(err).Int("status", code).Msg("HTTP isteği reddedildi")
	}
	h.writeJSON(w, code, errorResponse{Error: err.Error()})
}

func httpStatus(err error) int {
	switch {
	case errors.Is(err, context.Canceled):
		return 499
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout
	case errors.Is(err, mask.ErrNoRepository),
		errors.Is(err, mask.ErrEmptyTable),
		errors.Is(err, country.ErrInvalidCountry):
		return http.StatusConflict
	case errors.Is(err, mask.ErrTableMissing):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
