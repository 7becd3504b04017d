package health

import (
	"context"
	"net/http"
	"neodrive/shared/constant"
	"neodrive/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

// Pinger reports whether the document store is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

type Handler struct {
	db Pinger
}

func New(db Pinger) Handler {
	return Handler{
		db: db,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Get("/", handler.Root)
	router.Get("/healthz", handler.Health)
}

// Root identifies the server.
// @Summary Server banner
// @Tags Health
// @Produce plain
// @Success 200 {string} string "Neo Drive Server"
// @Router / [get]
func (handler *Handler) Root(w http.ResponseWriter, _ *http.Request) {
	response.WithText(w, http.StatusOK, constant.ServerName)
}

// Health pings the document store.
// @Summary Health check
// @Tags Health
// @Produce json
// @Success 200 {object} response.Message
// @Failure 503 {object} response.Message
// @Router /healthz [get]
func (handler *Handler) Health(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), constant.HealthPingTimeout)
	defer cancel()

	if err := handler.db.Ping(ctx); err != nil {
		log.Error().Err(err).Msg("health check failed")
		response.WithUnhealthy(w)

		return
	}

	response.WithMessage(w, http.StatusOK, constant.ResponseMessageHealthy)
}
