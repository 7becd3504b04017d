package token

import (
	"net/http"
	"neodrive/infras/otel"
	"neodrive/internal/domains/token/model/dto"
	"neodrive/internal/domains/token/service"
	"neodrive/shared/constant"
	"neodrive/shared/failure"
	"neodrive/shared/validator"
	"neodrive/transport/http/response"

	"github.com/go-chi/chi/v5"
)

type Handler struct {
	service service.Token
	otel    otel.Otel
}

func New(service service.Token, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Get("/jwt", handler.IssueToken)
}

// IssueToken signs the request body into a token valid for five hours.
// @Summary Issue a token
// @Description Signs any JSON object sent as the body. An empty body signs an empty payload.
// @Tags Token
// @Accept json
// @Produce json
// @Param payload body map[string]any false "Token payload"
// @Success 200 {object} dto.TokenResponse "Signed token"
// @Failure 400 {object} response.Error
// @Router /jwt [get]
func (handler *Handler) IssueToken(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".IssueToken")
	defer scope.End()

	req := dto.IssueTokenRequest{}
	if err := validator.Decode(r.Body, &req); err != nil {
		scope.TraceError(err)
		response.WithError(w, failure.Wrap(http.StatusBadRequest, "Failed to generate JWT", err))

		return
	}

	res, err := handler.service.Issue(ctx, req)
	if err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	response.WithRaw(w, http.StatusOK, res)
}
