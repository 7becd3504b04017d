package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"net/http"

	"neodrive/infras/jwt"
	"neodrive/infras/otel"
	"neodrive/internal/domains/token/model/dto"
	"neodrive/shared/constant"
	"neodrive/shared/failure"

	"github.com/rs/zerolog/log"
)

const msgGenerateToken = "Failed to generate JWT"

type Token interface {
	Issue(ctx context.Context, req dto.IssueTokenRequest) (dto.TokenResponse, error)
}

type serviceImpl struct {
	jwt  jwt.JWT
	otel otel.Otel
}

func New(jwt jwt.JWT, otel otel.Otel) Token {
	return &serviceImpl{
		jwt:  jwt,
		otel: otel,
	}
}

func (s *serviceImpl) Issue(ctx context.Context, req dto.IssueTokenRequest) (res dto.TokenResponse, err error) {
	_, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".token.Issue")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if req == nil {
		req = dto.IssueTokenRequest{}
	}

	token, err := s.jwt.Issue(req)
	if err != nil {
		log.Error().Err(err).Msg("failed to issue token")

		return res, failure.Wrap(http.StatusBadRequest, msgGenerateToken, err)
	}

	res.Token = token

	return res, nil
}
