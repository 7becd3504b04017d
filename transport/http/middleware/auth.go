package middleware

import (
	"context"
	"errors"
	"net/http"
	"neodrive/config"
	"neodrive/infras/jwt"
	"neodrive/infras/otel"
	"neodrive/permissions"
	"neodrive/shared/constant"
	"neodrive/shared/failure"
	"neodrive/transport/http/response"

	"github.com/go-chi/chi/v5"
)

// Auth verifies bearer tokens issued by the token endpoint.
type Auth interface {
	Auth(http.Handler) http.Handler
}

type authImpl struct {
	jwtService jwt.JWT
	otel       otel.Otel
	permission *permissions.PermissionData
	cfg        *config.Config
}

func NewAuthMiddleware(jwtService jwt.JWT, otel otel.Otel, permissions *permissions.PermissionData, cfg *config.Config) Auth {
	return &authImpl{
		jwtService: jwtService,
		otel:       otel,
		permission: permissions,
		cfg:        cfg,
	}
}

// Auth is a pass-through unless enforcement is enabled. Routes marked skip stay public.
func (m *authImpl) Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		if !m.cfg.App.Auth.Enforce {
			next.ServeHTTP(writer, request)

			return
		}

		ctx := request.Context()
		_, scope := m.otel.NewScope(ctx, constant.OtelMiddlewareScopeName, "auth.middleware")

		method := request.Method
		path := request.URL.Path
		if rctx := chi.RouteContext(ctx); rctx != nil && rctx.Routes != nil {
			if pattern := rctx.Routes.Find(chi.NewRouteContext(), method, request.URL.Path); pattern != "" {
				path = pattern
			}
		}

		scope.SetAttributes(map[string]any{
			"middleware.type": "auth",
			"http.path":       path,
			"http.method":     method,
		})

		if m.permission != nil && (m.permission.Skip || m.permission.FindPermissions(path, method).Skip) {
			scope.End()
			next.ServeHTTP(writer, request)

			return
		}

		tokenString, err := jwt.ExtractTokenFromHeader(request.Header.Get(constant.RequestHeaderAuthorization))
		if err != nil {
			err := failure.Unauthorized(err.Error())
			response.WithError(writer, err)

			scope.TraceError(err)
			scope.End()

			return
		}

		claims, err := m.jwtService.Validate(tokenString)
		if err != nil {
			var message string

			switch {
			case errors.Is(err, jwt.ErrExpiredToken):
				message = "Token has expired"
			case errors.Is(err, jwt.ErrInvalidToken):
				message = "Invalid token"
			default:
				message = "Token validation failed"
			}

			err := failure.Unauthorized(message)
			response.WithError(writer, err)

			scope.TraceError(err)
			scope.End()

			return
		}

		ctx = context.WithValue(ctx, constant.ContextKeyClaims, claims)

		scope.End()

		next.ServeHTTP(writer, request.WithContext(ctx))
	})
}
