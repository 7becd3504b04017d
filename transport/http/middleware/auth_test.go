package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	gojwt "github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"neodrive/config"
	"neodrive/infras/jwt"
	jwtMocks "neodrive/infras/jwt/mocks"
	"neodrive/infras/otel/mocks"
	"neodrive/permissions"
	"neodrive/shared/constant"
	"neodrive/transport/http/middleware"
)

func newAuthRouter(t *testing.T, enforce bool) (*jwtMocks.MockJWT, http.Handler) {
	ctrl := gomock.NewController(t)
	mockJWT := jwtMocks.NewMockJWT(ctrl)

	cfg := &config.Config{}
	cfg.App.Auth.Enforce = enforce

	perms, err := permissions.Parse([]byte(`{"endpoints":[
		{"path":"/cars/{id}","method":"GET","skip":true},
		{"path":"/cars/{id}","method":"PUT","skip":false}
	]}`))
	if err != nil {
		t.Fatal(err)
	}

	auth := middleware.NewAuthMiddleware(mockJWT, mocks.NewOtel(), perms, cfg)

	router := chi.NewRouter()
	router.Use(auth.Auth)

	handler := func(w http.ResponseWriter, r *http.Request) {
		if claims, ok := r.Context().Value(constant.ContextKeyClaims).(gojwt.MapClaims); ok {
			w.Header().Set("X-Email", claims["email"].(string))
		}

		w.WriteHeader(http.StatusOK)
	}

	router.Get("/cars/{id}", handler)
	router.Put("/cars/{id}", handler)
	router.Delete("/cars/{id}", handler)

	return mockJWT, router
}

func TestAuth(t *testing.T) {
	t.Run("enforcement off", func(t *testing.T) {
		_, router := newAuthRouter(t, false)

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodPut, "/cars/car-7", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("skipped route", func(t *testing.T) {
		_, router := newAuthRouter(t, true)

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/cars/car-7", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("missing token", func(t *testing.T) {
		_, router := newAuthRouter(t, true)

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodPut, "/cars/car-7", nil))

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.JSONEq(t, `{"error":"authorization header is required"}`, rec.Body.String())
	})

	t.Run("unlisted route requires a token", func(t *testing.T) {
		_, router := newAuthRouter(t, true)

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/cars/car-7", nil))

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("expired token", func(t *testing.T) {
		mockJWT, router := newAuthRouter(t, true)
		mockJWT.EXPECT().Validate("expired.token").Return(nil, jwt.ErrExpiredToken)

		req := httptest.NewRequest(http.MethodPut, "/cars/car-7", nil)
		req.Header.Set("Authorization", "Bearer expired.token")

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.JSONEq(t, `{"error":"Token has expired"}`, rec.Body.String())
	})

	t.Run("valid token stores claims", func(t *testing.T) {
		mockJWT, router := newAuthRouter(t, true)
		mockJWT.EXPECT().Validate("good.token").Return(gojwt.MapClaims{"email": "user@example.com"}, nil)

		req := httptest.NewRequest(http.MethodPut, "/cars/car-7", nil)
		req.Header.Set("Authorization", "Bearer good.token")

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "user@example.com", rec.Header().Get("X-Email"))
	})
}
