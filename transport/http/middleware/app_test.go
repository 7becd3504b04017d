package middleware_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"neodrive/config"
	"neodrive/infras/otel/mocks"
	cacheMocks "neodrive/shared/cache/mocks"
	"neodrive/shared/constant"
	"neodrive/transport/http/middleware"
)

func okHandler(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
}

func TestAppMiddleware_RequestID(t *testing.T) {
	app := middleware.NewAppMiddleware(mocks.NewOtel(), &config.Config{}, nil)

	var seen string
	handler := app.RequestID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen, _ = r.Context().Value(constant.ContextKeyRequestID).(string)
	}))

	t.Run("generated", func(t *testing.T) {
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/cars", nil))

		assert.NotEmpty(t, seen)
		assert.Equal(t, seen, rec.Header().Get("X-Request-ID"))
	})

	t.Run("propagated", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/cars", nil)
		req.Header.Set("X-Request-ID", "req-42")

		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		assert.Equal(t, "req-42", seen)
		assert.Equal(t, "req-42", rec.Header().Get("X-Request-ID"))
	})
}

func TestAppMiddleware_TracingAndAccessLog(t *testing.T) {
	app := middleware.NewAppMiddleware(mocks.NewOtel(), &config.Config{}, nil)

	router := chi.NewRouter()
	router.Use(app.RequestID, app.AccessLog, app.Tracing)
	router.Get("/cars/{id}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/cars/abc", nil))

	assert.Equal(t, http.StatusTeapot, rec.Code)
	assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))
}

func newLimiter(t *testing.T, enable bool, maxRequests int) (*cacheMocks.MockRedisCache, http.Handler) {
	ctrl := gomock.NewController(t)
	redisCache := cacheMocks.NewMockRedisCache(ctrl)

	cfg := &config.Config{}
	cfg.App.RateLimiter.Enable = enable
	cfg.App.RateLimiter.MaxRequests = maxRequests
	cfg.App.RateLimiter.WindowSeconds = 60

	app := middleware.NewAppMiddleware(mocks.NewOtel(), cfg, redisCache)

	return redisCache, app.RateLimit()(http.HandlerFunc(okHandler))
}

func limiterRequest() *http.Request {
	req := httptest.NewRequest(http.MethodGet, "/cars", nil)
	req.RemoteAddr = "10.0.0.1:54321"
	req.Header.Set("User-Agent", "test-agent")

	return req
}

func TestAppMiddleware_RateLimit(t *testing.T) {
	const cacheKey = "limiter:10.0.0.1:test-agent"

	t.Run("disabled", func(t *testing.T) {
		_, handler := newLimiter(t, false, 1)

		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, limiterRequest())

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Empty(t, rec.Header().Get("X-RateLimit-Limit"))
	})

	t.Run("first request opens a window", func(t *testing.T) {
		redisCache, handler := newLimiter(t, true, 2)

		redisCache.EXPECT().Increment(gomock.Any(), cacheKey, 60).Return(int64(1), nil)

		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, limiterRequest())

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "2", rec.Header().Get("X-RateLimit-Limit"))
		assert.Equal(t, "1", rec.Header().Get("X-RateLimit-Remaining"))
		assert.Equal(t, "60", rec.Header().Get("X-RateLimit-Window"))
	})

	t.Run("request over the limit", func(t *testing.T) {
		redisCache, handler := newLimiter(t, true, 2)

		redisCache.EXPECT().Increment(gomock.Any(), cacheKey, 60).Return(int64(3), nil)

		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, limiterRequest())

		assert.Equal(t, http.StatusTooManyRequests, rec.Code)
		assert.JSONEq(t, `{"message":"REQUEST LIMIT EXCEEDED"}`, rec.Body.String())
	})

	t.Run("expired window admits the client again", func(t *testing.T) {
		redisCache, handler := newLimiter(t, true, 2)

		gomock.InOrder(
			redisCache.EXPECT().Increment(gomock.Any(), cacheKey, 60).Return(int64(1), nil),
			redisCache.EXPECT().Increment(gomock.Any(), cacheKey, 60).Return(int64(2), nil),
			redisCache.EXPECT().Increment(gomock.Any(), cacheKey, 60).Return(int64(3), nil),
			// the key expired, so the counter starts over
			redisCache.EXPECT().Increment(gomock.Any(), cacheKey, 60).Return(int64(1), nil),
		)

		codes := make([]int, 0, 4)
		for range 4 {
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, limiterRequest())
			codes = append(codes, rec.Code)
		}

		assert.Equal(t, []int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests, http.StatusOK}, codes)
	})

	t.Run("forwarded client address", func(t *testing.T) {
		redisCache, handler := newLimiter(t, true, 2)

		redisCache.EXPECT().Increment(gomock.Any(), "limiter:203.0.113.9:test-agent", 60).Return(int64(1), nil)

		req := limiterRequest()
		req.Header.Set("X-Forwarded-For", "203.0.113.9, 10.0.0.1")

		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("cache failure fails open", func(t *testing.T) {
		redisCache, handler := newLimiter(t, true, 2)

		redisCache.EXPECT().Increment(gomock.Any(), gomock.Any(), gomock.Any()).Return(int64(0), errors.New("redis down"))

		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, limiterRequest())

		assert.Equal(t, http.StatusOK, rec.Code)
	})
}
