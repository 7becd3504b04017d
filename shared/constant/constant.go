package constant

import (
	"time"
)

// Context key types to avoid collisions
type contextKey string

const (
	ContextKeyClaims    contextKey = "claims"
	ContextKeyRequestID contextKey = "request_id"
)

const (
	RequestParamID    = "id"
	RequestParamEmail = "email"
)

const (
	FieldID = "_id"
)

const (
	DateFormat = time.RFC3339
)

const (
	TokenValidity     = 5 * time.Hour
	HealthPingTimeout = 2 * time.Second
)

const (
	OtelServiceScopeName    = "service"
	OtelRepositoryScopeName = "repository"
	OtelHandlerScopeName    = "handler"
	OtelMiddlewareScopeName = "middleware"

	OtelFilterAttributeKey     = "filter"
	OtelCollectionAttributeKey = "collection"
)

const (
	RequestHeaderAuthorization      = "Authorization"
	RequestHeaderUserAgent          = "User-Agent"
	RequestHeaderContentType        = "Content-Type"
	RequestHeaderRateLimit          = "X-RateLimit-Limit"
	RequestHeaderRateLimitRemaining = "X-RateLimit-Remaining"
	RequestHeaderRateLimitWindow    = "X-RateLimit-Window"
	RequestHeaderRequestID          = "X-Request-ID"
	RequestHeaderForwardedFor       = "X-Forwarded-For"
	RequestHeaderRealIP             = "X-Real-IP"
)

const (
	ContentTypeJSON = "application/json"
	ContentTypeText = "text/plain; charset=utf-8"
)

const (
	ResponseErrorPrepareShutdown      = "SERVER PREPARING TO SHUT DOWN"
	ResponseErrorUnhealthy            = "SERVER UNHEALTHY"
	ResponseErrorRequestLimitExceeded = "REQUEST LIMIT EXCEEDED"

	ResponseMessageHealthy = "SERVER HEALTHY"
)

const (
	ServerEnvDevelopment = "development"
	ServerEnvProduction  = "production"
)

const (
	ServerName = "Neo Drive Server"
)

const (
	CacheKeySeparator = ":"
	Asterix           = "*"
	Empty             = ""
)
