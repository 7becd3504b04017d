package response

import (
	"encoding/json"
	"errors"
	"net/http"
	"neodrive/shared/constant"
	"neodrive/shared/failure"
	"neodrive/shared/logger"

	"github.com/rs/zerolog/log"
)

type Error struct {
	Error *string `json:"error,omitempty"`
}

type Message struct {
	Message *string `json:"message,omitempty"`
}

// WithMessage sends a response with a simple text message
func WithMessage(writer http.ResponseWriter, code int, message string) {
	response(writer, code, Message{Message: &message})
}

// WithRaw sends the payload itself as the JSON body. Documents and write acknowledgments go out unwrapped.
func WithRaw(writer http.ResponseWriter, code int, payload interface{}) {
	response(writer, code, payload)
}

// WithText sends a plain text body.
func WithText(writer http.ResponseWriter, code int, text string) {
	writer.Header().Set(constant.RequestHeaderContentType, constant.ContentTypeText)
	writer.WriteHeader(code)

	if _, err := writer.Write([]byte(text)); err != nil {
		logger.ErrorWithStack(err)
	}
}

// WithError sends a response with an error message.
// Only Failure messages reach the client; any other error is reported by its status text.
func WithError(writer http.ResponseWriter, err error) {
	code := failure.GetCode(err)

	var fail *failure.Failure
	errMsg := http.StatusText(code)
	if errors.As(err, &fail) {
		errMsg = fail.Message
	}

	if code >= http.StatusInternalServerError {
		log.Error().Err(err).Int("code", code).Msg("request failed")
	}

	response(writer, code, Error{Error: &errMsg})
}

// WithRequestLimitExceeded sends a default response for when the request limit is exceeded
func WithRequestLimitExceeded(writer http.ResponseWriter) {
	WithMessage(writer, http.StatusTooManyRequests, constant.ResponseErrorRequestLimitExceeded)
}

// WithPreparingShutdown sends a default response for when the server is preparing to shut down
func WithPreparingShutdown(writer http.ResponseWriter) {
	WithMessage(writer, http.StatusServiceUnavailable, constant.ResponseErrorPrepareShutdown)
}

// WithUnhealthy sends a default response for when the server is unhealthy
func WithUnhealthy(writer http.ResponseWriter) {
	WithMessage(writer, http.StatusServiceUnavailable, constant.ResponseErrorUnhealthy)
}

func response(writer http.ResponseWriter, code int, payload interface{}) {
	response, err := json.Marshal(payload)
	if err != nil {
		logger.ErrorWithStack(err)
		writer.WriteHeader(http.StatusInternalServerError)

		return
	}

	writer.Header().Set(constant.RequestHeaderContentType, constant.ContentTypeJSON)
	writer.WriteHeader(code)
	_, err = writer.Write(response)

	if err != nil {
		logger.ErrorWithStack(err)
	}
}
