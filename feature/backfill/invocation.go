package backfill

import (
	"context"
	"errors"
	"net/http"

	"go.uber.org/zap"
)

// InvocationResponse is the reply to a direct function invocation.
type InvocationResponse struct {
	StatusCode int `json:"statusCode"`
	Body       any `json:"body"`
}

// Invoke runs a backfill and wraps the outcome in a status envelope.
// A missing bucket yields 400 without scanning anything.
func (s *Service) Invoke(ctx context.Context, opts Options) InvocationResponse {
	res, err := s.Run(ctx, opts)
	switch {
	case err == nil:
		return InvocationResponse{StatusCode: http.StatusOK, Body: res}
	case errors.Is(err, ErrNoBucket):
		s.logger.Error("Backfill invoked without a bucket")
		return InvocationResponse{StatusCode: http.StatusBadRequest, Body: map[string]string{"error": err.Error()}}
	case errors.Is(err, ErrNoRenderer):
		return InvocationResponse{StatusCode: http.StatusServiceUnavailable, Body: map[string]string{"error": err.Error()}}
	default:
		s.logger.Error("Backfill failed", zap.Error(err))
		return InvocationResponse{StatusCode: http.StatusInternalServerError, Body: map[string]string{"error": err.Error()}}
	}
}
