package backfill

import (
	"context"
	"fmt"
	"strings"
	"time"

	"thumbnail-manager/core/middleware/auth"
	"thumbnail-manager/feature/thumbnail"

	"github.com/gofiber/fiber/v2"
)

// HTTPInvoker delegates to another instance of this server through its
// notification endpoint.
type HTTPInvoker struct {
	endpoint string
	apiKey   string
	timeout  time.Duration
}

// NewHTTPInvoker creates an invoker posting to cfg.URL.
func NewHTTPInvoker(cfg DelegateConfig) *HTTPInvoker {
	return &HTTPInvoker{
		endpoint: strings.TrimSuffix(cfg.URL, "/") + "/thumbnails/events",
		apiKey:   cfg.ApiKey,
		timeout:  cfg.timeout(),
	}
}

func (h *HTTPInvoker) String() string {
	return "http:" + h.endpoint
}

// Invoke posts n and decodes the returned summary.
func (h *HTTPInvoker) Invoke(ctx context.Context, n thumbnail.Notification) (thumbnail.EventSummary, error) {
	timeout := h.timeout
	if deadline, ok := ctx.Deadline(); ok {
		if remaining := time.Until(deadline); remaining < timeout {
			timeout = remaining
		}
	}
	if err := ctx.Err(); err != nil {
		return thumbnail.EventSummary{}, err
	}

	a := fiber.Post(h.endpoint).JSON(n).Timeout(timeout)
	if h.apiKey != "" {
		a.Set(auth.HeaderName, h.apiKey)
	}
	if err := a.Parse(); err != nil {
		return thumbnail.EventSummary{}, fmt.Errorf("failed to build request for %s: %w", h.endpoint, err)
	}

	code, body, errs := a.Bytes()
	if len(errs) > 0 {
		return thumbnail.EventSummary{}, fmt.Errorf("failed to call %s: %w", h.endpoint, errs[0])
	}
	if code >= fiber.StatusBadRequest {
		return thumbnail.EventSummary{}, fmt.Errorf("%s returned status %d: %s", h.endpoint, code, body)
	}

	return decodeResponse(body)
}
