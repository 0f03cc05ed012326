package backfill

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"thumbnail-manager/feature/thumbnail"

	"go.uber.org/zap"
)

// ErrUnreadableSummary marks a delegate reply that reported success but
// whose summary could not be parsed.
var ErrUnreadableSummary = errors.New("unreadable delegate summary")

// Invoker sends a notification to a remote renderer and returns its summary.
type Invoker interface {
	Invoke(ctx context.Context, n thumbnail.Notification) (thumbnail.EventSummary, error)
	String() string
}

// RemoteDelegate renders by sending a synthetic notification to an Invoker.
type RemoteDelegate struct {
	invoker Invoker
	logger  *zap.Logger
}

// NewRemoteDelegate creates a delegate strategy.
func NewRemoteDelegate(invoker Invoker, logger *zap.Logger) *RemoteDelegate {
	return &RemoteDelegate{invoker: invoker, logger: logger}
}

func (r *RemoteDelegate) Mode() string { return ModeRemote }

func (r *RemoteDelegate) Process(ctx context.Context, bucket, key string) thumbnail.Result {
	summary, err := r.invoker.Invoke(ctx, thumbnail.NewNotification(bucket, key))
	if errors.Is(err, ErrUnreadableSummary) {
		// The call itself succeeded; count it as accepted, but say so.
		r.logger.Warn("Delegate reply unreadable, counting as accepted",
			zap.String("key", key),
			zap.String("delegate", r.invoker.String()),
			zap.Error(err),
		)
		return resultFromSummary(bucket, key, thumbnail.EventSummary{})
	}
	if err != nil {
		return thumbnail.Failed(bucket, key, err)
	}
	return resultFromSummary(bucket, key, summary)
}

// resultFromSummary collapses a one-record summary into a result. An empty
// summary means the delegate accepted the call without reporting details.
func resultFromSummary(bucket, key string, s thumbnail.EventSummary) thumbnail.Result {
	switch {
	case s.Failed > 0:
		res := thumbnail.Failed(bucket, key, errors.New("delegate reported failure"))
		for _, r := range s.Results {
			if r.Outcome == thumbnail.OutcomeFailed && r.Error != "" {
				res.Error = r.Error
				break
			}
		}
		return res
	case s.Total > 0 && s.Skipped == s.Total:
		reason := ""
		if len(s.Results) > 0 {
			reason = s.Results[0].Reason
		}
		return thumbnail.Skipped(bucket, key, reason)
	default:
		res := thumbnail.Result{Bucket: bucket, Key: key, Outcome: thumbnail.OutcomeSucceeded}
		for _, r := range s.Results {
			res.Derivatives = append(res.Derivatives, r.Derivatives...)
		}
		return res
	}
}

// decodeResponse reads either a {statusCode, body} envelope or a bare summary.
// A body that is neither yields ErrUnreadableSummary.
func decodeResponse(payload []byte) (thumbnail.EventSummary, error) {
	var summary thumbnail.EventSummary
	if len(payload) == 0 {
		return summary, nil
	}

	var envelope thumbnail.Response
	if err := json.Unmarshal(payload, &envelope); err == nil && envelope.StatusCode != 0 {
		if envelope.StatusCode >= http.StatusBadRequest {
			return summary, fmt.Errorf("delegate returned status %d: %s", envelope.StatusCode, envelope.Body)
		}
		if envelope.Body == "" {
			return summary, nil
		}
		payload = []byte(envelope.Body)
	}

	if err := json.Unmarshal(payload, &summary); err != nil {
		return thumbnail.EventSummary{}, fmt.Errorf("%w: %v", ErrUnreadableSummary, err)
	}
	return summary, nil
}
