package thumbnail

import (
	"encoding/json"
	"net/http"
)

// Outcome is the terminal state of processing one original.
type Outcome string

const (
	OutcomeSucceeded Outcome = "succeeded"
	OutcomeSkipped   Outcome = "skipped"
	OutcomeFailed    Outcome = "failed"
)

// Skip reasons.
const (
	ReasonDerivative  = "already a derivative"
	ReasonUnsupported = "unsupported format"
	ReasonInvalidKey  = "invalid key structure"
	ReasonTooLarge    = "too large"
)

// Result records what happened to one original.
type Result struct {
	Bucket      string   `json:"bucket"`
	Key         string   `json:"key"`
	Outcome     Outcome  `json:"outcome"`
	Reason      string   `json:"reason,omitempty"`
	Error       string   `json:"error,omitempty"`
	Derivatives []string `json:"derivatives,omitempty"`
}

// Skipped returns a skipped result.
func Skipped(bucket, key, reason string) Result {
	return Result{Bucket: bucket, Key: key, Outcome: OutcomeSkipped, Reason: reason}
}

// Failed returns a failed result carrying err's message.
func Failed(bucket, key string, err error) Result {
	r := Result{Bucket: bucket, Key: key, Outcome: OutcomeFailed}
	if err != nil {
		r.Error = err.Error()
	}
	return r
}

// EventSummary aggregates the results of one notification.
type EventSummary struct {
	Total int `json:"total"`
	// Successful counts records that did not fail, skips included.
	Successful int      `json:"successful"`
	Skipped    int      `json:"skipped"`
	Failed     int      `json:"failed"`
	Results    []Result `json:"results"`
}

// Add folds r into the summary.
func (s *EventSummary) Add(r Result) {
	s.Total++
	switch r.Outcome {
	case OutcomeFailed:
		s.Failed++
	case OutcomeSkipped:
		s.Skipped++
		s.Successful++
	default:
		s.Successful++
	}
	s.Results = append(s.Results, r)
}

// Response is the envelope returned by the serverless thumbnail handler.
type Response struct {
	StatusCode int    `json:"statusCode"`
	Body       string `json:"body"`
}

// NewResponse wraps summary in a 200 response.
func NewResponse(summary EventSummary) (Response, error) {
	body, err := json.Marshal(summary)
	if err != nil {
		return Response{}, err
	}
	return Response{StatusCode: http.StatusOK, Body: string(body)}, nil
}
