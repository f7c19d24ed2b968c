package output

import (
	"github.com/goccy/go-json"
	"github.com/rpgo/pension-gap/internal/domain"
)

// Envelope outcomes.
const (
	OutcomeSuccess = "SUCCESS"
	OutcomeFailure = "FAILURE"
)

// Envelope wraps a projection result, or the reason there is none.
type Envelope struct {
	Outcome string                   `json:"outcome"`
	Message string                   `json:"message,omitempty"`
	Result  *domain.ProjectionResult `json:"result,omitempty"`
}

// NewSuccessEnvelope wraps a result.
func NewSuccessEnvelope(r *domain.ProjectionResult) Envelope {
	return Envelope{Outcome: OutcomeSuccess, Result: r}
}

// NewFailureEnvelope reports err in place of a result.
func NewFailureEnvelope(err error) Envelope {
	return Envelope{Outcome: OutcomeFailure, Message: err.Error()}
}

// JSONFormatter serializes the projection as pretty-printed JSON.
type JSONFormatter struct{}

func (j JSONFormatter) Name() string      { return "json" }
func (j JSONFormatter) Extension() string { return "json" }

func (j JSONFormatter) Format(r *domain.ProjectionResult) ([]byte, error) {
	return json.MarshalIndent(NewSuccessEnvelope(r), "", "  ")
}
