package analysis

import (
	"errors"
	"time"
)

// ErrUninterpretable marks a semantic failure: the endpoint answered, but
// produced no usable interpretation. Distinct from transport failures so
// callers can show a dedicated message.
var ErrUninterpretable = errors.New("could not interpret this entry")

// Result is the parsed outcome of a successful analysis call. Narrative is
// always non-empty; the remaining fields may be independently absent.
type Result struct {
	Narrative      string
	Symbols        []string
	SentimentScore *float64
	Theme          string
	Timestamp      time.Time
}

// request is the wire format of the analysis endpoint
type request struct {
	DreamContent string `json:"dream_content"`
	DreamDate    string `json:"dream_date"`
	UserID       string `json:"user_id"`
}

// response is the wire format of a successful response. Every field is
// optional; a missing "analysis" means the endpoint could not interpret
// the entry even though the call succeeded.
type response struct {
	Analysis       *string  `json:"analysis"`
	Symbols        []string `json:"symbols"`
	SentimentScore *float64 `json:"sentiment_score"`
	Theme          *string  `json:"theme"`
	Timestamp      *string  `json:"timestamp"`
}

// errorResponse is the wire format of an error response
type errorResponse struct {
	Error *string `json:"error"`
}
