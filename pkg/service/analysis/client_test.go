package analysis_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/m-mizutani/gt"
	"github.com/oneirolab/dreamvault/pkg/service/analysis"
)

func TestAnalyzeSuccess(t *testing.T) {
	var gotBody map[string]any
	var gotAPIKey string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAPIKey = r.Header.Get("x-api-key")
		gt.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"analysis": "a desire for freedom",
			"symbols": ["sky", "wings"],
			"sentiment_score": 0.8,
			"theme": "freedom",
			"timestamp": "2026-03-10T08:00:00Z"
		}`))
	}))
	defer srv.Close()

	client, err := analysis.New(srv.URL, "test-key", analysis.WithUserID("42"))
	gt.NoError(t, err).Required()

	date := time.Date(2026, 3, 9, 23, 0, 0, 0, time.UTC)
	result, err := client.Analyze(context.Background(), "flying above the city", date)
	gt.NoError(t, err).Required()

	gt.Value(t, gotAPIKey).Equal("test-key")
	gt.Value(t, gotBody["dream_content"]).Equal("flying above the city")
	gt.Value(t, gotBody["dream_date"]).Equal("2026-03-09T23:00:00Z")
	gt.Value(t, gotBody["user_id"]).Equal("42")

	gt.Value(t, result.Narrative).Equal("a desire for freedom")
	gt.Value(t, result.Symbols).Equal([]string{"sky", "wings"})
	gt.Value(t, *result.SentimentScore).Equal(0.8)
	gt.Value(t, result.Theme).Equal("freedom")
	gt.Bool(t, result.Timestamp.Equal(time.Date(2026, 3, 10, 8, 0, 0, 0, time.UTC))).True()
}

func TestAnalyzePartialResponse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"analysis": "a search for answers"}`))
	}))
	defer srv.Close()

	client, err := analysis.New(srv.URL, "test-key")
	gt.NoError(t, err).Required()

	result, err := client.Analyze(context.Background(), "library", time.Now())
	gt.NoError(t, err).Required()

	gt.Value(t, result.Narrative).Equal("a search for answers")
	gt.Value(t, result.SentimentScore).Nil()
	gt.Value(t, result.Theme).Equal("")
	gt.Bool(t, result.Timestamp.IsZero()).True()
}

func TestAnalyzeSemanticFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"symbols": ["noise"]}`))
	}))
	defer srv.Close()

	client, err := analysis.New(srv.URL, "test-key")
	gt.NoError(t, err).Required()

	_, err = client.Analyze(context.Background(), "static", time.Now())
	gt.Error(t, err)
	gt.Bool(t, errors.Is(err, analysis.ErrUninterpretable)).True()
}

func TestAnalyzeErrorBodySurfacedVerbatim(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"error": "quota exceeded for user"}`))
	}))
	defer srv.Close()

	client, err := analysis.New(srv.URL, "test-key")
	gt.NoError(t, err).Required()

	_, err = client.Analyze(context.Background(), "anything", time.Now())
	gt.Error(t, err)
	gt.Bool(t, errors.Is(err, analysis.ErrUninterpretable)).False()
	gt.Bool(t, strings.Contains(err.Error(), "quota exceeded for user")).True()
}

func TestAnalyzeTransportFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte("upstream gone"))
	}))
	defer srv.Close()

	client, err := analysis.New(srv.URL, "test-key")
	gt.NoError(t, err).Required()

	_, err = client.Analyze(context.Background(), "anything", time.Now())
	gt.Error(t, err)
	gt.Bool(t, errors.Is(err, analysis.ErrUninterpretable)).False()
}

func TestNewRequiresConfig(t *testing.T) {
	_, err := analysis.New("", "key")
	gt.Error(t, err)

	_, err = analysis.New("https://example.com", "")
	gt.Error(t, err)
}
