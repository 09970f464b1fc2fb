package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	domainErrors "github.com/commitcoach/CommitCoach/internal/domain/errors"
	"github.com/commitcoach/CommitCoach/internal/domain/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubAnalysisService struct {
	result models.CommitAnalysis
	err    error
	got    models.AnalysisRequest
}

func (s *stubAnalysisService) Analyze(_ context.Context, req models.AnalysisRequest) (models.CommitAnalysis, error) {
	s.got = req
	return s.result, s.err
}

func performRequest(t *testing.T, srv *Server, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	recorder := httptest.NewRecorder()
	srv.Handler().ServeHTTP(recorder, req)
	return recorder
}

func TestHealthEndpoint(t *testing.T) {
	srv := New(&stubAnalysisService{})

	resp := performRequest(t, srv, http.MethodGet, "/health", "")

	assert.Equal(t, http.StatusOK, resp.Code)
	assert.JSONEq(t, `{"status":"ok"}`, resp.Body.String())
}

func TestIndexEndpoint(t *testing.T) {
	srv := New(&stubAnalysisService{})

	resp := performRequest(t, srv, http.MethodGet, "/", "")

	assert.Equal(t, http.StatusOK, resp.Code)
	assert.Contains(t, resp.Body.String(), "CommitCoach API")
}

func TestAnalyzeEndpoint(t *testing.T) {
	t.Run("debería devolver el análisis con request válido", func(t *testing.T) {
		stub := &stubAnalysisService{
			result: models.CommitAnalysis{
				CommitScore: models.CommitScore{Value: 85, Label: models.LabelGreen},
				Flags:       []string{"Test-only change"},
				Suggestions: []string{},
				RiskLevel:   models.RiskLow,
				RiskReasons: []string{},
			},
		}
		srv := New(stub)

		body := `{"diff": "diff --git a/x.go b/x.go\n+foo", "message": "feat: x", "repo_name": "demo"}`
		resp := performRequest(t, srv, http.MethodPost, "/analyze", body)

		require.Equal(t, http.StatusOK, resp.Code)

		var result models.CommitAnalysis
		require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &result))
		assert.Equal(t, 85, result.CommitScore.Value)
		assert.Equal(t, models.LabelGreen, result.CommitScore.Label)
		assert.Equal(t, "demo", stub.got.RepoName)
	})

	t.Run("debería devolver 400 si falta el diff", func(t *testing.T) {
		srv := New(&stubAnalysisService{})

		resp := performRequest(t, srv, http.MethodPost, "/analyze", `{"message": "update"}`)

		assert.Equal(t, http.StatusBadRequest, resp.Code)
	})

	t.Run("debería devolver 400 con body que no es JSON", func(t *testing.T) {
		srv := New(&stubAnalysisService{})

		resp := performRequest(t, srv, http.MethodPost, "/analyze", `not json`)

		assert.Equal(t, http.StatusBadRequest, resp.Code)
	})

	t.Run("debería devolver 502 si el advisor no devolvió JSON", func(t *testing.T) {
		stub := &stubAnalysisService{
			err: domainErrors.NewAdviceParseError("plain text", errors.New("invalid character 'p'")),
		}
		srv := New(stub)

		body := `{"diff": "x", "message": "y"}`
		resp := performRequest(t, srv, http.MethodPost, "/analyze", body)

		assert.Equal(t, http.StatusBadGateway, resp.Code)
		assert.Contains(t, resp.Body.String(), "unparseable")
	})

	t.Run("debería devolver 500 ante otros errores", func(t *testing.T) {
		stub := &stubAnalysisService{err: errors.New("se cayó todo")}
		srv := New(stub)

		body := `{"diff": "x", "message": "y"}`
		resp := performRequest(t, srv, http.MethodPost, "/analyze", body)

		assert.Equal(t, http.StatusInternalServerError, resp.Code)
	})
}
