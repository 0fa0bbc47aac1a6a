package game

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"

	"github.com/gridironquiz/college-trivia/internal/auth"
	"github.com/gridironquiz/college-trivia/internal/college"
)

func TestHandleSearch(t *testing.T) {
	idx := college.NewIndex([]string{"Ohio State", "Miami (OH)", "Oklahoma"})
	handler := NewHTTPHandler(idx, nil, zerolog.New(io.Discard))

	rec := httptest.NewRecorder()
	handler.HandleSearch(rec, httptest.NewRequest(http.MethodGet, "/v1/colleges/search?q=oh", nil))

	assert.Equal(t, http.StatusOK, rec.Code)

	var resp SearchResultsPayload
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "oh", resp.Query)
	assert.Equal(t, []string{"Ohio State", "Miami (OH)"}, resp.Colleges)
}

func TestHandleSearchEmptyQuery(t *testing.T) {
	idx := college.NewIndex([]string{"Ohio State"})
	handler := NewHTTPHandler(idx, nil, zerolog.New(io.Discard))

	rec := httptest.NewRecorder()
	handler.HandleSearch(rec, httptest.NewRequest(http.MethodGet, "/v1/colleges/search", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"query":"","colleges":[]}`, rec.Body.String())
}

func TestHandleSearchWithoutIndex(t *testing.T) {
	handler := NewHTTPHandler(nil, nil, zerolog.New(io.Discard))

	rec := httptest.NewRecorder()
	handler.HandleSearch(rec, httptest.NewRequest(http.MethodGet, "/v1/colleges/search?q=oh", nil))

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestHandleSearchMethodNotAllowed(t *testing.T) {
	handler := NewHTTPHandler(college.NewIndex(nil), nil, zerolog.New(io.Discard))

	rec := httptest.NewRecorder()
	handler.HandleSearch(rec, httptest.NewRequest(http.MethodPost, "/v1/colleges/search", nil))

	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func TestHandleToken(t *testing.T) {
	tokens := auth.NewManager(auth.TokenConfig{Secret: []byte("test-secret")})
	handler := NewHTTPHandler(nil, tokens, zerolog.New(io.Discard))

	rec := httptest.NewRecorder()
	handler.HandleToken(rec, httptest.NewRequest(http.MethodPost, "/v1/session/token", nil))

	assert.Equal(t, http.StatusOK, rec.Code)

	var resp map[string]string
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp["token"])
	assert.NotEmpty(t, resp["client_id"])

	claims, err := tokens.Verify(resp["token"])
	assert.NoError(t, err)
	assert.Equal(t, resp["client_id"], claims.ClientID.String())
}

func TestHandleTokenDisabled(t *testing.T) {
	handler := NewHTTPHandler(nil, nil, zerolog.New(io.Discard))

	rec := httptest.NewRecorder()
	handler.HandleToken(rec, httptest.NewRequest(http.MethodPost, "/v1/session/token", nil))

	assert.Equal(t, http.StatusNotImplemented, rec.Code)
}
